package main

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/spf13/cobra"

	"github.com/orizenati71-dev/media-agents/internal/agent/content"
	"github.com/orizenati71-dev/media-agents/internal/agent/hooks"
	"github.com/orizenati71-dev/media-agents/internal/agent/intake"
	"github.com/orizenati71-dev/media-agents/internal/ai"
	"github.com/orizenati71-dev/media-agents/internal/config"
	"github.com/orizenati71-dev/media-agents/internal/models"
	"github.com/orizenati71-dev/media-agents/internal/platform"
	"github.com/orizenati71-dev/media-agents/internal/source"
	"github.com/orizenati71-dev/media-agents/internal/source/custom"
	"github.com/orizenati71-dev/media-agents/internal/source/rss"
	"github.com/orizenati71-dev/media-agents/internal/storage"
	"github.com/orizenati71-dev/media-agents/internal/storage/sqlite"
	"github.com/orizenati71-dev/media-agents/internal/tracker"
	"github.com/orizenati71-dev/media-agents/pkg/logger"
	"github.com/orizenati71-dev/media-agents/pkg/ratelimit"
)

var (
	cfgFile string
	cfg     *config.Config
	log     *logger.Logger
	repo    storage.Repository
)

func main() {
	rootCmd := &cobra.Command{
		Use:   "media-agents",
		Short: "Hebrew social media publishing agents",
		Long: `Agents that turn video content briefs into publish-ready assets:
natural Hebrew captions, hashtags, hooks, and per-platform packages for
TikTok, Instagram, and YouTube Shorts.`,
		PersistentPreRunE: initializeApp,
	}

	// Global flags
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default is ./configs/config.yaml)")

	// Add subcommands
	rootCmd.AddCommand(processCmd())
	rootCmd.AddCommand(hooksCmd())
	rootCmd.AddCommand(intakeCmd())
	rootCmd.AddCommand(draftsCmd())
	rootCmd.AddCommand(packagesCmd())
	rootCmd.AddCommand(trackerCmd())
	rootCmd.AddCommand(platformsCmd())

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func initializeApp(cmd *cobra.Command, args []string) error {
	var err error

	// Load config
	cfg, err = config.Load(cfgFile)
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	// Initialize logger
	log = logger.New(logger.Config{
		Level:  cfg.Logging.Level,
		Format: cfg.Logging.Format,
		Output: cfg.Logging.Output,
	})

	// Initialize storage
	repo, err = sqlite.New(cfg.Database.DSN)
	if err != nil {
		return fmt.Errorf("failed to connect to database: %w", err)
	}

	// Run migrations
	if err := repo.Migrate(); err != nil {
		return fmt.Errorf("failed to run migrations: %w", err)
	}

	return nil
}

// newContentAgent wires the content agent with the optional collaborators
// the config enables. forcePolish turns the AI polish pass on even when the
// config leaves it off.
func newContentAgent(forcePolish bool) *content.Agent {
	opts := []content.Option{
		content.WithRepository(repo),
		content.WithMaxHashtags(cfg.Publishing.MaxHashtags),
		content.WithEmojiDecoration(cfg.Publishing.EmojiDecoration),
	}

	if (cfg.Publishing.AIPolish || forcePolish) && cfg.Anthropic.APIKey != "" {
		limiter := ratelimit.NewDefaultLimiter()
		opts = append(opts, content.WithAIPolish(ai.NewClient(cfg.Anthropic, limiter, log)))
	}

	if cfg.Tracker.Enabled {
		t, err := tracker.NewSheetsTracker(cfg.Tracker, log)
		if err != nil {
			log.Warn().Err(err).Msg("Failed to create tracker")
		} else if t != nil {
			opts = append(opts, content.WithTracker(t))
		}
	}

	return content.NewAgent(log, opts...)
}

// parsePlatforms resolves a list of platform tokens, defaulting to all
func parsePlatforms(tokens []string) ([]models.Platform, error) {
	if len(tokens) == 0 {
		return models.DefaultPlatforms(), nil
	}
	platforms := make([]models.Platform, 0, len(tokens))
	for _, t := range tokens {
		p, err := models.ParsePlatform(t)
		if err != nil {
			return nil, err
		}
		platforms = append(platforms, p)
	}
	return platforms, nil
}

// ============ PROCESS COMMAND ============

func processCmd() *cobra.Command {
	var (
		captionText string
		captionFile string
		topic       string
		audience    string
		toneName    string
		platforms   []string
		polish      bool
		asJSON      bool
	)

	cmd := &cobra.Command{
		Use:   "process",
		Short: "Generate a publishing package from a content brief",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()

			if captionFile != "" {
				data, err := os.ReadFile(captionFile)
				if err != nil {
					return fmt.Errorf("failed to read caption file: %w", err)
				}
				captionText = string(data)
			}
			if captionText == "" {
				return fmt.Errorf("either --caption or --file is required")
			}

			tone, err := models.ParseTone(toneName)
			if err != nil {
				return err
			}

			parsedPlatforms, err := parsePlatforms(platforms)
			if err != nil {
				return err
			}

			if audience == "" {
				audience = cfg.Publishing.DefaultAudience
			}

			input := models.ContentInput{
				RawCaption:     captionText,
				VideoTopic:     topic,
				TargetAudience: audience,
				Tone:           tone,
				Platforms:      parsedPlatforms,
			}

			agent := newContentAgent(polish)
			record, pkg, err := agent.ProcessAndSave(ctx, input, nil)
			if err != nil {
				return err
			}

			if asJSON {
				return printJSON(pkg)
			}

			fmt.Println(content.FormatReport(pkg))
			if record != nil && record.ID != 0 {
				fmt.Printf("\nSaved as package %d.\n", record.ID)
			}
			return nil
		},
	}

	cmd.Flags().StringVar(&captionText, "caption", "", "Raw video caption text")
	cmd.Flags().StringVar(&captionFile, "file", "", "Read the caption from a file")
	cmd.Flags().StringVar(&topic, "topic", "", "Video topic (required)")
	cmd.Flags().StringVar(&audience, "audience", "", "Target audience")
	cmd.Flags().StringVar(&toneName, "tone", "casual", "Tone: casual, educational, motivational, sales")
	cmd.Flags().StringSliceVar(&platforms, "platforms", nil, "Platforms (default: all)")
	cmd.Flags().BoolVar(&polish, "polish", false, "Run the AI polish pass even if disabled in config")
	cmd.Flags().BoolVar(&asJSON, "json", false, "Output as JSON")
	cmd.MarkFlagRequired("topic")

	return cmd
}

// ============ HOOKS COMMAND ============

func hooksCmd() *cobra.Command {
	var (
		topic      string
		audience   string
		keyMessage string
		toneName   string
		platforms  []string
		styles     []string
		generic    bool
		asJSON     bool
	)

	cmd := &cobra.Command{
		Use:   "hooks",
		Short: "Generate video hooks for a topic",
		RunE: func(cmd *cobra.Command, args []string) error {
			tone, err := models.ParseTone(toneName)
			if err != nil {
				return err
			}

			parsedPlatforms, err := parsePlatforms(platforms)
			if err != nil {
				return err
			}

			hookStyles := make([]models.HookStyle, 0, len(styles))
			for _, s := range styles {
				style, err := models.ParseHookStyle(s)
				if err != nil {
					return err
				}
				hookStyles = append(hookStyles, style)
			}

			if audience == "" {
				audience = cfg.Publishing.DefaultAudience
			}

			input := models.HookInput{
				VideoTopic:     topic,
				TargetAudience: audience,
				KeyMessage:     keyMessage,
				Tone:           tone,
				Platforms:      parsedPlatforms,
				HookStyles:     hookStyles,
			}

			agent := hooks.NewAgent(log)

			var output *models.HookOutput
			if generic {
				output, err = agent.ProcessGeneric(input)
			} else {
				output, err = agent.Process(input)
			}
			if err != nil {
				return err
			}

			if asJSON {
				return printJSON(output)
			}

			fmt.Println(hooks.FormatReport(output))
			return nil
		},
	}

	cmd.Flags().StringVar(&topic, "topic", "", "Video topic (required)")
	cmd.Flags().StringVar(&audience, "audience", "", "Target audience")
	cmd.Flags().StringVar(&keyMessage, "message", "", "Key message following the hook")
	cmd.Flags().StringVar(&toneName, "tone", "casual", "Tone: casual, educational, motivational, sales")
	cmd.Flags().StringSliceVar(&platforms, "platforms", nil, "Platforms (default: all)")
	cmd.Flags().StringSliceVar(&styles, "styles", nil, "Hook styles (default: all)")
	cmd.Flags().BoolVar(&generic, "generic", false, "Use the English template set with attention scores")
	cmd.Flags().BoolVar(&asJSON, "json", false, "Output as JSON")
	cmd.MarkFlagRequired("topic")

	return cmd
}

// ============ INTAKE COMMANDS ============

func intakeCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "intake",
		Short: "Brief intake commands",
	}

	cmd.AddCommand(intakeRunCmd())
	return cmd
}

func intakeRunCmd() *cobra.Command {
	var sourceName string

	cmd := &cobra.Command{
		Use:   "run",
		Short: "Fetch briefs from sources and store them as drafts",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()

			sourceManager := newSourceManager()
			agent := intake.NewAgent(sourceManager, repo, cfg.Publishing, log)

			var result *intake.IntakeResult
			var err error

			if sourceName != "" {
				result, err = agent.RunForSource(ctx, sourceName)
			} else {
				result, err = agent.Run(ctx)
			}

			if err != nil {
				return err
			}

			fmt.Printf("\n=== Intake Results ===\n")
			fmt.Printf("Briefs Found:   %d\n", result.BriefsFound)
			fmt.Printf("Briefs Saved:   %d\n", result.BriefsSaved)
			fmt.Printf("Briefs Skipped: %d\n", result.BriefsSkipped)
			fmt.Printf("Duration:       %s\n", result.Duration)

			if len(result.Errors) > 0 {
				fmt.Printf("\nErrors:\n")
				for _, e := range result.Errors {
					fmt.Printf("  - %s\n", e)
				}
			}

			return nil
		},
	}

	cmd.Flags().StringVar(&sourceName, "source", "", "Run intake for specific source only")
	return cmd
}

func newSourceManager() *source.Manager {
	sourceManager := source.NewManager()

	if cfg.Sources.RSS.Enabled {
		for _, src := range rss.NewMultiple(cfg.Sources.RSS, log) {
			sourceManager.Register(src)
		}
	}

	if cfg.Sources.Custom.Enabled {
		sourceManager.Register(custom.New(cfg.Sources.Custom, log))
	}

	return sourceManager
}

// ============ DRAFTS COMMANDS ============

func draftsCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "drafts",
		Short: "Draft management commands",
	}

	cmd.AddCommand(draftsListCmd())
	cmd.AddCommand(draftsShowCmd())
	cmd.AddCommand(draftsProcessCmd())
	return cmd
}

func draftsListCmd() *cobra.Command {
	var status string
	var limit int

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List stored drafts",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()

			filter := storage.DefaultDraftFilter()
			filter.Limit = limit
			if status != "" {
				s := models.DraftStatus(status)
				filter.Status = &s
			}

			drafts, err := repo.ListDrafts(ctx, filter)
			if err != nil {
				return err
			}

			fmt.Printf("\n=== Drafts (%d) ===\n\n", len(drafts))
			for _, d := range drafts {
				fmt.Printf("[%d] %s | %s\n", d.ID, d.Status, d.VideoTopic)
				fmt.Printf("    Source: %s/%s | Tone: %s\n", d.SourceType, d.SourceName, d.Tone)
				fmt.Printf("    Caption: %s\n", truncateStr(d.RawCaption, 100))
				if d.ErrorMessage != "" {
					fmt.Printf("    Error: %s\n", d.ErrorMessage)
				}
				fmt.Println()
			}

			return nil
		},
	}

	cmd.Flags().StringVar(&status, "status", "", "Filter by status: pending, processed, failed")
	cmd.Flags().IntVar(&limit, "limit", 20, "Maximum drafts to show")
	return cmd
}

func draftsShowCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "show [draft-id]",
		Short: "Show a draft in full",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()

			draftID, err := strconv.ParseUint(args[0], 10, 64)
			if err != nil {
				return fmt.Errorf("invalid draft ID: %w", err)
			}

			draft, err := repo.GetDraftByID(ctx, uint(draftID))
			if err != nil {
				return err
			}

			fmt.Printf("\n=== Draft %d ===\n", draft.ID)
			fmt.Printf("Topic:      %s\n", draft.VideoTopic)
			fmt.Printf("Status:     %s\n", draft.Status)
			fmt.Printf("Source:     %s/%s\n", draft.SourceType, draft.SourceName)
			fmt.Printf("Tone:       %s\n", draft.Tone)
			fmt.Printf("Platforms:  %v\n", []string(draft.Platforms))
			fmt.Printf("Audience:   %s\n", draft.TargetAudience)
			fmt.Printf("Discovered: %s\n", draft.DiscoveredAt.Format(time.RFC1123))
			fmt.Printf("\nCaption:\n%s\n", draft.RawCaption)

			return nil
		},
	}

	return cmd
}

func draftsProcessCmd() *cobra.Command {
	var limit int
	var draftID uint

	cmd := &cobra.Command{
		Use:   "process",
		Short: "Process pending drafts into publishing packages",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			agent := newContentAgent(false)

			var drafts []*models.Draft
			var err error

			if draftID != 0 {
				draft, err := repo.GetDraftByID(ctx, draftID)
				if err != nil {
					return err
				}
				drafts = []*models.Draft{draft}
			} else {
				drafts, err = repo.GetPendingDrafts(ctx, limit)
				if err != nil {
					return err
				}
			}

			if len(drafts) == 0 {
				fmt.Println("No pending drafts.")
				return nil
			}

			processed := 0
			failed := 0
			for _, draft := range drafts {
				record, err := agent.ProcessDraft(ctx, draft)
				if err != nil {
					fmt.Printf("[%d] FAILED: %s\n", draft.ID, err)
					failed++
					continue
				}
				fmt.Printf("[%d] %s -> package %d\n", draft.ID, draft.VideoTopic, record.ID)
				processed++
			}

			fmt.Printf("\nProcessed: %d, Failed: %d\n", processed, failed)
			return nil
		},
	}

	cmd.Flags().IntVar(&limit, "limit", 10, "Maximum drafts to process")
	cmd.Flags().UintVar(&draftID, "draft-id", 0, "Process a single draft by ID")
	return cmd
}

// ============ PACKAGES COMMANDS ============

func packagesCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "packages",
		Short: "Generated package commands",
	}

	cmd.AddCommand(packagesListCmd())
	cmd.AddCommand(packagesShowCmd())
	cmd.AddCommand(packagesExportCmd())
	return cmd
}

func packagesListCmd() *cobra.Command {
	var limit int

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List generated publishing packages",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()

			filter := storage.DefaultPackageFilter()
			filter.Limit = limit

			records, err := repo.ListPackages(ctx, filter)
			if err != nil {
				return err
			}

			fmt.Printf("\n=== Packages (%d) ===\n\n", len(records))
			for _, r := range records {
				fmt.Printf("[%d] %s | %s\n", r.ID, r.Status, r.VideoTopic)
				fmt.Printf("    Tone: %s | Platforms: %d | Corrections: %d\n", r.Tone, r.PlatformCount, r.Corrections)
				fmt.Printf("    Created: %s\n", r.CreatedAt.Format(time.RFC1123))
				fmt.Println()
			}

			return nil
		},
	}

	cmd.Flags().IntVar(&limit, "limit", 20, "Maximum packages to show")
	return cmd
}

func packagesShowCmd() *cobra.Command {
	var asJSON bool

	cmd := &cobra.Command{
		Use:   "show [package-id]",
		Short: "Show a generated package in full",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()

			packageID, err := strconv.ParseUint(args[0], 10, 64)
			if err != nil {
				return fmt.Errorf("invalid package ID: %w", err)
			}

			record, err := repo.GetPackageByID(ctx, uint(packageID))
			if err != nil {
				return err
			}

			pkg, err := record.Decode()
			if err != nil {
				return fmt.Errorf("failed to decode package: %w", err)
			}

			if asJSON {
				return printJSON(pkg)
			}

			fmt.Println(content.FormatReport(pkg))
			return nil
		},
	}

	cmd.Flags().BoolVar(&asJSON, "json", false, "Output as JSON")
	return cmd
}

func packagesExportCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "export [package-id]",
		Short: "Mark a package as exported in the Google Sheets tracker",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()

			if !cfg.Tracker.Enabled {
				return fmt.Errorf("tracker is not enabled in config - set tracker.enabled=true and tracker.spreadsheet_id")
			}

			packageID, err := strconv.ParseUint(args[0], 10, 64)
			if err != nil {
				return fmt.Errorf("invalid package ID: %w", err)
			}

			record, err := repo.GetPackageByID(ctx, uint(packageID))
			if err != nil {
				return err
			}

			t, err := tracker.NewSheetsTracker(cfg.Tracker, log)
			if err != nil {
				return fmt.Errorf("failed to create tracker: %w", err)
			}

			if err := t.MarkExported(ctx, record.ID); err != nil {
				return fmt.Errorf("failed to mark package exported: %w", err)
			}

			record.Status = models.RecordStatusExported
			if err := repo.UpdatePackage(ctx, record); err != nil {
				return err
			}

			fmt.Printf("Package %d marked as exported.\n", record.ID)
			return nil
		},
	}

	return cmd
}

// ============ TRACKER COMMANDS ============

func trackerCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "tracker",
		Short: "Google Sheets tracker commands",
	}

	cmd.AddCommand(trackerInitCmd())
	return cmd
}

func trackerInitCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "init",
		Short: "Initialize the tracking sheet with headers",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()

			if !cfg.Tracker.Enabled {
				return fmt.Errorf("tracker is not enabled in config - set tracker.enabled=true and tracker.spreadsheet_id")
			}

			t, err := tracker.NewSheetsTracker(cfg.Tracker, log)
			if err != nil {
				return fmt.Errorf("failed to create tracker: %w", err)
			}

			if err := t.InitializeSheet(ctx); err != nil {
				return fmt.Errorf("failed to initialize sheet: %w", err)
			}

			fmt.Println("Tracking sheet initialized successfully!")
			fmt.Printf("Spreadsheet ID: %s\n", cfg.Tracker.SpreadsheetID)
			fmt.Printf("Sheet Name: %s\n", cfg.Tracker.SheetName)
			fmt.Println("\nColumns created:")
			for i, col := range tracker.SheetColumns {
				fmt.Printf("  %d. %s\n", i+1, col)
			}

			return nil
		},
	}
}

// ============ PLATFORMS COMMAND ============

func platformsCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "platforms",
		Short: "Show supported platforms and their publishing profiles",
		RunE: func(cmd *cobra.Command, args []string) error {
			packager := platform.NewPackager()
			for _, p := range models.AllPlatforms() {
				fmt.Println(packager.Summary(p))
				fmt.Println()
			}
			return nil
		},
	}

	return cmd
}

func printJSON(v interface{}) error {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return err
	}
	fmt.Println(string(data))
	return nil
}

func truncateStr(s string, maxLen int) string {
	runes := []rune(s)
	if len(runes) <= maxLen {
		return s
	}
	return string(runes[:maxLen]) + "..."
}
