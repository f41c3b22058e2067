package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/robfig/cron/v3"
	"github.com/spf13/cobra"

	"github.com/orizenati71-dev/media-agents/internal/agent/content"
	"github.com/orizenati71-dev/media-agents/internal/agent/intake"
	"github.com/orizenati71-dev/media-agents/internal/ai"
	"github.com/orizenati71-dev/media-agents/internal/config"
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
		Use:   "media-scheduler",
		Short: "Background scheduler for the media agents",
		Long: `Runs scheduled brief intake and content generation in the background.
This daemon should be run as a service for autonomous operation.`,
		RunE: runScheduler,
	}

	rootCmd.Flags().StringVar(&cfgFile, "config", "", "config file path")

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func runScheduler(cmd *cobra.Command, args []string) error {
	var err error

	// Load config
	cfg, err = config.Load(cfgFile)
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return fmt.Errorf("invalid config: %w", err)
	}

	// Initialize logger
	log = logger.New(logger.Config{
		Level:  cfg.Logging.Level,
		Format: cfg.Logging.Format,
		Output: cfg.Logging.Output,
	})

	log.Info().Msg("Starting media agents scheduler")

	// Initialize storage
	repo, err = sqlite.New(cfg.Database.DSN)
	if err != nil {
		return fmt.Errorf("failed to connect to database: %w", err)
	}
	defer repo.Close()

	if err := repo.Migrate(); err != nil {
		return fmt.Errorf("failed to run migrations: %w", err)
	}

	// Start health check server
	go startHealthServer()

	// Initialize source manager
	sourceManager := source.NewManager()
	if cfg.Sources.RSS.Enabled {
		for _, src := range rss.NewMultiple(cfg.Sources.RSS, log) {
			sourceManager.Register(src)
		}
	}
	if cfg.Sources.Custom.Enabled {
		sourceManager.Register(custom.New(cfg.Sources.Custom, log))
	}

	// Create agents
	intakeAgent := intake.NewAgent(sourceManager, repo, cfg.Publishing, log)
	contentAgent := newContentAgent()

	// Create cron scheduler
	c := cron.New(cron.WithLogger(cronLogger{log}))

	// Schedule intake job
	_, err = c.AddFunc(cfg.Scheduler.IntakeCron, func() {
		ctx := context.Background()
		log.Info().Msg("Running scheduled intake")

		result, err := intakeAgent.Run(ctx)
		if err != nil {
			log.Error().Err(err).Msg("Scheduled intake failed")
			return
		}

		log.Info().
			Int("briefs_found", result.BriefsFound).
			Int("briefs_saved", result.BriefsSaved).
			Msg("Scheduled intake completed")
	})
	if err != nil {
		return fmt.Errorf("failed to schedule intake job: %w", err)
	}
	log.Info().Str("cron", cfg.Scheduler.IntakeCron).Msg("Intake job scheduled")

	// Schedule processing job
	_, err = c.AddFunc(cfg.Scheduler.ProcessCron, func() {
		ctx := context.Background()
		log.Info().Msg("Running scheduled processing")

		drafts, err := repo.GetPendingDrafts(ctx, 10)
		if err != nil {
			log.Error().Err(err).Msg("Failed to load pending drafts")
			return
		}

		processed := 0
		failed := 0
		for _, draft := range drafts {
			if _, err := contentAgent.ProcessDraft(ctx, draft); err != nil {
				log.Error().Err(err).Uint("draft_id", draft.ID).Msg("Draft processing failed")
				failed++
				continue
			}
			processed++
		}

		log.Info().
			Int("processed", processed).
			Int("failed", failed).
			Msg("Scheduled processing completed")
	})
	if err != nil {
		return fmt.Errorf("failed to schedule processing job: %w", err)
	}
	log.Info().Str("cron", cfg.Scheduler.ProcessCron).Msg("Processing job scheduled")

	// Start scheduler
	c.Start()
	log.Info().Msg("Scheduler started")

	// Wait for shutdown signal
	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)
	<-sigChan

	log.Info().Msg("Shutting down scheduler")
	c.Stop()

	return nil
}

// newContentAgent wires the content agent with the configured collaborators
func newContentAgent() *content.Agent {
	opts := []content.Option{
		content.WithRepository(repo),
		content.WithMaxHashtags(cfg.Publishing.MaxHashtags),
		content.WithEmojiDecoration(cfg.Publishing.EmojiDecoration),
	}

	if cfg.Publishing.AIPolish && cfg.Anthropic.APIKey != "" {
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

// cronLogger adapts our logger for cron
type cronLogger struct {
	log *logger.Logger
}

func (l cronLogger) Info(msg string, keysAndValues ...interface{}) {
	l.log.Info().Msgf(msg, keysAndValues...)
}

func (l cronLogger) Error(err error, msg string, keysAndValues ...interface{}) {
	l.log.Error().Err(err).Msgf(msg, keysAndValues...)
}

// startHealthServer starts a simple HTTP server for health checks
func startHealthServer() {
	port := os.Getenv("PORT")
	if port == "" {
		port = "10000"
	}

	http.HandleFunc("/health", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		w.Write([]byte("OK"))
	})

	http.HandleFunc("/", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		w.Write([]byte("Media Agents Scheduler"))
	})

	log.Info().Str("port", port).Msg("Health check server starting")
	if err := http.ListenAndServe(":"+port, nil); err != nil {
		log.Error().Err(err).Msg("Health server failed")
	}
}
