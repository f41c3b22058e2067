package intake

import (
	"context"
	"fmt"
	"time"

	"github.com/orizenati71-dev/media-agents/internal/config"
	"github.com/orizenati71-dev/media-agents/internal/models"
	"github.com/orizenati71-dev/media-agents/internal/source"
	"github.com/orizenati71-dev/media-agents/internal/storage"
	"github.com/orizenati71-dev/media-agents/pkg/logger"
)

// Agent collects content briefs from the registered sources and stores
// them as pending drafts for the content pipeline.
type Agent struct {
	sourceManager *source.Manager
	repository    storage.Repository
	publishing    config.PublishingConfig
	log           *logger.Logger
}

// NewAgent creates a new intake agent
func NewAgent(
	sourceManager *source.Manager,
	repository storage.Repository,
	publishing config.PublishingConfig,
	log *logger.Logger,
) *Agent {
	return &Agent{
		sourceManager: sourceManager,
		repository:    repository,
		publishing:    publishing,
		log:           log.WithComponent("intake"),
	}
}

// IntakeResult contains the results of an intake run
type IntakeResult struct {
	BriefsFound   int
	BriefsSaved   int
	BriefsSkipped int
	Errors        []error
	Duration      time.Duration
}

// Run fetches briefs from all sources and stores the new ones as drafts
func (a *Agent) Run(ctx context.Context) (*IntakeResult, error) {
	startTime := time.Now()
	result := &IntakeResult{}

	a.log.Info().Msg("Starting brief intake")

	rawBriefs, fetchErrors := a.sourceManager.FetchAll(ctx)
	result.Errors = append(result.Errors, fetchErrors...)
	result.BriefsFound = len(rawBriefs)

	a.log.Info().
		Int("briefs_found", len(rawBriefs)).
		Int("fetch_errors", len(fetchErrors)).
		Msg("Fetched briefs from sources")

	if len(rawBriefs) == 0 {
		a.log.Warn().Msg("No briefs found from any source")
		result.Duration = time.Since(startTime)
		return result, nil
	}

	a.saveBriefs(ctx, rawBriefs, result)
	result.Duration = time.Since(startTime)

	a.log.Info().
		Int("briefs_saved", result.BriefsSaved).
		Int("briefs_skipped", result.BriefsSkipped).
		Dur("duration", result.Duration).
		Msg("Intake completed")

	return result, nil
}

// RunForSource runs intake for a single named source
func (a *Agent) RunForSource(ctx context.Context, sourceName string) (*IntakeResult, error) {
	startTime := time.Now()
	result := &IntakeResult{}

	src := a.sourceManager.GetSourceByName(sourceName)
	if src == nil {
		return nil, fmt.Errorf("source not found: %s", sourceName)
	}

	a.log.Info().Str("source", sourceName).Msg("Running intake for source")

	rawBriefs, err := src.Fetch(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch from %s: %w", sourceName, err)
	}

	result.BriefsFound = len(rawBriefs)
	a.saveBriefs(ctx, rawBriefs, result)
	result.Duration = time.Since(startTime)

	return result, nil
}

// saveBriefs deduplicates briefs and stores the new ones as pending drafts
func (a *Agent) saveBriefs(ctx context.Context, briefs []*models.RawBrief, result *IntakeResult) {
	seen := make(map[string]bool)

	for _, brief := range briefs {
		externalID := a.externalID(brief)

		// Skip duplicates within this batch
		if seen[externalID] {
			result.BriefsSkipped++
			continue
		}
		seen[externalID] = true

		// Skip briefs already stored
		existing, _ := a.repository.GetDraftByExternalID(ctx, externalID)
		if existing != nil {
			result.BriefsSkipped++
			continue
		}

		draft := a.buildDraft(brief, externalID)
		if err := a.repository.CreateDraft(ctx, draft); err != nil {
			a.log.Warn().
				Err(err).
				Str("topic", brief.VideoTopic).
				Msg("Failed to save draft")
			result.BriefsSkipped++
			continue
		}

		result.BriefsSaved++
	}
}

// externalID derives a stable identity for a brief. RSS items use the link,
// configured briefs fall back to the topic text.
func (a *Agent) externalID(brief *models.RawBrief) string {
	identity := brief.URL
	if identity == "" {
		identity = brief.VideoTopic + "|" + brief.RawCaption
	}
	return source.GenerateExternalID(brief.SourceType, identity)
}

// buildDraft converts a raw brief into a pending draft, filling in the
// configured publishing defaults
func (a *Agent) buildDraft(brief *models.RawBrief, externalID string) *models.Draft {
	audience := brief.TargetAudience
	if audience == "" {
		audience = a.publishing.DefaultAudience
	}

	tone := models.ToneCasual
	if parsed, err := models.ParseTone(a.publishing.DefaultTone); err == nil {
		tone = parsed
	}

	platforms := make(models.StringSlice, 0, len(a.publishing.DefaultPlatforms))
	for _, p := range a.publishing.DefaultPlatforms {
		if parsed, err := models.ParsePlatform(p); err == nil {
			platforms = append(platforms, string(parsed))
		}
	}
	if len(platforms) == 0 {
		for _, p := range models.DefaultPlatforms() {
			platforms = append(platforms, string(p))
		}
	}

	return &models.Draft{
		ExternalID:     externalID,
		RawCaption:     brief.RawCaption,
		VideoTopic:     brief.VideoTopic,
		TargetAudience: audience,
		Tone:           tone,
		Platforms:      platforms,
		SourceType:     brief.SourceType,
		SourceName:     brief.SourceName,
		RawData:        models.JSON(brief.RawData),
		Status:         models.DraftStatusPending,
	}
}
