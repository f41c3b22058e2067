package content

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/orizenati71-dev/media-agents/internal/ai"
	"github.com/orizenati71-dev/media-agents/internal/caption"
	"github.com/orizenati71-dev/media-agents/internal/hashtag"
	"github.com/orizenati71-dev/media-agents/internal/models"
	"github.com/orizenati71-dev/media-agents/internal/platform"
	"github.com/orizenati71-dev/media-agents/internal/qa"
	"github.com/orizenati71-dev/media-agents/internal/storage"
	"github.com/orizenati71-dev/media-agents/internal/tracker"
	"github.com/orizenati71-dev/media-agents/pkg/logger"
)

// Agent turns a content brief into a complete publishing package: QA on
// the raw caption, then captions, hashtags, and platform adaptation for
// each requested platform.
type Agent struct {
	normalizer *qa.Normalizer
	captions   *caption.Composer
	hashtags   *hashtag.Composer
	packager   *platform.Packager

	// Optional collaborators, wired via setters
	aiClient   *ai.Client
	repository storage.Repository
	tracker    *tracker.SheetsTracker

	maxHashtags     int
	emojiDecoration bool

	log *logger.Logger
}

// Option configures the content agent
type Option func(*Agent)

// WithAIPolish enables the Claude phrasing pass on corrected captions
func WithAIPolish(client *ai.Client) Option {
	return func(a *Agent) { a.aiClient = client }
}

// WithRepository enables persisting generated packages
func WithRepository(repo storage.Repository) Option {
	return func(a *Agent) { a.repository = repo }
}

// WithTracker enables exporting packages to the Google Sheets tracker
func WithTracker(t *tracker.SheetsTracker) Option {
	return func(a *Agent) { a.tracker = t }
}

// WithMaxHashtags overrides the default combined hashtag budget
func WithMaxHashtags(n int) Option {
	return func(a *Agent) {
		if n > 0 {
			a.maxHashtags = n
		}
	}
}

// WithEmojiDecoration enables emoji decoration on short captions
func WithEmojiDecoration(enabled bool) Option {
	return func(a *Agent) { a.emojiDecoration = enabled }
}

// NewAgent creates a new content agent
func NewAgent(log *logger.Logger, opts ...Option) *Agent {
	a := &Agent{
		normalizer:  qa.NewNormalizer(),
		captions:    caption.NewComposer(),
		hashtags:    hashtag.NewComposer(),
		packager:    platform.NewPackager(),
		maxHashtags: 15,
		log:         log.WithComponent("content"),
	}
	for _, opt := range opts {
		opt(a)
	}
	return a
}

// Process generates a complete publishing package for the given input
func (a *Agent) Process(ctx context.Context, input models.ContentInput) (*models.PublishingPackage, error) {
	input = input.Normalize()
	if input.RawCaption == "" {
		return nil, fmt.Errorf("raw caption is required")
	}

	startTime := time.Now()
	a.log.Info().
		Str("topic", input.VideoTopic).
		Str("tone", string(input.Tone)).
		Int("platforms", len(input.Platforms)).
		Msg("Processing content brief")

	// Step 1: Hebrew QA
	qaResult := a.normalizer.Process(input.RawCaption)

	// Optional phrasing pass on the corrected text
	if a.aiClient != nil {
		polished, err := a.aiClient.PolishCaption(ctx, qaResult.CorrectedText, input.VideoTopic)
		if err != nil {
			a.log.Warn().Err(err).Msg("AI polish failed, keeping normalizer output")
		} else if polished != qaResult.CorrectedText {
			qaResult.CorrectedText = polished
			qaResult.Notes = append(qaResult.Notes, "הטקסט עבר ליטוש נוסף")
		}
	}

	// Step 2: One package per requested platform, in request order
	packages := make([]models.PlatformPackage, 0, len(input.Platforms))
	for _, p := range input.Platforms {
		packages = append(packages, a.platformPackage(qaResult, input, p))
	}

	pkg := &models.PublishingPackage{
		QAResult:     qaResult,
		Platforms:    packages,
		GeneralNotes: a.generalNotes(input, qaResult),
	}

	a.log.Info().
		Int("corrections", len(qaResult.Corrections)).
		Int("packages", len(packages)).
		Dur("duration", time.Since(startTime)).
		Msg("Publishing package generated")

	return pkg, nil
}

// ProcessAndSave generates a package, persists it, and exports it to the
// tracker when one is configured. draftID is nil for ad-hoc CLI runs.
func (a *Agent) ProcessAndSave(ctx context.Context, input models.ContentInput, draftID *uint) (*models.PackageRecord, *models.PublishingPackage, error) {
	pkg, err := a.Process(ctx, input)
	if err != nil {
		return nil, nil, err
	}

	record, err := models.NewPackageRecord(input.Normalize(), pkg, draftID)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to build package record: %w", err)
	}

	if a.repository != nil {
		if err := a.repository.CreatePackage(ctx, record); err != nil {
			return nil, nil, fmt.Errorf("failed to save package: %w", err)
		}
		a.log.Info().Uint("package_id", record.ID).Msg("Package saved")
	}

	if a.tracker != nil {
		if err := a.tracker.TrackPackage(ctx, record, pkg); err != nil {
			// Tracking failure should not lose the generated package
			a.log.Warn().Err(err).Msg("Failed to export package to tracker")
		}
	}

	return record, pkg, nil
}

// ProcessDraft runs the pipeline for a stored draft and updates its status
func (a *Agent) ProcessDraft(ctx context.Context, draft *models.Draft) (*models.PackageRecord, error) {
	record, _, err := a.ProcessAndSave(ctx, draft.ContentInput(), &draft.ID)

	if a.repository != nil {
		if err != nil {
			draft.Status = models.DraftStatusFailed
			draft.ErrorMessage = err.Error()
		} else {
			draft.Status = models.DraftStatusProcessed
			draft.ErrorMessage = ""
		}
		if updateErr := a.repository.UpdateDraft(ctx, draft); updateErr != nil {
			a.log.Warn().Err(updateErr).Uint("draft_id", draft.ID).Msg("Failed to update draft status")
		}
	}

	return record, err
}

// platformPackage builds the complete package for a single platform
func (a *Agent) platformPackage(qaResult models.QAResult, input models.ContentInput, p models.Platform) models.PlatformPackage {
	log := a.log.WithPlatform(string(p))

	captionSet := a.captions.Generate(qaResult.CorrectedText, input.VideoTopic, input.Tone, p)
	if a.emojiDecoration {
		captionSet.CaptionShort = a.captions.AddEmojis(captionSet.CaptionShort, 2)
	}

	hashtagSet := a.hashtags.Generate(input.VideoTopic, p, a.maxHashtags)
	combined := a.hashtags.Combine(hashtagSet, p)

	pkg := a.packager.Adapt(captionSet, p, input.Tone, combined, input.VideoTopic)

	log.Debug().
		Int("hashtags", len(combined)).
		Msg("Platform package built")

	return pkg
}

// generalNotes builds the aggregate notes line for the package
func (a *Agent) generalNotes(input models.ContentInput, qaResult models.QAResult) string {
	var notes []string

	if len(qaResult.Corrections) > 0 {
		notes = append(notes, fmt.Sprintf("בוצעו %d תיקונים בטקסט המקורי", len(qaResult.Corrections)))
	}

	notes = append(notes, fmt.Sprintf("קהל יעד: %s", input.TargetAudience))
	notes = append(notes, fmt.Sprintf("טון: %s", input.Tone.HebrewName()))

	names := make([]string, 0, len(input.Platforms))
	for _, p := range input.Platforms {
		names = append(names, string(p))
	}
	notes = append(notes, fmt.Sprintf("פלטפורמות: %s", strings.Join(names, ", ")))

	return strings.Join(notes, " | ")
}
