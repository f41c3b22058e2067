package custom

import (
	"context"
	"time"

	"github.com/orizenati71-dev/media-agents/internal/config"
	"github.com/orizenati71-dev/media-agents/internal/models"
	"github.com/orizenati71-dev/media-agents/internal/source"
	"github.com/orizenati71-dev/media-agents/pkg/logger"
)

// Source implements BriefSource for manually configured briefs. Useful for
// seeding the pipeline with planned content that has no external feed.
type Source struct {
	briefs []config.CustomBrief
	log    *logger.Logger
}

// New creates a custom brief source from config
func New(cfg config.CustomConfig, log *logger.Logger) *Source {
	return &Source{
		briefs: cfg.Briefs,
		log:    log.WithSource("custom", "configured"),
	}
}

// Name returns the source name
func (s *Source) Name() string {
	return "configured"
}

// Type returns "custom"
func (s *Source) Type() string {
	return "custom"
}

// Fetch returns the configured briefs
func (s *Source) Fetch(ctx context.Context) ([]*models.RawBrief, error) {
	briefs := make([]*models.RawBrief, 0, len(s.briefs))

	for _, b := range s.briefs {
		if b.Topic == "" && b.Caption == "" {
			continue
		}

		caption := b.Caption
		if caption == "" {
			caption = b.Topic
		}

		briefs = append(briefs, &models.RawBrief{
			RawCaption:     caption,
			VideoTopic:     b.Topic,
			TargetAudience: b.Audience,
			SourceType:     "custom",
			SourceName:     "configured",
			PublishedAt:    time.Now(),
			RawData: map[string]interface{}{
				"topic": b.Topic,
			},
		})
	}

	s.log.Info().Int("count", len(briefs)).Msg("Loaded configured briefs")

	return briefs, nil
}

// HealthCheck always succeeds for configured briefs
func (s *Source) HealthCheck(ctx context.Context) error {
	return nil
}

// Ensure Source implements source.BriefSource
var _ source.BriefSource = (*Source)(nil)
