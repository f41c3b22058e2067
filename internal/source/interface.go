package source

import (
	"context"
	"crypto/sha256"
	"fmt"

	"github.com/orizenati71-dev/media-agents/internal/models"
)

// BriefSource defines the interface for content brief sources
type BriefSource interface {
	// Name returns the unique name of this source
	Name() string

	// Type returns the source type (rss, custom)
	Type() string

	// Fetch retrieves briefs from the source
	Fetch(ctx context.Context) ([]*models.RawBrief, error)

	// HealthCheck verifies the source is accessible
	HealthCheck(ctx context.Context) error
}

// GenerateExternalID creates a unique ID for a brief based on source and identity
func GenerateExternalID(sourceType, identity string) string {
	data := fmt.Sprintf("%s:%s", sourceType, identity)
	hash := sha256.Sum256([]byte(data))
	return fmt.Sprintf("%x", hash[:16]) // Use first 16 bytes (32 hex chars)
}

// Manager manages multiple brief sources
type Manager struct {
	sources []BriefSource
}

// NewManager creates a new source manager
func NewManager() *Manager {
	return &Manager{
		sources: make([]BriefSource, 0),
	}
}

// Register adds a source to the manager
func (m *Manager) Register(source BriefSource) {
	m.sources = append(m.sources, source)
}

// GetSources returns all registered sources
func (m *Manager) GetSources() []BriefSource {
	return m.sources
}

// GetSourceByName returns a source by name
func (m *Manager) GetSourceByName(name string) BriefSource {
	for _, s := range m.sources {
		if s.Name() == name {
			return s
		}
	}
	return nil
}

// FetchAll fetches briefs from all sources concurrently
func (m *Manager) FetchAll(ctx context.Context) ([]*models.RawBrief, []error) {
	type result struct {
		briefs []*models.RawBrief
		err    error
	}

	results := make(chan result, len(m.sources))

	for _, source := range m.sources {
		go func(s BriefSource) {
			briefs, err := s.Fetch(ctx)
			results <- result{briefs: briefs, err: err}
		}(source)
	}

	var allBriefs []*models.RawBrief
	var errors []error

	for range m.sources {
		r := <-results
		if r.err != nil {
			errors = append(errors, r.err)
		} else {
			allBriefs = append(allBriefs, r.briefs...)
		}
	}

	return allBriefs, errors
}
