package source

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/orizenati71-dev/media-agents/internal/models"
)

type fakeSource struct {
	name   string
	briefs []*models.RawBrief
	err    error
}

func (f *fakeSource) Name() string { return f.name }
func (f *fakeSource) Type() string { return "fake" }
func (f *fakeSource) Fetch(ctx context.Context) ([]*models.RawBrief, error) {
	return f.briefs, f.err
}
func (f *fakeSource) HealthCheck(ctx context.Context) error { return nil }

func TestGenerateExternalID(t *testing.T) {
	id := GenerateExternalID("rss", "https://example.com/item/1")

	assert.Len(t, id, 32)
	assert.Equal(t, id, GenerateExternalID("rss", "https://example.com/item/1"))
	assert.NotEqual(t, id, GenerateExternalID("rss", "https://example.com/item/2"))
	assert.NotEqual(t, id, GenerateExternalID("custom", "https://example.com/item/1"))
}

func TestManagerGetSourceByName(t *testing.T) {
	m := NewManager()
	m.Register(&fakeSource{name: "alpha"})
	m.Register(&fakeSource{name: "beta"})

	require.Len(t, m.GetSources(), 2)
	assert.Equal(t, "beta", m.GetSourceByName("beta").Name())
	assert.Nil(t, m.GetSourceByName("missing"))
}

func TestManagerFetchAll(t *testing.T) {
	m := NewManager()
	m.Register(&fakeSource{
		name:   "alpha",
		briefs: []*models.RawBrief{{VideoTopic: "נושא ראשון"}},
	})
	m.Register(&fakeSource{
		name:   "beta",
		briefs: []*models.RawBrief{{VideoTopic: "נושא שני"}, {VideoTopic: "נושא שלישי"}},
	})
	m.Register(&fakeSource{name: "broken", err: errors.New("feed unreachable")})

	briefs, errs := m.FetchAll(context.Background())

	assert.Len(t, briefs, 3)
	require.Len(t, errs, 1)
	assert.EqualError(t, errs[0], "feed unreachable")
}
