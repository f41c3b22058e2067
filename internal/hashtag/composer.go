// Package hashtag builds broad-reach and niche hashtag sets from static
// tag pools keyed by topic category and platform.
package hashtag

import (
	"strings"

	"github.com/orizenati71-dev/media-agents/internal/models"
)

const (
	// DefaultMaxHashtags is the overall budget split between the broad
	// and niche sets.
	DefaultMaxHashtags = 15

	maxNiches    = 3
	minPerNiche  = 3
	platformLead = 3 // Platform tags placed ahead of the generic pool
)

// Composer generates hashtag sets for social publishing
type Composer struct{}

// NewComposer creates a new hashtag composer
func NewComposer() *Composer {
	return &Composer{}
}

// Generate builds the broad-reach and niche sets for a topic and platform.
// Each set is capped at maxHashtags/2.
func (c *Composer) Generate(topic string, platform models.Platform, maxHashtags int) models.HashtagSet {
	if maxHashtags <= 0 {
		maxHashtags = DefaultMaxHashtags
	}

	niches := DetectNiches(topic)

	return models.HashtagSet{
		BroadReach:    buildBroadReach(platform, maxHashtags/2),
		NicheSpecific: buildNicheSet(niches, maxHashtags/2),
	}
}

// DetectNiches finds up to three niche categories whose keywords appear in
// the lowercased topic, in table order. Topics matching nothing fall back
// to content + motivation.
func DetectNiches(topic string) []string {
	topicLower := strings.ToLower(topic)

	var detected []string
	for _, entry := range nicheKeywords {
		for _, keyword := range entry.Keywords {
			if strings.Contains(topicLower, keyword) {
				detected = append(detected, entry.Niche)
				break
			}
		}
	}

	if len(detected) == 0 {
		detected = []string{"content", "motivation"}
	}
	if len(detected) > maxNiches {
		detected = detected[:maxNiches]
	}
	return detected
}

// buildBroadReach takes platform tags first, then fills from the generic pool
func buildBroadReach(platform models.Platform, count int) []string {
	var tags []string

	platformSpecific := platformTags[platform]
	if len(platformSpecific) > platformLead {
		platformSpecific = platformSpecific[:platformLead]
	}
	tags = append(tags, platformSpecific...)

	if remaining := count - len(tags); remaining > 0 {
		fill := broadReachBase
		if len(fill) > remaining {
			fill = fill[:remaining]
		}
		tags = append(tags, fill...)
	}

	if len(tags) > count {
		tags = tags[:count]
	}
	return tags
}

// buildNicheSet takes an even share from each detected niche, deduplicated
func buildNicheSet(niches []string, count int) []string {
	var tags []string

	for _, niche := range niches {
		pool, ok := nicheTags[niche]
		if !ok {
			continue
		}
		perNiche := count / len(niches)
		if perNiche < minPerNiche {
			perNiche = minPerNiche
		}
		if len(pool) > perNiche {
			pool = pool[:perNiche]
		}
		tags = append(tags, pool...)
	}

	unique := dedupe(tags)
	if len(unique) > count {
		unique = unique[:count]
	}
	return unique
}

// Combine merges broad-reach then niche tags, deduplicates preserving
// order, and truncates to the platform cap.
func (c *Composer) Combine(set models.HashtagSet, platform models.Platform) []string {
	limit, ok := combineLimits[platform]
	if !ok {
		limit = defaultCombineLimit
	}

	combined := make([]string, 0, len(set.BroadReach)+len(set.NicheSpecific))
	combined = append(combined, set.BroadReach...)
	combined = append(combined, set.NicheSpecific...)

	unique := dedupe(combined)
	if len(unique) > limit {
		unique = unique[:limit]
	}
	return unique
}

// Format renders tags inline (space-separated) or one per line
func (c *Composer) Format(tags []string, inline bool) string {
	if inline {
		return strings.Join(tags, " ")
	}
	return strings.Join(tags, "\n")
}

// dedupe removes duplicates preserving first occurrence
func dedupe(tags []string) []string {
	seen := make(map[string]bool, len(tags))
	unique := make([]string, 0, len(tags))
	for _, tag := range tags {
		if seen[tag] {
			continue
		}
		seen[tag] = true
		unique = append(unique, tag)
	}
	return unique
}
