package models

// ContentInput is the input for the publishing pipeline
type ContentInput struct {
	RawCaption     string     `json:"raw_caption"`     // Raw caption or script (Hebrew or mixed)
	VideoTopic     string     `json:"video_topic"`     // Topic of the video content
	TargetAudience string     `json:"target_audience"` // Target audience description
	Tone           Tone       `json:"tone"`            // Desired tone/vibe
	Platforms      []Platform `json:"platforms"`       // Target platforms, in request order
}

// Normalize fills in default platforms when none were requested
func (c ContentInput) Normalize() ContentInput {
	if len(c.Platforms) == 0 {
		c.Platforms = DefaultPlatforms()
	}
	return c
}

// QAResult is the outcome of the Hebrew QA pass
type QAResult struct {
	OriginalText  string   `json:"original_text"`
	CorrectedText string   `json:"corrected_text"`
	Corrections   []string `json:"corrections"` // Human-readable correction records, in apply order
	Notes         []string `json:"notes"`       // Advisory notes, not corrections
}

// CaptionSet holds the two caption variants generated for a platform
type CaptionSet struct {
	CaptionShort string `json:"caption_short"` // Short punchy caption
	CaptionLong  string `json:"caption_long"`  // Longer caption with more context
}

// HashtagSet holds the two hashtag lists generated for a platform
type HashtagSet struct {
	BroadReach    []string `json:"broad_reach"`    // Broad reach discovery hashtags
	NicheSpecific []string `json:"niche_specific"` // Niche-specific hashtags
}

// PlatformPackage is the complete publishing package for one platform
type PlatformPackage struct {
	Platform          Platform `json:"platform"`
	CaptionA          string   `json:"caption_a"` // Short punchy caption
	CaptionB          string   `json:"caption_b"` // Longer caption
	Hashtags          []string `json:"hashtags"`  // Combined, deduplicated, platform-capped
	PostingSuggestion string   `json:"posting_suggestion"`
	ToneNotes         string   `json:"tone_notes"`
}

// PublishingPackage is the aggregate result across all requested platforms
type PublishingPackage struct {
	QAResult     QAResult          `json:"qa_result"`
	Platforms    []PlatformPackage `json:"platforms"` // One per requested platform, request order
	GeneralNotes string            `json:"general_notes,omitempty"`
}
