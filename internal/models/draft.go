package models

import "time"

// DraftStatus represents the current state of a draft brief
type DraftStatus string

const (
	DraftStatusPending   DraftStatus = "pending"
	DraftStatusProcessed DraftStatus = "processed"
	DraftStatusFailed    DraftStatus = "failed"
)

// Draft represents a content brief waiting to be processed into publishing assets
type Draft struct {
	ID             uint        `gorm:"primaryKey" json:"id"`
	ExternalID     string      `gorm:"uniqueIndex;not null" json:"external_id"` // Hash of source + URL/text
	RawCaption     string      `gorm:"type:text;not null" json:"raw_caption"`
	VideoTopic     string      `gorm:"not null" json:"video_topic"`
	TargetAudience string      `json:"target_audience"`
	Tone           Tone        `gorm:"default:'casual'" json:"tone"`
	Platforms      StringSlice `gorm:"type:json" json:"platforms"`
	SourceType     string      `gorm:"index;not null" json:"source_type"` // rss, custom, cli
	SourceName     string      `json:"source_name"`
	RawData        JSON        `gorm:"type:json" json:"raw_data"`
	Status         DraftStatus `gorm:"default:'pending'" json:"status"`
	ErrorMessage   string      `json:"error_message"`
	DiscoveredAt   time.Time   `gorm:"autoCreateTime" json:"discovered_at"`
	UpdatedAt      time.Time   `gorm:"autoUpdateTime" json:"updated_at"`
}

// ContentInput converts the stored draft into a pipeline input
func (d *Draft) ContentInput() ContentInput {
	platforms := make([]Platform, 0, len(d.Platforms))
	for _, p := range d.Platforms {
		if parsed, err := ParsePlatform(p); err == nil {
			platforms = append(platforms, parsed)
		}
	}
	return ContentInput{
		RawCaption:     d.RawCaption,
		VideoTopic:     d.VideoTopic,
		TargetAudience: d.TargetAudience,
		Tone:           d.Tone,
		Platforms:      platforms,
	}.Normalize()
}

// RawBrief represents a brief before normalization (from brief sources)
type RawBrief struct {
	RawCaption     string
	VideoTopic     string
	TargetAudience string
	URL            string
	SourceType     string
	SourceName     string
	RawData        map[string]interface{}
	PublishedAt    time.Time
}
