package models

import (
	"encoding/json"
	"time"
)

// RecordStatus represents the state of a stored package record
type RecordStatus string

const (
	RecordStatusGenerated RecordStatus = "generated"
	RecordStatusExported  RecordStatus = "exported"
)

// PackageRecord persists one generated publishing package
type PackageRecord struct {
	ID            uint         `gorm:"primaryKey" json:"id"`
	DraftID       *uint        `gorm:"index" json:"draft_id"` // Nullable for ad-hoc CLI runs
	Draft         *Draft       `gorm:"foreignKey:DraftID" json:"draft,omitempty"`
	VideoTopic    string       `gorm:"not null" json:"video_topic"`
	Tone          Tone         `json:"tone"`
	Platforms     StringSlice  `gorm:"type:json" json:"platforms"`
	Package       string       `gorm:"type:text;not null" json:"package"` // Serialized PublishingPackage
	Summary       string       `gorm:"type:text" json:"summary"`          // General notes line
	Corrections   int          `json:"corrections"`                       // QA correction count
	PlatformCount int          `json:"platform_count"`
	Status        RecordStatus `gorm:"default:'generated'" json:"status"`
	CreatedAt     time.Time    `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt     time.Time    `gorm:"autoUpdateTime" json:"updated_at"`
}

// NewPackageRecord builds a storable record from a generated package
func NewPackageRecord(input ContentInput, pkg *PublishingPackage, draftID *uint) (*PackageRecord, error) {
	raw, err := json.Marshal(pkg)
	if err != nil {
		return nil, err
	}

	platforms := make(StringSlice, 0, len(input.Platforms))
	for _, p := range input.Platforms {
		platforms = append(platforms, string(p))
	}

	return &PackageRecord{
		DraftID:       draftID,
		VideoTopic:    input.VideoTopic,
		Tone:          input.Tone,
		Platforms:     platforms,
		Package:       string(raw),
		Summary:       pkg.GeneralNotes,
		Corrections:   len(pkg.QAResult.Corrections),
		PlatformCount: len(pkg.Platforms),
		Status:        RecordStatusGenerated,
	}, nil
}

// Decode deserializes the stored publishing package
func (r *PackageRecord) Decode() (*PublishingPackage, error) {
	var pkg PublishingPackage
	if err := json.Unmarshal([]byte(r.Package), &pkg); err != nil {
		return nil, err
	}
	return &pkg, nil
}
