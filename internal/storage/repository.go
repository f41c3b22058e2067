package storage

import (
	"context"

	"github.com/orizenati71-dev/media-agents/internal/models"
)

// Repository defines the interface for data persistence
type Repository interface {
	// Draft operations
	CreateDraft(ctx context.Context, draft *models.Draft) error
	GetDraftByID(ctx context.Context, id uint) (*models.Draft, error)
	GetDraftByExternalID(ctx context.Context, externalID string) (*models.Draft, error)
	ListDrafts(ctx context.Context, filter DraftFilter) ([]*models.Draft, error)
	GetPendingDrafts(ctx context.Context, limit int) ([]*models.Draft, error)
	UpdateDraft(ctx context.Context, draft *models.Draft) error
	DeleteDraft(ctx context.Context, id uint) error

	// Package record operations
	CreatePackage(ctx context.Context, record *models.PackageRecord) error
	GetPackageByID(ctx context.Context, id uint) (*models.PackageRecord, error)
	ListPackages(ctx context.Context, filter PackageFilter) ([]*models.PackageRecord, error)
	UpdatePackage(ctx context.Context, record *models.PackageRecord) error
	DeletePackage(ctx context.Context, id uint) error

	// Maintenance
	Close() error
	Migrate() error
}

// DraftFilter defines filtering options for drafts
type DraftFilter struct {
	Status     *models.DraftStatus
	SourceType *string
	Limit      int
	Offset     int
	OrderBy    string // "discovered_at", "updated_at"
	OrderDesc  bool
}

// PackageFilter defines filtering options for package records
type PackageFilter struct {
	Status    *models.RecordStatus
	DraftID   *uint
	Limit     int
	Offset    int
	OrderBy   string
	OrderDesc bool
}

// DefaultDraftFilter returns a filter with sensible defaults
func DefaultDraftFilter() DraftFilter {
	return DraftFilter{
		Limit:     50,
		OrderBy:   "discovered_at",
		OrderDesc: true,
	}
}

// DefaultPackageFilter returns a filter with sensible defaults
func DefaultPackageFilter() PackageFilter {
	return PackageFilter{
		Limit:     50,
		OrderBy:   "created_at",
		OrderDesc: true,
	}
}
