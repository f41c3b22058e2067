package sqlite

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"github.com/glebarez/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/orizenati71-dev/media-agents/internal/models"
	"github.com/orizenati71-dev/media-agents/internal/storage"
)

// Repository implements storage.Repository using SQLite
type Repository struct {
	db *gorm.DB
}

// New creates a new SQLite repository
func New(dsn string) (*Repository, error) {
	// Ensure directory exists
	dir := filepath.Dir(dsn)
	if dir != "." && dir != "" {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return nil, fmt.Errorf("failed to create data directory: %w", err)
		}
	}

	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	return &Repository{db: db}, nil
}

// Migrate runs database migrations
func (r *Repository) Migrate() error {
	return r.db.AutoMigrate(
		&models.Draft{},
		&models.PackageRecord{},
	)
}

// Close closes the database connection
func (r *Repository) Close() error {
	sqlDB, err := r.db.DB()
	if err != nil {
		return err
	}
	return sqlDB.Close()
}

// Draft operations

func (r *Repository) CreateDraft(ctx context.Context, draft *models.Draft) error {
	return r.db.WithContext(ctx).Create(draft).Error
}

func (r *Repository) GetDraftByID(ctx context.Context, id uint) (*models.Draft, error) {
	var draft models.Draft
	if err := r.db.WithContext(ctx).First(&draft, id).Error; err != nil {
		return nil, err
	}
	return &draft, nil
}

func (r *Repository) GetDraftByExternalID(ctx context.Context, externalID string) (*models.Draft, error) {
	var draft models.Draft
	if err := r.db.WithContext(ctx).Where("external_id = ?", externalID).First(&draft).Error; err != nil {
		return nil, err
	}
	return &draft, nil
}

func (r *Repository) ListDrafts(ctx context.Context, filter storage.DraftFilter) ([]*models.Draft, error) {
	var drafts []*models.Draft
	query := r.db.WithContext(ctx).Model(&models.Draft{})

	if filter.Status != nil {
		query = query.Where("status = ?", *filter.Status)
	}
	if filter.SourceType != nil {
		query = query.Where("source_type = ?", *filter.SourceType)
	}

	orderCol := "discovered_at"
	if filter.OrderBy != "" {
		orderCol = filter.OrderBy
	}
	if filter.OrderDesc {
		query = query.Order(orderCol + " DESC")
	} else {
		query = query.Order(orderCol + " ASC")
	}

	if filter.Limit > 0 {
		query = query.Limit(filter.Limit)
	}
	if filter.Offset > 0 {
		query = query.Offset(filter.Offset)
	}

	if err := query.Find(&drafts).Error; err != nil {
		return nil, err
	}
	return drafts, nil
}

func (r *Repository) GetPendingDrafts(ctx context.Context, limit int) ([]*models.Draft, error) {
	var drafts []*models.Draft
	query := r.db.WithContext(ctx).
		Where("status = ?", models.DraftStatusPending).
		Order("discovered_at ASC")
	if limit > 0 {
		query = query.Limit(limit)
	}
	if err := query.Find(&drafts).Error; err != nil {
		return nil, err
	}
	return drafts, nil
}

func (r *Repository) UpdateDraft(ctx context.Context, draft *models.Draft) error {
	return r.db.WithContext(ctx).Save(draft).Error
}

func (r *Repository) DeleteDraft(ctx context.Context, id uint) error {
	return r.db.WithContext(ctx).Delete(&models.Draft{}, id).Error
}

// Package record operations

func (r *Repository) CreatePackage(ctx context.Context, record *models.PackageRecord) error {
	return r.db.WithContext(ctx).Create(record).Error
}

func (r *Repository) GetPackageByID(ctx context.Context, id uint) (*models.PackageRecord, error) {
	var record models.PackageRecord
	if err := r.db.WithContext(ctx).Preload("Draft").First(&record, id).Error; err != nil {
		return nil, err
	}
	return &record, nil
}

func (r *Repository) ListPackages(ctx context.Context, filter storage.PackageFilter) ([]*models.PackageRecord, error) {
	var records []*models.PackageRecord
	query := r.db.WithContext(ctx).Model(&models.PackageRecord{}).Preload("Draft")

	if filter.Status != nil {
		query = query.Where("status = ?", *filter.Status)
	}
	if filter.DraftID != nil {
		query = query.Where("draft_id = ?", *filter.DraftID)
	}

	orderCol := "created_at"
	if filter.OrderBy != "" {
		orderCol = filter.OrderBy
	}
	if filter.OrderDesc {
		query = query.Order(orderCol + " DESC")
	} else {
		query = query.Order(orderCol + " ASC")
	}

	if filter.Limit > 0 {
		query = query.Limit(filter.Limit)
	}
	if filter.Offset > 0 {
		query = query.Offset(filter.Offset)
	}

	if err := query.Find(&records).Error; err != nil {
		return nil, err
	}
	return records, nil
}

func (r *Repository) UpdatePackage(ctx context.Context, record *models.PackageRecord) error {
	return r.db.WithContext(ctx).Save(record).Error
}

func (r *Repository) DeletePackage(ctx context.Context, id uint) error {
	return r.db.WithContext(ctx).Delete(&models.PackageRecord{}, id).Error
}

// Ensure Repository implements storage.Repository
var _ storage.Repository = (*Repository)(nil)
