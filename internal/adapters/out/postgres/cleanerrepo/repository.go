package cleanerrepo

import (
	"context"
	"errors"

	"cleaning/internal/core/domain/model/cleaner"
	"cleaning/internal/pkg/errs"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// GormCleanerRepository implements CleanerRepository using GORM.
type GormCleanerRepository struct {
	db      *gorm.DB
	tracker aggregateTracker
}

// aggregateTracker defines the interface for tracking aggregates.
type aggregateTracker interface {
	TrackAggregate(id int64, aggregate any)
}

// NewGormCleanerRepository creates a new GORM cleaner repository.
func NewGormCleanerRepository(db *gorm.DB, tracker aggregateTracker) *GormCleanerRepository {
	return &GormCleanerRepository{
		db:      db,
		tracker: tracker,
	}
}

// Add saves a new cleaner profile to the database.
// Fails on a duplicate user id.
func (r *GormCleanerRepository) Add(ctx context.Context, aggregate *cleaner.Cleaner) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)
	if err := r.db.WithContext(ctx).Create(&dto).Error; err != nil {
		return err
	}

	r.tracker.TrackAggregate(aggregate.ID(), aggregate)
	return nil
}

// Update saves an existing cleaner profile to the database.
// Uses a full-row save so switching availability off is not skipped as a
// zero value.
func (r *GormCleanerRepository) Update(ctx context.Context, aggregate *cleaner.Cleaner) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)
	result := r.db.WithContext(ctx).
		Model(&CleanerDTO{}).
		Where("user_id = ?", dto.UserID).
		Updates(map[string]any{
			"name":         dto.Name,
			"city":         dto.City,
			"availability": dto.Availability,
		})
	if result.Error != nil {
		return result.Error
	}

	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}

	r.tracker.TrackAggregate(aggregate.ID(), aggregate)
	return nil
}

// Get retrieves a cleaner profile by the underlying user id.
func (r *GormCleanerRepository) Get(ctx context.Context, userID int64) (*cleaner.Cleaner, error) {
	var dto CleanerDTO
	if err := r.db.WithContext(ctx).First(&dto, "user_id = ?", userID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("cleaner", userID)
		}
		return nil, err
	}

	return toDomain(dto)
}

// GetForUpdate retrieves a cleaner profile by user id with SELECT ... FOR UPDATE.
// Must run inside a transaction; the lock is held until commit or rollback.
func (r *GormCleanerRepository) GetForUpdate(ctx context.Context, userID int64) (*cleaner.Cleaner, error) {
	var dto CleanerDTO
	err := r.db.WithContext(ctx).
		Clauses(clause.Locking{Strength: "UPDATE"}).
		First(&dto, "user_id = ?", userID).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("cleaner", userID)
		}
		return nil, err
	}

	return toDomain(dto)
}

// GetAll retrieves all cleaner profiles sorted by name.
func (r *GormCleanerRepository) GetAll(ctx context.Context) ([]*cleaner.Cleaner, error) {
	var dtos []CleanerDTO
	if err := r.db.WithContext(ctx).Order("name").Find(&dtos).Error; err != nil {
		return nil, err
	}

	cleaners := make([]*cleaner.Cleaner, 0, len(dtos))
	for _, dto := range dtos {
		c, err := toDomain(dto)
		if err != nil {
			return nil, err
		}
		cleaners = append(cleaners, c)
	}

	return cleaners, nil
}
