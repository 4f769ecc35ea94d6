package stainrepo

import (
	"context"
	"errors"

	"laundry/internal/core/domain/model/kernel"
	"laundry/internal/core/domain/model/stain"
	"laundry/internal/pkg/errs"

	"gorm.io/gorm"
)

// GormStainRequestRepository implements StainRequestRepository using GORM.
type GormStainRequestRepository struct {
	db      *gorm.DB
	tracker aggregateTracker
}

// aggregateTracker defines the interface for tracking aggregates.
type aggregateTracker interface {
	TrackAggregate(id kernel.UUID, aggregate any)
}

// NewGormStainRequestRepository creates a new GORM stain-request repository.
func NewGormStainRequestRepository(db *gorm.DB, tracker aggregateTracker) *GormStainRequestRepository {
	return &GormStainRequestRepository{
		db:      db,
		tracker: tracker,
	}
}

// Add saves a new stain-treatment request to the database.
func (r *GormStainRequestRepository) Add(ctx context.Context, aggregate *stain.Request) error {
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

// Update saves an existing stain-treatment request to the database.
func (r *GormStainRequestRepository) Update(ctx context.Context, aggregate *stain.Request) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)
	result := r.db.WithContext(ctx).Model(&StainRequestDTO{}).Where("id = ?", dto.ID).Updates(&dto)
	if result.Error != nil {
		return result.Error
	}

	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}

	r.tracker.TrackAggregate(aggregate.ID(), aggregate)
	return nil
}

// Get retrieves a stain-treatment request by ID.
func (r *GormStainRequestRepository) Get(ctx context.Context, id kernel.UUID) (*stain.Request, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}

	var dto StainRequestDTO
	if err := r.db.WithContext(ctx).First(&dto, "id = ?", id.Bytes()).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("stain request", id.String())
		}
		return nil, err
	}

	return toDomain(dto)
}

// GetAllPending retrieves all requests still awaiting resolution, oldest first.
func (r *GormStainRequestRepository) GetAllPending(ctx context.Context) ([]*stain.Request, error) {
	var dtos []StainRequestDTO
	err := r.db.WithContext(ctx).
		Where("status IN ?", []int{int(stain.Submitted), int(stain.Reviewed)}).
		Order("created_at").
		Find(&dtos).Error
	if err != nil {
		return nil, err
	}

	requests := make([]*stain.Request, 0, len(dtos))
	for _, dto := range dtos {
		aggregate, err := toDomain(dto)
		if err != nil {
			return nil, err
		}
		requests = append(requests, aggregate)
	}

	return requests, nil
}
