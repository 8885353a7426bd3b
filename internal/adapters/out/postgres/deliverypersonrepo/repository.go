package deliverypersonrepo

import (
	"context"
	"errors"
	"fmt"

	"fooddelivery/internal/core/domain/model/kernel"
	"fooddelivery/internal/core/domain/model/user"
	"fooddelivery/internal/pkg/errs"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// GormDeliveryPersonRepository implements DeliveryPersonRepository using GORM.
type GormDeliveryPersonRepository struct {
	db      *gorm.DB
	tracker aggregateTracker
}

// aggregateTracker defines the interface for tracking aggregates.
type aggregateTracker interface {
	TrackAggregate(id kernel.UUID, aggregate any)
}

// NewGormDeliveryPersonRepository creates a new GORM delivery-person
// repository.
func NewGormDeliveryPersonRepository(db *gorm.DB, tracker aggregateTracker) *GormDeliveryPersonRepository {
	return &GormDeliveryPersonRepository{
		db:      db,
		tracker: tracker,
	}
}

// Get retrieves a delivery person by the owning user's identifier.
func (r *GormDeliveryPersonRepository) Get(ctx context.Context, id kernel.UUID) (*user.DeliveryPerson, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}

	var dto DeliveryPersonDTO
	err := r.db.WithContext(ctx).
		Preload("Availabilities").
		First(&dto, "id = ?", id.Bytes()).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("delivery person", id.String())
		}
		return nil, err
	}

	return ToDomain(dto)
}

// GetAllAvailable retrieves every delivery person whose availability flag
// is set. Radius and working-window filtering is domain logic and happens
// in the selector.
func (r *GormDeliveryPersonRepository) GetAllAvailable(ctx context.Context) ([]*user.DeliveryPerson, error) {
	var dtos []DeliveryPersonDTO
	err := r.db.WithContext(ctx).
		Preload("Availabilities").
		Where("is_available = ?", true).
		Find(&dtos).Error
	if err != nil {
		return nil, err
	}

	persons := make([]*user.DeliveryPerson, 0, len(dtos))
	for _, dto := range dtos {
		p, err := ToDomain(dto)
		if err != nil {
			return nil, err
		}
		persons = append(persons, p)
	}

	return persons, nil
}

// Update writes the profile with an optimistic concurrency check: the row
// is updated only while its stored version still equals the aggregate's
// loaded version, and the version advances in the same statement. A lost
// race yields an error unwrapping to errs.ErrVersionIsInvalid.
func (r *GormDeliveryPersonRepository) Update(ctx context.Context, aggregate *user.DeliveryPerson) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := FromDomain(aggregate)
	loadedVersion := dto.Version
	dto.Version = loadedVersion + 1

	tx := r.db.WithContext(ctx)
	result := tx.Model(&DeliveryPersonDTO{}).
		Where("id = ? AND version = ?", dto.ID, loadedVersion).
		Select("*").
		Omit("id", "Availabilities").
		Updates(&dto)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return errs.NewVersionIsInvalidError("delivery person version",
			fmt.Errorf("stored version no longer equals %d", loadedVersion))
	}

	if err := r.syncAvailabilities(tx, dto); err != nil {
		return err
	}

	r.tracker.TrackAggregate(aggregate.ID(), aggregate)
	return nil
}

// syncAvailabilities upserts the profile's working windows and removes
// rows the profile no longer carries.
func (r *GormDeliveryPersonRepository) syncAvailabilities(tx *gorm.DB, dto DeliveryPersonDTO) error {
	if len(dto.Availabilities) == 0 {
		return tx.Where("delivery_person_id = ?", dto.ID).Delete(&AvailabilityDTO{}).Error
	}

	if err := tx.Clauses(clause.OnConflict{UpdateAll: true}).Create(&dto.Availabilities).Error; err != nil {
		return err
	}

	keep := make([]any, 0, len(dto.Availabilities))
	for _, window := range dto.Availabilities {
		keep = append(keep, window.ID)
	}

	return tx.Where("delivery_person_id = ? AND id NOT IN ?", dto.ID, keep).Delete(&AvailabilityDTO{}).Error
}
