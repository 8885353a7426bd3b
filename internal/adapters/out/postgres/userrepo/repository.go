package userrepo

import (
	"context"
	"errors"

	"fooddelivery/internal/core/domain/model/kernel"
	"fooddelivery/internal/core/domain/model/user"
	"fooddelivery/internal/pkg/errs"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// GormUserRepository implements UserRepository using GORM.
type GormUserRepository struct {
	db      *gorm.DB
	tracker aggregateTracker
}

// aggregateTracker defines the interface for tracking aggregates.
type aggregateTracker interface {
	TrackAggregate(id kernel.UUID, aggregate any)
}

// NewGormUserRepository creates a new GORM user repository.
func NewGormUserRepository(db *gorm.DB, tracker aggregateTracker) *GormUserRepository {
	return &GormUserRepository{
		db:      db,
		tracker: tracker,
	}
}

// Add saves a new user with any attached profiles. The unique index on
// email turns a duplicate registration into a database error even when
// two registrations race past the handler's pre-check.
func (r *GormUserRepository) Add(ctx context.Context, aggregate *user.User) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)
	if err := r.db.WithContext(ctx).Create(&dto).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return errs.NewObjectAlreadyExistsErrorWithCause("user "+dto.Email, err)
		}
		return err
	}

	r.tracker.TrackAggregate(aggregate.ID(), aggregate)
	return nil
}

// Update saves an existing user. The customer profile and its favourites
// are synced here; the delivery-person profile is only created when
// freshly attached, because its mutations flow through
// DeliveryPersonRepository and its version check.
func (r *GormUserRepository) Update(ctx context.Context, aggregate *user.User) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)
	tx := r.db.WithContext(ctx)

	result := tx.Model(&UserDTO{}).
		Where("id = ?", dto.ID).
		Select("*").
		Omit("id", "Customer", "DeliveryPerson").
		Updates(&dto)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return errs.NewObjectNotFoundError("user", aggregate.ID().String())
	}

	if dto.Customer != nil {
		if err := r.syncCustomer(tx, *dto.Customer); err != nil {
			return err
		}
	}

	if dto.DeliveryPerson != nil {
		err := tx.Omit(clause.Associations).
			Clauses(clause.OnConflict{DoNothing: true}).
			Create(dto.DeliveryPerson).Error
		if err != nil {
			return err
		}
	}

	r.tracker.TrackAggregate(aggregate.ID(), aggregate)
	return nil
}

// Get retrieves a user by ID, profiles included.
func (r *GormUserRepository) Get(ctx context.Context, id kernel.UUID) (*user.User, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}

	var dto UserDTO
	err := r.withProfiles(r.db.WithContext(ctx)).First(&dto, "id = ?", id.Bytes()).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("user", id.String())
		}
		return nil, err
	}

	return toDomain(dto)
}

// GetByEmail retrieves a user by account email.
func (r *GormUserRepository) GetByEmail(ctx context.Context, email kernel.Email) (*user.User, error) {
	if err := email.Validate(); err != nil {
		return nil, err
	}

	var dto UserDTO
	err := r.withProfiles(r.db.WithContext(ctx)).First(&dto, "email = ?", email.String()).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("user", email.String())
		}
		return nil, err
	}

	return toDomain(dto)
}

func (r *GormUserRepository) withProfiles(tx *gorm.DB) *gorm.DB {
	return tx.
		Preload("Customer").
		Preload("Customer.Favorites").
		Preload("DeliveryPerson").
		Preload("DeliveryPerson.Availabilities")
}

// syncCustomer upserts the customer profile and its favourites, removing
// favourites the profile no longer carries.
func (r *GormUserRepository) syncCustomer(tx *gorm.DB, dto CustomerDTO) error {
	err := tx.Omit(clause.Associations).
		Clauses(clause.OnConflict{UpdateAll: true}).
		Create(&dto).Error
	if err != nil {
		return err
	}

	if len(dto.Favorites) == 0 {
		return tx.Where("user_id = ?", dto.UserID).Delete(&FavoriteRestaurantDTO{}).Error
	}

	if err = tx.Clauses(clause.OnConflict{UpdateAll: true}).Create(&dto.Favorites).Error; err != nil {
		return err
	}

	keep := make([]any, 0, len(dto.Favorites))
	for _, favorite := range dto.Favorites {
		keep = append(keep, favorite.RestaurantID)
	}

	return tx.Where("user_id = ? AND restaurant_id NOT IN ?", dto.UserID, keep).
		Delete(&FavoriteRestaurantDTO{}).Error
}
