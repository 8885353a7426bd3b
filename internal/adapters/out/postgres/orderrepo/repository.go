package orderrepo

import (
	"context"
	"errors"

	"fooddelivery/internal/core/domain/model/kernel"
	"fooddelivery/internal/core/domain/model/order"
	"fooddelivery/internal/pkg/errs"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// GormOrderRepository implements OrderRepository using GORM.
type GormOrderRepository struct {
	db      *gorm.DB
	tracker aggregateTracker
}

// aggregateTracker defines the interface for tracking aggregates.
type aggregateTracker interface {
	TrackAggregate(id kernel.UUID, aggregate any)
}

// NewGormOrderRepository creates a new GORM order repository.
func NewGormOrderRepository(db *gorm.DB, tracker aggregateTracker) *GormOrderRepository {
	return &GormOrderRepository{
		db:      db,
		tracker: tracker,
	}
}

// Add saves a new order with its items, delivery, and payment.
func (r *GormOrderRepository) Add(ctx context.Context, aggregate *order.Order) error {
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

// Update saves an existing order. Child rows are upserted and line items
// removed from the aggregate are deleted.
func (r *GormOrderRepository) Update(ctx context.Context, aggregate *order.Order) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)
	tx := r.db.WithContext(ctx)

	result := tx.Model(&OrderDTO{}).
		Where("id = ?", dto.ID).
		Select("*").
		Omit("id", "Items", "Delivery", "Payment").
		Updates(&dto)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return errs.NewObjectNotFoundError("order", aggregate.ID().String())
	}

	if err := r.syncItems(tx, dto); err != nil {
		return err
	}

	if dto.Delivery != nil {
		if err := tx.Clauses(clause.OnConflict{UpdateAll: true}).Create(dto.Delivery).Error; err != nil {
			return err
		}
	}

	if dto.Payment != nil {
		if err := tx.Clauses(clause.OnConflict{UpdateAll: true}).Create(dto.Payment).Error; err != nil {
			return err
		}
	}

	r.tracker.TrackAggregate(aggregate.ID(), aggregate)
	return nil
}

// Get retrieves an order by ID, children included.
func (r *GormOrderRepository) Get(ctx context.Context, id kernel.UUID) (*order.Order, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}

	var dto OrderDTO
	err := r.withChildren(r.db.WithContext(ctx)).First(&dto, "id = ?", id.Bytes()).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("order", id.String())
		}
		return nil, err
	}

	return toDomain(dto)
}

// GetFirstPendingUnassigned retrieves the oldest order whose delivery is
// still waiting for a delivery person.
func (r *GormOrderRepository) GetFirstPendingUnassigned(ctx context.Context) (*order.Order, error) {
	var dto OrderDTO
	err := r.withChildren(r.db.WithContext(ctx)).
		Joins("JOIN order_deliveries ON order_deliveries.order_id = orders.id").
		Where("order_deliveries.status = ?", int(order.DeliveryPending)).
		Order("orders.placed_at").
		First(&dto).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("order", "first pending unassigned")
		}
		return nil, err
	}

	return toDomain(dto)
}

// GetAllUndelivered retrieves every order in a non-terminal status.
func (r *GormOrderRepository) GetAllUndelivered(ctx context.Context) ([]*order.Order, error) {
	var dtos []OrderDTO
	err := r.withChildren(r.db.WithContext(ctx)).
		Where("status NOT IN ?", []int{int(order.StatusDelivered), int(order.StatusCancelled)}).
		Order("placed_at").
		Find(&dtos).Error
	if err != nil {
		return nil, err
	}

	orders := make([]*order.Order, 0, len(dtos))
	for _, dto := range dtos {
		o, err := toDomain(dto)
		if err != nil {
			return nil, err
		}
		orders = append(orders, o)
	}

	return orders, nil
}

// withChildren preloads items in insertion order plus the delivery and
// payment children.
func (r *GormOrderRepository) withChildren(tx *gorm.DB) *gorm.DB {
	return tx.
		Preload("Items", func(db *gorm.DB) *gorm.DB {
			return db.Order("position")
		}).
		Preload("Delivery").
		Preload("Payment")
}

// syncItems upserts the aggregate's line items and removes rows the
// aggregate no longer carries.
func (r *GormOrderRepository) syncItems(tx *gorm.DB, dto OrderDTO) error {
	if len(dto.Items) == 0 {
		return tx.Where("order_id = ?", dto.ID).Delete(&ItemDTO{}).Error
	}

	if err := tx.Clauses(clause.OnConflict{UpdateAll: true}).Create(&dto.Items).Error; err != nil {
		return err
	}

	keep := make([]any, 0, len(dto.Items))
	for _, item := range dto.Items {
		keep = append(keep, item.ID)
	}

	return tx.Where("order_id = ? AND id NOT IN ?", dto.ID, keep).Delete(&ItemDTO{}).Error
}
