package order

import (
	"errors"
	"time"

	"fooddelivery/internal/core/domain/model/kernel"
	"fooddelivery/internal/pkg/errs"
	"fooddelivery/internal/pkg/guard"
)

var (
	// ErrOrderIsNotConstructed is returned when an Order instance was not
	// created through the NewOrder factory.
	ErrOrderIsNotConstructed = errors.New("Order must be created via NewOrder constructor")

	// ErrOrderIsLocked is returned when modifying an order after a delivery
	// was assigned or a payment completed.
	ErrOrderIsLocked = errors.New("order is locked")

	// ErrOrderHasNoItems is returned when completing payment for an order
	// without a single line item.
	ErrOrderHasNoItems = errs.NewValueIsRequiredError("order items")
)

// Order is the aggregate root of the ordering domain. It owns the order
// lines, the optional delivery, and the optional payment, and it enforces
// the lifecycle invariants:
//
//   - status transitions follow the Status state machine;
//   - Delivery and Payment are each created at most once;
//   - line items exist only through AddItem/RemoveItem, in insertion order;
//   - once locked (delivery assigned or payment completed), items cannot be
//     removed.
//
// All methods return typed errors for expected failures and never mutate
// state when they fail.
type Order struct {
	id              kernel.UUID
	customerID      kernel.UUID
	restaurantID    kernel.UUID
	deliveryAddress kernel.Address
	status          Status
	isLocked        bool
	items           []*Item
	delivery        *Delivery
	payment         *Payment
	placedAt        time.Time
	deliveredAt     *time.Time
	createdAt       time.Time
	modifiedAt      time.Time
	guard           guard.ConstructorGuard
}

// NewOrder creates a pending, unlocked order without items.
// The delivery address must be a constructed kernel.Address; whether it
// carries coordinates only matters later, at delivery-person selection.
func NewOrder(id, customerID, restaurantID kernel.UUID, deliveryAddress kernel.Address) (*Order, error) {
	now := time.Now().UTC()
	o := &Order{
		status:     StatusPending,
		placedAt:   now,
		createdAt:  now,
		modifiedAt: now,
		guard:      guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		o.setID(id),
		o.setCustomerID(customerID),
		o.setRestaurantID(restaurantID),
		o.setDeliveryAddress(deliveryAddress),
	); err != nil {
		return nil, err
	}

	return o, nil
}

// RestoreOrder reconstructs an order aggregate from persistent storage,
// including its items and the optional delivery and payment children.
func RestoreOrder(
	id, customerID, restaurantID kernel.UUID,
	deliveryAddress kernel.Address,
	status Status,
	isLocked bool,
	items []*Item,
	delivery *Delivery,
	payment *Payment,
	placedAt time.Time,
	deliveredAt *time.Time,
	createdAt, modifiedAt time.Time,
) (*Order, error) {
	o := &Order{
		isLocked:    isLocked,
		delivery:    delivery,
		payment:     payment,
		placedAt:    placedAt,
		deliveredAt: deliveredAt,
		createdAt:   createdAt,
		modifiedAt:  modifiedAt,
		guard:       guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		o.setID(id),
		o.setCustomerID(customerID),
		o.setRestaurantID(restaurantID),
		o.setDeliveryAddress(deliveryAddress),
		o.setStatus(status),
		o.setItems(items),
	); err != nil {
		return nil, err
	}

	if delivery != nil {
		if err := delivery.Validate(); err != nil {
			return nil, err
		}
	}

	if payment != nil {
		if err := payment.Validate(); err != nil {
			return nil, err
		}
	}

	return o, nil
}

// Validate ensures the Order was created through NewOrder or RestoreOrder.
func (o *Order) Validate() error {
	if o == nil {
		return ErrOrderIsNotConstructed
	}
	return o.guard.Validate(ErrOrderIsNotConstructed)
}

// IsEqual compares two orders by identifier.
func (o *Order) IsEqual(other *Order) bool {
	return other != nil && o.id.IsEqual(other.id)
}

// ID returns the order identifier.
func (o *Order) ID() kernel.UUID {
	return o.id
}

// CustomerID returns the ordering customer.
func (o *Order) CustomerID() kernel.UUID {
	return o.customerID
}

// RestaurantID returns the restaurant the order was placed with.
func (o *Order) RestaurantID() kernel.UUID {
	return o.restaurantID
}

// DeliveryAddress returns the destination address.
func (o *Order) DeliveryAddress() kernel.Address {
	return o.deliveryAddress
}

// Status returns the current lifecycle status.
func (o *Order) Status() Status {
	return o.status
}

// IsLocked reports whether the order is locked against item removal.
func (o *Order) IsLocked() bool {
	return o.isLocked
}

// Items returns the order lines in insertion order.
// The returned slice is a copy; the lines themselves are shared.
func (o *Order) Items() []*Item {
	out := make([]*Item, len(o.items))
	copy(out, o.items)
	return out
}

// Delivery returns the delivery child, or nil before CreateDelivery.
func (o *Order) Delivery() *Delivery {
	return o.delivery
}

// Payment returns the payment child, or nil before SetPayment.
func (o *Order) Payment() *Payment {
	return o.payment
}

// PlacedAt returns when the order was placed, in UTC.
func (o *Order) PlacedAt() time.Time {
	return o.placedAt
}

// DeliveredAt returns when the order was delivered, or nil.
func (o *Order) DeliveredAt() *time.Time {
	return o.deliveredAt
}

// CreatedAt returns the creation timestamp, in UTC.
func (o *Order) CreatedAt() time.Time {
	return o.createdAt
}

// ModifiedAt returns the last modification timestamp, in UTC.
func (o *Order) ModifiedAt() time.Time {
	return o.modifiedAt
}

// Total returns the sum of all line totals.
func (o *Order) Total() float64 {
	var total float64
	for _, item := range o.items {
		total += item.Total()
	}
	return total
}

// AddItem appends a new order line. Quantity must be at least 1 and price
// must be positive. Adding the same menu item again appends another line
// rather than incrementing the existing one. Fails on a locked order.
func (o *Order) AddItem(menuItemID kernel.UUID, quantity int, price float64) error {
	if o.isLocked {
		return ErrOrderIsLocked
	}

	item, err := newItem(kernel.NewUUID(), menuItemID, quantity, price, time.Now())
	if err != nil {
		return err
	}

	o.items = append(o.items, item)
	o.touch()
	return nil
}

// RemoveItem removes the order line with the given identifier. The lock is
// checked before existence, so a locked order fails the same way whether or
// not the item exists.
func (o *Order) RemoveItem(itemID kernel.UUID) error {
	if o.isLocked {
		return ErrOrderIsLocked
	}

	for i, item := range o.items {
		if item.ID().IsEqual(itemID) {
			o.items = append(o.items[:i], o.items[i+1:]...)
			o.touch()
			return nil
		}
	}

	return errs.NewObjectNotFoundError("order item", itemID.String())
}

// CreateDelivery attaches the one-to-one delivery child in Pending status.
// A second call is a conflict and leaves the first delivery untouched.
func (o *Order) CreateDelivery() error {
	if o.delivery != nil {
		return errs.NewObjectAlreadyExistsError("delivery")
	}

	delivery, err := newDelivery(kernel.NewUUID())
	if err != nil {
		return err
	}

	o.delivery = delivery
	o.touch()
	return nil
}

// AssignDelivery records the delivery person and the delivery estimate, and
// locks the order. CreateDelivery must have been called first.
func (o *Order) AssignDelivery(deliveryPersonID kernel.UUID, estimate time.Duration) error {
	if o.delivery == nil {
		return errs.NewObjectNotFoundError("delivery", o.id.String())
	}

	if err := o.delivery.assign(deliveryPersonID, estimate); err != nil {
		return err
	}

	o.isLocked = true
	o.touch()
	return nil
}

// StartDelivery marks the order as picked up from the restaurant and moves
// the order to OnTheWay.
func (o *Order) StartDelivery() error {
	if o.delivery == nil {
		return errs.NewObjectNotFoundError("delivery", o.id.String())
	}

	newStatus, err := o.status.StartDelivery()
	if err != nil {
		return err
	}

	if err = o.delivery.pickUp(time.Now()); err != nil {
		return err
	}

	o.status = newStatus
	o.touch()
	return nil
}

// CompleteDelivery marks the order as handed over: the delivery and the
// order both become Delivered and the delivery timestamp is recorded.
// A second call fails.
func (o *Order) CompleteDelivery() error {
	if o.delivery == nil {
		return errs.NewObjectNotFoundError("delivery", o.id.String())
	}

	newStatus, err := o.status.Deliver()
	if err != nil {
		return err
	}

	now := time.Now().UTC()
	if err = o.delivery.complete(now); err != nil {
		return err
	}

	o.status = newStatus
	o.deliveredAt = &now
	o.touch()
	return nil
}

// SetPayment attaches the one-to-one payment child in Pending status.
// A second call is a conflict and leaves the first payment untouched.
func (o *Order) SetPayment(amount float64, method PaymentMethod, transactionID string) error {
	if o.payment != nil {
		return errs.NewObjectAlreadyExistsError("payment")
	}

	payment, err := newPayment(kernel.NewUUID(), amount, method, transactionID)
	if err != nil {
		return err
	}

	o.payment = payment
	o.touch()
	return nil
}

// CompletePayment settles the payment and confirms the order. The order
// must have at least one line item; a pending order transitions to
// Confirmed and the order becomes locked.
func (o *Order) CompletePayment() error {
	if o.payment == nil {
		return errs.NewObjectNotFoundError("payment", o.id.String())
	}

	if len(o.items) == 0 {
		return ErrOrderHasNoItems
	}

	if err := o.payment.complete(); err != nil {
		return err
	}

	if o.status == StatusPending {
		newStatus, err := o.status.Confirm()
		if err != nil {
			return err
		}
		o.status = newStatus
	}

	o.isLocked = true
	o.touch()
	return nil
}

// StartPreparing records that the restaurant accepted the order.
func (o *Order) StartPreparing() error {
	newStatus, err := o.status.StartPreparing()
	if err != nil {
		return err
	}

	o.status = newStatus
	o.touch()
	return nil
}

// Cancel moves the order to Cancelled from any non-terminal state. An
// attached delivery is failed and a pending payment is failed alongside.
func (o *Order) Cancel() error {
	newStatus, err := o.status.Cancel()
	if err != nil {
		return err
	}

	o.status = newStatus
	if o.delivery != nil {
		o.delivery.fail()
	}
	if o.payment != nil {
		o.payment.fail()
	}
	o.touch()
	return nil
}

func (o *Order) touch() {
	o.modifiedAt = time.Now().UTC()
}

func (o *Order) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	o.id = id
	return nil
}

func (o *Order) setCustomerID(customerID kernel.UUID) error {
	if err := customerID.Validate(); err != nil {
		return errs.NewValueIsRequiredErrorWithCause("customer id", err)
	}
	o.customerID = customerID
	return nil
}

func (o *Order) setRestaurantID(restaurantID kernel.UUID) error {
	if err := restaurantID.Validate(); err != nil {
		return errs.NewValueIsRequiredErrorWithCause("restaurant id", err)
	}
	o.restaurantID = restaurantID
	return nil
}

func (o *Order) setDeliveryAddress(deliveryAddress kernel.Address) error {
	if err := deliveryAddress.Validate(); err != nil {
		return err
	}
	o.deliveryAddress = deliveryAddress
	return nil
}

func (o *Order) setStatus(status Status) error {
	if err := status.Validate(); err != nil {
		return err
	}
	o.status = status
	return nil
}

func (o *Order) setItems(items []*Item) error {
	for _, item := range items {
		if err := item.Validate(); err != nil {
			return err
		}
	}

	o.items = make([]*Item, len(items))
	copy(o.items, items)
	return nil
}
