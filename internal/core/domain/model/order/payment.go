package order

import (
	"errors"
	"fmt"
	"strings"

	"fooddelivery/internal/core/domain/model/kernel"
	"fooddelivery/internal/pkg/errs"
	"fooddelivery/internal/pkg/guard"
)

// ErrPaymentIsNotConstructed is returned when a Payment was not created
// through Order.SetPayment.
var ErrPaymentIsNotConstructed = errors.New("Payment must be created via Order.SetPayment")

// PaymentMethod enumerates the supported payment instruments.
type PaymentMethod int

const (
	// PaymentMethodUnknown catches uninitialized values.
	PaymentMethodUnknown PaymentMethod = iota
	// PaymentMethodCard is a credit or debit card payment.
	PaymentMethodCard
	// PaymentMethodCash is cash on delivery.
	PaymentMethodCash
	// PaymentMethodWallet is an in-app wallet payment.
	PaymentMethodWallet
)

// String returns the human-readable name of the payment method.
func (m PaymentMethod) String() string {
	switch m {
	case PaymentMethodCard:
		return "Card"
	case PaymentMethodCash:
		return "Cash"
	case PaymentMethodWallet:
		return "Wallet"
	default:
		return "Unknown"
	}
}

// Validate checks that the PaymentMethod is one of the defined values.
func (m PaymentMethod) Validate() error {
	if m <= PaymentMethodUnknown || m > PaymentMethodWallet {
		return errs.NewValueIsInvalidError("payment method")
	}
	return nil
}

// PaymentStatus represents the state of the payment attached to an order.
type PaymentStatus int

const (
	// PaymentStatusUnknown catches uninitialized values.
	PaymentStatusUnknown PaymentStatus = iota
	// PaymentPending: the payment was registered but not yet settled.
	PaymentPending
	// PaymentCompleted is a final state: the payment settled.
	PaymentCompleted
	// PaymentFailed is a final state: the payment did not settle.
	PaymentFailed
)

// String returns the human-readable name of the payment status.
func (s PaymentStatus) String() string {
	switch s {
	case PaymentPending:
		return "Pending"
	case PaymentCompleted:
		return "Completed"
	case PaymentFailed:
		return "Failed"
	default:
		return "Unknown"
	}
}

// Validate checks that the PaymentStatus is one of the defined values.
func (s PaymentStatus) Validate() error {
	if s <= PaymentStatusUnknown || s > PaymentFailed {
		return errs.NewValueIsInvalidError("payment status")
	}
	return nil
}

// Payment is the one-to-one child entity recording how an order is paid.
// It is created at most once per order in Pending status and settles through
// complete or fail, driven by the owning Order.
type Payment struct {
	id            kernel.UUID
	amount        float64
	method        PaymentMethod
	transactionID string
	status        PaymentStatus
	guard         guard.ConstructorGuard
}

func newPayment(id kernel.UUID, amount float64, method PaymentMethod, transactionID string) (*Payment, error) {
	payment := &Payment{
		status: PaymentPending,
		guard:  guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		payment.setID(id),
		payment.setAmount(amount),
		payment.setMethod(method),
		payment.setTransactionID(transactionID),
	); err != nil {
		return nil, err
	}

	return payment, nil
}

// RestorePayment reconstructs a payment from persistent storage.
func RestorePayment(
	id kernel.UUID,
	amount float64,
	method PaymentMethod,
	transactionID string,
	status PaymentStatus,
) (*Payment, error) {
	payment, err := newPayment(id, amount, method, transactionID)
	if err != nil {
		return nil, err
	}

	if err = status.Validate(); err != nil {
		return nil, err
	}

	payment.status = status
	return payment, nil
}

// Validate checks that the Payment was created through the aggregate.
func (p *Payment) Validate() error {
	if p == nil {
		return ErrPaymentIsNotConstructed
	}
	return p.guard.Validate(ErrPaymentIsNotConstructed)
}

// ID returns the payment identifier.
func (p *Payment) ID() kernel.UUID {
	return p.id
}

// Amount returns the charged amount, always positive.
func (p *Payment) Amount() float64 {
	return p.amount
}

// Method returns the payment instrument.
func (p *Payment) Method() PaymentMethod {
	return p.method
}

// TransactionID returns the external transaction reference.
func (p *Payment) TransactionID() string {
	return p.transactionID
}

// Status returns the current payment status.
func (p *Payment) Status() PaymentStatus {
	return p.status
}

// complete settles the payment. Completing twice is a conflict; a failed
// payment cannot settle.
func (p *Payment) complete() error {
	if p.status == PaymentCompleted {
		return errs.NewObjectAlreadyExistsError("completed payment")
	}

	if p.status != PaymentPending {
		return errs.NewInvalidTransitionError("payment", p.status.String(), PaymentCompleted.String())
	}

	p.status = PaymentCompleted
	return nil
}

// fail marks the payment as unsettled. Terminal states are left untouched.
func (p *Payment) fail() {
	if p.status == PaymentCompleted || p.status == PaymentFailed {
		return
	}
	p.status = PaymentFailed
}

func (p *Payment) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	p.id = id
	return nil
}

func (p *Payment) setAmount(amount float64) error {
	if amount <= 0 {
		return errs.NewValueIsInvalidErrorWithCause("amount",
			fmt.Errorf("%v is not greater than 0", amount))
	}
	p.amount = amount
	return nil
}

func (p *Payment) setMethod(method PaymentMethod) error {
	if err := method.Validate(); err != nil {
		return err
	}
	p.method = method
	return nil
}

func (p *Payment) setTransactionID(transactionID string) error {
	if strings.TrimSpace(transactionID) == "" {
		return errs.NewValueIsRequiredError("transaction id")
	}
	p.transactionID = transactionID
	return nil
}
