package order

import (
	"dispatch/internal/core/domain/model/kernel"
	"dispatch/internal/pkg/errs"
	"dispatch/internal/pkg/guard"
)

// ErrPartyIsNotConstructed is returned when using a Party that bypassed NewParty.
var ErrPartyIsNotConstructed = errs.NewValueIsRequiredError(
	"party must be created via NewParty constructor")

// ErrDestinationIsNotConstructed is returned when using a Destination that bypassed NewDestination.
var ErrDestinationIsNotConstructed = errs.NewValueIsRequiredError(
	"destination must be created via NewDestination constructor")

// Party identifies one side of an order, customer or restaurant, with its
// contact details. The identifier is an opaque string supplied by
// the upstream ordering system.
type Party struct {
	id    string
	name  string
	email string
	phone string
	guard guard.ConstructorGuard
}

// NewParty creates a validated Party. Only the identifier is mandatory;
// contact details are carried when known.
func NewParty(id string, name string, email string, phone string) (Party, error) {
	if id == "" {
		return Party{}, errs.NewValueIsRequiredError("id")
	}

	return Party{
		id:    id,
		name:  name,
		email: email,
		phone: phone,
		guard: guard.NewConstructorGuard(),
	}, nil
}

// ID returns the opaque party identifier.
func (p Party) ID() string { return p.id }

// Name returns the party display name.
func (p Party) Name() string { return p.name }

// Email returns the contact email, possibly empty.
func (p Party) Email() string { return p.email }

// Phone returns the contact phone, possibly empty.
func (p Party) Phone() string { return p.phone }

// Validate checks the party was properly constructed.
func (p Party) Validate() error {
	return p.guard.Validate(ErrPartyIsNotConstructed)
}

// PaymentRef carries the payment-provider references of an order. The
// provider ids are opaque and copied verbatim between pipeline stages;
// the core never talks to the payment gateway.
type PaymentRef struct {
	status            string
	providerOrderID   string
	providerPaymentID string
}

// NewPaymentRef creates a PaymentRef. An empty status defaults to "Pending",
// matching what the upstream ordering system writes for unpaid orders.
func NewPaymentRef(status string, providerOrderID string, providerPaymentID string) PaymentRef {
	if status == "" {
		status = "Pending"
	}
	return PaymentRef{
		status:            status,
		providerOrderID:   providerOrderID,
		providerPaymentID: providerPaymentID,
	}
}

// Status returns the payment status string.
func (r PaymentRef) Status() string { return r.status }

// ProviderOrderID returns the opaque payment-provider order reference.
func (r PaymentRef) ProviderOrderID() string { return r.providerOrderID }

// ProviderPaymentID returns the opaque payment-provider payment reference.
func (r PaymentRef) ProviderPaymentID() string { return r.providerPaymentID }

// Destination is the delivery drop-off: a geo point plus the street address.
type Destination struct {
	point   kernel.GeoPoint
	address string
	guard   guard.ConstructorGuard
}

// NewDestination creates a validated Destination. The address is mandatory;
// the geo point must be a constructed kernel.GeoPoint.
func NewDestination(point kernel.GeoPoint, address string) (Destination, error) {
	if err := point.Validate(); err != nil {
		return Destination{}, err
	}
	if address == "" {
		return Destination{}, errs.NewValueIsRequiredError("address")
	}

	return Destination{
		point:   point,
		address: address,
		guard:   guard.NewConstructorGuard(),
	}, nil
}

// Point returns the drop-off coordinates.
func (d Destination) Point() kernel.GeoPoint { return d.point }

// Address returns the drop-off street address.
func (d Destination) Address() string { return d.address }

// Validate checks the destination was properly constructed.
func (d Destination) Validate() error {
	return d.guard.Validate(ErrDestinationIsNotConstructed)
}
