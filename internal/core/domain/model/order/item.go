package order

import (
	"dispatch/internal/pkg/errs"
	"dispatch/internal/pkg/guard"
)

// ErrLineItemIsNotConstructed is returned when using a LineItem that bypassed NewLineItem.
var ErrLineItemIsNotConstructed = errs.NewValueIsRequiredError(
	"line item must be created via NewLineItem constructor")

// ErrTotalsAreNotConstructed is returned when using Totals that bypassed NewTotals.
var ErrTotalsAreNotConstructed = errs.NewValueIsRequiredError(
	"totals must be created via NewTotals constructor")

// LineItem is one dish on the order: an immutable (id, name, unit price,
// quantity) tuple copied verbatim through every pipeline stage.
type LineItem struct {
	itemID    string
	name      string
	unitPrice float64
	quantity  int
	guard     guard.ConstructorGuard
}

// NewLineItem creates a validated LineItem.
// Name must be non-empty, unit price non-negative, quantity positive.
func NewLineItem(itemID string, name string, unitPrice float64, quantity int) (LineItem, error) {
	if name == "" {
		return LineItem{}, errs.NewValueIsRequiredError("name")
	}
	if unitPrice < 0 {
		return LineItem{}, errs.NewValueIsInvalidError("unitPrice")
	}
	if quantity <= 0 {
		return LineItem{}, errs.NewValueIsInvalidError("quantity")
	}

	return LineItem{
		itemID:    itemID,
		name:      name,
		unitPrice: unitPrice,
		quantity:  quantity,
		guard:     guard.NewConstructorGuard(),
	}, nil
}

// ItemID returns the menu item identifier.
func (i LineItem) ItemID() string { return i.itemID }

// Name returns the item name.
func (i LineItem) Name() string { return i.name }

// UnitPrice returns the price per unit in rupees.
func (i LineItem) UnitPrice() float64 { return i.unitPrice }

// Quantity returns the ordered quantity.
func (i LineItem) Quantity() int { return i.quantity }

// Validate checks the item was properly constructed.
func (i LineItem) Validate() error {
	return i.guard.Validate(ErrLineItemIsNotConstructed)
}

// Totals holds the computed money amounts of an order. The amounts are
// computed upstream (restaurant side) and copied verbatim through the
// pipeline; the delivery fee is the part later accrued to the courier's
// pending payout.
type Totals struct {
	itemCount   int
	itemTotal   float64
	tax         float64
	deliveryFee float64
	grandTotal  float64
	guard       guard.ConstructorGuard
}

// NewTotals creates validated Totals. All amounts must be non-negative and
// the item count positive.
func NewTotals(itemCount int, itemTotal, tax, deliveryFee, grandTotal float64) (Totals, error) {
	if itemCount <= 0 {
		return Totals{}, errs.NewValueIsInvalidError("itemCount")
	}
	for name, v := range map[string]float64{
		"itemTotal":   itemTotal,
		"tax":         tax,
		"deliveryFee": deliveryFee,
		"grandTotal":  grandTotal,
	} {
		if v < 0 {
			return Totals{}, errs.NewValueIsInvalidError(name)
		}
	}

	return Totals{
		itemCount:   itemCount,
		itemTotal:   itemTotal,
		tax:         tax,
		deliveryFee: deliveryFee,
		grandTotal:  grandTotal,
		guard:       guard.NewConstructorGuard(),
	}, nil
}

// ItemCount returns the total number of items.
func (t Totals) ItemCount() int { return t.itemCount }

// ItemTotal returns the sum of line-item prices in rupees.
func (t Totals) ItemTotal() float64 { return t.itemTotal }

// Tax returns the tax amount in rupees.
func (t Totals) Tax() float64 { return t.tax }

// DeliveryFee returns the courier's delivery fee in rupees.
func (t Totals) DeliveryFee() float64 { return t.deliveryFee }

// GrandTotal returns the total payable amount in rupees.
func (t Totals) GrandTotal() float64 { return t.grandTotal }

// Validate checks the totals were properly constructed.
func (t Totals) Validate() error {
	return t.guard.Validate(ErrTotalsAreNotConstructed)
}
