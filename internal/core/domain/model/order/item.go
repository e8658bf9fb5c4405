package order

import (
	"errors"
	"strings"

	"storefront/internal/core/domain/model/kernel"
	"storefront/internal/pkg/errs"
	"storefront/internal/pkg/guard"
)

// ErrItemIsNotConstructed is returned when an Item was not created through
// NewItem or RestoreItem.
var ErrItemIsNotConstructed = errors.New("Item must be created via NewItem constructor")

// Item is one purchased line within an order. Product name and code are
// denormalized snapshots taken when the line is created; they are never
// re-derived from the live product. The line total is always computed
// server-side; a client-supplied total is display-only and ignored.
//
// Items are exclusively owned by their order: they are created and replaced
// only through order operations and removed by cascade when the order goes.
type Item struct {
	id          kernel.UUID
	productID   kernel.UUID
	productName string
	productCode string
	quantity    int
	unitPrice   kernel.Money
	discount    kernel.Money
	total       kernel.Money
	notes       string

	guard guard.ConstructorGuard
}

// NewItem builds a validated order line and derives its total.
func NewItem(
	id kernel.UUID,
	productID kernel.UUID,
	productName string,
	productCode string,
	quantity int,
	unitPrice kernel.Money,
	discount kernel.Money,
	notes string,
) (*Item, error) {
	item := &Item{
		notes: strings.TrimSpace(notes),
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		item.setID(id),
		item.setProductID(productID),
		item.setProductName(productName),
	); err != nil {
		return nil, err
	}
	item.productCode = strings.TrimSpace(productCode)

	total, err := LineTotal(unitPrice, quantity, discount)
	if err != nil {
		return nil, err
	}

	item.quantity = quantity
	item.unitPrice = unitPrice
	item.discount = discount
	item.total = total
	return item, nil
}

// RestoreItem rebuilds a line from persistence. The stored total is recomputed
// rather than trusted, so a corrupted row cannot smuggle a broken invariant
// back into the aggregate.
func RestoreItem(
	id kernel.UUID,
	productID kernel.UUID,
	productName string,
	productCode string,
	quantity int,
	unitPrice kernel.Money,
	discount kernel.Money,
	notes string,
) (*Item, error) {
	return NewItem(id, productID, productName, productCode, quantity, unitPrice, discount, notes)
}

// Validate ensures the item was created through a constructor.
func (i *Item) Validate() error {
	if i == nil {
		return ErrItemIsNotConstructed
	}
	return i.guard.Validate(ErrItemIsNotConstructed)
}

// ID returns the line identifier.
func (i *Item) ID() kernel.UUID {
	return i.id
}

// ProductID returns the weak reference to the product this line snapshots.
func (i *Item) ProductID() kernel.UUID {
	return i.productID
}

// ProductName returns the product name captured at order time.
func (i *Item) ProductName() string {
	return i.productName
}

// ProductCode returns the product code captured at order time.
func (i *Item) ProductCode() string {
	return i.productCode
}

// Quantity returns the ordered quantity.
func (i *Item) Quantity() int {
	return i.quantity
}

// UnitPrice returns the per-unit price captured at order time.
func (i *Item) UnitPrice() kernel.Money {
	return i.unitPrice
}

// Discount returns the line-level discount.
func (i *Item) Discount() kernel.Money {
	return i.discount
}

// Total returns the derived line total: unitPrice * quantity - discount.
func (i *Item) Total() kernel.Money {
	return i.total
}

// Notes returns the optional free-text note for the line.
func (i *Item) Notes() string {
	return i.notes
}

func (i *Item) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	i.id = id
	return nil
}

func (i *Item) setProductID(productID kernel.UUID) error {
	if err := productID.Validate(); err != nil {
		return err
	}
	i.productID = productID
	return nil
}

func (i *Item) setProductName(productName string) error {
	productName = strings.TrimSpace(productName)
	if productName == "" {
		return errs.NewValueIsRequiredError("productName")
	}
	i.productName = productName
	return nil
}
