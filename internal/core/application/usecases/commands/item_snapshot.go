package commands

import (
	"context"

	"storefront/internal/core/domain/model/kernel"
	"storefront/internal/core/domain/model/order"
	"storefront/internal/core/ports"
)

// snapshotItems turns requested lines into order items, copying product name,
// code, and price from the catalog at this moment. A request-supplied unit
// price overrides the catalog price.
func snapshotItems(
	ctx context.Context,
	catalog ports.ProductCatalog,
	inputs []ItemInput,
) ([]*order.Item, error) {
	items := make([]*order.Item, 0, len(inputs))
	for _, input := range inputs {
		product, err := catalog.GetByID(ctx, input.ProductID)
		if err != nil {
			return nil, err
		}

		unitPrice := product.Price
		if input.UnitPrice != nil {
			unitPrice = *input.UnitPrice
		}

		item, err := order.NewItem(
			kernel.NewUUID(),
			product.ID,
			product.Name,
			product.Code,
			input.Quantity,
			unitPrice,
			input.Discount,
			input.Notes,
		)
		if err != nil {
			return nil, err
		}
		items = append(items, item)
	}
	return items, nil
}
