package cart

// ItemView is the display projection of a stored cart line. It holds no
// state of its own and is recomputed from the stored item on every read.
type ItemView struct {
	ID               uint    `json:"id"`
	ProductID        uint    `json:"product_id"`
	ProductVariantID *uint   `json:"product_variant_id,omitempty"`
	Name             string  `json:"name"`
	Price            int     `json:"price"`
	Image            *string `json:"image,omitempty"`
	Quantity         int     `json:"quantity"`
	Category         string  `json:"category"`
	InStock          bool    `json:"in_stock"`
}

// ToView projects a stored cart item for rendering. InStock uses the
// selected variant's stock when a variant is chosen, the product's otherwise.
func ToView(item *CartItem) ItemView {
	stock := item.ProductStock
	if item.VariantID != nil && item.VariantStock != nil {
		stock = *item.VariantStock
	}

	return ItemView{
		ID:               item.ID,
		ProductID:        item.ProductID,
		ProductVariantID: item.VariantID,
		Name:             item.ProductName,
		Price:            item.Price,
		Image:            item.ImageURL,
		Quantity:         item.Quantity,
		Category:         item.CategoryName,
		InStock:          stock >= 1,
	}
}

// ToViews projects a full cart snapshot.
func ToViews(items []*CartItem) []ItemView {
	views := make([]ItemView, 0, len(items))
	for _, item := range items {
		views = append(views, ToView(item))
	}
	return views
}
