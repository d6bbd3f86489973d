package checkout

import (
	"fmt"

	"blackboxinc-be/internal/cart"
)

// EndpointKind identifies which submission surface the assembled details
// are destined for. The two surfaces disagree on how an absent variant id
// should be treated, so assembly is parameterised by kind instead of
// being duplicated per endpoint.
type EndpointKind string

const (
	// EndpointPrivate is the authenticated checkout surface. Every line
	// must carry a variant id.
	EndpointPrivate EndpointKind = "private"
	// EndpointPublic is the guest checkout surface. Variant ids are
	// optional and omitted from the wire shape when absent.
	EndpointPublic EndpointKind = "public"
)

// DetailItem is one line of a submission envelope. ProductVariantID is a
// pointer so the public wire shape can omit it entirely when the line has
// no variant.
type DetailItem struct {
	ProductID        uint  `json:"product_id"`
	Quantity         int   `json:"quantity"`
	ProductVariantID *uint `json:"product_variant_id,omitempty"`
}

// AssembleDetails converts persisted cart lines into submission detail
// items for the given endpoint kind. It never mutates its input and
// produces exactly one output item per input line.
//
// Quantity must be positive on both surfaces. The private surface
// additionally rejects any line without a variant id; the public surface
// passes such lines through with the variant omitted.
func AssembleDetails(items []*cart.CartItem, kind EndpointKind) ([]DetailItem, error) {
	switch kind {
	case EndpointPrivate, EndpointPublic:
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownEndpoint, kind)
	}

	details := make([]DetailItem, 0, len(items))
	for _, item := range items {
		if item.Quantity <= 0 {
			return nil, fmt.Errorf("%w: product %d", ErrInvalidQuantity, item.ProductID)
		}
		if kind == EndpointPrivate && item.VariantID == nil {
			return nil, fmt.Errorf("%w: product %d", ErrMissingVariant, item.ProductID)
		}

		detail := DetailItem{
			ProductID: item.ProductID,
			Quantity:  item.Quantity,
		}
		if item.VariantID != nil {
			id := *item.VariantID
			detail.ProductVariantID = &id
		}
		details = append(details, detail)
	}

	return details, nil
}
