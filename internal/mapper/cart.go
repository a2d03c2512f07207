package mapper

import (
	"openshop/internal/domain/entity"
	"openshop/internal/dto"

	"github.com/shopspring/decimal"
)

// ToCartItemEntity maps an add-to-cart request. Only the variant id is set;
// cart linkage and price are assigned by the cart service.
func ToCartItemEntity(req *dto.CartItemRequest) *entity.CartItem {
	if req == nil {
		return nil
	}

	return &entity.CartItem{
		Variant:  &entity.Variant{ID: req.VariantID},
		Quantity: req.Quantity,
	}
}

func ToCartItemResponse(item *entity.CartItem) *dto.CartItemResponse {
	if item == nil {
		return nil
	}

	resp := &dto.CartItemResponse{
		ID:       item.ID,
		Quantity: item.Quantity,
		Price:    item.Price,
	}
	if item.Variant != nil {
		resp.VariantID = item.Variant.ID
		resp.VariantName = item.Variant.Name
		resp.SKU = item.Variant.SKU
		resp.UnitPrice = item.Variant.Price
	}

	return resp
}

// ToCartResponse maps a cart; a nil cart is rendered as an empty one.
func ToCartResponse(cart *entity.Cart) *dto.CartResponse {
	if cart == nil {
		return &dto.CartResponse{CartItems: []*dto.CartItemResponse{}, Price: decimal.Zero}
	}

	items := make([]*dto.CartItemResponse, 0, len(cart.Items))
	for _, item := range cart.Items {
		items = append(items, ToCartItemResponse(item))
	}

	return &dto.CartResponse{
		CartItems: items,
		Price:     cart.TotalPrice(),
	}
}
