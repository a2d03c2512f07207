package mapper

import (
	"openshop/internal/domain/entity"
	"openshop/internal/dto"
)

// ToCategoryEntity maps a category request. Images are left empty.
func ToCategoryEntity(req *dto.CategoryRequest) *entity.Category {
	if req == nil {
		return nil
	}

	return &entity.Category{
		Name:        req.Name,
		Description: req.Description,
	}
}

func ToCategoryResponse(category *entity.Category) *dto.CategoryResponse {
	if category == nil {
		return nil
	}

	return &dto.CategoryResponse{
		ID:          category.ID,
		Name:        category.Name,
		Description: category.Description,
		ImageURLs:   imageURLs(category.Images),
	}
}

func ToCategoryResponseList(categories []*entity.Category) []*dto.CategoryResponse {
	out := make([]*dto.CategoryResponse, 0, len(categories))
	for _, category := range categories {
		out = append(out, ToCategoryResponse(category))
	}

	return out
}

// ToProductEntity maps a product request. The category carries only its id
// and images are left empty.
func ToProductEntity(req *dto.ProductRequest) *entity.Product {
	if req == nil {
		return nil
	}

	return &entity.Product{
		Name:        req.Name,
		Description: req.Description,
		Category:    &entity.Category{ID: req.CategoryID},
	}
}

func ToProductResponse(product *entity.Product) *dto.ProductResponse {
	if product == nil {
		return nil
	}

	resp := &dto.ProductResponse{
		ID:          product.ID,
		Name:        product.Name,
		Description: product.Description,
		ImageURLs:   imageURLs(product.Images),
		Variants:    ToVariantResponseList(product.Variants),
		CreatedAt:   product.CreatedAt,
	}
	if product.Category != nil {
		resp.CategoryID = product.Category.ID
		resp.CategoryName = product.Category.Name
	}

	return resp
}

func ToProductResponseList(products []*entity.Product) []*dto.ProductResponse {
	out := make([]*dto.ProductResponse, 0, len(products))
	for _, product := range products {
		out = append(out, ToProductResponse(product))
	}

	return out
}

func ToVariantEntity(req *dto.VariantRequest) *entity.Variant {
	if req == nil {
		return nil
	}

	return &entity.Variant{
		Name:  req.Name,
		SKU:   req.SKU,
		Price: req.Price,
		Stock: req.StockQuantity,
	}
}

func ToVariantResponse(variant *entity.Variant) *dto.VariantResponse {
	if variant == nil {
		return nil
	}

	return &dto.VariantResponse{
		ID:            variant.ID,
		Name:          variant.Name,
		SKU:           variant.SKU,
		Price:         variant.Price,
		StockQuantity: variant.Stock,
	}
}

func ToVariantResponseList(variants []*entity.Variant) []*dto.VariantResponse {
	out := make([]*dto.VariantResponse, 0, len(variants))
	for _, variant := range variants {
		out = append(out, ToVariantResponse(variant))
	}

	return out
}

func imageURLs(images []*entity.Image) []string {
	urls := make([]string, 0, len(images))
	for _, image := range images {
		urls = append(urls, image.URL)
	}

	return urls
}
