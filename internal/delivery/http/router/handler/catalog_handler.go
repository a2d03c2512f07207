package handler

import (
	"bytes"
	"fmt"
	"net/http"

	"openshop/internal/delivery/http/response"
	"openshop/internal/domain/service"
	"openshop/internal/dto"
	"openshop/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// CatalogHandler serves categories, products and variants.
type CatalogHandler struct {
	uc       usecase.CatalogUsecase
	exporter service.ProductExporter
}

// NewCatalogHandler is the constructor for CatalogHandler, injected by Fx.
func NewCatalogHandler(uc usecase.CatalogUsecase, exporter service.ProductExporter) *CatalogHandler {
	return &CatalogHandler{
		uc:       uc,
		exporter: exporter,
	}
}

// --- Categories ---

func (h *CatalogHandler) ListCategories(c echo.Context) error {
	categories, err := h.uc.ListCategories(c.Request().Context())
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, categories, "")
}

func (h *CatalogHandler) GetCategory(c echo.Context) error {
	id, err := uuidParam(c, "id")
	if err != nil {
		return err
	}

	category, err := h.uc.GetCategory(c.Request().Context(), id)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, category, "")
}

func (h *CatalogHandler) CreateCategory(c echo.Context) error {
	var req dto.CategoryRequest
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}

	category, err := h.uc.CreateCategory(c.Request().Context(), &req)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusCreated, category, "Category created")
}

func (h *CatalogHandler) UpdateCategory(c echo.Context) error {
	id, err := uuidParam(c, "id")
	if err != nil {
		return err
	}

	var req dto.CategoryRequest
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}

	category, err := h.uc.UpdateCategory(c.Request().Context(), id, &req)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, category, "Category updated")
}

func (h *CatalogHandler) DeleteCategory(c echo.Context) error {
	id, err := uuidParam(c, "id")
	if err != nil {
		return err
	}

	if err := h.uc.DeleteCategory(c.Request().Context(), id); err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, nil, "Category deleted")
}

// --- Products ---

// ListProducts accepts an optional categoryId query filter.
func (h *CatalogHandler) ListProducts(c echo.Context) error {
	var categoryID *uuid.UUID
	if raw := c.QueryParam("categoryId"); raw != "" {
		id, err := uuid.Parse(raw)
		if err != nil {
			return errors.WithStack(uuidQueryError("categoryId"))
		}
		categoryID = &id
	}

	products, err := h.uc.ListProducts(c.Request().Context(), categoryID)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, products, "")
}

func (h *CatalogHandler) GetProduct(c echo.Context) error {
	id, err := uuidParam(c, "id")
	if err != nil {
		return err
	}

	product, err := h.uc.GetProduct(c.Request().Context(), id)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, product, "")
}

func (h *CatalogHandler) CreateProduct(c echo.Context) error {
	var req dto.ProductRequest
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}

	product, err := h.uc.CreateProduct(c.Request().Context(), &req)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusCreated, product, "Product created")
}

func (h *CatalogHandler) UpdateProduct(c echo.Context) error {
	id, err := uuidParam(c, "id")
	if err != nil {
		return err
	}

	var req dto.ProductRequest
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}

	product, err := h.uc.UpdateProduct(c.Request().Context(), id, &req)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, product, "Product updated")
}

func (h *CatalogHandler) DeleteProduct(c echo.Context) error {
	id, err := uuidParam(c, "id")
	if err != nil {
		return err
	}

	if err := h.uc.DeleteProduct(c.Request().Context(), id); err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, nil, "Product deleted")
}

// ExportProducts streams the catalog as a spreadsheet attachment. The workbook
// is built in memory first so a failure still renders a JSON error.
func (h *CatalogHandler) ExportProducts(c echo.Context) error {
	var buf bytes.Buffer
	if err := h.uc.ExportProducts(c.Request().Context(), &buf); err != nil {
		return errors.WithStack(err)
	}

	c.Response().Header().Set(echo.HeaderContentDisposition, fmt.Sprintf("attachment; filename=%q", h.exporter.FileName()))

	return c.Blob(http.StatusOK, h.exporter.ContentType(), buf.Bytes())
}

// --- Variants ---

func (h *CatalogHandler) AddVariant(c echo.Context) error {
	productID, err := uuidParam(c, "id")
	if err != nil {
		return err
	}

	var req dto.VariantRequest
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}

	variant, err := h.uc.AddVariant(c.Request().Context(), productID, &req)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusCreated, variant, "Variant added")
}

func (h *CatalogHandler) UpdateVariant(c echo.Context) error {
	productID, err := uuidParam(c, "id")
	if err != nil {
		return err
	}
	variantID, err := uuidParam(c, "variantId")
	if err != nil {
		return err
	}

	var req dto.VariantRequest
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}

	variant, err := h.uc.UpdateVariant(c.Request().Context(), productID, variantID, &req)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, variant, "Variant updated")
}

func (h *CatalogHandler) DeleteVariant(c echo.Context) error {
	productID, err := uuidParam(c, "id")
	if err != nil {
		return err
	}
	variantID, err := uuidParam(c, "variantId")
	if err != nil {
		return err
	}

	if err := h.uc.DeleteVariant(c.Request().Context(), productID, variantID); err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, nil, "Variant deleted")
}
