package handler

import (
	"context"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/keyvanm/inventory-sales-api/internal/model"
	"github.com/keyvanm/inventory-sales-api/internal/repository"
)

// ProductStore is the slice of the product repository the CRUD endpoints
// consume.
type ProductStore interface {
	Create(ctx context.Context, p model.Product) (model.Product, error)
	GetByID(ctx context.Context, id uint64) (model.Product, error)
	List(ctx context.Context, skip, limit int, search string) ([]model.Product, error)
	Update(ctx context.Context, id uint64, p model.Product) (model.Product, error)
	Delete(ctx context.Context, id uint64) error
}

// ProductHandler exposes product CRUD. Mutations are guarded; reads are
// public.
type ProductHandler struct {
	Products ProductStore
}

func NewProductHandler(products ProductStore) *ProductHandler {
	return &ProductHandler{Products: products}
}

type productReq struct {
	Name          string  `json:"name"`
	Description   string  `json:"description"`
	Price         float64 `json:"price"`
	StockQuantity int64   `json:"stock_quantity"`
	CategoryID    uint64  `json:"category_id"`
	SupplierID    uint64  `json:"supplier_id"`
}

func (r productReq) validate() string {
	if strings.TrimSpace(r.Name) == "" {
		return "name is required"
	}
	if r.Price < 0 {
		return "price must not be negative"
	}
	if r.StockQuantity < 0 {
		return "stock_quantity must not be negative"
	}
	return ""
}

func (r productReq) toModel() model.Product {
	return model.Product{
		Name:          strings.TrimSpace(r.Name),
		Description:   r.Description,
		Price:         r.Price,
		StockQuantity: r.StockQuantity,
		CategoryID:    r.CategoryID,
		SupplierID:    r.SupplierID,
	}
}

// Create handles POST /products/.
func (h *ProductHandler) Create(c echo.Context) error {
	var req productReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"detail": "invalid body"})
	}
	if msg := req.validate(); msg != "" {
		return c.JSON(http.StatusBadRequest, echo.Map{"detail": msg})
	}

	ctx, cancel := context.WithTimeout(c.Request().Context(), 5*time.Second)
	defer cancel()

	p, err := h.Products.Create(ctx, req.toModel())
	if err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"detail": "create product failed"})
	}
	return c.JSON(http.StatusCreated, p)
}

// List handles GET /products/ with skip/limit paging and an optional name
// search.
func (h *ProductHandler) List(c echo.Context) error {
	skip := atoiDefault(c.QueryParam("skip"), 0)
	limit := atoiDefault(c.QueryParam("limit"), 100)
	if skip < 0 {
		skip = 0
	}
	if limit <= 0 {
		limit = 100
	}
	search := c.QueryParam("search")

	ctx, cancel := context.WithTimeout(c.Request().Context(), 5*time.Second)
	defer cancel()

	items, err := h.Products.List(ctx, skip, limit, search)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"detail": "list products failed"})
	}
	return c.JSON(http.StatusOK, items)
}

// Get handles GET /products/:id.
func (h *ProductHandler) Get(c echo.Context) error {
	id, err := parseID(c)
	if err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"detail": "invalid product id"})
	}

	ctx, cancel := context.WithTimeout(c.Request().Context(), 5*time.Second)
	defer cancel()

	p, err := h.Products.GetByID(ctx, id)
	if err != nil {
		if err == repository.ErrProductNotFound {
			return c.JSON(http.StatusNotFound, echo.Map{"detail": "Product not found"})
		}
		return c.JSON(http.StatusInternalServerError, echo.Map{"detail": "database error"})
	}
	return c.JSON(http.StatusOK, p)
}

// Update handles PUT /products/:id as a full replace.
func (h *ProductHandler) Update(c echo.Context) error {
	id, err := parseID(c)
	if err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"detail": "invalid product id"})
	}
	var req productReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"detail": "invalid body"})
	}
	if msg := req.validate(); msg != "" {
		return c.JSON(http.StatusBadRequest, echo.Map{"detail": msg})
	}

	ctx, cancel := context.WithTimeout(c.Request().Context(), 5*time.Second)
	defer cancel()

	p, err := h.Products.Update(ctx, id, req.toModel())
	if err != nil {
		if err == repository.ErrProductNotFound {
			return c.JSON(http.StatusNotFound, echo.Map{"detail": "Product not found"})
		}
		return c.JSON(http.StatusInternalServerError, echo.Map{"detail": "update product failed"})
	}
	return c.JSON(http.StatusOK, p)
}

// Delete handles DELETE /products/:id.
func (h *ProductHandler) Delete(c echo.Context) error {
	id, err := parseID(c)
	if err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"detail": "invalid product id"})
	}

	ctx, cancel := context.WithTimeout(c.Request().Context(), 5*time.Second)
	defer cancel()

	if err := h.Products.Delete(ctx, id); err != nil {
		if err == repository.ErrProductNotFound {
			return c.JSON(http.StatusNotFound, echo.Map{"detail": "Product not found"})
		}
		return c.JSON(http.StatusInternalServerError, echo.Map{"detail": "delete product failed"})
	}
	return c.JSON(http.StatusOK, echo.Map{"detail": "Product deleted"})
}

func parseID(c echo.Context) (uint64, error) {
	return strconv.ParseUint(c.Param("id"), 10, 64)
}

func atoiDefault(s string, def int) int {
	if s == "" {
		return def
	}
	n, err := strconv.Atoi(s)
	if err != nil {
		return def
	}
	return n
}
