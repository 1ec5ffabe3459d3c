package handler

import (
	"context"
	"net/http"
	"strings"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/keyvanm/inventory-sales-api/internal/model"
	"github.com/keyvanm/inventory-sales-api/internal/repository"
)

// SupplierStore is the slice of the supplier repository the endpoints consume.
type SupplierStore interface {
	Create(ctx context.Context, name, contactEmail string) (model.Supplier, error)
	List(ctx context.Context) ([]model.Supplier, error)
}

// SupplierHandler exposes supplier creation (guarded) and listing (public).
type SupplierHandler struct {
	Suppliers SupplierStore
}

func NewSupplierHandler(suppliers SupplierStore) *SupplierHandler {
	return &SupplierHandler{Suppliers: suppliers}
}

// Create handles POST /suppliers/.
func (h *SupplierHandler) Create(c echo.Context) error {
	var req struct {
		Name         string `json:"name"`
		ContactEmail string `json:"contact_email"`
	}
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"detail": "invalid body"})
	}
	req.Name = strings.TrimSpace(req.Name)
	if req.Name == "" {
		return c.JSON(http.StatusBadRequest, echo.Map{"detail": "name is required"})
	}

	ctx, cancel := context.WithTimeout(c.Request().Context(), 5*time.Second)
	defer cancel()

	sup, err := h.Suppliers.Create(ctx, req.Name, req.ContactEmail)
	if err != nil {
		if err == repository.ErrNameExists {
			return c.JSON(http.StatusBadRequest, echo.Map{"detail": "Supplier already exists"})
		}
		return c.JSON(http.StatusInternalServerError, echo.Map{"detail": "create supplier failed"})
	}
	return c.JSON(http.StatusCreated, sup)
}

// List handles GET /suppliers/.
func (h *SupplierHandler) List(c echo.Context) error {
	ctx, cancel := context.WithTimeout(c.Request().Context(), 5*time.Second)
	defer cancel()

	items, err := h.Suppliers.List(ctx)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"detail": "list suppliers failed"})
	}
	return c.JSON(http.StatusOK, items)
}
