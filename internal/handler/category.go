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

// CategoryStore is the slice of the category repository the endpoints consume.
type CategoryStore interface {
	Create(ctx context.Context, name string) (model.Category, error)
	List(ctx context.Context) ([]model.Category, error)
}

// CategoryHandler exposes category creation (guarded) and listing (public).
type CategoryHandler struct {
	Categories CategoryStore
}

func NewCategoryHandler(categories CategoryStore) *CategoryHandler {
	return &CategoryHandler{Categories: categories}
}

// Create handles POST /categories/.
func (h *CategoryHandler) Create(c echo.Context) error {
	var req struct {
		Name string `json:"name"`
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

	cat, err := h.Categories.Create(ctx, req.Name)
	if err != nil {
		if err == repository.ErrNameExists {
			return c.JSON(http.StatusBadRequest, echo.Map{"detail": "Category already exists"})
		}
		return c.JSON(http.StatusInternalServerError, echo.Map{"detail": "create category failed"})
	}
	return c.JSON(http.StatusCreated, cat)
}

// List handles GET /categories/.
func (h *CategoryHandler) List(c echo.Context) error {
	ctx, cancel := context.WithTimeout(c.Request().Context(), 5*time.Second)
	defer cancel()

	items, err := h.Categories.List(ctx)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"detail": "list categories failed"})
	}
	return c.JSON(http.StatusOK, items)
}
