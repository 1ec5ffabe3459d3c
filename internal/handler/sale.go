package handler

import (
	"context"
	"log"
	"net/http"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/keyvanm/inventory-sales-api/internal/model"
	"github.com/keyvanm/inventory-sales-api/internal/queue"
	"github.com/keyvanm/inventory-sales-api/internal/repository"
)

// StockLedger is the slice of the product repository the sale endpoint
// consumes: a product lookup plus the atomic conditional decrement.
type StockLedger interface {
	GetByID(ctx context.Context, id uint64) (model.Product, error)
	DecrementStock(ctx context.Context, id uint64, qty int64) (int64, error)
}

// SalePublisher emits a sale.completed event. May be nil when messaging is
// not configured; publish failures never fail the sale.
type SalePublisher func(ctx context.Context, ev queue.SaleCompletedEvent) error

// SaleHandler orchestrates a sale: validate the request, look up the
// product, run the ledger's decrement and report the new stock level.
type SaleHandler struct {
	Products StockLedger
	Publish  SalePublisher
}

func NewSaleHandler(products StockLedger, publish SalePublisher) *SaleHandler {
	return &SaleHandler{Products: products, Publish: publish}
}

type saleReq struct {
	ProductID    uint64 `json:"product_id"`
	QuantitySold int64  `json:"quantity_sold"`
}

// Create handles POST /sales/. A zero or negative quantity is rejected
// before it reaches the ledger; the conditional UPDATE would otherwise let
// a negative value inflate stock. The decrement itself is all-or-nothing,
// so a failed sale leaves stock exactly as it was.
func (h *SaleHandler) Create(c echo.Context) error {
	var req saleReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"detail": "invalid body"})
	}
	if req.ProductID == 0 {
		return c.JSON(http.StatusBadRequest, echo.Map{"detail": "product_id is required"})
	}
	if req.QuantitySold <= 0 {
		return c.JSON(http.StatusBadRequest, echo.Map{"detail": "quantity_sold must be a positive integer"})
	}

	ctx, cancel := context.WithTimeout(c.Request().Context(), 5*time.Second)
	defer cancel()

	p, err := h.Products.GetByID(ctx, req.ProductID)
	if err != nil {
		if err == repository.ErrProductNotFound {
			return c.JSON(http.StatusNotFound, echo.Map{"detail": "Product not found"})
		}
		return c.JSON(http.StatusInternalServerError, echo.Map{"detail": "database error"})
	}

	newStock, err := h.Products.DecrementStock(ctx, req.ProductID, req.QuantitySold)
	if err != nil {
		switch err {
		case repository.ErrProductNotFound:
			// Deleted between the lookup and the decrement.
			return c.JSON(http.StatusNotFound, echo.Map{"detail": "Product not found"})
		case repository.ErrInsufficientStock:
			return c.JSON(http.StatusBadRequest, echo.Map{"detail": "Not enough stock available"})
		default:
			return c.JSON(http.StatusInternalServerError, echo.Map{"detail": "database error"})
		}
	}

	if h.Publish != nil {
		ev := queue.SaleCompletedEvent{
			ProductID:    p.ID,
			ProductName:  p.Name,
			QuantitySold: req.QuantitySold,
			NewStock:     newStock,
			SoldBy:       username(c),
			OccurredAt:   time.Now().UTC().Format(time.RFC3339),
		}
		// Fire and forget; the sale already committed.
		go func() {
			pubCtx, pubCancel := context.WithTimeout(context.Background(), 5*time.Second)
			defer pubCancel()
			if err := h.Publish(pubCtx, ev); err != nil {
				log.Printf("sale: publish event failed: %v", err)
			}
		}()
	}

	return c.JSON(http.StatusOK, echo.Map{
		"message":         "Sale successful",
		"new_stock_count": newStock,
	})
}

// username returns the subject stored by the session guard, or "" when the
// route was somehow reached unauthenticated.
func username(c echo.Context) string {
	if v, ok := c.Get("username").(string); ok {
		return v
	}
	return ""
}
