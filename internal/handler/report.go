package handler

import (
	"bytes"
	"context"
	"encoding/csv"
	"net/http"
	"strconv"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/keyvanm/inventory-sales-api/internal/model"
)

// InventorySource supplies the full product table for the report.
type InventorySource interface {
	All(ctx context.Context) ([]model.Product, error)
}

// ReportHandler renders the inventory as a downloadable CSV with a computed
// total_value column (price * stock_quantity) per row.
type ReportHandler struct {
	Products InventorySource
}

func NewReportHandler(products InventorySource) *ReportHandler {
	return &ReportHandler{Products: products}
}

// Inventory handles GET /report/inventory.
func (h *ReportHandler) Inventory(c echo.Context) error {
	ctx, cancel := context.WithTimeout(c.Request().Context(), 10*time.Second)
	defer cancel()

	products, err := h.Products.All(ctx)
	if err != nil {
		return c.JSON(http.StatusServiceUnavailable, echo.Map{"detail": "inventory data unavailable"})
	}

	var buf bytes.Buffer
	w := csv.NewWriter(&buf)
	_ = w.Write([]string{"id", "name", "description", "price", "stock_quantity", "category_id", "supplier_id", "total_value"})
	for _, p := range products {
		total := p.Price * float64(p.StockQuantity)
		_ = w.Write([]string{
			strconv.FormatUint(p.ID, 10),
			p.Name,
			p.Description,
			strconv.FormatFloat(p.Price, 'f', -1, 64),
			strconv.FormatInt(p.StockQuantity, 10),
			strconv.FormatUint(p.CategoryID, 10),
			strconv.FormatUint(p.SupplierID, 10),
			strconv.FormatFloat(total, 'f', -1, 64),
		})
	}
	w.Flush()
	if err := w.Error(); err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"detail": "report generation failed"})
	}

	c.Response().Header().Set(echo.HeaderContentDisposition, `attachment; filename=inventory_report.csv`)
	return c.Blob(http.StatusOK, "text/csv", buf.Bytes())
}
