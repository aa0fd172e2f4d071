package handler

import (
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"
	reportapp "github.com/luxegem/backend/internal/application/report"
	"github.com/luxegem/backend/internal/infrastructure/logger"
	"github.com/luxegem/backend/internal/interfaces/http/middleware"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"
)

// ReportHandler handles report-related API endpoints
type ReportHandler struct {
	BaseHandler
	salesReportService *reportapp.SalesReportService
}

// NewReportHandler creates a new ReportHandler
func NewReportHandler(salesReportService *reportapp.SalesReportService) *ReportHandler {
	return &ReportHandler{salesReportService: salesReportService}
}

// RegisterRoutes registers report routes
func (h *ReportHandler) RegisterRoutes(rg *gin.RouterGroup) {
	reports := rg.Group("/reports")
	{
		reports.GET("/sales", h.GetSalesReport)
	}
}

// GetSalesReport handles GET /api/v1/reports/sales.
// Every query parameter is optional. Malformed values never fail the
// request; they degrade to defaults so dashboards keep rendering.
func (h *ReportHandler) GetSalesReport(c *gin.Context) {
	query := reportapp.SalesReportQuery{
		DateFilter:    c.DefaultQuery("dateFilter", "THIS_MONTH"),
		FromDate:      c.Query("from"),
		ToDate:        c.Query("to"),
		Search:        c.Query("search"),
		PaymentMethod: c.Query("paymentMethod"),
		MetalType:     c.Query("metalType"),
		Salesperson:   c.Query("salesperson"),
		MinAmount:     parseDecimal(c.Query("minAmount")),
		MaxAmount:     parseDecimal(c.Query("maxAmount")),
		Page:          parseInt(c.Query("page"), 0),
		Size:          parseInt(c.Query("size"), 10),
		SortBy:        c.DefaultQuery("sortBy", "date"),
		SortDir:       c.DefaultQuery("sortDir", "desc"),
	}

	tenantID := middleware.GetTenant(c)

	resp, err := h.salesReportService.GetSalesReport(c.Request.Context(), tenantID, query)
	if err != nil {
		logger.GetGinLogger(c).Error("sales report query failed",
			zap.String("tenant_id", tenantID),
			zap.Error(err),
		)
		h.Internal(c, "failed to build sales report")
		return
	}

	h.Success(c, resp)
}

// parseInt parses a query integer, falling back on any unusable value.
func parseInt(raw string, fallback int) int {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return fallback
	}
	n, err := strconv.Atoi(raw)
	if err != nil {
		return fallback
	}
	return n
}

// parseDecimal parses an optional amount bound; unusable values disable it.
func parseDecimal(raw string) *decimal.Decimal {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return nil
	}
	d, err := decimal.NewFromString(raw)
	if err != nil {
		return nil
	}
	return &d
}
