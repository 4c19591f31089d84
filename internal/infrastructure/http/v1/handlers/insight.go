package handlers

import (
	"encoding/base64"

	"github.com/gin-gonic/gin"

	"github.com/techbytecraft/QSR/internal/core/apperror"
	"github.com/techbytecraft/QSR/internal/domain/ingestion"
	"github.com/techbytecraft/QSR/internal/domain/inventory"
	"github.com/techbytecraft/QSR/internal/infrastructure/http/v1/dto"
	"github.com/techbytecraft/QSR/internal/insight"
)

// InsightHandler handles AI analyses and invoice extraction.
type InsightHandler struct {
	*BaseHandler
	insights  *insight.Service
	ingestion *ingestion.Service
}

// NewInsightHandler creates a new insight handler.
func NewInsightHandler(base *BaseHandler, insights *insight.Service, ing *ingestion.Service) *InsightHandler {
	return &InsightHandler{BaseHandler: base, insights: insights, ingestion: ing}
}

// Costs handles POST /restaurants/:rid/insights/costs
func (h *InsightHandler) Costs(c *gin.Context) {
	text, err := h.insights.CostOptimization(c.Request.Context(), c.Param("rid"))
	if err != nil {
		h.Error(c, err)
		return
	}
	h.OK(c, dto.InsightResponse{Insight: text})
}

// Forecast handles POST /restaurants/:rid/insights/forecast?timeframe=daily
func (h *InsightHandler) Forecast(c *gin.Context) {
	tf := inventory.Timeframe(c.DefaultQuery("timeframe", string(inventory.TimeframeMonthly)))

	text, err := h.insights.ForecastAnalysis(c.Request.Context(), c.Param("rid"), tf)
	if err != nil {
		h.Error(c, err)
		return
	}
	h.OK(c, dto.InsightResponse{Insight: text})
}

// Report handles POST /restaurants/:rid/insights/report
func (h *InsightHandler) Report(c *gin.Context) {
	text, err := h.insights.BusinessReport(c.Request.Context(), c.Param("rid"))
	if err != nil {
		h.Error(c, err)
		return
	}
	h.OK(c, dto.InsightResponse{Insight: text})
}

// ParseInvoice handles POST /restaurants/:rid/invoice/parse
// Extracts candidate rows from an invoice image. By default the rows come
// back for confirmation and the commit is a separate bulk add; commit=true
// merges them into the catalog in one step.
func (h *InsightHandler) ParseInvoice(c *gin.Context) {
	var req dto.ParseInvoiceRequest
	if !h.BindJSON(c, &req) {
		return
	}

	data, err := base64.StdEncoding.DecodeString(req.Data)
	if err != nil {
		h.Error(c, apperror.NewValidation("data must be base64-encoded").WithDetail("error", err.Error()))
		return
	}

	if c.Query("commit") == "true" {
		res, err := h.ingestion.IngestInvoice(c.Request.Context(), c.Param("rid"), h.insights, req.MimeType, data)
		if err != nil {
			h.Error(c, err)
			return
		}
		h.OK(c, dto.FromIngestResult(res))
		return
	}

	rows, err := h.insights.ExtractInvoiceItems(c.Request.Context(), req.MimeType, data)
	if err != nil {
		h.Error(c, err)
		return
	}
	h.OK(c, dto.FromCandidateRows(rows))
}
