package handlers

import (
	"github.com/gin-gonic/gin"

	"github.com/techbytecraft/QSR/internal/domain/ingestion"
	"github.com/techbytecraft/QSR/internal/domain/inventory"
	"github.com/techbytecraft/QSR/internal/infrastructure/http/v1/dto"
)

// InventoryHandler handles catalog reads, item lifecycle and bulk ingestion.
type InventoryHandler struct {
	*BaseHandler
	service   *inventory.Service
	ingestion *ingestion.Service
}

// NewInventoryHandler creates a new inventory handler.
func NewInventoryHandler(base *BaseHandler, service *inventory.Service, ing *ingestion.Service) *InventoryHandler {
	return &InventoryHandler{BaseHandler: base, service: service, ingestion: ing}
}

// List handles GET /restaurants/:rid/inventory?timeframe=daily&threshold=20
func (h *InventoryHandler) List(c *gin.Context) {
	tf := inventory.Timeframe(c.DefaultQuery("timeframe", string(inventory.TimeframeWeekly)))
	threshold := h.ParseIntQuery(c, "threshold", inventory.DefaultLowStockFilter)

	catalog, err := h.service.View(c.Request.Context(), c.Param("rid"), tf, threshold)
	if err != nil {
		h.Error(c, err)
		return
	}
	h.OK(c, dto.FromCatalog(catalog))
}

// Add handles POST /restaurants/:rid/inventory
func (h *InventoryHandler) Add(c *gin.Context) {
	var req dto.AddItemRequest
	if !h.BindJSON(c, &req) {
		return
	}

	item, err := h.service.AddItem(c.Request.Context(), c.Param("rid"), inventory.NewItemInput{
		Name:     req.Name,
		Stock:    req.Stock,
		UnitCost: req.UnitCost,
	})
	if err != nil {
		h.Error(c, err)
		return
	}
	h.OK(c, dto.FromInventoryItem(item))
}

// Delete handles DELETE /restaurants/:rid/inventory/:iid
func (h *InventoryHandler) Delete(c *gin.Context) {
	if err := h.service.DeleteItem(c.Request.Context(), c.Param("rid"), c.Param("iid")); err != nil {
		h.Error(c, err)
		return
	}
	h.NoContent(c)
}

// BulkAdd handles POST /restaurants/:rid/inventory/bulk
func (h *InventoryHandler) BulkAdd(c *gin.Context) {
	var req dto.BulkAddRequest
	if !h.BindJSON(c, &req) {
		return
	}

	rows := make([]ingestion.Row, 0, len(req.Items))
	for _, item := range req.Items {
		rows = append(rows, ingestion.Row{
			Name:     item.Name,
			Stock:    item.Stock,
			UnitCost: item.UnitCost,
		})
	}

	res, err := h.ingestion.Ingest(c.Request.Context(), c.Param("rid"), rows)
	if err != nil {
		h.Error(c, err)
		return
	}
	h.OK(c, dto.FromIngestResult(res))
}
