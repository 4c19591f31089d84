package dto

import (
	"github.com/techbytecraft/QSR/internal/core/types"
	"github.com/techbytecraft/QSR/internal/domain/ingestion"
	"github.com/techbytecraft/QSR/internal/domain/inventory"
)

// AddItemRequest creates one inventory item.
type AddItemRequest struct {
	Name     string  `json:"name" binding:"required"`
	Stock    int     `json:"stock"`
	UnitCost float64 `json:"unitCost"`
}

// BulkAddRequest merges a batch of candidate items.
type BulkAddRequest struct {
	Items []AddItemRequest `json:"items" binding:"required"`
}

// InventoryItemResponse is one catalog row.
type InventoryItemResponse struct {
	ID       string  `json:"id"`
	Name     string  `json:"name"`
	Stock    int     `json:"stock"`
	UnitCost float64 `json:"unitCost"`
	Status   string  `json:"status"`
}

// FromInventoryItem converts a domain item.
func FromInventoryItem(item inventory.Item) InventoryItemResponse {
	return InventoryItemResponse{
		ID:       item.ID,
		Name:     item.Name,
		Stock:    item.Stock,
		UnitCost: types.MoneyFloat(item.UnitCost),
		Status:   string(item.Status),
	}
}

// CatalogResponse is a filtered catalog view.
type CatalogResponse struct {
	Items      []InventoryItemResponse `json:"items"`
	TotalValue float64                 `json:"totalValue"`
}

// FromCatalog converts a catalog slice plus its valuation.
func FromCatalog(c inventory.Catalog) CatalogResponse {
	items := make([]InventoryItemResponse, 0, len(c))
	for _, item := range c {
		items = append(items, FromInventoryItem(item))
	}
	return CatalogResponse{
		Items:      items,
		TotalValue: types.MoneyFloat(c.TotalValue()),
	}
}

// IngestResultResponse reports a merged batch.
type IngestResultResponse struct {
	Received int `json:"received"`
	Added    int `json:"added"`
	Dropped  int `json:"dropped"`
}

// FromIngestResult converts an ingestion result.
func FromIngestResult(r ingestion.Result) IngestResultResponse {
	return IngestResultResponse{Received: r.Received, Added: r.Added, Dropped: r.Dropped}
}
