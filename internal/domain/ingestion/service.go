// Package ingestion merges externally extracted inventory rows into the
// catalog. Extraction (invoice images, documents) is pluggable; this package
// owns the validate-and-merge half of the pipeline.
package ingestion

import (
	"context"

	"github.com/techbytecraft/QSR/internal/core/types"
	"github.com/techbytecraft/QSR/internal/domain/inventory"
	"github.com/techbytecraft/QSR/pkg/logger"
)

// Row is one extracted candidate inventory line. Values arrive untrusted:
// an extractor may hallucinate shapes, so every row is validated
// structurally before it reaches the catalog.
type Row struct {
	Name     string  `json:"name"`
	Stock    int     `json:"stock"`
	UnitCost float64 `json:"unitCost"`
}

// Extractor turns raw bytes (an invoice image) into candidate rows.
type Extractor interface {
	ExtractInvoiceItems(ctx context.Context, mimeType string, data []byte) ([]Row, error)
}

// Result reports what happened to a batch.
type Result struct {
	Received int `json:"received"`
	Added    int `json:"added"`
	Dropped  int `json:"dropped"`
}

// Service validates extracted rows and merges them into the inventory.
type Service struct {
	inventory *inventory.Service
}

// NewService creates an ingestion service.
func NewService(inv *inventory.Service) *Service {
	return &Service{inventory: inv}
}

// valid is the structural gate: named, non-negative stock, finite
// non-negative cost. Bad rows are dropped silently, never failing the batch.
func valid(r Row) bool {
	if r.Name == "" || r.Stock < 0 {
		return false
	}
	return types.IsFinite(r.UnitCost) && r.UnitCost >= 0
}

// Ingest merges a batch of rows into the restaurant's catalog. Each row is
// judged on its own; the batch succeeds with whatever subset passed.
func (s *Service) Ingest(ctx context.Context, restaurantID string, rows []Row) (Result, error) {
	inputs := make([]inventory.NewItemInput, 0, len(rows))
	for _, r := range rows {
		if !valid(r) {
			continue
		}
		inputs = append(inputs, inventory.NewItemInput{
			Name:     r.Name,
			Stock:    r.Stock,
			UnitCost: r.UnitCost,
		})
	}

	added, err := s.inventory.BulkAdd(ctx, restaurantID, inputs)
	if err != nil {
		return Result{}, err
	}

	res := Result{
		Received: len(rows),
		Added:    added,
		Dropped:  len(rows) - added,
	}

	logger.Info(ctx, "ingestion batch merged",
		"restaurant_id", restaurantID,
		"received", res.Received,
		"added", res.Added,
		"dropped", res.Dropped,
	)

	return res, nil
}

// IngestInvoice runs an extractor over invoice bytes and merges the result.
func (s *Service) IngestInvoice(ctx context.Context, restaurantID string, ex Extractor, mimeType string, data []byte) (Result, error) {
	rows, err := ex.ExtractInvoiceItems(ctx, mimeType, data)
	if err != nil {
		return Result{}, err
	}
	return s.Ingest(ctx, restaurantID, rows)
}
