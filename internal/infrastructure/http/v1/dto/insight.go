package dto

import "github.com/techbytecraft/QSR/internal/domain/ingestion"

// InsightResponse carries a generated analysis.
type InsightResponse struct {
	Insight string `json:"insight"`
}

// ParseInvoiceRequest submits an invoice image for extraction.
// Data is base64-encoded image bytes.
type ParseInvoiceRequest struct {
	MimeType string `json:"mimeType" binding:"required"`
	Data     string `json:"data" binding:"required"`
}

// CandidateItemResponse is one extracted row awaiting confirmation.
type CandidateItemResponse struct {
	Name     string  `json:"name"`
	Stock    int     `json:"stock"`
	UnitCost float64 `json:"unitCost"`
}

// CandidateItemsResponse carries extracted rows for the confirm step.
type CandidateItemsResponse struct {
	Items []CandidateItemResponse `json:"items"`
}

// FromCandidateRows converts extracted ingestion rows.
func FromCandidateRows(rows []ingestion.Row) CandidateItemsResponse {
	items := make([]CandidateItemResponse, 0, len(rows))
	for _, r := range rows {
		items = append(items, CandidateItemResponse(r))
	}
	return CandidateItemsResponse{Items: items}
}
