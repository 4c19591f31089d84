package insight

import (
	"encoding/json"
	"strings"

	"github.com/techbytecraft/QSR/internal/domain/ingestion"
)

// salvageJSONArray cuts the '['..']' span out of a model response. Models
// wrap JSON in prose or markdown fences often enough that rejecting the
// whole response would throw away good extractions.
func salvageJSONArray(text string) (string, bool) {
	start := strings.Index(text, "[")
	end := strings.LastIndex(text, "]")
	if start == -1 || end == -1 || end < start {
		return "", false
	}
	return text[start : end+1], true
}

// extractedRow mirrors the schema the extraction prompt demands. Pointer
// fields distinguish "absent" from zero values.
type extractedRow struct {
	Name     *string  `json:"name"`
	Stock    *float64 `json:"stock"`
	UnitCost *float64 `json:"unitCost"`
}

// decodeRows parses a model response into candidate ingestion rows. Rows
// missing a required field are dropped; an unparsable response yields an
// empty batch rather than an error, matching the prompt's empty-array
// contract.
func decodeRows(text string) []ingestion.Row {
	payload, ok := salvageJSONArray(text)
	if !ok {
		return nil
	}

	var raw []extractedRow
	if err := json.Unmarshal([]byte(payload), &raw); err != nil {
		return nil
	}

	rows := make([]ingestion.Row, 0, len(raw))
	for _, r := range raw {
		if r.Name == nil || *r.Name == "" || r.Stock == nil || r.UnitCost == nil {
			continue
		}
		rows = append(rows, ingestion.Row{
			Name:     *r.Name,
			Stock:    int(*r.Stock),
			UnitCost: *r.UnitCost,
		})
	}
	return rows
}
