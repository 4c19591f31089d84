// Package dto defines HTTP request and response shapes. Monetary values are
// exact decimals internally and round to two places only here, at the edge.
package dto

// IDResponse is returned on resource creation.
type IDResponse struct {
	ID string `json:"id"`
}

// SuccessResponse is a generic acknowledgement.
type SuccessResponse struct {
	Success bool   `json:"success"`
	Message string `json:"message,omitempty"`
}
