package insight

import (
	"context"

	"github.com/tmc/langchaingo/llms"

	"github.com/techbytecraft/QSR/internal/core/apperror"
	"github.com/techbytecraft/QSR/internal/domain/ingestion"
	"github.com/techbytecraft/QSR/internal/domain/inventory"
	"github.com/techbytecraft/QSR/internal/domain/restaurant"
	"github.com/techbytecraft/QSR/pkg/logger"
)

// Degradation messages shown to users when a call cannot be served. The
// dashboard renders these verbatim, so they stay human-readable.
const (
	msgNotConfigured = "AI insights are not configured. Set OPENAI_API_KEY to enable them."
	msgFailed        = "An error occurred while generating AI insights. Please try again later."
)

// Compile-time check: the service is an invoice extractor.
var _ ingestion.Extractor = (*Service)(nil)

// Snapshots is the read port the service needs.
type Snapshots interface {
	Get(ctx context.Context, id string) (*restaurant.Restaurant, error)
}

// Service generates analyses over restaurant snapshots. A nil model is
// valid: every operation then degrades with a configuration message instead
// of failing at startup.
type Service struct {
	model llms.Model
	store Snapshots
}

// NewService creates an insight service. model may be nil.
func NewService(model llms.Model, store Snapshots) *Service {
	return &Service{model: model, store: store}
}

// Enabled reports whether a model is configured.
func (s *Service) Enabled() bool {
	return s.model != nil
}

func (s *Service) generate(ctx context.Context, prompt string, opts ...llms.CallOption) (string, error) {
	if s.model == nil {
		return "", apperror.NewExternalService(msgNotConfigured, nil)
	}

	out, err := llms.GenerateFromSinglePrompt(ctx, s.model, prompt, opts...)
	if err != nil {
		logger.Error(ctx, "text generation failed", "error", err)
		return "", apperror.NewExternalService(msgFailed, err)
	}
	return out, nil
}

// CostOptimization analyzes the catalog for cost-saving opportunities.
func (s *Service) CostOptimization(ctx context.Context, restaurantID string) (string, error) {
	r, err := s.store.Get(ctx, restaurantID)
	if err != nil {
		return "", err
	}
	return s.generate(ctx, costOptimizationPrompt(r.Inventory))
}

// ForecastAnalysis narrates actual-versus-forecast sales for a timeframe.
func (s *Service) ForecastAnalysis(ctx context.Context, restaurantID string, tf inventory.Timeframe) (string, error) {
	r, err := s.store.Get(ctx, restaurantID)
	if err != nil {
		return "", err
	}
	return s.generate(ctx, forecastAnalysisPrompt(r.Sales.Series(tf), tf))
}

// BusinessReport generates the full consultant-style report over one
// snapshot: sales, inventory, tasks, dish costs and year-over-year figures.
func (s *Service) BusinessReport(ctx context.Context, restaurantID string) (string, error) {
	r, err := s.store.Get(ctx, restaurantID)
	if err != nil {
		return "", err
	}
	return s.generate(ctx, businessReportPrompt(r))
}

// ExtractInvoiceItems turns an invoice image into candidate inventory rows.
// The response is salvaged and structurally filtered; garbage output yields
// an empty batch, never an error.
func (s *Service) ExtractInvoiceItems(ctx context.Context, mimeType string, data []byte) ([]ingestion.Row, error) {
	if s.model == nil {
		return nil, apperror.NewExternalService(msgNotConfigured, nil)
	}

	content := []llms.MessageContent{
		{
			Role: llms.ChatMessageTypeHuman,
			Parts: []llms.ContentPart{
				llms.TextPart(invoiceExtractionPrompt),
				llms.BinaryPart(mimeType, data),
			},
		},
	}

	resp, err := s.model.GenerateContent(ctx, content, llms.WithJSONMode())
	if err != nil {
		logger.Error(ctx, "invoice extraction failed", "error", err)
		return nil, apperror.NewExternalService(msgFailed, err)
	}
	if len(resp.Choices) == 0 {
		return nil, nil
	}

	rows := decodeRows(resp.Choices[0].Content)
	logger.Info(ctx, "invoice extraction completed", "rows", len(rows))
	return rows, nil
}
