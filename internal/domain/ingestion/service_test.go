package ingestion

import (
	"context"
	"errors"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/techbytecraft/QSR/internal/domain/inventory"
)

type catalogRepo struct {
	catalog inventory.Catalog
}

func (f *catalogRepo) Catalog(_ context.Context, _ string) (inventory.Catalog, error) {
	return f.catalog, nil
}

func (f *catalogRepo) UpdateCatalog(_ context.Context, _ string, fn func(inventory.Catalog) (inventory.Catalog, error)) (inventory.Catalog, error) {
	next, err := fn(f.catalog)
	if err != nil {
		return nil, err
	}
	f.catalog = next
	return next, nil
}

func TestIngest(t *testing.T) {
	ctx := context.Background()
	repo := &catalogRepo{}
	svc := NewService(inventory.NewService(repo))

	res, err := svc.Ingest(ctx, "r1", []Row{
		{Name: "Tomatoes", Stock: 50, UnitCost: 0.8},
		{Name: "", Stock: 10, UnitCost: 1},
		{Name: "Onions", Stock: -3, UnitCost: 1},
		{Name: "Oil", Stock: 4, UnitCost: math.Inf(1)},
		{Name: "Garlic", Stock: 12, UnitCost: 0.3},
	})
	require.NoError(t, err)

	assert.Equal(t, Result{Received: 5, Added: 2, Dropped: 3}, res)
	require.Len(t, repo.catalog, 2)
	for _, item := range repo.catalog {
		assert.Equal(t, inventory.Classify(item.Stock), item.Status)
	}
}

func TestIngestEmptyBatch(t *testing.T) {
	repo := &catalogRepo{}
	svc := NewService(inventory.NewService(repo))

	res, err := svc.Ingest(context.Background(), "r1", nil)
	require.NoError(t, err)
	assert.Equal(t, Result{}, res)
	assert.Empty(t, repo.catalog)
}

type stubExtractor struct {
	rows []Row
	err  error
}

func (s *stubExtractor) ExtractInvoiceItems(_ context.Context, _ string, _ []byte) ([]Row, error) {
	return s.rows, s.err
}

func TestIngestInvoice(t *testing.T) {
	ctx := context.Background()

	t.Run("merges extracted rows", func(t *testing.T) {
		repo := &catalogRepo{}
		svc := NewService(inventory.NewService(repo))

		res, err := svc.IngestInvoice(ctx, "r1", &stubExtractor{rows: []Row{
			{Name: "Flour", Stock: 20, UnitCost: 1.5},
		}}, "image/png", []byte{1})
		require.NoError(t, err)
		assert.Equal(t, 1, res.Added)
		assert.Len(t, repo.catalog, 1)
	})

	t.Run("extractor failure stops the batch", func(t *testing.T) {
		repo := &catalogRepo{}
		svc := NewService(inventory.NewService(repo))

		_, err := svc.IngestInvoice(ctx, "r1", &stubExtractor{err: errors.New("boom")}, "image/png", []byte{1})
		require.Error(t, err)
		assert.Empty(t, repo.catalog)
	})
}
