package similarity

import (
	"context"
	"log/slog"
	"testing"

	"github.com/pkg/errors"
	"github.com/qdrant/go-client/qdrant"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeQdrant struct {
	exists      bool
	created     *qdrant.CreateCollection
	upserts     []*qdrant.UpsertPoints
	lastQuery   *qdrant.QueryPoints
	scored      []*qdrant.ScoredPoint
	retrieved   []*qdrant.RetrievedPoint
	lastGet     *qdrant.GetPoints
	deleted     []*qdrant.DeletePoints
	err         error
	closeCalled bool
}

func (f *fakeQdrant) CollectionExists(_ context.Context, _ string) (bool, error) {
	return f.exists, f.err
}

func (f *fakeQdrant) CreateCollection(_ context.Context, request *qdrant.CreateCollection) error {
	f.created = request

	return f.err
}

func (f *fakeQdrant) Upsert(_ context.Context, request *qdrant.UpsertPoints) (*qdrant.UpdateResult, error) {
	f.upserts = append(f.upserts, request)

	return &qdrant.UpdateResult{}, f.err
}

func (f *fakeQdrant) Query(_ context.Context, request *qdrant.QueryPoints) ([]*qdrant.ScoredPoint, error) {
	f.lastQuery = request

	return f.scored, f.err
}

func (f *fakeQdrant) Get(_ context.Context, request *qdrant.GetPoints) ([]*qdrant.RetrievedPoint, error) {
	f.lastGet = request

	return f.retrieved, f.err
}

func (f *fakeQdrant) Delete(_ context.Context, request *qdrant.DeletePoints) (*qdrant.UpdateResult, error) {
	f.deleted = append(f.deleted, request)

	return &qdrant.UpdateResult{}, f.err
}

func (f *fakeQdrant) Close() error {
	f.closeCalled = true

	return nil
}

const (
	pointA = "0b5c7f0e-8a6f-4c1e-9e0b-3f5d2a1c4b7e"
	pointB = "5a1d3e9c-2b4f-4d6a-8c0e-7f9b1a3c5d2e"
)

func TestQdrantIndex_EnsureCollection(t *testing.T) {
	t.Run("creates missing collection", func(t *testing.T) {
		client := &fakeQdrant{}
		index := newQdrantIndex(client, "images", 512, slog.Default())

		require.NoError(t, index.EnsureCollection(context.Background()))
		require.NotNil(t, client.created)
		assert.Equal(t, "images", client.created.GetCollectionName())
		assert.Equal(t, uint64(512), client.created.GetVectorsConfig().GetParams().GetSize())
		assert.Equal(t, qdrant.Distance_Cosine, client.created.GetVectorsConfig().GetParams().GetDistance())
	})

	t.Run("existing collection is left alone", func(t *testing.T) {
		client := &fakeQdrant{exists: true}
		index := newQdrantIndex(client, "images", 512, slog.Default())

		require.NoError(t, index.EnsureCollection(context.Background()))
		assert.Nil(t, client.created)
	})

	t.Run("no vector size skips the check", func(t *testing.T) {
		client := &fakeQdrant{err: errors.New("unreachable")}
		index := newQdrantIndex(client, "images", 0, slog.Default())

		require.NoError(t, index.EnsureCollection(context.Background()))
	})
}

func TestQdrantIndex_Upsert(t *testing.T) {
	client := &fakeQdrant{}
	index := newQdrantIndex(client, "images", 3, slog.Default())

	err := index.Upsert(context.Background(), pointA, []float32{0.1, 0.2, 0.3}, map[string]any{"record_id": "r-1"})
	require.NoError(t, err)

	require.Len(t, client.upserts, 1)
	req := client.upserts[0]
	assert.Equal(t, "images", req.GetCollectionName())
	assert.True(t, req.GetWait())
	require.Len(t, req.GetPoints(), 1)
	assert.Equal(t, pointA, req.GetPoints()[0].GetId().GetUuid())
	assert.Equal(t, "r-1", req.GetPoints()[0].GetPayload()["record_id"].GetStringValue())
}

func TestQdrantIndex_Query(t *testing.T) {
	client := &fakeQdrant{
		scored: []*qdrant.ScoredPoint{
			{Id: qdrant.NewID(pointA), Score: 0.9},
			{Id: qdrant.NewID(pointB), Score: 0.85},
		},
	}
	index := newQdrantIndex(client, "images", 3, slog.Default())

	matches, err := index.Query(context.Background(), []float32{1, 0, 0}, 10, 0, 0.85)
	require.NoError(t, err)

	require.Len(t, matches, 2, "a score equal to the threshold counts")
	assert.Equal(t, pointA, matches[0].ID)
	assert.InDelta(t, 0.9, matches[0].Score, 1e-6)
	assert.Equal(t, pointB, matches[1].ID)

	assert.Equal(t, uint64(10), client.lastQuery.GetLimit())
	assert.Equal(t, uint64(0), client.lastQuery.GetOffset())
	assert.InDelta(t, 0.85, client.lastQuery.GetScoreThreshold(), 1e-6)
}

func TestQdrantIndex_Query_Offset(t *testing.T) {
	client := &fakeQdrant{}
	index := newQdrantIndex(client, "images", 3, slog.Default())

	matches, err := index.Query(context.Background(), []float32{1, 0, 0}, 10, 20, 0.85)
	require.NoError(t, err)
	assert.Empty(t, matches)

	assert.Equal(t, uint64(10), client.lastQuery.GetLimit())
	assert.Equal(t, uint64(20), client.lastQuery.GetOffset())
}

func TestQdrantIndex_Query_Error(t *testing.T) {
	client := &fakeQdrant{err: errors.New("unavailable")}
	index := newQdrantIndex(client, "images", 3, slog.Default())

	_, err := index.Query(context.Background(), []float32{1}, 10, 0, 0.85)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unavailable")
}

func TestQdrantIndex_Retrieve(t *testing.T) {
	client := &fakeQdrant{
		retrieved: []*qdrant.RetrievedPoint{
			{
				Id: qdrant.NewID(pointA),
				Vectors: &qdrant.VectorsOutput{
					VectorsOptions: &qdrant.VectorsOutput_Vector{
						Vector: &qdrant.VectorOutput{
							Vector: &qdrant.VectorOutput_Dense{Dense: &qdrant.DenseVector{Data: []float32{0.4, 0.5}}},
						},
					},
				},
			},
			{Id: qdrant.NewID(pointB)},
		},
	}
	index := newQdrantIndex(client, "images", 2, slog.Default())

	vectors, err := index.Retrieve(context.Background(), []string{pointA, pointB})
	require.NoError(t, err)

	assert.Equal(t, map[string][]float32{pointA: {0.4, 0.5}}, vectors)
	assert.True(t, client.lastGet.GetWithVectors().GetEnable())
	assert.Len(t, client.lastGet.GetIds(), 2)
}

func TestQdrantIndex_Delete(t *testing.T) {
	client := &fakeQdrant{}
	index := newQdrantIndex(client, "images", 2, slog.Default())

	require.NoError(t, index.Delete(context.Background(), pointA))
	require.Len(t, client.deleted, 1)
	assert.Equal(t, pointA, client.deleted[0].GetPoints().GetPoints().GetIds()[0].GetUuid())
}
