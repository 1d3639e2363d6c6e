// Package similarity stores fingerprint vectors in Qdrant.
package similarity

import (
	"context"
	"log/slog"

	"provenance/config"
	"provenance/internal/domain/service"

	"github.com/pkg/errors"
	"github.com/qdrant/go-client/qdrant"
	"go.uber.org/fx"
)

// qdrantClient is the subset of *qdrant.Client used by the index
type qdrantClient interface {
	CollectionExists(ctx context.Context, collectionName string) (bool, error)
	CreateCollection(ctx context.Context, request *qdrant.CreateCollection) error
	Upsert(ctx context.Context, request *qdrant.UpsertPoints) (*qdrant.UpdateResult, error)
	Query(ctx context.Context, request *qdrant.QueryPoints) ([]*qdrant.ScoredPoint, error)
	Get(ctx context.Context, request *qdrant.GetPoints) ([]*qdrant.RetrievedPoint, error)
	Delete(ctx context.Context, request *qdrant.DeletePoints) (*qdrant.UpdateResult, error)
	Close() error
}

type qdrantIndex struct {
	client     qdrantClient
	collection string
	vectorSize uint64
	logger     *slog.Logger
}

// Params holds dependencies for the similarity index, injected by Fx
type Params struct {
	fx.In

	Lc     fx.Lifecycle
	Config *config.Config
	Logger *slog.Logger
}

// New connects to Qdrant and ensures the collection exists on start
func New(params Params) (service.SimilarityIndex, error) {
	cfg := params.Config.Qdrant
	if cfg == nil || cfg.Host == "" {
		return nil, errors.New("qdrant host is required")
	}

	client, err := qdrant.NewClient(&qdrant.Config{
		Host:   cfg.Host,
		Port:   cfg.Port,
		APIKey: cfg.APIKey,
		UseTLS: cfg.UseTLS,
	})
	if err != nil {
		return nil, errors.Wrap(err, "failed to create qdrant client")
	}

	index := newQdrantIndex(client, cfg.Collection, cfg.VectorSize, params.Logger)

	params.Lc.Append(fx.Hook{
		OnStart: index.EnsureCollection,
		OnStop: func(_ context.Context) error {
			return client.Close()
		},
	})

	return index, nil
}

func newQdrantIndex(client qdrantClient, collection string, vectorSize uint64, logger *slog.Logger) *qdrantIndex {
	return &qdrantIndex{
		client:     client,
		collection: collection,
		vectorSize: vectorSize,
		logger:     logger,
	}
}

// EnsureCollection creates the cosine collection when a vector size is configured and it is missing
func (i *qdrantIndex) EnsureCollection(ctx context.Context) error {
	if i.vectorSize == 0 {
		return nil
	}

	exists, err := i.client.CollectionExists(ctx, i.collection)
	if err != nil {
		return errors.Wrap(err, "failed to check qdrant collection")
	}
	if exists {
		return nil
	}

	err = i.client.CreateCollection(ctx, &qdrant.CreateCollection{
		CollectionName: i.collection,
		VectorsConfig: qdrant.NewVectorsConfig(&qdrant.VectorParams{
			Size:     i.vectorSize,
			Distance: qdrant.Distance_Cosine,
		}),
	})
	if err != nil {
		return errors.Wrapf(err, "failed to create qdrant collection %s", i.collection)
	}

	i.logger.Info("Created similarity collection",
		slog.String("collection", i.collection),
		slog.Uint64("vector_size", i.vectorSize),
	)

	return nil
}

func (i *qdrantIndex) Upsert(ctx context.Context, id string, vector []float32, payload map[string]any) error {
	_, err := i.client.Upsert(ctx, &qdrant.UpsertPoints{
		CollectionName: i.collection,
		Wait:           qdrant.PtrOf(true),
		Points: []*qdrant.PointStruct{
			{
				Id:      qdrant.NewID(id),
				Vectors: qdrant.NewVectorsDense(vector),
				Payload: qdrant.NewValueMap(payload),
			},
		},
	})
	if err != nil {
		return errors.Wrapf(err, "failed to upsert point %s", id)
	}

	return nil
}

func (i *qdrantIndex) Query(ctx context.Context, vector []float32, limit, offset int, minScore float64) ([]service.SimilarityMatch, error) {
	if limit <= 0 {
		return nil, nil
	}

	points, err := i.client.Query(ctx, &qdrant.QueryPoints{
		CollectionName: i.collection,
		Query:          qdrant.NewQueryDense(vector),
		Limit:          qdrant.PtrOf(uint64(limit)),
		Offset:         qdrant.PtrOf(uint64(max(offset, 0))),
		ScoreThreshold: qdrant.PtrOf(float32(minScore)),
	})
	if err != nil {
		return nil, errors.Wrap(err, "failed to query similarity index")
	}

	matches := make([]service.SimilarityMatch, 0, len(points))
	for _, point := range points {
		score := float64(point.GetScore())
		// The server compares in float32; re-check so the threshold stays inclusive and exact.
		if score < minScore && float32(score) != float32(minScore) {
			continue
		}
		matches = append(matches, service.SimilarityMatch{
			ID:    pointID(point.GetId()),
			Score: score,
		})
	}

	return matches, nil
}

func (i *qdrantIndex) Retrieve(ctx context.Context, ids []string) (map[string][]float32, error) {
	if len(ids) == 0 {
		return map[string][]float32{}, nil
	}

	pointIDs := make([]*qdrant.PointId, 0, len(ids))
	for _, id := range ids {
		pointIDs = append(pointIDs, qdrant.NewID(id))
	}

	points, err := i.client.Get(ctx, &qdrant.GetPoints{
		CollectionName: i.collection,
		Ids:            pointIDs,
		WithVectors:    qdrant.NewWithVectors(true),
		WithPayload:    qdrant.NewWithPayload(false),
	})
	if err != nil {
		return nil, errors.Wrap(err, "failed to retrieve points")
	}

	vectors := make(map[string][]float32, len(points))
	for _, point := range points {
		vector := denseVector(point.GetVectors())
		if len(vector) == 0 {
			continue
		}
		vectors[pointID(point.GetId())] = vector
	}

	return vectors, nil
}

func (i *qdrantIndex) Delete(ctx context.Context, id string) error {
	_, err := i.client.Delete(ctx, &qdrant.DeletePoints{
		CollectionName: i.collection,
		Wait:           qdrant.PtrOf(true),
		Points:         qdrant.NewPointsSelector(qdrant.NewID(id)),
	})
	if err != nil {
		return errors.Wrapf(err, "failed to delete point %s", id)
	}

	return nil
}

// pointID returns the uuid form; fingerprint ids are always uuids
func pointID(id *qdrant.PointId) string {
	return id.GetUuid()
}

func denseVector(vectors *qdrant.VectorsOutput) []float32 {
	vector := vectors.GetVector()
	if vector == nil {
		return nil
	}
	if dense := vector.GetDense(); dense != nil {
		return dense.GetData()
	}

	return vector.GetData() //nolint:staticcheck // servers before 1.13 only fill the legacy field
}
