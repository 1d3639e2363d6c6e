package impl

import (
	"context"
	"fmt"
	"testing"
	"time"

	"provenance/internal/domain/constants"
	"provenance/internal/domain/entity"
	domainerrors "provenance/internal/domain/errors"
	"provenance/internal/domain/repository"
	"provenance/internal/domain/service"
	mockRepo "provenance/internal/mocks/repository"
	mockSvc "provenance/internal/mocks/service"
	"provenance/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// authenticationServiceFixtures holds all test dependencies for authentication service tests.
type authenticationServiceFixtures struct {
	service    usecase.AuthenticationUsecase
	txManager  *mockRepo.MockTransactionManager
	recordRepo *mockRepo.MockRecordRepository
	extractor  *mockSvc.MockFingerprintExtractor
	watermark  *mockSvc.MockWatermarkEmbedder
	index      *mockSvc.MockSimilarityIndex
	storage    *mockSvc.MockContentStorage
	publisher  *mockSvc.MockTaskPublisher
	notifier   *mockSvc.MockNotifier
}

func createTestAuthenticationService(t *testing.T) authenticationServiceFixtures {
	fx := authenticationServiceFixtures{
		txManager:  mockRepo.NewMockTransactionManager(t),
		recordRepo: mockRepo.NewMockRecordRepository(t),
		extractor:  mockSvc.NewMockFingerprintExtractor(t),
		watermark:  mockSvc.NewMockWatermarkEmbedder(t),
		index:      mockSvc.NewMockSimilarityIndex(t),
		storage:    mockSvc.NewMockContentStorage(t),
		publisher:  mockSvc.NewMockTaskPublisher(t),
		notifier:   mockSvc.NewMockNotifier(t),
	}

	srv := NewAuthenticationService(AuthenticationServiceParams{
		TxManager:  fx.txManager,
		RecordRepo: fx.recordRepo,
		Extractor:  fx.extractor,
		Watermark:  fx.watermark,
		Index:      fx.index,
		Storage:    fx.storage,
		Publisher:  fx.publisher,
		Notifier:   fx.notifier,
		Config:     newTestConfig(),
		Logger:     newDiscardLogger(),
	}).(*authenticationService)
	srv.now = func() time.Time { return testNow }
	fx.service = srv

	return fx
}

func TestAuthenticationService_Submit_Success(t *testing.T) {
	fx := createTestAuthenticationService(t)

	ctx := context.Background()
	ownerID := uuid.New()
	image := []byte("original-image-bytes")
	vector := []float32{0.1, 0.2, 0.3}
	var upsertedID string

	fx.extractor.EXPECT().
		Extract(mock.Anything, image, "image/png").
		Return(&service.Fingerprint{Vector: vector, ContentHash: entity.ContentHash(image), PerceptualHash: "ff00ff00ff00ff00"}, nil)
	fx.watermark.EXPECT().
		Embed(image, mock.MatchedBy(func(p *entity.WatermarkPayload) bool {
			return p.Creator == ownerID.String() &&
				p.OriginalHash == entity.ContentHash(image) &&
				p.Version == constants.WatermarkVersion &&
				len(p.Nonce) == 32 &&
				p.Timestamp.Equal(testNow)
		})).
		Return([]byte("watermarked-bytes"), nil)
	fx.index.EXPECT().
		Query(ctx, vector, 1, 0, 0.85).
		Return(nil, nil)
	fx.storage.EXPECT().
		Upload(ctx, constants.StoragePrefixOriginal, image, "image/png").
		Return("originals/aaa.png", nil)
	fx.storage.EXPECT().
		Upload(ctx, constants.StoragePrefixWatermarked, []byte("watermarked-bytes"), "image/png").
		Return("watermarked/bbb.png", nil)
	fx.index.EXPECT().
		Upsert(ctx, mock.AnythingOfType("string"), vector, mock.Anything).
		Run(func(_ context.Context, id string, _ []float32, payload map[string]any) {
			upsertedID = id
			assert.Equal(t, ownerID.String(), payload["owner_id"])
		}).
		Return(nil)
	fx.recordRepo.EXPECT().
		Create(ctx, mock.AnythingOfType("*entity.AuthenticatedRecord")).
		Return(nil)
	fx.publisher.EXPECT().
		PublishLifecycleTask(ctx, mock.MatchedBy(func(task *service.LifecycleTask) bool {
			return task.Action == entity.ActionMint
		})).
		Return(nil)
	fx.notifier.EXPECT().
		Notify(ctx, "session-1", mock.MatchedBy(func(event *entity.LifecycleEvent) bool {
			return event.Type == entity.EventUploaded && event.Data["watermarked_ref"] == "watermarked/bbb.png"
		})).
		Return(nil)

	record, err := fx.service.Submit(ctx, &usecase.SubmitInput{
		OwnerID:     ownerID,
		SessionID:   "session-1",
		Image:       image,
		ContentType: "image/png",
	})
	require.NoError(t, err)
	assert.Equal(t, entity.RecordStatusUploaded, record.Status)
	assert.Equal(t, ownerID, record.OwnerID)
	assert.Equal(t, "originals/aaa.png", record.OriginalRef)
	assert.Equal(t, "watermarked/bbb.png", record.WatermarkedRef)
	assert.Equal(t, entity.ContentHash(image), record.ContentHash)
	assert.Equal(t, "ff00ff00ff00ff00", record.PerceptualHash)
	assert.Equal(t, upsertedID, record.Fingerprint.ID)
	assert.Empty(t, record.Ledger.TokenID)
}

func TestAuthenticationService_Submit_DuplicateStoresNothing(t *testing.T) {
	fx := createTestAuthenticationService(t)

	ctx := context.Background()
	image := []byte("near-duplicate")
	vector := []float32{0.4, 0.5}

	fx.extractor.EXPECT().
		Extract(mock.Anything, image, "image/jpeg").
		Return(&service.Fingerprint{Vector: vector, ContentHash: "hash"}, nil)
	fx.watermark.EXPECT().
		Embed(image, mock.Anything).
		Return([]byte("marked"), nil)
	fx.index.EXPECT().
		Query(ctx, vector, 1, 0, 0.85).
		Return([]service.SimilarityMatch{{ID: "fp-existing", Score: 0.93}}, nil)

	record, err := fx.service.Submit(ctx, &usecase.SubmitInput{
		OwnerID:     uuid.New(),
		Image:       image,
		ContentType: "image/jpeg",
	})
	require.Error(t, err)
	assert.Nil(t, record)
	assert.True(t, errors.Is(err, domainerrors.ErrDuplicateContent))

	var dup *domainerrors.DuplicateContentError
	require.True(t, errors.As(err, &dup))
	assert.Equal(t, "fp-existing", dup.MatchID)
	assert.InDelta(t, 0.93, dup.Score, 1e-9)
}

func TestAuthenticationService_Submit_ProcessingFailure(t *testing.T) {
	fx := createTestAuthenticationService(t)

	ctx := context.Background()
	image := []byte("not-really-an-image")

	fx.extractor.EXPECT().
		Extract(mock.Anything, image, "image/png").
		Return(nil, domainerrors.NewProcessingError("decode", errors.New("unexpected EOF")))
	fx.watermark.EXPECT().
		Embed(image, mock.Anything).
		Return([]byte("marked"), nil).
		Maybe()

	_, err := fx.service.Submit(ctx, &usecase.SubmitInput{OwnerID: uuid.New(), Image: image, ContentType: "image/png"})
	require.Error(t, err)
	assert.True(t, errors.Is(err, domainerrors.ErrProcessingFailed))
}

func TestAuthenticationService_Submit_InvalidInput(t *testing.T) {
	tests := []struct {
		name        string
		image       []byte
		contentType string
		wantErr     error
	}{
		{name: "empty image", image: nil, contentType: "image/png", wantErr: domainerrors.ErrValidationFailed},
		{name: "not an image", image: []byte("%PDF-1.7"), contentType: "application/pdf", wantErr: domainerrors.ErrUnsupportedMediaType},
		{name: "too large", image: make([]byte, 5<<20+1), contentType: "image/png", wantErr: domainerrors.ErrPayloadTooLarge},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			fx := createTestAuthenticationService(t)

			_, err := fx.service.Submit(context.Background(), &usecase.SubmitInput{
				OwnerID:     uuid.New(),
				Image:       tt.image,
				ContentType: tt.contentType,
			})
			require.Error(t, err)
			assert.True(t, errors.Is(err, tt.wantErr))
		})
	}
}

func TestAuthenticationService_Submit_StorageFailure(t *testing.T) {
	fx := createTestAuthenticationService(t)

	ctx := context.Background()
	image := []byte("image")
	vector := []float32{1}

	fx.extractor.EXPECT().Extract(mock.Anything, image, "image/png").Return(&service.Fingerprint{Vector: vector}, nil)
	fx.watermark.EXPECT().Embed(image, mock.Anything).Return([]byte("marked"), nil)
	fx.index.EXPECT().Query(ctx, vector, 1, 0, 0.85).Return(nil, nil)
	fx.storage.EXPECT().
		Upload(ctx, constants.StoragePrefixOriginal, image, "image/png").
		Return("", errors.New("bucket unavailable"))

	_, err := fx.service.Submit(ctx, &usecase.SubmitInput{OwnerID: uuid.New(), Image: image, ContentType: "image/png"})
	require.Error(t, err)
	assert.True(t, errors.Is(err, domainerrors.ErrExternalCallFailed))
}

func TestAuthenticationService_Submit_CreateConflictRemovesVector(t *testing.T) {
	fx := createTestAuthenticationService(t)

	ctx := context.Background()
	image := []byte("image")
	vector := []float32{1}
	var upsertedID string

	fx.extractor.EXPECT().Extract(mock.Anything, image, "image/png").Return(&service.Fingerprint{Vector: vector}, nil)
	fx.watermark.EXPECT().Embed(image, mock.Anything).Return([]byte("marked"), nil)
	fx.index.EXPECT().Query(ctx, vector, 1, 0, 0.85).Return(nil, nil)
	fx.storage.EXPECT().Upload(ctx, constants.StoragePrefixOriginal, image, "image/png").Return("originals/a.png", nil)
	fx.storage.EXPECT().Upload(ctx, constants.StoragePrefixWatermarked, []byte("marked"), "image/png").Return("watermarked/b.png", nil)
	fx.index.EXPECT().
		Upsert(ctx, mock.AnythingOfType("string"), vector, mock.Anything).
		Run(func(_ context.Context, id string, _ []float32, _ map[string]any) { upsertedID = id }).
		Return(nil)
	fx.recordRepo.EXPECT().
		Create(ctx, mock.AnythingOfType("*entity.AuthenticatedRecord")).
		Return(repository.ErrRecordAlreadyExists)
	fx.index.EXPECT().
		Delete(ctx, mock.AnythingOfType("string")).
		Run(func(_ context.Context, id string) { assert.Equal(t, upsertedID, id) }).
		Return(nil)

	_, err := fx.service.Submit(ctx, &usecase.SubmitInput{OwnerID: uuid.New(), Image: image, ContentType: "image/png"})
	require.Error(t, err)
	assert.True(t, errors.Is(err, domainerrors.ErrDuplicateContent))
}

func TestAuthenticationService_Submit_EnqueueFailureStillSucceeds(t *testing.T) {
	fx := createTestAuthenticationService(t)

	ctx := context.Background()
	image := []byte("image")
	vector := []float32{1}

	fx.extractor.EXPECT().Extract(mock.Anything, image, "image/png").Return(&service.Fingerprint{Vector: vector}, nil)
	fx.watermark.EXPECT().Embed(image, mock.Anything).Return([]byte("marked"), nil)
	fx.index.EXPECT().Query(ctx, vector, 1, 0, 0.85).Return(nil, nil)
	fx.storage.EXPECT().Upload(ctx, constants.StoragePrefixOriginal, image, "image/png").Return("originals/a.png", nil)
	fx.storage.EXPECT().Upload(ctx, constants.StoragePrefixWatermarked, []byte("marked"), "image/png").Return("watermarked/b.png", nil)
	fx.index.EXPECT().Upsert(ctx, mock.AnythingOfType("string"), vector, mock.Anything).Return(nil)
	fx.recordRepo.EXPECT().Create(ctx, mock.AnythingOfType("*entity.AuthenticatedRecord")).Return(nil)
	fx.publisher.EXPECT().
		PublishLifecycleTask(ctx, mock.AnythingOfType("*service.LifecycleTask")).
		Return(errors.New("topic not found"))

	// no session id, so no event is pushed
	record, err := fx.service.Submit(ctx, &usecase.SubmitInput{OwnerID: uuid.New(), Image: image, ContentType: "image/png"})
	require.NoError(t, err)
	assert.Equal(t, entity.RecordStatusUploaded, record.Status)
}

func TestAuthenticationService_Verify_RecordsMatchesAboveThreshold(t *testing.T) {
	fx := createTestAuthenticationService(t)

	ctx := context.Background()
	query := []byte("query")
	vector := []float32{0.3, 0.3}
	verifierID := uuid.New()

	recordA := &entity.AuthenticatedRecord{ID: uuid.New(), Fingerprint: entity.Fingerprint{ID: "fp-a"}}
	recordB := &entity.AuthenticatedRecord{ID: uuid.New(), Fingerprint: entity.Fingerprint{ID: "fp-b"}}
	corpus := []service.SimilarityMatch{
		{ID: "fp-a", Score: 0.9},
		{ID: "fp-b", Score: 0.87},
		{ID: "fp-c", Score: 0.5},
	}

	fx.extractor.EXPECT().Extract(mock.Anything, query, "image/png").Return(&service.Fingerprint{Vector: vector}, nil)
	fx.watermark.EXPECT().Extract(query).Return(nil, service.ErrWatermarkNotFound)
	fx.index.EXPECT().
		Query(ctx, vector, 10, 0, 0.85).
		RunAndReturn(func(_ context.Context, _ []float32, limit, _ int, minScore float64) ([]service.SimilarityMatch, error) {
			var hits []service.SimilarityMatch
			for _, m := range corpus {
				if m.Score >= minScore && len(hits) < limit {
					hits = append(hits, m)
				}
			}

			return hits, nil
		})

	factory := mockRepo.NewMockRepositoryFactory(t)
	txRecordRepo := mockRepo.NewMockRecordRepository(t)
	verificationRepo := mockRepo.NewMockVerificationRepository(t)
	factory.EXPECT().NewRecordRepository().Return(txRecordRepo)
	factory.EXPECT().NewVerificationRepository().Return(verificationRepo)
	expectTransaction(t, fx.txManager, factory)

	txRecordRepo.EXPECT().
		FindByFingerprintIDs(ctx, []string{"fp-a", "fp-b"}).
		Return([]*entity.AuthenticatedRecord{recordB, recordA}, nil)

	var stored []*entity.Verification
	verificationRepo.EXPECT().
		Create(ctx, mock.AnythingOfType("*entity.Verification")).
		Run(func(_ context.Context, v *entity.Verification) { stored = append(stored, v) }).
		Return(nil).
		Times(2)

	result, err := fx.service.Verify(ctx, &usecase.VerifyInput{VerifierID: &verifierID, Image: query, ContentType: "image/png"})
	require.NoError(t, err)
	assert.True(t, result.Found)
	assert.Nil(t, result.Watermark)
	require.Len(t, result.Matches, 2)
	assert.Equal(t, recordA.ID, result.Matches[0].Record.ID)
	assert.InDelta(t, 0.9, result.Matches[0].Score, 1e-9)
	assert.Equal(t, recordB.ID, result.Matches[1].Record.ID)

	require.Len(t, stored, 2)
	assert.Equal(t, recordA.ID, stored[0].ImageID)
	assert.Equal(t, recordB.ID, stored[1].ImageID)
	assert.Equal(t, &verifierID, stored[0].VerifierID)
	assert.Equal(t, testNow, stored[0].CreatedAt)
}

func TestAuthenticationService_Verify_RecordsEveryMatchBeyondPageSize(t *testing.T) {
	fx := createTestAuthenticationService(t)

	ctx := context.Background()
	query := []byte("query")
	vector := []float32{0.4, 0.4}

	var (
		corpus  []service.SimilarityMatch
		records []*entity.AuthenticatedRecord
		ids     []string
	)
	for i := range 12 {
		id := fmt.Sprintf("fp-%02d", i)
		corpus = append(corpus, service.SimilarityMatch{ID: id, Score: 0.95})
		records = append(records, &entity.AuthenticatedRecord{ID: uuid.New(), Fingerprint: entity.Fingerprint{ID: id}})
		ids = append(ids, id)
	}

	fx.extractor.EXPECT().Extract(mock.Anything, query, "image/png").Return(&service.Fingerprint{Vector: vector}, nil)
	fx.watermark.EXPECT().Extract(query).Return(nil, service.ErrWatermarkNotFound)
	fx.index.EXPECT().Query(ctx, vector, 10, 0, 0.85).Return(corpus[:10], nil).Once()
	fx.index.EXPECT().Query(ctx, vector, 10, 10, 0.85).Return(corpus[10:], nil).Once()

	factory := mockRepo.NewMockRepositoryFactory(t)
	txRecordRepo := mockRepo.NewMockRecordRepository(t)
	verificationRepo := mockRepo.NewMockVerificationRepository(t)
	factory.EXPECT().NewRecordRepository().Return(txRecordRepo)
	factory.EXPECT().NewVerificationRepository().Return(verificationRepo)
	expectTransaction(t, fx.txManager, factory)

	txRecordRepo.EXPECT().FindByFingerprintIDs(ctx, ids).Return(records, nil)
	verificationRepo.EXPECT().
		Create(ctx, mock.AnythingOfType("*entity.Verification")).
		Return(nil).
		Times(12)

	result, err := fx.service.Verify(ctx, &usecase.VerifyInput{Image: query, ContentType: "image/png"})
	require.NoError(t, err)
	assert.True(t, result.Found)
	require.Len(t, result.Matches, 12)
	assert.Equal(t, records[11].ID, result.Matches[11].Record.ID)
}

func TestAuthenticationService_Verify_NoMatch(t *testing.T) {
	fx := createTestAuthenticationService(t)

	ctx := context.Background()
	query := []byte("query")
	vector := []float32{0.9}
	payload := &entity.WatermarkPayload{Creator: uuid.NewString(), Version: constants.WatermarkVersion}

	fx.extractor.EXPECT().Extract(mock.Anything, query, "image/png").Return(&service.Fingerprint{Vector: vector}, nil)
	fx.watermark.EXPECT().Extract(query).Return(payload, nil)
	fx.index.EXPECT().Query(ctx, vector, 10, 0, 0.85).Return([]service.SimilarityMatch{}, nil)

	result, err := fx.service.Verify(ctx, &usecase.VerifyInput{Image: query, ContentType: "image/png"})
	require.NoError(t, err)
	assert.False(t, result.Found)
	assert.NotNil(t, result.Matches)
	assert.Empty(t, result.Matches)
	assert.Equal(t, payload, result.Watermark)
}

func TestAuthenticationService_Verify_SkipsUnknownFingerprint(t *testing.T) {
	fx := createTestAuthenticationService(t)

	ctx := context.Background()
	query := []byte("query")
	vector := []float32{0.9}

	fx.extractor.EXPECT().Extract(mock.Anything, query, "image/png").Return(&service.Fingerprint{Vector: vector}, nil)
	fx.watermark.EXPECT().Extract(query).Return(nil, errors.New("not a png"))
	fx.index.EXPECT().Query(ctx, vector, 10, 0, 0.85).Return([]service.SimilarityMatch{{ID: "fp-orphan", Score: 0.99}}, nil)

	factory := mockRepo.NewMockRepositoryFactory(t)
	txRecordRepo := mockRepo.NewMockRecordRepository(t)
	factory.EXPECT().NewRecordRepository().Return(txRecordRepo)
	factory.EXPECT().NewVerificationRepository().Return(mockRepo.NewMockVerificationRepository(t))
	expectTransaction(t, fx.txManager, factory)

	txRecordRepo.EXPECT().
		FindByFingerprintIDs(ctx, []string{"fp-orphan"}).
		Return([]*entity.AuthenticatedRecord{}, nil)

	result, err := fx.service.Verify(ctx, &usecase.VerifyInput{Image: query, ContentType: "image/png"})
	require.NoError(t, err)
	assert.False(t, result.Found)
	assert.Empty(t, result.Matches)
}

func TestAuthenticationService_Verify_IndexUnavailable(t *testing.T) {
	fx := createTestAuthenticationService(t)

	ctx := context.Background()
	query := []byte("query")
	vector := []float32{0.9}

	fx.extractor.EXPECT().Extract(mock.Anything, query, "image/png").Return(&service.Fingerprint{Vector: vector}, nil)
	fx.watermark.EXPECT().Extract(query).Return(nil, service.ErrWatermarkNotFound)
	fx.index.EXPECT().Query(ctx, vector, 10, 0, 0.85).Return(nil, errors.New("connection refused"))

	_, err := fx.service.Verify(ctx, &usecase.VerifyInput{Image: query, ContentType: "image/png"})
	require.Error(t, err)
	assert.True(t, errors.Is(err, domainerrors.ErrExternalCallFailed))
}
