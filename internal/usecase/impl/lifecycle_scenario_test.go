package impl

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"math"
	"slices"
	"sort"
	"sync"
	"testing"
	"time"

	"provenance/internal/domain/entity"
	domainerrors "provenance/internal/domain/errors"
	"provenance/internal/domain/repository"
	"provenance/internal/domain/service"
	"provenance/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// memoryStore backs the record, user and verification repositories with the same conditional
// update rules as the database.
type memoryStore struct {
	mu            sync.Mutex
	records       map[uuid.UUID]*entity.AuthenticatedRecord
	users         map[uuid.UUID]*entity.User
	verifications []*entity.Verification
}

func newMemoryStore() *memoryStore {
	return &memoryStore{
		records: make(map[uuid.UUID]*entity.AuthenticatedRecord),
		users:   make(map[uuid.UUID]*entity.User),
	}
}

func (s *memoryStore) get(id uuid.UUID) *entity.AuthenticatedRecord {
	s.mu.Lock()
	defer s.mu.Unlock()

	clone := *s.records[id]

	return &clone
}

type memoryRecordRepo struct{ s *memoryStore }

func (r *memoryRecordRepo) Create(_ context.Context, record *entity.AuthenticatedRecord) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	for _, existing := range r.s.records {
		if existing.OriginalRef == record.OriginalRef || existing.Fingerprint.ID == record.Fingerprint.ID {
			return repository.ErrRecordAlreadyExists
		}
	}
	clone := *record
	r.s.records[record.ID] = &clone

	return nil
}

func (r *memoryRecordRepo) FindByID(_ context.Context, id uuid.UUID, withVerifications bool) (*entity.AuthenticatedRecord, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	record, ok := r.s.records[id]
	if !ok {
		return nil, repository.ErrRecordNotFound
	}
	clone := *record
	if withVerifications {
		for _, v := range r.s.verifications {
			if v.ImageID == id {
				clone.Verifications = append(clone.Verifications, v)
			}
		}
	}

	return &clone, nil
}

func (r *memoryRecordRepo) FindByFingerprintIDs(_ context.Context, ids []string) ([]*entity.AuthenticatedRecord, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	var out []*entity.AuthenticatedRecord
	for _, record := range r.s.records {
		if slices.Contains(ids, record.Fingerprint.ID) {
			clone := *record
			out = append(out, &clone)
		}
	}

	return out, nil
}

func (r *memoryRecordRepo) List(_ context.Context, filter repository.RecordFilter) ([]*entity.AuthenticatedRecord, int64, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	var out []*entity.AuthenticatedRecord
	for _, record := range r.s.records {
		if filter.OwnerID != nil && record.OwnerID != *filter.OwnerID {
			continue
		}
		if filter.Status != "" && record.Status != filter.Status {
			continue
		}
		clone := *record
		out = append(out, &clone)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].CreatedAt.After(out[j].CreatedAt) })

	return out, int64(len(out)), nil
}

func (r *memoryRecordRepo) Claim(_ context.Context, id uuid.UUID, action entity.LifecycleAction, lease time.Duration) (*entity.AuthenticatedRecord, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	record, ok := r.s.records[id]
	if !ok || !record.CanStart(action) {
		return nil, repository.ErrClaimRejected
	}
	now := time.Now().UTC()
	if record.PendingAction != "" && record.PendingSince != nil && record.PendingSince.After(now.Add(-lease)) {
		return nil, repository.ErrClaimRejected
	}

	record.PendingAction = action
	record.PendingSince = &now
	clone := *record

	return &clone, nil
}

func (r *memoryRecordRepo) complete(id uuid.UUID, action entity.LifecycleAction, apply func(*entity.AuthenticatedRecord)) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	record, ok := r.s.records[id]
	if !ok || record.PendingAction != action {
		return repository.ErrClaimRejected
	}
	record.PendingAction = ""
	record.PendingSince = nil
	record.FailedAction = ""
	record.LastError = ""
	apply(record)

	return nil
}

func (r *memoryRecordRepo) CompleteMint(_ context.Context, id uuid.UUID, result repository.MintResult) error {
	return r.complete(id, entity.ActionMint, func(record *entity.AuthenticatedRecord) {
		record.Status = entity.RecordStatusMinted
		record.Ledger.TxHash = result.TxHash
		record.Ledger.TokenID = result.TokenID
		record.MetadataRef = result.MetadataRef
	})
}

func (r *memoryRecordRepo) CompleteSoftList(_ context.Context, id uuid.UUID, result repository.ListingResult) error {
	return r.complete(id, entity.ActionSoftList, func(record *entity.AuthenticatedRecord) {
		record.Status = entity.RecordStatusSoftListed
		record.Ledger.ListingID = result.ListingID
		record.Ledger.ListingTxHash = result.TxHash
	})
}

func (r *memoryRecordRepo) MarkFailed(_ context.Context, id uuid.UUID, action entity.LifecycleAction, reason string) error {
	return r.complete(id, action, func(record *entity.AuthenticatedRecord) {
		record.Status = entity.RecordStatusError
		record.FailedAction = action
		record.LastError = reason
	})
}

func (r *memoryRecordRepo) Confirm(_ context.Context, id, ownerID uuid.UUID) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	record, ok := r.s.records[id]
	if !ok || record.OwnerID != ownerID || record.Status != entity.RecordStatusSoftListed {
		return repository.ErrClaimRejected
	}
	record.Status = entity.RecordStatusListed

	return nil
}

func (r *memoryRecordRepo) FindMissingFingerprintBackup(_ context.Context, limit int) ([]*entity.AuthenticatedRecord, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	var out []*entity.AuthenticatedRecord
	for _, record := range r.s.records {
		if record.NeedsFingerprintBackup() && len(out) < limit {
			clone := *record
			out = append(out, &clone)
		}
	}

	return out, nil
}

func (r *memoryRecordRepo) SetFingerprintBlobRef(_ context.Context, id uuid.UUID, blobRef string) (bool, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	record, ok := r.s.records[id]
	if !ok || record.Fingerprint.BlobRef != "" {
		return false, nil
	}
	record.Fingerprint.BlobRef = blobRef

	return true, nil
}

type memoryVerificationRepo struct{ s *memoryStore }

func (r *memoryVerificationRepo) Create(_ context.Context, v *entity.Verification) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	r.s.verifications = append(r.s.verifications, v)

	return nil
}

func (r *memoryVerificationRepo) FindByImageID(_ context.Context, imageID uuid.UUID) ([]*entity.Verification, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	var out []*entity.Verification
	for _, v := range r.s.verifications {
		if v.ImageID == imageID {
			out = append(out, v)
		}
	}

	return out, nil
}

type memoryUserRepo struct{ s *memoryStore }

func (r *memoryUserRepo) FindByID(_ context.Context, id uuid.UUID) (*entity.User, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	user, ok := r.s.users[id]
	if !ok {
		return nil, repository.ErrUserNotFound
	}

	return user, nil
}

func (r *memoryUserRepo) FindByWalletAddress(_ context.Context, walletAddress string) (*entity.User, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	for _, user := range r.s.users {
		if user.WalletAddress == walletAddress {
			return user, nil
		}
	}

	return nil, repository.ErrUserNotFound
}

func (r *memoryUserRepo) Create(_ context.Context, user *entity.User) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	r.s.users[user.ID] = user

	return nil
}

func (r *memoryUserRepo) Update(ctx context.Context, user *entity.User) error {
	return r.Create(ctx, user)
}

type memoryFactory struct{ s *memoryStore }

func (f *memoryFactory) NewRecordRepository() repository.RecordRepository {
	return &memoryRecordRepo{f.s}
}
func (f *memoryFactory) NewVerificationRepository() repository.VerificationRepository {
	return &memoryVerificationRepo{f.s}
}
func (f *memoryFactory) NewUserRepository() repository.UserRepository { return &memoryUserRepo{f.s} }
func (f *memoryFactory) NewNonceRepository() repository.NonceRepository {
	return nil
}
func (f *memoryFactory) NewSessionRepository() repository.SessionRepository {
	return nil
}

type memoryTxManager struct{ factory repository.RepositoryFactory }

func (m *memoryTxManager) Execute(_ context.Context, fn func(repository.RepositoryFactory) error) error {
	return fn(m.factory)
}

// cosineIndex scores stored vectors by cosine similarity.
type cosineIndex struct {
	mu      sync.Mutex
	vectors map[string][]float32
}

func (idx *cosineIndex) Upsert(_ context.Context, id string, vector []float32, _ map[string]any) error {
	idx.mu.Lock()
	defer idx.mu.Unlock()

	idx.vectors[id] = vector

	return nil
}

func (idx *cosineIndex) Query(_ context.Context, vector []float32, limit, offset int, minScore float64) ([]service.SimilarityMatch, error) {
	idx.mu.Lock()
	defer idx.mu.Unlock()

	var out []service.SimilarityMatch
	for id, stored := range idx.vectors {
		if score := cosine(vector, stored); score >= minScore {
			out = append(out, service.SimilarityMatch{ID: id, Score: score})
		}
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].Score != out[j].Score {
			return out[i].Score > out[j].Score
		}

		return out[i].ID < out[j].ID
	})
	if offset >= len(out) {
		return nil, nil
	}
	out = out[offset:]
	if len(out) > limit {
		out = out[:limit]
	}

	return out, nil
}

func (idx *cosineIndex) Retrieve(_ context.Context, ids []string) (map[string][]float32, error) {
	idx.mu.Lock()
	defer idx.mu.Unlock()

	out := make(map[string][]float32)
	for _, id := range ids {
		if v, ok := idx.vectors[id]; ok {
			out[id] = v
		}
	}

	return out, nil
}

func (idx *cosineIndex) Delete(_ context.Context, id string) error {
	idx.mu.Lock()
	defer idx.mu.Unlock()

	delete(idx.vectors, id)

	return nil
}

func cosine(a, b []float32) float64 {
	var dot, na, nb float64
	for i := range a {
		dot += float64(a[i]) * float64(b[i])
		na += float64(a[i]) * float64(a[i])
		nb += float64(b[i]) * float64(b[i])
	}

	return dot / (math.Sqrt(na) * math.Sqrt(nb))
}

// contentAddressedStorage keys blobs by their digest.
type contentAddressedStorage struct {
	mu    sync.Mutex
	blobs map[string][]byte
}

func (s *contentAddressedStorage) Upload(_ context.Context, prefix string, data []byte, _ string) (string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	sum := sha256.Sum256(data)
	ref := prefix + "/" + hex.EncodeToString(sum[:])
	s.blobs[ref] = data

	return ref, nil
}

func (s *contentAddressedStorage) Download(_ context.Context, ref string) ([]byte, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	data, ok := s.blobs[ref]
	if !ok {
		return nil, errors.Errorf("blob %s not found", ref)
	}

	return data, nil
}

func (s *contentAddressedStorage) URL(ref string) string { return "https://cdn.example.com/" + ref }

type flakyLedger struct {
	mintFailures int
	mints        int
	listings     int
}

func (l *flakyLedger) Mint(_ context.Context, req *service.MintRequest) (*service.LedgerReceipt, error) {
	if l.mintFailures > 0 {
		l.mintFailures--
		return nil, errors.New("transaction simulation failed")
	}
	l.mints++

	return &service.LedgerReceipt{Digest: "sig-mint-" + req.RecordID, ID: "token-" + req.RecordID}, nil
}

func (l *flakyLedger) CreateListing(_ context.Context, req *service.ListingRequest) (*service.LedgerReceipt, error) {
	l.listings++

	return &service.LedgerReceipt{Digest: "sig-list-" + req.TokenID, ID: "listing-" + req.TokenID}, nil
}

// taskQueue records published tasks instead of delivering them.
type taskQueue struct {
	mu    sync.Mutex
	tasks []*service.LifecycleTask
}

func (q *taskQueue) PublishLifecycleTask(_ context.Context, task *service.LifecycleTask) error {
	q.mu.Lock()
	defer q.mu.Unlock()

	q.tasks = append(q.tasks, task)

	return nil
}

func (q *taskQueue) Close() error { return nil }

func (q *taskQueue) pop(t *testing.T) *service.LifecycleTask {
	t.Helper()
	q.mu.Lock()
	defer q.mu.Unlock()

	require.NotEmpty(t, q.tasks, "expected a queued task")
	task := q.tasks[0]
	q.tasks = q.tasks[1:]

	return task
}

type eventLog struct {
	mu     sync.Mutex
	events []entity.EventType
}

func (l *eventLog) Notify(_ context.Context, _ string, event *entity.LifecycleEvent) error {
	l.mu.Lock()
	defer l.mu.Unlock()

	l.events = append(l.events, event.Type)

	return nil
}

// vectorExtractor maps image bytes to fixed vectors.
type vectorExtractor map[string][]float32

func (e vectorExtractor) Extract(_ context.Context, image []byte, _ string) (*service.Fingerprint, error) {
	vector, ok := e[string(image)]
	if !ok {
		return nil, domainerrors.NewProcessingError("decode", errors.New("unknown image"))
	}

	return &service.Fingerprint{Vector: vector, ContentHash: entity.ContentHash(image), PerceptualHash: "0000000000000000"}, nil
}

type prefixWatermark struct{}

func (prefixWatermark) Embed(image []byte, _ *entity.WatermarkPayload) ([]byte, error) {
	return append([]byte("wm:"), image...), nil
}

func (prefixWatermark) Extract([]byte) (*entity.WatermarkPayload, error) {
	return nil, service.ErrWatermarkNotFound
}

type lifecycleScenario struct {
	store          *memoryStore
	queue          *taskQueue
	events         *eventLog
	ledger         *flakyLedger
	authentication usecase.AuthenticationUsecase
	lifecycle      usecase.LifecycleUsecase
	owner          *entity.User
}

func newLifecycleScenario(extractor vectorExtractor, ledger *flakyLedger) *lifecycleScenario {
	store := newMemoryStore()
	owner := &entity.User{ID: uuid.New(), WalletAddress: "owner-wallet"}
	store.users[owner.ID] = owner

	factory := &memoryFactory{store}
	index := &cosineIndex{vectors: make(map[string][]float32)}
	storage := &contentAddressedStorage{blobs: make(map[string][]byte)}
	queue := &taskQueue{}
	events := &eventLog{}
	cfg := newTestConfig()
	logger := newDiscardLogger()

	return &lifecycleScenario{
		store:  store,
		queue:  queue,
		events: events,
		ledger: ledger,
		owner:  owner,
		authentication: NewAuthenticationService(AuthenticationServiceParams{
			TxManager:  &memoryTxManager{factory},
			RecordRepo: factory.NewRecordRepository(),
			Extractor:  extractor,
			Watermark:  prefixWatermark{},
			Index:      index,
			Storage:    storage,
			Publisher:  queue,
			Notifier:   events,
			Config:     cfg,
			Logger:     logger,
		}),
		lifecycle: NewLifecycleService(LifecycleServiceParams{
			RecordRepo: factory.NewRecordRepository(),
			UserRepo:   factory.NewUserRepository(),
			Index:      index,
			Storage:    storage,
			Ledger:     ledger,
			Publisher:  queue,
			Notifier:   events,
			Config:     cfg,
			Logger:     logger,
		}),
	}
}

func (sc *lifecycleScenario) submit(image string) (*entity.AuthenticatedRecord, error) {
	return sc.authentication.Submit(context.Background(), &usecase.SubmitInput{
		OwnerID:     sc.owner.ID,
		SessionID:   "session-1",
		Image:       []byte(image),
		ContentType: "image/png",
	})
}

func TestLifecycleScenario_UploadThroughListed(t *testing.T) {
	sc := newLifecycleScenario(vectorExtractor{
		"sunset":         {1, 0, 0},
		"sunset-resized": {0.99, 0.1, 0},
		"harbour":        {0, 1, 0},
	}, &flakyLedger{})
	ctx := context.Background()
	identity := &entity.Identity{UserID: sc.owner.ID}

	record, err := sc.submit("sunset")
	require.NoError(t, err)

	_, err = sc.submit("sunset-resized")
	assert.True(t, errors.Is(err, domainerrors.ErrDuplicateContent))

	other, err := sc.submit("harbour")
	require.NoError(t, err)
	assert.NotEqual(t, record.ID, other.ID)

	mintTask := sc.queue.pop(t)
	assert.Equal(t, entity.ActionMint, mintTask.Action)
	assert.Equal(t, record.ID.String(), mintTask.RecordID)
	sc.queue.pop(t) // mint of the second image

	require.NoError(t, sc.lifecycle.ExecuteTask(ctx, mintTask))
	assert.Equal(t, entity.RecordStatusMinted, sc.store.get(record.ID).Status)

	// redelivery of a finished step is rejected without touching the ledger
	err = sc.lifecycle.ExecuteTask(ctx, mintTask)
	assert.True(t, errors.Is(err, domainerrors.ErrPreconditionFailed))
	assert.Equal(t, 1, sc.ledger.mints)

	softListTask := sc.queue.pop(t)
	assert.Equal(t, entity.ActionSoftList, softListTask.Action)
	require.NoError(t, sc.lifecycle.ExecuteTask(ctx, softListTask))

	listed, err := sc.lifecycle.Confirm(ctx, identity, record.ID)
	require.NoError(t, err)
	assert.Equal(t, entity.RecordStatusListed, listed.Status)

	final := sc.store.get(record.ID)
	assert.Equal(t, "token-"+record.ID.String(), final.Ledger.TokenID)
	assert.Equal(t, "listing-token-"+record.ID.String(), final.Ledger.ListingID)
	assert.NotEmpty(t, final.MetadataRef)

	assert.Equal(t, []entity.EventType{
		entity.EventUploaded,
		entity.EventUploaded,
		entity.EventMinted,
		entity.EventSoftListed,
		entity.EventListed,
	}, sc.events.events)
}

func TestLifecycleScenario_FailedMintIsRedriven(t *testing.T) {
	sc := newLifecycleScenario(vectorExtractor{"sunset": {1, 0, 0}}, &flakyLedger{mintFailures: 1})
	ctx := context.Background()
	identity := &entity.Identity{UserID: sc.owner.ID}

	record, err := sc.submit("sunset")
	require.NoError(t, err)

	err = sc.lifecycle.ExecuteTask(ctx, sc.queue.pop(t))
	require.Error(t, err)
	assert.True(t, errors.Is(err, domainerrors.ErrExternalCallFailed))

	failed := sc.store.get(record.ID)
	assert.Equal(t, entity.RecordStatusError, failed.Status)
	assert.Equal(t, entity.ActionMint, failed.FailedAction)
	assert.NotEmpty(t, failed.LastError)
	assert.Empty(t, failed.PendingAction)

	// soft-list is out of order until the token exists
	err = sc.lifecycle.RequestSoftList(ctx, identity, record.ID)
	assert.True(t, errors.Is(err, domainerrors.ErrPreconditionFailed))

	action, err := sc.lifecycle.Redrive(ctx, identity, record.ID)
	require.NoError(t, err)
	assert.Equal(t, entity.ActionMint, action)

	require.NoError(t, sc.lifecycle.ExecuteTask(ctx, sc.queue.pop(t)))

	minted := sc.store.get(record.ID)
	assert.Equal(t, entity.RecordStatusMinted, minted.Status)
	assert.Empty(t, minted.FailedAction)
	assert.Empty(t, minted.LastError)
	assert.Contains(t, sc.events.events, entity.EventError)
}

func TestLifecycleScenario_VerifyRecordsHistory(t *testing.T) {
	sc := newLifecycleScenario(vectorExtractor{
		"sunset":      {1, 0, 0},
		"sunset-crop": {0.95, 0.2, 0},
		"unrelated":   {0, 0, 1},
	}, &flakyLedger{})
	ctx := context.Background()

	record, err := sc.submit("sunset")
	require.NoError(t, err)

	result, err := sc.authentication.Verify(ctx, &usecase.VerifyInput{Image: []byte("sunset-crop"), ContentType: "image/png"})
	require.NoError(t, err)
	require.True(t, result.Found)
	assert.Equal(t, record.ID, result.Matches[0].Record.ID)

	result, err = sc.authentication.Verify(ctx, &usecase.VerifyInput{Image: []byte("unrelated"), ContentType: "image/png"})
	require.NoError(t, err)
	assert.False(t, result.Found)

	withHistory, err := (&memoryRecordRepo{sc.store}).FindByID(ctx, record.ID, true)
	require.NoError(t, err)
	assert.Len(t, withHistory.Verifications, 1)
}
