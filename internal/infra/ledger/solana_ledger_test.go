package ledger

import (
	"context"
	"log/slog"
	"testing"
	"time"

	"provenance/internal/domain/service"

	bin "github.com/gagliardetto/binary"
	"github.com/gagliardetto/solana-go"
	"github.com/gagliardetto/solana-go/rpc"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeRPC struct {
	sent      []*solana.Transaction
	statuses  []*rpc.SignatureStatusesResult
	statusIdx int
	polls     int
	onPoll    func()
	sendErr   error
}

func (f *fakeRPC) GetLatestBlockhash(_ context.Context, _ rpc.CommitmentType) (*rpc.GetLatestBlockhashResult, error) {
	return &rpc.GetLatestBlockhashResult{
		Value: &rpc.LatestBlockhashResult{Blockhash: solana.Hash{1, 2, 3}},
	}, nil
}

func (f *fakeRPC) SendTransaction(_ context.Context, tx *solana.Transaction) (solana.Signature, error) {
	if f.sendErr != nil {
		return solana.Signature{}, f.sendErr
	}
	f.sent = append(f.sent, tx)

	return tx.Signatures[0], nil
}

func (f *fakeRPC) GetSignatureStatuses(_ context.Context, _ bool, _ ...solana.Signature) (*rpc.GetSignatureStatusesResult, error) {
	f.polls++
	if f.onPoll != nil {
		f.onPoll()
	}
	if f.statusIdx >= len(f.statuses) {
		return &rpc.GetSignatureStatusesResult{Value: []*rpc.SignatureStatusesResult{nil}}, nil
	}
	status := f.statuses[f.statusIdx]
	f.statusIdx++

	return &rpc.GetSignatureStatusesResult{Value: []*rpc.SignatureStatusesResult{status}}, nil
}

func newTestLedger(t *testing.T, client rpcClient, attempts int) *solanaLedger {
	t.Helper()

	payer, err := solana.NewRandomPrivateKey()
	require.NoError(t, err)
	program, err := solana.NewRandomPrivateKey()
	require.NoError(t, err)

	l := newSolanaLedger(client, program.PublicKey(), payer, solana.PublicKey{}, attempts, time.Millisecond, slog.Default())

	return l
}

func randomWallet(t *testing.T) string {
	t.Helper()

	key, err := solana.NewRandomPrivateKey()
	require.NoError(t, err)

	return key.PublicKey().String()
}

func TestSolanaLedger_Mint(t *testing.T) {
	client := &fakeRPC{}
	l := newTestLedger(t, client, 0)

	receipt, err := l.Mint(context.Background(), &service.MintRequest{
		RecordID:     "6c1f3a5e-1111-4b2c-8d3e-9f0a1b2c3d4e",
		Owner:        randomWallet(t),
		ImageRef:     "originals/abc.png",
		WatermarkRef: "watermarked/def.png",
		MetadataRef:  "metadata/ghi.json",
		ContentHash:  "abc",
	})
	require.NoError(t, err)
	require.Len(t, client.sent, 1)

	tx := client.sent[0]
	require.NoError(t, tx.VerifySignatures())
	assert.Equal(t, tx.Signatures[0].String(), receipt.Digest)

	tokenID, err := solana.PublicKeyFromBase58(receipt.ID)
	require.NoError(t, err)
	assert.True(t, tx.Message.AccountKeys.Contains(tokenID))
	assert.Len(t, tx.Signatures, 2, "payer and token account both sign")

	var decoded mintInstruction
	require.NoError(t, bin.UnmarshalBorsh(&decoded, tx.Message.Instructions[0].Data))
	assert.Equal(t, instructionMint, decoded.Discriminator)
	assert.Equal(t, "metadata/ghi.json", decoded.MetadataRef)
	assert.Equal(t, "6c1f3a5e-1111-4b2c-8d3e-9f0a1b2c3d4e", decoded.RecordID)
}

func TestSolanaLedger_Mint_InvalidOwner(t *testing.T) {
	client := &fakeRPC{}
	l := newTestLedger(t, client, 0)

	_, err := l.Mint(context.Background(), &service.MintRequest{Owner: "not-a-wallet"})
	require.Error(t, err)
	assert.Empty(t, client.sent)
}

func TestSolanaLedger_Mint_SendFailure(t *testing.T) {
	client := &fakeRPC{sendErr: errors.New("node is behind")}
	l := newTestLedger(t, client, 0)

	_, err := l.Mint(context.Background(), &service.MintRequest{Owner: randomWallet(t)})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "node is behind")
}

func TestSolanaLedger_CreateListing(t *testing.T) {
	client := &fakeRPC{}
	l := newTestLedger(t, client, 0)

	expiresAt := time.Date(2026, 11, 1, 0, 0, 0, 0, time.UTC)
	receipt, err := l.CreateListing(context.Background(), &service.ListingRequest{
		TokenID:   randomWallet(t),
		Owner:     randomWallet(t),
		MinBid:    1_000_000,
		ExpiresAt: expiresAt,
	})
	require.NoError(t, err)
	require.Len(t, client.sent, 1)
	assert.NotEmpty(t, receipt.ID)

	var decoded listingInstruction
	require.NoError(t, bin.UnmarshalBorsh(&decoded, client.sent[0].Message.Instructions[0].Data))
	assert.Equal(t, instructionCreateListing, decoded.Discriminator)
	assert.Equal(t, uint64(1_000_000), decoded.MinBid)
	assert.Equal(t, expiresAt.Unix(), decoded.ExpiresAt)
}

func TestSolanaLedger_Confirmation(t *testing.T) {
	t.Run("confirmed after pending", func(t *testing.T) {
		client := &fakeRPC{statuses: []*rpc.SignatureStatusesResult{
			nil,
			{ConfirmationStatus: rpc.ConfirmationStatusProcessed},
			{ConfirmationStatus: rpc.ConfirmationStatusConfirmed},
		}}
		l := newTestLedger(t, client, 5)

		_, err := l.Mint(context.Background(), &service.MintRequest{Owner: randomWallet(t)})
		require.NoError(t, err)
		assert.Equal(t, 3, client.statusIdx)
	})

	t.Run("execution error", func(t *testing.T) {
		client := &fakeRPC{statuses: []*rpc.SignatureStatusesResult{
			{Err: map[string]any{"InstructionError": []any{0, "Custom"}}},
		}}
		l := newTestLedger(t, client, 5)

		_, err := l.Mint(context.Background(), &service.MintRequest{Owner: randomWallet(t)})
		assert.True(t, errors.Is(err, ErrTransactionFailed))
	})

	t.Run("attempts exhausted", func(t *testing.T) {
		client := &fakeRPC{}
		l := newTestLedger(t, client, 3)

		_, err := l.Mint(context.Background(), &service.MintRequest{Owner: randomWallet(t)})
		assert.True(t, errors.Is(err, ErrNotConfirmed))
		assert.Equal(t, 3, client.polls)
	})

	t.Run("stops when cancelled", func(t *testing.T) {
		ctx, cancel := context.WithCancel(context.Background())
		defer cancel()

		client := &fakeRPC{onPoll: cancel}
		l := newTestLedger(t, client, 5)
		l.confirmInterval = time.Hour

		_, err := l.Mint(ctx, &service.MintRequest{Owner: randomWallet(t)})
		assert.True(t, errors.Is(err, context.Canceled))
		assert.Equal(t, 1, client.polls)
	})

	t.Run("polling disabled", func(t *testing.T) {
		client := &fakeRPC{}
		l := newTestLedger(t, client, 0)

		_, err := l.Mint(context.Background(), &service.MintRequest{Owner: randomWallet(t)})
		require.NoError(t, err)
		assert.Zero(t, client.polls)
	})
}
