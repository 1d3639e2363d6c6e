// Package ledger submits mint and listing transactions to a Solana program.
package ledger

import (
	"context"
	"log/slog"
	"time"

	"provenance/config"
	"provenance/internal/domain/service"

	bin "github.com/gagliardetto/binary"
	"github.com/gagliardetto/solana-go"
	"github.com/gagliardetto/solana-go/rpc"
	"github.com/pkg/errors"
	"github.com/sethvargo/go-retry"
	"go.uber.org/fx"
)

// Instruction discriminators understood by the provenance program
const (
	instructionMint          uint8 = 0
	instructionCreateListing uint8 = 1
)

// ErrTransactionFailed is returned when the cluster reports an execution error
var ErrTransactionFailed = errors.New("transaction failed")

// ErrNotConfirmed is returned when confirmation polling runs out of attempts
var ErrNotConfirmed = errors.New("transaction not confirmed")

var errPending = errors.New("signature pending")

// rpcClient is the subset of *rpc.Client used by the ledger
type rpcClient interface {
	GetLatestBlockhash(ctx context.Context, commitment rpc.CommitmentType) (*rpc.GetLatestBlockhashResult, error)
	SendTransaction(ctx context.Context, transaction *solana.Transaction) (solana.Signature, error)
	GetSignatureStatuses(ctx context.Context, searchTransactionHistory bool, transactionSignatures ...solana.Signature) (*rpc.GetSignatureStatusesResult, error)
}

type mintInstruction struct {
	Discriminator uint8
	RecordID      string
	ImageRef      string
	WatermarkRef  string
	MetadataRef   string
	ContentHash   string
}

type listingInstruction struct {
	Discriminator uint8
	MinBid        uint64
	ExpiresAt     int64
}

type solanaLedger struct {
	client          rpcClient
	programID       solana.PublicKey
	payer           solana.PrivateKey
	marketplace     solana.PublicKey
	confirmAttempts int
	confirmInterval time.Duration
	newKey          func() (solana.PrivateKey, error)
	logger          *slog.Logger
}

// Params holds dependencies for the ledger client, injected by Fx
type Params struct {
	fx.In

	Config *config.Config
	Logger *slog.Logger
}

// New creates a ledger client from configuration
func New(params Params) (service.Ledger, error) {
	cfg := params.Config.Ledger
	if cfg == nil || cfg.RPCURL == "" {
		return nil, errors.New("ledger rpcUrl is required")
	}

	programID, err := solana.PublicKeyFromBase58(cfg.ProgramID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to parse ledger programId")
	}

	payer, err := solana.PrivateKeyFromBase58(cfg.PayerSecret)
	if err != nil {
		return nil, errors.Wrap(err, "failed to parse ledger payerSecret")
	}

	var marketplace solana.PublicKey
	if cfg.Marketplace != "" {
		marketplace, err = solana.PublicKeyFromBase58(cfg.Marketplace)
		if err != nil {
			return nil, errors.Wrap(err, "failed to parse ledger marketplace")
		}
	}

	params.Logger.Info("Ledger client initialized",
		slog.String("program_id", programID.String()),
		slog.String("payer", payer.PublicKey().String()),
	)

	return newSolanaLedger(rpc.New(cfg.RPCURL), programID, payer, marketplace,
		cfg.ConfirmAttempts, cfg.ConfirmInterval, params.Logger), nil
}

func newSolanaLedger(
	client rpcClient,
	programID solana.PublicKey,
	payer solana.PrivateKey,
	marketplace solana.PublicKey,
	confirmAttempts int,
	confirmInterval time.Duration,
	logger *slog.Logger,
) *solanaLedger {
	return &solanaLedger{
		client:          client,
		programID:       programID,
		payer:           payer,
		marketplace:     marketplace,
		confirmAttempts: confirmAttempts,
		confirmInterval: confirmInterval,
		newKey:          solana.NewRandomPrivateKey,
		logger:          logger,
	}
}

// Mint creates a fresh token account owned by req.Owner; the token id is that account's address
func (l *solanaLedger) Mint(ctx context.Context, req *service.MintRequest) (*service.LedgerReceipt, error) {
	owner, err := solana.PublicKeyFromBase58(req.Owner)
	if err != nil {
		return nil, errors.Wrap(err, "invalid owner wallet")
	}

	token, err := l.newKey()
	if err != nil {
		return nil, errors.Wrap(err, "failed to generate token account")
	}

	data, err := bin.MarshalBorsh(&mintInstruction{
		Discriminator: instructionMint,
		RecordID:      req.RecordID,
		ImageRef:      req.ImageRef,
		WatermarkRef:  req.WatermarkRef,
		MetadataRef:   req.MetadataRef,
		ContentHash:   req.ContentHash,
	})
	if err != nil {
		return nil, errors.Wrap(err, "failed to encode mint instruction")
	}

	accounts := solana.AccountMetaSlice{
		solana.Meta(l.payer.PublicKey()).WRITE().SIGNER(),
		solana.Meta(token.PublicKey()).WRITE().SIGNER(),
		solana.Meta(owner),
		solana.Meta(solana.SystemProgramID),
	}

	signature, err := l.submit(ctx, solana.NewInstruction(l.programID, accounts, data), token)
	if err != nil {
		return nil, err
	}

	l.logger.Info("[Ledger] Token minted",
		slog.String("record_id", req.RecordID),
		slog.String("token_id", token.PublicKey().String()),
		slog.String("signature", signature.String()),
	)

	return &service.LedgerReceipt{Digest: signature.String(), ID: token.PublicKey().String()}, nil
}

// CreateListing opens a marketplace listing for an existing token
func (l *solanaLedger) CreateListing(ctx context.Context, req *service.ListingRequest) (*service.LedgerReceipt, error) {
	token, err := solana.PublicKeyFromBase58(req.TokenID)
	if err != nil {
		return nil, errors.Wrap(err, "invalid token id")
	}

	owner, err := solana.PublicKeyFromBase58(req.Owner)
	if err != nil {
		return nil, errors.Wrap(err, "invalid owner wallet")
	}

	listing, err := l.newKey()
	if err != nil {
		return nil, errors.Wrap(err, "failed to generate listing account")
	}

	data, err := bin.MarshalBorsh(&listingInstruction{
		Discriminator: instructionCreateListing,
		MinBid:        req.MinBid,
		ExpiresAt:     req.ExpiresAt.Unix(),
	})
	if err != nil {
		return nil, errors.Wrap(err, "failed to encode listing instruction")
	}

	accounts := solana.AccountMetaSlice{
		solana.Meta(l.payer.PublicKey()).WRITE().SIGNER(),
		solana.Meta(listing.PublicKey()).WRITE().SIGNER(),
		solana.Meta(token).WRITE(),
		solana.Meta(owner),
	}
	if !l.marketplace.IsZero() {
		accounts = append(accounts, solana.Meta(l.marketplace))
	}
	accounts = append(accounts, solana.Meta(solana.SystemProgramID))

	signature, err := l.submit(ctx, solana.NewInstruction(l.programID, accounts, data), listing)
	if err != nil {
		return nil, err
	}

	l.logger.Info("[Ledger] Listing created",
		slog.String("token_id", req.TokenID),
		slog.String("listing_id", listing.PublicKey().String()),
		slog.String("signature", signature.String()),
	)

	return &service.LedgerReceipt{Digest: signature.String(), ID: listing.PublicKey().String()}, nil
}

func (l *solanaLedger) submit(ctx context.Context, instruction solana.Instruction, extraSigner solana.PrivateKey) (solana.Signature, error) {
	blockhash, err := l.client.GetLatestBlockhash(ctx, rpc.CommitmentFinalized)
	if err != nil {
		return solana.Signature{}, errors.Wrap(err, "failed to get latest blockhash")
	}
	if blockhash == nil || blockhash.Value == nil {
		return solana.Signature{}, errors.New("empty blockhash response")
	}

	tx, err := solana.NewTransaction(
		[]solana.Instruction{instruction},
		blockhash.Value.Blockhash,
		solana.TransactionPayer(l.payer.PublicKey()),
	)
	if err != nil {
		return solana.Signature{}, errors.Wrap(err, "failed to build transaction")
	}

	payerKey := l.payer.PublicKey()
	extraKey := extraSigner.PublicKey()
	if _, err := tx.Sign(func(key solana.PublicKey) *solana.PrivateKey {
		switch {
		case key.Equals(payerKey):
			return &l.payer
		case key.Equals(extraKey):
			return &extraSigner
		default:
			return nil
		}
	}); err != nil {
		return solana.Signature{}, errors.Wrap(err, "failed to sign transaction")
	}

	signature, err := l.client.SendTransaction(ctx, tx)
	if err != nil {
		return solana.Signature{}, errors.Wrap(err, "failed to send transaction")
	}

	if err := l.awaitConfirmation(ctx, signature); err != nil {
		return solana.Signature{}, err
	}

	return signature, nil
}

// awaitConfirmation polls signature status until confirmed; zero attempts disables polling
func (l *solanaLedger) awaitConfirmation(ctx context.Context, signature solana.Signature) error {
	if l.confirmAttempts <= 0 {
		return nil
	}

	interval := max(l.confirmInterval, time.Millisecond)
	backoff := retry.WithMaxRetries(uint64(l.confirmAttempts-1), retry.NewConstant(interval))

	err := retry.Do(ctx, backoff, func(ctx context.Context) error {
		statuses, err := l.client.GetSignatureStatuses(ctx, false, signature)
		if err != nil {
			if errors.Is(err, rpc.ErrNotFound) {
				return retry.RetryableError(errPending)
			}

			return errors.Wrap(err, "failed to get signature status")
		}
		if statuses == nil || len(statuses.Value) == 0 || statuses.Value[0] == nil {
			return retry.RetryableError(errPending)
		}

		status := statuses.Value[0]
		if status.Err != nil {
			return errors.Wrapf(ErrTransactionFailed, "%s: %v", signature, status.Err)
		}
		if status.ConfirmationStatus == rpc.ConfirmationStatusConfirmed ||
			status.ConfirmationStatus == rpc.ConfirmationStatusFinalized {
			return nil
		}

		return retry.RetryableError(errPending)
	})

	switch {
	case errors.Is(err, errPending):
		return errors.Wrapf(ErrNotConfirmed, "%s after %d attempts", signature, l.confirmAttempts)
	case err != nil && ctx.Err() != nil:
		return errors.WithStack(err)
	default:
		return err
	}
}
