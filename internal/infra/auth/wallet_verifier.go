package auth

import (
	"provenance/internal/domain/service"

	"github.com/gagliardetto/solana-go"
	"github.com/pkg/errors"
)

// ed25519WalletVerifier verifies Solana wallet signatures over the login message.
type ed25519WalletVerifier struct{}

// NewWalletVerifier creates a wallet signature verifier
func NewWalletVerifier() service.WalletVerifier {
	return &ed25519WalletVerifier{}
}

// Verify checks a base58 signature of message against a base58 wallet address.
func (v *ed25519WalletVerifier) Verify(walletAddress, message, signature string) error {
	pubKey, err := solana.PublicKeyFromBase58(walletAddress)
	if err != nil {
		return errors.Wrap(err, "invalid wallet address")
	}

	sig, err := solana.SignatureFromBase58(signature)
	if err != nil {
		return errors.Wrap(err, "invalid signature encoding")
	}

	if !sig.Verify(pubKey, []byte(message)) {
		return errors.New("signature does not match wallet")
	}

	return nil
}
