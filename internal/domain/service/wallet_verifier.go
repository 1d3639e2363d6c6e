package service

// WalletVerifier checks that a message was signed by the wallet's key.
type WalletVerifier interface {
	Verify(walletAddress, message, signature string) error
}
