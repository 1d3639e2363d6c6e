package validator

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type loginRequest struct {
	WalletAddress string `json:"wallet_address" validate:"required,wallet"`
	Name          string `json:"name" validate:"max=5"`
}

func TestCustomValidator_Validate(t *testing.T) {
	cv := New()

	require.NoError(t, cv.Validate(&loginRequest{WalletAddress: "9xQeWvG816bUx9EPjHmaT23yvVM2ZWbrrpZb9PusVFin"}))

	err := cv.Validate(&loginRequest{WalletAddress: "not-a-wallet", Name: "toolong"})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "wallet_address must be a base58 wallet address")
	assert.Contains(t, err.Error(), "name must be at most 5 characters")

	err = cv.Validate(&loginRequest{})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "wallet_address is required")
}
