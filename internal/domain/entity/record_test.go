package entity

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestLifecycleAction_AdvancesForward(t *testing.T) {
	for _, action := range []LifecycleAction{ActionMint, ActionSoftList} {
		target := action.TargetStatus()
		assert.True(t, target.IsValid())

		for _, source := range action.SourceStatuses() {
			if source == RecordStatusError {
				continue
			}
			assert.Greater(t, target.Rank(), source.Rank(), "%s from %s", action, source)
		}
	}

	assert.Equal(t, -1, RecordStatusError.Rank())
	assert.Equal(t, 3, RecordStatusListed.Rank())
}

func TestAuthenticatedRecord_CanStart(t *testing.T) {
	tests := []struct {
		name   string
		record AuthenticatedRecord
		action LifecycleAction
		want   bool
	}{
		{name: "mint uploaded", record: AuthenticatedRecord{Status: RecordStatusUploaded}, action: ActionMint, want: true},
		{name: "re-mint after failure", record: AuthenticatedRecord{Status: RecordStatusError}, action: ActionMint, want: true},
		{name: "mint with token", record: AuthenticatedRecord{Status: RecordStatusError, Ledger: LedgerInfo{TokenID: "tok"}}, action: ActionMint, want: false},
		{name: "mint minted", record: AuthenticatedRecord{Status: RecordStatusMinted, Ledger: LedgerInfo{TokenID: "tok"}}, action: ActionMint, want: false},
		{name: "soft-list minted", record: AuthenticatedRecord{Status: RecordStatusMinted, Ledger: LedgerInfo{TokenID: "tok"}}, action: ActionSoftList, want: true},
		{name: "soft-list without token", record: AuthenticatedRecord{Status: RecordStatusError}, action: ActionSoftList, want: false},
		{name: "soft-list listed", record: AuthenticatedRecord{Status: RecordStatusListed, Ledger: LedgerInfo{TokenID: "tok", ListingID: "lst"}}, action: ActionSoftList, want: false},
		{name: "unknown action", record: AuthenticatedRecord{Status: RecordStatusUploaded}, action: "burn", want: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.record.CanStart(tt.action))
		})
	}
}

func TestAuthenticatedRecord_NeedsFingerprintBackup(t *testing.T) {
	record := AuthenticatedRecord{Fingerprint: Fingerprint{ID: "vec"}, Ledger: LedgerInfo{TokenID: "tok"}}
	assert.True(t, record.NeedsFingerprintBackup())

	record.Fingerprint.BlobRef = "fingerprints/vec.json"
	assert.False(t, record.NeedsFingerprintBackup())

	assert.False(t, (&AuthenticatedRecord{Fingerprint: Fingerprint{ID: "vec"}}).NeedsFingerprintBackup())
}
