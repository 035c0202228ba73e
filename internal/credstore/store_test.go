package credstore

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/noah-isme/sma-mobile-sdk/internal/kvstore"
	appErrors "github.com/noah-isme/sma-mobile-sdk/pkg/errors"
)

func newTestStore(t *testing.T) (*Store, *kvstore.MemStore) {
	t.Helper()
	kv := kvstore.NewMemStore()
	return New(kv, nil), kv
}

func TestSaveLoadRoundTrip(t *testing.T) {
	ctx := context.Background()

	for _, accountType := range []AccountType{AccountTeacher, AccountParent, AccountStudent} {
		t.Run(string(accountType), func(t *testing.T) {
			store, _ := newTestStore(t)
			session := Session{
				AccountType: accountType,
				AuthCode:    "code-" + string(accountType),
				UserID:      "u-1",
				Username:    "user",
				DisplayName: "User Name",
				Profile:     []byte(`{"school":"Northside"}`),
			}

			require.NoError(t, store.Save(ctx, session))

			got, err := store.Load(ctx, accountType)
			require.NoError(t, err)
			assert.Equal(t, session, *got)
		})
	}
}

func TestSaveMirrorsLegacySlot(t *testing.T) {
	store, _ := newTestStore(t)
	ctx := context.Background()

	require.NoError(t, store.Save(ctx, Session{AccountType: AccountStudent, AuthCode: "s1", UserID: "7"}))

	last, err := store.LoadLast(ctx)
	require.NoError(t, err)
	assert.Equal(t, "s1", last.AuthCode)
}

func TestSaveRejectsUnknownType(t *testing.T) {
	store, _ := newTestStore(t)

	err := store.Save(context.Background(), Session{AccountType: "admin", AuthCode: "x"})
	require.Error(t, err)
	assert.True(t, appErrors.HasCode(err, appErrors.ErrValidation))
}

func TestLoadCorruptRecordReadsAsAbsent(t *testing.T) {
	store, kv := newTestStore(t)
	ctx := context.Background()

	require.NoError(t, kv.Set(ctx, SlotKey(AccountTeacher), []byte("{not json")))

	_, err := store.Load(ctx, AccountTeacher)
	require.Error(t, err)
	assert.True(t, appErrors.HasCode(err, appErrors.ErrNotFound))
}

func TestRemoveClearsLegacyMirrorForSameIdentity(t *testing.T) {
	store, _ := newTestStore(t)
	ctx := context.Background()

	require.NoError(t, store.Save(ctx, Session{AccountType: AccountParent, AuthCode: "p1", UserID: "20"}))
	require.NoError(t, store.Remove(ctx, AccountParent))

	_, err := store.Load(ctx, AccountParent)
	assert.True(t, appErrors.HasCode(err, appErrors.ErrNotFound))

	_, err = store.LoadLast(ctx)
	assert.True(t, appErrors.HasCode(err, appErrors.ErrNotFound))
}

func TestRemoveKeepsLegacyMirrorForOtherIdentity(t *testing.T) {
	store, _ := newTestStore(t)
	ctx := context.Background()

	require.NoError(t, store.Save(ctx, Session{AccountType: AccountParent, AuthCode: "p1", UserID: "20"}))
	require.NoError(t, store.Save(ctx, Session{AccountType: AccountTeacher, AuthCode: "t1", UserID: "10"}))

	// The legacy slot now holds the teacher; removing the parent must not
	// clear it.
	require.NoError(t, store.Remove(ctx, AccountParent))

	last, err := store.LoadLast(ctx)
	require.NoError(t, err)
	assert.Equal(t, "t1", last.AuthCode)
}

func TestAppendStudentAccountDeduplicates(t *testing.T) {
	store, _ := newTestStore(t)
	ctx := context.Background()

	first := Session{AuthCode: "c1", UserID: "7", Username: "s.nguyen"}
	require.NoError(t, store.AppendStudentAccount(ctx, first))

	err := store.AppendStudentAccount(ctx, Session{AuthCode: "c2", UserID: "7"})
	require.Error(t, err)
	assert.True(t, appErrors.HasCode(err, appErrors.ErrDuplicateAccount))

	accounts, err := store.ListStudentAccounts(ctx)
	require.NoError(t, err)
	require.Len(t, accounts, 1)
	assert.Equal(t, AccountStudent, accounts[0].AccountType)
}

func TestAppendStudentAccountMatchesOnAnyIdentityField(t *testing.T) {
	store, _ := newTestStore(t)
	ctx := context.Background()

	require.NoError(t, store.AppendStudentAccount(ctx, Session{AuthCode: "c1", UserID: "7", Username: "a"}))

	assert.Error(t, store.AppendStudentAccount(ctx, Session{AuthCode: "c1", UserID: "9", Username: "b"}), "auth code match")
	assert.Error(t, store.AppendStudentAccount(ctx, Session{AuthCode: "c3", UserID: "9", Username: "a"}), "username match")

	require.NoError(t, store.AppendStudentAccount(ctx, Session{AuthCode: "c4", UserID: "8", Username: "b"}))

	accounts, err := store.ListStudentAccounts(ctx)
	require.NoError(t, err)
	assert.Len(t, accounts, 2)
}

func TestListStudentAccountsToleratesCorruption(t *testing.T) {
	store, kv := newTestStore(t)
	ctx := context.Background()

	require.NoError(t, kv.Set(ctx, KeyStudentList, []byte("][")))

	accounts, err := store.ListStudentAccounts(ctx)
	require.NoError(t, err)
	assert.Empty(t, accounts)
}

func TestRemoveStudentAccount(t *testing.T) {
	store, _ := newTestStore(t)
	ctx := context.Background()

	require.NoError(t, store.AppendStudentAccount(ctx, Session{AuthCode: "c1", UserID: "7"}))
	require.NoError(t, store.AppendStudentAccount(ctx, Session{AuthCode: "c2", UserID: "8"}))

	require.NoError(t, store.RemoveStudentAccount(ctx, Session{UserID: "7"}))

	accounts, err := store.ListStudentAccounts(ctx)
	require.NoError(t, err)
	require.Len(t, accounts, 1)
	assert.Equal(t, "8", accounts[0].UserID)
}

func TestStorageFailureSurfacesAsError(t *testing.T) {
	store, kv := newTestStore(t)
	kv.FailWrites = true

	err := store.Save(context.Background(), Session{AccountType: AccountTeacher, AuthCode: "t"})
	require.Error(t, err)
	assert.True(t, appErrors.HasCode(err, appErrors.ErrStorage))
}

func TestGuardianAuthCode(t *testing.T) {
	store, _ := newTestStore(t)
	ctx := context.Background()

	_, err := store.GuardianAuthCode(ctx)
	assert.True(t, appErrors.HasCode(err, appErrors.ErrNotFound))

	require.NoError(t, store.SetGuardianAuthCode(ctx, "qr-identity"))

	code, err := store.GuardianAuthCode(ctx)
	require.NoError(t, err)
	assert.Equal(t, "qr-identity", code)
}

func TestSelectedBranchDefaultsEmpty(t *testing.T) {
	store, _ := newTestStore(t)
	ctx := context.Background()

	branch, err := store.SelectedBranch(ctx)
	require.NoError(t, err)
	assert.Empty(t, branch)

	require.NoError(t, store.SetSelectedBranch(ctx, "branch-3"))

	branch, err = store.SelectedBranch(ctx)
	require.NoError(t, err)
	assert.Equal(t, "branch-3", branch)
}
