package session

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/noah-isme/sma-mobile-sdk/internal/credstore"
	"github.com/noah-isme/sma-mobile-sdk/internal/kvstore"
	appErrors "github.com/noah-isme/sma-mobile-sdk/pkg/errors"
)

func newResolver(t *testing.T) (*Resolver, *credstore.Store) {
	t.Helper()
	store := credstore.New(kvstore.NewMemStore(), nil)
	return New(store, nil), store
}

func TestAuthCodeNoSessions(t *testing.T) {
	resolver, _ := newResolver(t)

	_, err := resolver.AuthCode(context.Background())
	require.Error(t, err)
	assert.True(t, appErrors.HasCode(err, appErrors.ErrNoSession))
}

func TestAuthCodeSingleStudent(t *testing.T) {
	resolver, store := newResolver(t)
	ctx := context.Background()

	require.NoError(t, store.Save(ctx, credstore.Session{AccountType: credstore.AccountStudent, AuthCode: "s1"}))

	code, err := resolver.AuthCode(ctx)
	require.NoError(t, err)
	assert.Equal(t, "s1", code)
}

func TestAuthCodePriorityOrder(t *testing.T) {
	resolver, store := newResolver(t)
	ctx := context.Background()

	require.NoError(t, store.Save(ctx, credstore.Session{AccountType: credstore.AccountStudent, AuthCode: "s1"}))
	require.NoError(t, store.Save(ctx, credstore.Session{AccountType: credstore.AccountTeacher, AuthCode: "t1"}))

	code, err := resolver.AuthCode(ctx)
	require.NoError(t, err)
	assert.Equal(t, "t1", code, "teacher outranks student")
}

func TestAuthCodeParentBeforeStudent(t *testing.T) {
	resolver, store := newResolver(t)
	ctx := context.Background()

	require.NoError(t, store.Save(ctx, credstore.Session{AccountType: credstore.AccountStudent, AuthCode: "s1"}))
	require.NoError(t, store.Save(ctx, credstore.Session{AccountType: credstore.AccountParent, AuthCode: "p1"}))

	code, err := resolver.AuthCode(ctx)
	require.NoError(t, err)
	assert.Equal(t, "p1", code)
}

func TestAuthCodeGuardianFallback(t *testing.T) {
	resolver, store := newResolver(t)
	ctx := context.Background()

	require.NoError(t, store.SetGuardianAuthCode(ctx, "qr-only"))

	code, err := resolver.AuthCode(ctx)
	require.NoError(t, err)
	assert.Equal(t, "qr-only", code)
}

func TestAuthCodeForFallsBackToLegacySlot(t *testing.T) {
	resolver, store := newResolver(t)
	ctx := context.Background()

	// Saving a student populated the legacy mirror; asking for a teacher
	// session finds no teacher slot and lands on the mirror.
	require.NoError(t, store.Save(ctx, credstore.Session{AccountType: credstore.AccountStudent, AuthCode: "s1"}))

	code, err := resolver.AuthCodeFor(ctx, credstore.AccountTeacher)
	require.NoError(t, err)
	assert.Equal(t, "s1", code)
}

func TestAuthCodeForMissingEverything(t *testing.T) {
	resolver, _ := newResolver(t)

	_, err := resolver.AuthCodeFor(context.Background(), credstore.AccountParent)
	require.Error(t, err)
	assert.True(t, appErrors.HasCode(err, appErrors.ErrNoSession))
}

func TestResolutionIsReadOnly(t *testing.T) {
	resolver, store := newResolver(t)
	ctx := context.Background()

	require.NoError(t, store.Save(ctx, credstore.Session{AccountType: credstore.AccountTeacher, AuthCode: "t1", UserID: "10"}))

	_, err := resolver.AuthCode(ctx)
	require.NoError(t, err)
	_, err = resolver.AuthCode(ctx)
	require.NoError(t, err)

	got, err := store.Load(ctx, credstore.AccountTeacher)
	require.NoError(t, err)
	assert.Equal(t, "t1", got.AuthCode)
	assert.Equal(t, "10", got.UserID)
}

func TestCurrentPrefersSlotOverMirror(t *testing.T) {
	resolver, store := newResolver(t)
	ctx := context.Background()

	require.NoError(t, store.Save(ctx, credstore.Session{AccountType: credstore.AccountParent, AuthCode: "p1", DisplayName: "Parent"}))

	current, err := resolver.Current(ctx)
	require.NoError(t, err)
	assert.Equal(t, credstore.AccountParent, current.AccountType)
}

func TestCurrentGuardianOnlyIsNoSession(t *testing.T) {
	resolver, store := newResolver(t)
	ctx := context.Background()

	require.NoError(t, store.SetGuardianAuthCode(ctx, "qr-only"))

	_, err := resolver.Current(ctx)
	assert.True(t, appErrors.HasCode(err, appErrors.ErrNoSession))
}
