package kvstore

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFileStoreRoundTrip(t *testing.T) {
	store, err := NewFileStore(t.TempDir())
	require.NoError(t, err)
	ctx := context.Background()

	require.NoError(t, store.Set(ctx, "session:teacher", []byte(`{"auth_code":"abc"}`)))

	got, err := store.Get(ctx, "session:teacher")
	require.NoError(t, err)
	assert.JSONEq(t, `{"auth_code":"abc"}`, string(got))
}

func TestFileStoreMissingKey(t *testing.T) {
	store, err := NewFileStore(t.TempDir())
	require.NoError(t, err)

	_, err = store.Get(context.Background(), "session:parent")
	require.Error(t, err)
	assert.True(t, IsNotFound(err))
}

func TestFileStoreDelete(t *testing.T) {
	store, err := NewFileStore(t.TempDir())
	require.NoError(t, err)
	ctx := context.Background()

	require.NoError(t, store.Set(ctx, "guardianAuthCode", []byte("qr-token")))
	require.NoError(t, store.Delete(ctx, "guardianAuthCode"))

	_, err = store.Get(ctx, "guardianAuthCode")
	assert.True(t, IsNotFound(err))

	// deleting an absent key is not an error
	assert.NoError(t, store.Delete(ctx, "guardianAuthCode"))
}

func TestFileStoreOverwrite(t *testing.T) {
	store, err := NewFileStore(t.TempDir())
	require.NoError(t, err)
	ctx := context.Background()

	require.NoError(t, store.Set(ctx, "k", []byte("first")))
	require.NoError(t, store.Set(ctx, "k", []byte("second")))

	got, err := store.Get(ctx, "k")
	require.NoError(t, err)
	assert.Equal(t, "second", string(got))
}

func TestSanitizeKeepsKeysDistinct(t *testing.T) {
	store, err := NewFileStore(t.TempDir())
	require.NoError(t, err)
	ctx := context.Background()

	require.NoError(t, store.Set(ctx, "session:teacher", []byte("t")))
	require.NoError(t, store.Set(ctx, "session:parent", []byte("p")))

	got, err := store.Get(ctx, "session:teacher")
	require.NoError(t, err)
	assert.Equal(t, "t", string(got))
}
