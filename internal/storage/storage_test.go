package storage

import (
	"context"
	"io"
	"strings"
	"testing"

	"github.com/spf13/afero"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAferoStoreLifecycle(t *testing.T) {
	memFs := afero.NewMemMapFs()
	store := NewAferoStore(memFs)
	ctx := context.Background()

	const path = "uploads/visitor-1/judgment.txt"
	const content = "IN THE SUPREME COURT OF INDIA"

	n, err := store.Save(ctx, path, strings.NewReader(content))
	require.NoError(t, err)
	assert.Equal(t, int64(len(content)), n)

	stored, err := afero.ReadFile(memFs, path)
	require.NoError(t, err)
	assert.Equal(t, content, string(stored))

	f, err := store.Open(ctx, path)
	require.NoError(t, err)
	read, err := io.ReadAll(f)
	require.NoError(t, err)
	require.NoError(t, f.Close())
	assert.Equal(t, content, string(read))

	require.NoError(t, store.Delete(ctx, path))
	exists, err := afero.Exists(memFs, path)
	require.NoError(t, err)
	assert.False(t, exists)

	_, err = store.Open(ctx, "uploads/missing.pdf")
	assert.Error(t, err)
	assert.Error(t, store.Delete(ctx, path))
}
