package storage

import (
	"io"
	"strings"
	"testing"

	"jobport/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newStore(t *testing.T) *ResumeStore {
	t.Helper()
	store, err := NewResumeStore(t.TempDir())
	require.NoError(t, err)
	return store
}

func assertValidationError(t *testing.T, err error) {
	t.Helper()
	var appErr *models.AppError
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, models.CodeValidation, appErr.Code)
}

func TestResumeStoreSaveAndOpen(t *testing.T) {
	t.Parallel()
	store := newStore(t)

	ref, err := store.Save("My Resume.PDF", 20, strings.NewReader("%PDF-1.4 hello"))
	require.NoError(t, err)
	assert.True(t, strings.HasSuffix(ref, ".pdf"))
	assert.NotContains(t, ref, "My Resume")

	f, err := store.Open(ref)
	require.NoError(t, err)
	defer f.Close()
	content, err := io.ReadAll(f)
	require.NoError(t, err)
	assert.Equal(t, "%PDF-1.4 hello", string(content))
}

func TestResumeStoreRejectsBadUploads(t *testing.T) {
	t.Parallel()
	store := newStore(t)

	t.Run("disallowed extension", func(t *testing.T) {
		_, err := store.Save("malware.exe", 10, strings.NewReader("x"))
		assertValidationError(t, err)
	})

	t.Run("oversized file", func(t *testing.T) {
		_, err := store.Save("big.pdf", MaxResumeSize+1, strings.NewReader("x"))
		assertValidationError(t, err)
	})
}

func TestResumeStoreRejectsPathLikeRefs(t *testing.T) {
	t.Parallel()
	store := newStore(t)

	for _, ref := range []string{"../secret.pdf", "a/b.pdf", ""} {
		_, err := store.Open(ref)
		assertValidationError(t, err)
	}
}

func TestResumeStoreRemove(t *testing.T) {
	t.Parallel()
	store := newStore(t)

	ref, err := store.Save("r.pdf", 5, strings.NewReader("data"))
	require.NoError(t, err)

	require.NoError(t, store.Remove(ref))
	_, err = store.Open(ref)
	var appErr *models.AppError
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, models.CodeNotFound, appErr.Code)

	// removing twice is not an error
	assert.NoError(t, store.Remove(ref))
}
