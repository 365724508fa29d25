package storage

import (
	"context"
	"strings"
	"testing"

	"github.com/rentflow/backend/internal/domain/onboarding"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStubObjectStorage_StoreAndDelete(t *testing.T) {
	s := NewStubObjectStorage()
	ctx := context.Background()

	stored, err := s.Store(ctx, onboarding.Document{
		OwnerID:     "user-1",
		FileName:    "Kbis.PDF",
		ContentType: "application/pdf",
		Size:        7,
		Body:        strings.NewReader("%PDF-1."),
	})
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(stored.Key, "proofs/user-1/"))
	assert.True(t, strings.HasSuffix(stored.Key, ".pdf"))
	assert.Equal(t, "https://storage.example.com/"+stored.Key, stored.URL)

	data, ok := s.Object(stored.Key)
	require.True(t, ok)
	assert.Equal(t, "%PDF-1.", string(data))

	require.NoError(t, s.Delete(ctx, stored.Key))
	_, ok = s.Object(stored.Key)
	assert.False(t, ok)
}

func TestStubObjectStorage_Validation(t *testing.T) {
	s := NewStubObjectStorage()

	_, err := s.Store(context.Background(), onboarding.Document{Body: strings.NewReader("x")})
	assert.Error(t, err)
	assert.Error(t, s.Delete(context.Background(), ""))
}

func TestDocumentKey(t *testing.T) {
	a := documentKey("u", "scan.JPG")
	b := documentKey("u", "scan.JPG")
	assert.NotEqual(t, a, b)
	assert.True(t, strings.HasSuffix(a, ".jpg"))

	assert.NotContains(t, documentKey("u", "../../etc/passwd"), "..")
	assert.False(t, strings.Contains(documentKey("u", "noext"), "."))
}
