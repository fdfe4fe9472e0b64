package vault

import (
	"encoding/json"
	"errors"
	"fmt"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MKhiriev/go-medi-vault/internal/crypto"
)

func TestNewSession_WipesSource(t *testing.T) {
	passcode := []byte("5678")

	session, err := NewSession(passcode)
	require.NoError(t, err)
	defer session.Destroy()

	assert.Equal(t, []byte{0, 0, 0, 0}, passcode)
	require.NoError(t, session.WithKey(func(key []byte) error {
		assert.Equal(t, []byte("5678"), key)
		return nil
	}))
}

func TestNewSession_Empty(t *testing.T) {
	_, err := NewSession(nil)
	assert.ErrorIs(t, err, crypto.ErrEmptyPassword)
}

func TestSession_WithKeyPropagatesError(t *testing.T) {
	session, err := NewSession([]byte("5678"))
	require.NoError(t, err)
	defer session.Destroy()

	boom := errors.New("boom")
	assert.ErrorIs(t, session.WithKey(func([]byte) error { return boom }), boom)
}

func TestSession_DestroyIsIdempotent(t *testing.T) {
	session, err := NewSession([]byte("5678"))
	require.NoError(t, err)

	session.Destroy()
	session.Destroy()

	assert.False(t, session.Alive())
	assert.ErrorIs(t, session.WithKey(func([]byte) error { return nil }), ErrSessionClosed)
}

func TestSession_NilIsClosed(t *testing.T) {
	var session *Session

	assert.False(t, session.Alive())
	assert.ErrorIs(t, session.WithKey(func([]byte) error { return nil }), ErrSessionClosed)
	assert.NotPanics(t, session.Destroy)
}

func TestSession_NeverFormatsOrSerializes(t *testing.T) {
	session, err := NewSession([]byte("5678"))
	require.NoError(t, err)
	defer session.Destroy()

	for _, format := range []string{"%v", "%+v", "%#v", "%s"} {
		assert.NotContains(t, fmt.Sprintf(format, session), "5678", format)
	}

	_, err = json.Marshal(session)
	assert.ErrorIs(t, err, ErrSessionNotSerializable)

	_, err = json.Marshal(struct{ S *Session }{session})
	assert.Error(t, err)
}

func TestSession_ConcurrentReadersAndDestroy(t *testing.T) {
	session, err := NewSession([]byte("5678"))
	require.NoError(t, err)

	var wg sync.WaitGroup
	for range 8 {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_ = session.WithKey(func(key []byte) error {
				if len(key) != 4 {
					return errors.New("unexpected key length")
				}
				return nil
			})
		}()
	}
	session.Destroy()
	wg.Wait()

	assert.False(t, session.Alive())
}
