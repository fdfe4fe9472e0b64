package store

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sync"
	"time"

	"github.com/MKhiriev/go-medi-vault/models"
)

// sessionKey is the fixed key the remote session is stored under.
const sessionKey = "user"

// fileTokenStore keeps the remote session in a small JSON document next to
// the local database. The file is read once, on first access; later reads
// are served from memory.
type fileTokenStore struct {
	path     string
	inMemory bool

	mu      sync.RWMutex
	loaded  bool
	session *localSession
}

type localSession struct {
	models.AccountSession
	At time.Time `json:"at"`
}

type localPersistedState map[string]*localSession

// NewFileTokenStore returns a [TokenStore] persisting to path. An empty path
// or ":memory:" keeps the session in memory only.
func NewFileTokenStore(path string) TokenStore {
	return &fileTokenStore{
		path:     path,
		inMemory: path == "" || path == inMemoryDSN,
	}
}

func (s *fileTokenStore) Load() (models.AccountSession, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if err := s.loadLocked(); err != nil {
		return models.AccountSession{}, err
	}
	if s.session == nil || s.session.Token == "" {
		return models.AccountSession{}, ErrTokenNotFound
	}

	return s.session.AccountSession, nil
}

func (s *fileTokenStore) Save(session models.AccountSession) error {
	if session.Token == "" {
		return errors.New("refusing to persist a session without token")
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	s.loaded = true
	s.session = &localSession{AccountSession: session, At: time.Now().UTC()}
	return s.persistLocked()
}

func (s *fileTokenStore) Remove() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.loaded = true
	s.session = nil
	if s.inMemory {
		return nil
	}

	if err := os.Remove(s.path); err != nil && !os.IsNotExist(err) {
		return fmt.Errorf("remove session file: %w", err)
	}
	return nil
}

func (s *fileTokenStore) loadLocked() error {
	if s.loaded || s.inMemory {
		s.loaded = true
		return nil
	}

	data, err := os.ReadFile(s.path)
	if err != nil {
		if os.IsNotExist(err) {
			s.loaded = true
			return nil
		}
		return fmt.Errorf("read session file: %w", err)
	}

	var st localPersistedState
	if err = json.Unmarshal(data, &st); err != nil {
		return fmt.Errorf("decode session file: %w", err)
	}

	s.session = st[sessionKey]
	s.loaded = true
	return nil
}

func (s *fileTokenStore) persistLocked() error {
	if s.inMemory {
		return nil
	}

	dir := filepath.Dir(s.path)
	if dir != "." {
		if err := os.MkdirAll(dir, 0o700); err != nil {
			return fmt.Errorf("create session dir: %w", err)
		}
	}

	payload, err := json.MarshalIndent(localPersistedState{sessionKey: s.session}, "", "  ")
	if err != nil {
		return fmt.Errorf("encode session: %w", err)
	}

	if err = os.WriteFile(s.path, payload, 0o600); err != nil {
		return fmt.Errorf("write session file: %w", err)
	}

	return nil
}
