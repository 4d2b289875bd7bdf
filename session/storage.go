package session

import (
	"encoding/json"
	"os"
	"path/filepath"
	"sync"

	"github.com/pkg/errors"

	apperrors "github.com/mediaverse/mediaverse/internal/errors"
)

// Storage is the persisted session slot: one token entry and one serialized
// user summary, always written together and cleared together. It survives
// restarts but is not guaranteed durable.
type Storage interface {
	Write(token string, user UserSummary) error
	// Read returns ErrNoSession when the slot is empty.
	Read() (string, UserSummary, error)
	// Clear empties the slot. It must not error when the slot is already empty.
	Clear() error
}

// The two entry names mirror the keys the browser apps persisted under.
type storedSession struct {
	Token string      `json:"jwtToken"`
	User  UserSummary `json:"loggedInUser"`
}

// FileStorage keeps the slot in a single JSON file under the data folder.
// Writes replace the whole slot via rename so a reader never observes a torn
// token/user pair; concurrent writers are last-writer-wins.
type FileStorage struct {
	path string
	lock sync.Mutex
}

var _ Storage = (*FileStorage)(nil)

func NewFileStorage(dataFolder string) (*FileStorage, error) {
	if err := os.MkdirAll(dataFolder, 0o700); err != nil {
		return nil, errors.Wrap(err, "[NewFileStorage] create data folder")
	}
	return &FileStorage{path: filepath.Join(dataFolder, "session.json")}, nil
}

func (s *FileStorage) Write(token string, user UserSummary) error {
	s.lock.Lock()
	defer s.lock.Unlock()

	encoded, err := json.Marshal(storedSession{Token: token, User: user})
	if err != nil {
		return errors.Wrap(err, "[FileStorage.Write] marshal session")
	}

	tmp := s.path + ".tmp"
	if err := os.WriteFile(tmp, encoded, 0o600); err != nil {
		return errors.Wrap(err, "[FileStorage.Write] write session file")
	}
	if err := os.Rename(tmp, s.path); err != nil {
		return errors.Wrap(err, "[FileStorage.Write] replace session file")
	}
	return nil
}

func (s *FileStorage) Read() (string, UserSummary, error) {
	s.lock.Lock()
	defer s.lock.Unlock()

	raw, err := os.ReadFile(s.path)
	if os.IsNotExist(err) {
		return "", UserSummary{}, apperrors.ErrNoSession
	}
	if err != nil {
		return "", UserSummary{}, errors.Wrap(err, "[FileStorage.Read] read session file")
	}

	var stored storedSession
	if err := json.Unmarshal(raw, &stored); err != nil {
		return "", UserSummary{}, errors.Wrap(err, "[FileStorage.Read] unmarshal session")
	}
	if stored.Token == "" {
		return "", UserSummary{}, apperrors.ErrNoSession
	}
	return stored.Token, stored.User, nil
}

func (s *FileStorage) Clear() error {
	s.lock.Lock()
	defer s.lock.Unlock()

	if err := os.Remove(s.path); err != nil && !os.IsNotExist(err) {
		return errors.Wrap(err, "[FileStorage.Clear] remove session file")
	}
	return nil
}
