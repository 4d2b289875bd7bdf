package storagefakes

import (
	"sync"

	apperrors "github.com/mediaverse/mediaverse/internal/errors"
	"github.com/mediaverse/mediaverse/session"
)

var _ session.Storage = (*FakeStorage)(nil)

type FakeStorage struct {
	token string
	user  session.UserSummary
	set   bool
	lock  sync.Mutex

	WriteCalls int
	ClearCalls int
}

func NewFakeStorage() *FakeStorage {
	return &FakeStorage{}
}

func (s *FakeStorage) Write(token string, user session.UserSummary) error {
	s.lock.Lock()
	defer s.lock.Unlock()
	s.token = token
	s.user = user
	s.set = true
	s.WriteCalls++
	return nil
}

func (s *FakeStorage) Read() (string, session.UserSummary, error) {
	s.lock.Lock()
	defer s.lock.Unlock()
	if !s.set {
		return "", session.UserSummary{}, apperrors.ErrNoSession
	}
	return s.token, s.user, nil
}

func (s *FakeStorage) Clear() error {
	s.lock.Lock()
	defer s.lock.Unlock()
	s.token = ""
	s.user = session.UserSummary{}
	s.set = false
	s.ClearCalls++
	return nil
}

// HasSession reports whether the slot currently holds a session.
func (s *FakeStorage) HasSession() bool {
	s.lock.Lock()
	defer s.lock.Unlock()
	return s.set
}
