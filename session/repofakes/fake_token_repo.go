// Package repofakes provides in-memory test doubles for the session
// package's storage interfaces.
package repofakes

import "sync"

// FakeTokenRepo is an in-memory TokenRepo that records its call counts.
type FakeTokenRepo struct {
	mu     sync.Mutex
	token  string
	Saves  int
	Clears int

	// LoadErr, SaveErr and ClearErr force the next matching call to fail.
	LoadErr  error
	SaveErr  error
	ClearErr error
}

// NewFakeTokenRepo returns a repo pre-seeded with token, which may be
// empty for the no-persisted-session case.
func NewFakeTokenRepo(token string) *FakeTokenRepo {
	return &FakeTokenRepo{token: token}
}

func (f *FakeTokenRepo) Load() (string, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.LoadErr != nil {
		return "", f.LoadErr
	}
	return f.token, nil
}

func (f *FakeTokenRepo) Save(token string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.SaveErr != nil {
		return f.SaveErr
	}
	f.token = token
	f.Saves++
	return nil
}

func (f *FakeTokenRepo) Clear() error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.ClearErr != nil {
		return f.ClearErr
	}
	f.token = ""
	f.Clears++
	return nil
}

// Stored returns the currently persisted token.
func (f *FakeTokenRepo) Stored() string {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.token
}
