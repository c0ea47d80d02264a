package session

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/pkg/errors"
)

// TokenRepo is durable single-slot storage for the session token. An
// empty string from Load means "no session".
type TokenRepo interface {
	Load() (string, error)
	Save(token string) error
	Clear() error
}

// FileTokenRepo keeps the token in one file. Absence of the file means no
// session is persisted.
type FileTokenRepo struct {
	path string
}

// NewFileTokenRepo creates the parent directory eagerly so Save cannot
// fail on a missing path later.
func NewFileTokenRepo(path string) (*FileTokenRepo, error) {
	if path == "" {
		return nil, errors.New("session.NewFileTokenRepo: path required")
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o700); err != nil {
		return nil, errors.Wrap(err, "FileTokenRepo create directory")
	}
	return &FileTokenRepo{path: path}, nil
}

func (r *FileTokenRepo) Load() (string, error) {
	raw, err := os.ReadFile(r.path)
	if os.IsNotExist(err) {
		return "", nil
	}
	if err != nil {
		return "", errors.Wrap(err, "FileTokenRepo.Load")
	}
	return strings.TrimSpace(string(raw)), nil
}

func (r *FileTokenRepo) Save(token string) error {
	if err := os.WriteFile(r.path, []byte(token), 0o600); err != nil {
		return errors.Wrap(err, "FileTokenRepo.Save")
	}
	return nil
}

func (r *FileTokenRepo) Clear() error {
	err := os.Remove(r.path)
	if err != nil && !os.IsNotExist(err) {
		return errors.Wrap(err, "FileTokenRepo.Clear")
	}
	return nil
}
