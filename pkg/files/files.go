package files

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	xe "github.com/Nucmaan/Task-Manager-Backend/pkg/errors"
	"github.com/google/uuid"
)

// Store keeps uploaded task artifacts in a public directory and addresses
// them by URL.
type Store interface {
	// Save writes content under a fresh name derived from filename and
	// returns the public URL of the stored artifact.
	Save(filename string, content io.Reader) (string, error)

	// Remove deletes the artifact a public URL points at.
	Remove(url string) error
}

type localStore struct {
	dir     string
	baseUrl string
}

var _ Store = &localStore{}

// New returns a Store writing into dir and serving under
// `{baseUrl}/public/{file}`.
func New(dir string, baseUrl string) Store {
	return &localStore{dir: dir, baseUrl: strings.TrimSuffix(baseUrl, "/")}
}

func (s *localStore) Save(filename string, content io.Reader) (string, error) {
	name := fmt.Sprintf("%s-%s", uuid.NewString(), filepath.Base(filename))

	f, err := os.Create(filepath.Join(s.dir, name))
	if err != nil {
		return "", xe.Wrap(err)
	}
	defer f.Close()

	if _, err := io.Copy(f, content); err != nil {
		return "", xe.Wrap(err)
	}
	return fmt.Sprintf("%s/public/%s", s.baseUrl, name), nil
}

func (s *localStore) Remove(url string) error {
	prefix := s.baseUrl + "/public/"
	if !strings.HasPrefix(url, prefix) {
		return xe.New(fmt.Sprintf("%s is not under %s", url, prefix))
	}

	name := filepath.Base(strings.TrimPrefix(url, prefix))
	if err := os.Remove(filepath.Join(s.dir, name)); err != nil {
		return xe.Wrap(err)
	}
	return nil
}
