// Package fingerprint persists the generation fingerprint that drives
// skip-if-unchanged regeneration.
package fingerprint

import (
	"errors"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/hullworks/keel/internal/core/ports"
	"go.trai.ch/zerr"
)

// Filename is the fixed name of the fingerprint file inside the generated
// project tree.
const Filename = ".keel-fingerprint"

var _ ports.FingerprintStore = (*Store)(nil)

// Store implements ports.FingerprintStore using a single opaque digest file.
type Store struct{}

// NewStore creates a new fingerprint Store.
func NewStore() *Store {
	return &Store{}
}

// Load returns the previously persisted fingerprint for the given project
// path, or "" when none has been written yet.
func (s *Store) Load(projectPath string) (string, error) {
	path := filepath.Join(projectPath, Filename)

	//nolint:gosec // Path is derived from the caller's project root
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return "", nil
		}
		return "", zerr.With(zerr.Wrap(err, "failed to read fingerprint file"), "path", path)
	}

	return strings.TrimSpace(string(data)), nil
}

// Store persists the fingerprint. It is written last in a regeneration pass
// so a failed run never leaves a fingerprint claiming the tree is current.
func (s *Store) Store(projectPath, fp string) error {
	if err := os.MkdirAll(projectPath, 0o750); err != nil {
		return zerr.With(zerr.Wrap(err, "failed to create project directory"), "path", projectPath)
	}

	path := filepath.Join(projectPath, Filename)

	//nolint:gosec // Path is derived from the caller's project root
	if err := os.WriteFile(path, []byte(fp+"\n"), 0o644); err != nil {
		return zerr.With(zerr.Wrap(err, "failed to write fingerprint file"), "path", path)
	}

	return nil
}
