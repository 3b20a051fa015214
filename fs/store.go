package fs

import (
	"os"
	"path/filepath"

	"github.com/flyingcloud-code/mcp"
)

// Store writes pages into a directory tree with atomic update
// semantics. Pages accumulate in a staging directory next to the
// target; Commit moves the staged tree into place, replacing any
// previous contents. A batch either lands completely or not at all.
type Store struct {
	dir string
}

// NewStore creates a Store targeting dir. Staged files live in
// dir + ".tmp" until Commit.
func NewStore(dir string) *Store {
	return &Store{dir: dir}
}

func (s *Store) tempDir() string {
	return s.dir + ".tmp"
}

// SaveContent stages one page under the temporary directory.
func (s *Store) SaveContent(content *mcp.WebContent) error {
	relPath, err := URLToPath(content.URL, content.Format)
	if err != nil {
		return err
	}

	fullPath := filepath.Join(s.tempDir(), relPath)
	if err := os.MkdirAll(filepath.Dir(fullPath), 0755); err != nil {
		return err
	}
	return os.WriteFile(fullPath, []byte(FormatContent(content)), 0644)
}

// Commit swaps the staged tree into place. The previous target tree
// is replaced, not merged into.
func (s *Store) Commit() error {
	if err := os.RemoveAll(s.dir); err != nil {
		return err
	}
	return os.Rename(s.tempDir(), s.dir)
}

// Abort discards the staged tree, leaving any previous contents
// intact.
func (s *Store) Abort() error {
	return os.RemoveAll(s.tempDir())
}
