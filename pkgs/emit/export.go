package emit

import (
	"bytes"
	"fmt"
	"os"
	"path/filepath"

	"github.com/go-git/go-billy/v5"
	"github.com/go-git/go-billy/v5/util"
)

// Export renders a document and writes it to path only when the rendered
// content differs from what is already on disk. It reports whether the
// file changed.
//
// The render callback runs fully in memory before any filesystem access;
// if it fails, nothing is written and the target file keeps its previous
// content. Writes go through a temporary file in the target directory
// followed by a rename, so a failure never leaves a partially written
// file behind. Keeping unchanged files untouched preserves their
// modification time, which is what downstream build-freshness checks key
// off.
func Export(fsys billy.Filesystem, path string, render func(*Document) error) (changed bool, err error) {
	doc := NewDocument()
	if err := render(doc); err != nil {
		return false, err
	}
	content := doc.Render()

	existing, err := util.ReadFile(fsys, path)
	if err == nil && bytes.Equal(existing, content) {
		return false, nil
	}
	if err != nil && !os.IsNotExist(err) {
		return false, fmt.Errorf("export: read %s: %w", path, err)
	}

	if dir := filepath.Dir(path); dir != "." && dir != "" {
		if err := fsys.MkdirAll(dir, 0755); err != nil {
			return false, fmt.Errorf("export: mkdir %s: %w", dir, err)
		}
	}
	if err := writeFileAtomic(fsys, path, content); err != nil {
		return false, fmt.Errorf("export: write %s: %w", path, err)
	}
	return true, nil
}

// writeFileAtomic writes content to a temporary file beside path and
// renames it over the target.
func writeFileAtomic(fsys billy.Filesystem, path string, content []byte) error {
	tmp, err := util.TempFile(fsys, filepath.Dir(path), filepath.Base(path)+".tmp")
	if err != nil {
		return err
	}
	tmpName := tmp.Name()
	if _, err := tmp.Write(content); err != nil {
		tmp.Close()
		fsys.Remove(tmpName)
		return err
	}
	if err := tmp.Close(); err != nil {
		fsys.Remove(tmpName)
		return err
	}
	if err := fsys.Rename(tmpName, path); err != nil {
		fsys.Remove(tmpName)
		return err
	}
	return nil
}
