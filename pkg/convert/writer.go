package convert

import (
	"errors"
	"fmt"
	"path/filepath"

	"github.com/rs/xid"
	"github.com/spf13/afero"
)

// NewSrcFs roots a read-only view at an existing source directory.
func NewSrcFs(path string) (afero.Fs, error) {
	fs := afero.NewOsFs()
	if exists, err := afero.DirExists(fs, path); err != nil {
		return nil, err
	} else if !exists {
		return nil, errors.New("source dir not exists")
	}
	return afero.NewReadOnlyFs(afero.NewBasePathFs(fs, path)), nil
}

// NewOutFs roots a view at the output directory, creating it if needed.
func NewOutFs(path string) (afero.Fs, error) {
	fs := afero.NewOsFs()
	if err := fs.MkdirAll(path, 0755); err != nil {
		return nil, fmt.Errorf("create output dir failed: %w", err)
	}
	return afero.NewBasePathFs(fs, path), nil
}

// WriteHeader writes header text through a uniquely named temp file in the
// target's directory and renames it into place, so an interrupted run
// never leaves a truncated header. Missing directories are created.
func WriteHeader(fs afero.Fs, path string, text string) error {
	dir := filepath.Dir(path)
	if dir != "." {
		if exists, err := afero.DirExists(fs, dir); err != nil {
			return err
		} else if !exists {
			if err2 := fs.MkdirAll(dir, 0755); err2 != nil {
				return err2
			}
		}
	}

	tmp := filepath.Join(dir, xid.New().String())
	if err := afero.WriteFile(fs, tmp, []byte(text), 0644); err != nil {
		return err
	}

	return fs.Rename(tmp, path)
}
