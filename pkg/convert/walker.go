package convert

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/inhies/go-bytesize"
	"github.com/schollz/progressbar/v3"
	"github.com/spf13/afero"
	"go.uber.org/zap"
)

// Stats sums up one walker run.
type Stats struct {
	Converted int
	Errors    int
	Bytes     int
}

type Option func(w *Walker)

func WithProgress() Option {
	return func(w *Walker) {
		w.progress = true
	}
}

func NewWalker(src, out afero.Fs, logger *zap.Logger, opts ...Option) *Walker {
	w := &Walker{
		src: src,
		out: out,
		log: logger,
	}

	for _, opt := range opts {
		opt(w)
	}

	return w
}

type Walker struct {
	src      afero.Fs
	out      afero.Fs
	log      *zap.Logger
	progress bool
}

// Run converts every supported image under the source root, mirroring the
// directory structure into the output root. Per-file and per-directory
// failures are logged and counted; the walk continues with the next entry.
func (w *Walker) Run() (*Stats, error) {
	stats := &Stats{}

	var files []string
	err := afero.Walk(w.src, ".", func(path string, info os.FileInfo, err error) error {
		if err != nil {
			stats.Errors++
			w.log.With(zap.String("path", path), zap.Error(err)).Info("walk failed")
			return nil
		}
		if info.IsDir() {
			return nil
		}
		if !Supported(path) {
			w.log.With(zap.String("file", path)).Debug("skipped")
			return nil
		}
		files = append(files, path)
		return nil
	})
	if err != nil {
		return nil, err
	}

	var bar *progressbar.ProgressBar
	if w.progress {
		bar = progressbar.Default(int64(len(files)))
	}

	for _, path := range files {
		if bar != nil {
			_ = bar.Add(1)
		}

		n, err := w.one(path)
		if err != nil {
			stats.Errors++
			w.log.With(zap.String("file", path), zap.Error(err)).Info("convert failed")
			continue
		}

		stats.Converted++
		stats.Bytes += n
		w.log.With(zap.String("file", path), zap.Int("bytes", n)).Debug("converted")
	}

	w.log.With(
		zap.Int("converted", stats.Converted),
		zap.Int("errors", stats.Errors),
		zap.String("size", bytesize.New(float64(stats.Bytes)).String()),
	).Info("conversion complete")

	return stats, nil
}

func (w *Walker) one(path string) (int, error) {
	text, err := File(w.src, path)
	if err != nil {
		return 0, err
	}

	target := strings.TrimSuffix(path, filepath.Ext(path)) + ".h"
	if err := WriteHeader(w.out, target, text); err != nil {
		return 0, err
	}

	return len(text), nil
}
