package convert

import (
	"bytes"
	"fmt"
	"io"

	"github.com/go-resty/resty/v2"
	"github.com/pkg/errors"
	"github.com/schollz/progressbar/v3"
	"go.uber.org/zap"
)

func NewFetcher(logger *zap.Logger) *Fetcher {
	return &Fetcher{
		cli: resty.New().SetDoNotParseResponse(true),
		log: logger,
	}
}

type Fetcher struct {
	cli *resty.Client
	log *zap.Logger
}

// Get downloads one image into memory, showing byte progress.
func (f *Fetcher) Get(url string) ([]byte, error) {
	resp, err := f.cli.R().Get(url)
	if err != nil {
		return nil, err
	}

	defer func() {
		_ = resp.RawBody().Close()
	}()

	if resp.StatusCode() != 200 {
		return nil, errors.Errorf("unexpected status %d", resp.StatusCode())
	}

	bar := progressbar.DefaultBytes(resp.RawResponse.ContentLength, fmt.Sprintf("Downloading %s", url))

	var buf bytes.Buffer
	if _, err := io.Copy(io.MultiWriter(&buf, bar), resp.RawBody()); err != nil {
		return nil, err
	}

	f.log.With(zap.String("url", url), zap.Int("bytes", buf.Len())).Debug("fetched")
	return buf.Bytes(), nil
}
