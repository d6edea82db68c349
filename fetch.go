package aoc

//go:generate mockgen -source=fetch.go -destination=mock_fetcher_test.go -package=aoc

import (
	"context"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"net/http"
	"os"
	"path/filepath"

	"github.com/rs/zerolog/log"
)

// A Fetcher downloads puzzle data.
type Fetcher interface {
	Fetch(ctx context.Context, url string) ([]byte, error)
}

type httpFetcher struct {
	client  *http.Client
	session func() (string, error)
}

// NewHTTPFetcher returns a Fetcher that authenticates with the session
// cookie returned by session.
func NewHTTPFetcher(session func() (string, error)) Fetcher {
	return &httpFetcher{
		client:  http.DefaultClient,
		session: session,
	}
}

func (f *httpFetcher) Fetch(ctx context.Context, url string) ([]byte, error) {
	session, err := f.session()
	if err != nil {
		return nil, err
	}
	req, err := http.NewRequestWithContext(ctx, "GET", url, nil)
	if err != nil {
		return nil, err
	}
	req.AddCookie(&http.Cookie{Name: "session", Value: session})
	res, err := f.client.Do(req)
	if err != nil {
		return nil, err
	}
	defer res.Body.Close()
	if res.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("bad status fetching %s: %v", url, res.Status)
	}
	return io.ReadAll(res.Body)
}

// fileOrFetch makes sure filename exists, downloading it from url if it
// doesn't.
func fileOrFetch(ctx context.Context, f Fetcher, filename, url string) error {
	_, err := os.Stat(filename)
	if err == nil {
		return nil
	}
	if !errors.Is(err, fs.ErrNotExist) {
		return err
	}

	log.Info().Str("url", url).Str("file", filename).Msg("fetching input")
	body, err := f.Fetch(ctx, url)
	if err != nil {
		return fmt.Errorf("fetching %s: %w", url, err)
	}
	return writeFile(filename, body)
}

func writeFile(filename string, body []byte) error {
	if err := os.MkdirAll(filepath.Dir(filename), 0700); err != nil {
		return err
	}
	return os.WriteFile(filename, body, 0644)
}
