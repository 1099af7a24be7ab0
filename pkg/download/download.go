package download

import (
	"context"
	"io"
	"net/http"
	"os"

	// Packages
	errors "github.com/djthorpe/go-errors"
	client "github.com/mutablelogic/go-client"
)

///////////////////////////////////////////////////////////////////////////////
// TYPES

// file receives a response body and counts the bytes written
type file struct {
	w io.Writer
	n int64
}

///////////////////////////////////////////////////////////////////////////////
// GLOBALS

const (
	// A three second speech sample
	SampleURL  = "https://samplelib.com/lib/preview/mp3/sample-3s.mp3"
	SampleFile = "test-audio.mp3"
)

var (
	// Returned when the destination already exists and is not empty
	ErrExists = errors.ErrDuplicateEntry
)

///////////////////////////////////////////////////////////////////////////////
// PUBLIC METHODS

// Download fetches url into path and returns the number of bytes written.
// An existing non-empty file is left alone and ErrExists is returned with
// its size. A partial file is removed when the download fails.
func Download(ctx context.Context, url, path string, opts ...client.ClientOpt) (int64, error) {
	if info, err := os.Stat(path); err == nil && info.Size() > 0 {
		return info.Size(), ErrExists.With(path)
	}

	c, err := client.New(append([]client.ClientOpt{client.OptEndpoint(url)}, opts...)...)
	if err != nil {
		return 0, err
	}

	w, err := os.Create(path)
	if err != nil {
		return 0, err
	}
	dest := &file{w: w}
	err = c.DoWithContext(ctx, client.MethodGet, dest)
	if cerr := w.Close(); err == nil {
		err = cerr
	}
	if err == nil && dest.n == 0 {
		err = errors.ErrUnexpectedResponse.With("empty response")
	}
	if err != nil {
		os.Remove(path)
		return 0, err
	}

	// Return success
	return dest.n, nil
}

///////////////////////////////////////////////////////////////////////////////
// PRIVATE METHODS

func (f *file) Unmarshal(header http.Header, r io.Reader) error {
	n, err := io.Copy(f.w, r)
	f.n += n
	return err
}
