// Package fetch loads the text to be counted from a file, standard input, or a URL.
package fetch

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net"
	"net/http"
	"os"
	"strconv"
	"strings"
	"time"
	"unicode/utf8"
)

// Size limits; the whole source is held in memory while counting.
const (
	MaxFileSizeBytes = 50 * 1024 * 1024  // files and stdin
	MaxHTTPSizeBytes = 100 * 1024 * 1024 // HTTP bodies (may not have Content-Length)
)

// HTTPRequestTimeout bounds a whole HTTP fetch.
const HTTPRequestTimeout = 30 * time.Second

// Stdin is the source name that selects standard input.
const Stdin = "-"

// ErrInvalidText is returned when a source is not valid UTF-8 text.
var ErrInvalidText = errors.New("content is not valid UTF-8 text")

// ErrTooLarge is returned when a source exceeds its size limit.
var ErrTooLarge = errors.New("content exceeds size limit")

// limitedReadCloser fails reads once more than N bytes have been consumed.
type limitedReadCloser struct {
	io.ReadCloser
	N      int64
	source string
}

func (l *limitedReadCloser) Read(p []byte) (int, error) {
	if l.N <= 0 {
		// limit reached; any further byte means the source is oversized
		var probe [1]byte
		n, err := l.ReadCloser.Read(probe[:])
		if n > 0 {
			return 0, fmt.Errorf("%q: %w", l.source, ErrTooLarge)
		}
		return 0, err
	}
	if int64(len(p)) > l.N {
		p = p[:l.N]
	}
	n, err := l.ReadCloser.Read(p)
	l.N -= int64(n)
	return n, err
}

// httpClient is shared and safe for concurrent use.
var httpClient = &http.Client{
	Timeout: HTTPRequestTimeout,
	Transport: &http.Transport{
		DialContext: (&net.Dialer{
			Timeout: HTTPRequestTimeout / 6,
		}).DialContext,
		TLSHandshakeTimeout:   HTTPRequestTimeout / 6,
		ResponseHeaderTimeout: HTTPRequestTimeout / 2,
		DisableKeepAlives:     true,
	},
}

// IsURL reports whether source is fetched over HTTP.
func IsURL(source string) bool {
	return strings.HasPrefix(source, "http://") || strings.HasPrefix(source, "https://")
}

// GetContent opens source for reading:
//   - "-" reads standard input (closing the reader leaves stdin open)
//   - "http://" and "https://" URLs are fetched with GET
//   - anything else is a local file path
func GetContent(ctx context.Context, source string) (io.ReadCloser, error) {
	switch {
	case source == Stdin:
		return &limitedReadCloser{
			ReadCloser: io.NopCloser(os.Stdin),
			N:          MaxFileSizeBytes,
			source:     "stdin",
		}, nil
	case IsURL(source):
		return fetchURL(ctx, source)
	default:
		return fetchFile(source)
	}
}

// ReadAll loads the whole source into memory and checks it is valid text.
func ReadAll(ctx context.Context, source string) (string, error) {
	reader, err := GetContent(ctx, source)
	if err != nil {
		return "", err
	}
	defer reader.Close()

	data, err := io.ReadAll(reader)
	if err != nil {
		return "", fmt.Errorf("failed to read %q: %w", source, err)
	}

	if !utf8.Valid(data) {
		return "", fmt.Errorf("failed to read %q: %w", source, ErrInvalidText)
	}

	slog.Debug("Source loaded", "source", source, "bytes", len(data))
	return string(data), nil
}

// fetchURL retrieves content from an HTTP or HTTPS URL.
func fetchURL(ctx context.Context, url string) (io.ReadCloser, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create request for URL %q: %w", url, err)
	}
	req.Header.Set("User-Agent", "wordfreq/0.1")

	resp, err := httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch URL %q: %w", url, err)
	}

	if resp.StatusCode != http.StatusOK {
		resp.Body.Close()
		return nil, fmt.Errorf("HTTP request failed for URL %q: status %s", url, resp.Status)
	}

	if contentLength := resp.Header.Get("Content-Length"); contentLength != "" {
		if size, err := strconv.ParseInt(contentLength, 10, 64); err == nil && size > MaxHTTPSizeBytes {
			resp.Body.Close()
			return nil, fmt.Errorf("HTTP content too large (%d bytes > %d bytes limit): %w",
				size, MaxHTTPSizeBytes, ErrTooLarge)
		}
	}

	return &limitedReadCloser{
		ReadCloser: resp.Body,
		N:          MaxHTTPSizeBytes,
		source:     url,
	}, nil
}

// fetchFile opens a local file after checking it exists and fits the size limit.
func fetchFile(path string) (io.ReadCloser, error) {
	fileInfo, err := os.Stat(path)
	if errors.Is(err, os.ErrNotExist) {
		return nil, fmt.Errorf("file %q does not exist: %w", path, err)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to access file %q: %w", path, err)
	}

	if fileInfo.IsDir() {
		return nil, fmt.Errorf("%q is a directory, not a file", path)
	}

	if fileInfo.Size() > MaxFileSizeBytes {
		return nil, fmt.Errorf("file %q is too large (%d bytes > %d bytes limit): %w",
			path, fileInfo.Size(), MaxFileSizeBytes, ErrTooLarge)
	}

	file, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open file %q: %w", path, err)
	}

	return file, nil
}
