package petragrd

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"
)

// RangeReader exposes a remote GRD file as an io.ReadSeeker by fetching HTTP
// byte ranges on demand. Seeks are free; every Read issues one request from
// the current offset, so wrap the reader in a BufferedRangeReader unless the
// access pattern is truly sparse.
type RangeReader struct {
	url    string
	client *http.Client
	ctx    context.Context
	header http.Header
	size   int64
	offset int64
}

// OpenURL probes url with a HEAD request and returns a RangeReader when the
// server advertises byte range support. A nil client means
// http.DefaultClient.
func OpenURL(url string, client *http.Client) (*RangeReader, error) {
	if client == nil {
		client = http.DefaultClient
	}

	resp, err := client.Head(url)
	if err != nil {
		return nil, err
	}
	resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return nil, fmt.Errorf("grd: probe %s: response code %d", url, resp.StatusCode)
	}
	if !strings.Contains(resp.Header.Get("Accept-Ranges"), "bytes") {
		return nil, fmt.Errorf("grd: %s does not support byte range requests", url)
	}
	if resp.ContentLength < 0 {
		return nil, fmt.Errorf("grd: %s did not report its length", url)
	}

	return &RangeReader{
		url:    url,
		client: client,
		size:   resp.ContentLength,
	}, nil
}

// WithContext returns a copy of the reader whose requests carry ctx, so a
// decode of a remote file can be cancelled mid flight.
func (h *RangeReader) WithContext(ctx context.Context) *RangeReader {
	c := *h
	c.ctx = ctx
	return &c
}

// WithHeader returns a copy of the reader that adds header to every request,
// for authenticated object stores.
func (h *RangeReader) WithHeader(header http.Header) *RangeReader {
	c := *h
	c.header = header
	return &c
}

// Size returns the total length of the remote file in bytes.
func (h *RangeReader) Size() int64 {
	return h.size
}

func (h *RangeReader) Read(p []byte) (n int, err error) {
	if h.offset >= h.size {
		return 0, io.EOF
	}

	req, err := http.NewRequest(http.MethodGet, h.url, nil)
	if err != nil {
		return 0, err
	}
	if h.ctx != nil {
		req = req.WithContext(h.ctx)
	}
	for key, values := range h.header {
		for _, value := range values {
			req.Header.Add(key, value)
		}
	}
	req.Header.Set("Range", fmt.Sprintf("bytes=%d-%d", h.offset, h.size-1))

	resp, err := h.client.Do(req)
	if err != nil {
		return 0, err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusPartialContent {
		return 0, fmt.Errorf("grd: range request: response code %d", resp.StatusCode)
	}

	n, err = resp.Body.Read(p)
	h.offset += int64(n)

	// The end of one response body is not the end of the resource.
	if errors.Is(err, io.EOF) && h.offset < h.size {
		err = nil
	}
	return n, err
}

func (h *RangeReader) Seek(offset int64, whence int) (int64, error) {
	newOffset := offset
	switch whence {
	case io.SeekStart:
	case io.SeekCurrent:
		newOffset += h.offset
	case io.SeekEnd:
		newOffset += h.size
	default:
		return 0, fmt.Errorf("grd: invalid whence value %d", whence)
	}

	if newOffset < 0 || newOffset > h.size {
		return 0, fmt.Errorf("grd: seek out of bounds: %d", newOffset)
	}
	h.offset = newOffset
	return newOffset, nil
}

// BufferedRangeReader reads a remote file in buffered runs so that the many
// small primitive reads of a decode collapse into a few range requests.
type BufferedRangeReader struct {
	RangeReader
	buffer *bufio.Reader
}

// OpenBufferedURL opens url like OpenURL and wraps the reader in a buffer.
func OpenBufferedURL(url string, client *http.Client) (*BufferedRangeReader, error) {
	rr, err := OpenURL(url, client)
	if err != nil {
		return nil, err
	}
	b := &BufferedRangeReader{RangeReader: *rr}
	b.buffer = bufio.NewReader(&b.RangeReader)
	return b, nil
}

func (b *BufferedRangeReader) Read(p []byte) (n int, err error) {
	return b.buffer.Read(p)
}

func (b *BufferedRangeReader) Seek(offset int64, whence int) (int64, error) {
	// The wrapped reader sits ahead of the logical position by however many
	// bytes the buffer holds; relative seeks must account for that.
	if whence == io.SeekCurrent {
		offset -= int64(b.buffer.Buffered())
	}
	newOffset, err := b.RangeReader.Seek(offset, whence)
	if err != nil {
		return 0, err
	}
	b.buffer.Reset(&b.RangeReader)
	return newOffset, nil
}

func (b *BufferedRangeReader) Close() error {
	return nil
}
