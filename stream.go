package petragrd

import (
	"io"
	"os"
	"strings"
)

// OpenFileOrURL opens a GRD file from a local path or an http(s) URL. URLs
// are read through buffered byte range requests so that a decode touches the
// network only a handful of times; anything else is opened as a local file.
// The caller closes the returned stream.
func OpenFileOrURL(path string) (io.ReadSeekCloser, error) {
	if strings.HasPrefix(path, "http://") || strings.HasPrefix(path, "https://") {
		return OpenBufferedURL(path, nil)
	}
	return os.Open(path)
}
