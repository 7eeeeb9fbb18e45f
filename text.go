package petragrd

import (
	"bytes"
	"io"
)

// Text fields in a GRD file end at the first ASCII digit zero, not at a NUL.
// Every recovered file terminates its strings this way, so the oddity looks
// deliberate on Petra's part, but it does mean a stored string cannot contain
// the character '0'. Treat decoded text with that caveat in mind.
const textTerminator = '0'

// Reads a fixed width text field from r. The field always occupies width
// bytes in the file regardless of how long the stored string is.
func readText(r io.Reader, width int) (string, error) {
	raw := make([]byte, width)
	if _, err := io.ReadFull(r, raw); err != nil {
		return "", err
	}
	return decodeText(raw), nil
}

// Decodes a raw text field: the bytes up to the first terminator, or the
// whole span when no terminator is present. Bytes that do not form valid
// UTF-8 become replacement characters rather than failing the decode.
func decodeText(raw []byte) string {
	if i := bytes.IndexByte(raw, textTerminator); i >= 0 {
		raw = raw[:i]
	}
	return string(bytes.ToValidUTF8(raw, []byte("�")))
}
