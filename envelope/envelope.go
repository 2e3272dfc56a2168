/*

Package envelope decodes the outer "l33t" container that wraps a replay's
compressed payload: a 4 byte magic, an advisory (and unused) 32 bit length,
and a zlib-compressed body running to the end of the stream.

The package is safe for concurrent use.

*/
package envelope

import (
	"bytes"
	"compress/zlib"
	"encoding/binary"
	"errors"
	"fmt"
	"io"
)

// Magic is the 4 byte signature every replay stream must start with.
var Magic = [4]byte{'l', '3', '3', 't'}

// ErrBadMagic is returned when the stream does not start with Magic.
var ErrBadMagic = errors.New("envelope: bad magic, expected \"l33t\"")

// DecompressError wraps an error returned by the zlib reader while inflating
// the envelope's payload.
type DecompressError struct {
	Err error
}

func (e *DecompressError) Error() string {
	return fmt.Sprintf("envelope: decompress failed: %v", e.Err)
}

func (e *DecompressError) Unwrap() error {
	return e.Err
}

// Decode reads the l33t envelope from r and returns the inflated payload.
//
// The 32 bit length field following the magic is read (so the remainder of
// the stream lines up at the start of the zlib member) but its value is
// advisory only: it is never used to bound the read, matching the observed
// behavior of every known encoder of this format. The rest of the stream is
// handed to zlib in one shot.
func Decode(r io.Reader) ([]byte, error) {
	var magic [4]byte
	if _, err := io.ReadFull(r, magic[:]); err != nil {
		if errors.Is(err, io.EOF) || errors.Is(err, io.ErrUnexpectedEOF) {
			return nil, ErrBadMagic
		}
		return nil, err
	}
	if magic != Magic {
		return nil, ErrBadMagic
	}

	var lenBuf [4]byte
	if _, err := io.ReadFull(r, lenBuf[:]); err != nil {
		return nil, fmt.Errorf("envelope: reading length field: %w", err)
	}
	_ = int32(binary.LittleEndian.Uint32(lenBuf[:])) // advisory, intentionally unused

	zr, err := zlib.NewReader(r)
	if err != nil {
		return nil, &DecompressError{Err: err}
	}
	defer zr.Close()

	var buf bytes.Buffer
	if _, err := io.Copy(&buf, zr); err != nil {
		return nil, &DecompressError{Err: err}
	}

	return buf.Bytes(), nil
}

// DecodeBytes is a convenience wrapper around Decode for already-buffered
// input.
func DecodeBytes(data []byte) ([]byte, error) {
	return Decode(bytes.NewReader(data))
}
