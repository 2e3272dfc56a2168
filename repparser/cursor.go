// This file contains the byte cursor primitives: little-endian integer,
// bool, and UTF-16LE string readers over an immutable byte slice. All
// readers panic with a *ParseError{Kind: KindBounds} on a short read;
// Parse recovers this once at the top level so callers elsewhere in the
// package can be written without per-call error checks.

package repparser

import (
	"encoding/binary"
	"math"

	"golang.org/x/text/encoding/unicode"
)

// utf16le is the encoding of every string field. A decoder carries state, so
// each string read builds its own rather than sharing one across calls.
var utf16le = unicode.UTF16(unicode.LittleEndian, unicode.IgnoreBOM)

// readU16 reads a little-endian uint16 at offset and returns it with the
// next offset.
func readU16(b []byte, offset int) (uint16, int) {
	requireAt(b, offset, 2)
	return binary.LittleEndian.Uint16(b[offset:]), offset + 2
}

// readI16 reads a little-endian int16 at offset.
func readI16(b []byte, offset int) (int16, int) {
	v, next := readU16(b, offset)
	return int16(v), next
}

// readU32 reads a little-endian uint32 at offset.
func readU32(b []byte, offset int) (uint32, int) {
	requireAt(b, offset, 4)
	return binary.LittleEndian.Uint32(b[offset:]), offset + 4
}

// readI32 reads a little-endian int32 at offset.
func readI32(b []byte, offset int) (int32, int) {
	v, next := readU32(b, offset)
	return int32(v), next
}

// readF32 reads a little-endian IEEE-754 float32 at offset.
func readF32(b []byte, offset int) (float32, int) {
	v, next := readU32(b, offset)
	return math.Float32frombits(v), next
}

// readBool reads a single byte at offset: 0 is false, anything else is true.
func readBool(b []byte, offset int) (bool, int) {
	requireAt(b, offset, 1)
	return b[offset] != 0, offset + 1
}

// readUTF16LEString reads a string occupying 4+2*n bytes at offset: a 16
// bit character count, 2 padding bytes, then n UTF-16LE code units. It
// returns the decoded text and the offset immediately after the string.
func readUTF16LEString(b []byte, offset int) (string, int) {
	numChars, _ := readU16(b, offset)
	start := offset + 4
	end := start + int(numChars)*2
	requireAt(b, start, end-start)

	s, err := utf16le.NewDecoder().String(string(b[start:end]))
	if err != nil {
		panic(newParseError(KindBounds, start, "invalid utf-16le string: %v", err))
	}
	return s, end
}

func requireAt(b []byte, offset, n int) {
	if offset < 0 || n < 0 || offset+n > len(b) {
		panic(newParseError(KindBounds, offset, "need %d bytes, have %d", n, len(b)-offset))
	}
}

// cmdCursor is a sequential, forward-advancing reader for reading a long
// run of fixed-width fields back-to-back. It is the sequential-access
// analogue of the (buffer, offset) free functions above, in the spirit of
// the teacher's sliceReader. The parsers in this package read through the
// free functions directly, not through cmdCursor.
type cmdCursor struct {
	b   []byte
	pos int
}

func (c *cmdCursor) byte() byte {
	requireAt(c.b, c.pos, 1)
	v := c.b[c.pos]
	c.pos++
	return v
}

func (c *cmdCursor) u16() uint16 {
	v, next := readU16(c.b, c.pos)
	c.pos = next
	return v
}

func (c *cmdCursor) u32() uint32 {
	v, next := readU32(c.b, c.pos)
	c.pos = next
	return v
}

func (c *cmdCursor) i32() int32 {
	v, next := readI32(c.b, c.pos)
	c.pos = next
	return v
}

func (c *cmdCursor) f32() float32 {
	v, next := readF32(c.b, c.pos)
	c.pos = next
	return v
}

func (c *cmdCursor) skip(n int) {
	requireAt(c.b, c.pos, n)
	c.pos += n
}

func (c *cmdCursor) slice(n int) []byte {
	requireAt(c.b, c.pos, n)
	s := c.b[c.pos : c.pos+n]
	c.pos += n
	return s
}
