package envelope

import (
	"bytes"
	"compress/zlib"
	"encoding/binary"
	"testing"
)

func buildEnvelope(t *testing.T, payload []byte) []byte {
	t.Helper()

	var compressed bytes.Buffer
	zw := zlib.NewWriter(&compressed)
	if _, err := zw.Write(payload); err != nil {
		t.Fatalf("compressing payload: %v", err)
	}
	if err := zw.Close(); err != nil {
		t.Fatalf("closing zlib writer: %v", err)
	}

	var buf bytes.Buffer
	buf.Write(Magic[:])
	var lenBuf [4]byte
	binary.LittleEndian.PutUint32(lenBuf[:], uint32(compressed.Len()))
	buf.Write(lenBuf[:])
	buf.Write(compressed.Bytes())
	return buf.Bytes()
}

func TestDecode(t *testing.T) {
	payload := []byte("hello world")
	data := buildEnvelope(t, payload)

	got, err := DecodeBytes(data)
	if err != nil {
		t.Fatalf("DecodeBytes: %v", err)
	}
	if !bytes.Equal(got, payload) {
		t.Errorf("got %q, want %q", got, payload)
	}
}

func TestDecodeBadMagic(t *testing.T) {
	_, err := DecodeBytes([]byte("abcd1234"))
	if err != ErrBadMagic {
		t.Errorf("got err=%v, want ErrBadMagic", err)
	}
}

func TestDecodeTruncated(t *testing.T) {
	_, err := DecodeBytes([]byte("l3"))
	if err != ErrBadMagic {
		t.Errorf("got err=%v, want ErrBadMagic for short stream", err)
	}
}

func TestDecodeBadZlib(t *testing.T) {
	data := append(append([]byte{}, Magic[:]...), []byte{0, 0, 0, 0}...)
	data = append(data, 0xff, 0xff, 0xff, 0xff)

	_, err := DecodeBytes(data)
	if err == nil {
		t.Fatal("expected an error for corrupt zlib data")
	}
	var de *DecompressError
	if !asDecompressError(err, &de) {
		t.Errorf("got err=%v (%T), want *DecompressError", err, err)
	}
}

func asDecompressError(err error, target **DecompressError) bool {
	de, ok := err.(*DecompressError)
	if ok {
		*target = de
	}
	return ok
}
