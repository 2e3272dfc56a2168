package repparser

import (
	"log"
	"testing"
	"unicode/utf16"

	"github.com/aoe2rec/aoe2rec/rep"
)

// encodeUTF16LEString encodes s the way the format does: a 16 bit char
// count, 2 padding bytes, then the UTF-16LE code units. It is written
// independently of the production decoder (which goes through
// golang.org/x/text) so the tests don't validate the decoder against
// itself.
func encodeUTF16LEString(s string) []byte {
	units := utf16.Encode([]rune(s))
	out := make([]byte, 4+2*len(units))
	out[0] = byte(len(units))
	out[1] = byte(len(units) >> 8)
	for i, u := range units {
		out[4+2*i] = byte(u)
		out[4+2*i+1] = byte(u >> 8)
	}
	return out
}

func put16(b []byte, offset int, v uint16) {
	b[offset] = byte(v)
	b[offset+1] = byte(v >> 8)
}

func TestReadBuildString(t *testing.T) {
	data := make([]byte, 400)
	copy(data[257:], []byte("RT"))
	put16(data, 259, 100)
	copy(data[263:], []byte("FH"))
	put16(data, 265, 12)
	copy(data[269:], encodeUTF16LEString("Hi"))

	root := buildNodeTree(data, log.Default())
	got := readBuildString(root, data, log.Default())
	if got != "Hi" {
		t.Errorf("readBuildString() = %q, want %q", got, "Hi")
	}
}

func TestReadBuildStringMissingFH(t *testing.T) {
	defer func() {
		r := recover()
		pe, ok := r.(*ParseError)
		if !ok {
			t.Fatalf("recovered %v (%T), want *ParseError", r, r)
		}
		if pe.Kind != KindNodeNotFound {
			t.Errorf("Kind = %v, want KindNodeNotFound", pe.Kind)
		}
	}()

	root := &rep.Node{Token: "RT", Offset: 257, Size: 10}
	readBuildString(root, make([]byte, 300), log.Default())
}

func TestReadProfileKeys(t *testing.T) {
	// Build an MP/ST node by hand, with 2 keys: gamename (string) = "Test",
	// playercount (int16) = 4.
	stOffset := 300

	var body []byte
	numKeysOff := len(body)
	body = append(body, 0, 0) // num_keys placeholder, at st.Offset+10
	body = append(body, 0, 0) // 2 padding bytes

	// key 1: gamename / string
	body = append(body, encodeUTF16LEString("gamename")...)
	typeOff1 := len(body)
	body = append(body, 0, 0) // key type placeholder
	body = append(body, 0, 0) // 2 padding bytes
	body = append(body, 0, 0) // 2 more padding bytes before the value (value at p2+2)
	body = append(body, encodeUTF16LEString("Test")...)

	// key 2: playercount / int16
	body = append(body, encodeUTF16LEString("playercount")...)
	typeOff2 := len(body)
	body = append(body, 0, 0) // key type placeholder
	body = append(body, 0, 0) // 2 padding bytes
	body = append(body, 0, 0) // 2 more padding bytes before the value
	body = append(body, 4, 0)

	put16(body, numKeysOff, 2)
	put16(body, typeOff1, 10) // string
	put16(body, typeOff2, 4)  // int16

	data := make([]byte, stOffset+10+len(body)+16)
	copy(data[stOffset+10:], body)

	st := &rep.Node{Token: "ST", Offset: stOffset}
	root := &rep.Node{Token: "RT"}
	mp := &rep.Node{Token: "MP", Parent: root}
	st.Parent = mp
	mp.Children = []*rep.Node{st}
	root.Children = []*rep.Node{mp}

	keys := readProfileKeys(root, data, log.Default())
	if len(keys) != 2 {
		t.Fatalf("len(keys) = %d, want 2", len(keys))
	}
	if keys[0].Name != "gamename" || keys[0].Value != "Test" {
		t.Errorf("keys[0] = %+v, want gamename=Test", keys[0])
	}
	if keys[1].Name != "playercount" || keys[1].Value != int64(4) {
		t.Errorf("keys[1] = %+v, want playercount=4", keys[1])
	}
}

func TestReadProfileKeysMissingST(t *testing.T) {
	defer func() {
		r := recover()
		pe, ok := r.(*ParseError)
		if !ok {
			t.Fatalf("recovered %v (%T), want *ParseError", r, r)
		}
		if pe.Kind != KindNodeNotFound {
			t.Errorf("Kind = %v, want KindNodeNotFound", pe.Kind)
		}
	}()

	root := &rep.Node{Token: "RT"}
	readProfileKeys(root, make([]byte, 300), log.Default())
}
