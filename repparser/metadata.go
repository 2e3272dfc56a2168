// This file implements the metadata readers: locating the well-known
// root/FH and root/MP/ST nodes and parsing their payloads, the latter via
// a key-type dispatch table.

package repparser

import (
	"log"

	"github.com/aoe2rec/aoe2rec/rep"
	"github.com/aoe2rec/aoe2rec/rep/repcore"
)

// readBuildString locates root/FH and decodes the UTF-16LE build string at
// its fixed payload offset.
func readBuildString(root *rep.Node, data []byte, logger *log.Logger) string {
	nodes := root.GetChildren([]string{"FH"})
	if len(nodes) == 0 {
		panic(newParseError(KindNodeNotFound, root.Offset, "could not find FH node"))
	}
	if len(nodes) > 1 {
		logger.Print("warning: found multiple FH nodes, using the first")
	}

	fh := nodes[0]
	s, _ := readUTF16LEString(data, fh.Offset+6)
	return s
}

// readProfileKeys locates root/MP/ST and decodes its key-type-tagged table
// of profile keys, in insertion order.
func readProfileKeys(root *rep.Node, data []byte, logger *log.Logger) []repcore.ProfileKey {
	nodes := root.GetChildren([]string{"MP", "ST"})
	if len(nodes) == 0 {
		panic(newParseError(KindNodeNotFound, root.Offset, "could not find MP/ST node"))
	}
	if len(nodes) > 1 {
		logger.Print("warning: found multiple MP/ST nodes, using the first")
	}

	st := nodes[0]
	pos := st.Offset + 10
	numKeys, _ := readU16(data, pos)
	pos += 4

	keys := make([]repcore.ProfileKey, 0, numKeys)
	for i := 0; i < int(numKeys); i++ {
		name, p1 := readUTF16LEString(data, pos)

		typeTag, _ := readU16(data, p1)
		p2 := p1 + 4 // skip the 2 byte type tag, then 2 padding bytes

		kt, ok := repcore.KeyTypeByID(byte(typeTag))
		if !ok {
			panic(newParseError(KindUnknownKeyType, p1, "unknown key type %d for key %q", typeTag, name))
		}

		value, next := readProfileKeyValue(kt, data, p2)
		keys = append(keys, repcore.ProfileKey{Name: name, Type: kt, Value: value})
		pos = next
	}

	return keys
}

// readProfileKeyValue dispatches on kt to decode one profile-key value
// starting at p2 (the offset immediately after the key-type tag and its
// padding). It returns the decoded value and the offset of the next key.
func readProfileKeyValue(kt *repcore.KeyType, data []byte, p2 int) (value any, next int) {
	switch kt.ID {
	case repcore.KeyTypeIDString:
		s, end := readUTF16LEString(data, p2+2)
		return s, end

	case repcore.KeyTypeIDUint32:
		v, _ := readU32(data, p2+2)
		return int64(v), p2 + 6

	case repcore.KeyTypeIDInt32:
		v, _ := readI32(data, p2+2)
		return int64(v), p2 + 6

	case repcore.KeyTypeIDInt16:
		v, _ := readI16(data, p2+2)
		return int64(v), p2 + 4

	case repcore.KeyTypeIDBoolean:
		v, _ := readBool(data, p2)
		return v, p2 + 3

	case repcore.KeyTypeIDGameSyncState:
		return nil, p2 + 10

	default:
		// Unreachable: KeyTypeByID only returns IDs handled above.
		panic(newParseError(KindUnknownKeyType, p2, "unhandled key type %v", kt))
	}
}
