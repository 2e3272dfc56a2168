// This file implements the single-game-command layout decoder: the fixed
// preamble, the player-id branch, the source-units/source-vectors runs, the
// opaque pre-argument bytes, and the type-specific refiner tail.

package repparser

import (
	"github.com/aoe2rec/aoe2rec/rep/repcmd"
)

// parseGameCommand decodes one game command starting at offset and returns
// it along with the offset of the next command (or the commands block's
// end, for the last one).
func parseGameCommand(data []byte, offset int) (*repcmd.GameCommand, int) {
	tenBytesOffset := offset
	commandType := data[offset+1]
	offset += 10

	if commandType == 14 {
		offset += 20
	} else {
		offset += 8
	}

	marker, _ := readU32(data, offset)
	if marker != 3 {
		panic(newParseError(KindBadCommandField, offset, "command marker = %d, want 3", marker))
	}
	offset += 4

	var playerID byte
	if commandType == 19 {
		playerID = data[tenBytesOffset+7]
		offset += 4
	} else {
		one, _ := readU16(data, offset)
		if one != 1 {
			panic(newParseError(KindBadCommandField, offset, "player-id marker = %d, want 1", one))
		}
		offset += 4

		pid, _ := readU16(data, offset)
		if pid > 12 {
			panic(newParseError(KindBadCommandField, offset, "player_id %d exceeds 12", pid))
		}
		playerID = byte(pid)
		offset += 4
	}

	offset += 4 // opaque

	numUnits, _ := readU16(data, offset)
	offset += 4
	sourceUnits := make([]uint32, numUnits)
	for i := range sourceUnits {
		v, _ := readU16(data, offset)
		sourceUnits[i] = uint32(v)
		offset += 4
	}

	numVectors, _ := readU16(data, offset)
	offset += 4
	sourceVectors := make([]repcmd.Vector3, numVectors)
	for i := range sourceVectors {
		sourceVectors[i] = readVector3(data, offset)
		offset += 12
	}

	extra, _ := readU16(data, offset)
	offset += 4
	preArgLen := 13 + int(extra)
	requireAt(data, offset, preArgLen)
	preArgBytes := append(repcmd.Bytes(nil), data[offset:offset+preArgLen]...)
	offset += preArgLen

	fields, ok := repcmd.RefinerByCommandType(commandType)
	if !ok {
		panic(newParseError(KindUnknownCommandType, offset, "no refiner registered for command type %d", commandType))
	}

	refinerFields := make([]repcmd.RefinerValue, len(fields))
	for i, kind := range fields {
		refinerFields[i], offset = readRefinerValue(data, offset, kind)
	}

	cmd := &repcmd.GameCommand{
		CommandType:      commandType,
		PlayerID:         playerID,
		SourceUnits:      sourceUnits,
		SourceVectors:    sourceVectors,
		PreArgumentBytes: preArgBytes,
		RefinerFields:    refinerFields,
	}
	return cmd, offset
}

// readVector3 decodes a 12-byte source vector as three little-endian
// float32 values.
func readVector3(data []byte, offset int) repcmd.Vector3 {
	x, _ := readF32(data, offset)
	y, _ := readF32(data, offset+4)
	z, _ := readF32(data, offset+8)
	return repcmd.Vector3{x, y, z}
}

// readRefinerValue decodes one refiner field of the given kind at offset,
// returning the value and the next offset.
func readRefinerValue(data []byte, offset int, kind repcmd.FieldKind) (repcmd.RefinerValue, int) {
	switch kind {
	case repcmd.FieldI32:
		v, next := readI32(data, offset)
		return repcmd.RefinerValue{Kind: kind, Int32: v}, next

	case repcmd.FieldI8:
		requireAt(data, offset, 1)
		return repcmd.RefinerValue{Kind: kind, Int8: data[offset]}, offset + 1

	case repcmd.FieldF32:
		v, next := readF32(data, offset)
		return repcmd.RefinerValue{Kind: kind, Float32: v}, next

	case repcmd.FieldV3F:
		requireAt(data, offset, 12)
		return repcmd.RefinerValue{Kind: kind, Vector: readVector3(data, offset)}, offset + 12

	default:
		panic(newParseError(KindUnknownCommandType, offset, "unhandled refiner field kind %v", kind))
	}
}
