// This file contains the game-command refiner table: the per-command-type
// tail layout expressed as a declarative list of field widths, exactly as
// tabulated by the format. See restoration/game_commands.py's REFINERS map
// for the values this table was ported from.

package repcmd

// FieldKind identifies the wire width/type of one refiner field.
type FieldKind byte

// Refiner field kinds and their widths in bytes.
const (
	FieldI32 FieldKind = iota // a 4 byte signed little-endian integer
	FieldI8                   // a single byte
	FieldF32                  // a 4 byte IEEE-754 float
	FieldV3F                  // 3 consecutive FieldF32 values (12 bytes), a vector
)

// Width returns the number of bytes this field kind occupies.
func (k FieldKind) Width() int {
	switch k {
	case FieldI32:
		return 4
	case FieldI8:
		return 1
	case FieldF32:
		return 4
	case FieldV3F:
		return 12
	default:
		return 0
	}
}

// String names the field kind, for debugging.
func (k FieldKind) String() string {
	switch k {
	case FieldI32:
		return "I32"
	case FieldI8:
		return "I8"
	case FieldF32:
		return "F32"
	case FieldV3F:
		return "V3F"
	default:
		return "Unknown"
	}
}

func i32s(n int) []FieldKind {
	fs := make([]FieldKind, n)
	for i := range fs {
		fs[i] = FieldI32
	}
	return fs
}

func widths(ks ...FieldKind) []FieldKind {
	return ks
}

// Refiners is the closed, declarative table of per-command-type field-width
// sequences. A command type absent from this table is a fatal
// UnknownCommandType decode error.
var Refiners = map[byte][]FieldKind{
	0:  widths(FieldI32, FieldI32, FieldI32, FieldI32, FieldV3F, FieldF32, FieldI32, FieldI32, FieldI32),
	1:  widths(FieldI32, FieldI32, FieldI32),
	2:  widths(FieldI32, FieldI32, FieldI32, FieldI32, FieldI8, FieldI8),
	3:  widths(FieldI32, FieldI32, FieldI32, FieldV3F, FieldI32, FieldI32, FieldF32, FieldI32, FieldI32, FieldI32, FieldI32),
	4:  widths(FieldI32, FieldI32, FieldV3F, FieldF32, FieldI32, FieldI32),
	7:  widths(FieldI32, FieldI32, FieldI8),
	9:  widths(FieldI32, FieldI32),
	12: widths(FieldI32, FieldI32, FieldI32, FieldV3F, FieldV3F, FieldI32, FieldI32, FieldF32, FieldI32, FieldI32, FieldI8),
	13: widths(FieldI32, FieldI32, FieldI32, FieldI32, FieldF32),
	14: widths(FieldI32, FieldI32),
	18: widths(FieldI32, FieldI32, FieldI32),
	19: widths(FieldI32, FieldI32, FieldI32, FieldI32, FieldF32, FieldF32, FieldI8),
	23: widths(FieldI32, FieldI32, FieldI32, FieldI8, FieldI8),
	25: widths(FieldI32, FieldI32, FieldI8, FieldI8, FieldI32),
	26: widths(FieldI32, FieldI32, FieldI8, FieldI32),
	34: widths(FieldI32, FieldI32),
	35: widths(FieldI32, FieldI32, FieldI32),
	37: widths(FieldI32, FieldI32, FieldI8, FieldI32),
	38: widths(FieldI32, FieldI32, FieldI32),
	41: append(i32s(11), FieldI8),
	44: widths(FieldI32, FieldI32, FieldI32, FieldI32),
	45: i32s(5),
	48: widths(FieldI32, FieldI32, FieldI32, FieldI32),
	53: widths(FieldI32, FieldI32, FieldI32),
	55: widths(FieldI32, FieldI32, FieldV3F),
	66: widths(FieldI32, FieldI32, FieldI32),
	67: widths(FieldI32, FieldI32, FieldI8),
	68: widths(FieldI32, FieldI32, FieldV3F, FieldV3F),
	69: widths(FieldI32, FieldI32, FieldI32, FieldV3F, FieldV3F),
	71: widths(FieldI32, FieldI32),
	72: widths(FieldI8, FieldI32, FieldI32, FieldI8, FieldI8, FieldI8),
	75: widths(FieldI32, FieldI32, FieldI32, FieldI32),
}

// RefinerByCommandType returns the field-width sequence for the given
// command type, and whether one is registered.
func RefinerByCommandType(commandType byte) ([]FieldKind, bool) {
	fs, ok := Refiners[commandType]
	return fs, ok
}

// RefinerWidth sums the byte widths of a field-kind sequence.
func RefinerWidth(fs []FieldKind) int {
	total := 0
	for _, f := range fs {
		total += f.Width()
	}
	return total
}
