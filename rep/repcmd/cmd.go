// This file contains the types that model one tick's worth of player
// commands: the command group record and the individual game commands
// inside it.

package repcmd

import (
	"bytes"
	"fmt"
)

// Bytes is a []byte that JSON-marshals itself as a number array instead of
// the base64 string encoding/json would otherwise produce, so raw argument
// bytes stay human-inspectable in a rendered replay document.
type Bytes []byte

// MarshalJSON marshals the byte slice as a number array.
func (bs Bytes) MarshalJSON() ([]byte, error) {
	if bs == nil {
		return []byte("null"), nil
	}

	buf := bytes.NewBuffer(make([]byte, 0, len(bs)*3))
	buf.WriteByte('[')
	for i, v := range bs {
		if i > 0 {
			buf.WriteByte(',')
		}
		fmt.Fprint(buf, v)
	}
	buf.WriteByte(']')

	return buf.Bytes(), nil
}

// Vector3 is a 3-float32 tuple read from a 12 byte source-vector or V3F
// refiner field. Its game-semantic interpretation (e.g. a world position)
// is deliberately not attempted.
type Vector3 [3]float32

// RefinerValue is one decoded field of a game command's type-specific
// refiner tail.
type RefinerValue struct {
	Kind FieldKind

	Int32   int32   `json:",omitempty"`
	Int8    byte    `json:",omitempty"`
	Float32 float32 `json:",omitempty"`
	Vector  Vector3 `json:",omitempty"`
}

// GameCommand is a single player action decoded from the command stream.
type GameCommand struct {
	// CommandType is the command's wire type, used to select both the
	// player-id decoding branch and the refiner field layout.
	CommandType byte

	// PlayerID is in [0, 12], except when CommandType == 19, where it is
	// read from a fixed byte offset instead and is not range checked.
	PlayerID byte

	// SourceUnits are the unit ids named by the command.
	SourceUnits []uint32

	// SourceVectors are the command's 12-byte vector runs, decoded as
	// 3 little-endian float32 values each. Interpretation is deferred.
	SourceVectors []Vector3

	// PreArgumentBytes is the opaque prefix preceding the refiner tail.
	PreArgumentBytes Bytes

	// RefinerFields is the decoded, type-specific tail, laid out per
	// Refiners[CommandType].
	RefinerFields []RefinerValue
}

// CommandGroup is one command-group record from the command-list parser:
// a tick's worth of game commands plus the accompanying selected-unit-id
// list and the group's terminal entry index.
type CommandGroup struct {
	// OffsetEnd is the offset one past this group's trailer.
	OffsetEnd int

	// Commands are the game commands parsed from this group's commands block.
	Commands []*GameCommand

	// SelectedUnits is the unit-id list from this group's selection block,
	// if present.
	SelectedUnits []uint32

	// EntryIndex is the 32 bit index read from the group trailer.
	EntryIndex uint32
}
