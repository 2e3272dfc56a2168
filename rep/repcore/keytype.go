// This file contains the profile-key type enumeration.
//
// The wire codes and their meaning come from the node tree's MP/ST table;
// see restoration/enums.py and restoration/game_commands.py in the original
// source for the reference values this table was ported from.

package repcore

// Wire codes for KeyType, as they appear in the MP/ST profile-key table.
const (
	KeyTypeIDUint32        byte = 1
	KeyTypeIDInt32         byte = 2
	KeyTypeIDGameSyncState byte = 3
	KeyTypeIDInt16         byte = 4
	KeyTypeIDBoolean       byte = 6
	KeyTypeIDString        byte = 10
)

// KeyType describes the wire type of a profile-key value.
type KeyType struct {
	Enum

	// ID as it appears in the ST node's key table.
	ID byte
}

// KeyTypes is the closed enumeration of valid profile-key types.
var KeyTypes = []*KeyType{
	{Enum{"uint32"}, KeyTypeIDUint32},
	{Enum{"int32"}, KeyTypeIDInt32},
	{Enum{"gamesyncstate"}, KeyTypeIDGameSyncState},
	{Enum{"int16"}, KeyTypeIDInt16},
	{Enum{"boolean"}, KeyTypeIDBoolean},
	{Enum{"string"}, KeyTypeIDString},
}

// Named key types.
var (
	KeyTypeUint32        = KeyTypes[0]
	KeyTypeInt32         = KeyTypes[1]
	KeyTypeGameSyncState = KeyTypes[2]
	KeyTypeInt16         = KeyTypes[3]
	KeyTypeBoolean       = KeyTypes[4]
	KeyTypeString        = KeyTypes[5]
)

// KeyTypeByID returns the KeyType for the given wire code, and whether one
// was found. There is no "unknown but keep going" fallback (such as
// UnknownEnum) here: an unrecognized code is a fatal
// decode error (see the parser's UnknownKeyType error kind), so the caller
// is expected to abort when ok is false.
func KeyTypeByID(id byte) (kt *KeyType, ok bool) {
	for _, k := range KeyTypes {
		if k.ID == id {
			return k, true
		}
	}
	return nil, false
}

// ProfileKey pairs a profile key's name with its decoded value and the wire
// type that produced it.
//
// Value is one of: nil (for GameSyncState), int64 (Uint32/Int32/Int16),
// bool (Boolean), or string (String).
type ProfileKey struct {
	// Name is the UTF-16LE keyname decoded from the ST table.
	Name string

	// Type is the wire type this value was decoded as.
	Type *KeyType

	// Value holds the decoded scalar; see the type comment for its dynamic type.
	Value any
}
