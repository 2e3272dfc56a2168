// This file contains the Replay type, the aggregate record assembled from
// the envelope, node tree, profile keys, and command groups.

package rep

import (
	"encoding/json"

	"github.com/aoe2rec/aoe2rec/rep/repcmd"
	"github.com/aoe2rec/aoe2rec/rep/repcore"
)

// Replay is the fully decoded replay record.
type Replay struct {
	// Root is the root of the tagged-node metadata tree, starting at the
	// fixed offset (257) in the decompressed buffer.
	Root *Node

	// BuildString is the build identifier decoded from the root/FH node.
	BuildString string

	// ProfileKeys are the typed profile-key values decoded from
	// root/MP/ST, in the order they appear in the table.
	ProfileKeys []repcore.ProfileKey

	// CommandGroups are the parsed command-group records, or nil if the
	// caller's Config disabled command parsing.
	CommandGroups []*repcmd.CommandGroup

	// Computed holds data derived from the other fields; nil until
	// Compute is called.
	Computed *Computed

	// Data is the raw decompressed buffer. Only populated when the
	// parser's Config.Debug is set; excluded from JSON output.
	Data []byte `json:"-"`
}

// ProfileKeyMap projects ProfileKeys into a name -> value mapping, as used
// by the "profile_keys" field of the rendered JSON document. If a keyname
// repeats (which the format does not forbid), the last occurrence wins.
func (r *Replay) ProfileKeyMap() map[string]any {
	m := make(map[string]any, len(r.ProfileKeys))
	for _, pk := range r.ProfileKeys {
		m[pk.Name] = pk.Value
	}
	return m
}

// ToDict returns the external JSON document shape:
//
//	{"build_string": <string>, "profile_keys": {<keyname>: <value>, ...}}
//
// Command groups are parsed and retained on the Replay but, matching the
// format's documented external interface, are not part of this projection.
func (r *Replay) ToDict() map[string]any {
	return map[string]any{
		"build_string": r.BuildString,
		"profile_keys": r.ProfileKeyMap(),
	}
}

// ToJSON renders ToDict as an indented JSON document.
func (r *Replay) ToJSON() ([]byte, error) {
	return json.MarshalIndent(r.ToDict(), "", "    ")
}

// Compute derives basic, non-semantic aggregate statistics from the parsed
// command groups (command counts by player and by type) and stores them on
// r.Computed. It deliberately stops short of interpreting what any command
// type or argument means.
func (r *Replay) Compute() {
	c := &Computed{
		CommandCountByPlayer: map[byte]int{},
		CommandCountByType:   map[byte]int{},
	}

	seenPlayer := map[byte]bool{}
	for _, group := range r.CommandGroups {
		for _, cmd := range group.Commands {
			c.CommandCountByPlayer[cmd.PlayerID]++
			c.CommandCountByType[cmd.CommandType]++
			if !seenPlayer[cmd.PlayerID] {
				seenPlayer[cmd.PlayerID] = true
				c.PlayerIDs = append(c.PlayerIDs, cmd.PlayerID)
			}
			c.TotalCommands++
		}
	}

	r.Computed = c
}
