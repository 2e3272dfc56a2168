// This file implements the command-list parser: locating the first footer
// sentinel after the metadata header region, then repeatedly parsing
// command-group records until the end of the buffer.

package repparser

import (
	"bytes"

	"github.com/aoe2rec/aoe2rec/rep/repcmd"
)

// footerSentinel delimits command-group records.
var footerSentinel = []byte{0x00, 0x01, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00}

// parseCommandGroups walks the region starting at headerEnd, locating the
// first footer sentinel at or after it and then parsing command groups
// back-to-back until the cursor reaches len(data)-1.
func parseCommandGroups(data []byte, headerEnd int) []*repcmd.CommandGroup {
	idx := bytes.Index(data[headerEnd:], footerSentinel)
	if idx < 0 {
		panic(newParseError(KindFooterNotFound, headerEnd, "no footer sentinel found after header region"))
	}
	firstFooterStart := headerEnd + idx
	firstFooterEnd := parseFooter(data, firstFooterStart)

	offset := firstFooterEnd + 5
	var groups []*repcmd.CommandGroup
	for offset != len(data)-1 {
		group, next := parseCommandGroup(data, offset)
		groups = append(groups, group)
		offset = next
	}
	return groups
}

// parseFooter parses one footer record starting at b and returns the
// post-footer offset.
func parseFooter(data []byte, b int) int {
	k := data[b]
	offset := b + 1
	offset += int(k) // opaque extra bytes

	unk := data[offset]
	if unk != 1 {
		panic(newParseError(KindBadFooter, offset, "footer unk byte = %d, want 1", unk))
	}
	offset++

	offset += 9 // opaque

	m, _ := readU16(data, offset)
	offset += 4

	offset += 4 * int(m) // quarter-footer trailer
	return offset
}

// parseCommandGroup parses one command-group record starting at offset:
// the group header bitmask, an optional commands block, an optional
// selection block, and the group trailer. It returns the parsed group and
// the offset one past its trailer.
func parseCommandGroup(data []byte, offset int) (*repcmd.CommandGroup, int) {
	entryType, _ := readU32(data, offset)
	offset += 4
	offset++ // opaque prefix byte

	if entryType&0xE1 != entryType {
		panic(newParseError(KindBadEntryType, offset, "entry_type %#x has bits outside 0xE1", entryType))
	}
	if entryType&0x60 == 0x60 {
		panic(newParseError(KindBadEntryType, offset, "entry_type %#x sets both 0x20 and 0x40", entryType))
	}

	if entryType&1 == 0 {
		offset += 4
	} else {
		offset++
	}

	var commands []*repcmd.GameCommand
	if entryType&0x60 != 0 {
		var c int
		if entryType&0x20 != 0 {
			c = int(data[offset])
			offset++
		} else {
			v, next := readU32(data, offset)
			c = int(v)
			offset = next
		}

		commands = make([]*repcmd.GameCommand, 0, c)
		for i := 0; i < c; i++ {
			cmd, next := parseGameCommand(data, offset)
			commands = append(commands, cmd)
			offset = next
		}
	}

	var selectedUnits []uint32
	if entryType&0x80 != 0 {
		u := data[offset]
		offset++
		selectedUnits = make([]uint32, u)
		for i := 0; i < int(u); i++ {
			v, next := readU32(data, offset)
			selectedUnits[i] = v
			offset = next
		}
	}

	offset = parseFooter(data, offset)
	entryIndex, _ := readU32(data, offset)
	offset += 4

	final := data[offset]
	if final != 0 {
		panic(newParseError(KindBadFinalByte, offset, "group trailer final byte = %d, want 0", final))
	}
	offset++

	return &repcmd.CommandGroup{
		OffsetEnd:     offset,
		Commands:      commands,
		SelectedUnits: selectedUnits,
		EntryIndex:    entryIndex,
	}, offset
}
