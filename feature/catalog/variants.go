package catalog

import (
	"bytes"
	"encoding/binary"
	"fmt"
	"math/bits"
)

const variantEntrySize = 6

// VariantEntry is one 6-byte record of a variant table.
type VariantEntry struct {
	MaterialID          uint8
	DecalID             uint8
	AttributeMask       uint16
	SoundID             uint8
	VfxID               uint8
	MaterialAnimationID uint8
}

type rawVariantEntry struct {
	MaterialID          uint8
	DecalID             uint8
	AttributeAndSound   uint16
	VfxID               uint8
	MaterialAnimationID uint8
}

// VariantTable is a decoded .imc file. Parts are ordered by the bits of PartMask;
// Parts[p][i] is variant i+1 of part p. Defaults holds the variant 0 entry of each part.
type VariantTable struct {
	PartMask uint16
	Defaults []VariantEntry
	Parts    [][]VariantEntry
}

// PartCount returns the number of parts stored per variant.
func (t *VariantTable) PartCount() int {
	return len(t.Parts)
}

// Variants returns the variant entries of a part, or nil when the part does not exist.
func (t *VariantTable) Variants(part int) []VariantEntry {
	if part < 0 || part >= len(t.Parts) {
		return nil
	}
	return t.Parts[part]
}

// ParseVariantTable decodes an .imc file: a count and part mask header, one default
// entry per part, then count rows of one entry per part.
func ParseVariantTable(data []byte) (*VariantTable, error) {
	r := bytes.NewReader(data)

	var header struct {
		Count    uint16
		PartMask uint16
	}
	if err := binary.Read(r, binary.LittleEndian, &header); err != nil {
		return nil, fmt.Errorf("failed to read variant table header: %w", err)
	}

	parts := bits.OnesCount16(header.PartMask)
	if parts == 0 {
		return nil, fmt.Errorf("variant table has an empty part mask")
	}

	want := 4 + (int(header.Count)+1)*parts*variantEntrySize
	if len(data) < want {
		return nil, fmt.Errorf("variant table truncated: %d bytes, want %d", len(data), want)
	}

	raw := make([]rawVariantEntry, (int(header.Count)+1)*parts)
	if err := binary.Read(r, binary.LittleEndian, raw); err != nil {
		return nil, fmt.Errorf("failed to read variant entries: %w", err)
	}

	table := &VariantTable{
		PartMask: header.PartMask,
		Defaults: make([]VariantEntry, parts),
		Parts:    make([][]VariantEntry, parts),
	}
	for p := 0; p < parts; p++ {
		table.Defaults[p] = raw[p].decode()
		table.Parts[p] = make([]VariantEntry, header.Count)
	}
	for v := 0; v < int(header.Count); v++ {
		for p := 0; p < parts; p++ {
			table.Parts[p][v] = raw[(v+1)*parts+p].decode()
		}
	}
	return table, nil
}

func (e rawVariantEntry) decode() VariantEntry {
	return VariantEntry{
		MaterialID:          e.MaterialID,
		DecalID:             e.DecalID,
		AttributeMask:       e.AttributeAndSound & 0x3FF,
		SoundID:             uint8(e.AttributeAndSound >> 10),
		VfxID:               e.VfxID,
		MaterialAnimationID: e.MaterialAnimationID,
	}
}
