package gamepath

import (
	"context"
	"errors"
	"fmt"
	"math"

	"path-mapper/feature/catalog"
)

// VariantTablePath builds the path of the variant table an effect path refers to.
func VariantTablePath(cat Category, primary, secondary uint16) string {
	switch cat {
	case CategoryWeapon:
		return fmt.Sprintf("chara/weapon/w%04d/obj/body/b%04d/b%04d.imc", primary, secondary, secondary)
	case CategoryMonster:
		return fmt.Sprintf("chara/monster/m%04d/obj/body/b%04d/b%04d.imc", primary, secondary, secondary)
	case CategoryDemiHuman:
		return fmt.Sprintf("chara/demihuman/d%04d/obj/equipment/e%04d/e%04d.imc", primary, secondary, secondary)
	default:
		return ""
	}
}

// expandEffects resolves an effect id to the variants whose table entry uses it.
// Monsters are searched across every part of the table; weapons and demihumans
// only in the first part.
func (p *Parser) expandEffects(ctx context.Context, d Descriptor, caps Captures) ([]Descriptor, error) {
	primary, secondary, allParts := "id", "weapon", false
	switch d.Category {
	case CategoryMonster:
		primary, secondary, allParts = "monster", "id", true
	case CategoryDemiHuman:
		primary, secondary = "id", "equip"
	}

	var err error
	if d.PrimaryID, err = parseU16(caps, primary); err != nil {
		return nil, err
	}
	if d.SecondaryID, err = parseU16(caps, secondary); err != nil {
		return nil, err
	}
	effect, err := parseU16(caps, "effect")
	if err != nil {
		return nil, err
	}

	if p.variants == nil {
		return nil, nil
	}
	table, err := p.variants.VariantTable(ctx, VariantTablePath(d.Category, d.PrimaryID, d.SecondaryID))
	if errors.Is(err, catalog.ErrNotFound) || (err == nil && table == nil) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}

	parts := min(1, table.PartCount())
	if allParts {
		parts = table.PartCount()
	}

	var out []Descriptor
	for part := 0; part < parts; part++ {
		for i, entry := range table.Variants(part) {
			if uint16(entry.VfxID) != effect || i+1 > math.MaxUint8 {
				continue
			}
			v := d
			v.Variant = uint8(i + 1)
			out = append(out, v)
		}
	}
	return out, nil
}
