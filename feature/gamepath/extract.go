package gamepath

import (
	"context"
	"errors"
	"fmt"
	"strconv"

	"path-mapper/core/logger"
	"path-mapper/feature/catalog"

	"go.uber.org/zap"
)

// ErrMalformedCapture is returned when a matched field cannot be converted, such as a
// numeric overflow or a suffix missing from the lookup tables.
var ErrMalformedCapture = errors.New("malformed capture")

// VariantSource fetches per-object variant tables. catalog.Provider satisfies it.
type VariantSource interface {
	VariantTable(ctx context.Context, path string) (*catalog.VariantTable, error)
}

// Parser turns game paths into descriptors.
type Parser struct {
	variants VariantSource
	logger   *zap.Logger
}

// NewParser creates a Parser. variants may be nil, in which case vfx effect paths
// never expand to any descriptor.
func NewParser(variants VariantSource, logger *zap.Logger) *Parser {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Parser{
		variants: variants,
		logger:   logger,
	}
}

// Parse returns the descriptors for a path.
//
// A path matching no pattern yields a single descriptor with only ExtensionKind and
// Category set. Vfx effect paths yield one descriptor per matching variant, possibly none.
// Malformed captures are logged and treated as no match.
func (p *Parser) Parse(ctx context.Context, path string) []Descriptor {
	out, err := p.Extract(ctx, path)
	if err != nil {
		logger.WithPath(p.logger, path).Warn("Could not parse path", zap.Error(err))
		return []Descriptor{{ExtensionKind: ExtensionKindOf(path), Category: Classify(path)}}
	}
	return out
}

// Extract is Parse without error recovery.
func (p *Parser) Extract(ctx context.Context, path string) ([]Descriptor, error) {
	d := Descriptor{ExtensionKind: ExtensionKindOf(path), Category: Classify(path)}

	_, caps, ok := MatchPattern(d.ExtensionKind, d.Category, path)
	if !ok {
		return []Descriptor{d}, nil
	}
	d.Matched = true

	if d.ExtensionKind == ExtVfx {
		switch d.Category {
		case CategoryWeapon, CategoryMonster, CategoryDemiHuman:
			return p.expandEffects(ctx, d, caps)
		}
	}

	var err error
	switch d.Category {
	case CategoryEquipment, CategoryAccessory:
		err = extractEquipment(&d, caps)
	case CategoryWeapon:
		err = extractTwoPart(&d, caps, "id", "weapon")
	case CategoryMonster:
		err = extractTwoPart(&d, caps, "monster", "id")
	case CategoryDemiHuman:
		err = extractDemiHuman(&d, caps)
	case CategoryPlayerCharacter:
		err = extractCustomization(&d, caps)
	case CategoryIcon:
		err = extractIcon(&d, caps)
	case CategoryMap:
		err = extractMap(&d, caps)
	}
	if err != nil {
		return nil, err
	}
	return []Descriptor{d}, nil
}

func extractEquipment(d *Descriptor, caps Captures) error {
	id, err := parseU16(caps, "id")
	if err != nil {
		return err
	}
	d.PrimaryID = id
	if d.ExtensionKind == ExtImc {
		return nil
	}

	d.GenderRace = GenderRaceFromCode(caps.Get("race"))
	slot, ok := EquipSlotFromSuffix(caps.Get("slot"))
	if !ok {
		return malformed("slot", caps.Get("slot"), nil)
	}
	d.EquipSlot = slot
	if d.ExtensionKind == ExtModel {
		return nil
	}

	d.Variant, err = parseU8(caps, "variant")
	return err
}

func extractTwoPart(d *Descriptor, caps Captures, primary, secondary string) error {
	var err error
	if d.PrimaryID, err = parseU16(caps, primary); err != nil {
		return err
	}
	if d.SecondaryID, err = parseU16(caps, secondary); err != nil {
		return err
	}
	switch d.ExtensionKind {
	case ExtImc, ExtModel, ExtSkeleton:
		return nil
	}

	d.Variant, err = parseU8(caps, "variant")
	return err
}

func extractDemiHuman(d *Descriptor, caps Captures) error {
	var err error
	if d.PrimaryID, err = parseU16(caps, "id"); err != nil {
		return err
	}
	if d.SecondaryID, err = parseU16(caps, "equip"); err != nil {
		return err
	}
	switch d.ExtensionKind {
	case ExtImc, ExtSkeleton:
		return nil
	}

	slot, ok := EquipSlotFromSuffix(caps.Get("slot"))
	if !ok {
		return malformed("slot", caps.Get("slot"), nil)
	}
	d.EquipSlot = slot
	if d.ExtensionKind == ExtModel {
		return nil
	}

	d.Variant, err = parseU8(caps, "variant")
	return err
}

func extractCustomization(d *Descriptor, caps Captures) error {
	if caps.Has("catchlight") {
		d.CustomizationKind = CustomizationIris
		return nil
	}
	if caps.Has("skin") {
		d.CustomizationKind = CustomizationSkin
		return nil
	}

	id, err := parseU16(caps, "id")
	if err != nil {
		return err
	}
	d.PrimaryID = id

	if caps.Has("location") {
		switch caps.Get("location") {
		case "face":
			d.CustomizationKind = CustomizationDecalFace
		case "equip":
			d.CustomizationKind = CustomizationDecalEquip
		}
		return nil
	}

	d.GenderRace = GenderRaceFromCode(caps.Get("race"))
	bodySlot, ok := stringToBodySlot[caps.Get("type")]
	if d.ExtensionKind == ExtSkeleton {
		// Skeleton folders such as "base" are not body slots; they stay Unknown.
		d.BodySlot = bodySlot
		d.CustomizationKind = customizationFromBodySlot(bodySlot)
		return nil
	}
	if !ok {
		return malformed("type", caps.Get("type"), nil)
	}
	d.BodySlot = bodySlot

	d.CustomizationKind = CustomizationSkin
	if caps.Has("slot") {
		kind, ok := suffixToCustomization[caps.Get("slot")]
		if !ok {
			return malformed("slot", caps.Get("slot"), nil)
		}
		d.CustomizationKind = kind
	}

	if d.ExtensionKind == ExtMaterial && caps.Has("variant") {
		d.Variant, err = parseU8(caps, "variant")
	}
	return err
}

func extractIcon(d *Descriptor, caps Captures) error {
	id, err := parseU32(caps, "id")
	if err != nil {
		return err
	}
	d.IconID = id
	d.HighQuality = caps.Has("hq")
	d.HighResolution = caps.Has("hr")

	if caps.Has("lang") {
		d.Language = languageFromCode(caps.Get("lang"))
	}
	return nil
}

func extractMap(d *Descriptor, caps Captures) error {
	id := caps.Get("id")
	if len(id) != len(d.MapID) {
		return malformed("id", id, nil)
	}
	copy(d.MapID[:], id)

	variant, err := parseU8(caps, "variant")
	if err != nil {
		return err
	}
	d.Variant = variant

	if suffix := caps.Get("suffix"); suffix != "" {
		d.MapSuffix = suffix[0]
	}
	return nil
}

func parseU8(caps Captures, name string) (uint8, error) {
	v, err := strconv.ParseUint(caps.Get(name), 10, 8)
	if err != nil {
		return 0, malformed(name, caps.Get(name), err)
	}
	return uint8(v), nil
}

func parseU16(caps Captures, name string) (uint16, error) {
	v, err := strconv.ParseUint(caps.Get(name), 10, 16)
	if err != nil {
		return 0, malformed(name, caps.Get(name), err)
	}
	return uint16(v), nil
}

func parseU32(caps Captures, name string) (uint32, error) {
	v, err := strconv.ParseUint(caps.Get(name), 10, 32)
	if err != nil {
		return 0, malformed(name, caps.Get(name), err)
	}
	return uint32(v), nil
}

func malformed(field, value string, cause error) error {
	if cause == nil {
		return fmt.Errorf("%w: %s=%q", ErrMalformedCapture, field, value)
	}
	return fmt.Errorf("%w: %s=%q: %w", ErrMalformedCapture, field, value, cause)
}
