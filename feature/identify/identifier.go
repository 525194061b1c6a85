package identify

import (
	"context"
	"fmt"

	"path-mapper/feature/catalog"
	"path-mapper/feature/gamepath"
	"path-mapper/feature/index"

	"go.uber.org/zap"
)

// Identifier resolves game paths to the labels of the entities they affect.
type Identifier struct {
	parser *gamepath.Parser
	index  *index.Index
	logger *zap.Logger
}

// NewIdentifier creates an Identifier over a built index.
func NewIdentifier(parser *gamepath.Parser, ix *index.Index, logger *zap.Logger) *Identifier {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Identifier{
		parser: parser,
		index:  ix,
		logger: logger,
	}
}

// Identify returns the labels of a single path.
func (id *Identifier) Identify(ctx context.Context, path string) (*Result, error) {
	res := NewResult()
	if err := id.IdentifyInto(ctx, res, path); err != nil {
		return nil, err
	}
	return res, nil
}

// IdentifyInto adds the labels of path to res. Calling it for several paths
// accumulates their labels and counters into one result.
func (id *Identifier) IdentifyInto(ctx context.Context, res *Result, path string) error {
	if gamepath.IsActionPath(path) {
		id.identifyAction(res, path)
		return nil
	}

	for _, d := range id.parser.Parse(ctx, path) {
		if err := id.resolve(ctx, res, d); err != nil {
			return fmt.Errorf("failed to identify %s: %w", path, err)
		}
	}
	return nil
}

// Item looks up a single item by set id, weapon type, variant and slot.
func (id *Identifier) Item(set, weaponType, variant uint16, slot gamepath.EquipSlot) (catalog.Item, bool) {
	return id.index.Item(set, weaponType, variant, slot)
}

func (id *Identifier) identifyAction(res *Result, path string) {
	key := gamepath.ActionKey(path)
	if key == "" {
		return
	}
	for _, action := range id.index.Actions(key) {
		res.Add("Action: " + action.Name)
	}
}

func (id *Identifier) resolve(ctx context.Context, res *Result, d gamepath.Descriptor) error {
	switch d.Category {
	case gamepath.CategoryUnknown:
		if name := unstructuredName(d.ExtensionKind); name != "" {
			res.Count(name)
		}
		return nil
	case gamepath.CategoryLoadingScreen:
		res.Count("loading screen")
		return nil
	case gamepath.CategoryInterface, gamepath.CategoryVfx, gamepath.CategoryWorld,
		gamepath.CategoryHousing, gamepath.CategoryFont:
		res.Count(lowerName(d.Category))
		return nil
	}

	if !d.Matched {
		return nil
	}

	var (
		names []string
		err   error
	)
	switch d.Category {
	case gamepath.CategoryEquipment, gamepath.CategoryAccessory:
		for _, item := range id.index.Equipment(d) {
			names = append(names, item.Name)
		}
	case gamepath.CategoryWeapon:
		for _, item := range id.index.Weapons(d) {
			names = append(names, item.Name)
		}
	case gamepath.CategoryMonster:
		names, err = id.index.MonsterNames(ctx, d.PrimaryID)
	case gamepath.CategoryDemiHuman:
		names, err = id.index.DemiHumanNames(ctx, d.PrimaryID)
	case gamepath.CategoryMap:
		names, err = id.index.MapNames(ctx, d)
	case gamepath.CategoryIcon:
		names = []string{fmt.Sprintf("Icon: %d", d.IconID)}
	case gamepath.CategoryPlayerCharacter:
		names = []string{customizationLabel(d)}
	}
	if err != nil {
		return err
	}

	for _, name := range names {
		res.Add(name)
	}
	return nil
}

// unstructuredName names the counter for files outside any known category.
func unstructuredName(ext gamepath.ExtensionKind) string {
	switch ext {
	case gamepath.ExtSound:
		return "sound"
	case gamepath.ExtAnimation, gamepath.ExtPap:
		return "animation"
	case gamepath.ExtShader:
		return "shader"
	default:
		return ""
	}
}

func lowerName(c gamepath.Category) string {
	switch c {
	case gamepath.CategoryInterface:
		return "interface"
	case gamepath.CategoryVfx:
		return "vfx"
	case gamepath.CategoryWorld:
		return "world"
	case gamepath.CategoryHousing:
		return "housing"
	case gamepath.CategoryFont:
		return "font"
	default:
		return c.String()
	}
}

func customizationLabel(d gamepath.Descriptor) string {
	gender, race := d.GenderRace.Split()

	switch {
	case d.CustomizationKind == gamepath.CustomizationSkin:
		prefix := "Player "
		if gender != gamepath.GenderUnknown {
			prefix = gender.Name() + " "
		}
		if race != gamepath.ModelRaceUnknown {
			prefix = race.Name() + " " + prefix
		}
		return prefix + "Skin Textures"
	case d.CustomizationKind == gamepath.CustomizationDecalFace:
		return fmt.Sprintf("Face Decal %d", d.PrimaryID)
	case d.CustomizationKind == gamepath.CustomizationIris && race == gamepath.ModelRaceUnknown:
		return "All Eyes (Catchlight)"
	case race == gamepath.ModelRaceUnknown,
		d.BodySlot == gamepath.BodySlotUnknown,
		d.CustomizationKind == gamepath.CustomizationUnknown:
		return "Unknown Customization"
	default:
		return fmt.Sprintf("%s %s %s (%s) %d", race.Name(), gender.Name(), d.BodySlot, d.CustomizationKind, d.PrimaryID)
	}
}
