package index

import (
	"context"
	"fmt"
	"strings"

	"path-mapper/feature/catalog"
	"path-mapper/feature/gamepath"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
)

// Index holds the frozen entity tables and the lazily filled name caches.
type Index struct {
	provider catalog.Provider
	logger   *zap.Logger

	equipment *Table
	weapons   *Table
	actions   map[string][]catalog.Action

	modelCharas   []catalog.ModelChara
	modelCharaRow map[uint32]catalog.ModelChara
	bnpcBases     []catalog.BNpcBase
	companions    []catalog.Companion
	maps          []catalog.Map
	placeNames    map[uint32]string
	bnpcNames     map[uint32][]uint32

	monsters   *memo[uint16]
	demihumans *memo[uint16]
	mapNames   *memo[string]
}

// sheets is the catalog snapshot taken at startup.
type sheets struct {
	items       []catalog.Item
	actions     []catalog.Action
	modelCharas []catalog.ModelChara
	bnpcBases   []catalog.BNpcBase
	companions  []catalog.Companion
	maps        []catalog.Map
	placeNames  []catalog.PlaceName
}

// Build enumerates every catalog sheet concurrently and builds the index.
// Any enumeration failure aborts the build.
func Build(ctx context.Context, provider catalog.Provider, links []catalog.BNpcLink, logger *zap.Logger) (*Index, error) {
	if logger == nil {
		logger = zap.NewNop()
	}

	var s sheets
	g, gctx := errgroup.WithContext(ctx)
	for _, dst := range []any{
		&s.items, &s.actions, &s.modelCharas, &s.bnpcBases,
		&s.companions, &s.maps, &s.placeNames,
	} {
		dst := dst
		g.Go(func() error {
			return provider.Enumerate(gctx, dst)
		})
	}
	if err := g.Wait(); err != nil {
		return nil, fmt.Errorf("failed to load catalog: %w", err)
	}

	ix := &Index{
		provider:      provider,
		logger:        logger,
		actions:       buildActions(s.actions),
		modelCharas:   s.modelCharas,
		modelCharaRow: make(map[uint32]catalog.ModelChara, len(s.modelCharas)),
		bnpcBases:     s.bnpcBases,
		companions:    s.companions,
		maps:          s.maps,
		placeNames:    make(map[uint32]string, len(s.placeNames)),
		bnpcNames:     catalog.LinksByBase(links),
		monsters:      newMemo[uint16](),
		demihumans:    newMemo[uint16](),
		mapNames:      newMemo[string](),
	}
	for _, mc := range s.modelCharas {
		ix.modelCharaRow[mc.RowID] = mc
	}
	for _, pn := range s.placeNames {
		ix.placeNames[pn.RowID] = pn.Name
	}
	ix.equipment, ix.weapons = buildItemTables(s.items)

	logger.Info("Catalog index built",
		zap.Int("items", len(s.items)),
		zap.Int("equipment_keys", ix.equipment.Len()),
		zap.Int("weapon_keys", ix.weapons.Len()),
		zap.Int("action_keys", len(ix.actions)),
		zap.Int("bnpc_links", len(links)),
	)
	return ix, nil
}

func buildItemTables(items []catalog.Item) (*Table, *Table) {
	equipment, weapons := newTableBuilder(), newTableBuilder()
	for _, item := range items {
		slot := gamepath.EquipSlot(item.EquipSlotCategory)
		switch {
		case slot.IsWeapon():
			if item.ModelMain != 0 {
				weapons.add(WeaponKey(item.ModelMain), item)
			}
			if item.ModelSub != 0 {
				weapons.add(WeaponKey(item.ModelSub), item)
			}
		case slot.IsEquipment():
			equipment.add(EquipmentKey(item), item)
		}
	}
	return equipment.build(), weapons.build()
}

// EquipmentKey is (model set, slot, variant) of an equipment or accessory item.
func EquipmentKey(item catalog.Item) Key {
	q := catalog.QuadOf(item.ModelMain)
	slot := gamepath.EquipSlot(item.EquipSlotCategory).ToSlot()
	return NewKey(q.A, uint16(slot), q.B)
}

// WeaponKey is (model set, weapon body, variant) of a main or off hand model value.
func WeaponKey(model uint64) Key {
	q := catalog.QuadOf(model)
	return NewKey(q.A, q.B, q.C)
}

func buildActions(actions []catalog.Action) map[string][]catalog.Action {
	out := make(map[string][]catalog.Action)
	add := func(key string, action catalog.Action) {
		if key == "" {
			return
		}
		key = strings.ToLower(key)
		for _, existing := range out[key] {
			if existing.RowID == action.RowID {
				return
			}
		}
		out[key] = append(out[key], action)
	}

	for _, a := range actions {
		if a.Name == "" {
			continue
		}
		add(a.AnimationStartKey, a)
		add(a.AnimationEndKey, a)
		add(a.HitKey, a)
	}
	return out
}

// Equipment returns the equipment and accessory items a descriptor can refer to.
// An unset slot or variant widens the match to every slot or variant of the set.
func (ix *Index) Equipment(d gamepath.Descriptor) []catalog.Item {
	key, mask := Query(d.PrimaryID, uint16(d.EquipSlot.ToSlot()), uint16(d.Variant))
	return ix.equipment.Lookup(key, mask)
}

// Weapons returns the weapons a descriptor can refer to.
func (ix *Index) Weapons(d gamepath.Descriptor) []catalog.Item {
	key, mask := Query(d.PrimaryID, d.SecondaryID, uint16(d.Variant))
	return ix.weapons.Lookup(key, mask)
}

// Actions returns the named actions whose animations use key.
func (ix *Index) Actions(key string) []catalog.Action {
	return ix.actions[strings.ToLower(key)]
}

// Item looks up a single item by exact set id, weapon type (weapons only), variant
// and slot. Main and off hand slots search the weapon table.
func (ix *Index) Item(set, weaponType, variant uint16, slot gamepath.EquipSlot) (catalog.Item, bool) {
	switch slot {
	case gamepath.EquipSlotMainHand, gamepath.EquipSlotOffHand:
		return ix.weapons.First(NewKey(set, weaponType, variant))
	default:
		return ix.equipment.First(NewKey(set, uint16(slot.ToSlot()), variant))
	}
}
