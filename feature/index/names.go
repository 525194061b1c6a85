package index

import (
	"context"
	"strings"

	"path-mapper/feature/catalog"
	"path-mapper/feature/gamepath"
)

// monsterMinionThreshold separates battle NPC monster models from minion models.
const monsterMinionThreshold = 8000

// MonsterNames returns "Battle NPC: <name>" labels for monster models below 8000 and
// "Minion: <name>" labels for the rest.
func (ix *Index) MonsterNames(ctx context.Context, id uint16) ([]string, error) {
	return ix.monsters.get(ctx, id, func(ctx context.Context) ([]string, error) {
		var names []string
		for _, mc := range ix.modelCharas {
			if mc.Type != catalog.ModelTypeMonster || mc.Model != id {
				continue
			}

			if id < monsterMinionThreshold {
				for _, base := range ix.bnpcBases {
					if base.ModelChara != mc.RowID {
						continue
					}
					found, err := ix.battleNpcNames(ctx, base.RowID)
					if err != nil {
						return nil, err
					}
					for _, name := range found {
						names = appendUnique(names, "Battle NPC: "+name)
					}
				}
				continue
			}

			for _, companion := range ix.companions {
				if companion.Model != mc.RowID {
					continue
				}
				if name := strings.TrimSpace(companion.Singular); name != "" {
					names = appendUnique(names, "Minion: "+name)
				}
			}
		}
		return names, nil
	})
}

// DemiHumanNames returns the battle NPC names using a demihuman model.
func (ix *Index) DemiHumanNames(ctx context.Context, id uint16) ([]string, error) {
	return ix.demihumans.get(ctx, id, func(ctx context.Context) ([]string, error) {
		var names []string
		for _, base := range ix.bnpcBases {
			mc, ok := ix.modelCharaRow[base.ModelChara]
			if !ok || mc.Type != catalog.ModelTypeDemiHuman || mc.Model != id {
				continue
			}
			found, err := ix.battleNpcNames(ctx, base.RowID)
			if err != nil {
				return nil, err
			}
			for _, name := range found {
				names = appendUnique(names, name)
			}
		}
		return names, nil
	})
}

// battleNpcNames resolves the non-empty names linked to a battle NPC base.
func (ix *Index) battleNpcNames(ctx context.Context, baseID uint32) ([]string, error) {
	var names []string
	for _, nameID := range ix.bnpcNames[baseID] {
		var row catalog.BNpcName
		found, err := ix.provider.RowByKey(ctx, &row, nameID)
		if err != nil {
			return nil, err
		}
		if !found {
			continue
		}
		if name := strings.TrimSpace(row.Singular); name != "" {
			names = append(names, name)
		}
	}
	return names, nil
}

// MapNames returns "Map: Region - Place (Sub)" labels for the maps a descriptor names.
func (ix *Index) MapNames(ctx context.Context, d gamepath.Descriptor) ([]string, error) {
	key := d.MapKey()
	return ix.mapNames.get(ctx, key, func(context.Context) ([]string, error) {
		var names []string
		for _, m := range ix.maps {
			if m.MapID != key {
				continue
			}
			label := formatMapName(
				ix.placeName(m.PlaceNameRegion),
				ix.placeName(m.PlaceName),
				ix.placeName(m.PlaceNameSub),
			)
			if label != "" {
				names = appendUnique(names, "Map: "+label)
			}
		}
		return names, nil
	})
}

func (ix *Index) placeName(id uint32) string {
	return strings.TrimSpace(ix.placeNames[id])
}

// formatMapName joins region and place with " - " and appends the sub place in
// parentheses when it differs from the place.
func formatMapName(region, place, sub string) string {
	var sb strings.Builder
	if region != "" {
		sb.WriteString(region)
	}
	if place != "" {
		if sb.Len() > 0 {
			sb.WriteString(" - ")
		}
		sb.WriteString(place)
	}
	if sub != "" && sub != place {
		if sb.Len() == 0 {
			sb.WriteString(sub)
		} else {
			sb.WriteString(" (" + sub + ")")
		}
	}
	return sb.String()
}

func appendUnique(list []string, s string) []string {
	for _, existing := range list {
		if existing == s {
			return list
		}
	}
	return append(list, s)
}
