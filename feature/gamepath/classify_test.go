package gamepath

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestClassify(t *testing.T) {
	tests := []struct {
		path string
		want Category
	}{
		{"", CategoryUnknown},
		{"chara", CategoryUnknown},
		{"chara/equipment/e0358/model/c0101e0358_top.mdl", CategoryEquipment},
		{"chara/accessory/a0010/a0010.imc", CategoryAccessory},
		{"chara/weapon/w2001/obj/body/b0017/model/w2001b0017.mdl", CategoryWeapon},
		{"chara/human/c0101/obj/face/f0001/model/c0101f0001_fac.mdl", CategoryPlayerCharacter},
		{"chara/common/texture/catchlight_a.tex", CategoryPlayerCharacter},
		{"chara/demihuman/d1001/obj/equipment/e0001/e0001.imc", CategoryDemiHuman},
		{"chara/monster/m0405/obj/body/b0001/b0001.imc", CategoryMonster},
		{"chara/action/ability/abl001.tmb", CategoryUnknown},
		{"ui/icon/051000/051234.tex", CategoryIcon},
		{"ui/loadingimage/-nowloading_base01.tex", CategoryLoadingScreen},
		{"ui/map/s1f1/01/s1f101_m.tex", CategoryMap},
		{"ui/uld/icona_frame.tex", CategoryInterface},
		{"ui/unknown/file.tex", CategoryUnknown},
		{"common/font/AXIS_12.fdt", CategoryFont},
		{"common/graphics/texture/dummy.tex", CategoryUnknown},
		{"hou/indoor/general/0001/texture/fun_b0_m0001_0a_d.tex", CategoryHousing},
		{"bgcommon/hou/indoor/general/0001/bgparts/fun_b0_m0001.mdl", CategoryHousing},
		{"bgcommon/world/sys/shared/texture/dummy.tex", CategoryWorld},
		{"bg/ffxiv/sea_s1/twn/s1t1/level/planmap.lgb", CategoryWorld},
		{"vfx/common/eff/cmrz_ok0h.avfx", CategoryVfx},
		{"foo/bar.xyz", CategoryUnknown},
	}

	for _, tt := range tests {
		t.Run(tt.path, func(t *testing.T) {
			assert.Equal(t, tt.want, Classify(tt.path))
		})
	}
}

func TestExtensionKindOf(t *testing.T) {
	tests := []struct {
		path string
		want ExtensionKind
	}{
		{"a/b.mdl", ExtModel},
		{"a/b.tex", ExtTexture},
		{"a/b.mtrl", ExtMaterial},
		{"a/b.atex", ExtAnimation},
		{"a/b.avfx", ExtVfx},
		{"a/b.scd", ExtSound},
		{"a/b.imc", ExtImc},
		{"a/b.pap", ExtPap},
		{"a/b.eqdp", ExtMetaInfo},
		{"a/b.shpk", ExtShader},
		{"a/b.fdt", ExtFont},
		{"a/b.envb", ExtEnvironment},
		{"a/b.sklb", ExtSkeleton},
		{"a/b.skp", ExtSkeletonParameter},
		{"a/b.eid", ExtElementID},
		{"a/b.phyb", ExtSkeletonPhysicsBinary},
		{"a/b.xyz", ExtUnknown},
		{"a/noext", ExtUnknown},
		{"a.b/c.tmb", ExtUnknown},
	}

	for _, tt := range tests {
		t.Run(tt.path, func(t *testing.T) {
			assert.Equal(t, tt.want, ExtensionKindOf(tt.path))
		})
	}

	assert.Equal(t, "", Extension("no/dot/here"))
	assert.Equal(t, ".tex", Extension("ui/icon/051000/051234.tex"))
}

func TestGenderRace(t *testing.T) {
	t.Run("Known Codes", func(t *testing.T) {
		tests := []struct {
			code   string
			gender Gender
			race   ModelRace
		}{
			{"0101", GenderMale, ModelRaceMidlander},
			{"0201", GenderFemale, ModelRaceMidlander},
			{"0104", GenderMaleNpc, ModelRaceMidlander},
			{"0301", GenderMale, ModelRaceHighlander},
			{"0501", GenderMale, ModelRaceElezen},
			{"0801", GenderFemale, ModelRaceMiqote},
			{"0901", GenderMale, ModelRaceRoegadyn},
			{"1101", GenderMale, ModelRaceLalafell},
			{"1404", GenderFemaleNpc, ModelRaceAuRa},
			{"1501", GenderMale, ModelRaceHrothgar},
			{"1801", GenderFemale, ModelRaceViera},
		}
		for _, tt := range tests {
			gr := GenderRaceFromCode(tt.code)
			g, r := gr.Split()
			assert.Equal(t, tt.gender, g, tt.code)
			assert.Equal(t, tt.race, r, tt.code)
			assert.Equal(t, tt.code, gr.Code())
		}
	})

	t.Run("Invalid Codes", func(t *testing.T) {
		for _, code := range []string{"", "abcd", "0000", "0103", "1901", "99999"} {
			assert.Equal(t, GenderRace(0), GenderRaceFromCode(code), code)
		}
	})

	t.Run("Npc Only Sets", func(t *testing.T) {
		gr := GenderRaceFromCode("9104")
		assert.Equal(t, GenderRace(9104), gr)
		g, r := gr.Split()
		assert.Equal(t, GenderMaleNpc, g)
		assert.Equal(t, ModelRaceUnknown, r)
	})

	t.Run("Names", func(t *testing.T) {
		assert.Equal(t, "Miqo'te", ModelRaceMiqote.Name())
		assert.Equal(t, "Au Ra", ModelRaceAuRa.Name())
		assert.Equal(t, "Elezen", ModelRaceElezen.Name())
		assert.Equal(t, "Female (NPC)", GenderFemaleNpc.Name())
	})
}

func TestEquipSlot(t *testing.T) {
	t.Run("ToSlot", func(t *testing.T) {
		assert.Equal(t, EquipSlotBody, EquipSlotFullBody.ToSlot())
		assert.Equal(t, EquipSlotBody, EquipSlotChestHands.ToSlot())
		assert.Equal(t, EquipSlotLegs, EquipSlotLegsFeet.ToSlot())
		assert.Equal(t, EquipSlotRFinger, EquipSlotLFinger.ToSlot())
		assert.Equal(t, EquipSlotMainHand, EquipSlotBothHand.ToSlot())
		assert.Equal(t, EquipSlotUnknown, EquipSlotUnknown.ToSlot())
	})

	t.Run("Lookups", func(t *testing.T) {
		slot, ok := EquipSlotFromSuffix("top")
		assert.True(t, ok)
		assert.Equal(t, EquipSlotBody, slot)

		_, ok = EquipSlotFromSuffix("xyz")
		assert.False(t, ok)

		slot, ok = EquipSlotFromName("mainhand")
		assert.True(t, ok)
		assert.Equal(t, EquipSlotMainHand, slot)

		_, ok = EquipSlotFromName("tail")
		assert.False(t, ok)
	})

	t.Run("Kinds", func(t *testing.T) {
		assert.True(t, EquipSlotBothHand.IsWeapon())
		assert.False(t, EquipSlotBody.IsWeapon())
		assert.True(t, EquipSlotNeck.IsEquipment())
		assert.False(t, EquipSlotSoulCrystal.IsEquipment())
		assert.False(t, EquipSlotLFinger.IsEquipment())
		assert.False(t, EquipSlotChestHands.IsEquipment())
	})
}
