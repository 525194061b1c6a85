package identify

import (
	"context"
	"testing"

	"path-mapper/feature/catalog"
	"path-mapper/feature/gamepath"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestIdentify(t *testing.T) {
	variants := fakeVariants{
		"chara/weapon/w0201/obj/body/b0017/b0017.imc": {
			PartMask: 1,
			Parts:    [][]catalog.VariantEntry{{{VfxID: 1}, {VfxID: 3}}},
		},
	}
	identifier, _ := newTestIdentifier(t, variants)
	ctx := context.Background()

	tests := []struct {
		name string
		path string
		want []string
	}{
		{
			name: "Equipment Model Covers Every Recolor",
			path: "chara/equipment/e0358/model/c0101e0358_top.mdl",
			want: []string{"Hempen Shirt", "Hempen Shirt of Crafting", "Dyed Hempen Shirt"},
		},
		{
			name: "Equipment Texture Variant",
			path: "chara/equipment/e0358/texture/v02_c0101e0358_top_n.tex",
			want: []string{"Hempen Shirt of Crafting"},
		},
		{
			name: "Equipment Set Only",
			path: "chara/equipment/e0358/e0358.imc",
			want: []string{"Hempen Hat", "Hempen Shirt", "Hempen Shirt of Crafting", "Dyed Hempen Shirt"},
		},
		{
			name: "Back Reference Mismatch",
			path: "chara/equipment/e0358/model/c0101e0359_top.mdl",
			want: []string{},
		},
		{
			name: "Weapon Model",
			path: "chara/weapon/w0201/obj/body/b0017/model/w0201b0017.mdl",
			want: []string{"Bronze Gladius", "Bronze Gladius Replica"},
		},
		{
			name: "Weapon Effect",
			path: "chara/weapon/w0201/obj/body/b0017/vfx/eff/vw0003.avfx",
			want: []string{"Bronze Gladius Replica"},
		},
		{
			name: "Weapon Effect Unused",
			path: "chara/weapon/w0201/obj/body/b0017/vfx/eff/vw0007.avfx",
			want: []string{},
		},
		{
			name: "Monster",
			path: "chara/monster/m0405/obj/body/b0001/texture/v01_m0405b0001_d.tex",
			want: []string{"Battle NPC: wild dodo"},
		},
		{
			name: "DemiHuman",
			path: "chara/demihuman/d1001/obj/equipment/e0001/model/d1001e0001_met.mdl",
			want: []string{"amalj'aa lancer"},
		},
		{
			name: "Map",
			path: "ui/map/s1f1/01/s1f101_m.tex",
			want: []string{"Map: La Noscea - Middle La Noscea (Summerford)"},
		},
		{
			name: "Icon",
			path: "ui/icon/051000/051234.tex",
			want: []string{"Icon: 51234"},
		},
		{
			name: "Catchlight",
			path: "chara/common/texture/catchlight_a.tex",
			want: []string{"All Eyes (Catchlight)"},
		},
		{
			name: "Shared Skin",
			path: "chara/common/texture/skin_m.tex",
			want: []string{"Player Skin Textures"},
		},
		{
			name: "Race Skin",
			path: "chara/human/c1401/obj/body/b0001/texture/--c1401b0001_d.tex",
			want: []string{"Au Ra Female Skin Textures"},
		},
		{
			name: "Face",
			path: "chara/human/c0101/obj/face/f0001/texture/--c0101f0001_fac_d.tex",
			want: []string{"Midlander Male Face (Face) 1"},
		},
		{
			name: "Hair Material",
			path: "chara/human/c0201/obj/hair/h0105/material/v0001/mt_c0201h0105_hir_a.mtrl",
			want: []string{"Midlander Female Hair (Hair) 105"},
		},
		{
			name: "Face Decal",
			path: "chara/common/texture/decal_face/_decal_5.tex",
			want: []string{"Face Decal 5"},
		},
		{
			name: "Equipment Decal",
			path: "chara/common/texture/decal_equip/-decal_12.tex",
			want: []string{"Unknown Customization"},
		},
		{
			name: "Base Skeleton",
			path: "chara/human/c0101/skeleton/base/b0001/skl_c0101b0001.sklb",
			want: []string{"Unknown Customization"},
		},
		{
			name: "Font",
			path: "common/font/AXIS_12_lobby.fdt",
			want: []string{"1 font file"},
		},
		{
			name: "World",
			path: "bg/ffxiv/sea_s1/twn/common/texture/s1t0_a0_flag1_d.tex",
			want: []string{"1 world file"},
		},
		{
			name: "Sound",
			path: "sound/battle/se_battle.scd",
			want: []string{"1 sound file"},
		},
		{
			name: "Unknown",
			path: "foo/bar.xyz",
			want: []string{},
		},
		{
			name: "Action Timeline",
			path: "chara/action/normal/fast_blade.tmb",
			want: []string{"Action: Fast Blade", "Action: Riot Blade"},
		},
		{
			name: "Base Animation",
			path: "chara/human/c0101/animation/a0001/bt_common/normal/Riot_Blade.pap",
			want: []string{"Action: Riot Blade"},
		},
		{
			name: "Unknown Action",
			path: "chara/action/normal/nothing.tmb",
			want: []string{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			res, err := identifier.Identify(ctx, tt.path)
			require.NoError(t, err)
			assert.Equal(t, tt.want, res.Labels())
		})
	}
}

func TestIdentifyInto(t *testing.T) {
	identifier, _ := newTestIdentifier(t, nil)
	ctx := context.Background()

	res := NewResult()
	for _, path := range []string{
		"common/font/AXIS_12_lobby.fdt",
		"ui/icon/051000/051234.tex",
		"common/font/AXIS_18_lobby.fdt",
		"ui/icon/051000/hq/051234.tex",
		"sound/battle/se_battle.scd",
	} {
		require.NoError(t, identifier.IdentifyInto(ctx, res, path))
	}

	assert.Equal(t, []string{"2 font files", "Icon: 51234", "1 sound file"}, res.Labels())
}

func TestIdentifyCatalogFailure(t *testing.T) {
	identifier, db := newTestIdentifier(t, nil)
	sqlDB, err := db.DB()
	require.NoError(t, err)
	require.NoError(t, sqlDB.Close())

	// Tables loaded at startup keep working.
	res, err := identifier.Identify(context.Background(), "chara/weapon/w0201/obj/body/b0017/model/w0201b0017.mdl")
	require.NoError(t, err)
	assert.Equal(t, []string{"Bronze Gladius", "Bronze Gladius Replica"}, res.Labels())

	// Name lookups go back to the catalog.
	_, err = identifier.Identify(context.Background(), "chara/monster/m0405/obj/body/b0001/texture/v01_m0405b0001_d.tex")
	assert.ErrorContains(t, err, "m0405")
}

func TestIdentifierItem(t *testing.T) {
	identifier, _ := newTestIdentifier(t, nil)

	tests := []struct {
		name       string
		set        uint16
		weaponType uint16
		variant    uint16
		slot       gamepath.EquipSlot
		want       string
	}{
		{"Body", 358, 0, 2, gamepath.EquipSlotBody, "Hempen Shirt of Crafting"},
		{"Head", 358, 0, 1, gamepath.EquipSlotHead, "Hempen Hat"},
		{"Weapon", 201, 17, 2, gamepath.EquipSlotMainHand, "Bronze Gladius Replica"},
		{"Missing", 358, 0, 9, gamepath.EquipSlotBody, ""},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			item, ok := identifier.Item(tt.set, tt.weaponType, tt.variant, tt.slot)
			assert.Equal(t, tt.want != "", ok)
			assert.Equal(t, tt.want, item.Name)
		})
	}
}

func TestCustomizationLabel(t *testing.T) {
	tests := []struct {
		name string
		d    gamepath.Descriptor
		want string
	}{
		{"Npc Skin", gamepath.Descriptor{GenderRace: 1404, CustomizationKind: gamepath.CustomizationSkin}, "Au Ra Female (NPC) Skin Textures"},
		{"Player Skin", gamepath.Descriptor{CustomizationKind: gamepath.CustomizationSkin}, "Player Skin Textures"},
		{"Race Iris", gamepath.Descriptor{GenderRace: 801, BodySlot: gamepath.BodySlotFace, CustomizationKind: gamepath.CustomizationIris, PrimaryID: 2}, "Miqo'te Female Face (Iris) 2"},
		{"Unknown Kind", gamepath.Descriptor{GenderRace: 101, BodySlot: gamepath.BodySlotHair}, "Unknown Customization"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, customizationLabel(tt.d))
		})
	}
}
