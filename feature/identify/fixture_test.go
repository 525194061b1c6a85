package identify

import (
	"context"
	"testing"

	"path-mapper/core/database"
	"path-mapper/feature/catalog"
	"path-mapper/feature/gamepath"
	"path-mapper/feature/index"

	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

type fakeVariants map[string]*catalog.VariantTable

func (f fakeVariants) VariantTable(_ context.Context, path string) (*catalog.VariantTable, error) {
	table, ok := f[path]
	if !ok {
		return nil, catalog.ErrNotFound
	}
	return table, nil
}

// model packs quad fields A, B, C.
func model(a, b, c uint16) uint64 {
	return uint64(a) | uint64(b)<<16 | uint64(c)<<32
}

func seedCatalog(t *testing.T) *gorm.DB {
	t.Helper()
	db, err := database.Connect(database.Config{Driver: "sqlite", Name: ":memory:"})
	require.NoError(t, err)
	sqlDB, err := db.DB()
	require.NoError(t, err)
	t.Cleanup(func() { _ = sqlDB.Close() })
	require.NoError(t, db.AutoMigrate(catalog.Models()...))

	body := uint8(gamepath.EquipSlotBody)
	rows := []any{
		&[]catalog.Item{
			{RowID: 1, Name: "Hempen Shirt", EquipSlotCategory: body, ModelMain: model(358, 1, 0)},
			{RowID: 2, Name: "Hempen Shirt of Crafting", EquipSlotCategory: body, ModelMain: model(358, 2, 0)},
			{RowID: 3, Name: "Dyed Hempen Shirt", EquipSlotCategory: uint8(gamepath.EquipSlotFullBody), ModelMain: model(358, 3, 0)},
			{RowID: 4, Name: "Hempen Hat", EquipSlotCategory: uint8(gamepath.EquipSlotHead), ModelMain: model(358, 1, 0)},
			{RowID: 5, Name: "Bronze Gladius", EquipSlotCategory: uint8(gamepath.EquipSlotMainHand), ModelMain: model(201, 17, 1)},
			{RowID: 6, Name: "Bronze Gladius Replica", EquipSlotCategory: uint8(gamepath.EquipSlotMainHand), ModelMain: model(201, 17, 2)},
		},
		&[]catalog.Action{
			{RowID: 1, Name: "Fast Blade", AnimationEndKey: "normal/fast_blade"},
			{RowID: 2, Name: "Riot Blade", AnimationEndKey: "normal/riot_blade", HitKey: "normal/fast_blade"},
		},
		&[]catalog.ModelChara{
			{RowID: 10, Type: catalog.ModelTypeMonster, Model: 405},
			{RowID: 12, Type: catalog.ModelTypeDemiHuman, Model: 1001},
		},
		&[]catalog.BNpcBase{
			{RowID: 100, ModelChara: 10},
			{RowID: 102, ModelChara: 12},
		},
		&[]catalog.BNpcName{
			{RowID: 1000, Singular: "wild dodo"},
			{RowID: 1002, Singular: "amalj'aa lancer"},
		},
		&[]catalog.Map{
			{RowID: 1, MapID: "s1f1/01", PlaceNameRegion: 1, PlaceName: 2, PlaceNameSub: 3},
		},
		&[]catalog.PlaceName{
			{RowID: 1, Name: "La Noscea"},
			{RowID: 2, Name: "Middle La Noscea"},
			{RowID: 3, Name: "Summerford"},
		},
	}
	for _, r := range rows {
		require.NoError(t, db.Create(r).Error)
	}
	return db
}

func testLinks() []catalog.BNpcLink {
	return []catalog.BNpcLink{
		{BNpcBase: 100, BNpcName: 1000},
		{BNpcBase: 102, BNpcName: 1002},
	}
}

// newTestIdentifier builds an identifier over the seeded catalog. The returned
// database can be closed to simulate catalog failures after startup.
func newTestIdentifier(t *testing.T, variants gamepath.VariantSource) (*Identifier, *gorm.DB) {
	t.Helper()
	db := seedCatalog(t)
	ix, err := index.Build(context.Background(), catalog.NewSource(db, nil, "", ""), testLinks(), nil)
	require.NoError(t, err)
	return NewIdentifier(gamepath.NewParser(variants, nil), ix, nil), db
}
