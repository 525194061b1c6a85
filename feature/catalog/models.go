package catalog

// Item is a row of the Item sheet. ModelMain and ModelSub pack up to four
// 16-bit model fields, see Quad.
type Item struct {
	RowID             uint32 `gorm:"column:row_id;primaryKey"`
	Name              string `gorm:"column:name"`
	EquipSlotCategory uint8  `gorm:"column:equip_slot_category"`
	ModelMain         uint64 `gorm:"column:model_main"`
	ModelSub          uint64 `gorm:"column:model_sub"`
}

func (Item) TableName() string { return "items" }

// Action is a row of the Action sheet with its timeline keys already resolved.
type Action struct {
	RowID             uint32 `gorm:"column:row_id;primaryKey"`
	Name              string `gorm:"column:name"`
	AnimationStartKey string `gorm:"column:animation_start_key"`
	AnimationEndKey   string `gorm:"column:animation_end_key"`
	HitKey            string `gorm:"column:hit_key"`
}

func (Action) TableName() string { return "actions" }

// ModelChara maps a model type and id to a row referenced by NPCs and companions.
// Type 2 is a demihuman, type 3 a monster.
type ModelChara struct {
	RowID uint32 `gorm:"column:row_id;primaryKey"`
	Type  uint8  `gorm:"column:type"`
	Model uint16 `gorm:"column:model"`
}

func (ModelChara) TableName() string { return "model_charas" }

const (
	ModelTypeDemiHuman uint8 = 2
	ModelTypeMonster   uint8 = 3
)

// BNpcBase is a battle NPC base row.
type BNpcBase struct {
	RowID      uint32 `gorm:"column:row_id;primaryKey"`
	ModelChara uint32 `gorm:"column:model_chara"`
}

func (BNpcBase) TableName() string { return "bnpc_bases" }

// BNpcName is a battle NPC name row.
type BNpcName struct {
	RowID    uint32 `gorm:"column:row_id;primaryKey"`
	Singular string `gorm:"column:singular"`
}

func (BNpcName) TableName() string { return "bnpc_names" }

// Companion is a minion row.
type Companion struct {
	RowID    uint32 `gorm:"column:row_id;primaryKey"`
	Singular string `gorm:"column:singular"`
	Model    uint32 `gorm:"column:model"`
}

func (Companion) TableName() string { return "companions" }

// Map is a row of the Map sheet. MapID has the form "s1f1/01".
type Map struct {
	RowID           uint32 `gorm:"column:row_id;primaryKey"`
	MapID           string `gorm:"column:map_id;index"`
	PlaceNameRegion uint32 `gorm:"column:place_name_region"`
	PlaceName       uint32 `gorm:"column:place_name"`
	PlaceNameSub    uint32 `gorm:"column:place_name_sub"`
}

func (Map) TableName() string { return "maps" }

// PlaceName is a row of the PlaceName sheet.
type PlaceName struct {
	RowID uint32 `gorm:"column:row_id;primaryKey"`
	Name  string `gorm:"column:name"`
}

func (PlaceName) TableName() string { return "place_names" }

// Models lists every sheet model. Tests and the integrity check migrate or inspect all of them.
func Models() []any {
	return []any{
		&Item{}, &Action{}, &ModelChara{}, &BNpcBase{}, &BNpcName{},
		&Companion{}, &Map{}, &PlaceName{},
	}
}

// Quad splits a packed model value into its four 16-bit fields, lowest first.
type Quad struct {
	A, B, C, D uint16
}

// QuadOf unpacks a model value.
func QuadOf(v uint64) Quad {
	return Quad{
		A: uint16(v),
		B: uint16(v >> 16),
		C: uint16(v >> 32),
		D: uint16(v >> 48),
	}
}
