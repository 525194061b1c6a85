package gamepath

import "strings"

const (
	characterFolder   = "chara"
	equipmentFolder   = "equipment"
	playerFolder      = "human"
	weaponFolder      = "weapon"
	accessoryFolder   = "accessory"
	demiHumanFolder   = "demihuman"
	monsterFolder     = "monster"
	commonFolder      = "common"
	uiFolder          = "ui"
	iconFolder        = "icon"
	loadingFolder     = "loadingimage"
	mapFolder         = "map"
	interfaceFolder   = "uld"
	fontFolder        = "font"
	housingFolder     = "hou"
	vfxFolder         = "vfx"
	worldCommonFolder = "bgcommon"
	worldFolder       = "bg"
)

// Classify infers the category of a path from its first two folders.
// It is total: anything it does not recognize is CategoryUnknown.
func Classify(path string) Category {
	if path == "" {
		return CategoryUnknown
	}

	folders := strings.SplitN(path, "/", 3)
	if len(folders) < 2 {
		return CategoryUnknown
	}

	switch folders[0] {
	case characterFolder:
		switch folders[1] {
		case equipmentFolder:
			return CategoryEquipment
		case accessoryFolder:
			return CategoryAccessory
		case weaponFolder:
			return CategoryWeapon
		case playerFolder, commonFolder:
			return CategoryPlayerCharacter
		case demiHumanFolder:
			return CategoryDemiHuman
		case monsterFolder:
			return CategoryMonster
		}
	case uiFolder:
		switch folders[1] {
		case iconFolder:
			return CategoryIcon
		case loadingFolder:
			return CategoryLoadingScreen
		case mapFolder:
			return CategoryMap
		case interfaceFolder:
			return CategoryInterface
		}
	case commonFolder:
		if folders[1] == fontFolder {
			return CategoryFont
		}
	case housingFolder:
		return CategoryHousing
	case worldCommonFolder:
		if folders[1] == housingFolder {
			return CategoryHousing
		}
		return CategoryWorld
	case worldFolder:
		return CategoryWorld
	case vfxFolder:
		return CategoryVfx
	}

	return CategoryUnknown
}
