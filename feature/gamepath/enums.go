package gamepath

// Category is the coarse classification of the object a path belongs to.
type Category uint8

const (
	CategoryUnknown Category = iota
	CategoryEquipment
	CategoryAccessory
	CategoryWeapon
	CategoryPlayerCharacter
	CategoryDemiHuman
	CategoryMonster
	CategoryIcon
	CategoryMap
	CategoryLoadingScreen
	CategoryInterface
	CategoryFont
	CategoryHousing
	CategoryWorld
	CategoryVfx
)

// String returns the category name.
func (c Category) String() string {
	switch c {
	case CategoryEquipment:
		return "Equipment"
	case CategoryAccessory:
		return "Accessory"
	case CategoryWeapon:
		return "Weapon"
	case CategoryPlayerCharacter:
		return "PlayerCharacter"
	case CategoryDemiHuman:
		return "DemiHuman"
	case CategoryMonster:
		return "Monster"
	case CategoryIcon:
		return "Icon"
	case CategoryMap:
		return "Map"
	case CategoryLoadingScreen:
		return "LoadingScreen"
	case CategoryInterface:
		return "Interface"
	case CategoryFont:
		return "Font"
	case CategoryHousing:
		return "Housing"
	case CategoryWorld:
		return "World"
	case CategoryVfx:
		return "Vfx"
	default:
		return "Unknown"
	}
}

// ExtensionKind classifies a path purely by its file extension.
type ExtensionKind uint8

const (
	ExtUnknown ExtensionKind = iota
	ExtSound
	ExtImc
	ExtVfx
	ExtAnimation
	ExtPap
	ExtMetaInfo
	ExtMaterial
	ExtTexture
	ExtModel
	ExtShader
	ExtFont
	ExtEnvironment
	ExtSkeleton
	ExtSkeletonParameter
	ExtElementID
	ExtSkeletonPhysicsBinary
)

// String returns the extension kind name.
func (e ExtensionKind) String() string {
	switch e {
	case ExtSound:
		return "Sound"
	case ExtImc:
		return "Imc"
	case ExtVfx:
		return "Vfx"
	case ExtAnimation:
		return "Animation"
	case ExtPap:
		return "Pap"
	case ExtMetaInfo:
		return "MetaInfo"
	case ExtMaterial:
		return "Material"
	case ExtTexture:
		return "Texture"
	case ExtModel:
		return "Model"
	case ExtShader:
		return "Shader"
	case ExtFont:
		return "Font"
	case ExtEnvironment:
		return "Environment"
	case ExtSkeleton:
		return "Skeleton"
	case ExtSkeletonParameter:
		return "SkeletonParameter"
	case ExtElementID:
		return "ElementId"
	case ExtSkeletonPhysicsBinary:
		return "SkeletonPhysicsBinary"
	default:
		return "Unknown"
	}
}

// Language is the client language an icon was localized for.
type Language uint8

const (
	LanguageUnset Language = iota
	LanguageJapanese
	LanguageEnglish
	LanguageGerman
	LanguageFrench
)

func (l Language) String() string {
	switch l {
	case LanguageJapanese:
		return "Japanese"
	case LanguageEnglish:
		return "English"
	case LanguageGerman:
		return "German"
	case LanguageFrench:
		return "French"
	default:
		return "Unset"
	}
}

// languageFromCode maps an icon language folder. Unrecognized codes fall back to English.
func languageFromCode(code string) Language {
	switch code {
	case "ja":
		return LanguageJapanese
	case "de":
		return LanguageGerman
	case "fr":
		return LanguageFrench
	default:
		return LanguageEnglish
	}
}
