package gamepath

import "strings"

// EquipSlot mirrors the game's EquipSlotCategory row ids.
type EquipSlot uint8

const (
	EquipSlotUnknown EquipSlot = iota
	EquipSlotMainHand
	EquipSlotOffHand
	EquipSlotHead
	EquipSlotBody
	EquipSlotHands
	EquipSlotBelt
	EquipSlotLegs
	EquipSlotFeet
	EquipSlotEars
	EquipSlotNeck
	EquipSlotWrists
	EquipSlotRFinger
	EquipSlotBothHand
	EquipSlotLFinger
	EquipSlotHeadBody
	EquipSlotBodyHandsLegsFeet
	EquipSlotSoulCrystal
	EquipSlotLegsFeet
	EquipSlotFullBody
	EquipSlotBodyHands
	EquipSlotBodyLegsFeet
	EquipSlotChestHands
)

// ToSlot collapses multi-slot categories onto the slot whose model they use.
func (s EquipSlot) ToSlot() EquipSlot {
	switch s {
	case EquipSlotMainHand, EquipSlotBothHand:
		return EquipSlotMainHand
	case EquipSlotOffHand:
		return EquipSlotOffHand
	case EquipSlotHead:
		return EquipSlotHead
	case EquipSlotBody, EquipSlotHeadBody, EquipSlotBodyHandsLegsFeet, EquipSlotFullBody,
		EquipSlotBodyHands, EquipSlotBodyLegsFeet, EquipSlotChestHands:
		return EquipSlotBody
	case EquipSlotHands:
		return EquipSlotHands
	case EquipSlotBelt:
		return EquipSlotBelt
	case EquipSlotLegs, EquipSlotLegsFeet:
		return EquipSlotLegs
	case EquipSlotFeet:
		return EquipSlotFeet
	case EquipSlotEars:
		return EquipSlotEars
	case EquipSlotNeck:
		return EquipSlotNeck
	case EquipSlotWrists:
		return EquipSlotWrists
	case EquipSlotRFinger, EquipSlotLFinger:
		return EquipSlotRFinger
	case EquipSlotSoulCrystal:
		return EquipSlotSoulCrystal
	default:
		return EquipSlotUnknown
	}
}

// IsWeapon reports whether items of this slot carry weapon models.
func (s EquipSlot) IsWeapon() bool {
	switch s {
	case EquipSlotMainHand, EquipSlotOffHand, EquipSlotBothHand:
		return true
	default:
		return false
	}
}

// IsEquipment reports whether items of this slot carry equipment or accessory models.
// Catalog rings always use RFinger, and ChestHands never appears on an item.
func (s EquipSlot) IsEquipment() bool {
	switch s {
	case EquipSlotHead, EquipSlotBody, EquipSlotHands, EquipSlotLegs, EquipSlotFeet,
		EquipSlotBodyHands, EquipSlotBodyHandsLegsFeet, EquipSlotBodyLegsFeet,
		EquipSlotFullBody, EquipSlotHeadBody, EquipSlotLegsFeet,
		EquipSlotRFinger, EquipSlotWrists, EquipSlotEars, EquipSlotNeck:
		return true
	default:
		return false
	}
}

func (s EquipSlot) String() string {
	switch s {
	case EquipSlotMainHand:
		return "MainHand"
	case EquipSlotOffHand:
		return "OffHand"
	case EquipSlotHead:
		return "Head"
	case EquipSlotBody:
		return "Body"
	case EquipSlotHands:
		return "Hands"
	case EquipSlotBelt:
		return "Belt"
	case EquipSlotLegs:
		return "Legs"
	case EquipSlotFeet:
		return "Feet"
	case EquipSlotEars:
		return "Ears"
	case EquipSlotNeck:
		return "Neck"
	case EquipSlotWrists:
		return "Wrists"
	case EquipSlotRFinger:
		return "RFinger"
	case EquipSlotBothHand:
		return "BothHand"
	case EquipSlotLFinger:
		return "LFinger"
	case EquipSlotHeadBody:
		return "HeadBody"
	case EquipSlotBodyHandsLegsFeet:
		return "BodyHandsLegsFeet"
	case EquipSlotSoulCrystal:
		return "SoulCrystal"
	case EquipSlotLegsFeet:
		return "LegsFeet"
	case EquipSlotFullBody:
		return "FullBody"
	case EquipSlotBodyHands:
		return "BodyHands"
	case EquipSlotBodyLegsFeet:
		return "BodyLegsFeet"
	case EquipSlotChestHands:
		return "ChestHands"
	default:
		return "Unknown"
	}
}

var suffixToEquipSlot = map[string]EquipSlot{
	"met": EquipSlotHead,
	"top": EquipSlotBody,
	"glv": EquipSlotHands,
	"dwn": EquipSlotLegs,
	"sho": EquipSlotFeet,
	"ear": EquipSlotEars,
	"nek": EquipSlotNeck,
	"wrs": EquipSlotWrists,
	"rir": EquipSlotRFinger,
	"ril": EquipSlotLFinger,
}

// EquipSlotFromSuffix resolves a three-letter model suffix such as "top".
func EquipSlotFromSuffix(suffix string) (EquipSlot, bool) {
	slot, ok := suffixToEquipSlot[suffix]
	return slot, ok
}

// EquipSlotFromName resolves a slot by its lowercase name, e.g. "body" or "mainhand".
func EquipSlotFromName(name string) (EquipSlot, bool) {
	for s := EquipSlotMainHand; s <= EquipSlotChestHands; s++ {
		if strings.EqualFold(s.String(), name) {
			return s, true
		}
	}
	return EquipSlotUnknown, false
}

// BodySlot is the human body part folder a customization belongs to.
type BodySlot uint8

const (
	BodySlotUnknown BodySlot = iota
	BodySlotHair
	BodySlotFace
	BodySlotTail
	BodySlotBody
	BodySlotZear
)

func (b BodySlot) String() string {
	switch b {
	case BodySlotHair:
		return "Hair"
	case BodySlotFace:
		return "Face"
	case BodySlotTail:
		return "Tail"
	case BodySlotBody:
		return "Body"
	case BodySlotZear:
		return "Zear"
	default:
		return "Unknown"
	}
}

var stringToBodySlot = map[string]BodySlot{
	"hair": BodySlotHair,
	"face": BodySlotFace,
	"tail": BodySlotTail,
	"body": BodySlotBody,
	"zear": BodySlotZear,
}

// CustomizationKind identifies which part of a character's appearance a file changes.
type CustomizationKind uint8

const (
	CustomizationUnknown CustomizationKind = iota
	CustomizationBody
	CustomizationLegs
	CustomizationGloves
	CustomizationShoes
	CustomizationTail
	CustomizationFace
	CustomizationIris
	CustomizationAccessory
	CustomizationHair
	CustomizationZear
	CustomizationDecalFace
	CustomizationDecalEquip
	CustomizationSkin
	CustomizationEtc
)

func (c CustomizationKind) String() string {
	switch c {
	case CustomizationBody:
		return "Body"
	case CustomizationLegs:
		return "Legs"
	case CustomizationGloves:
		return "Gloves"
	case CustomizationShoes:
		return "Shoes"
	case CustomizationTail:
		return "Tail"
	case CustomizationFace:
		return "Face"
	case CustomizationIris:
		return "Iris"
	case CustomizationAccessory:
		return "Accessory"
	case CustomizationHair:
		return "Hair"
	case CustomizationZear:
		return "Zear"
	case CustomizationDecalFace:
		return "DecalFace"
	case CustomizationDecalEquip:
		return "DecalEquip"
	case CustomizationSkin:
		return "Skin"
	case CustomizationEtc:
		return "Etc"
	default:
		return "Unknown"
	}
}

var suffixToCustomization = map[string]CustomizationKind{
	"top": CustomizationBody,
	"dwn": CustomizationLegs,
	"glv": CustomizationGloves,
	"sho": CustomizationShoes,
	"fac": CustomizationFace,
	"iri": CustomizationIris,
	"acc": CustomizationAccessory,
	"hir": CustomizationHair,
	"til": CustomizationTail,
	"zer": CustomizationZear,
	"etc": CustomizationEtc,
}

// customizationFromBodySlot is used for skeletons, which carry no slot suffix.
func customizationFromBodySlot(slot BodySlot) CustomizationKind {
	switch slot {
	case BodySlotHair:
		return CustomizationHair
	case BodySlotFace:
		return CustomizationFace
	case BodySlotTail:
		return CustomizationTail
	case BodySlotBody:
		return CustomizationBody
	case BodySlotZear:
		return CustomizationZear
	default:
		return CustomizationUnknown
	}
}
