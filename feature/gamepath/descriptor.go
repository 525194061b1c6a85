package gamepath

// Descriptor is the structured result of parsing one game path. Fields that do not
// apply to a category/extension combination stay at their zero value, which acts
// as a wildcard during resolution.
type Descriptor struct {
	ExtensionKind ExtensionKind
	Category      Category

	// PrimaryID is the set, monster, demihuman or decal id.
	PrimaryID uint16
	// SecondaryID is the weapon body, monster body or demihuman equipment id.
	SecondaryID uint16
	Variant     uint8

	EquipSlot         EquipSlot
	GenderRace        GenderRace
	BodySlot          BodySlot
	CustomizationKind CustomizationKind

	IconID         uint32
	Language       Language
	HighQuality    bool
	HighResolution bool

	// MapID holds the four raw id characters of a map path, MapSuffix the optional letter.
	MapID     [4]byte
	MapSuffix byte

	// Matched is set when a structural pattern matched the path. Unmatched
	// descriptors only carry ExtensionKind and Category.
	Matched bool
}

// MapKey renders the map id and variant the way the Map sheet stores it, e.g. "s1f1/01".
func (d Descriptor) MapKey() string {
	buf := make([]byte, 0, 7)
	buf = append(buf, d.MapID[:]...)
	buf = append(buf, '/', '0'+d.Variant/10%10, '0'+d.Variant%10)
	return string(buf)
}
