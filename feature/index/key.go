package index

// Key packs (primary, secondary, variant) as primary<<32 | secondary<<16 | variant.
// Ordering keys numerically orders the tuples lexicographically.
type Key uint64

// Masks select a left-aligned prefix of the key fields.
const (
	MaskPrimary   Key = 0xFFFF_0000_0000
	MaskSecondary Key = 0xFFFF_FFFF_0000
	MaskFull      Key = 0xFFFF_FFFF_FFFF
)

// NewKey packs the three fields.
func NewKey(primary, secondary, variant uint16) Key {
	return Key(primary)<<32 | Key(secondary)<<16 | Key(variant)
}

// Primary returns the set, model or monster id.
func (k Key) Primary() uint16 { return uint16(k >> 32) }

// Secondary returns the slot or weapon body id.
func (k Key) Secondary() uint16 { return uint16(k >> 16) }

// Variant returns the variant id.
func (k Key) Variant() uint16 { return uint16(k) }

// Query builds the key and prefix mask for partially known fields. Zero means unknown.
// A variant without a secondary field is ignored so the mask stays a prefix.
func Query(primary, secondary, variant uint16) (Key, Key) {
	key, mask := NewKey(primary, 0, 0), MaskPrimary
	if secondary == 0 {
		return key, mask
	}
	key, mask = NewKey(primary, secondary, 0), MaskSecondary
	if variant != 0 {
		key, mask = NewKey(primary, secondary, variant), MaskFull
	}
	return key, mask
}
