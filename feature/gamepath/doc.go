// Package gamepath turns game asset paths into structured descriptors.
//
// A path is classified twice: by its first two folders (Category) and by its file
// extension (ExtensionKind). The pair selects an ordered list of structural patterns;
// the first pattern that matches the whole path wins and its captures are converted
// into one or more Descriptors.
//
// # Patterns
//
// Patterns are written as templates and compiled once at package init, see Pattern.
// They support typed character runs and back-references, which the standard regexp
// package does not.
//
// # Vfx effects
//
// Weapon, monster and demihuman .avfx paths name an effect id rather than a variant.
// Parse fetches the object's variant table through a VariantSource and returns one
// descriptor per variant using that effect.
package gamepath
