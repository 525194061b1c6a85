// Package catalog is the game-data provider boundary.
//
// Catalog sheets (items, actions, model charas, battle NPC bases and names, companions,
// maps and place names) are read from the catalog database through gorm. Per-object
// variant tables (.imc files) are read as raw objects from storage and decoded here.
//
// # Components
//
//   - Provider: enumerate rows of a sheet, fetch a row by key, fetch a variant table.
//   - Source: the Provider backed by gorm and the storage client.
//   - VariantTable: decoded .imc file, with per-part variant entries.
//   - BNpcLink: battle NPC base to name links loaded from JSON.
package catalog
