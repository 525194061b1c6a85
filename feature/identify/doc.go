// Package identify turns game paths into the display labels of the entities they affect.
//
// It joins the path parser (feature/gamepath) with the entity index (feature/index).
// Animation paths (.pap, .tmb) are resolved through their action key; every other
// path is classified, parsed into descriptors and resolved per category.
//
// # Components
//
//   - Identifier: single path and accumulating identification, item point lookups.
//   - Result: ordered, deduplicated labels plus counted labels for unstructured files.
//   - RunBatch: bounded concurrent identification of a path corpus.
//   - LoadPaths / LoadLinks: path corpus and battle NPC link loaders (file or storage).
//
// # HTTP Endpoints
//
//   - POST /identify : Identifies the posted paths.
//   - GET /identify/item : Looks up a single item by set, weapon type, variant and slot.
package identify
