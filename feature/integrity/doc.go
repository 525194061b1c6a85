// Package integrity provides health checks for the identification inputs.
//
// # Checks Provided
//
//   - Structure: Checks that the game folders (bg, chara, common, ui, vfx) exist under the game prefix in the storage bucket.
//   - Sources: Verifies that s3:// path list and BNpc link locations exist in the bucket.
//   - Catalog: Validates that every catalog table carries the columns the index reads, and reports empty tables.
//
// # HTTP Endpoints
//
//   - GET /integrity : Runs all checks.
//   - GET /integrity/structure : Runs structure check.
//   - GET /integrity/sources : Runs sources check.
//   - GET /integrity/catalog : Runs catalog schema check.
package integrity
