// Package catalog provides a SQLite-backed library of building materials.
//
// A material is a named record with a thermal conductivity; stratigraphy
// files may reference one by name instead of spelling the conductivity out
// (see package stratfile). Resolve fills those pending references from the
// catalog, turning them into regular conductive layers.
//
// The database is a single `materials` table, migrated on Open, keyed by
// material name. One process at a time should write; WAL mode keeps
// concurrent readers cheap.
//
// Errors:
//
//   - ErrNotFound: no material with the requested name.
package catalog
