// Package inventory owns the product collection and the view state, and
// derives the filtered/sorted/paginated read model from them.
//
// The Store is the single mutation surface: CRUD on products plus the
// search/category/sort/page setters. Every mutation synchronously writes
// a snapshot through the persistence adapter; a failed write is logged by
// the adapter and the in-memory state stays authoritative for the session.
//
// Derivation is recomputation-on-read: View() runs the pure
// filter → sort → paginate pipeline in derive.go against the current
// state every time. There is no caching and no dirty tracking — the
// collections involved are small and the UI reads once per frame.
//
// Mutations of the product collection reset nothing, but any change to a
// filter or the sort order returns the view to page one, and deleting
// records re-clamps the current page so it never points past the last
// page of the shrunken result.
package inventory
