// Package tabula is an in-memory entity/component store. It associates
// arbitrary typed data (components) with lightweight generational identifiers
// (entities), and retrieves or mutates that data through typed queries that
// may span multiple component types at once.
//
// The engine is single-threaded and synchronous. References produced by
// lookups and queries are bound to the World that produced them; structural
// changes (spawn, despawn, adding or removing component types) while a query
// or search iterator is open cause an immediate panic rather than silent
// corruption. Multi-threaded use requires external synchronization supplied
// by the embedding application.
package tabula
