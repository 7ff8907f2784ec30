// Package layout defines the boundary between hint generation and a
// pedigree layout engine.
//
// A layout engine is any [Func]: it receives a pedigree plus [Options]
// (including the current hints) and returns a [Layout], the per-generation
// slot table often called a "plist". Hint generation only reads the slot
// table; it never imports a concrete engine, which keeps the dependency
// between the two one-directional even though each engine consumes the
// hints the generator produces.
//
// # Slot Table
//
// For each level l (generation, top to bottom):
//
//   - N[l] is the number of occupied slots
//   - Nid[l][s] is the arena index of the individual in slot s; an
//     individual may occupy several slots when drawn once per partnership
//   - Fam[l][s] is 0 for a slot not connected to parents, otherwise the
//     1-based slot index of the left parent in level l-1
//   - Spouse[l][s] is non-zero when slot s and slot s+1 are drawn as
//     partners
//   - Pos[l][s] is the horizontal coordinate of slot s
//
// The engine in package basic is a small reference implementation used by
// the kintree CLI and by integration tests.
package layout
