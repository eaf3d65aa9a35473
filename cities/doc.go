// Package cities holds the City Table: an immutable lookup of labeled planar
// points indexed by integer ids 0..N-1.
//
// A Table is built once per run, from two parallel record sources (Load,
// LoadFiles), from an explicit slice (New), or from a seeded uniform generator
// (Random). It is read-only afterwards and safe for concurrent readers.
//
// Input contract for Load:
//   - coordinate rows: two comma-separated floats ("12.5, 3"),
//   - name rows: one string per row, surrounding whitespace trimmed,
//   - row i of both sources describes city i; blank lines are ignored,
//   - any mismatch in row counts, malformed row, non-finite coordinate or
//     empty name aborts the whole load with an error wrapping ErrInputFormat.
//
// Nothing is skipped silently: a Table either holds every row or is not built.
package cities
