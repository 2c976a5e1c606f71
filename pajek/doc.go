// Package pajek reads and writes the Pajek-compatible `.net` graph dialect
// spec.md §6 specifies, plus the two companion text formats an ERGM chain
// needs at its boundary: whitespace-separated attribute tables and
// per-chain parameter trace files.
//
// File indices are 1-based on the wire and 0-based internally; every
// reader and writer in this package performs that translation at its own
// boundary so the rest of the module never sees a 1-based index.
//
// None of these formats benefit from a general-purpose graph-serialization
// library: the dialect is small, fixed, and specific to this tool's own
// output, so readers and writers are hand-written against bufio/strconv —
// small, dependency-free I/O helpers at a package boundary.
package pajek
