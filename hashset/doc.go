// Package hashset implements the specialized open-addressing sets
// component H needs for cavity bookkeeping during insertion and
// deletion: an edge set (2D and 3D), a face set (3D), and a node set
// (2D), all sharing one generic linear-probing table.
//
// Every set has "add-or-cancel" semantics: adding a key whose mate (its
// reverse-oriented form) is already present removes the mate and
// reports false; otherwise it inserts and reports true. This is the
// mechanism spec §4.6/§4.6b rely on to make cavity-internal facets
// cancel out while boundary facets survive.
//
// Keys are small tuples of a site's stable sequence identifier (never
// its coordinates), hashed by combining the identities with the
// multiplicative constant 1327217885 and a shift that is re-derived on
// every resize (initial capacity 256, doubling above 0.5 load). Deletion
// uses Knuth's Volume 3 §6.4 Algorithm R so probe chains under linear
// probing stay intact without tombstones.
package hashset
