// Package structural provides the primitive comparison utilities used to build
// value equality, hashing, deterministic ordering and cloning for document
// nodes.
//
// # Absent values
//
// A nil pointer, nil slice or nil map is "absent". Absent values are equal only
// to other absent values and sort before any present value. In particular an
// absent sequence sorts before an empty one, which sorts before any non-empty
// one, and an absent sequence is never equal to an empty one.
//
// # Sequences
//
// Sequences compare element by element with the element comparator; the first
// non-zero result wins and length breaks ties, so a strict prefix sorts first.
//
// # Mappings
//
// Mappings are string keyed. Equality ignores insertion order, and so does the
// hash: entries are combined with XOR. Ordering sorts the keys, compares the
// key sequences, then compares values in key order.
//
// # Hashes
//
// Hashes are uint64 and arithmetic on them wraps. Scalar hashes are
// deterministic across processes (strings use xxhash) so that hashes of
// canonicalized documents are reproducible.
package structural
