// Package ir provides the loosely typed values held in property bags.
//
// A Node is a recursive tagged union: null, boolean, number, string, array
// or object. Values are placed in fields depending on Type:
//
//   - NumberType: Int64 if the number is an integer, else Float64, else
//     the literal text in Number.
//   - StringType: String.
//   - BoolType: Bool.
//   - ArrayType: Values, in order.
//   - ObjectType: Fields[i] is the string key of Values[i].
//
// # Comparison and Hashing
//
// Compare is a total order over nodes, Equal is Compare(a, b) == 0 and Hash
// is consistent with Equal. Object entries are compared in key order and
// hashed with XOR, so the order in which keys were inserted does not matter.
// A nil node is absent: it sorts first and hashes to 0.
//
// # JSON
//
// Nodes marshal to and from plain JSON values:
//
//	n, err := ir.FromJSON([]byte(`{"a": [1, 2.5, "x"]}`))
//	d, err := json.Marshal(n)
//
// # Thread Safety
//
// Node structures are not thread-safe. Comparison and hashing never modify
// nodes; clone nodes for each goroutine which modifies them.
package ir
