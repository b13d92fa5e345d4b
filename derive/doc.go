// Package derive derives value equality, hashing, deterministic ordering and
// deep cloning for a node type from one declarative list of fields.
//
// # Declaring a node type
//
// A node type is described once, as an ordered list of fields. Each field
// names an accessor returning a pointer to the field and the Ops used for its
// values:
//
//	var RegionType = derive.New[Region]("region",
//	    derive.Int("startLine", func(r *Region) *int { return &r.StartLine }),
//	    derive.Int("startColumn", func(r *Region) *int { return &r.StartColumn }),
//	    derive.Nested("message", func(r *Region) **Message { return &r.Message }, MessageType),
//	    derive.Seq("tags", func(r *Region) *[]string { return &r.Tags }, derive.Strings),
//	)
//
// The resulting *Type is itself an Ops over pointers to the node, so it can be
// used as the element Ops of other fields and types compose recursively.
//
// # Protocols
//
// Equal, Hash, Compare, Clone and Diff all walk the same field list in the same
// order, so a field can not take part in equality without also taking part in
// the hash and the ordering:
//
//   - Equal: reference fast path, absent fast path, then field by field,
//     stopping on the first mismatch.
//   - Hash: 0 for an absent node, otherwise Seed folded with each field hash
//     as acc*31 + h. Mappings fold an order independent XOR of their entries.
//   - Compare: reference fast path, absent sorts first, then field by field
//     returning the first non-zero result.
//   - Clone: a new node whose nested nodes and collections are fresh clones.
//     Absent stays absent and empty stays empty.
//
// # Concurrency
//
// A *Type is immutable once declared and safe for concurrent use. The nodes
// it operates on are never modified, except for the destination of a clone.
package derive
