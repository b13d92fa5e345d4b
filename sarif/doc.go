// Package sarif defines the node types of an analysis result log: runs,
// tools, results, locations, messages, code flows and the property bags
// attached to them.
//
// Every node type has one exported *derive.Type (RunType, ResultType,
// RegionType, ...) built from the type's field list. It is the equality
// comparer, the hash, the ordering comparator and the deep cloner of that
// type:
//
//	sarif.RegionType.Equal(a, b)
//	sarif.RegionType.Compare(a, b)
//	c, err := a.DeepClone()
//
// Every node type implements Node, whose Kind is the discriminator used to
// dispatch CloneNode, EqualNodes, HashNode, CompareNodes and Visit for
// heterogeneous nodes.
package sarif
