// Package canon puts logs in canonical form: every collection whose order
// carries no meaning is sorted with the ordering comparator of its element
// type, and the rule and artifact indices which refer into sorted
// collections are rewritten to follow their targets.
//
// Two logs which differ only in such orders have equal canonical forms, and
// so equal digests.
//
// Thread flow locations are in execution order and are left alone unless
// SortThreadFlowLocations is given.
package canon
