package sarif

// Visit walks the tree rooted at n depth first. f is called before (isPost
// false) and after (isPost true) the children of each node; children are
// visited only if the pre call returns true. Sequences are walked in order
// and mappings in key order. Nodes of unregistered kinds have no children.
func Visit(n Node, f func(n Node, isPost bool) (bool, error)) error {
	if n == nil {
		return nil
	}
	ops, ok := registry[n.Kind()]
	if ok && ops.isNil(n) {
		return nil
	}
	dive, err := f(n, false)
	if err != nil {
		return err
	}
	if dive && ok {
		var childErr error
		ops.children(n, func(c Node) bool {
			childErr = Visit(c, f)
			return childErr == nil
		})
		if childErr != nil {
			return childErr
		}
	}
	if _, err := f(n, true); err != nil {
		return err
	}
	return nil
}
