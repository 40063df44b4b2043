package filesystem

import "sort"

// Directory child operations. The children slice is kept sorted strictly
// ascending by name with no duplicates, so binary search stays valid after
// every mutation. All methods below require the owning FileSystem's tree
// lock; they are safe on empty and single-element slices.

// searchChild binary-searches the sorted children for name. Returns nil if
// the node is not a directory or holds no such child.
func (n *Node) searchChild(name string) *Node {
	if !n.IsDir() {
		return nil
	}
	i := sort.Search(len(n.children), func(i int) bool {
		return n.children[i].name >= name
	})
	if i < len(n.children) && n.children[i].name == name {
		return n.children[i]
	}
	return nil
}

// insertChild inserts child before the first sibling with a greater name,
// preserving sort order. Reports false if a sibling already holds the name;
// sibling uniqueness is an invariant of the structure itself, not of its
// callers.
func (n *Node) insertChild(child *Node) bool {
	i := sort.Search(len(n.children), func(i int) bool {
		return n.children[i].name >= child.name
	})
	if i < len(n.children) && n.children[i].name == child.name {
		return false
	}
	n.children = append(n.children, nil)
	copy(n.children[i+1:], n.children[i:])
	n.children[i] = child
	return true
}

// renameChild removes the child held under oldName, renames it and
// reinserts it to restore sort order. Reports false if oldName is absent
// or newName is already taken.
func (n *Node) renameChild(oldName, newName string) bool {
	child := n.searchChild(oldName)
	if child == nil {
		return false
	}
	if n.searchChild(newName) != nil {
		return false
	}
	n.removeChild(oldName)
	child.mu.Lock()
	child.name = newName
	child.mu.Unlock()
	return n.insertChild(child)
}

// removeChild detaches the child with the given name. Reports false if no
// such child exists.
func (n *Node) removeChild(name string) bool {
	i := sort.Search(len(n.children), func(i int) bool {
		return n.children[i].name >= name
	})
	if i >= len(n.children) || n.children[i].name != name {
		return false
	}
	n.children = append(n.children[:i], n.children[i+1:]...)
	return true
}

// listChildren returns a snapshot of the current children and refreshes
// the directory's access timestamp.
func (n *Node) listChildren() []*Node {
	n.touchAccessed()
	snapshot := make([]*Node, len(n.children))
	copy(snapshot, n.children)
	return snapshot
}
