package chart

import "strings"

// Tree is an ordered list of root accounts, one per top-level category
// (assets, liabilities, equity, revenue, expenses, exchange). It is built once
// per report invocation and keeps a lazily rebuilt name index so repeated
// lookups avoid rescanning the tree.
type Tree struct {
	Roots []*Account

	// index maps a name to its first pre-order occurrence. Rebuilt on demand
	// after mutations so lookups stay identical to a pre-order scan.
	index map[string]*Account
}

// NewTree creates an empty tree.
func NewTree() *Tree {
	return &Tree{}
}

// AddRoot appends a root account.
func (t *Tree) AddRoot(a *Account) {
	t.Roots = append(t.Roots, a)
	t.index = nil
}

// InsertPath resolves path[0] against the existing roots and descends,
// creating a child with the parent's Info whenever an intermediate name is
// missing, until the full path is consumed. Blank segments are dropped first.
// An unknown root or an empty filtered path is a silent no-op.
func (t *Tree) InsertPath(path []string) {
	segments := make([]string, 0, len(path))
	for _, s := range path {
		if strings.TrimSpace(s) != "" {
			segments = append(segments, s)
		}
	}
	if len(segments) == 0 {
		return
	}

	var node *Account
	for _, root := range t.Roots {
		if root.Name == segments[0] {
			node = root
			break
		}
	}
	if node == nil {
		return
	}

	for _, name := range segments[1:] {
		child := node.Child(name)
		if child == nil {
			child = &Account{Name: name, Info: node.Info}
			node.Children = append(node.Children, child)
			t.index = nil
		}
		node = child
	}
}

// Find returns the first account whose name matches, searching the root list
// first (each root's own name before any root's children), then each root's
// subtree in order. Returns nil when no account carries the name.
func (t *Tree) Find(name string) *Account {
	if t.index == nil {
		t.rebuildIndex()
	}
	return t.index[name]
}

// Flatten returns every account of every root exactly once, in pre-order.
func (t *Tree) Flatten() []*Account {
	var all []*Account
	for _, root := range t.Roots {
		all = append(all, Flatten(root)...)
	}
	return all
}

func (t *Tree) rebuildIndex() {
	t.index = make(map[string]*Account)

	// Root names take precedence over any nested occurrence.
	for _, root := range t.Roots {
		if _, ok := t.index[root.Name]; !ok {
			t.index[root.Name] = root
		}
	}
	for _, root := range t.Roots {
		for _, child := range root.Children {
			t.indexSubtree(child)
		}
	}
}

func (t *Tree) indexSubtree(a *Account) {
	if _, ok := t.index[a.Name]; !ok {
		t.index[a.Name] = a
	}
	for _, c := range a.Children {
		t.indexSubtree(c)
	}
}
