// Package fstree rebuilds a filesystem tree from a recorded shell
// session (cd/ls commands and their output) and aggregates directory
// sizes bottom-up.
package fstree

import (
	"errors"
	"fmt"
	"strings"
)

var (
	// ErrUnknownDir is returned when the session changes into a child
	// directory that was never listed.
	ErrUnknownDir = errors.New("fstree: unknown directory")

	// ErrAboveRoot is returned when the session tries to cd .. out of
	// the root.
	ErrAboveRoot = errors.New("fstree: cannot ascend above root")
)

// Node is one file or directory. Children are owned by their directory;
// the parent link is purely navigational.
type Node struct {
	name     string
	dir      bool
	size     int // files only; directory totals come from Tree.Sizes
	parent   *Node
	children map[string]*Node
}

// Name returns the node's name within its parent.
func (n *Node) Name() string { return n.name }

// IsDir reports whether the node is a directory.
func (n *Node) IsDir() bool { return n.dir }

// FileSize returns a file's own size. It is 0 for directories, whose
// totals only exist once the whole tree is known.
func (n *Node) FileSize() int { return n.size }

// Parent returns the containing directory, or nil for the root.
func (n *Node) Parent() *Node { return n.parent }

func newDir(name string, parent *Node) *Node {
	return &Node{name: name, dir: true, parent: parent, children: make(map[string]*Node)}
}

// Tree is a filesystem reconstructed from one session.
type Tree struct {
	root *Node
}

// Root returns the root directory.
func (t *Tree) Root() *Node { return t.root }

// Replay parses a shell session and rebuilds the directory tree it
// walked. The cursor starts at the root; cd and ls commands move it and
// attach listed children. Any reference to a child that was never
// listed, or an attempt to ascend above the root, aborts the replay.
func Replay(input string) (*Tree, error) {
	sess, err := parseSession(input)
	if err != nil {
		return nil, err
	}

	root := newDir("/", nil)
	cur := root
	for _, cmd := range sess.Commands {
		switch {
		case cmd.Cd != nil:
			cur, err = changeDir(cur, root, cmd.Cd.Target)
			if err != nil {
				return nil, err
			}
		case cmd.Ls != nil:
			attachListings(cur, cmd.Ls.Entries)
		}
	}
	return &Tree{root: root}, nil
}

func changeDir(cur, root *Node, target string) (*Node, error) {
	switch target {
	case "/":
		return root, nil
	case "..":
		if cur.parent == nil {
			return nil, ErrAboveRoot
		}
		return cur.parent, nil
	default:
		child, ok := cur.children[target]
		if !ok {
			return nil, fmt.Errorf("cd %s in %s: %w", target, cur.name, ErrUnknownDir)
		}
		if !child.dir {
			return nil, fmt.Errorf("cd %s in %s: not a directory", target, cur.name)
		}
		return child, nil
	}
}

// attachListings records ls output as children of cur. A name listed
// twice keeps its last record.
func attachListings(cur *Node, entries []*listing) {
	for _, e := range entries {
		switch {
		case e.Dir != nil:
			cur.children[e.Dir.Name] = newDir(e.Dir.Name, cur)
		case e.File != nil:
			cur.children[e.File.Name] = &Node{
				name:   e.File.Name,
				size:   e.File.Size,
				parent: cur,
			}
		}
	}
}

// Lookup returns the node at a /-separated path from the root, e.g.
// "/a/e". "/" names the root.
func (t *Tree) Lookup(path string) (*Node, bool) {
	cur := t.root
	for _, part := range strings.Split(path, "/") {
		if part == "" {
			continue
		}
		child, ok := cur.children[part]
		if !ok {
			return nil, false
		}
		cur = child
	}
	return cur, true
}

// Sizes computes every directory's total size in a single pass,
// children before parents, each total exactly once. It returns the
// root's total and the totals of all directories (root included) in no
// particular order. Callers apply their threshold predicates over the
// same finalized totals.
func (t *Tree) Sizes() (total int, dirs []int) {
	var walk func(n *Node) int
	walk = func(n *Node) int {
		if !n.dir {
			return n.size
		}
		sum := 0
		for _, child := range n.children {
			sum += walk(child)
		}
		dirs = append(dirs, sum)
		return sum
	}
	total = walk(t.root)
	return total, dirs
}
