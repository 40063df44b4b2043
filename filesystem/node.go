package filesystem

import (
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/memkit/vfs"
)

// RootName is the fixed name of the root directory node.
const RootName = "/"

// Node is a named entity in the filesystem tree, tagged as either a
// directory or a file. Directory state (the sorted children slice) and
// file state (the chunk sequence) are kind-specific; exactly one of them
// is populated.
//
// A Node is exclusively owned by its parent directory's child slice,
// except the root, which the FileSystem owns. Values returned from lookup
// or listing are non-owning views.
type Node struct {
	mu       sync.RWMutex // guards name and timestamps
	id       uuid.UUID
	kind     vfs.NodeKind
	name     string
	created  time.Time
	accessed time.Time

	// children is the sorted child slice; only set for KindDir.
	// Guarded by the owning FileSystem's tree lock, not by mu.
	children []*Node

	// file holds chunked content; only set for KindFile.
	file *fileData
}

func newDirNode(name string) *Node {
	now := time.Now()
	return &Node{
		id:       uuid.New(),
		kind:     vfs.KindDir,
		name:     name,
		created:  now,
		accessed: now,
	}
}

func newFileNode(name string, chunkSize, initialChunks int) *Node {
	now := time.Now()
	n := &Node{
		id:       uuid.New(),
		kind:     vfs.KindFile,
		name:     name,
		created:  now,
		accessed: now,
		file:     newFileData(chunkSize, initialChunks, now),
	}
	return n
}

// ID returns the node's unique identity. A copy gets a fresh identity.
func (n *Node) ID() uuid.UUID {
	return n.id
}

// Kind returns whether the node is a directory or a file.
func (n *Node) Kind() vfs.NodeKind {
	return n.kind
}

// IsDir reports whether the node is a directory.
func (n *Node) IsDir() bool {
	return n.kind == vfs.KindDir
}

// Name returns the node's name (last path component).
func (n *Node) Name() string {
	n.mu.RLock()
	defer n.mu.RUnlock()
	return n.name
}

// Created returns the creation time of the node.
func (n *Node) Created() time.Time {
	n.mu.RLock()
	defer n.mu.RUnlock()
	return n.created
}

// Accessed returns the last access time of the node.
func (n *Node) Accessed() time.Time {
	n.mu.RLock()
	defer n.mu.RUnlock()
	return n.accessed
}

func (n *Node) touchAccessed() {
	n.mu.Lock()
	n.accessed = time.Now()
	n.mu.Unlock()
}

// Copy deep-clones the node and, for directories, its whole subtree. The
// clone gets a fresh identity and creation time but inherits the source's
// access time.
func (n *Node) Copy() *Node {
	n.mu.RLock()
	defer n.mu.RUnlock()

	c := &Node{
		id:       uuid.New(),
		kind:     n.kind,
		name:     n.name,
		created:  time.Now(),
		accessed: n.accessed,
	}
	switch n.kind {
	case vfs.KindDir:
		c.children = make([]*Node, 0, len(n.children))
		for _, child := range n.children {
			c.children = append(c.children, child.Copy())
		}
	case vfs.KindFile:
		c.file = n.file.copy()
	}
	return c
}
