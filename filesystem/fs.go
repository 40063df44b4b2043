package filesystem

import (
	"sync"
	"sync/atomic"

	"github.com/puzpuzpuz/xsync/v3"

	"github.com/memkit/vfs"
	"github.com/memkit/vfs/config"
	"github.com/memkit/vfs/internal/util"
)

// FileSystem is the facade over the node tree. It resolves paths by
// repeated directory lookups and delegates to the node it obtains.
//
// A single tree-wide RWMutex is held for the duration of each facade
// operation, so structural operations are atomic with respect to each
// other and read-only traversals may run concurrently. Streams returned
// by Open operate on file content outside the tree lock.
type FileSystem struct {
	cfg  *config.Config
	mu   sync.RWMutex // tree lock
	root *Node

	lastHandle atomic.Uint64                   // last stream handle assigned
	streams    *xsync.MapOf[uint64, *FileStream] // open streams by handle
}

// New creates an empty filesystem holding only the root directory.
// A nil cfg falls back to the defaults.
func New(cfg *config.Config) *FileSystem {
	if cfg == nil {
		cfg = config.NewDefaultConfig()
	}
	return &FileSystem{
		cfg:     cfg,
		root:    newDirNode(RootName),
		streams: xsync.NewMapOf[uint64, *FileStream](),
	}
}

// Root returns the root directory node.
func (fs *FileSystem) Root() *Node {
	return fs.root
}

// resolveLocked walks path segments from the root. At each step the
// current match must be an intermediate directory or, if it is the final
// segment, any node kind. Returns nil if resolution fails at any step.
// The empty path and the root path both resolve to the root.
//
// Caller must hold fs.mu.
func (fs *FileSystem) resolveLocked(path string) *Node {
	segs := SplitPath(path)
	if len(segs) == 0 {
		return fs.root
	}

	cur := fs.root
	var ret *Node
	for i, seg := range segs {
		node := cur.searchChild(seg)
		switch {
		case node == nil:
			return nil
		case node.IsDir():
			ret = node
			cur = node
		case i == len(segs)-1:
			ret = node
		default:
			return nil
		}
	}
	return ret
}

// CreateDir creates the directory at path. With force set, all missing
// intermediate directories are created as well; without it, only the
// final segment may be new.
func (fs *FileSystem) CreateDir(path string, force bool) error {
	logger := util.GetLogger("CreateDir")

	fs.mu.Lock()
	defer fs.mu.Unlock()

	cur := fs.root
	segs := SplitPath(path)
	created := 0
	for i, seg := range segs {
		node := cur.searchChild(seg)
		switch {
		case node == nil && (force || i == len(segs)-1):
			dir := newDirNode(seg)
			cur.insertChild(dir)
			cur = dir
			created++
		case node == nil || !node.IsDir():
			return &vfs.Error{Op: "createdir", Path: path, Kind: vfs.CantCreateDir}
		default:
			cur = node
		}
	}
	if created > 0 {
		logger.Debug().Str("path", path).Int("created", created).Msg("Created new dir(s)")
	}
	return nil
}

// GetNodeInfo resolves path to its node. Returns nil if the node wasn't
// found; resolution never fails with an error.
func (fs *FileSystem) GetNodeInfo(path string) *Node {
	fs.mu.RLock()
	defer fs.mu.RUnlock()
	return fs.resolveLocked(path)
}

// NodeExists reports whether a node exists at path.
func (fs *FileSystem) NodeExists(path string) bool {
	return fs.GetNodeInfo(path) != nil
}

// List returns a snapshot of the children of the directory at path.
// An unresolvable path yields an empty listing; a path resolving to a
// file fails with NODE_IS_FILE.
func (fs *FileSystem) List(path string) ([]*Node, error) {
	fs.mu.RLock()
	defer fs.mu.RUnlock()
	return listNode(fs.resolveLocked(path), path)
}

// ListNode is List for an already resolved node. A nil node yields an
// empty listing.
func (fs *FileSystem) ListNode(node *Node) ([]*Node, error) {
	fs.mu.RLock()
	defer fs.mu.RUnlock()
	if node == nil {
		return nil, nil
	}
	return listNode(node, node.Name())
}

func listNode(node *Node, path string) ([]*Node, error) {
	if node == nil {
		return nil, nil
	}
	if !node.IsDir() {
		return nil, &vfs.Error{Op: "list", Path: path, Kind: vfs.NodeIsFile}
	}
	return node.listChildren(), nil
}

// Open opens the file at path under the requested mode and returns a
// stream bound to it. A path resolving to a directory fails with
// CANT_CREATE_FILE. A path that doesn't resolve is created as a new file
// if the mode includes write access and the parent directory exists;
// without write access the open fails with CANT_OPEN_FILE.
//
// Opening write-capable without append truncates the content immediately,
// a side effect observable to any other outstanding stream on the file.
func (fs *FileSystem) Open(path string, mode vfs.FileMode) (*FileStream, error) {
	logger := util.GetLogger("Open")

	fs.mu.Lock()
	defer fs.mu.Unlock()

	if fs.streams.Size() >= fs.cfg.MaxOpenStreams {
		logger.Error().Str("path", path).Int("open", fs.streams.Size()).Msg("Open stream limit reached")
		return nil, &vfs.Error{Op: "open", Path: path, Kind: vfs.CantOpenFile}
	}

	node := fs.resolveLocked(path)
	switch {
	case node != nil && !node.IsDir():
		// existing file

	case node != nil:
		return nil, &vfs.Error{Op: "open", Path: path, Kind: vfs.CantCreateFile}

	case mode.Has(vfs.ModeWrite):
		parent := fs.resolveLocked(ParentPath(path))
		if parent == nil || !parent.IsDir() {
			return nil, &vfs.Error{Op: "open", Path: path, Kind: vfs.CantCreateFile}
		}
		node = newFileNode(BaseName(path), fs.cfg.ChunkSize, fs.cfg.InitialChunks)
		if !parent.insertChild(node) {
			return nil, &vfs.Error{Op: "open", Path: path, Kind: vfs.CantCreateFile}
		}
		logger.Debug().Str("path", path).Stringer("node", node.ID()).Msg("Created new file node")

	default:
		return nil, &vfs.Error{Op: "open", Path: path, Kind: vfs.CantOpenFile}
	}

	if mode.Has(vfs.ModeWrite) && !mode.Has(vfs.ModeAppend) {
		node.file.clear(fs.cfg.InitialChunks)
	}

	s := &FileStream{fs: fs, node: node, mode: mode, handle: fs.lastHandle.Add(1)}
	fs.streams.Store(s.handle, s)
	return s, nil
}

// FileSize returns the byte size of a file node; 0 for directories and
// nil nodes.
func (fs *FileSystem) FileSize(node *Node) int64 {
	if node == nil || node.IsDir() {
		return 0
	}
	return node.Size()
}

// OpenStreams returns the number of currently open streams.
func (fs *FileSystem) OpenStreams() int {
	return fs.streams.Size()
}

func (fs *FileSystem) closeStream(handle uint64) {
	fs.streams.Delete(handle)
}

// Rename gives the node at path a new name within its parent, reordering
// the parent's children to keep them sorted.
func (fs *FileSystem) Rename(path, newName string) error {
	fs.mu.Lock()
	defer fs.mu.Unlock()

	node := fs.resolveLocked(path)
	if node == nil || node == fs.root {
		return &vfs.Error{Op: "rename", Path: path, Kind: vfs.NodeDoesntExist}
	}
	parentPath := ParentPath(path)
	if fs.resolveLocked(parentPath+"/"+newName) != nil {
		return &vfs.Error{Op: "rename", Path: path, Kind: vfs.NodeAlreadyExists}
	}
	parent := fs.resolveLocked(parentPath)
	parent.renameChild(BaseName(path), newName)
	return nil
}

// Move detaches the node at from and appends it under the directory at
// to. Moving onto a file fails with NODE_IS_FILE; moving into a directory
// that already holds the name fails with NODE_ALREADY_EXISTS.
func (fs *FileSystem) Move(from, to string) error {
	logger := util.GetLogger("Move")

	fs.mu.Lock()
	defer fs.mu.Unlock()

	node := fs.resolveLocked(from)
	if node == nil || node == fs.root {
		return &vfs.Error{Op: "move", Path: from, Kind: vfs.NodeDoesntExist}
	}
	dest := fs.resolveLocked(to)
	if dest == nil {
		return &vfs.Error{Op: "move", Path: to, Kind: vfs.NodeDoesntExist}
	}
	if !dest.IsDir() {
		return &vfs.Error{Op: "move", Path: to, Kind: vfs.NodeIsFile}
	}
	if dest.searchChild(node.Name()) != nil {
		return &vfs.Error{Op: "move", Path: to, Kind: vfs.NodeAlreadyExists}
	}

	srcParent := fs.resolveLocked(ParentPath(from))
	srcParent.removeChild(node.Name())
	dest.insertChild(node)
	logger.Debug().Str("from", from).Str("to", to).Stringer("node", node.ID()).Msg("Moved node")
	return nil
}

// Delete detaches the node at path from its parent, discarding any
// subtree it holds.
func (fs *FileSystem) Delete(path string) error {
	logger := util.GetLogger("Delete")

	fs.mu.Lock()
	defer fs.mu.Unlock()

	node := fs.resolveLocked(path)
	if node == nil || node == fs.root {
		return &vfs.Error{Op: "delete", Path: path, Kind: vfs.NodeDoesntExist}
	}
	parent := fs.resolveLocked(ParentPath(path))
	parent.removeChild(node.Name())
	logger.Debug().Str("path", path).Stringer("node", node.ID()).Msg("Deleted node")
	return nil
}

// Copy deep-clones the node at from, names the clone after the final
// segment of to and appends it under to's parent directory. The clone is
// independently mutable from the source.
func (fs *FileSystem) Copy(from, to string) error {
	logger := util.GetLogger("Copy")

	fs.mu.Lock()
	defer fs.mu.Unlock()

	src := fs.resolveLocked(from)
	if src == nil {
		return &vfs.Error{Op: "copy", Path: from, Kind: vfs.NodeDoesntExist}
	}
	if fs.resolveLocked(to) != nil {
		return &vfs.Error{Op: "copy", Path: to, Kind: vfs.NodeAlreadyExists}
	}
	destParent := fs.resolveLocked(ParentPath(to))
	if destParent == nil {
		return &vfs.Error{Op: "copy", Path: to, Kind: vfs.NodeDoesntExist}
	}
	if !destParent.IsDir() {
		return &vfs.Error{Op: "copy", Path: to, Kind: vfs.NodeIsFile}
	}

	cp := src.Copy()
	cp.name = BaseName(to)
	destParent.insertChild(cp)
	logger.Debug().Str("from", from).Str("to", to).Stringer("node", cp.ID()).Msg("Copied node")
	return nil
}
