package vfs

// NodeKind tags a node as either a directory or a file. The kind is fixed
// at construction and never changes over a node's lifetime.
type NodeKind uint8

const (
	KindDir NodeKind = iota
	KindFile
)

func (k NodeKind) String() string {
	switch k {
	case KindDir:
		return "dir"
	case KindFile:
		return "file"
	}
	return "unknown"
}
