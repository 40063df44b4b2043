package vfs

import "errors"

// ErrorKind is the closed set of failure classes reported by the
// filesystem facade. Query operations never produce errors (absence is a
// nil result) and stream operations degrade quietly instead of failing,
// so every kind below originates from a structural facade operation.
type ErrorKind uint8

const (
	CantCreateDir ErrorKind = iota + 1
	CantCreateFile
	CantOpenFile
	// OutOfMem is the allocation-failure class. The Go runtime aborts on
	// allocation failure, so this kind is reserved but never produced.
	OutOfMem
	NodeIsFile
	NodeIsDir
	NodeAlreadyExists
	NodeDoesntExist
)

func (k ErrorKind) String() string {
	switch k {
	case CantCreateDir:
		return "can't create directory"
	case CantCreateFile:
		return "can't create file"
	case CantOpenFile:
		return "can't open file"
	case OutOfMem:
		return "out of memory"
	case NodeIsFile:
		return "node is a file"
	case NodeIsDir:
		return "node is a directory"
	case NodeAlreadyExists:
		return "node already exists"
	case NodeDoesntExist:
		return "node doesn't exist"
	}
	return "unknown error"
}

// Error is the typed error returned by facade operations.
type Error struct {
	Op   string // failing operation, e.g. "open", "rename"
	Path string // path the operation was invoked with
	Kind ErrorKind
}

func (e *Error) Error() string {
	if e.Path == "" {
		return e.Op + ": " + e.Kind.String()
	}
	return e.Op + " " + e.Path + ": " + e.Kind.String()
}

// Is matches two *Error values by kind, so
// errors.Is(err, &vfs.Error{Kind: vfs.NodeIsFile}) holds regardless of
// operation and path.
func (e *Error) Is(target error) bool {
	t, ok := target.(*Error)
	return ok && t.Kind == e.Kind
}

// KindOf extracts the ErrorKind from err. ok is false if err carries no
// *Error in its chain.
func KindOf(err error) (kind ErrorKind, ok bool) {
	var e *Error
	if errors.As(err, &e) {
		return e.Kind, true
	}
	return 0, false
}
