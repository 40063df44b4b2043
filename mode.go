package vfs

// FileMode is the access-mode bitmask a stream is opened with.
type FileMode uint8

const (
	ModeRead   FileMode = 1 << iota // read access
	ModeWrite                       // write access; enables file creation on open
	ModeAppend                      // keep existing content on open

	// ModeRW combines read and write access.
	ModeRW = ModeRead | ModeWrite
)

// Has reports whether all bits of m are set.
func (f FileMode) Has(m FileMode) bool {
	return f&m == m
}

func (f FileMode) String() string {
	if f == 0 {
		return "none"
	}
	s := ""
	if f.Has(ModeRead) {
		s += "r"
	}
	if f.Has(ModeWrite) {
		s += "w"
	}
	if f.Has(ModeAppend) {
		s += "a"
	}
	return s
}

// Whence is the origin a stream seek is computed from.
type Whence uint8

const (
	SeekBeg Whence = iota // absolute offset from the start
	SeekCur               // relative to the current cursor
	SeekEnd               // relative to the end of content
)

func (w Whence) String() string {
	switch w {
	case SeekBeg:
		return "beg"
	case SeekCur:
		return "cur"
	case SeekEnd:
		return "end"
	}
	return "unknown"
}
