package filesystem

import (
	"strings"

	"github.com/memkit/vfs"
)

// FileStream is a cursor-bearing handle bound to one file node, gated by
// the access mode it was opened with. The stream never touches the tree;
// it only manipulates the content of the node it was bound to at open
// time, so content mutations made through one handle are observable to
// every other handle opened on the same path.
//
// Stream operations degrade quietly rather than failing: reading past
// end-of-content, writing without permission and seeking out of range all
// return zero or clamp.
type FileStream struct {
	fs     *FileSystem
	node   *Node
	mode   vfs.FileMode
	handle uint64
	pos    int64
}

// Handle returns the stream's registry handle.
func (s *FileStream) Handle() uint64 {
	return s.handle
}

// Name returns the name of the bound file.
func (s *FileStream) Name() string {
	return s.node.Name()
}

// Mode returns the access mode the stream was opened with.
func (s *FileStream) Mode() vfs.FileMode {
	return s.mode
}

// Size returns the bound file's current content size.
func (s *FileStream) Size() int64 {
	return s.node.file.contentSize()
}

// Tell returns the current cursor position.
func (s *FileStream) Tell() int64 {
	return s.pos
}

// IsEOF reports whether the cursor has reached the end of content.
func (s *FileStream) IsEOF() bool {
	return s.pos >= s.Size()
}

// Write appends p at the end of the file's content and returns the number
// of bytes written; 0 if the stream lacks write access. The cursor is not
// consulted: write position and cursor are independent.
func (s *FileStream) Write(p []byte) int {
	if !s.mode.Has(vfs.ModeWrite) {
		return 0
	}
	return s.node.file.write(p)
}

// WriteString appends the bytes of str; see [FileStream.Write].
func (s *FileStream) WriteString(str string) int {
	return s.Write([]byte(str))
}

// WriteLine appends line followed by a single '\n' terminator and returns
// the total number of bytes written.
func (s *FileStream) WriteLine(line string) int {
	n := s.WriteString(line)
	n += s.Write([]byte{'\n'})
	return n
}

// Read copies content at the current cursor into p and advances the
// cursor by the amount actually read. Returns 0 if the stream lacks read
// access or the content is empty.
func (s *FileStream) Read(p []byte) int {
	if !s.mode.Has(vfs.ModeRead) || s.Size() == 0 {
		return 0
	}
	n := s.node.file.read(p, s.pos)
	s.pos += int64(n)
	s.node.touchAccessed()
	return n
}

// ReadLine reads byte-by-byte until a '\n' is consumed (not included in
// the result) or end-of-content is reached, and returns the accumulated
// bytes as text.
func (s *FileStream) ReadLine() string {
	var b strings.Builder
	buf := make([]byte, 1)
	for s.Read(buf) != 0 {
		if buf[0] == '\n' {
			break
		}
		b.WriteByte(buf[0])
	}
	return b.String()
}

// ReadAll returns the whole content as text, reading from offset 0
// regardless of the cursor and leaving the cursor in place. Returns ""
// if the stream lacks read access.
func (s *FileStream) ReadAll() string {
	if !s.mode.Has(vfs.ModeRead) {
		return ""
	}
	buf := make([]byte, s.Size())
	n := s.node.file.read(buf, 0)
	s.node.touchAccessed()
	return string(buf[:n])
}

// Seek moves the cursor relative to whence and clamps the result to
// [0, Size()] instead of erroring on out-of-range offsets. A seek on an
// empty file is a no-op.
func (s *FileStream) Seek(whence vfs.Whence, offset int64) {
	size := s.Size()
	if size == 0 {
		return
	}

	var pos int64
	switch whence {
	case vfs.SeekBeg:
		pos = offset
	case vfs.SeekCur:
		pos = s.pos + offset
	case vfs.SeekEnd:
		pos = size + offset
	}

	if pos < 0 {
		pos = 0
	}
	if pos > size {
		pos = size
	}
	s.pos = pos
}

// Close deregisters the stream from the filesystem's open-stream registry.
// The stream must not be used afterwards. Safe to call more than once.
func (s *FileStream) Close() {
	s.fs.closeStream(s.handle)
}
