package filesystem

import (
	"sync"
	"time"
)

// chunk is a fixed-capacity buffer with explicit fill tracking. Every
// chunk except possibly the last is completely filled.
type chunk struct {
	data   []byte
	filled int
}

// fileData is the chunked byte content of a file node. Chunks are
// allocated in batches sized to the write that triggered allocation and
// are never shrunk by writes; only clear resets the sequence.
//
// fileData carries its own lock because streams operate on content without
// holding the facade's tree lock.
type fileData struct {
	mu        sync.Mutex
	chunkSize int
	chunks    []*chunk
	size      int64
	modified  time.Time
}

func newFileData(chunkSize, initialChunks int, now time.Time) *fileData {
	f := &fileData{
		chunkSize: chunkSize,
		modified:  now,
	}
	f.reserveChunks(initialChunks)
	return f
}

// reserveChunks appends count empty chunks.
func (f *fileData) reserveChunks(count int) {
	for n := 0; n < count; n++ {
		f.chunks = append(f.chunks, &chunk{data: make([]byte, f.chunkSize)})
	}
}

// clear discards all chunks, pre-allocates a fresh initial batch and
// resets the size to 0.
func (f *fileData) clear(initialChunks int) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.chunks = nil
	f.reserveChunks(initialChunks)
	f.size = 0
	f.modified = time.Now()
}

// write appends p at the current end of content, copying across chunk
// boundaries, and returns the number of bytes written. There is no write
// at offset; offset-aware access is layered on top by FileStream.
func (f *fileData) write(p []byte) int {
	f.mu.Lock()
	defer f.mu.Unlock()

	// Chunk count needed for the incoming bytes; allocate a new batch when
	// the content sits exactly at chunk-capacity boundary (no spare room).
	need := len(p) / f.chunkSize
	if len(p)%f.chunkSize > 0 {
		need++
	}
	if f.size == int64(len(f.chunks)*f.chunkSize) {
		f.reserveChunks(need)
	}

	written := 0
	pos := int(f.size) / f.chunkSize // beginning chunk
	for written < len(p) {
		if pos == len(f.chunks) {
			// Spare room in a partly filled tail chunk ran out mid-copy.
			f.reserveChunks(1)
		}
		c := f.chunks[pos]
		free := f.chunkSize - c.filled
		cnt := min(free, len(p)-written)

		copy(c.data[c.filled:], p[written:written+cnt])
		c.filled += cnt
		f.size += int64(cnt)
		written += cnt
		pos++
	}

	f.modified = time.Now()
	return written
}

// read copies up to len(p) bytes starting at offset into p, crossing chunk
// boundaries, and returns the number of bytes read. Near end-of-content it
// returns fewer bytes than requested rather than failing.
func (f *fileData) read(p []byte, offset int64) int {
	f.mu.Lock()
	defer f.mu.Unlock()

	pos := int(offset) / f.chunkSize // beginning chunk
	readN := 0
	cur := int(offset)
	for readN < len(p) {
		if pos >= len(f.chunks) {
			break
		}
		c := f.chunks[pos]
		off := cur - pos*f.chunkSize
		cnt := c.filled - off
		if cnt > len(p)-readN {
			cnt = len(p) - readN
		}
		if cnt <= 0 {
			break
		}

		copy(p[readN:], c.data[off:off+cnt])
		readN += cnt
		cur += cnt
		pos++
	}

	return readN
}

// contentSize returns the total filled byte count.
func (f *fileData) contentSize() int64 {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.size
}

// lastModified returns the time of the last write.
func (f *fileData) lastModified() time.Time {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.modified
}

// copy deep-copies all chunks, the size and the timestamps.
func (f *fileData) copy() *fileData {
	f.mu.Lock()
	defer f.mu.Unlock()

	c := &fileData{
		chunkSize: f.chunkSize,
		size:      f.size,
		modified:  f.modified,
	}
	c.chunks = make([]*chunk, 0, len(f.chunks))
	for _, src := range f.chunks {
		dst := &chunk{data: make([]byte, f.chunkSize), filled: src.filled}
		copy(dst.data, src.data[:src.filled])
		c.chunks = append(c.chunks, dst)
	}
	return c
}

// Size returns the file's byte size; 0 for directories.
func (n *Node) Size() int64 {
	if n.file == nil {
		return 0
	}
	return n.file.contentSize()
}

// Modified returns the file's last-modified time. Directories report their
// creation time.
func (n *Node) Modified() time.Time {
	if n.file == nil {
		return n.Created()
	}
	return n.file.lastModified()
}
