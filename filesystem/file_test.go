package filesystem

import (
	"bytes"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestContent() *fileData {
	return newFileData(4096, 4, time.Now())
}

func TestFileData_InitialState(t *testing.T) {
	t.Parallel()

	f := newTestContent()
	assert.Equal(t, int64(0), f.contentSize())
	assert.Len(t, f.chunks, 4, "files are pre-allocated with the initial batch")
}

func TestFileData_WriteRead(t *testing.T) {
	t.Parallel()

	f := newTestContent()
	n := f.write([]byte("hello world"))
	assert.Equal(t, 11, n)
	assert.Equal(t, int64(11), f.contentSize())

	buf := make([]byte, 11)
	assert.Equal(t, 11, f.read(buf, 0))
	assert.Equal(t, "hello world", string(buf))

	// offset read
	buf = make([]byte, 5)
	assert.Equal(t, 5, f.read(buf, 6))
	assert.Equal(t, "world", string(buf))
}

func TestFileData_WriteAppends(t *testing.T) {
	t.Parallel()

	f := newTestContent()
	f.write([]byte("ab"))
	f.write([]byte("cd"))

	buf := make([]byte, 4)
	assert.Equal(t, 4, f.read(buf, 0))
	assert.Equal(t, "abcd", string(buf))
}

func TestFileData_ShortReadAtEnd(t *testing.T) {
	t.Parallel()

	f := newTestContent()
	f.write([]byte("abc"))

	buf := make([]byte, 10)
	assert.Equal(t, 3, f.read(buf, 0), "read returns fewer bytes near end-of-content")
	assert.Equal(t, 1, f.read(buf, 2))
	assert.Equal(t, 0, f.read(buf, 3))
	assert.Equal(t, 0, f.read(buf, 100))
}

func TestFileData_AcrossChunkBoundaries(t *testing.T) {
	t.Parallel()

	// three full chunks plus change, written in uneven pieces
	payload := bytes.Repeat([]byte("0123456789abcdef"), 800) // 12800 bytes
	f := newTestContent()

	assert.Equal(t, 5000, f.write(payload[:5000]))
	assert.Equal(t, len(payload)-5000, f.write(payload[5000:]))
	require.Equal(t, int64(len(payload)), f.contentSize())

	got := make([]byte, len(payload))
	require.Equal(t, len(payload), f.read(got, 0))
	assert.Equal(t, payload, got)

	// every chunk except possibly the last is completely filled
	for i, c := range f.chunks[:len(f.chunks)-1] {
		if int64((i+1)*f.chunkSize) <= f.size {
			assert.Equal(t, f.chunkSize, c.filled, "chunk %d must be full", i)
		}
	}

	// read spanning a chunk boundary
	span := make([]byte, 200)
	require.Equal(t, 200, f.read(span, 4000))
	assert.Equal(t, payload[4000:4200], span)
}

func TestFileData_OversizedWriteIntoPartialChunk(t *testing.T) {
	t.Parallel()

	f := newTestContent()
	f.write([]byte("x")) // tail chunk partly filled, 4 chunks spare

	big := bytes.Repeat([]byte("y"), 5*4096)
	assert.Equal(t, len(big), f.write(big))
	assert.Equal(t, int64(len(big)+1), f.contentSize())

	got := make([]byte, len(big)+1)
	require.Equal(t, len(big)+1, f.read(got, 0))
	assert.Equal(t, byte('x'), got[0])
	assert.Equal(t, big, got[1:])
}

func TestFileData_Clear(t *testing.T) {
	t.Parallel()

	f := newTestContent()
	f.write(bytes.Repeat([]byte("z"), 10000))
	require.Greater(t, f.contentSize(), int64(0))

	f.clear(4)
	assert.Equal(t, int64(0), f.contentSize())
	assert.Len(t, f.chunks, 4)

	// writable again from scratch
	f.write([]byte("fresh"))
	buf := make([]byte, 5)
	assert.Equal(t, 5, f.read(buf, 0))
	assert.Equal(t, "fresh", string(buf))
}

func TestFileData_ModifiedAdvancesOnWrite(t *testing.T) {
	t.Parallel()

	f := newTestContent()
	before := f.lastModified()
	time.Sleep(2 * time.Millisecond)
	f.write([]byte("tick"))
	assert.True(t, f.lastModified().After(before))
}

func TestFileData_CopyIsDeep(t *testing.T) {
	t.Parallel()

	f := newTestContent()
	payload := bytes.Repeat([]byte("q"), 6000)
	f.write(payload)

	c := f.copy()
	assert.Equal(t, f.contentSize(), c.contentSize())
	assert.True(t, c.lastModified().Equal(f.lastModified()))

	c.write([]byte("extra"))
	assert.Equal(t, int64(6005), c.contentSize())
	assert.Equal(t, int64(6000), f.contentSize())

	got := make([]byte, 6000)
	require.Equal(t, 6000, f.read(got, 0))
	assert.Equal(t, payload, got)
}
