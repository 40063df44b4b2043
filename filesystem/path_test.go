package filesystem

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSplitPath(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		path string
		want []string
	}{
		{"simple", "/a/b/c", []string{"a", "b", "c"}},
		{"no_leading_slash", "a/b", []string{"a", "b"}},
		{"trailing_slash", "/a/b/", []string{"a", "b"}},
		{"doubled_slash", "/a//b", []string{"a", "b"}},
		{"root", "/", []string{}},
		{"empty", "", []string{}},
		{"single", "/tmp", []string{"tmp"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, SplitPath(tt.path))
		})
	}
}

func TestParentPath(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		path string
		want string
	}{
		{"nested", "/test/test.txt", "/test"},
		{"deep", "/a/b/c", "/a/b"},
		{"trailing_slash", "/a/b/", "/a"},
		{"top_level", "/a", ""},
		{"no_slash", "a", ""},
		{"root", "/", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ParentPath(tt.path))
		})
	}
}

func TestBaseName(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		path string
		want string
	}{
		{"nested", "/test/test.txt", "test.txt"},
		{"trailing_slash", "/a/b/", "b"},
		{"top_level", "/a", "a"},
		{"no_slash", "a", "a"},
		{"root", "/", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, BaseName(tt.path))
		})
	}
}
