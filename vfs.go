// Package vfs holds the public vocabulary of the in-memory virtual
// filesystem: node kinds, file access modes, seek origins and the typed
// error surface. The tree, chunk storage and stream implementations live
// in the filesystem package.
package vfs
