// File: pkg/snapshot/node.go
package snapshot

import "time"

// Node is one entry in the snapshot tree: either a *FileEntry leaf or a
// nested *DirectoryNode.
type Node interface {
	node()
}

// FileEntry describes one kept, non-ignored, non-binary file. Entries are
// created during traversal and read-only afterwards.
type FileEntry struct {
	Name         string    // Base name of the file.
	AbsolutePath string    // Absolute path on disk.
	RelativePath string    // Path relative to the traversal root, slash-separated.
	SizeBytes    int64     // Size reported by the filesystem.
	LastModified time.Time // Modification time reported by the filesystem.
}

func (*FileEntry) node() {}

// DirectoryNode maps child names to nodes, preserving insertion order so the
// structure listing stays consistent with the content pass.
type DirectoryNode struct {
	names    []string
	children map[string]Node
}

func (*DirectoryNode) node() {}

// NewDirectoryNode returns an empty directory node.
func NewDirectoryNode() *DirectoryNode {
	return &DirectoryNode{children: make(map[string]Node)}
}

// Add attaches a child under name. Names are unique within a node; adding a
// duplicate replaces the child without changing its position.
func (d *DirectoryNode) Add(name string, child Node) {
	if _, exists := d.children[name]; !exists {
		d.names = append(d.names, name)
	}
	d.children[name] = child
}

// Names returns the child names in insertion order.
func (d *DirectoryNode) Names() []string {
	return d.names
}

// Child returns the node stored under name, or nil.
func (d *DirectoryNode) Child(name string) Node {
	return d.children[name]
}

// Len returns the number of children.
func (d *DirectoryNode) Len() int {
	return len(d.names)
}
