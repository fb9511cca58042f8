// Package walker discovers the contents of a directory tree: it applies the
// skip rules, builds the render tree, accumulates the file-type distribution,
// and reads file contents for the classification engine. It performs no
// classification itself.
package walker

import "unicode/utf8"

// Node is one entry in the walked directory tree, in render order.
type Node struct {
	Name     string
	Path     string
	IsDir    bool
	IsText   bool
	Denied   bool // directory could not be read
	Size     int64
	Brief    string // filled in by the scan pipeline for text files
	Children []*Node
}

// FileEntry is one text file eligible for classification. Content holds the
// raw bytes; ReadErr is set (with Content nil) when the file was unreadable.
type FileEntry struct {
	Path    string
	RelPath string
	Ext     string
	Size    int64
	Content []byte
	ReadErr error
	Node    *Node
}

// Prefix returns the first chars characters of the entry's content as raw
// bytes, for the brief extractor's prefix contract.
func (e FileEntry) Prefix(chars int) []byte {
	b := e.Content
	count := 0
	for i := 0; i < len(b); {
		if count == chars {
			return b[:i]
		}
		_, size := utf8.DecodeRune(b[i:])
		i += size
		count++
	}
	return b
}

// Result is everything one walk produced.
type Result struct {
	Root          *Node
	Files         []FileEntry
	FileCount     int
	DirCount      int
	TextFileCount int
	TotalSize     int64
	Distribution  map[string]int
}
