package walker

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"sort"
	"strings"

	gitignore "github.com/monochromegane/go-gitignore"

	"github.com/blackwell-systems/treedoc/internal/classify"
)

// junkFiles are well-known OS litter, skipped case-insensitively.
var junkFiles = map[string]bool{
	"desktop.ini": true,
	"thumbs.db":   true,
	".ds_store":   true,
}

// Options controls a walk.
type Options struct {
	// IgnoreDirs are directory names skipped by exact match, in addition to
	// the built-in dot and "!" prefix rules.
	IgnoreDirs []string

	// UseGitignore enables matching against a .gitignore at the walk root.
	UseGitignore bool

	// SkipContent leaves FileEntry.Content nil except for the brief prefix.
	SkipContent bool
}

// briefPrefixBytes is how much of a file is read when deep content is not
// needed; generous enough to cover the 1000-character brief prefix.
const briefPrefixBytes = 4096

// Walk traverses root depth-first and returns the render tree, the text-file
// entries in render order, and the aggregate counts. Only a missing or
// non-directory root is an error; unreadable subdirectories become denied
// nodes and unreadable files become entries with ReadErr set.
func Walk(root string, opts Options) (*Result, error) {
	info, err := os.Stat(root)
	if err != nil {
		return nil, fmt.Errorf("accessing %s: %w", root, err)
	}
	if !info.IsDir() {
		return nil, fmt.Errorf("%s is not a directory", root)
	}

	abs, err := filepath.Abs(root)
	if err != nil {
		abs = filepath.Clean(root)
	}

	w := &walk{
		root: abs,
		opts: opts,
		result: &Result{
			Distribution: make(map[string]int),
		},
		ignoreDirs: make(map[string]bool, len(opts.IgnoreDirs)),
	}
	for _, dir := range opts.IgnoreDirs {
		w.ignoreDirs[dir] = true
	}

	if opts.UseGitignore {
		// Root-level .gitignore only; nested ignore files are not consulted.
		if matcher, err := gitignore.NewGitIgnore(filepath.Join(abs, ".gitignore")); err == nil {
			w.matcher = matcher
		}
	}

	rootNode := &Node{Name: filepath.Base(abs), Path: abs, IsDir: true}
	w.result.Root = rootNode
	w.walkDir(abs, rootNode)
	return w.result, nil
}

type walk struct {
	root       string
	opts       Options
	result     *Result
	ignoreDirs map[string]bool
	matcher    gitignore.IgnoreMatcher
}

// walkDir populates node.Children from dir, directories first, then files,
// case-insensitive by name.
func (w *walk) walkDir(dir string, node *Node) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		node.Denied = true
		return
	}

	sort.Slice(entries, func(i, j int) bool {
		if entries[i].IsDir() != entries[j].IsDir() {
			return entries[i].IsDir()
		}
		return strings.ToLower(entries[i].Name()) < strings.ToLower(entries[j].Name())
	})

	for _, entry := range entries {
		name := entry.Name()
		path := filepath.Join(dir, name)

		if entry.IsDir() {
			if w.skipDir(name, path) {
				continue
			}
			child := &Node{Name: name, Path: path, IsDir: true}
			node.Children = append(node.Children, child)
			w.result.DirCount++
			w.walkDir(path, child)
			continue
		}

		if w.skipFile(name, path) {
			continue
		}

		fi, err := entry.Info()
		var size int64
		if err == nil {
			size = fi.Size()
		}

		w.result.FileCount++
		w.result.TotalSize += size
		ext := classify.NormalizeExt(name)
		child := &Node{Name: name, Path: path, Size: size}
		node.Children = append(node.Children, child)

		if !classify.IsTextExtension(ext) {
			continue
		}
		child.IsText = true
		w.result.TextFileCount++
		w.result.Distribution[ext]++

		rel, err := filepath.Rel(w.root, path)
		if err != nil {
			rel = name
		}
		w.result.Files = append(w.result.Files, w.readEntry(path, rel, ext, size, child))
	}
}

// readEntry reads the file under the tolerant contract: a read failure is
// recorded on the entry, never returned.
func (w *walk) readEntry(path, rel, ext string, size int64, node *Node) FileEntry {
	entry := FileEntry{Path: path, RelPath: rel, Ext: ext, Size: size, Node: node}

	if w.opts.SkipContent {
		entry.Content, entry.ReadErr = readPrefix(path, briefPrefixBytes)
		return entry
	}
	entry.Content, entry.ReadErr = os.ReadFile(path)
	return entry
}

func readPrefix(path string, n int) ([]byte, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	buf := make([]byte, n)
	read, err := io.ReadFull(f, buf)
	if read > 0 || err == io.EOF || err == io.ErrUnexpectedEOF {
		return buf[:read], nil
	}
	return nil, err
}

// skipDir applies the directory skip rules: dotted names, "!" prefixed
// names, the ignore set, and the optional gitignore matcher.
func (w *walk) skipDir(name, path string) bool {
	if strings.HasPrefix(name, ".") || strings.HasPrefix(name, "!") {
		return true
	}
	if w.ignoreDirs[name] {
		return true
	}
	return w.ignored(path, true)
}

// skipFile applies the file skip rules: dotfiles, junk filenames, Windows
// shortcuts, and the optional gitignore matcher.
func (w *walk) skipFile(name, path string) bool {
	lower := strings.ToLower(name)
	if strings.HasPrefix(name, ".") || junkFiles[lower] || strings.HasSuffix(lower, ".lnk") {
		return true
	}
	return w.ignored(path, false)
}

func (w *walk) ignored(path string, isDir bool) bool {
	if w.matcher == nil {
		return false
	}
	rel, err := filepath.Rel(w.root, path)
	if err != nil {
		return false
	}
	return w.matcher.Match(rel, isDir)
}
