package walker

import (
	"os"
	"path/filepath"
	"testing"
)

// writeFile creates a file with parent directories as needed.
func writeFile(t *testing.T, root, rel, content string) {
	t.Helper()
	path := filepath.Join(root, rel)
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}
}

func TestWalk_CountsAndDistribution(t *testing.T) {
	root := t.TempDir()
	writeFile(t, root, "main.py", "print('hi')\n")
	writeFile(t, root, "README.md", "# Title\n")
	writeFile(t, root, "docs/guide.md", "# Guide\n")
	writeFile(t, root, "logo.png", "\x89PNG")

	result, err := Walk(root, Options{})
	if err != nil {
		t.Fatal(err)
	}

	if result.FileCount != 4 {
		t.Errorf("FileCount = %d, want 4", result.FileCount)
	}
	if result.DirCount != 1 {
		t.Errorf("DirCount = %d, want 1", result.DirCount)
	}
	if result.TextFileCount != 3 {
		t.Errorf("TextFileCount = %d, want 3", result.TextFileCount)
	}
	if result.Distribution[".md"] != 2 || result.Distribution[".py"] != 1 {
		t.Errorf("Distribution = %v", result.Distribution)
	}
	if _, ok := result.Distribution[".png"]; ok {
		t.Error("binary extensions must not enter the distribution")
	}
	if len(result.Files) != 3 {
		t.Fatalf("expected 3 text entries, got %d", len(result.Files))
	}
}

func TestWalk_FileContents(t *testing.T) {
	root := t.TempDir()
	writeFile(t, root, "note.txt", "hello world\n")

	result, err := Walk(root, Options{})
	if err != nil {
		t.Fatal(err)
	}
	if len(result.Files) != 1 {
		t.Fatalf("expected 1 entry, got %d", len(result.Files))
	}

	entry := result.Files[0]
	if string(entry.Content) != "hello world\n" {
		t.Errorf("Content = %q", entry.Content)
	}
	if entry.RelPath != "note.txt" {
		t.Errorf("RelPath = %q", entry.RelPath)
	}
	if entry.Ext != ".txt" {
		t.Errorf("Ext = %q", entry.Ext)
	}
	if entry.Size != int64(len("hello world\n")) {
		t.Errorf("Size = %d", entry.Size)
	}
}

func TestWalk_SkipRules(t *testing.T) {
	root := t.TempDir()
	writeFile(t, root, "keep.py", "x = 1\n")
	writeFile(t, root, ".hidden/secret.py", "x = 1\n")
	writeFile(t, root, "!archive/old.py", "x = 1\n")
	writeFile(t, root, "__pycache__/cached.py", "x = 1\n")
	writeFile(t, root, ".dotfile.py", "x = 1\n")
	writeFile(t, root, "Desktop.ini", "[shell]\n")
	writeFile(t, root, "shortcut.lnk", "bin")

	result, err := Walk(root, Options{IgnoreDirs: []string{"__pycache__"}})
	if err != nil {
		t.Fatal(err)
	}

	if result.FileCount != 1 {
		t.Errorf("FileCount = %d, want 1", result.FileCount)
	}
	if result.DirCount != 0 {
		// Skipped directories are never entered or counted.
		t.Errorf("DirCount = %d, want 0", result.DirCount)
	}
	if len(result.Files) != 1 || result.Files[0].RelPath != "keep.py" {
		t.Errorf("Files = %+v", result.Files)
	}
}

func TestWalk_RenderOrder(t *testing.T) {
	root := t.TempDir()
	writeFile(t, root, "zebra.txt", "z\n")
	writeFile(t, root, "Alpha.txt", "a\n")
	writeFile(t, root, "sub/inner.txt", "i\n")

	result, err := Walk(root, Options{})
	if err != nil {
		t.Fatal(err)
	}

	children := result.Root.Children
	if len(children) != 3 {
		t.Fatalf("expected 3 children, got %d", len(children))
	}
	// Directories first, then files case-insensitively.
	if !children[0].IsDir || children[0].Name != "sub" {
		t.Errorf("children[0] = %+v, want sub/", children[0])
	}
	if children[1].Name != "Alpha.txt" || children[2].Name != "zebra.txt" {
		t.Errorf("file order = %q, %q", children[1].Name, children[2].Name)
	}
}

func TestWalk_Gitignore(t *testing.T) {
	root := t.TempDir()
	writeFile(t, root, ".gitignore", "ignored.txt\nbuild/\n")
	writeFile(t, root, "ignored.txt", "x\n")
	writeFile(t, root, "kept.txt", "x\n")
	writeFile(t, root, "build/out.txt", "x\n")

	// Without the flag everything non-hidden is walked.
	result, err := Walk(root, Options{})
	if err != nil {
		t.Fatal(err)
	}
	if len(result.Files) != 3 {
		t.Errorf("without gitignore: %d files, want 3", len(result.Files))
	}

	result, err = Walk(root, Options{UseGitignore: true})
	if err != nil {
		t.Fatal(err)
	}
	if len(result.Files) != 1 || result.Files[0].RelPath != "kept.txt" {
		t.Errorf("with gitignore: %+v", result.Files)
	}
}

func TestWalk_SkipContent(t *testing.T) {
	root := t.TempDir()
	writeFile(t, root, "big.txt", string(make([]byte, 10000)))

	result, err := Walk(root, Options{SkipContent: true})
	if err != nil {
		t.Fatal(err)
	}
	if len(result.Files) != 1 {
		t.Fatalf("expected 1 entry, got %d", len(result.Files))
	}
	if got := len(result.Files[0].Content); got != briefPrefixBytes {
		t.Errorf("prefix read %d bytes, want %d", got, briefPrefixBytes)
	}
	if result.Files[0].Size != 10000 {
		t.Errorf("Size = %d, want full size from stat", result.Files[0].Size)
	}
}

func TestWalk_BadRoot(t *testing.T) {
	if _, err := Walk(filepath.Join(t.TempDir(), "missing"), Options{}); err == nil {
		t.Error("expected error for missing root")
	}

	file := filepath.Join(t.TempDir(), "f.txt")
	if err := os.WriteFile(file, []byte("x"), 0o644); err != nil {
		t.Fatal(err)
	}
	if _, err := Walk(file, Options{}); err == nil {
		t.Error("expected error for non-directory root")
	}
}

func TestWalk_TotalSize(t *testing.T) {
	root := t.TempDir()
	writeFile(t, root, "a.txt", "12345")
	writeFile(t, root, "b.bin", "1234567890")

	result, err := Walk(root, Options{})
	if err != nil {
		t.Fatal(err)
	}
	if result.TotalSize != 15 {
		t.Errorf("TotalSize = %d, want 15", result.TotalSize)
	}
}

func TestFileEntryPrefix(t *testing.T) {
	entry := FileEntry{Content: []byte("héllo")}
	if got := string(entry.Prefix(2)); got != "hé" {
		t.Errorf("Prefix(2) = %q, want %q", got, "hé")
	}
	if got := string(entry.Prefix(100)); got != "héllo" {
		t.Errorf("Prefix(100) = %q, want full content", got)
	}
}
