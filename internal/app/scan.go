package app

import (
	"fmt"
	"os"
	"runtime"
	"sort"
	"time"

	"github.com/atotto/clipboard"
	"github.com/dustin/go-humanize"
	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"

	"github.com/blackwell-systems/treedoc/internal/classify"
	"github.com/blackwell-systems/treedoc/internal/config"
	"github.com/blackwell-systems/treedoc/internal/output"
	"github.com/blackwell-systems/treedoc/internal/report"
	"github.com/blackwell-systems/treedoc/internal/store"
	"github.com/blackwell-systems/treedoc/internal/walker"
)

var (
	scanFlagIgnore    []string
	scanFlagOut       string
	scanFlagPDF       string
	scanFlagNoContent bool
	scanFlagClipboard bool
	scanFlagGitignore bool
	scanFlagThreads   int
	scanFlagNoHistory bool
)

var scanCmd = &cobra.Command{
	Use:   "scan [path]",
	Short: "Analyze a directory and write an architecture report",
	Long: `Scan walks the given directory (default: the current directory),
classifies every recognized text file with extension-specific heuristics,
and writes a Markdown architecture report next to the current directory.

Hidden directories, configured ignore directories, and well-known junk
files are skipped. Unreadable files are reported, not fatal.`,
	Args: cobra.MaximumNArgs(1),
	RunE: runScan,
}

func init() {
	scanCmd.Flags().StringSliceVar(&scanFlagIgnore, "ignore", nil, "Additional directory names to skip (can be repeated)")
	scanCmd.Flags().StringVar(&scanFlagOut, "out", "", "Report output path (default: ARCHITECTURE-<timestamp>.md)")
	scanCmd.Flags().StringVar(&scanFlagPDF, "pdf", "", "Also export the report as a PDF to this path")
	scanCmd.Flags().BoolVar(&scanFlagNoContent, "no-content", false, "Skip the per-file content analysis section")
	scanCmd.Flags().BoolVar(&scanFlagClipboard, "clipboard", false, "Copy the report text to the system clipboard")
	scanCmd.Flags().BoolVar(&scanFlagGitignore, "gitignore", false, "Respect a .gitignore at the scan root")
	scanCmd.Flags().IntVar(&scanFlagThreads, "threads", 0, "Number of classification workers (default: number of CPUs)")
	scanCmd.Flags().BoolVar(&scanFlagNoHistory, "no-history", false, "Do not record this scan in the history database")

	rootCmd.AddCommand(scanCmd)
}

func runScan(cmd *cobra.Command, args []string) error {
	cfg, err := config.Load(flagConfig)
	if err != nil {
		return fmt.Errorf("loading config: %w", err)
	}

	root := "."
	if len(args) > 0 {
		root = args[0]
	}

	ignoreDirs := append(append([]string{}, cfg.IgnoreDirs...), scanFlagIgnore...)

	result, err := walker.Walk(root, walker.Options{
		IgnoreDirs:   ignoreDirs,
		UseGitignore: scanFlagGitignore,
		SkipContent:  scanFlagNoContent,
	})
	if err != nil {
		return err
	}

	classifications := classifyAll(result.Files, cfg.BriefLength, !scanFlagNoContent)

	now := time.Now()
	text := report.Markdown(report.Params{
		Root:            result.Root.Path,
		GeneratedAt:     now,
		Result:          result,
		Classifications: classifications,
		IgnoreDirs:      ignoreDirs,
		WithContent:     !scanFlagNoContent,
	})

	outPath := scanFlagOut
	if outPath == "" {
		outPath = fmt.Sprintf("ARCHITECTURE-%s.md", now.Format("20060102-150405"))
	}
	if err := os.WriteFile(outPath, []byte(text), 0o644); err != nil {
		return fmt.Errorf("writing report: %w", err)
	}

	if scanFlagPDF != "" {
		if err := report.WritePDF(text, scanFlagPDF); err != nil {
			return fmt.Errorf("writing PDF: %w", err)
		}
	}

	if scanFlagClipboard {
		if err := clipboard.WriteAll(text); err != nil {
			fmt.Fprintln(os.Stderr, output.StyleWarning.Render("clipboard unavailable: "+err.Error()))
		}
	}

	if !scanFlagNoHistory {
		if err := recordSnapshot(result, outPath); err != nil {
			// History is a convenience; a broken database never fails the scan.
			fmt.Fprintln(os.Stderr, output.StyleWarning.Render("history not recorded: "+err.Error()))
		}
	}

	renderScanSummary(result, outPath)
	return nil
}

// classifyAll runs brief extraction (and, when withContent, the deep
// analyzer) over the walked files. Work is spread over a bounded worker
// pool; results land by index so report order stays deterministic.
func classifyAll(files []walker.FileEntry, briefLen int, withContent bool) []classify.FileClassification {
	threads := scanFlagThreads
	if threads <= 0 {
		threads = runtime.NumCPU()
	}

	classifications := make([]classify.FileClassification, len(files))

	var g errgroup.Group
	g.SetLimit(threads)
	for i := range files {
		g.Go(func() error {
			entry := &files[i]
			if entry.ReadErr != nil {
				entry.Node.Brief = classify.BriefReadError
				classifications[i] = classify.AnalyzeError(entry.RelPath, entry.ReadErr)
				return nil
			}
			entry.Node.Brief = classify.Brief(entry.Path, entry.Prefix(classify.BriefPrefixChars), briefLen)
			if withContent {
				classifications[i] = classify.Analyze(entry.RelPath, entry.Content)
			}
			return nil
		})
	}
	// Workers never return errors; Wait is for completion only.
	_ = g.Wait()

	if !withContent {
		return nil
	}
	return classifications
}

// recordSnapshot stores the run-level counts in the history database.
func recordSnapshot(result *walker.Result, reportPath string) error {
	db, err := store.Open(config.DBPath())
	if err != nil {
		return err
	}
	defer db.Close()

	id, err := db.CreateSnapshot(&store.Snapshot{
		Root:          result.Root.Path,
		ReportPath:    reportPath,
		Version:       appVersion,
		FileCount:     result.FileCount,
		DirCount:      result.DirCount,
		TextFileCount: result.TextFileCount,
		TotalSize:     result.TotalSize,
	})
	if err != nil {
		return err
	}
	return db.InsertTypeCounts(id, result.Distribution)
}

func renderScanSummary(result *walker.Result, outPath string) {
	fmt.Println(output.Section("Scan Complete"))
	fmt.Println()
	fmt.Println(output.Stat("Root:", result.Root.Path))
	fmt.Println(output.Stat("Files:", humanize.Comma(int64(result.FileCount))))
	fmt.Println(output.Stat("Directories:", humanize.Comma(int64(result.DirCount))))
	fmt.Println(output.Stat("Text files analyzed:", humanize.Comma(int64(result.TextFileCount))))
	fmt.Println(output.Stat("Total size:", humanize.Bytes(uint64(result.TotalSize))))

	if len(result.Distribution) > 0 && result.TextFileCount > 0 {
		fmt.Println(output.Section("Top File Types"))
		fmt.Println()
		for _, ext := range topExtensions(result.Distribution, 3) {
			percent := float64(result.Distribution[ext]) / float64(result.TextFileCount) * 100
			label := fmt.Sprintf("%s %s", classify.Emoji(ext), ext)
			fmt.Printf(" %s %s\n", output.StyleLabel.Render(label), output.ShareBar(percent, 20))
		}
	}

	fmt.Println()
	fmt.Println(output.Stat("Report:", outPath))
	fmt.Println()
}

// topExtensions returns up to n extensions by descending count, ties
// broken alphabetically.
func topExtensions(distribution map[string]int, n int) []string {
	exts := make([]string, 0, len(distribution))
	for ext := range distribution {
		exts = append(exts, ext)
	}
	sort.Slice(exts, func(i, j int) bool {
		if distribution[exts[i]] != distribution[exts[j]] {
			return distribution[exts[i]] > distribution[exts[j]]
		}
		return exts[i] < exts[j]
	})
	if len(exts) > n {
		exts = exts[:n]
	}
	return exts
}
