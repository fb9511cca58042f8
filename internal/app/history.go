package app

import (
	"fmt"

	"github.com/dustin/go-humanize"
	"github.com/spf13/cobra"

	"github.com/blackwell-systems/treedoc/internal/config"
	"github.com/blackwell-systems/treedoc/internal/output"
	"github.com/blackwell-systems/treedoc/internal/store"
)

var historyLimit int

var historyCmd = &cobra.Command{
	Use:   "history",
	Short: "List previous scan snapshots",
	Long: `History lists the most recent scans recorded in the local database,
with the file-count change against the previous scan of the same root.`,
	RunE: runHistory,
}

func init() {
	historyCmd.Flags().IntVar(&historyLimit, "limit", 0, "Maximum snapshots to show (default: from config)")
	rootCmd.AddCommand(historyCmd)
}

func runHistory(cmd *cobra.Command, args []string) error {
	cfg, err := config.Load(flagConfig)
	if err != nil {
		return fmt.Errorf("loading config: %w", err)
	}

	limit := historyLimit
	if limit <= 0 {
		limit = cfg.HistoryLimit
	}

	db, err := store.Open(config.DBPath())
	if err != nil {
		return fmt.Errorf("opening database: %w", err)
	}
	defer func() { _ = db.Close() }()

	snaps, err := db.ListSnapshots(limit)
	if err != nil {
		return fmt.Errorf("listing snapshots: %w", err)
	}

	fmt.Println(output.Section("Scan History"))
	fmt.Println()

	if len(snaps) == 0 {
		fmt.Println(output.StyleMuted.Render(" No scans recorded yet. Run 'treedoc scan' first."))
		fmt.Println()
		return nil
	}

	tbl := output.NewTable("When", "Root", "Files", "Dirs", "Text", "Size", "Change")
	for _, s := range snaps {
		change, err := fileCountChange(db, s)
		if err != nil {
			return err
		}
		tbl.AddRow(
			humanize.Time(s.TakenAt),
			s.Root,
			fmt.Sprintf("%d", s.FileCount),
			fmt.Sprintf("%d", s.DirCount),
			fmt.Sprintf("%d", s.TextFileCount),
			humanize.Bytes(uint64(s.TotalSize)),
			change,
		)
	}
	tbl.Print()
	fmt.Println()
	return nil
}

// fileCountChange formats the file-count delta against the previous scan
// of the same root, or a muted dash when this is the first one.
func fileCountChange(db *store.DB, s store.Snapshot) (string, error) {
	prev, err := db.GetPreviousForRoot(s.Root, s.ID)
	if err != nil {
		return "", fmt.Errorf("comparing snapshots: %w", err)
	}
	if prev == nil {
		return output.StyleMuted.Render("─"), nil
	}

	delta := s.FileCount - prev.FileCount
	switch {
	case delta > 0:
		return output.StyleSuccess.Render(fmt.Sprintf("+%d", delta)), nil
	case delta < 0:
		return output.StyleError.Render(fmt.Sprintf("%d", delta)), nil
	default:
		return output.StyleMuted.Render("0"), nil
	}
}
