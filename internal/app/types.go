package app

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/blackwell-systems/treedoc/internal/classify"
	"github.com/blackwell-systems/treedoc/internal/output"
)

var typesCmd = &cobra.Command{
	Use:   "types",
	Short: "Show the recognized file types and their rules",
	Long: `Types lists every file extension treedoc analyzes, its report emoji
and group label, and whether a type-specific brief or summary rule applies.
Extensions marked "generic" fall back to the first-meaningful-line rules.`,
	RunE: runTypes,
}

func init() {
	rootCmd.AddCommand(typesCmd)
}

func runTypes(cmd *cobra.Command, args []string) error {
	fmt.Println(output.Section("Recognized File Types"))
	fmt.Println()

	tbl := output.NewTable("Ext", "", "Label", "Brief", "Summary")
	for _, ext := range classify.Extensions() {
		tbl.AddRow(
			ext,
			classify.Emoji(ext),
			classify.Label(ext),
			ruleName(classify.HasBriefRule(ext)),
			ruleName(classify.HasSummaryRule(ext)),
		)
	}
	tbl.Print()

	fmt.Println()
	fmt.Println(output.Stat("Extensions:", fmt.Sprintf("%d", tbl.Len())))
	fmt.Println()
	return nil
}

func ruleName(specific bool) string {
	if specific {
		return "type-specific"
	}
	return output.StyleMuted.Render("generic")
}
