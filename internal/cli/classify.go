package cli

import (
	"fmt"
	"strings"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/heartmarshall/etymology-backend/internal/language"
)

func newClassifyCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "classify <language>...",
		Short: "Show how language names and codes are classified",
		Long: `Normalize each argument to a language code and print its name,
branch and family path.

Examples:
  etymology classify de "Old Norse" ine-pro`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 0, 2, ' ', 0)
			fmt.Fprintln(w, "INPUT\tCODE\tNAME\tBRANCH\tPROTO\tFAMILY")
			for _, arg := range args {
				code := language.Normalize(arg)
				name := language.DisplayName(code)
				if !language.IsKnown(code) {
					name += " (unclassified)"
				}
				fmt.Fprintf(w, "%s\t%s\t%s\t%s\t%t\t%s\n",
					arg,
					code,
					name,
					language.Branch(code),
					language.IsProto(code),
					strings.Join(language.FamilyPath(code), " < "),
				)
			}
			return w.Flush()
		},
	}
}
