package cli

import (
	"fmt"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/heartmarshall/etymology-backend/internal/cognate"
	"github.com/heartmarshall/etymology-backend/internal/config"
	"github.com/heartmarshall/etymology-backend/internal/domain"
	"github.com/heartmarshall/etymology-backend/internal/language"
)

func newCognatesCmd() *cobra.Command {
	var (
		lang    string
		targets string
	)

	cmd := &cobra.Command{
		Use:   "cognates <word>",
		Short: "List cognates from the offline tables and sound-change rules",
		Long: `Match a word against the built-in cognate tables, falling back to
regular sound-change rules. No network access is needed.

Examples:
  etymology cognates mother
  etymology cognates thing --targets de,nl`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			targetList, err := config.ParseLanguageList(targets)
			if err != nil {
				return fmt.Errorf("--targets: %w", err)
			}

			hits := cognate.NewMatcher(domain.DefaultPriors()).
				FindCognates(args[0], language.Normalize(lang), targetList)
			out := cmd.OutOrStdout()
			if len(hits) == 0 {
				fmt.Fprintln(out, "no cognates found")
				return nil
			}

			w := tabwriter.NewWriter(out, 0, 0, 2, ' ', 0)
			fmt.Fprintln(w, "WORD\tLANGUAGE\tCONFIDENCE\tNOTES")
			for _, h := range hits {
				fmt.Fprintf(w, "%s\t%s\t%.2f\t%s\n", h.Word, language.DisplayName(h.Language), h.Confidence, h.Notes)
			}
			return w.Flush()
		},
	}

	cmd.Flags().StringVarP(&lang, "lang", "l", "en", "language of the word")
	cmd.Flags().StringVarP(&targets, "targets", "t", "", "comma-separated target languages (default: all)")
	return cmd
}
