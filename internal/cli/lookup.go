package cli

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/heartmarshall/etymology-backend/internal/domain"
	"github.com/heartmarshall/etymology-backend/internal/language"
)

func newLookupCmd(root *rootOptions) *cobra.Command {
	var (
		lang    string
		maxN    int
		all     bool
		asJSON  bool
		noRoots bool
	)

	cmd := &cobra.Command{
		Use:   "lookup <word>",
		Short: "Find the etymological connections of a word",
		Long: `Fetch the word from every enabled source, extract and validate its
connections, and print a selection of them ranked by trust.

Examples:
  etymology lookup mother
  etymology lookup "*wódr̥" --lang ine-pro
  etymology lookup night --all --json`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, logger, err := root.loadConfig(cmd.ErrOrStderr())
			if err != nil {
				return err
			}
			svc := root.factory(cfg, logger)

			res, err := svc.FindEtymologicalConnections(cmd.Context(), strings.Join(args, " "), lang, true)
			if err != nil {
				return err
			}
			if !all {
				if maxN <= 0 {
					maxN = cfg.Pipeline.DefaultMax
				}
				res.Connections = svc.SelectConnections(res.Connections, min(maxN, cfg.Pipeline.MaxMax), !noRoots)
			}

			if asJSON {
				enc := json.NewEncoder(cmd.OutOrStdout())
				enc.SetIndent("", "  ")
				return enc.Encode(res)
			}
			return printResult(cmd.OutOrStdout(), res)
		},
	}

	cmd.Flags().StringVarP(&lang, "lang", "l", "en", "language code or name of the word")
	cmd.Flags().IntVarP(&maxN, "max", "n", 0, "number of connections to show (default: pipeline.default_max)")
	cmd.Flags().BoolVar(&all, "all", false, "show every connection instead of a selection")
	cmd.Flags().BoolVar(&asJSON, "json", false, "print the result as JSON")
	cmd.Flags().BoolVar(&noRoots, "no-roots", false, "do not reserve slots for reconstructed roots")
	return cmd
}

func printResult(out io.Writer, res *domain.EtymologyResult) error {
	src := res.SourceWord
	fmt.Fprintf(out, "%s (%s)", src.Text, language.DisplayName(src.Language))
	if src.Phonetic != "" {
		fmt.Fprintf(out, " %s", src.Phonetic)
	}
	fmt.Fprintln(out)
	if src.Definition != "" {
		fmt.Fprintf(out, "  %s\n", src.Definition)
	}
	fmt.Fprintln(out)

	if len(res.Connections) == 0 {
		fmt.Fprintln(out, "no connections found")
		return nil
	}

	w := tabwriter.NewWriter(out, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "WORD\tLANGUAGE\tRELATION\tCONFIDENCE\tSOURCE\tROOT")
	for _, c := range res.Connections {
		fmt.Fprintf(w, "%s\t%s\t%s\t%.2f\t%s\t%s\n",
			c.Word.Text,
			language.DisplayName(c.Word.Language),
			c.Relationship.Type,
			c.Relationship.Confidence,
			c.Relationship.Source,
			c.Relationship.SharedRoot,
		)
	}
	return w.Flush()
}
