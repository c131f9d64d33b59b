package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/s0up4200/itunesapi/genres"
)

var genreID int

// genresCmd represents the genres command
var genresCmd = &cobra.Command{
	Use:   "genres",
	Short: "Print the Genre-ID appendix",
	Long:  `Print the tree of catalog genres and their ids, or a single subtree with --id.`,
	Args:  cobra.NoArgs,
	RunE:  runGenres,
}

func init() {
	rootCmd.AddCommand(genresCmd)

	genresCmd.Flags().IntVar(&genreID, "id", 0, "only print the genre with this id and its subgenres")
	addURLOnlyFlag(genresCmd)
}

func runGenres(cmd *cobra.Command, args []string) error {
	appendix := genres.Appendix{}

	if urlOnly {
		fmt.Fprintln(cmd.OutOrStdout(), appendix.URL())
		return nil
	}

	resp, err := appendix.Execute(commandContext(cmd), connector)
	if err != nil {
		return fmt.Errorf("failed to fetch genres: %w", err)
	}

	if genreID != 0 {
		g, ok := resp.Find(genreID)
		if !ok {
			return fmt.Errorf("genre %d not found", genreID)
		}
		resp = &genres.Response{Genres: map[int]genres.Genre{genreID: g}}
	}

	return printGenres(cmd.OutOrStdout(), cfg.Output.Format, resp)
}
