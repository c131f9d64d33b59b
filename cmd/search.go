package cmd

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/s0up4200/itunesapi/itunes"
	"github.com/s0up4200/itunesapi/search"
)

var searchFlags struct {
	country   string
	media     string
	entity    string
	attribute string
	limit     int
	lang      string
	version   int
	explicit  bool
}

// searchCmd represents the search command
var searchCmd = &cobra.Command{
	Use:   "search TERM...",
	Short: "Search the catalog by keyword",
	Long: `Search the catalog by keyword.

Entity and attribute must be compatible with the media type, e.g.
  itunesapi search --media podcast --entity podcast "uhh yeah dude"`,
	Args: cobra.MinimumNArgs(1),
	RunE: runSearch,
}

func init() {
	rootCmd.AddCommand(searchCmd)

	searchCmd.Flags().StringVar(&searchFlags.country, "country", "", "store front (default from config)")
	searchCmd.Flags().StringVar(&searchFlags.media, "media", "", "media type, e.g. music, podcast, software")
	searchCmd.Flags().StringVar(&searchFlags.entity, "entity", "", "kind of item to return, e.g. song, album")
	searchCmd.Flags().StringVar(&searchFlags.attribute, "attribute", "", "field the term is matched against")
	searchCmd.Flags().IntVarP(&searchFlags.limit, "limit", "l", 0, "number of results, 1-200 (default from config)")
	searchCmd.Flags().StringVar(&searchFlags.lang, "lang", "", "result language: en_us or ja_jp (default from config)")
	searchCmd.Flags().IntVar(&searchFlags.version, "version", 0, "result key version: 1 or 2")
	searchCmd.Flags().BoolVar(&searchFlags.explicit, "explicit", true, "include explicit content (default from config)")
	addFilterFlags(searchCmd)
	addURLOnlyFlag(searchCmd)
}

// newSearch builds the request from flags, falling back to the config defaults
func newSearch(cmd *cobra.Command, term string) (*search.Search, error) {
	country := searchFlags.country
	if country == "" {
		country = cfg.Defaults.Country
	}
	lang := searchFlags.lang
	if lang == "" {
		lang = cfg.Defaults.Lang
	}
	limit := searchFlags.limit
	if !cmd.Flags().Changed("limit") {
		limit = cfg.Defaults.Limit
	}
	explicit := cfg.Defaults.Explicit
	if cmd.Flags().Changed("explicit") {
		explicit = searchFlags.explicit
	}

	opts := []search.Option{
		search.WithCountry(itunes.Country(country)),
		search.WithLang(itunes.Lang(lang)),
		search.WithLimit(limit),
		search.WithExplicit(explicit),
	}
	if searchFlags.media != "" {
		opts = append(opts, search.WithMedia(itunes.Media(searchFlags.media)))
	}
	if searchFlags.entity != "" {
		opts = append(opts, search.WithEntity(itunes.Entity(searchFlags.entity)))
	}
	if searchFlags.attribute != "" {
		opts = append(opts, search.WithAttribute(itunes.Attribute(searchFlags.attribute)))
	}
	if cmd.Flags().Changed("version") {
		opts = append(opts, search.WithVersion(searchFlags.version))
	}

	return search.New(term, opts...)
}

func runSearch(cmd *cobra.Command, args []string) error {
	s, err := newSearch(cmd, strings.Join(args, " "))
	if err != nil {
		return err
	}

	if urlOnly {
		u, err := s.Build()
		if err != nil {
			return err
		}
		fmt.Fprintln(cmd.OutOrStdout(), u)
		return nil
	}

	f, err := compileFilter()
	if err != nil {
		return err
	}

	logger.Info().Str("term", s.Term()).Msg("Searching catalog")

	resp, err := s.Execute(commandContext(cmd), connector)
	if err != nil {
		return fmt.Errorf("search failed: %w", err)
	}

	results := resp.Results
	if f != nil {
		if results, err = f.Apply(results); err != nil {
			return err
		}
		logger.Debug().
			Int("before", len(resp.Results)).
			Int("after", len(results)).
			Msg("Filter applied")
	}

	return printResults(cmd.OutOrStdout(), cfg.Output.Format, results)
}
