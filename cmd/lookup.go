package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/s0up4200/itunesapi/itunes"
	"github.com/s0up4200/itunesapi/lookup"
)

var lookupFlags struct {
	ids          []string
	amgArtistIDs []string
	amgAlbumIDs  []string
	amgVideoIDs  []string
	upcs         []string
	isbns        []string
	bundleIDs    []string
	entity       string
	limit        int
	sort         string
	country      string
}

// lookupCmd represents the lookup command
var lookupCmd = &cobra.Command{
	Use:   "lookup",
	Short: "Look items up by identifier",
	Long: `Look items up by catalog id, AMG id, UPC, ISBN or bundle id.

Every identifier flag accepts a comma separated list and may be repeated.
With --entity the related items are returned as well, e.g.
  itunesapi lookup --id 909253 --entity album --limit 5`,
	Args: cobra.NoArgs,
	RunE: runLookup,
}

func init() {
	rootCmd.AddCommand(lookupCmd)

	lookupCmd.Flags().StringSliceVar(&lookupFlags.ids, "id", nil, "catalog ids")
	lookupCmd.Flags().StringSliceVar(&lookupFlags.amgArtistIDs, "amg-artist-id", nil, "AMG artist ids")
	lookupCmd.Flags().StringSliceVar(&lookupFlags.amgAlbumIDs, "amg-album-id", nil, "AMG album ids")
	lookupCmd.Flags().StringSliceVar(&lookupFlags.amgVideoIDs, "amg-video-id", nil, "AMG video ids")
	lookupCmd.Flags().StringSliceVar(&lookupFlags.upcs, "upc", nil, "UPC or EAN codes")
	lookupCmd.Flags().StringSliceVar(&lookupFlags.isbns, "isbn", nil, "13 digit ISBNs")
	lookupCmd.Flags().StringSliceVar(&lookupFlags.bundleIDs, "bundle-id", nil, "application bundle ids")
	lookupCmd.Flags().StringVar(&lookupFlags.entity, "entity", "", "kind of related items to return")
	lookupCmd.Flags().IntVarP(&lookupFlags.limit, "limit", "l", 0, "number of related items, 1-200")
	lookupCmd.Flags().StringVar(&lookupFlags.sort, "sort", "", "order of related items: popular or recent")
	lookupCmd.Flags().StringVar(&lookupFlags.country, "country", "", "store front")
	addFilterFlags(lookupCmd)
	addURLOnlyFlag(lookupCmd)
}

// newLookup builds the request from flags
func newLookup(cmd *cobra.Command) (*lookup.Lookup, error) {
	opts := []lookup.Option{
		lookup.WithIDs(lookupFlags.ids...),
		lookup.WithAMGArtistIDs(lookupFlags.amgArtistIDs...),
		lookup.WithAMGAlbumIDs(lookupFlags.amgAlbumIDs...),
		lookup.WithAMGVideoIDs(lookupFlags.amgVideoIDs...),
		lookup.WithUPCs(lookupFlags.upcs...),
		lookup.WithISBNs(lookupFlags.isbns...),
		lookup.WithBundleIDs(lookupFlags.bundleIDs...),
	}
	if lookupFlags.entity != "" {
		opts = append(opts, lookup.WithEntity(itunes.Entity(lookupFlags.entity)))
	}
	if cmd.Flags().Changed("limit") {
		opts = append(opts, lookup.WithLimit(lookupFlags.limit))
	}
	if lookupFlags.sort != "" {
		opts = append(opts, lookup.WithSort(itunes.Sort(lookupFlags.sort)))
	}
	if lookupFlags.country != "" {
		opts = append(opts, lookup.WithCountry(itunes.Country(lookupFlags.country)))
	}

	l, err := lookup.New(opts...)
	if err != nil {
		return nil, err
	}

	identifiers := 0
	for _, kind := range lookup.Kinds() {
		identifiers += len(l.Values(kind))
	}
	if identifiers == 0 {
		return nil, fmt.Errorf("at least one identifier flag is required")
	}
	return l, nil
}

func runLookup(cmd *cobra.Command, args []string) error {
	l, err := newLookup(cmd)
	if err != nil {
		return err
	}

	if urlOnly {
		fmt.Fprintln(cmd.OutOrStdout(), l.Build())
		return nil
	}

	f, err := compileFilter()
	if err != nil {
		return err
	}

	logger.Info().Strs("ids", l.IDs()).Msg("Looking up catalog items")

	resp, err := l.Execute(commandContext(cmd), connector)
	if err != nil {
		return fmt.Errorf("lookup failed: %w", err)
	}

	results := resp.Results
	if f != nil {
		if results, err = f.Apply(results); err != nil {
			return err
		}
	}

	return printResults(cmd.OutOrStdout(), cfg.Output.Format, results)
}
