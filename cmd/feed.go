package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"

	"github.com/s0up4200/itunesapi/feed"
	"github.com/s0up4200/itunesapi/itunes"
)

// maxConcurrentFeeds bounds the parallel requests of one feed command
const maxConcurrentFeeds = 4

var feedFlags struct {
	country  string
	media    string
	types    []string
	limit    int
	explicit bool
	format   string
}

// feedCmd represents the feed command
var feedCmd = &cobra.Command{
	Use:   "feed",
	Short: "Read ranked lists from the Feed Generator",
	Long: `Read ranked lists such as top-free apps or new music.

--type may be repeated to fetch several lists of the same media type at once,
e.g.
  itunesapi feed --media ios-apps --type top-free --type top-paid --limit 25

Without --type the first list of the media type is used. --format only
affects the URL printed with --url-only; results are always read as JSON.`,
	Args: cobra.NoArgs,
	RunE: runFeed,
}

func init() {
	rootCmd.AddCommand(feedCmd)

	feedCmd.Flags().StringVar(&feedFlags.country, "country", "", "store front (default from config)")
	feedCmd.Flags().StringVar(&feedFlags.media, "media", string(feed.DefaultMediaType), "media type, e.g. apple-music, ios-apps, podcasts")
	feedCmd.Flags().StringSliceVarP(&feedFlags.types, "type", "t", nil, "feed type, may be repeated")
	feedCmd.Flags().IntVarP(&feedFlags.limit, "limit", "l", 0, "number of entries, 1-200 (default from config)")
	feedCmd.Flags().BoolVar(&feedFlags.explicit, "explicit", true, "include explicit entries (default from config)")
	feedCmd.Flags().StringVar(&feedFlags.format, "format", string(feed.DefaultFormat), "format of the printed URL: json, rss or atom")
	addURLOnlyFlag(feedCmd)
}

// newGenerators returns one generator per requested feed type
func newGenerators(cmd *cobra.Command) ([]*feed.Generator, error) {
	country := feedFlags.country
	if country == "" {
		country = cfg.Defaults.Country
	}
	limit := feedFlags.limit
	if !cmd.Flags().Changed("limit") {
		limit = cfg.Defaults.Limit
	}
	explicit := cfg.Defaults.Explicit
	if cmd.Flags().Changed("explicit") {
		explicit = feedFlags.explicit
	}

	base := []feed.Option{
		feed.WithCountry(itunes.Country(country)),
		feed.WithMediaType(feed.MediaType(feedFlags.media)),
		feed.WithLimit(limit),
		feed.WithExplicit(explicit),
		feed.WithFormat(feed.Format(feedFlags.format)),
	}

	if len(feedFlags.types) == 0 {
		g, err := feed.NewGenerator(base...)
		if err != nil {
			return nil, err
		}
		return []*feed.Generator{g}, nil
	}

	generators := make([]*feed.Generator, 0, len(feedFlags.types))
	for _, t := range feedFlags.types {
		opts := append(base[:len(base):len(base)], feed.WithFeedType(feed.FeedType(t)))
		g, err := feed.NewGenerator(opts...)
		if err != nil {
			return nil, err
		}
		generators = append(generators, g)
	}
	return generators, nil
}

func runFeed(cmd *cobra.Command, args []string) error {
	generators, err := newGenerators(cmd)
	if err != nil {
		return err
	}

	if urlOnly {
		for _, g := range generators {
			fmt.Fprintln(cmd.OutOrStdout(), g.URL())
		}
		return nil
	}

	feeds := make([]*feed.Feed, len(generators))

	eg, ctx := errgroup.WithContext(commandContext(cmd))
	eg.SetLimit(maxConcurrentFeeds)

	for i, g := range generators {
		i, g := i, g
		eg.Go(func() error {
			logger.Debug().
				Str("media", g.MediaType().String()).
				Str("type", g.FeedType().String()).
				Msg("Fetching feed")

			f, err := g.Execute(ctx, connector)
			if err != nil {
				return fmt.Errorf("feed %s failed: %w", g.FeedType(), err)
			}
			feeds[i] = f
			return nil
		})
	}

	if err := eg.Wait(); err != nil {
		return err
	}

	return printFeeds(cmd.OutOrStdout(), cfg.Output.Format, feeds)
}
