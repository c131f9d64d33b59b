package cmd

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"
	"text/tabwriter"

	"github.com/s0up4200/itunesapi/feed"
	"github.com/s0up4200/itunesapi/genres"
	"github.com/s0up4200/itunesapi/itunes"
)

const maxTitleWidth = 48

func writeJSON(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}

func truncate(s string, n int) string {
	r := []rune(s)
	if len(r) <= n {
		return s
	}
	return string(r[:n-1]) + "…"
}

// printResults writes Search and Lookup results
func printResults(w io.Writer, format string, results []itunes.Result) error {
	if format == "json" {
		return writeJSON(w, results)
	}

	if len(results) == 0 {
		_, err := fmt.Fprintln(w, "No results.")
		return err
	}

	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	fmt.Fprintln(tw, "KIND\tID\tTITLE\tARTIST\tGENRE\tPRICE\tRELEASED")
	for _, r := range results {
		kind := r.Kind
		if kind == "" {
			kind = r.WrapperType
		}
		fmt.Fprintf(tw, "%s\t%d\t%s\t%s\t%s\t%s\t%s\n",
			kind,
			r.ID(),
			truncate(r.Title(), maxTitleWidth),
			truncate(r.ArtistName, maxTitleWidth/2),
			r.PrimaryGenreName,
			formatPrice(r),
			releaseDay(r.ReleaseDate),
		)
	}
	return tw.Flush()
}

func formatPrice(r itunes.Result) string {
	if r.FormattedPrice != "" {
		return r.FormattedPrice
	}
	for _, p := range []struct {
		set   bool
		value string
	}{
		{!r.TrackPrice.IsZero(), r.TrackPrice.StringFixed(2)},
		{!r.CollectionPrice.IsZero(), r.CollectionPrice.StringFixed(2)},
		{!r.Price.IsZero(), r.Price.StringFixed(2)},
	} {
		if p.set {
			return strings.TrimSpace(p.value + " " + r.Currency)
		}
	}
	return "-"
}

func releaseDay(date string) string {
	if len(date) >= 10 {
		return date[:10]
	}
	if date == "" {
		return "-"
	}
	return date
}

// printFeeds writes one or more ranked lists
func printFeeds(w io.Writer, format string, feeds []*feed.Feed) error {
	if format == "json" {
		if len(feeds) == 1 {
			return writeJSON(w, feeds[0])
		}
		return writeJSON(w, feeds)
	}

	for i, f := range feeds {
		if i > 0 {
			fmt.Fprintln(w)
		}
		fmt.Fprintf(w, "%s (%s, updated %s)\n", f.Title, strings.ToUpper(f.Country), f.Updated)

		tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
		fmt.Fprintln(tw, "#\tKIND\tID\tNAME\tARTIST\tRELEASED")
		for pos, r := range f.Results {
			fmt.Fprintf(tw, "%d\t%s\t%s\t%s\t%s\t%s\n",
				pos+1,
				r.Kind,
				r.ID,
				truncate(r.Name, maxTitleWidth),
				truncate(r.ArtistName, maxTitleWidth/2),
				releaseDay(r.ReleaseDate),
			)
		}
		if err := tw.Flush(); err != nil {
			return err
		}
	}
	return nil
}

// printGenres writes the genre tree as an indented outline
func printGenres(w io.Writer, format string, resp *genres.Response) error {
	if format == "json" {
		return writeJSON(w, resp.Genres)
	}

	return resp.Walk(func(g genres.Genre, depth int) error {
		_, err := fmt.Fprintf(w, "%s%s  %s\n", strings.Repeat("  ", depth), g.ID, g.Name)
		return err
	})
}
