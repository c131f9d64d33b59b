package cmd

import (
	"bytes"
	"encoding/json"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/spf13/cobra"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/s0up4200/itunesapi/config"
	"github.com/s0up4200/itunesapi/feed"
	"github.com/s0up4200/itunesapi/genres"
	"github.com/s0up4200/itunesapi/itunes"
)

func sampleResults() []itunes.Result {
	song := itunes.NewResult()
	song.WrapperType = "track"
	song.Kind = "song"
	song.TrackID = 879273565
	song.TrackName = "Upside Down"
	song.ArtistName = "Jack Johnson"
	song.PrimaryGenreName = "Rock"
	song.TrackPrice = decimal.RequireFromString("1.29")
	song.Currency = "USD"
	song.ReleaseDate = "2006-02-07T08:00:00Z"

	artist := itunes.NewResult()
	artist.WrapperType = "artist"
	artist.ArtistID = 909253
	artist.ArtistName = "Jack Johnson"

	return []itunes.Result{song, artist}
}

func TestPrintResultsTable(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, printResults(&buf, "table", sampleResults()))

	out := buf.String()
	assert.Contains(t, out, "KIND")
	assert.Contains(t, out, "879273565")
	assert.Contains(t, out, "Upside Down")
	assert.Contains(t, out, "1.29 USD")
	assert.Contains(t, out, "2006-02-07")
	assert.Contains(t, out, "artist")
	assert.Contains(t, out, "909253")
}

func TestPrintResultsEmpty(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, printResults(&buf, "table", []itunes.Result{}))
	assert.Equal(t, "No results.\n", buf.String())

	buf.Reset()
	require.NoError(t, printResults(&buf, "json", []itunes.Result{}))
	assert.JSONEq(t, "[]", buf.String())
}

func TestPrintResultsJSON(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, printResults(&buf, "json", sampleResults()))

	var decoded []itunes.Result
	require.NoError(t, json.Unmarshal(buf.Bytes(), &decoded))
	require.Len(t, decoded, 2)
	assert.Equal(t, "Upside Down", decoded[0].TrackName)
	assert.True(t, decoded[0].TrackPrice.Equal(decimal.RequireFromString("1.29")))
}

func TestPrintFeeds(t *testing.T) {
	f := &feed.Feed{
		Title:   "Top Free iPhone Apps",
		Country: "us",
		Updated: "2018-03-23T01:46:24.000-07:00",
		Links:   []feed.Link{{Type: "self", URI: "https://example.com"}},
		Results: []feed.Result{{Kind: "iosSoftware", ID: "284882215", Name: "Facebook", ArtistName: "Facebook, Inc."}},
	}

	var buf bytes.Buffer
	require.NoError(t, printFeeds(&buf, "table", []*feed.Feed{f, f}))
	out := buf.String()
	assert.Contains(t, out, "Top Free iPhone Apps (US")
	assert.Contains(t, out, "284882215")
	assert.Equal(t, 2, bytes.Count(buf.Bytes(), []byte("Facebook, Inc.")))

	buf.Reset()
	require.NoError(t, printFeeds(&buf, "json", []*feed.Feed{f}))
	assert.Contains(t, buf.String(), `"self": "https://example.com"`)
}

func TestPrintGenres(t *testing.T) {
	resp, err := genres.ParseResponse(`{"26":{"name":"Podcasts","id":"26","subgenres":{"1301":{"name":"Arts","id":"1301"}}}}`)
	require.NoError(t, err)

	var buf bytes.Buffer
	require.NoError(t, printGenres(&buf, "table", resp))
	assert.Equal(t, "26  Podcasts\n  1301  Arts\n", buf.String())
}

func TestTruncate(t *testing.T) {
	assert.Equal(t, "short", truncate("short", 10))
	assert.Equal(t, "abcd…", truncate("abcdefgh", 5))
	assert.Equal(t, "été …", truncate("été été", 5))
}

func TestFormatPrice(t *testing.T) {
	r := itunes.NewResult()
	assert.Equal(t, "-", formatPrice(r))

	r.FormattedPrice = "Free"
	assert.Equal(t, "Free", formatPrice(r))

	r = itunes.NewResult()
	r.CollectionPrice = decimal.RequireFromString("9.9")
	assert.Equal(t, "9.90", formatPrice(r))
}

func TestGetFilterExpression(t *testing.T) {
	cfg = config.Default()
	cfg.Filters = config.FilterConfig{"free": "isFree()"}
	t.Cleanup(func() { filterExpr, preset = "", "" })

	tests := []struct {
		name    string
		expr    string
		preset  string
		want    string
		wantErr bool
	}{
		{name: "none"},
		{name: "explicit expression", expr: `kind == "song"`, want: `kind == "song"`},
		{name: "preset", preset: "Free", want: "isFree()"},
		{name: "expression wins over preset", expr: "explicit", preset: "free", want: "explicit"},
		{name: "unknown preset", preset: "cheap", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			filterExpr, preset = tt.expr, tt.preset

			got, err := getFilterExpression()
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestIsNewer(t *testing.T) {
	tests := []struct {
		current   string
		candidate string
		want      bool
		wantErr   bool
	}{
		{current: "v1.0.0", candidate: "1.1.0", want: true},
		{current: "1.2.0", candidate: "v1.2.0", want: false},
		{current: "2.0.0", candidate: "1.9.9", want: false},
		{current: "dev", candidate: "1.0.0", wantErr: true},
		{current: "1.0.0", candidate: "latest", wantErr: true},
	}

	for _, tt := range tests {
		got, err := isNewer(tt.current, tt.candidate)
		if tt.wantErr {
			assert.Error(t, err, tt.current)
			continue
		}
		require.NoError(t, err)
		assert.Equal(t, tt.want, got, "%s -> %s", tt.current, tt.candidate)
	}
}

func TestNewSearchUsesConfigDefaults(t *testing.T) {
	cfg = config.Default()
	cfg.Defaults.Country = "CA"
	cfg.Defaults.Limit = 5
	cfg.Defaults.Explicit = false

	cmd := &cobra.Command{}
	cmd.Flags().IntVarP(&searchFlags.limit, "limit", "l", 0, "")
	cmd.Flags().BoolVar(&searchFlags.explicit, "explicit", true, "")
	cmd.Flags().IntVar(&searchFlags.version, "version", 0, "")

	s, err := newSearch(cmd, "jack johnson")
	require.NoError(t, err)

	u, err := s.Build()
	require.NoError(t, err)
	assert.Equal(t, "https://itunes.apple.com/search?term=jack+johnson&country=ca&limit=5&lang=en_us&explicit=No", u)
}

func TestNewGenerators(t *testing.T) {
	cfg = config.Default()
	t.Cleanup(func() { feedFlags.types = nil })

	cmd := &cobra.Command{}
	cmd.Flags().IntVarP(&feedFlags.limit, "limit", "l", 0, "")
	cmd.Flags().BoolVar(&feedFlags.explicit, "explicit", true, "")
	require.NoError(t, cmd.Flags().Set("limit", "25"))
	feedFlags.media = string(feed.MediaIOSApps)
	feedFlags.format = string(feed.FormatRSS)
	feedFlags.types = []string{"top-free", "top-paid"}

	generators, err := newGenerators(cmd)
	require.NoError(t, err)
	require.Len(t, generators, 2)
	assert.Equal(t, "https://rss.itunes.apple.com/api/v1/us/ios-apps/top-free/25/explicit/rss", generators[0].URL())
	assert.Equal(t, "https://rss.itunes.apple.com/api/v1/us/ios-apps/top-paid/25/explicit/rss", generators[1].URL())

	feedFlags.types = []string{"top-podcasts"}
	_, err = newGenerators(cmd)
	assert.Error(t, err)
}

func TestNewGeneratorsUsesConfigDefaults(t *testing.T) {
	cfg = config.Default()
	cfg.Defaults.Country = "gb"
	cfg.Defaults.Limit = 40
	cfg.Defaults.Explicit = false
	t.Cleanup(func() { feedFlags.types = nil })

	cmd := &cobra.Command{}
	cmd.Flags().IntVarP(&feedFlags.limit, "limit", "l", 0, "")
	cmd.Flags().BoolVar(&feedFlags.explicit, "explicit", true, "")
	feedFlags.country = ""
	feedFlags.media = string(feed.MediaIOSApps)
	feedFlags.format = string(feed.FormatJSON)
	feedFlags.types = nil

	generators, err := newGenerators(cmd)
	require.NoError(t, err)
	require.Len(t, generators, 1)
	assert.Equal(t, 40, generators[0].Limit())
	assert.Equal(t, "https://rss.itunes.apple.com/api/v1/gb/ios-apps/top-paid/40/non-explicit/json", generators[0].URL())
}
