package filter

import (
	"errors"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/s0up4200/itunesapi/itunes"
)

func testResults() []itunes.Result {
	podcast := itunes.NewResult()
	podcast.WrapperType = "track"
	podcast.Kind = "podcast"
	podcast.TrackID = 201671138
	podcast.TrackName = "Uhh Yeah Dude"
	podcast.ArtistName = "Seth Romatelli & Jonathan Larroquette"
	podcast.PrimaryGenreName = "Comedy"
	podcast.Genres = []string{"Comedy", "Podcasts"}
	podcast.ReleaseDate = "2017-04-18T22:40:00Z"
	podcast.TrackExplicitness = "explicit"

	song := itunes.NewResult()
	song.WrapperType = "track"
	song.Kind = "song"
	song.TrackID = 879273565
	song.TrackName = "Upside Down"
	song.ArtistName = "Jack Johnson"
	song.PrimaryGenreName = "Rock"
	song.TrackPrice = decimal.RequireFromString("1.29")
	song.ReleaseDate = "2006-02-07T08:00:00Z"
	song.TrackExplicitness = "notExplicit"

	app := itunes.NewResult()
	app.WrapperType = "software"
	app.Kind = "software"
	app.TrackName = "Facebook"
	app.Price = decimal.Zero
	app.Genres = []string{"Social Networking"}
	app.ReleaseDate = "2019-02-05"
	app.AverageUserRating = 3.5

	return []itunes.Result{podcast, song, app}
}

func TestCompile(t *testing.T) {
	tests := []struct {
		name        string
		expression  string
		wantErr     bool
		errContains string
	}{
		{
			name:       "valid expression",
			expression: `hasGenre("comedy")`,
		},
		{
			name:        "empty expression",
			expression:  "  ",
			wantErr:     true,
			errContains: "empty expression",
		},
		{
			name:       "invalid syntax",
			expression: `hasGenre("unclosed`,
			wantErr:    true,
		},
		{
			name:       "unknown variable",
			expression: `rating > 3`,
			wantErr:    true,
		},
		{
			name:       "not boolean",
			expression: `trackName`,
			wantErr:    true,
		},
		{
			name:       "complex expression",
			expression: `kind == "song" and trackPrice < 2 and releasedAfter("2000-01-01") and not explicit`,
		},
		{
			name:       "full record",
			expression: `Result.TrackID > 0 and len(Result.Genres) >= 0`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f, err := Compile(tt.expression)
			if tt.wantErr {
				require.Error(t, err)
				var compErr *CompilationError
				assert.True(t, errors.As(err, &compErr))
				if tt.errContains != "" {
					assert.Contains(t, err.Error(), tt.errContains)
				}
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.expression, f.String())
		})
	}
}

func TestMatch(t *testing.T) {
	results := testResults()

	tests := []struct {
		name       string
		expression string
		want       []bool
	}{
		{name: "kind", expression: `kind == "song"`, want: []bool{false, true, false}},
		{name: "has genre", expression: `hasGenre("COMEDY")`, want: []bool{true, false, false}},
		{name: "has primary genre", expression: `hasGenre("rock")`, want: []bool{false, true, false}},
		{name: "is free", expression: `isFree()`, want: []bool{true, false, true}},
		{name: "price", expression: `trackPrice > 1`, want: []bool{false, true, false}},
		{name: "explicit", expression: `explicit`, want: []bool{true, false, false}},
		{name: "released after", expression: `releasedAfter("2010-01-01")`, want: []bool{true, false, true}},
		{name: "released before", expression: `releasedBefore("2010-01-01")`, want: []bool{false, true, false}},
		{name: "invalid date never matches", expression: `releasedAfter("soon")`, want: []bool{false, false, false}},
		{name: "contains fold", expression: `containsFold(artistName, "jack")`, want: []bool{false, true, false}},
		{name: "prefix fold", expression: `hasPrefixFold(title, "face")`, want: []bool{false, false, true}},
		{name: "suffix fold", expression: `hasSuffixFold(trackName, "DUDE")`, want: []bool{true, false, false}},
		{name: "contains operator", expression: `artistName contains "Jack"`, want: []bool{false, true, false}},
		{name: "lower helper", expression: `lower(trackName) startsWith "upside"`, want: []bool{false, true, false}},
		{name: "rating", expression: `averageUserRating >= 3.5`, want: []bool{false, false, true}},
		{name: "id", expression: `id == 879273565`, want: []bool{false, true, false}},
		{name: "genres list", expression: `"Podcasts" in genres`, want: []bool{true, false, false}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f, err := Compile(tt.expression)
			require.NoError(t, err)

			for i, r := range results {
				got, err := f.Match(r)
				require.NoError(t, err)
				assert.Equal(t, tt.want[i], got, r.TrackName)
			}
		})
	}
}

func TestApply(t *testing.T) {
	results := testResults()

	f, err := Compile(`wrapperType == "track"`)
	require.NoError(t, err)

	matches, err := f.Apply(results)
	require.NoError(t, err)
	require.Len(t, matches, 2)
	assert.Equal(t, "Uhh Yeah Dude", matches[0].TrackName)
	assert.Equal(t, "Upside Down", matches[1].TrackName)
	assert.Len(t, results, 3, "input is untouched")

	none, err := Compile(`kind == "ebook"`)
	require.NoError(t, err)
	matches, err = none.Apply(results)
	require.NoError(t, err)
	assert.NotNil(t, matches)
	assert.Empty(t, matches)

	matches, err = f.Apply(nil)
	require.NoError(t, err)
	assert.Empty(t, matches)
}

func TestEvaluationError(t *testing.T) {
	f, err := Compile(`genres[5] == "Comedy"`)
	require.NoError(t, err)

	results := testResults()
	_, err = f.Match(results[0])
	require.Error(t, err)

	var evalErr *EvaluationError
	require.True(t, errors.As(err, &evalErr))
	assert.Equal(t, "Uhh Yeah Dude", evalErr.Title)
	assert.NotNil(t, errors.Unwrap(err))

	_, err = f.Apply(results)
	assert.True(t, errors.As(err, &evalErr))
}
