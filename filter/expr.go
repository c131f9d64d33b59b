package filter

import (
	"slices"
	"strings"
	"time"

	"github.com/s0up4200/itunesapi/itunes"
)

// dateLayouts are tried in order when reading a release date
var dateLayouts = []string{time.RFC3339, "2006-01-02T15:04:05Z0700", "2006-01-02"}

func parseDate(s string) (time.Time, bool) {
	s = strings.TrimSpace(s)
	for _, layout := range dateLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return t, true
		}
	}
	return time.Time{}, false
}

// addHelperFunctions adds the helpers that do not depend on a result
func addHelperFunctions(env map[string]any) {
	// String helpers. contains, startsWith and endsWith are operators in
	// expr, the Fold variants ignore case.
	env["containsFold"] = func(str, substr string) bool {
		return strings.Contains(strings.ToLower(str), strings.ToLower(substr))
	}
	env["hasPrefixFold"] = func(str, prefix string) bool {
		return strings.HasPrefix(strings.ToLower(str), strings.ToLower(prefix))
	}
	env["hasSuffixFold"] = func(str, suffix string) bool {
		return strings.HasSuffix(strings.ToLower(str), strings.ToLower(suffix))
	}
	env["lower"] = strings.ToLower
	env["upper"] = strings.ToUpper
	// Date helpers
	env["daysAgo"] = func(days int) time.Time {
		return time.Now().AddDate(0, 0, -days)
	}
	env["parseDate"] = func(dateStr string) time.Time {
		t, _ := parseDate(dateStr)
		return t
	}
	env["now"] = time.Now
}

// newEnvironment exposes r to an expression. Compile uses the environment
// of an empty result so that unknown names fail at compile time.
func newEnvironment(r itunes.Result) map[string]any {
	env := make(map[string]any, 64)
	addHelperFunctions(env)

	env["Result"] = r

	env["wrapperType"] = r.WrapperType
	env["kind"] = r.Kind
	env["id"] = r.ID()
	env["title"] = r.Title()
	env["trackName"] = r.TrackName
	env["artistName"] = r.ArtistName
	env["collectionName"] = r.CollectionName
	env["bundleId"] = r.BundleID
	env["sellerName"] = r.SellerName
	env["primaryGenreName"] = r.PrimaryGenreName
	env["genres"] = r.Genres
	env["country"] = r.Country
	env["currency"] = r.Currency
	env["releaseDate"] = r.ReleaseDate
	env["explicit"] = r.IsExplicit()
	env["contentAdvisoryRating"] = r.ContentAdvisoryRating
	env["price"] = r.Price.InexactFloat64()
	env["trackPrice"] = r.TrackPrice.InexactFloat64()
	env["collectionPrice"] = r.CollectionPrice.InexactFloat64()
	env["trackCount"] = r.TrackCount
	env["trackTimeMillis"] = r.TrackTimeMillis
	env["averageUserRating"] = r.AverageUserRating
	env["userRatingCount"] = r.UserRatingCount
	env["fileSizeBytes"] = r.FileSizeBytes
	env["version"] = r.Version

	env["hasGenre"] = createHasGenreFunc(r.PrimaryGenreName, r.Genres)
	env["isFree"] = func() bool { return r.IsFree() }

	released, ok := parseDate(r.ReleaseDate)
	env["releasedAfter"] = createReleasedFunc(released, ok, time.Time.After)
	env["releasedBefore"] = createReleasedFunc(released, ok, time.Time.Before)

	return env
}

func createHasGenreFunc(primary string, genres []string) func(string) bool {
	lower := make([]string, 0, len(genres)+1)
	if primary != "" {
		lower = append(lower, strings.ToLower(primary))
	}
	for _, g := range genres {
		lower = append(lower, strings.ToLower(g))
	}
	return func(genre string) bool {
		return slices.Contains(lower, strings.ToLower(genre))
	}
}

// createReleasedFunc compares the release date with a date given as text.
// Results without a readable release date never match.
func createReleasedFunc(released time.Time, ok bool, cmp func(time.Time, time.Time) bool) func(string) bool {
	return func(date string) bool {
		if !ok {
			return false
		}
		t, valid := parseDate(date)
		return valid && cmp(released, t)
	}
}
