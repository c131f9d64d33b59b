package itunes

import (
	"encoding/json"
	"fmt"
	"strconv"
	"strings"

	"github.com/shopspring/decimal"
)

// Response is the envelope returned by the Search and Lookup endpoints
type Response struct {
	ResultCount int      `json:"resultCount"`
	Results     []Result `json:"results"`
}

// Result is a single catalog item. Which fields are populated depends on the
// wrapper type and kind of the item; absent fields keep their zero value.
type Result struct {
	WrapperType string `json:"wrapperType"`
	Kind        string `json:"kind"`

	ArtistID     int64  `json:"artistId"`
	CollectionID int64  `json:"collectionId"`
	TrackID      int64  `json:"trackId"`
	BundleID     string `json:"bundleId"`

	ArtistName             string `json:"artistName"`
	CollectionName         string `json:"collectionName"`
	TrackName              string `json:"trackName"`
	CollectionCensoredName string `json:"collectionCensoredName"`
	TrackCensoredName      string `json:"trackCensoredName"`

	ArtistViewURL     string `json:"artistViewUrl"`
	CollectionViewURL string `json:"collectionViewUrl"`
	TrackViewURL      string `json:"trackViewUrl"`
	FeedURL           string `json:"feedUrl"`
	PreviewURL        string `json:"previewUrl"`
	ArtworkURL30      string `json:"artworkUrl30"`
	ArtworkURL60      string `json:"artworkUrl60"`
	ArtworkURL100     string `json:"artworkUrl100"`
	ArtworkURL512     string `json:"artworkUrl512"`
	ArtworkURL600     string `json:"artworkUrl600"`

	Price              decimal.Decimal `json:"price"`
	CollectionPrice    decimal.Decimal `json:"collectionPrice"`
	TrackPrice         decimal.Decimal `json:"trackPrice"`
	TrackRentalPrice   decimal.Decimal `json:"trackRentalPrice"`
	CollectionHdPrice  decimal.Decimal `json:"collectionHdPrice"`
	TrackHdPrice       decimal.Decimal `json:"trackHdPrice"`
	TrackHdRentalPrice decimal.Decimal `json:"trackHdRentalPrice"`
	FormattedPrice     string          `json:"formattedPrice"`
	Currency           string          `json:"currency"`

	// ReleaseDate is kept exactly as sent, the upstream format varies per kind
	ReleaseDate               string `json:"releaseDate"`
	CurrentVersionReleaseDate string `json:"currentVersionReleaseDate"`

	CollectionExplicitness string `json:"collectionExplicitness"`
	TrackExplicitness      string `json:"trackExplicitness"`
	ContentAdvisoryRating  string `json:"contentAdvisoryRating"`
	TrackContentRating     string `json:"trackContentRating"`

	DiscCount       int   `json:"discCount"`
	DiscNumber      int   `json:"discNumber"`
	TrackCount      int   `json:"trackCount"`
	TrackNumber     int   `json:"trackNumber"`
	TrackTimeMillis int64 `json:"trackTimeMillis"`

	Copyright        string `json:"copyright"`
	Country          string `json:"country"`
	PrimaryGenreID   string `json:"primaryGenreId"`
	PrimaryGenreName string `json:"primaryGenreName"`
	IsStreamable     bool   `json:"isStreamable"`

	ShortDescription string `json:"shortDescription"`
	LongDescription  string `json:"longDescription"`
	Description      string `json:"description"`

	GenreIDs              []string `json:"genreIds"`
	Genres                []string `json:"genres"`
	ScreenshotURLs        []string `json:"screenshotUrls"`
	IPadScreenshotURLs    []string `json:"ipadScreenshotUrls"`
	AppleTVScreenshotURLs []string `json:"appletvScreenshotUrls"`
	Features              []string `json:"features"`
	SupportedDevices      []string `json:"supportedDevices"`
	Advisories            []string `json:"advisories"`
	LanguageCodesISO2A    []string `json:"languageCodesISO2A"`

	IsGameCenterEnabled                bool    `json:"isGameCenterEnabled"`
	IsVppDeviceBasedLicensingEnabled   bool    `json:"isVppDeviceBasedLicensingEnabled"`
	AverageUserRating                  float64 `json:"averageUserRating"`
	AverageUserRatingForCurrentVersion float64 `json:"averageUserRatingForCurrentVersion"`
	UserRatingCount                    int64   `json:"userRatingCount"`
	UserRatingCountForCurrentVersion   int64   `json:"userRatingCountForCurrentVersion"`
	FileSizeBytes                      int64   `json:"fileSizeBytes"`
	Version                            string  `json:"version"`
	SellerName                         string  `json:"sellerName"`
	MinimumOSVersion                   string  `json:"minimumOsVersion"`
}

// NewResult returns a Result whose multi-valued fields are empty, non-nil slices
func NewResult() Result {
	var r Result
	r.fillEmpty()
	return r
}

// UnmarshalJSON decodes a result, tolerating the fields that upstream sends
// either as strings or as numbers
func (r *Result) UnmarshalJSON(data []byte) error {
	type plain Result
	aux := struct {
		*plain
		PrimaryGenreID flexString   `json:"primaryGenreId"`
		GenreIDs       []flexString `json:"genreIds"`
		FileSizeBytes  flexInt64    `json:"fileSizeBytes"`
	}{plain: (*plain)(r)}

	if err := json.Unmarshal(data, &aux); err != nil {
		return err
	}

	r.PrimaryGenreID = string(aux.PrimaryGenreID)
	r.FileSizeBytes = int64(aux.FileSizeBytes)
	r.GenreIDs = make([]string, 0, len(aux.GenreIDs))
	for _, id := range aux.GenreIDs {
		r.GenreIDs = append(r.GenreIDs, string(id))
	}
	r.fillEmpty()
	return nil
}

func (r *Result) fillEmpty() {
	for _, s := range []*[]string{
		&r.GenreIDs, &r.Genres, &r.ScreenshotURLs, &r.IPadScreenshotURLs, &r.AppleTVScreenshotURLs,
		&r.Features, &r.SupportedDevices, &r.Advisories, &r.LanguageCodesISO2A,
	} {
		if *s == nil {
			*s = []string{}
		}
	}
}

// Title returns the most specific name available for the item
func (r *Result) Title() string {
	if r.TrackName != "" {
		return r.TrackName
	}
	if r.CollectionName != "" {
		return r.CollectionName
	}
	return r.ArtistName
}

// ID returns the most specific catalog identifier available for the item
func (r *Result) ID() int64 {
	if r.TrackID != 0 {
		return r.TrackID
	}
	if r.CollectionID != 0 {
		return r.CollectionID
	}
	return r.ArtistID
}

// ViewURL returns the store page of the item
func (r *Result) ViewURL() string {
	if r.TrackViewURL != "" {
		return r.TrackViewURL
	}
	if r.CollectionViewURL != "" {
		return r.CollectionViewURL
	}
	return r.ArtistViewURL
}

// IsExplicit reports whether the track or its collection is flagged explicit
func (r *Result) IsExplicit() bool {
	return r.TrackExplicitness == "explicit" || r.CollectionExplicitness == "explicit"
}

// IsFree reports whether every price of the item that is set equals zero
func (r *Result) IsFree() bool {
	for _, p := range []decimal.Decimal{r.Price, r.TrackPrice, r.CollectionPrice} {
		if p.IsPositive() {
			return false
		}
	}
	return true
}

// flexString accepts a JSON string or number
type flexString string

func (s *flexString) UnmarshalJSON(b []byte) error {
	if string(b) == "null" {
		return nil
	}
	if len(b) > 0 && b[0] == '"' {
		var v string
		if err := json.Unmarshal(b, &v); err != nil {
			return err
		}
		*s = flexString(v)
		return nil
	}
	var n json.Number
	if err := json.Unmarshal(b, &n); err != nil {
		return err
	}
	*s = flexString(n.String())
	return nil
}

// flexInt64 accepts a JSON number or a string holding one
type flexInt64 int64

func (n *flexInt64) UnmarshalJSON(b []byte) error {
	s := strings.Trim(string(b), `"`)
	if s == "" || s == "null" {
		return nil
	}
	v, err := strconv.ParseInt(s, 10, 64)
	if err != nil {
		return fmt.Errorf("invalid integer %s: %w", b, err)
	}
	*n = flexInt64(v)
	return nil
}
