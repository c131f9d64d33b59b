package feed

import (
	"slices"
	"strings"

	"github.com/s0up4200/itunesapi/itunes"
)

// MediaType is the catalog section a ranked list belongs to
type MediaType string

const (
	MediaAppleMusic  MediaType = "apple-music"
	MediaITunesMusic MediaType = "itunes-music"
	MediaIOSApps     MediaType = "ios-apps"
	MediaMacOSApps   MediaType = "macos-apps"
	MediaAudiobooks  MediaType = "audiobooks"
	MediaBooks       MediaType = "books"
	MediaTVShows     MediaType = "tv-shows"
	MediaMovies      MediaType = "movies"
	MediaITunesU     MediaType = "itunes-u"
	MediaPodcasts    MediaType = "podcasts"
	MediaMusicVideos MediaType = "music-videos"
)

// FeedType is a named ranked list
type FeedType string

const (
	FeedTopAudiobooks               FeedType = "top-audiobooks"
	FeedTopPaid                     FeedType = "top-paid"
	FeedTopFree                     FeedType = "top-free"
	FeedNewAppsWeLove               FeedType = "new-apps-we-love"
	FeedNewGamesWeLove              FeedType = "new-games-we-love"
	FeedTopFreeIPad                 FeedType = "top-free-ipad"
	FeedTopGrossingIPad             FeedType = "top-grossing-ipad"
	FeedTopGrossing                 FeedType = "top-grossing"
	FeedTopFreeGames                FeedType = "top-free-games"
	FeedTopPaidGames                FeedType = "top-paid-games"
	FeedTopITunesUCollection        FeedType = "top-itunes-u-collection"
	FeedTopITunesUCourses           FeedType = "top-itunes-u-courses"
	FeedTopMovies                   FeedType = "top-movies"
	FeedTopMoviesActionAndAdventure FeedType = "top-movies-action-and-adventure"
	FeedTopMoviesDocumentary        FeedType = "top-movies-documentary"
	FeedTopMusicVideos              FeedType = "top-music-videos"
	FeedTopPodcasts                 FeedType = "top-podcasts"
	FeedTopTVEpisodes               FeedType = "top-tv-episodes"
	FeedTopTVSeasons                FeedType = "top-tv-seasons"
	FeedNewMusic                    FeedType = "new-music"
	FeedRecentReleases              FeedType = "recent-releases"
	FeedHotAlbums                   FeedType = "hot-albums"
	FeedTopSongs                    FeedType = "top-songs"
	FeedTopAlbums                   FeedType = "top-albums"
	FeedTopSongsCountry             FeedType = "top-songs-country"
	FeedHotTracks                   FeedType = "hot-tracks"
	FeedHotTracksCountry            FeedType = "hot-tracks-country"
	FeedTopMacApps                  FeedType = "top-mac-apps"
	FeedTopFreeMacApps              FeedType = "top-free-mac-apps"
	FeedTopPaidMacApps              FeedType = "top-paid-mac-apps"
	FeedTopGrossingMacApps          FeedType = "top-grossing-mac-apps"
)

// Format is the rendering the remote generator produces
type Format string

const (
	FormatJSON Format = "json"
	FormatRSS  Format = "rss"
	FormatAtom Format = "atom"
)

var mediaTypeOrder = []MediaType{
	MediaAppleMusic, MediaITunesMusic, MediaIOSApps, MediaMacOSApps, MediaAudiobooks, MediaBooks,
	MediaTVShows, MediaMovies, MediaITunesU, MediaPodcasts, MediaMusicVideos,
}

// compatible lists the feed types of each media type in feedTypeOrder. The
// first entry is the one selected when the media type changes under an
// incompatible feed.
var compatible = map[MediaType][]FeedType{
	MediaAppleMusic: {FeedNewMusic, FeedTopSongs, FeedTopAlbums, FeedHotTracks, FeedHotTracksCountry},
	MediaITunesMusic: {
		FeedNewMusic, FeedRecentReleases, FeedHotAlbums, FeedTopSongs, FeedTopAlbums, FeedHotTracksCountry,
	},
	MediaIOSApps: {
		FeedTopPaid, FeedTopFree, FeedNewAppsWeLove, FeedNewGamesWeLove, FeedTopFreeIPad,
		FeedTopGrossingIPad, FeedTopGrossing, FeedTopFreeGames, FeedTopPaidGames,
	},
	MediaMacOSApps:   {FeedTopMacApps, FeedTopFreeMacApps, FeedTopPaidMacApps, FeedTopGrossingMacApps},
	MediaAudiobooks:  {FeedTopAudiobooks},
	MediaBooks:       {FeedTopPaid, FeedTopFree},
	MediaTVShows:     {FeedTopTVEpisodes, FeedTopTVSeasons},
	MediaMovies:      {FeedTopMovies, FeedTopMoviesActionAndAdventure, FeedTopMoviesDocumentary},
	MediaITunesU:     {FeedTopITunesUCollection, FeedTopITunesUCourses},
	MediaPodcasts:    {FeedTopPodcasts},
	MediaMusicVideos: {FeedTopMusicVideos},
}

var feedTypeOrder = []FeedType{
	FeedTopAudiobooks, FeedTopPaid, FeedTopFree, FeedNewAppsWeLove, FeedNewGamesWeLove, FeedTopFreeIPad,
	FeedTopGrossingIPad, FeedTopGrossing, FeedTopFreeGames, FeedTopPaidGames, FeedTopITunesUCollection,
	FeedTopITunesUCourses, FeedTopMovies, FeedTopMoviesActionAndAdventure, FeedTopMoviesDocumentary,
	FeedTopMusicVideos, FeedTopPodcasts, FeedTopTVEpisodes, FeedTopTVSeasons, FeedNewMusic,
	FeedRecentReleases, FeedHotAlbums, FeedTopSongs, FeedTopAlbums, FeedTopSongsCountry, FeedHotTracks,
	FeedHotTracksCountry, FeedTopMacApps, FeedTopFreeMacApps, FeedTopPaidMacApps, FeedTopGrossingMacApps,
}

var formatOrder = []Format{FormatJSON, FormatRSS, FormatAtom}

// MediaTypes returns every media type in table order
func MediaTypes() []MediaType { return slices.Clone(mediaTypeOrder) }

// FeedTypes returns every feed type in table order
func FeedTypes() []FeedType { return slices.Clone(feedTypeOrder) }

// Formats returns every format
func Formats() []Format { return slices.Clone(formatOrder) }

func (m MediaType) String() string { return string(m) }
func (f FeedType) String() string  { return string(f) }
func (f Format) String() string    { return string(f) }

// FeedTypes returns the feed types available for m, in FeedTypes order
func (m MediaType) FeedTypes() []FeedType {
	return slices.Clone(compatible[m])
}

// Supports reports whether f is one of the feed types of m
func (m MediaType) Supports(f FeedType) bool {
	return slices.Contains(compatible[m], f)
}

// ParseMediaType resolves a media type code
func ParseMediaType(code string) (MediaType, error) {
	if m, ok := lookup(mediaTypeOrder, code); ok {
		return m, nil
	}
	return "", itunes.NewInputError("media type", code, "unknown")
}

// ParseFeedType resolves a feed type code
func ParseFeedType(code string) (FeedType, error) {
	if f, ok := lookup(feedTypeOrder, code); ok {
		return f, nil
	}
	return "", itunes.NewInputError("feed type", code, "unknown")
}

// ParseFormat resolves a format code
func ParseFormat(code string) (Format, error) {
	if f, ok := lookup(formatOrder, code); ok {
		return f, nil
	}
	return "", itunes.NewInputError("format", code, "must be json, rss or atom")
}

func lookup[T ~string](values []T, code string) (T, bool) {
	code = strings.ToLower(strings.TrimSpace(code))
	for _, v := range values {
		if string(v) == code {
			return v, true
		}
	}
	var zero T
	return zero, false
}
