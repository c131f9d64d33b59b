package itunes

import (
	"slices"
	"strings"
)

// Media is the top-level catalog category a search runs against
type Media string

// Media values
const (
	MediaMovie      Media = "movie"
	MediaPodcast    Media = "podcast"
	MediaMusic      Media = "music"
	MediaMusicVideo Media = "musicVideo"
	MediaAudiobook  Media = "audiobook"
	MediaShortFilm  Media = "shortFilm"
	MediaTVShow     Media = "tvShow"
	MediaSoftware   Media = "software"
	MediaEbook      Media = "ebook"
	MediaAll        Media = "all"
)

// Entity is the kind of catalog item a query returns
type Entity string

// Entity values
const (
	EntityAlbum           Entity = "album"
	EntityAllArtist       Entity = "allArtist"
	EntityAllTrack        Entity = "allTrack"
	EntityAudiobook       Entity = "audiobook"
	EntityAudiobookAuthor Entity = "audiobookAuthor"
	EntityEbook           Entity = "ebook"
	EntityIPadSoftware    Entity = "iPadSoftware"
	EntityMacSoftware     Entity = "macSoftware"
	EntityMix             Entity = "mix"
	EntityMovie           Entity = "movie"
	EntityMovieArtist     Entity = "movieArtist"
	EntityMusicArtist     Entity = "musicArtist"
	EntityMusicTrack      Entity = "musicTrack"
	EntityMusicVideo      Entity = "musicVideo"
	EntityPodcast         Entity = "podcast"
	EntityPodcastAuthor   Entity = "podcastAuthor"
	EntityShortFilm       Entity = "shortFilm"
	EntityShortFilmArtist Entity = "shortFilmArtist"
	EntitySoftware        Entity = "software"
	EntitySong            Entity = "song"
	EntityTVEpisode       Entity = "tvEpisode"
	EntityTVSeason        Entity = "tvSeason"
)

// Attribute is the field a search term is matched against
type Attribute string

// Attribute values
const (
	AttributeActorTerm         Attribute = "actorTerm"
	AttributeAlbumTerm         Attribute = "albumTerm"
	AttributeAllArtistTerm     Attribute = "allArtistTerm"
	AttributeAllTrackTerm      Attribute = "allTrackTerm"
	AttributeArtistTerm        Attribute = "artistTerm"
	AttributeAuthorTerm        Attribute = "authorTerm"
	AttributeComposerTerm      Attribute = "composerTerm"
	AttributeDescriptionTerm   Attribute = "descriptionTerm"
	AttributeDirectorTerm      Attribute = "directorTerm"
	AttributeFeatureFilmTerm   Attribute = "featureFilmTerm"
	AttributeGenreIndex        Attribute = "genreIndex"
	AttributeKeywordsTerm      Attribute = "keywordsTerm"
	AttributeLanguageTerm      Attribute = "languageTerm"
	AttributeMixTerm           Attribute = "mixTerm"
	AttributeMovieArtistTerm   Attribute = "movieArtistTerm"
	AttributeMovieTerm         Attribute = "movieTerm"
	AttributeProducerTerm      Attribute = "producerTerm"
	AttributeRatingIndex       Attribute = "ratingIndex"
	AttributeRatingTerm        Attribute = "ratingTerm"
	AttributeReleaseYearTerm   Attribute = "releaseYearTerm"
	AttributeShortFilmTerm     Attribute = "shortFilmTerm"
	AttributeShowTerm          Attribute = "showTerm"
	AttributeSoftwareDeveloper Attribute = "softwareDeveloper"
	AttributeSongTerm          Attribute = "songTerm"
	AttributeTitleTerm         Attribute = "titleTerm"
	AttributeTVEpisodeTerm     Attribute = "tvEpisodeTerm"
	AttributeTVSeasonTerm      Attribute = "tvSeasonTerm"
)

// mediaRule lists the companions a media value accepts
type mediaRule struct {
	entities   []Entity
	attributes []Attribute
}

var mediaOrder = []Media{
	MediaMovie, MediaPodcast, MediaMusic, MediaMusicVideo, MediaAudiobook,
	MediaShortFilm, MediaTVShow, MediaSoftware, MediaEbook, MediaAll,
}

var mediaRules = map[Media]mediaRule{
	MediaMovie: {
		entities: []Entity{EntityMovieArtist, EntityMovie},
		attributes: []Attribute{
			AttributeActorTerm, AttributeGenreIndex, AttributeArtistTerm, AttributeShortFilmTerm,
			AttributeProducerTerm, AttributeRatingTerm, AttributeDirectorTerm, AttributeReleaseYearTerm,
			AttributeFeatureFilmTerm, AttributeMovieArtistTerm, AttributeMovieTerm, AttributeRatingIndex,
			AttributeDescriptionTerm,
		},
	},
	MediaPodcast: {
		entities: []Entity{EntityPodcastAuthor, EntityPodcast},
		attributes: []Attribute{
			AttributeTitleTerm, AttributeLanguageTerm, AttributeAuthorTerm, AttributeGenreIndex,
			AttributeArtistTerm, AttributeRatingIndex, AttributeKeywordsTerm, AttributeDescriptionTerm,
		},
	},
	MediaMusic: {
		entities: []Entity{
			EntityMusicArtist, EntityMusicTrack, EntityAlbum, EntityMusicVideo, EntityMix, EntitySong,
		},
		attributes: []Attribute{
			AttributeMixTerm, AttributeGenreIndex, AttributeArtistTerm, AttributeComposerTerm,
			AttributeAlbumTerm, AttributeRatingIndex, AttributeSongTerm,
		},
	},
	MediaMusicVideo: {
		entities: []Entity{EntityMusicArtist, EntityMusicVideo},
		attributes: []Attribute{
			AttributeGenreIndex, AttributeArtistTerm, AttributeAlbumTerm, AttributeRatingIndex, AttributeSongTerm,
		},
	},
	MediaAudiobook: {
		entities:   []Entity{EntityAudiobookAuthor, EntityAudiobook},
		attributes: []Attribute{AttributeTitleTerm, AttributeAuthorTerm, AttributeGenreIndex, AttributeRatingIndex},
	},
	MediaShortFilm: {
		entities: []Entity{EntityShortFilmArtist, EntityShortFilm},
		attributes: []Attribute{
			AttributeGenreIndex, AttributeArtistTerm, AttributeShortFilmTerm, AttributeRatingIndex,
			AttributeDescriptionTerm,
		},
	},
	MediaTVShow: {
		entities: []Entity{EntityTVEpisode, EntityTVSeason},
		attributes: []Attribute{
			AttributeGenreIndex, AttributeTVEpisodeTerm, AttributeShowTerm, AttributeTVSeasonTerm,
			AttributeRatingIndex, AttributeDescriptionTerm,
		},
	},
	MediaSoftware: {
		entities:   []Entity{EntitySoftware, EntityIPadSoftware, EntityMacSoftware},
		attributes: []Attribute{AttributeSoftwareDeveloper},
	},
	MediaEbook: {
		entities: []Entity{EntityEbook},
	},
	MediaAll: {
		entities: []Entity{
			EntityMovie, EntityAlbum, EntityAllArtist, EntityPodcast, EntityMusicVideo, EntityMix,
			EntityAudiobook, EntityTVSeason, EntityAllTrack,
		},
		attributes: []Attribute{
			AttributeActorTerm, AttributeLanguageTerm, AttributeAllArtistTerm, AttributeTVEpisodeTerm,
			AttributeShortFilmTerm, AttributeDirectorTerm, AttributeReleaseYearTerm, AttributeTitleTerm,
			AttributeFeatureFilmTerm, AttributeRatingIndex, AttributeKeywordsTerm, AttributeDescriptionTerm,
			AttributeAuthorTerm, AttributeGenreIndex, AttributeMixTerm, AttributeAllTrackTerm,
			AttributeArtistTerm, AttributeComposerTerm, AttributeTVSeasonTerm, AttributeProducerTerm,
			AttributeRatingTerm, AttributeSongTerm, AttributeMovieArtistTerm, AttributeShowTerm,
			AttributeMovieTerm, AttributeAlbumTerm,
		},
	},
}

var entityOrder = []Entity{
	EntityAlbum, EntityAllArtist, EntityAllTrack, EntityAudiobook, EntityAudiobookAuthor, EntityEbook,
	EntityIPadSoftware, EntityMacSoftware, EntityMix, EntityMovie, EntityMovieArtist, EntityMusicArtist,
	EntityMusicTrack, EntityMusicVideo, EntityPodcast, EntityPodcastAuthor, EntityShortFilm,
	EntityShortFilmArtist, EntitySoftware, EntitySong, EntityTVEpisode, EntityTVSeason,
}

var attributeOrder = []Attribute{
	AttributeActorTerm, AttributeAlbumTerm, AttributeAllArtistTerm, AttributeAllTrackTerm, AttributeArtistTerm,
	AttributeAuthorTerm, AttributeComposerTerm, AttributeDescriptionTerm, AttributeDirectorTerm,
	AttributeFeatureFilmTerm, AttributeGenreIndex, AttributeKeywordsTerm, AttributeLanguageTerm,
	AttributeMixTerm, AttributeMovieArtistTerm, AttributeMovieTerm, AttributeProducerTerm,
	AttributeRatingIndex, AttributeRatingTerm, AttributeReleaseYearTerm, AttributeShortFilmTerm,
	AttributeShowTerm, AttributeSoftwareDeveloper, AttributeSongTerm, AttributeTitleTerm,
	AttributeTVEpisodeTerm, AttributeTVSeasonTerm,
}

// Medias returns every media value in table order
func Medias() []Media {
	return slices.Clone(mediaOrder)
}

// Entities returns every entity value
func Entities() []Entity {
	return slices.Clone(entityOrder)
}

// Attributes returns every attribute value
func Attributes() []Attribute {
	return slices.Clone(attributeOrder)
}

// String returns the wire code
func (m Media) String() string {
	return string(m)
}

// Valid reports whether m is in the media table
func (m Media) Valid() bool {
	_, ok := mediaRules[m]
	return ok
}

// Entities returns the entities that may be requested together with m
func (m Media) Entities() []Entity {
	return slices.Clone(mediaRules[m].entities)
}

// Attributes returns the attributes a term may be matched against for m
func (m Media) Attributes() []Attribute {
	return slices.Clone(mediaRules[m].attributes)
}

// SupportsEntity reports whether e is compatible with m
func (m Media) SupportsEntity(e Entity) bool {
	return slices.Contains(mediaRules[m].entities, e)
}

// SupportsAttribute reports whether a is compatible with m
func (m Media) SupportsAttribute(a Attribute) bool {
	return slices.Contains(mediaRules[m].attributes, a)
}

// String returns the wire code
func (e Entity) String() string {
	return string(e)
}

// String returns the wire code
func (a Attribute) String() string {
	return string(a)
}

// ParseMedia resolves a media code, case-insensitively
func ParseMedia(code string) (Media, error) {
	if m, ok := lookupFold(mediaOrder, code); ok {
		return m, nil
	}
	return "", NewInputError("media", code, "unknown media type")
}

// ParseEntity resolves an entity code, case-insensitively
func ParseEntity(code string) (Entity, error) {
	if e, ok := lookupFold(entityOrder, code); ok {
		return e, nil
	}
	return "", NewInputError("entity", code, "unknown entity")
}

// ParseAttribute resolves an attribute code, case-insensitively
func ParseAttribute(code string) (Attribute, error) {
	if a, ok := lookupFold(attributeOrder, code); ok {
		return a, nil
	}
	return "", NewInputError("attribute", code, "unknown attribute")
}

func lookupFold[T ~string](values []T, code string) (T, bool) {
	code = strings.TrimSpace(code)
	for _, v := range values {
		if strings.EqualFold(string(v), code) {
			return v, true
		}
	}
	var zero T
	return zero, false
}
