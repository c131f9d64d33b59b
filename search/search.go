// Package search builds and executes keyword queries against the catalog
// Search endpoint.
//
//	s, err := search.New("uhh yeah dude",
//		search.WithCountry(itunes.CountryUnitedStates),
//		search.WithMedia(itunes.MediaPodcast),
//		search.WithLimit(5),
//	)
//	if err != nil {
//		return err
//	}
//	resp, err := s.Execute(ctx, transport.Default)
//
// Every setter validates its argument immediately; Build only checks that a
// term is present.
package search

import (
	"context"
	"net/url"
	"strconv"
	"strings"

	"github.com/rs/zerolog"

	"github.com/s0up4200/itunesapi/itunes"
	"github.com/s0up4200/itunesapi/transport"
)

// Endpoint is the base URL of the Search API
const Endpoint = "https://itunes.apple.com/search"

// Limit bounds accepted by the Search API
const (
	MinLimit = 1
	MaxLimit = 200
)

// Search accumulates the parameters of one query. It is not safe for
// concurrent mutation.
type Search struct {
	term      string
	country   itunes.Country
	media     itunes.Media
	entity    itunes.Entity
	attribute itunes.Attribute
	limit     int
	lang      itunes.Lang
	version   int
	explicit  *bool
}

// New creates a search for term and applies opts in order. The first option
// that fails aborts construction.
func New(term string, opts ...Option) (*Search, error) {
	s := &Search{term: term}
	for _, opt := range opts {
		if err := opt(s); err != nil {
			return nil, err
		}
	}
	return s, nil
}

// Term returns the raw search term
func (s *Search) Term() string { return s.term }

// SetTerm replaces the search term. Blank terms are only rejected by Build.
func (s *Search) SetTerm(term string) {
	s.term = term
}

// Country returns the store front, empty when unset
func (s *Search) Country() itunes.Country { return s.country }

// SetCountry selects the store front to search
func (s *Search) SetCountry(country itunes.Country) error {
	c, err := itunes.ParseCountry(country.String())
	if err != nil {
		return err
	}
	s.country = c
	return nil
}

// Media returns the media type, empty when unset
func (s *Search) Media() itunes.Media { return s.media }

// SetMedia selects the media type. An entity or attribute configured earlier
// must be compatible with it.
func (s *Search) SetMedia(media itunes.Media) error {
	media, err := itunes.ParseMedia(media.String())
	if err != nil {
		return err
	}
	if s.entity != "" && !media.SupportsEntity(s.entity) {
		return itunes.NewInputError("media", media, "incompatible with entity "+s.entity.String())
	}
	if s.attribute != "" && !media.SupportsAttribute(s.attribute) {
		return itunes.NewInputError("media", media, "incompatible with attribute "+s.attribute.String())
	}
	s.media = media
	return nil
}

// Entity returns the entity, empty when unset
func (s *Search) Entity() itunes.Entity { return s.entity }

// SetEntity selects the kind of item returned
func (s *Search) SetEntity(entity itunes.Entity) error {
	entity, err := itunes.ParseEntity(entity.String())
	if err != nil {
		return err
	}
	if s.media != "" && !s.media.SupportsEntity(entity) {
		return itunes.NewInputError("entity", entity, "not supported by media "+s.media.String())
	}
	s.entity = entity
	return nil
}

// Attribute returns the attribute, empty when unset
func (s *Search) Attribute() itunes.Attribute { return s.attribute }

// SetAttribute selects the field the term is matched against
func (s *Search) SetAttribute(attribute itunes.Attribute) error {
	attribute, err := itunes.ParseAttribute(attribute.String())
	if err != nil {
		return err
	}
	if s.media != "" && !s.media.SupportsAttribute(attribute) {
		return itunes.NewInputError("attribute", attribute, "not supported by media "+s.media.String())
	}
	s.attribute = attribute
	return nil
}

// Limit returns the result limit, 0 when unset
func (s *Search) Limit() int { return s.limit }

// SetLimit caps the number of results
func (s *Search) SetLimit(limit int) error {
	if limit < MinLimit || limit > MaxLimit {
		return itunes.NewInputError("limit", limit, "must be between 1 and 200")
	}
	s.limit = limit
	return nil
}

// Lang returns the result language, empty when unset
func (s *Search) Lang() itunes.Lang { return s.lang }

// SetLang selects the language of the results
func (s *Search) SetLang(lang itunes.Lang) error {
	l, err := itunes.ParseLang(lang.String())
	if err != nil {
		return err
	}
	s.lang = l
	return nil
}

// Version returns the result key version, 0 when unset
func (s *Search) Version() int { return s.version }

// SetVersion selects the result key version
func (s *Search) SetVersion(version int) error {
	if version != 1 && version != 2 {
		return itunes.NewInputError("version", version, "must be 1 or 2")
	}
	s.version = version
	return nil
}

// Explicit returns the explicit flag and whether it was set
func (s *Search) Explicit() (explicit, ok bool) {
	if s.explicit == nil {
		return false, false
	}
	return *s.explicit, true
}

// SetExplicit includes or excludes explicit content
func (s *Search) SetExplicit(explicit bool) {
	s.explicit = &explicit
}

// Build serializes the query. Parameters appear in a fixed order and only
// when set.
func (s *Search) Build() (string, error) {
	term := strings.TrimSpace(s.term)
	if term == "" {
		return "", &itunes.StateError{Reason: "search term is required"}
	}

	var b strings.Builder
	b.WriteString(Endpoint)
	b.WriteString("?term=")
	b.WriteString(url.QueryEscape(term))

	param := func(key, value string) {
		b.WriteByte('&')
		b.WriteString(key)
		b.WriteByte('=')
		b.WriteString(value)
	}

	if s.country != "" {
		param("country", s.country.String())
	}
	if s.media != "" {
		param("media", s.media.String())
	}
	if s.entity != "" {
		param("entity", s.entity.String())
	}
	if s.attribute != "" {
		param("attribute", s.attribute.String())
	}
	if s.limit != 0 {
		param("limit", strconv.Itoa(s.limit))
	}
	if s.lang != "" {
		param("lang", s.lang.String())
	}
	if s.version != 0 {
		param("version", strconv.Itoa(s.version))
	}
	if s.explicit != nil {
		if *s.explicit {
			param("explicit", "Yes")
		} else {
			param("explicit", "No")
		}
	}

	return b.String(), nil
}

// Execute builds the query, fetches it through conn and parses the answer
func (s *Search) Execute(ctx context.Context, conn transport.Connector) (*itunes.Response, error) {
	if conn == nil {
		return nil, itunes.NewInputError("connector", nil, "must not be nil")
	}

	u, err := s.Build()
	if err != nil {
		return nil, err
	}

	body, err := conn.Get(ctx, u)
	if err != nil {
		return nil, err
	}

	resp, err := itunes.ParseResponse(body)
	if err != nil {
		return nil, err
	}

	zerolog.Ctx(ctx).Debug().
		Str("url", u).
		Int("result_count", resp.ResultCount).
		Msg("Search completed")

	return resp, nil
}
