package feed

import (
	"context"
	"strconv"
	"strings"

	"github.com/rs/zerolog"

	"github.com/s0up4200/itunesapi/itunes"
	"github.com/s0up4200/itunesapi/transport"
)

// Endpoint is the base URL of the Feed Generator
const Endpoint = "https://rss.itunes.apple.com/api/v1/"

// Limit bounds accepted by the Feed Generator
const (
	MinLimit = 1
	MaxLimit = 200
)

// Generator defaults
const (
	DefaultCountry   = itunes.CountryUnitedStates
	DefaultMediaType = MediaAppleMusic
	DefaultFeedType  = FeedNewMusic
	DefaultLimit     = 10
	DefaultFormat    = FormatJSON
)

// Generator describes one ranked list. Every field always holds a valid
// value so URL never fails.
type Generator struct {
	country   itunes.Country
	mediaType MediaType
	feedType  FeedType
	limit     int
	explicit  bool
	format    Format
}

// NewGenerator returns a generator for the default list and applies opts in order
func NewGenerator(opts ...Option) (*Generator, error) {
	g := &Generator{
		country:   DefaultCountry,
		mediaType: DefaultMediaType,
		feedType:  DefaultFeedType,
		limit:     DefaultLimit,
		explicit:  true,
		format:    DefaultFormat,
	}
	for _, opt := range opts {
		if err := opt(g); err != nil {
			return nil, err
		}
	}
	return g, nil
}

// Country returns the store front
func (g *Generator) Country() itunes.Country { return g.country }

// SetCountry selects the store front
func (g *Generator) SetCountry(country itunes.Country) error {
	c, err := itunes.ParseCountry(country.String())
	if err != nil {
		return err
	}
	g.country = c
	return nil
}

// MediaType returns the media type
func (g *Generator) MediaType() MediaType { return g.mediaType }

// SetMediaType selects the media type. When the current feed type is not
// available for it, the feed type falls back to the first one that is.
func (g *Generator) SetMediaType(mediaType MediaType) error {
	m, err := ParseMediaType(mediaType.String())
	if err != nil {
		return err
	}
	g.mediaType = m
	if !m.Supports(g.feedType) {
		g.feedType = compatible[m][0]
	}
	return nil
}

// FeedType returns the feed type
func (g *Generator) FeedType() FeedType { return g.feedType }

// SetFeedType selects the ranked list. It must belong to the current media type.
func (g *Generator) SetFeedType(feedType FeedType) error {
	f, err := ParseFeedType(feedType.String())
	if err != nil {
		return err
	}
	if !g.mediaType.Supports(f) {
		return itunes.NewInputError("feed type", f, "not available for media type "+g.mediaType.String())
	}
	g.feedType = f
	return nil
}

// Limit returns the number of entries requested
func (g *Generator) Limit() int { return g.limit }

// SetLimit sets the number of entries requested
func (g *Generator) SetLimit(limit int) error {
	if limit < MinLimit || limit > MaxLimit {
		return itunes.NewInputError("limit", limit, "must be between 1 and 200")
	}
	g.limit = limit
	return nil
}

// Explicit reports whether explicit entries are allowed
func (g *Generator) Explicit() bool { return g.explicit }

// SetExplicit allows or excludes explicit entries
func (g *Generator) SetExplicit(explicit bool) {
	g.explicit = explicit
}

// Format returns the rendering used by URL
func (g *Generator) Format() Format { return g.format }

// SetFormat selects the rendering used by URL
func (g *Generator) SetFormat(format Format) error {
	f, err := ParseFormat(format.String())
	if err != nil {
		return err
	}
	g.format = f
	return nil
}

// URL returns the address of the list in the configured format
func (g *Generator) URL() string {
	return g.url(g.format)
}

func (g *Generator) url(format Format) string {
	explicit := "non-explicit"
	if g.explicit {
		explicit = "explicit"
	}

	var b strings.Builder
	b.WriteString(Endpoint)
	b.WriteString(g.country.String())
	b.WriteByte('/')
	b.WriteString(g.mediaType.String())
	b.WriteByte('/')
	b.WriteString(g.feedType.String())
	b.WriteByte('/')
	b.WriteString(strconv.Itoa(g.limit))
	b.WriteByte('/')
	b.WriteString(explicit)
	b.WriteByte('/')
	b.WriteString(format.String())
	return b.String()
}

// Execute fetches the JSON rendering of the list, whatever the configured
// format, and parses it. The generator is left unchanged.
func (g *Generator) Execute(ctx context.Context, conn transport.Connector) (*Feed, error) {
	if conn == nil {
		return nil, itunes.NewInputError("connector", nil, "must not be nil")
	}

	u := g.url(FormatJSON)
	body, err := conn.Get(ctx, u)
	if err != nil {
		return nil, err
	}

	f, err := ParseFeed(body)
	if err != nil {
		return nil, err
	}

	zerolog.Ctx(ctx).Debug().
		Str("url", u).
		Int("results", len(f.Results)).
		Msg("Feed fetched")

	return f, nil
}
