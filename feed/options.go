package feed

import "github.com/s0up4200/itunesapi/itunes"

// Option configures a Generator
type Option func(*Generator) error

// WithCountry sets the store front
func WithCountry(country itunes.Country) Option {
	return func(g *Generator) error {
		return g.SetCountry(country)
	}
}

// WithMediaType sets the media type
func WithMediaType(mediaType MediaType) Option {
	return func(g *Generator) error {
		return g.SetMediaType(mediaType)
	}
}

// WithFeedType sets the feed type. Place it after WithMediaType.
func WithFeedType(feedType FeedType) Option {
	return func(g *Generator) error {
		return g.SetFeedType(feedType)
	}
}

// WithLimit sets the number of entries
func WithLimit(limit int) Option {
	return func(g *Generator) error {
		return g.SetLimit(limit)
	}
}

// WithExplicit allows or excludes explicit entries
func WithExplicit(explicit bool) Option {
	return func(g *Generator) error {
		g.SetExplicit(explicit)
		return nil
	}
}

// WithFormat sets the rendering used by URL
func WithFormat(format Format) Option {
	return func(g *Generator) error {
		return g.SetFormat(format)
	}
}
