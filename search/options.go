package search

import "github.com/s0up4200/itunesapi/itunes"

// Option configures a Search. Options run the matching setter and report its error.
type Option func(*Search) error

// WithCountry sets the store front.
func WithCountry(country itunes.Country) Option {
	return func(s *Search) error {
		return s.SetCountry(country)
	}
}

// WithMedia sets the media type.
func WithMedia(media itunes.Media) Option {
	return func(s *Search) error {
		return s.SetMedia(media)
	}
}

// WithEntity sets the entity.
func WithEntity(entity itunes.Entity) Option {
	return func(s *Search) error {
		return s.SetEntity(entity)
	}
}

// WithAttribute sets the attribute.
func WithAttribute(attribute itunes.Attribute) Option {
	return func(s *Search) error {
		return s.SetAttribute(attribute)
	}
}

// WithLimit sets the result limit.
func WithLimit(limit int) Option {
	return func(s *Search) error {
		return s.SetLimit(limit)
	}
}

// WithLang sets the result language.
func WithLang(lang itunes.Lang) Option {
	return func(s *Search) error {
		return s.SetLang(lang)
	}
}

// WithVersion sets the result key version.
func WithVersion(version int) Option {
	return func(s *Search) error {
		return s.SetVersion(version)
	}
}

// WithExplicit includes or excludes explicit content.
func WithExplicit(explicit bool) Option {
	return func(s *Search) error {
		s.SetExplicit(explicit)
		return nil
	}
}
