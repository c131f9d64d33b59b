package lookup

import "github.com/s0up4200/itunesapi/itunes"

// Option configures a Lookup
type Option func(*Lookup) error

// WithIdentifiers adds values of any kind
func WithIdentifiers(kind Kind, values ...string) Option {
	return func(l *Lookup) error {
		return l.Add(kind, values...)
	}
}

// WithIDs adds catalog ids
func WithIDs(ids ...string) Option { return WithIdentifiers(KindID, ids...) }

// WithAMGArtistIDs adds AMG artist ids
func WithAMGArtistIDs(ids ...string) Option { return WithIdentifiers(KindAMGArtistID, ids...) }

// WithAMGAlbumIDs adds AMG album ids
func WithAMGAlbumIDs(ids ...string) Option { return WithIdentifiers(KindAMGAlbumID, ids...) }

// WithAMGVideoIDs adds AMG video ids
func WithAMGVideoIDs(ids ...string) Option { return WithIdentifiers(KindAMGVideoID, ids...) }

// WithUPCs adds UPC codes
func WithUPCs(upcs ...string) Option { return WithIdentifiers(KindUPC, upcs...) }

// WithISBNs adds ISBNs
func WithISBNs(isbns ...string) Option { return WithIdentifiers(KindISBN, isbns...) }

// WithBundleIDs adds bundle identifiers
func WithBundleIDs(ids ...string) Option { return WithIdentifiers(KindBundleID, ids...) }

// WithEntity sets the entity
func WithEntity(entity itunes.Entity) Option {
	return func(l *Lookup) error {
		return l.SetEntity(entity)
	}
}

// WithLimit sets the limit
func WithLimit(limit int) Option {
	return func(l *Lookup) error {
		return l.SetLimit(limit)
	}
}

// WithSort sets the sort order
func WithSort(sort itunes.Sort) Option {
	return func(l *Lookup) error {
		return l.SetSort(sort)
	}
}

// WithCountry sets the store front
func WithCountry(country itunes.Country) Option {
	return func(l *Lookup) error {
		return l.SetCountry(country)
	}
}
