package lookup

import (
	"context"
	"net/url"
	"slices"
	"strconv"
	"strings"

	"github.com/rs/zerolog"

	"github.com/s0up4200/itunesapi/itunes"
	"github.com/s0up4200/itunesapi/transport"
)

// Endpoint is the base URL of the Lookup API
const Endpoint = "https://itunes.apple.com/lookup"

// Limit bounds accepted by the Lookup API
const (
	MinLimit = 1
	MaxLimit = 200
)

// Kind names an identifier namespace. Its value is the query parameter name.
type Kind string

const (
	KindID          Kind = "id"
	KindAMGArtistID Kind = "amgArtistId"
	KindAMGAlbumID  Kind = "amgAlbumId"
	KindAMGVideoID  Kind = "amgVideoId"
	KindUPC         Kind = "upc"
	KindISBN        Kind = "isbn"
	KindBundleID    Kind = "bundleId"
)

// Kinds returns every identifier kind in serialization order
func Kinds() []Kind {
	return slices.Clone(kinds)
}

var kinds = []Kind{KindID, KindAMGArtistID, KindAMGAlbumID, KindAMGVideoID, KindUPC, KindISBN, KindBundleID}

// Lookup accumulates identifier sets and optional parameters. It is not safe
// for concurrent mutation.
type Lookup struct {
	ids     map[Kind]map[string]struct{}
	entity  itunes.Entity
	limit   int
	sort    itunes.Sort
	country itunes.Country
}

// New creates an empty lookup and applies opts in order
func New(opts ...Option) (*Lookup, error) {
	l := &Lookup{ids: make(map[Kind]map[string]struct{}, len(kinds))}
	for _, opt := range opts {
		if err := opt(l); err != nil {
			return nil, err
		}
	}
	return l, nil
}

// Add inserts values into the set of the given kind. Blank values are ignored.
func (l *Lookup) Add(kind Kind, values ...string) error {
	if !slices.Contains(kinds, kind) {
		return itunes.NewInputError("identifier kind", kind, "unknown")
	}
	if l.ids == nil {
		l.ids = make(map[Kind]map[string]struct{}, len(kinds))
	}
	set := l.ids[kind]
	if set == nil {
		set = make(map[string]struct{})
		l.ids[kind] = set
	}
	for _, v := range values {
		v = strings.TrimSpace(v)
		if v == "" {
			continue
		}
		set[v] = struct{}{}
	}
	return nil
}

// Set replaces the set of the given kind with values
func (l *Lookup) Set(kind Kind, values ...string) error {
	if !slices.Contains(kinds, kind) {
		return itunes.NewInputError("identifier kind", kind, "unknown")
	}
	delete(l.ids, kind)
	return l.Add(kind, values...)
}

// Values returns the sorted members of the set of the given kind. The result
// is never nil.
func (l *Lookup) Values(kind Kind) []string {
	set := l.ids[kind]
	out := make([]string, 0, len(set))
	for v := range set {
		out = append(out, v)
	}
	slices.Sort(out)
	return out
}

// AddID adds catalog ids
func (l *Lookup) AddID(ids ...string) { l.mustAdd(KindID, ids) }

// SetIDs replaces the catalog ids
func (l *Lookup) SetIDs(ids ...string) { l.mustSet(KindID, ids) }

// IDs returns the catalog ids
func (l *Lookup) IDs() []string { return l.Values(KindID) }

// AddAMGArtistID adds AMG artist ids
func (l *Lookup) AddAMGArtistID(ids ...string) { l.mustAdd(KindAMGArtistID, ids) }

// SetAMGArtistIDs replaces the AMG artist ids
func (l *Lookup) SetAMGArtistIDs(ids ...string) { l.mustSet(KindAMGArtistID, ids) }

// AMGArtistIDs returns the AMG artist ids
func (l *Lookup) AMGArtistIDs() []string { return l.Values(KindAMGArtistID) }

// AddAMGAlbumID adds AMG album ids
func (l *Lookup) AddAMGAlbumID(ids ...string) { l.mustAdd(KindAMGAlbumID, ids) }

// SetAMGAlbumIDs replaces the AMG album ids
func (l *Lookup) SetAMGAlbumIDs(ids ...string) { l.mustSet(KindAMGAlbumID, ids) }

// AMGAlbumIDs returns the AMG album ids
func (l *Lookup) AMGAlbumIDs() []string { return l.Values(KindAMGAlbumID) }

// AddAMGVideoID adds AMG video ids
func (l *Lookup) AddAMGVideoID(ids ...string) { l.mustAdd(KindAMGVideoID, ids) }

// SetAMGVideoIDs replaces the AMG video ids
func (l *Lookup) SetAMGVideoIDs(ids ...string) { l.mustSet(KindAMGVideoID, ids) }

// AMGVideoIDs returns the AMG video ids
func (l *Lookup) AMGVideoIDs() []string { return l.Values(KindAMGVideoID) }

// AddUPC adds UPC or EAN codes
func (l *Lookup) AddUPC(upcs ...string) { l.mustAdd(KindUPC, upcs) }

// SetUPCs replaces the UPC codes
func (l *Lookup) SetUPCs(upcs ...string) { l.mustSet(KindUPC, upcs) }

// UPCs returns the UPC codes
func (l *Lookup) UPCs() []string { return l.Values(KindUPC) }

// AddISBN adds 13 digit ISBNs
func (l *Lookup) AddISBN(isbns ...string) { l.mustAdd(KindISBN, isbns) }

// SetISBNs replaces the ISBNs
func (l *Lookup) SetISBNs(isbns ...string) { l.mustSet(KindISBN, isbns) }

// ISBNs returns the ISBNs
func (l *Lookup) ISBNs() []string { return l.Values(KindISBN) }

// AddBundleID adds application bundle identifiers
func (l *Lookup) AddBundleID(ids ...string) { l.mustAdd(KindBundleID, ids) }

// SetBundleIDs replaces the bundle identifiers
func (l *Lookup) SetBundleIDs(ids ...string) { l.mustSet(KindBundleID, ids) }

// BundleIDs returns the bundle identifiers
func (l *Lookup) BundleIDs() []string { return l.Values(KindBundleID) }

// mustAdd and mustSet are only called with known kinds
func (l *Lookup) mustAdd(kind Kind, values []string) { _ = l.Add(kind, values...) }
func (l *Lookup) mustSet(kind Kind, values []string) { _ = l.Set(kind, values...) }

// Entity returns the entity, empty when unset
func (l *Lookup) Entity() itunes.Entity { return l.entity }

// SetEntity selects the kind of related items to return alongside the matches
func (l *Lookup) SetEntity(entity itunes.Entity) error {
	e, err := itunes.ParseEntity(entity.String())
	if err != nil {
		return err
	}
	l.entity = e
	return nil
}

// Limit returns the limit, 0 when unset
func (l *Lookup) Limit() int { return l.limit }

// SetLimit caps the number of related items
func (l *Lookup) SetLimit(limit int) error {
	if limit < MinLimit || limit > MaxLimit {
		return itunes.NewInputError("limit", limit, "must be between 1 and 200")
	}
	l.limit = limit
	return nil
}

// Sort returns the sort order, empty when unset
func (l *Lookup) Sort() itunes.Sort { return l.sort }

// SetSort orders the related items
func (l *Lookup) SetSort(sort itunes.Sort) error {
	s, err := itunes.ParseSort(sort.String())
	if err != nil {
		return err
	}
	l.sort = s
	return nil
}

// Country returns the store front, empty when unset
func (l *Lookup) Country() itunes.Country { return l.country }

// SetCountry selects the store front
func (l *Lookup) SetCountry(country itunes.Country) error {
	c, err := itunes.ParseCountry(country.String())
	if err != nil {
		return err
	}
	l.country = c
	return nil
}

// Build serializes the lookup. Empty identifier sets and unset parameters
// are left out.
func (l *Lookup) Build() string {
	params := make([]string, 0, len(kinds)+4)
	for _, kind := range kinds {
		values := l.Values(kind)
		if len(values) == 0 {
			continue
		}
		params = append(params, string(kind)+"="+url.QueryEscape(strings.Join(values, ",")))
	}
	if l.entity != "" {
		params = append(params, "entity="+l.entity.String())
	}
	if l.limit > 0 {
		params = append(params, "limit="+strconv.Itoa(l.limit))
	}
	if l.sort != "" {
		params = append(params, "sort="+l.sort.String())
	}
	if l.country != "" {
		params = append(params, "country="+l.country.String())
	}

	if len(params) == 0 {
		return Endpoint
	}
	return Endpoint + "?" + strings.Join(params, "&")
}

// Execute fetches the lookup through conn and parses the answer
func (l *Lookup) Execute(ctx context.Context, conn transport.Connector) (*itunes.Response, error) {
	if conn == nil {
		return nil, itunes.NewInputError("connector", nil, "must not be nil")
	}

	u := l.Build()
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
		Msg("Lookup completed")

	return resp, nil
}
