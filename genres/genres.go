// Package genres fetches the Genre-ID appendix, the static tree of every
// catalog genre with its numeric id and related feed URLs.
package genres

import (
	"context"
	"errors"
	"slices"

	"github.com/rs/zerolog"

	"github.com/s0up4200/itunesapi/itunes"
	"github.com/s0up4200/itunesapi/transport"
)

// Endpoint is the fixed address of the appendix
const Endpoint = "https://itunes.apple.com/WebObjects/MZStoreServices.woa/ws/genres"

// ErrStop ends a Walk early without being reported as a failure
var ErrStop = errors.New("stop walking")

// Appendix requests the genre tree. It has no parameters.
type Appendix struct{}

// URL returns the address Execute fetches
func (Appendix) URL() string { return Endpoint }

// Execute fetches and parses the genre tree
func (a Appendix) Execute(ctx context.Context, conn transport.Connector) (*Response, error) {
	if conn == nil {
		return nil, itunes.NewInputError("connector", nil, "must not be nil")
	}

	body, err := conn.Get(ctx, a.URL())
	if err != nil {
		return nil, err
	}

	resp, err := ParseResponse(body)
	if err != nil {
		return nil, err
	}

	zerolog.Ctx(ctx).Debug().
		Int("top_level", len(resp.Genres)).
		Msg("Genre appendix fetched")

	return resp, nil
}

// Response holds the top-level genres keyed by id
type Response struct {
	Genres map[int]Genre
}

// Genre represents one node of the tree
type Genre struct {
	Name      string            `json:"name"`
	ID        string            `json:"id"`
	URL       string            `json:"url"`
	RSSURLs   map[string]string `json:"rssUrls"`
	ChartURLs map[string]string `json:"chartUrls"`
	Subgenres map[int]Genre     `json:"subgenres"`
}

// ParseResponse decodes the appendix body. Every map in the tree is non-nil
// on success.
func ParseResponse(body string) (*Response, error) {
	var tree map[int]Genre
	if err := itunes.Decode(body, &tree); err != nil {
		return nil, err
	}
	return &Response{Genres: normalize(tree)}, nil
}

func normalize(tree map[int]Genre) map[int]Genre {
	if tree == nil {
		return map[int]Genre{}
	}
	for id, g := range tree {
		if g.RSSURLs == nil {
			g.RSSURLs = map[string]string{}
		}
		if g.ChartURLs == nil {
			g.ChartURLs = map[string]string{}
		}
		g.Subgenres = normalize(g.Subgenres)
		tree[id] = g
	}
	return tree
}

// IDs returns the top-level genre ids in ascending order
func (r *Response) IDs() []int {
	return sortedKeys(r.Genres)
}

// Find searches the whole tree for id
func (r *Response) Find(id int) (Genre, bool) {
	return find(r.Genres, id)
}

func find(tree map[int]Genre, id int) (Genre, bool) {
	if g, ok := tree[id]; ok {
		return g, true
	}
	for _, k := range sortedKeys(tree) {
		if g, ok := find(tree[k].Subgenres, id); ok {
			return g, true
		}
	}
	return Genre{}, false
}

// Walk visits every genre depth-first in ascending id order, passing its
// depth (0 for top-level genres). Returning ErrStop ends the walk with a nil
// error; any other error is returned as is.
func (r *Response) Walk(fn func(g Genre, depth int) error) error {
	err := walk(r.Genres, 0, fn)
	if errors.Is(err, ErrStop) {
		return nil
	}
	return err
}

func walk(tree map[int]Genre, depth int, fn func(Genre, int) error) error {
	for _, id := range sortedKeys(tree) {
		g := tree[id]
		if err := fn(g, depth); err != nil {
			return err
		}
		if err := walk(g.Subgenres, depth+1, fn); err != nil {
			return err
		}
	}
	return nil
}

func sortedKeys(tree map[int]Genre) []int {
	ids := make([]int, 0, len(tree))
	for id := range tree {
		ids = append(ids, id)
	}
	slices.Sort(ids)
	return ids
}
