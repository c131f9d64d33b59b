package feed

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/s0up4200/itunesapi/itunes"
)

// Feed represents one ranked list
type Feed struct {
	Title     string   `json:"title"`
	ID        string   `json:"id"`
	Author    Author   `json:"author"`
	Links     []Link   `json:"links"`
	Copyright string   `json:"copyright"`
	Country   string   `json:"country"`
	Icon      string   `json:"icon"`
	Updated   string   `json:"updated"`
	Results   []Result `json:"results"`
}

// Author represents the publisher of a feed
type Author struct {
	Name string `json:"name"`
	URI  string `json:"uri"`
}

// Link is a typed reference such as {"self": "https://..."}
type Link struct {
	Type string `json:"type"`
	URI  string `json:"uri"`
}

// UnmarshalJSON reads the object the generator emits for each link. The
// first entry gives the type and the URI; further entries are ignored.
func (l *Link) UnmarshalJSON(data []byte) error {
	dec := json.NewDecoder(bytes.NewReader(data))
	dec.UseNumber()

	tok, err := dec.Token()
	if err != nil {
		return err
	}
	if d, ok := tok.(json.Delim); !ok || d != '{' {
		return fmt.Errorf("link must be an object, got %s", data)
	}
	if !dec.More() {
		return errEmptyLink
	}

	tok, err = dec.Token()
	if err != nil {
		return err
	}
	key, ok := tok.(string)
	if !ok {
		return fmt.Errorf("unexpected link key %v", tok)
	}

	var value json.RawMessage
	if err := dec.Decode(&value); err != nil {
		return err
	}

	l.Type, l.URI = key, linkText(value)
	return nil
}

// linkText renders a link value as text. Strings are unquoted, numbers and
// booleans keep their literal, null and nested values give "".
func linkText(raw json.RawMessage) string {
	raw = bytes.TrimSpace(raw)
	if len(raw) == 0 {
		return ""
	}
	switch raw[0] {
	case '"':
		var s string
		if err := json.Unmarshal(raw, &s); err != nil {
			return ""
		}
		return s
	case '{', '[', 'n':
		return ""
	}
	return string(raw)
}

// MarshalJSON writes the link back in its wire shape
func (l Link) MarshalJSON() ([]byte, error) {
	return json.Marshal(map[string]string{l.Type: l.URI})
}

// Result represents one entry of a ranked list
type Result struct {
	ArtistName            string  `json:"artistName"`
	ArtistID              string  `json:"artistId"`
	ArtistURL             string  `json:"artistUrl"`
	ArtworkURL100         string  `json:"artworkUrl100"`
	Copyright             string  `json:"copyright"`
	ContentAdvisoryRating string  `json:"contentAdvisoryRating"`
	Genres                []Genre `json:"genres"`
	ID                    string  `json:"id"`
	Kind                  string  `json:"kind"`
	Name                  string  `json:"name"`
	ReleaseDate           string  `json:"releaseDate"`
	URL                   string  `json:"url"`
}

// Genre represents a genre tag on a feed entry
type Genre struct {
	GenreID string `json:"genreId"`
	Name    string `json:"name"`
	URL     string `json:"url"`
}

var (
	errMissingFeed = errors.New(`missing "feed" object`)
	errEmptyLink   = errors.New("link has no entries")
)

type envelope struct {
	Feed *Feed `json:"feed"`
}

// ParseFeed decodes a JSON feed document. Links, Results and every Genres
// slice are non-nil on success.
func ParseFeed(body string) (*Feed, error) {
	var env envelope
	if err := itunes.Decode(body, &env); err != nil {
		return nil, err
	}
	if env.Feed == nil {
		return nil, itunes.NewParseError(body, errMissingFeed)
	}

	f := env.Feed
	if f.Links == nil {
		f.Links = []Link{}
	}
	if f.Results == nil {
		f.Results = []Result{}
	}
	for i := range f.Results {
		if f.Results[i].Genres == nil {
			f.Results[i].Genres = []Genre{}
		}
	}
	return f, nil
}
