package lookup

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/s0up4200/itunesapi/itunes"
	"github.com/s0up4200/itunesapi/transport"
)

func TestBuild(t *testing.T) {
	tests := []struct {
		name string
		opts []Option
		want string
	}{
		{
			name: "empty",
			want: "https://itunes.apple.com/lookup",
		},
		{
			name: "single id",
			opts: []Option{WithIDs("909253")},
			want: "https://itunes.apple.com/lookup?id=909253",
		},
		{
			name: "ids are sorted and comma joined",
			opts: []Option{WithIDs("909253", "284910350")},
			want: "https://itunes.apple.com/lookup?id=284910350%2C909253",
		},
		{
			name: "every parameter in order",
			opts: []Option{
				WithCountry(itunes.CountryCanada),
				WithSort(itunes.SortRecent),
				WithLimit(5),
				WithEntity(itunes.EntityAlbum),
				WithBundleIDs("com.example.app"),
				WithISBNs("9780316069359"),
				WithUPCs("720642462928"),
				WithAMGVideoIDs("17120"),
				WithAMGAlbumIDs("15175"),
				WithAMGArtistIDs("468749"),
				WithIDs("909253"),
			},
			want: "https://itunes.apple.com/lookup?id=909253&amgArtistId=468749&amgAlbumId=15175" +
				"&amgVideoId=17120&upc=720642462928&isbn=9780316069359&bundleId=com.example.app" +
				"&entity=album&limit=5&sort=recent&country=ca",
		},
		{
			name: "parameters without identifiers",
			opts: []Option{WithEntity(itunes.EntitySong), WithLimit(200)},
			want: "https://itunes.apple.com/lookup?entity=song&limit=200",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			l, err := New(tt.opts...)
			require.NoError(t, err)
			assert.Equal(t, tt.want, l.Build())
		})
	}
}

func TestIdentifierSets(t *testing.T) {
	l, err := New()
	require.NoError(t, err)

	l.AddID("909253")
	l.AddID("909253")
	l.AddID(" 909253 ", "", "  ")
	assert.Equal(t, []string{"909253"}, l.IDs())
	assert.Equal(t, "https://itunes.apple.com/lookup?id=909253", l.Build())

	l.AddID("284910350")
	assert.Equal(t, []string{"284910350", "909253"}, l.IDs())

	l.SetIDs("1")
	assert.Equal(t, []string{"1"}, l.IDs())

	l.SetIDs()
	assert.NotNil(t, l.IDs())
	assert.Empty(t, l.IDs())
	assert.Equal(t, "https://itunes.apple.com/lookup", l.Build())
}

func TestIdentifierAccessors(t *testing.T) {
	l, err := New()
	require.NoError(t, err)

	tests := []struct {
		kind Kind
		add  func(...string)
		set  func(...string)
		get  func() []string
	}{
		{KindID, l.AddID, l.SetIDs, l.IDs},
		{KindAMGArtistID, l.AddAMGArtistID, l.SetAMGArtistIDs, l.AMGArtistIDs},
		{KindAMGAlbumID, l.AddAMGAlbumID, l.SetAMGAlbumIDs, l.AMGAlbumIDs},
		{KindAMGVideoID, l.AddAMGVideoID, l.SetAMGVideoIDs, l.AMGVideoIDs},
		{KindUPC, l.AddUPC, l.SetUPCs, l.UPCs},
		{KindISBN, l.AddISBN, l.SetISBNs, l.ISBNs},
		{KindBundleID, l.AddBundleID, l.SetBundleIDs, l.BundleIDs},
	}

	for _, tt := range tests {
		t.Run(string(tt.kind), func(t *testing.T) {
			assert.Empty(t, tt.get())

			tt.add("b", "a", "b")
			assert.Equal(t, []string{"a", "b"}, tt.get())
			assert.Equal(t, tt.get(), l.Values(tt.kind))

			tt.set("c")
			assert.Equal(t, []string{"c"}, tt.get())

			tt.set()
			assert.Empty(t, tt.get())
		})
	}
}

func TestUnknownKind(t *testing.T) {
	l, err := New()
	require.NoError(t, err)

	err = l.Add("asin", "B000")
	assert.True(t, errors.Is(err, itunes.ErrInvalidInput))

	err = l.Set("asin", "B000")
	assert.True(t, errors.Is(err, itunes.ErrInvalidInput))

	_, err = New(WithIdentifiers("asin", "B000"))
	assert.True(t, errors.Is(err, itunes.ErrInvalidInput))
}

func TestSettersRejectInvalidInput(t *testing.T) {
	tests := []struct {
		name  string
		opt   Option
		field string
	}{
		{name: "limit zero", opt: WithLimit(0), field: "limit"},
		{name: "limit too large", opt: WithLimit(201), field: "limit"},
		{name: "unknown entity", opt: WithEntity("vinyl"), field: "entity"},
		{name: "unknown sort", opt: WithSort("oldest"), field: "sort"},
		{name: "unknown country", opt: WithCountry("zz"), field: "country"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := New(tt.opt)
			require.Error(t, err)

			var inputErr *itunes.InputError
			require.True(t, errors.As(err, &inputErr))
			assert.Equal(t, tt.field, inputErr.Field)
		})
	}
}

func TestAccessors(t *testing.T) {
	l, err := New(
		WithEntity("ALBUM"),
		WithLimit(10),
		WithSort("Popular"),
		WithCountry("BE"),
	)
	require.NoError(t, err)

	assert.Equal(t, itunes.EntityAlbum, l.Entity())
	assert.Equal(t, 10, l.Limit())
	assert.Equal(t, itunes.SortPopular, l.Sort())
	assert.Equal(t, itunes.CountryBelgium, l.Country())
}

func TestExecute(t *testing.T) {
	var requested string
	conn := transport.ConnectorFunc(func(_ context.Context, rawURL string) (string, error) {
		requested = rawURL
		return `{"resultCount":1,"results":[{"wrapperType":"artist","artistType":"Artist","artistName":"Jack Johnson","artistId":909253}]}`, nil
	})

	l, err := New(WithIDs("909253"))
	require.NoError(t, err)

	resp, err := l.Execute(context.Background(), conn)
	require.NoError(t, err)
	assert.Equal(t, "https://itunes.apple.com/lookup?id=909253", requested)
	require.Len(t, resp.Results, 1)
	assert.Equal(t, "Jack Johnson", resp.Results[0].ArtistName)
	assert.Equal(t, int64(909253), resp.Results[0].ArtistID)
}

func TestExecuteErrors(t *testing.T) {
	l, err := New(WithIDs("909253"))
	require.NoError(t, err)

	_, err = l.Execute(context.Background(), nil)
	assert.True(t, errors.Is(err, itunes.ErrInvalidInput))

	failing := transport.ConnectorFunc(func(context.Context, string) (string, error) {
		return "", &transport.Error{Op: "get", URL: l.Build(), Err: context.DeadlineExceeded}
	})
	_, err = l.Execute(context.Background(), failing)
	assert.True(t, errors.Is(err, transport.ErrTransport))
	assert.True(t, errors.Is(err, context.DeadlineExceeded))

	garbage := transport.ConnectorFunc(func(context.Context, string) (string, error) {
		return `{"resultCount":`, nil
	})
	_, err = l.Execute(context.Background(), garbage)
	assert.True(t, errors.Is(err, itunes.ErrParse))
}
