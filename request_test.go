package itunes

import (
	"context"
	"errors"
	"testing"
)

func TestRequest_URL(t *testing.T) {
	got := NewSearch("foo").Movie().URL()
	want := "https://itunes.apple.com/search?media=movie&limit=10&term=foo&lang=en_us&country=us"
	if got != want {
		t.Errorf("URL = %q, want %q", got, want)
	}
}

func TestRequest_URLChain(t *testing.T) {
	base := "https://itunes.apple.com/search?"
	tests := []struct {
		name string
		got  string
		want string
	}{
		{
			name: "entity",
			got:  NewSearch("foo").Movie().Entity(MovieEntityMovieArtist).URL(),
			want: base + "entity=movieArtist&media=movie&limit=10&term=foo&lang=en_us&country=us",
		},
		{
			name: "entity and attribute",
			got: NewSearch("foo").Movie().
				Entity(MovieEntityMovieArtist).
				Attribute(MovieAttributeMovieTerm).
				URL(),
			want: base + "entity=movieArtist&attribute=movieTerm&media=movie&limit=10&term=foo&lang=en_us&country=us",
		},
		{
			name: "attribute set before entity",
			got: NewSearch("foo").Movie().
				Attribute(MovieAttributeMovieTerm).
				Entity(MovieEntityMovieArtist).
				URL(),
			want: base + "entity=movieArtist&attribute=movieTerm&media=movie&limit=10&term=foo&lang=en_us&country=us",
		},
		{
			name: "limit",
			got: NewSearch("foo").Movie().
				Entity(MovieEntityMovieArtist).
				Attribute(MovieAttributeMovieTerm).
				Limit(30).
				URL(),
			want: base + "entity=movieArtist&attribute=movieTerm&media=movie&limit=30&term=foo&lang=en_us&country=us",
		},
		{
			name: "options",
			got: NewSearch("foo", WithLanguage("ja_jp"), WithCountry("jp")).Movie().
				Entity(MovieEntityMovieArtist).
				Attribute(MovieAttributeMovieTerm).
				Limit(30).
				URL(),
			want: base + "entity=movieArtist&attribute=movieTerm&media=movie&limit=30&term=foo&lang=ja_jp&country=jp",
		},
		{
			name: "base url override",
			got:  NewSearch("foo", WithBaseURL("http://proxy.local/search")).Music().URL(),
			want: "http://proxy.local/search?media=music&limit=10&term=foo&lang=en_us&country=us",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if tt.got != tt.want {
				t.Errorf("URL:\ngot:  %q\nwant: %q", tt.got, tt.want)
			}
		})
	}
}

func TestRequest_Chaining(t *testing.T) {
	got := NewSearch("foo").Movie().
		Entity(MovieEntityMovieArtist).
		Attribute(MovieAttributeMovieTerm).
		Limit(30).
		Parameters()

	want := Parameters[MovieEntity, MovieAttribute]{
		Term:      "foo",
		Media:     MediaMovie,
		Limit:     30,
		Lang:      "en_us",
		Country:   "us",
		Entity:    MovieEntityMovieArtist,
		Attribute: MovieAttributeMovieTerm,
	}
	if got != want {
		t.Errorf("params = %+v, want %+v", got, want)
	}
}

func TestRequest_Immutable(t *testing.T) {
	client1 := NewSearch("foo").Music().Limit(1)
	client2 := client1.Limit(2)

	if got := client1.Parameters().Limit; got != 1 {
		t.Errorf("client1 limit = %d, want 1", got)
	}
	if got := client2.Parameters().Limit; got != 2 {
		t.Errorf("client2 limit = %d, want 2", got)
	}
}

func TestRequest_SharedPrefix(t *testing.T) {
	base := NewSearch("foo").Movie()
	withEntity := base.Entity(MovieEntityMovie)
	withAttr := base.Attribute(MovieAttributeDirectorTerm)

	if p := base.Parameters(); p.Entity != "" || p.Attribute != "" {
		t.Errorf("base changed: %+v", p)
	}
	if p := withEntity.Parameters(); p.Entity != MovieEntityMovie || p.Attribute != "" {
		t.Errorf("withEntity = %+v", p)
	}
	if p := withAttr.Parameters(); p.Attribute != MovieAttributeDirectorTerm || p.Entity != "" {
		t.Errorf("withAttr = %+v", p)
	}
	if withEntity == base || withAttr == base {
		t.Error("refinement must return a new Request")
	}
}

func TestRequest_ParametersIsACopy(t *testing.T) {
	r := NewSearch("foo").Movie().Entity(MovieEntityMovieArtist)
	urlBefore := r.URL()

	p := r.Parameters()
	p.Term = "bar"
	p.Limit = 99
	p.Entity = MovieEntityMovie

	again := r.Parameters()
	if again.Term != "foo" || again.Limit != 10 || again.Entity != MovieEntityMovieArtist {
		t.Errorf("params mutated through copy: %+v", again)
	}
	if r.URL() != urlBefore {
		t.Errorf("URL changed: %q, was %q", r.URL(), urlBefore)
	}
}

func TestRequest_UntypedConstantAccepted(t *testing.T) {
	// Untyped string constants convert to the vocabulary type; the type
	// system trusts the caller and Validate catches the mistake.
	r := NewSearch("foo").Movie().Entity("song")
	if r.Parameters().Entity != "song" {
		t.Errorf("Entity = %q, want song", r.Parameters().Entity)
	}
	if err := r.Validate(); err == nil {
		t.Error("expected Validate to reject song for movie")
	}
}

func TestRequest_ZeroValue(t *testing.T) {
	var r Request[MovieEntity, MovieAttribute]

	want := DefaultBaseURL + "?media=&limit=0&term=&lang=&country="
	if got := r.URL(); got != want {
		t.Errorf("URL = %q, want %q", got, want)
	}
	if got := r.Entity(MovieEntityMovie).URL(); got != DefaultBaseURL+"?entity=movie&media=&limit=0&term=&lang=&country=" {
		t.Errorf("refined URL = %q", got)
	}

	// No media bound: Send fails before any I/O.
	_, err := r.Send(context.Background())
	if !errors.Is(err, ErrUnknownMedia) {
		t.Errorf("Send error = %v, want ErrUnknownMedia", err)
	}
}
