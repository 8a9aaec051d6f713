package itunes

import "net/http"

// Search holds a search term and global options until a media category
// is selected. It is immutable and safe to reuse for several categories.
type Search struct {
	term string
	cfg  searchConfig
	tr   *transport
}

// transport is shared by every Request derived from one Search.
// It is never modified after NewSearch.
type transport struct {
	baseURL string
	client  *http.Client
	obs     *observer
}

// defaultTransport serves Requests not created through a Search.
var defaultTransport = &transport{
	baseURL: DefaultBaseURL,
	client:  http.DefaultClient,
	obs:     &observer{},
}

// NewSearch starts a query for term. The term is used verbatim and may be
// empty. No I/O happens until Request.Send.
func NewSearch(term string, opts ...Option) *Search {
	cfg := defaultSearchConfig()
	for _, o := range opts {
		o.apply(&cfg)
	}

	return &Search{
		term: term,
		cfg:  cfg,
		tr: &transport{
			baseURL: cfg.baseURL,
			client:  cfg.httpClient,
			obs:     newObserver(cfg.logger, cfg.metricsReg),
		},
	}
}

// Term returns the search term.
func (s *Search) Term() string { return s.term }

// Movie selects the movie category.
func (s *Search) Movie() *Request[MovieEntity, MovieAttribute] {
	return newRequest[MovieEntity, MovieAttribute](s, MediaMovie)
}

// Podcast selects the podcast category.
func (s *Search) Podcast() *Request[PodcastEntity, PodcastAttribute] {
	return newRequest[PodcastEntity, PodcastAttribute](s, MediaPodcast)
}

// Music selects the music category.
func (s *Search) Music() *Request[MusicEntity, MusicAttribute] {
	return newRequest[MusicEntity, MusicAttribute](s, MediaMusic)
}

// MusicVideo selects the music video category.
func (s *Search) MusicVideo() *Request[MusicVideoEntity, MusicVideoAttribute] {
	return newRequest[MusicVideoEntity, MusicVideoAttribute](s, MediaMusicVideo)
}

// Audiobook selects the audiobook category.
func (s *Search) Audiobook() *Request[AudiobookEntity, AudiobookAttribute] {
	return newRequest[AudiobookEntity, AudiobookAttribute](s, MediaAudiobook)
}

// ShortFilm selects the short film category.
func (s *Search) ShortFilm() *Request[ShortFilmEntity, ShortFilmAttribute] {
	return newRequest[ShortFilmEntity, ShortFilmAttribute](s, MediaShortFilm)
}

// TVShow selects the TV show category.
func (s *Search) TVShow() *Request[TVShowEntity, TVShowAttribute] {
	return newRequest[TVShowEntity, TVShowAttribute](s, MediaTVShow)
}

// Software selects the software category.
func (s *Search) Software() *Request[SoftwareEntity, SoftwareAttribute] {
	return newRequest[SoftwareEntity, SoftwareAttribute](s, MediaSoftware)
}

// Ebook selects the ebook category. Ebook searches accept no attribute.
func (s *Search) Ebook() *Request[EbookEntity, EbookAttribute] {
	return newRequest[EbookEntity, EbookAttribute](s, MediaEbook)
}

// All searches across every category.
func (s *Search) All() *Request[AllEntity, AllAttribute] {
	return newRequest[AllEntity, AllAttribute](s, MediaAll)
}

// Select binds a media category known only at runtime. Entity and
// attribute are plain strings here; Validate reports an illegal pair
// early, and Send refuses to dispatch one.
func (s *Search) Select(m Media) (*Request[string, string], error) {
	if _, err := ParseMedia(string(m)); err != nil {
		return nil, err
	}
	return newRequest[string, string](s, m), nil
}

func newRequest[E, A Tag](s *Search, m Media) *Request[E, A] {
	return &Request[E, A]{
		params: Parameters[E, A]{
			Media:   m,
			Limit:   s.cfg.limit,
			Term:    s.term,
			Lang:    s.cfg.lang,
			Country: s.cfg.country,
		},
		tr: s.tr,
	}
}
