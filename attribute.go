package itunes

// Attribute types, one per media category. EbookAttribute has no constants:
// no attribute is legal for ebook searches.
type (
	MovieAttribute      string
	PodcastAttribute    string
	MusicAttribute      string
	MusicVideoAttribute string
	AudiobookAttribute  string
	ShortFilmAttribute  string
	TVShowAttribute     string
	SoftwareAttribute   string
	EbookAttribute      string
	AllAttribute        string
)

// Movie attributes.
const (
	MovieAttributeActorTerm       MovieAttribute = "actorTerm"
	MovieAttributeGenreIndex      MovieAttribute = "genreIndex"
	MovieAttributeArtistTerm      MovieAttribute = "artistTerm"
	MovieAttributeShortFilmTerm   MovieAttribute = "shortFilmTerm"
	MovieAttributeProducerTerm    MovieAttribute = "producerTerm"
	MovieAttributeRatingTerm      MovieAttribute = "ratingTerm"
	MovieAttributeDirectorTerm    MovieAttribute = "directorTerm"
	MovieAttributeReleaseYearTerm MovieAttribute = "releaseYearTerm"
	MovieAttributeFeatureFilmTerm MovieAttribute = "featureFilmTerm"
	MovieAttributeMovieArtistTerm MovieAttribute = "movieArtistTerm"
	MovieAttributeMovieTerm       MovieAttribute = "movieTerm"
	MovieAttributeRatingIndex     MovieAttribute = "ratingIndex"
	MovieAttributeDescriptionTerm MovieAttribute = "descriptionTerm"
)

// Podcast attributes.
const (
	PodcastAttributeTitleTerm       PodcastAttribute = "titleTerm"
	PodcastAttributeLanguageTerm    PodcastAttribute = "languageTerm"
	PodcastAttributeAuthorTerm      PodcastAttribute = "authorTerm"
	PodcastAttributeGenreIndex      PodcastAttribute = "genreIndex"
	PodcastAttributeArtistTerm      PodcastAttribute = "artistTerm"
	PodcastAttributeRatingIndex     PodcastAttribute = "ratingIndex"
	PodcastAttributeKeywordsTerm    PodcastAttribute = "keywordsTerm"
	PodcastAttributeDescriptionTerm PodcastAttribute = "descriptionTerm"
)

// Music attributes.
const (
	MusicAttributeMixTerm      MusicAttribute = "mixTerm"
	MusicAttributeGenreIndex   MusicAttribute = "genreIndex"
	MusicAttributeArtistTerm   MusicAttribute = "artistTerm"
	MusicAttributeComposerTerm MusicAttribute = "composerTerm"
	MusicAttributeAlbumTerm    MusicAttribute = "albumTerm"
	MusicAttributeRatingIndex  MusicAttribute = "ratingIndex"
	MusicAttributeSongTerm     MusicAttribute = "songTerm"
)

// Music video attributes.
const (
	MusicVideoAttributeGenreIndex  MusicVideoAttribute = "genreIndex"
	MusicVideoAttributeArtistTerm  MusicVideoAttribute = "artistTerm"
	MusicVideoAttributeAlbumTerm   MusicVideoAttribute = "albumTerm"
	MusicVideoAttributeRatingIndex MusicVideoAttribute = "ratingIndex"
	MusicVideoAttributeSongTerm    MusicVideoAttribute = "songTerm"
)

// Audiobook attributes.
const (
	AudiobookAttributeTitleTerm   AudiobookAttribute = "titleTerm"
	AudiobookAttributeAuthorTerm  AudiobookAttribute = "authorTerm"
	AudiobookAttributeGenreIndex  AudiobookAttribute = "genreIndex"
	AudiobookAttributeRatingIndex AudiobookAttribute = "ratingIndex"
)

// Short film attributes.
const (
	ShortFilmAttributeGenreIndex      ShortFilmAttribute = "genreIndex"
	ShortFilmAttributeArtistTerm      ShortFilmAttribute = "artistTerm"
	ShortFilmAttributeShortFilmTerm   ShortFilmAttribute = "shortFilmTerm"
	ShortFilmAttributeRatingIndex     ShortFilmAttribute = "ratingIndex"
	ShortFilmAttributeDescriptionTerm ShortFilmAttribute = "descriptionTerm"
)

// TV show attributes.
const (
	TVShowAttributeGenreIndex      TVShowAttribute = "genreIndex"
	TVShowAttributeTVEpisodeTerm   TVShowAttribute = "tvEpisodeTerm"
	TVShowAttributeShowTerm        TVShowAttribute = "showTerm"
	TVShowAttributeTVSeasonTerm    TVShowAttribute = "tvSeasonTerm"
	TVShowAttributeRatingIndex     TVShowAttribute = "ratingIndex"
	TVShowAttributeDescriptionTerm TVShowAttribute = "descriptionTerm"
)

// Software attributes.
const (
	SoftwareAttributeSoftwareDeveloper SoftwareAttribute = "softwareDeveloper"
)

// Attributes accepted when searching all media.
const (
	AllAttributeActorTerm       AllAttribute = "actorTerm"
	AllAttributeLanguageTerm    AllAttribute = "languageTerm"
	AllAttributeAllArtistTerm   AllAttribute = "allArtistTerm"
	AllAttributeTVEpisodeTerm   AllAttribute = "tvEpisodeTerm"
	AllAttributeShortFilmTerm   AllAttribute = "shortFilmTerm"
	AllAttributeDirectorTerm    AllAttribute = "directorTerm"
	AllAttributeReleaseYearTerm AllAttribute = "releaseYearTerm"
	AllAttributeTitleTerm       AllAttribute = "titleTerm"
	AllAttributeFeatureFilmTerm AllAttribute = "featureFilmTerm"
	AllAttributeRatingIndex     AllAttribute = "ratingIndex"
	AllAttributeKeywordsTerm    AllAttribute = "keywordsTerm"
	AllAttributeDescriptionTerm AllAttribute = "descriptionTerm"
	AllAttributeAuthorTerm      AllAttribute = "authorTerm"
	AllAttributeGenreIndex      AllAttribute = "genreIndex"
	AllAttributeMixTerm         AllAttribute = "mixTerm"
	AllAttributeAllTrackTerm    AllAttribute = "allTrackTerm"
	AllAttributeArtistTerm      AllAttribute = "artistTerm"
	AllAttributeComposerTerm    AllAttribute = "composerTerm"
	AllAttributeTVSeasonTerm    AllAttribute = "tvSeasonTerm"
	AllAttributeProducerTerm    AllAttribute = "producerTerm"
	AllAttributeRatingTerm      AllAttribute = "ratingTerm"
	AllAttributeSongTerm        AllAttribute = "songTerm"
	AllAttributeMovieArtistTerm AllAttribute = "movieArtistTerm"
	AllAttributeShowTerm        AllAttribute = "showTerm"
	AllAttributeMovieTerm       AllAttribute = "movieTerm"
	AllAttributeAlbumTerm       AllAttribute = "albumTerm"
)
