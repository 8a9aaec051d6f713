package itunes

// Entity types. Each media category has its own type so a Request bound to
// one category cannot accept another category's entity at compile time.
type (
	MovieEntity      string
	PodcastEntity    string
	MusicEntity      string
	MusicVideoEntity string
	AudiobookEntity  string
	ShortFilmEntity  string
	TVShowEntity     string
	SoftwareEntity   string
	EbookEntity      string
	AllEntity        string
)

// Movie entities.
const (
	MovieEntityMovieArtist MovieEntity = "movieArtist"
	MovieEntityMovie       MovieEntity = "movie"
)

// Podcast entities.
const (
	PodcastEntityPodcastAuthor PodcastEntity = "podcastAuthor"
	PodcastEntityPodcast       PodcastEntity = "podcast"
)

// Music entities.
const (
	MusicEntityMusicArtist MusicEntity = "musicArtist"
	MusicEntityMusicTrack  MusicEntity = "musicTrack"
	MusicEntityAlbum       MusicEntity = "album"
	MusicEntityMusicVideo  MusicEntity = "musicVideo"
	MusicEntityMix         MusicEntity = "mix"
	MusicEntitySong        MusicEntity = "song"
)

// Music video entities.
const (
	MusicVideoEntityMusicArtist MusicVideoEntity = "musicArtist"
	MusicVideoEntityMusicVideo  MusicVideoEntity = "musicVideo"
)

// Audiobook entities.
const (
	AudiobookEntityAudiobookAuthor AudiobookEntity = "audiobookAuthor"
	AudiobookEntityAudiobook       AudiobookEntity = "audiobook"
)

// Short film entities.
const (
	ShortFilmEntityShortFilmArtist ShortFilmEntity = "shortFilmArtist"
	ShortFilmEntityShortFilm       ShortFilmEntity = "shortFilm"
)

// TV show entities.
const (
	TVShowEntityTVEpisode TVShowEntity = "tvEpisode"
	TVShowEntityTVSeason  TVShowEntity = "tvSeason"
)

// Software entities.
const (
	SoftwareEntitySoftware     SoftwareEntity = "software"
	SoftwareEntityIPadSoftware SoftwareEntity = "iPadSoftware"
	SoftwareEntityMacSoftware  SoftwareEntity = "macSoftware"
)

// Ebook entities.
const (
	EbookEntityEbook EbookEntity = "ebook"
)

// Entities accepted when searching all media.
const (
	AllEntityMovie      AllEntity = "movie"
	AllEntityAlbum      AllEntity = "album"
	AllEntityAllArtist  AllEntity = "allArtist"
	AllEntityPodcast    AllEntity = "podcast"
	AllEntityMusicVideo AllEntity = "musicVideo"
	AllEntityMix        AllEntity = "mix"
	AllEntityAudiobook  AllEntity = "audiobook"
	AllEntityTVSeason   AllEntity = "tvSeason"
	AllEntityAllTrack   AllEntity = "allTrack"
)
