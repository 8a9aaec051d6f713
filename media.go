package itunes

import "fmt"

// Media is the top-level search category of the iTunes Search API.
type Media string

// Media constants.
const (
	MediaMovie      Media = "movie"
	MediaPodcast    Media = "podcast"
	MediaMusic      Media = "music"
	MediaMusicVideo Media = "musicVideo"
	MediaAudiobook  Media = "audiobook"
	MediaShortFilm  Media = "shortFilm"
	MediaTVShow     Media = "tvShow"
	MediaSoftware   Media = "software"
	MediaEbook      Media = "ebook"
	MediaAll        Media = "all"
)

var medias = []Media{
	MediaMovie,
	MediaPodcast,
	MediaMusic,
	MediaMusicVideo,
	MediaAudiobook,
	MediaShortFilm,
	MediaTVShow,
	MediaSoftware,
	MediaEbook,
	MediaAll,
}

// Medias returns every supported media category.
func Medias() []Media {
	out := make([]Media, len(medias))
	copy(out, medias)
	return out
}

// ParseMedia resolves a media category by its wire name (case-sensitive).
func ParseMedia(s string) (Media, error) {
	m := Media(s)
	if _, ok := vocabularies[m]; !ok {
		return "", fmt.Errorf("%w: %q", ErrUnknownMedia, s)
	}
	return m, nil
}

func (m Media) String() string { return string(m) }
