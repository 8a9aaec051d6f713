package itunes

import (
	"fmt"
	"slices"
)

// Tag is the constraint satisfied by every entity and attribute type.
// Plain string is allowed too so that Select can return a request for a
// media category only known at runtime.
type Tag interface {
	~string
}

// vocabulary holds the legal entity and attribute values of one media.
type vocabulary struct {
	entities   []string
	attributes []string
}

func tags[T Tag](vs ...T) []string {
	out := make([]string, len(vs))
	for i, v := range vs {
		out[i] = string(v)
	}
	return out
}

// vocabularies is built from the typed constants so the compile-time and
// runtime views of the table cannot drift apart.
var vocabularies = map[Media]vocabulary{
	MediaMovie: {
		entities: tags(MovieEntityMovieArtist, MovieEntityMovie),
		attributes: tags(
			MovieAttributeActorTerm, MovieAttributeGenreIndex, MovieAttributeArtistTerm,
			MovieAttributeShortFilmTerm, MovieAttributeProducerTerm, MovieAttributeRatingTerm,
			MovieAttributeDirectorTerm, MovieAttributeReleaseYearTerm, MovieAttributeFeatureFilmTerm,
			MovieAttributeMovieArtistTerm, MovieAttributeMovieTerm, MovieAttributeRatingIndex,
			MovieAttributeDescriptionTerm,
		),
	},
	MediaPodcast: {
		entities: tags(PodcastEntityPodcastAuthor, PodcastEntityPodcast),
		attributes: tags(
			PodcastAttributeTitleTerm, PodcastAttributeLanguageTerm, PodcastAttributeAuthorTerm,
			PodcastAttributeGenreIndex, PodcastAttributeArtistTerm, PodcastAttributeRatingIndex,
			PodcastAttributeKeywordsTerm, PodcastAttributeDescriptionTerm,
		),
	},
	MediaMusic: {
		entities: tags(
			MusicEntityMusicArtist, MusicEntityMusicTrack, MusicEntityAlbum,
			MusicEntityMusicVideo, MusicEntityMix, MusicEntitySong,
		),
		attributes: tags(
			MusicAttributeMixTerm, MusicAttributeGenreIndex, MusicAttributeArtistTerm,
			MusicAttributeComposerTerm, MusicAttributeAlbumTerm, MusicAttributeRatingIndex,
			MusicAttributeSongTerm,
		),
	},
	MediaMusicVideo: {
		entities: tags(MusicVideoEntityMusicArtist, MusicVideoEntityMusicVideo),
		attributes: tags(
			MusicVideoAttributeGenreIndex, MusicVideoAttributeArtistTerm, MusicVideoAttributeAlbumTerm,
			MusicVideoAttributeRatingIndex, MusicVideoAttributeSongTerm,
		),
	},
	MediaAudiobook: {
		entities: tags(AudiobookEntityAudiobookAuthor, AudiobookEntityAudiobook),
		attributes: tags(
			AudiobookAttributeTitleTerm, AudiobookAttributeAuthorTerm,
			AudiobookAttributeGenreIndex, AudiobookAttributeRatingIndex,
		),
	},
	MediaShortFilm: {
		entities: tags(ShortFilmEntityShortFilmArtist, ShortFilmEntityShortFilm),
		attributes: tags(
			ShortFilmAttributeGenreIndex, ShortFilmAttributeArtistTerm, ShortFilmAttributeShortFilmTerm,
			ShortFilmAttributeRatingIndex, ShortFilmAttributeDescriptionTerm,
		),
	},
	MediaTVShow: {
		entities: tags(TVShowEntityTVEpisode, TVShowEntityTVSeason),
		attributes: tags(
			TVShowAttributeGenreIndex, TVShowAttributeTVEpisodeTerm, TVShowAttributeShowTerm,
			TVShowAttributeTVSeasonTerm, TVShowAttributeRatingIndex, TVShowAttributeDescriptionTerm,
		),
	},
	MediaSoftware: {
		entities: tags(
			SoftwareEntitySoftware, SoftwareEntityIPadSoftware, SoftwareEntityMacSoftware,
		),
		attributes: tags(SoftwareAttributeSoftwareDeveloper),
	},
	MediaEbook: {
		entities:   tags(EbookEntityEbook),
		attributes: nil,
	},
	MediaAll: {
		entities: tags(
			AllEntityMovie, AllEntityAlbum, AllEntityAllArtist, AllEntityPodcast,
			AllEntityMusicVideo, AllEntityMix, AllEntityAudiobook, AllEntityTVSeason,
			AllEntityAllTrack,
		),
		attributes: tags(
			AllAttributeActorTerm, AllAttributeLanguageTerm, AllAttributeAllArtistTerm,
			AllAttributeTVEpisodeTerm, AllAttributeShortFilmTerm, AllAttributeDirectorTerm,
			AllAttributeReleaseYearTerm, AllAttributeTitleTerm, AllAttributeFeatureFilmTerm,
			AllAttributeRatingIndex, AllAttributeKeywordsTerm, AllAttributeDescriptionTerm,
			AllAttributeAuthorTerm, AllAttributeGenreIndex, AllAttributeMixTerm,
			AllAttributeAllTrackTerm, AllAttributeArtistTerm, AllAttributeComposerTerm,
			AllAttributeTVSeasonTerm, AllAttributeProducerTerm, AllAttributeRatingTerm,
			AllAttributeSongTerm, AllAttributeMovieArtistTerm, AllAttributeShowTerm,
			AllAttributeMovieTerm, AllAttributeAlbumTerm,
		),
	},
}

// Entities returns the legal entity values for m, or nil for an unknown media.
func Entities(m Media) []string {
	return slices.Clone(vocabularies[m].entities)
}

// Attributes returns the legal attribute values for m, or nil for an unknown
// media or for ebook.
func Attributes(m Media) []string {
	return slices.Clone(vocabularies[m].attributes)
}

// checkVocabulary validates an entity/attribute pair against the table.
// Empty values are absent and always valid.
func checkVocabulary(m Media, entity, attribute string) error {
	v, ok := vocabularies[m]
	if !ok {
		return fmt.Errorf("%w: %q", ErrUnknownMedia, m)
	}
	if entity != "" && !slices.Contains(v.entities, entity) {
		return &VocabularyError{Media: m, Field: "entity", Value: entity}
	}
	if attribute != "" && !slices.Contains(v.attributes, attribute) {
		return &VocabularyError{Media: m, Field: "attribute", Value: attribute}
	}
	return nil
}
