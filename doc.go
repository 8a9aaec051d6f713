// Package itunes provides a typed, immutable query builder for the
// iTunes Search API (https://itunes.apple.com/search).
//
// A search starts with a term and global options, then binds one media
// category. The category fixes, at compile time, which entity and attribute
// values the request accepts:
//
//	req := itunes.NewSearch("jack johnson", itunes.WithLimit(25)).
//	    Music().
//	    Entity(itunes.MusicEntityMusicArtist).
//	    Attribute(itunes.MusicAttributeArtistTerm)
//
//	fmt.Println(req.URL())
//	// https://itunes.apple.com/search?entity=musicArtist&attribute=artistTerm&media=music&limit=25&term=jack%20johnson&lang=en_us&country=us
//
//	resp, err := req.Send(ctx)
//
// Passing a movie entity to a music request does not compile. Every
// refinement returns a new Request; the receiver is never modified.
//
// # Query string contract
//
// Keys are written in the order entity, attribute, media, limit, term,
// lang, country, skipping entity and attribute when unset. Keys and values
// are escaped with url.QueryEscape except that a space is written as %20.
//
// # Runtime categories
//
// When the category comes from user input, Search.Select returns a request
// with plain string vocabulary. Request.Validate reports values the category
// does not list as ErrInvalidVocabulary, and Send refuses to dispatch them.
package itunes
