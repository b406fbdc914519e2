package library

import (
	"context"

	"github.com/soundtrack-app/soundtrack/domain"
	"github.com/soundtrack-app/soundtrack/subsonic"
)

// Library is the normalized view of a remote music server. Implementations
// translate wire-level records into domain records so the rest of the
// application never sees protocol types.
type Library interface {
	Ping(ctx context.Context) error
	Artists(ctx context.Context) ([]domain.ArtistIndexEntry, error)
	Artist(ctx context.Context, id string) (domain.Artist, []domain.Album, error)
	Album(ctx context.Context, id string) (domain.Album, []domain.Song, error)
	Song(ctx context.Context, id string) (domain.Song, error)
	AlbumList(ctx context.Context, listType subsonic.AlbumListType, size int) ([]domain.Album, error)
	RandomSongs(ctx context.Context, count int) ([]domain.Song, error)
	Search(ctx context.Context, query string) (domain.SearchResults, error)
	Star(ctx context.Context, id string) error
	Unstar(ctx context.Context, id string) error

	// StreamURL and CoverArtURL are pure builders; they never hit the network.
	StreamURL(songID string) string
	CoverArtURL(coverArtID string, size int) string
}
