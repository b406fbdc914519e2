package library

import (
	"context"

	"github.com/soundtrack-app/soundtrack/domain"
	"github.com/soundtrack-app/soundtrack/subsonic"
)

// SubsonicLibrary adapts a subsonic.Client to the Library interface.
type SubsonicLibrary struct {
	client *subsonic.Client
}

var _ Library = (*SubsonicLibrary)(nil)

// NewSubsonicLibrary wraps a connected protocol client.
func NewSubsonicLibrary(client *subsonic.Client) *SubsonicLibrary {
	return &SubsonicLibrary{
		client: client,
	}
}

func (s *SubsonicLibrary) Ping(ctx context.Context) error {
	_, err := s.client.Ping(ctx)
	return err
}

func (s *SubsonicLibrary) Artists(ctx context.Context) ([]domain.ArtistIndexEntry, error) {
	index, err := s.client.GetArtists(ctx)
	if err != nil {
		return nil, err
	}
	entries := make([]domain.ArtistIndexEntry, len(index.Index))
	for i, entry := range index.Index {
		entries[i] = domain.ArtistIndexEntry{
			Name:    entry.Name,
			Artists: convertToDomainArtists(entry.Artist),
		}
	}
	return entries, nil
}

func (s *SubsonicLibrary) Artist(ctx context.Context, id string) (domain.Artist, []domain.Album, error) {
	detail, err := s.client.GetArtist(ctx, id)
	if err != nil {
		return domain.Artist{}, nil, err
	}
	return convertToDomainArtist(detail.Artist), convertToDomainAlbums(detail.Album), nil
}

func (s *SubsonicLibrary) Album(ctx context.Context, id string) (domain.Album, []domain.Song, error) {
	detail, err := s.client.GetAlbum(ctx, id)
	if err != nil {
		return domain.Album{}, nil, err
	}
	return convertToDomainAlbum(detail.Album), convertToDomainSongs(detail.Song), nil
}

func (s *SubsonicLibrary) Song(ctx context.Context, id string) (domain.Song, error) {
	song, err := s.client.GetSong(ctx, id)
	if err != nil {
		return domain.Song{}, err
	}
	return convertToDomainSong(*song), nil
}

func (s *SubsonicLibrary) AlbumList(ctx context.Context, listType subsonic.AlbumListType, size int) ([]domain.Album, error) {
	albums, err := s.client.GetAlbumList(ctx, listType, size)
	if err != nil {
		return nil, err
	}
	return convertToDomainAlbums(albums), nil
}

func (s *SubsonicLibrary) RandomSongs(ctx context.Context, count int) ([]domain.Song, error) {
	songs, err := s.client.GetRandomSongs(ctx, count)
	if err != nil {
		return nil, err
	}
	return convertToDomainSongs(songs), nil
}

func (s *SubsonicLibrary) Search(ctx context.Context, query string) (domain.SearchResults, error) {
	result, err := s.client.Search(ctx, query)
	if err != nil {
		return domain.SearchResults{}, err
	}
	return domain.SearchResults{
		Artists: convertToDomainArtists(result.Artist),
		Albums:  convertToDomainAlbums(result.Album),
		Songs:   convertToDomainSongs(result.Song),
	}, nil
}

func (s *SubsonicLibrary) Star(ctx context.Context, id string) error {
	return s.client.Star(ctx, id)
}

func (s *SubsonicLibrary) Unstar(ctx context.Context, id string) error {
	return s.client.Unstar(ctx, id)
}

func (s *SubsonicLibrary) StreamURL(songID string) string {
	return s.client.StreamURL(songID)
}

func (s *SubsonicLibrary) CoverArtURL(coverArtID string, size int) string {
	return s.client.CoverArtURL(coverArtID, size)
}

func convertToDomainArtists(artists []subsonic.Artist) []domain.Artist {
	domainArtists := make([]domain.Artist, len(artists))
	for i, artist := range artists {
		domainArtists[i] = convertToDomainArtist(artist)
	}
	return domainArtists
}

func convertToDomainArtist(artist subsonic.Artist) domain.Artist {
	return domain.Artist{
		ID:             artist.ID,
		Name:           artist.Name,
		CoverArt:       artist.CoverArt,
		AlbumCount:     artist.AlbumCount,
		ArtistImageURL: artist.ArtistImageURL,
	}
}

func convertToDomainAlbums(albums []subsonic.Album) []domain.Album {
	domainAlbums := make([]domain.Album, len(albums))
	for i, album := range albums {
		domainAlbums[i] = convertToDomainAlbum(album)
	}
	return domainAlbums
}

func convertToDomainAlbum(album subsonic.Album) domain.Album {
	return domain.Album{
		ID:        album.ID,
		Name:      album.Name,
		Artist:    album.Artist,
		ArtistID:  album.ArtistID,
		CoverArt:  album.CoverArt,
		SongCount: album.SongCount,
		Duration:  album.Duration,
		Year:      album.Year,
		Genre:     album.Genre,
	}
}

func convertToDomainSongs(songs []subsonic.Song) []domain.Song {
	domainSongs := make([]domain.Song, len(songs))
	for i, song := range songs {
		domainSongs[i] = convertToDomainSong(song)
	}
	return domainSongs
}

func convertToDomainSong(song subsonic.Song) domain.Song {
	return domain.Song{
		ID:       song.ID,
		Title:    song.Title,
		Artist:   song.Artist,
		ArtistID: song.ArtistID,
		Album:    song.Album,
		AlbumID:  song.AlbumID,
		CoverArt: song.CoverArt,
		Duration: song.Duration,
		Track:    song.Track,
		Year:     song.Year,
		Genre:    song.Genre,
		Size:     song.Size,
		Suffix:   song.Suffix,
		BitRate:  song.BitRate,
		Path:     song.Path,
	}
}
