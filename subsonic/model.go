package subsonic

import (
	"net/http"
	"sync"
)

// Client talks to one Subsonic/Navidrome server on behalf of one session.
// It holds no mutable state beyond the bound session material and is safe
// for concurrent use.
type Client struct {
	baseURL    string
	username   string
	token      string
	salt       string
	clientID   string
	apiVersion string
	httpClient *http.Client
	closeOnce  sync.Once
}

// envelope is the outer object every Subsonic response is wrapped in.
type envelope struct {
	Response responseBody `json:"subsonic-response"`
}

type responseBody struct {
	Status        string        `json:"status"`
	Version       string        `json:"version"`
	Type          string        `json:"type,omitempty"`
	ServerVersion string        `json:"serverVersion,omitempty"`
	Error         *serverError  `json:"error,omitempty"`
	Artists       *ArtistIndex  `json:"artists,omitempty"`
	Artist        *ArtistDetail `json:"artist,omitempty"`
	Album         *AlbumDetail  `json:"album,omitempty"`
	Song          *Song         `json:"song,omitempty"`
	AlbumList2    *albumList    `json:"albumList2,omitempty"`
	RandomSongs   *songList     `json:"randomSongs,omitempty"`
	SearchResult3 *SearchResult `json:"searchResult3,omitempty"`
}

type serverError struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}

// PingInfo reports server identity from a successful ping.
type PingInfo struct {
	Status        string
	Version       string
	Type          string
	ServerVersion string
}

// ArtistIndex is the letter-bucketed artist listing from getArtists.
type ArtistIndex struct {
	Index []IndexEntry `json:"index"`
}

// IndexEntry is one letter bucket of the artist index.
type IndexEntry struct {
	Name   string   `json:"name"`
	Artist []Artist `json:"artist"`
}

// Optional fields below are pointers so that a value absent on the wire stays
// absent after a decode/encode round trip instead of collapsing to a zero.

type Artist struct {
	ID             string  `json:"id"`
	Name           string  `json:"name"`
	CoverArt       *string `json:"coverArt,omitempty"`
	AlbumCount     int     `json:"albumCount"`
	ArtistImageURL *string `json:"artistImageUrl,omitempty"`
}

type Album struct {
	ID        string  `json:"id"`
	Name      string  `json:"name"`
	Artist    string  `json:"artist"`
	ArtistID  *string `json:"artistId,omitempty"`
	CoverArt  *string `json:"coverArt,omitempty"`
	SongCount int     `json:"songCount"`
	Duration  int     `json:"duration"` // seconds
	Year      *int    `json:"year,omitempty"`
	Genre     *string `json:"genre,omitempty"`
}

type Song struct {
	ID       string  `json:"id"`
	Title    string  `json:"title"`
	Artist   string  `json:"artist"`
	ArtistID *string `json:"artistId,omitempty"`
	Album    string  `json:"album"`
	AlbumID  *string `json:"albumId,omitempty"`
	CoverArt *string `json:"coverArt,omitempty"`
	Duration int     `json:"duration"` // seconds
	Track    *int    `json:"track,omitempty"`
	Year     *int    `json:"year,omitempty"`
	Genre    *string `json:"genre,omitempty"`
	Size     int64   `json:"size"`
	Suffix   *string `json:"suffix,omitempty"`
	BitRate  *int    `json:"bitRate,omitempty"`
	Path     *string `json:"path,omitempty"`
}

// ArtistDetail is getArtist's payload: the artist plus its albums.
type ArtistDetail struct {
	Artist
	Album []Album `json:"album,omitempty"`
}

// AlbumDetail is getAlbum's payload: the album plus its songs.
type AlbumDetail struct {
	Album
	Song []Song `json:"song,omitempty"`
}

type albumList struct {
	Album []Album `json:"album"`
}

type songList struct {
	Song []Song `json:"song"`
}

// SearchResult is search3's payload.
type SearchResult struct {
	Artist []Artist `json:"artist,omitempty"`
	Album  []Album  `json:"album,omitempty"`
	Song   []Song   `json:"song,omitempty"`
}
