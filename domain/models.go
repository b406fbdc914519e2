package domain

// Artist represents a music artist
type Artist struct {
	ID             string
	Name           string
	CoverArt       *string
	AlbumCount     int
	ArtistImageURL *string
}

// Album represents an album with metadata
type Album struct {
	ID        string
	Name      string
	Artist    string
	ArtistID  *string
	CoverArt  *string
	SongCount int
	Duration  int // in seconds
	Year      *int
	Genre     *string
}

// Song represents a music track with metadata
type Song struct {
	ID       string
	Title    string
	Artist   string
	ArtistID *string
	Album    string
	AlbumID  *string
	CoverArt *string
	Duration int // in seconds
	Track    *int
	Year     *int
	Genre    *string
	Size     int64
	Suffix   *string
	BitRate  *int
	Path     *string
}

// ArtistIndexEntry is one letter bucket of the server's artist index.
type ArtistIndexEntry struct {
	Name    string
	Artists []Artist
}

// SearchResults groups one search response across the three entity kinds.
type SearchResults struct {
	Artists []Artist
	Albums  []Album
	Songs   []Song
}

// IsEmpty reports whether the search matched nothing at all.
func (r SearchResults) IsEmpty() bool {
	return len(r.Artists) == 0 && len(r.Albums) == 0 && len(r.Songs) == 0
}

// QueueItem represents an item handed to the playback engine
type QueueItem struct {
	ID       string
	URI      string
	Title    string
	Artist   string
	Duration int // in seconds
}
