package controller

import (
	"context"
	"sort"
	"strings"
	"sync"

	"golang.org/x/sync/errgroup"

	"github.com/soundtrack-app/soundtrack/domain"
	"github.com/soundtrack-app/soundtrack/library"
	"github.com/soundtrack-app/soundtrack/subsonic"
)

const (
	homeAlbumPageSize  = 500
	homeSongSampleSize = 50
)

// Controller holds every piece of UI-observable state and the intent methods
// that mutate it. One controller lives per authenticated session; the
// presentation layer reads through the accessors and never mutates state
// directly.
//
// All methods are safe for concurrent use. A single mutex serializes state
// mutation, and every networked intent applies its result in one critical
// section, so readers observe a transition atomically (the loading flags are
// the documented exception and may be seen mid-flight).
type Controller struct {
	library library.Library
	ctx     context.Context
	cancel  context.CancelFunc

	mu            sync.RWMutex
	screen        domain.Screen
	artists       []domain.Artist
	allAlbums     []domain.Album
	allSongs      []domain.Song
	currentArtist *domain.Artist
	albums        []domain.Album
	currentAlbum  *domain.Album
	songs         []domain.Song
	searchQuery   string
	searchResults domain.SearchResults
	isLoading     bool
	isSearching   bool
	errorMessage  string

	currentSong  *domain.Song
	queue        []domain.Song
	currentIndex int
	isPlaying    bool
}

// New builds a controller bound to a normalized library. Work launched by
// intents is scoped to the controller's context; Cleanup tears it down.
func New(lib library.Library) *Controller {
	ctx, cancel := context.WithCancel(context.Background())
	return &Controller{
		library:      lib,
		ctx:          ctx,
		cancel:       cancel,
		screen:       domain.HomeScreen{},
		currentIndex: -1,
	}
}

// LoadHomeData fetches the artist index, an alphabetical album page and a
// random song sample. The three sections fail independently: one failing
// fetch records an error message but does not block the others from
// populating.
func (c *Controller) LoadHomeData() {
	if c.library == nil || c.ctx.Err() != nil {
		return
	}
	c.mu.Lock()
	c.isLoading = true
	c.errorMessage = ""
	c.mu.Unlock()

	var (
		artists             []domain.Artist
		albums              []domain.Album
		songs               []domain.Song
		artistsErr          error
		albumsErr, songsErr error
	)

	var g errgroup.Group
	g.Go(func() error {
		entries, err := c.library.Artists(c.ctx)
		if err != nil {
			artistsErr = err
			return nil
		}
		for _, entry := range entries {
			artists = append(artists, entry.Artists...)
		}
		return nil
	})
	g.Go(func() error {
		var err error
		albums, err = c.library.AlbumList(c.ctx, subsonic.AlbumListAlphabeticalByName, homeAlbumPageSize)
		if err != nil {
			albumsErr = err
		}
		return nil
	})
	g.Go(func() error {
		var err error
		songs, err = c.library.RandomSongs(c.ctx, homeSongSampleSize)
		if err != nil {
			songsErr = err
		}
		return nil
	})
	_ = g.Wait()

	if c.ctx.Err() != nil {
		return
	}

	sort.Slice(artists, func(i, j int) bool {
		return strings.ToLower(artists[i].Name) < strings.ToLower(artists[j].Name)
	})
	sort.Slice(albums, func(i, j int) bool {
		return strings.ToLower(albums[i].Name) < strings.ToLower(albums[j].Name)
	})
	sort.Slice(songs, func(i, j int) bool {
		return strings.ToLower(songs[i].Title) < strings.ToLower(songs[j].Title)
	})

	c.mu.Lock()
	defer c.mu.Unlock()
	if artistsErr != nil {
		c.errorMessage = "Error loading artists: " + artistsErr.Error()
	} else {
		c.artists = artists
	}
	if albumsErr != nil {
		c.errorMessage = "Error loading albums: " + albumsErr.Error()
	} else {
		c.allAlbums = albums
	}
	if songsErr != nil {
		c.errorMessage = "Error loading songs: " + songsErr.Error()
	} else {
		c.allSongs = songs
	}
	c.isLoading = false
}

// Search runs a free-text search and moves to the Search screen on success.
// A blank query or a missing library clears previous results and performs no
// network call.
func (c *Controller) Search(query string) {
	if c.ctx.Err() != nil {
		return
	}
	query = strings.TrimSpace(query)
	if c.library == nil || query == "" {
		c.mu.Lock()
		c.searchQuery = ""
		c.searchResults = domain.SearchResults{}
		c.mu.Unlock()
		return
	}

	c.mu.Lock()
	c.isSearching = true
	c.errorMessage = ""
	c.searchQuery = query
	c.mu.Unlock()

	results, err := c.library.Search(c.ctx, query)
	if c.ctx.Err() != nil {
		return
	}

	c.mu.Lock()
	defer c.mu.Unlock()
	c.isSearching = false
	if err != nil {
		c.errorMessage = "Search failed: " + err.Error()
		return
	}
	c.searchResults = results
	c.screen = domain.SearchScreen{}
}

// ClearSearch drops the query and results. The screen is left alone; callers
// pair this with GoBack.
func (c *Controller) ClearSearch() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.searchQuery = ""
	c.searchResults = domain.SearchResults{}
}

// LoadArtistAlbums fetches one artist with its albums and moves to the artist
// detail screen. On failure the screen is unchanged and only the error
// message is set.
func (c *Controller) LoadArtistAlbums(artistID string) {
	if c.library == nil || c.ctx.Err() != nil {
		return
	}
	c.mu.Lock()
	c.isLoading = true
	c.errorMessage = ""
	c.mu.Unlock()

	artist, albums, err := c.library.Artist(c.ctx, artistID)
	if c.ctx.Err() != nil {
		return
	}

	c.mu.Lock()
	defer c.mu.Unlock()
	c.isLoading = false
	if err != nil {
		c.errorMessage = "Error loading albums: " + err.Error()
		return
	}
	c.currentArtist = &artist
	c.albums = albums
	c.screen = domain.ArtistDetailScreen{ArtistID: artistID}
}

// LoadAlbumSongs fetches one album with its songs and moves to the album
// detail screen. On failure the screen is unchanged and only the error
// message is set.
func (c *Controller) LoadAlbumSongs(albumID string) {
	if c.library == nil || c.ctx.Err() != nil {
		return
	}
	c.mu.Lock()
	c.isLoading = true
	c.errorMessage = ""
	c.mu.Unlock()

	album, songs, err := c.library.Album(c.ctx, albumID)
	if c.ctx.Err() != nil {
		return
	}

	c.mu.Lock()
	defer c.mu.Unlock()
	c.isLoading = false
	if err != nil {
		c.errorMessage = "Error loading songs: " + err.Error()
		return
	}
	c.currentAlbum = &album
	c.songs = songs
	c.screen = domain.AlbumDetailScreen{AlbumID: albumID}
}

// OpenAlbum is an alias for LoadAlbumSongs.
func (c *Controller) OpenAlbum(albumID string) {
	c.LoadAlbumSongs(albumID)
}

// PlaySong makes song the current one within the given playlist context and
// moves to the Player screen. No network call happens here; playback itself
// is delegated to the playback engine observing this state. A nil playlist
// falls back to the current album's songs. When the song is not in the
// playlist, the index is -1; duplicates resolve to the first match.
func (c *Controller) PlaySong(song domain.Song, playlist []domain.Song) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if playlist == nil {
		playlist = c.songs
	}
	index := -1
	for i, item := range playlist {
		if item.ID == song.ID {
			index = i
			break
		}
	}
	c.currentSong = &song
	c.queue = cloneSongs(playlist)
	c.currentIndex = index
	c.isPlaying = true
	c.screen = domain.PlayerScreen{}
}

// TogglePlayPause flips the playing flag. No other effect.
func (c *Controller) TogglePlayPause() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.isPlaying = !c.isPlaying
}

// NextSong advances within the playlist, clamped to the last index. At the
// boundary (or with nothing loaded) it is a silent no-op.
func (c *Controller) NextSong() {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.currentIndex < 0 || c.currentIndex >= len(c.queue)-1 {
		return
	}
	c.currentIndex++
	song := c.queue[c.currentIndex]
	c.currentSong = &song
}

// PreviousSong steps back within the playlist, clamped to index zero.
func (c *Controller) PreviousSong() {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.currentIndex <= 0 || len(c.queue) == 0 {
		return
	}
	c.currentIndex--
	song := c.queue[c.currentIndex]
	c.currentSong = &song
}

// GoBack returns to Home from any screen that has a parent. From Home (or
// Login, which has no navigation stack) it reports false and leaves the
// screen unchanged.
func (c *Controller) GoBack() bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	switch c.screen.(type) {
	case domain.SearchScreen, domain.ArtistDetailScreen, domain.AlbumDetailScreen, domain.PlayerScreen:
		c.screen = domain.HomeScreen{}
		return true
	case domain.HomeScreen, domain.LoginScreen:
		return false
	}
	return false
}

// Star marks an entity as favourite. No favourite state is tracked locally;
// failures surface through the error message.
func (c *Controller) Star(id string) {
	if c.library == nil {
		return
	}
	if err := c.library.Star(c.ctx, id); err != nil && c.ctx.Err() == nil {
		c.mu.Lock()
		c.errorMessage = "Error starring: " + err.Error()
		c.mu.Unlock()
	}
}

// Unstar removes the favourite mark again.
func (c *Controller) Unstar(id string) {
	if c.library == nil {
		return
	}
	if err := c.library.Unstar(c.ctx, id); err != nil && c.ctx.Err() == nil {
		c.mu.Lock()
		c.errorMessage = "Error unstarring: " + err.Error()
		c.mu.Unlock()
	}
}

// StreamURL delegates to the protocol client; empty when no library is bound.
func (c *Controller) StreamURL(songID string) string {
	if c.library == nil {
		return ""
	}
	return c.library.StreamURL(songID)
}

// CoverArtURL delegates to the protocol client; empty when the reference is
// absent or no library is bound.
func (c *Controller) CoverArtURL(coverArtID *string, size int) string {
	if c.library == nil || coverArtID == nil {
		return ""
	}
	return c.library.CoverArtURL(*coverArtID, size)
}

// Cleanup cancels all outstanding work owned by this controller. Idempotent
// and safe with nothing in flight; a canceled intent applies no further state.
func (c *Controller) Cleanup() {
	c.cancel()
}
