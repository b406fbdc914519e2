package controller

import "github.com/soundtrack-app/soundtrack/domain"

// Read-side of the controller. Slices are returned as copies; the
// presentation layer cannot mutate controller-owned state through them.

func (c *Controller) Screen() domain.Screen {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.screen
}

func (c *Controller) Artists() []domain.Artist {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return cloneArtists(c.artists)
}

func (c *Controller) AllAlbums() []domain.Album {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return cloneAlbums(c.allAlbums)
}

func (c *Controller) AllSongs() []domain.Song {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return cloneSongs(c.allSongs)
}

func (c *Controller) CurrentArtist() (domain.Artist, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	if c.currentArtist == nil {
		return domain.Artist{}, false
	}
	return *c.currentArtist, true
}

func (c *Controller) Albums() []domain.Album {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return cloneAlbums(c.albums)
}

func (c *Controller) CurrentAlbum() (domain.Album, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	if c.currentAlbum == nil {
		return domain.Album{}, false
	}
	return *c.currentAlbum, true
}

func (c *Controller) Songs() []domain.Song {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return cloneSongs(c.songs)
}

func (c *Controller) SearchQuery() string {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.searchQuery
}

func (c *Controller) SearchResults() domain.SearchResults {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return domain.SearchResults{
		Artists: cloneArtists(c.searchResults.Artists),
		Albums:  cloneAlbums(c.searchResults.Albums),
		Songs:   cloneSongs(c.searchResults.Songs),
	}
}

func (c *Controller) IsLoading() bool {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.isLoading
}

func (c *Controller) IsSearching() bool {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.isSearching
}

func (c *Controller) ErrorMessage() string {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.errorMessage
}

func (c *Controller) CurrentSong() (domain.Song, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	if c.currentSong == nil {
		return domain.Song{}, false
	}
	return *c.currentSong, true
}

func (c *Controller) Queue() []domain.Song {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return cloneSongs(c.queue)
}

func (c *Controller) CurrentIndex() int {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.currentIndex
}

func (c *Controller) IsPlaying() bool {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.isPlaying
}

func cloneArtists(artists []domain.Artist) []domain.Artist {
	if len(artists) == 0 {
		return nil
	}
	dup := make([]domain.Artist, len(artists))
	copy(dup, artists)
	return dup
}

func cloneAlbums(albums []domain.Album) []domain.Album {
	if len(albums) == 0 {
		return nil
	}
	dup := make([]domain.Album, len(albums))
	copy(dup, albums)
	return dup
}

func cloneSongs(songs []domain.Song) []domain.Song {
	if len(songs) == 0 {
		return nil
	}
	dup := make([]domain.Song, len(songs))
	copy(dup, songs)
	return dup
}
