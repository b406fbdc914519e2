package domain

// Screen is the navigation state driving what the presentation layer renders.
// Exactly one screen is active at a time. Consumers must switch over every
// variant; there is no default screen to fall back to.
type Screen interface {
	isScreen()
}

// LoginScreen is shown while no session is authenticated.
type LoginScreen struct{}

// HomeScreen shows the artist index, album shelf and a song sample.
type HomeScreen struct{}

// SearchScreen shows the results of the last search.
type SearchScreen struct{}

// ArtistDetailScreen shows one artist and its albums.
type ArtistDetailScreen struct {
	ArtistID string
}

// AlbumDetailScreen shows one album and its songs.
type AlbumDetailScreen struct {
	AlbumID string
}

// PlayerScreen shows the current song and playback controls.
type PlayerScreen struct{}

func (LoginScreen) isScreen()        {}
func (HomeScreen) isScreen()         {}
func (SearchScreen) isScreen()       {}
func (ArtistDetailScreen) isScreen() {}
func (AlbumDetailScreen) isScreen()  {}
func (PlayerScreen) isScreen()       {}
