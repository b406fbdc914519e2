package ui

import (
	"context"
	"log"

	"github.com/gdamore/tcell/v2"
	"github.com/rivo/tview"
	"github.com/wildeyedskies/go-mpv/mpv"

	"github.com/soundtrack-app/soundtrack/auth"
	"github.com/soundtrack-app/soundtrack/config"
	"github.com/soundtrack-app/soundtrack/controller"
	"github.com/soundtrack-app/soundtrack/coverart"
	"github.com/soundtrack-app/soundtrack/domain"
	"github.com/soundtrack-app/soundtrack/library"
	"github.com/soundtrack-app/soundtrack/player"
)

// App is the tview presentation layer. It renders from controller state and
// calls controller intents; it owns no navigation or entity state itself.
type App struct {
	tviewApp *tview.Application
	cfg      *config.Config
	sessions *auth.Manager
	plr      player.Player
	cover    *coverart.Converter
	ctx      context.Context

	// ctrl is nil until a session is authenticated. It is only assigned and
	// read on the tview event loop.
	ctrl *controller.Controller

	pages *tview.Pages
	keys  *KeyBindingManager

	// widgets rebuilt by the player view and refreshed by the progress loop
	progressView *tview.TextView
	statusView   *tview.TextView
	coverView    *tview.TextView
}

// NewApp creates the TUI application with its collaborators injected.
func NewApp(ctx context.Context, cfg *config.Config, sessions *auth.Manager, plr player.Player) *App {
	return &App{
		tviewApp: tview.NewApplication(),
		cfg:      cfg,
		sessions: sessions,
		plr:      plr,
		cover:    coverart.NewConverter(),
		ctx:      ctx,
		pages:    tview.NewPages(),
		keys:     NewKeyBindingManager(),
	}
}

// Run starts the application and blocks until it exits.
func (a *App) Run() error {
	a.registerKeys()
	a.tviewApp.SetInputCapture(a.handleGlobalKey)
	a.showLogin("")
	a.tviewApp.SetRoot(a.pages, true)

	if a.cfg.Server.HasCredentials() {
		go a.login(a.cfg.Server.URL, a.cfg.Server.Username, a.cfg.Server.Password)
	}
	go a.handlePlayerEvents()
	go a.updateProgress()

	log.Println("starting soundtrack...")
	return a.tviewApp.Run()
}

// Stop stops the application
func (a *App) Stop() {
	if a.ctrl != nil {
		a.ctrl.Cleanup()
	}
	a.tviewApp.Stop()
}

// login runs off the event loop; the blocking ping and home fetch happen
// here, then the result is joined back onto the draw queue.
func (a *App) login(baseURL, username, password string) {
	if err := a.sessions.Login(a.ctx, baseURL, username, password); err != nil {
		a.tviewApp.QueueUpdateDraw(func() {
			a.showLogin(err.Error())
		})
		return
	}
	ctrl := controller.New(library.NewSubsonicLibrary(a.sessions.Client()))
	ctrl.LoadHomeData()
	a.tviewApp.QueueUpdateDraw(func() {
		a.ctrl = ctrl
		a.render()
	})
}

func (a *App) logout() {
	if a.ctrl != nil {
		a.ctrl.Cleanup()
		a.ctrl = nil
	}
	a.sessions.Logout()
	_ = a.plr.Stop()
	a.showLogin("")
}

// dispatch runs a controller intent off the event loop and re-renders when it
// completes.
func (a *App) dispatch(intent func()) {
	go func() {
		intent()
		a.tviewApp.QueueUpdateDraw(a.render)
	}()
}

// render draws the active screen. The switch is exhaustive over the screen
// variants; an unknown variant is a bug and is surfaced instead of silently
// falling back to Home.
func (a *App) render() {
	if a.ctrl == nil {
		return
	}
	switch screen := a.ctrl.Screen().(type) {
	case domain.LoginScreen:
		a.showLogin("")
	case domain.HomeScreen:
		a.showHome()
	case domain.SearchScreen:
		a.showSearch()
	case domain.ArtistDetailScreen:
		a.showArtistDetail()
	case domain.AlbumDetailScreen:
		a.showAlbumDetail()
	case domain.PlayerScreen:
		a.showPlayer()
	default:
		log.Printf("invalid navigation state %T", screen)
		a.showInvalidState()
	}
}

// playSong records the selection on the controller (no I/O) and starts the
// delegated engine on the stream URL.
func (a *App) playSong(song domain.Song, playlist []domain.Song) {
	ctrl := a.ctrl
	if ctrl == nil {
		return
	}
	ctrl.PlaySong(song, playlist)
	url := ctrl.StreamURL(song.ID)
	go func() {
		if err := a.plr.Play(url); err != nil {
			log.Printf("playback failed: %v", err)
		}
	}()
	a.render()
}

// advance moves through the playlist and restarts the engine when the index
// actually changed; at the boundaries nothing happens.
func (a *App) advance(forward bool) {
	ctrl := a.ctrl
	if ctrl == nil {
		return
	}
	before := ctrl.CurrentIndex()
	if forward {
		ctrl.NextSong()
	} else {
		ctrl.PreviousSong()
	}
	if ctrl.CurrentIndex() == before {
		return
	}
	if song, ok := ctrl.CurrentSong(); ok {
		url := ctrl.StreamURL(song.ID)
		go func() {
			if err := a.plr.Play(url); err != nil {
				log.Printf("playback failed: %v", err)
			}
		}()
	}
	a.render()
}

func (a *App) togglePlayPause() {
	if a.ctrl == nil {
		return
	}
	a.ctrl.TogglePlayPause()
	if err := a.plr.TogglePause(); err != nil {
		log.Printf("pause failed: %v", err)
	}
	a.render()
}

func (a *App) goBack() {
	if a.ctrl == nil {
		a.Stop()
		return
	}
	if !a.ctrl.GoBack() {
		// Home has no parent; leaving the app is the only way back.
		a.Stop()
		return
	}
	a.render()
}

func (a *App) registerKeys() {
	a.keys.RegisterKeyBinding(
		KeyAction{name: "toggle", handler: a.togglePlayPause},
		nil, []rune{' '},
	)
	a.keys.RegisterKeyBinding(
		KeyAction{name: "next", handler: func() { a.advance(true) }},
		[]tcell.Key{tcell.KeyRight}, []rune{'n', 'N'},
	)
	a.keys.RegisterKeyBinding(
		KeyAction{name: "previous", handler: func() { a.advance(false) }},
		[]tcell.Key{tcell.KeyLeft}, []rune{'p', 'P'},
	)
	a.keys.RegisterKeyBinding(
		KeyAction{name: "help", handler: a.toggleHelp},
		nil, []rune{'?'},
	)
	a.keys.RegisterKeyBinding(
		KeyAction{name: "logout", handler: a.logout},
		nil, []rune{'L'},
	)
	a.keys.RegisterSequence("gh", KeyAction{name: "go home", handler: a.goBack})
}

func (a *App) handleGlobalKey(event *tcell.EventKey) *tcell.EventKey {
	if event.Key() == tcell.KeyCtrlC {
		a.Stop()
		return nil
	}
	// Text inputs and buttons get every key; shortcuts only apply outside them.
	switch a.tviewApp.GetFocus().(type) {
	case *tview.InputField, *tview.Button:
		return event
	}
	if event.Key() == tcell.KeyEscape {
		if a.closeHelp() {
			return nil
		}
		a.goBack()
		return nil
	}
	if a.keys.HandleKey(event) {
		return nil
	}
	return event
}

// handlePlayerEvents auto-advances when the engine reaches the end of a
// stream.
func (a *App) handlePlayerEvents() {
	events := a.plr.Events()
	for {
		select {
		case <-a.ctx.Done():
			return
		case e, ok := <-events:
			if !ok {
				return
			}
			if e != nil && e.Event_Id == mpv.EVENT_END_FILE {
				a.tviewApp.QueueUpdateDraw(func() {
					a.advance(true)
				})
			}
		}
	}
}
