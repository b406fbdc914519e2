package ui

import (
	"fmt"

	"github.com/gdamore/tcell/v2"
	"github.com/rivo/tview"

	"github.com/soundtrack-app/soundtrack/domain"
)

func (a *App) setMain(view tview.Primitive) {
	a.pages.AddAndSwitchToPage("main", view, true)
}

// showHome renders the three library sections with a search box on top.
func (a *App) showHome() {
	artists := a.ctrl.Artists()
	albums := a.ctrl.AllAlbums()
	songs := a.ctrl.AllSongs()

	artistList := a.newSectionList(fmt.Sprintf(" Artists (%d) ", len(artists)))
	for _, artist := range artists {
		id := artist.ID
		artistList.AddItem(artist.Name, "", 0, func() {
			a.dispatch(func() { a.ctrl.LoadArtistAlbums(id) })
		})
	}

	albumList := a.newSectionList(fmt.Sprintf(" Recent Albums (%d) ", len(albums)))
	for _, album := range albums {
		id := album.ID
		albumList.AddItem(FormatAlbumLine(album), "", 0, func() {
			a.dispatch(func() { a.ctrl.OpenAlbum(id) })
		})
	}

	songList := a.newSectionList(fmt.Sprintf(" Random Songs (%d) ", len(songs)))
	for _, song := range songs {
		s := song
		songList.AddItem(songLine(s), "", 0, func() {
			a.playSong(s, songs)
		})
	}

	searchInput := tview.NewInputField().
		SetLabel("[yellow]Search: ").
		SetFieldWidth(0).
		SetPlaceholder("Type a query, ENTER to search...").
		SetFieldBackgroundColor(tcell.ColorBlack)
	searchInput.SetDoneFunc(func(key tcell.Key) {
		switch key {
		case tcell.KeyEnter:
			query := searchInput.GetText()
			if query != "" {
				a.dispatch(func() { a.ctrl.Search(query) })
			}
		case tcell.KeyTab, tcell.KeyEscape:
			a.tviewApp.SetFocus(artistList)
		}
	})

	cycleFocus(a.tviewApp, searchInput, artistList, albumList, songList)

	sections := tview.NewFlex().
		SetDirection(tview.FlexColumn).
		AddItem(artistList, 0, 1, true).
		AddItem(albumList, 0, 2, false).
		AddItem(songList, 0, 2, false)

	layout := tview.NewFlex().
		SetDirection(tview.FlexRow).
		AddItem(searchInput, 1, 0, false).
		AddItem(sections, 0, 1, true).
		AddItem(a.statusLine(), 1, 0, false)

	a.setMain(layout)
	a.tviewApp.SetFocus(artistList)
}

func (a *App) newSectionList(title string) *tview.List {
	list := tview.NewList().
		ShowSecondaryText(false).
		SetSelectedBackgroundColor(tcell.ColorDarkGreen)
	list.SetBorder(true).SetTitle(title).SetTitleAlign(tview.AlignLeft)
	return list
}

// statusLine reflects the controller's loading and error state.
func (a *App) statusLine() *tview.TextView {
	status := tview.NewTextView().SetDynamicColors(true)
	switch {
	case a.ctrl.IsLoading():
		status.SetText("[yellow]Loading...")
	case a.ctrl.IsSearching():
		status.SetText("[yellow]Searching...")
	case a.ctrl.ErrorMessage() != "":
		status.SetText(fmt.Sprintf("[red]%s", a.ctrl.ErrorMessage()))
	default:
		status.SetText("[darkgray]TAB switch section | / search | ? help | ESC back")
	}
	return status
}

// cycleFocus wires TAB to rotate focus through the given widgets and '/' to
// jump to the first one (the search input).
func cycleFocus(app *tview.Application, widgets ...tview.Primitive) {
	for i, widget := range widgets {
		list, ok := widget.(*tview.List)
		if !ok {
			continue
		}
		next := widgets[(i+1)%len(widgets)]
		list.SetInputCapture(func(event *tcell.EventKey) *tcell.EventKey {
			if event.Key() == tcell.KeyTab {
				app.SetFocus(next)
				return nil
			}
			if event.Key() == tcell.KeyRune && event.Rune() == '/' {
				app.SetFocus(widgets[0])
				return nil
			}
			return event
		})
	}
}

func songLine(song domain.Song) string {
	return fmt.Sprintf("%s - %s [darkgray](%s)", song.Title, song.Artist, FormatDuration(song.Duration))
}
