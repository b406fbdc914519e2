package ui

import (
	"fmt"

	"github.com/rivo/tview"
)

// showSearch renders the sectioned results for the last query.
func (a *App) showSearch() {
	query := a.ctrl.SearchQuery()
	results := a.ctrl.SearchResults()

	header := tview.NewTextView().SetDynamicColors(true)
	if results.IsEmpty() {
		header.SetText(fmt.Sprintf("[yellow]No results for %q", query))
	} else {
		header.SetText(fmt.Sprintf("[white]Results for [lightgreen]%q", query))
	}

	artistList := a.newSectionList(fmt.Sprintf(" Artists (%d) ", len(results.Artists)))
	for _, artist := range results.Artists {
		id := artist.ID
		artistList.AddItem(artist.Name, "", 0, func() {
			a.dispatch(func() { a.ctrl.LoadArtistAlbums(id) })
		})
	}

	albumList := a.newSectionList(fmt.Sprintf(" Albums (%d) ", len(results.Albums)))
	for _, album := range results.Albums {
		id := album.ID
		albumList.AddItem(FormatAlbumLine(album), "", 0, func() {
			a.dispatch(func() { a.ctrl.OpenAlbum(id) })
		})
	}

	songs := results.Songs
	songList := a.newSectionList(fmt.Sprintf(" Songs (%d) ", len(songs)))
	for _, song := range songs {
		s := song
		songList.AddItem(songLine(s), "", 0, func() {
			a.playSong(s, songs)
		})
	}

	cycleFocus(a.tviewApp, artistList, albumList, songList)

	sections := tview.NewFlex().
		SetDirection(tview.FlexColumn).
		AddItem(artistList, 0, 1, true).
		AddItem(albumList, 0, 2, false).
		AddItem(songList, 0, 2, false)

	layout := tview.NewFlex().
		SetDirection(tview.FlexRow).
		AddItem(header, 1, 0, false).
		AddItem(sections, 0, 1, true).
		AddItem(a.statusLine(), 1, 0, false)

	a.setMain(layout)
	a.tviewApp.SetFocus(artistList)
}
