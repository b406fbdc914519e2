package ui

import (
	"fmt"

	"github.com/gdamore/tcell/v2"
	"github.com/rivo/tview"
)

// showArtistDetail renders one artist's album table.
func (a *App) showArtistDetail() {
	artist, ok := a.ctrl.CurrentArtist()
	if !ok {
		a.showInvalidState()
		return
	}
	albums := a.ctrl.Albums()

	header := tview.NewTextView().SetDynamicColors(true)
	header.SetText(fmt.Sprintf("[lightgreen]%s [darkgray](%d albums)", artist.Name, len(albums)))

	table := tview.NewTable().
		SetBorders(false).
		SetSelectable(true, false).
		SetFixed(1, 0)
	table.SetSelectedStyle(tcell.StyleDefault.
		Background(tcell.ColorDarkGreen).
		Foreground(tcell.ColorWhite))

	headerStyle := tcell.StyleDefault.Foreground(tcell.ColorGray).Attributes(tcell.AttrBold)
	table.SetCell(0, 0, tview.NewTableCell("Album").SetStyle(headerStyle).SetExpansion(1))
	table.SetCell(0, 1, tview.NewTableCell("Year").SetStyle(headerStyle).SetAlign(tview.AlignRight))
	table.SetCell(0, 2, tview.NewTableCell("Songs").SetStyle(headerStyle).SetAlign(tview.AlignRight))

	for i, album := range albums {
		row := i + 1
		year := ""
		if album.Year != nil {
			year = fmt.Sprintf("%d", *album.Year)
		}
		table.SetCell(row, 0, tview.NewTableCell(album.Name).SetExpansion(1))
		table.SetCell(row, 1, tview.NewTableCell(year).
			SetTextColor(tcell.ColorGray).SetAlign(tview.AlignRight))
		table.SetCell(row, 2, tview.NewTableCell(fmt.Sprintf("%d", album.SongCount)).
			SetTextColor(tcell.ColorGray).SetAlign(tview.AlignRight))
	}

	table.SetSelectedFunc(func(row, column int) {
		if row < 1 || row > len(albums) {
			return
		}
		id := albums[row-1].ID
		a.dispatch(func() { a.ctrl.OpenAlbum(id) })
	})

	layout := tview.NewFlex().
		SetDirection(tview.FlexRow).
		AddItem(header, 1, 0, false).
		AddItem(table, 0, 1, true).
		AddItem(a.statusLine(), 1, 0, false)

	a.setMain(layout)
	a.tviewApp.SetFocus(table)
}

// showAlbumDetail renders one album's track table. 'f' stars the selected
// song, 'u' removes the star.
func (a *App) showAlbumDetail() {
	album, ok := a.ctrl.CurrentAlbum()
	if !ok {
		a.showInvalidState()
		return
	}
	songs := a.ctrl.Songs()

	year := ""
	if album.Year != nil {
		year = fmt.Sprintf(" (%d)", *album.Year)
	}
	header := tview.NewTextView().SetDynamicColors(true)
	header.SetText(fmt.Sprintf("[lightgreen]%s%s [white]by %s [darkgray](%d songs, %s)",
		album.Name, year, album.Artist, len(songs), FormatDuration(album.Duration)))

	table := tview.NewTable().
		SetBorders(false).
		SetSelectable(true, false).
		SetFixed(1, 0)
	table.SetSelectedStyle(tcell.StyleDefault.
		Background(tcell.ColorDarkGreen).
		Foreground(tcell.ColorWhite))

	headerStyle := tcell.StyleDefault.Foreground(tcell.ColorGray).Attributes(tcell.AttrBold)
	table.SetCell(0, 0, tview.NewTableCell("#").SetStyle(headerStyle).SetAlign(tview.AlignRight))
	table.SetCell(0, 1, tview.NewTableCell("Title").SetStyle(headerStyle).SetExpansion(1))
	table.SetCell(0, 2, tview.NewTableCell("Artist").SetStyle(headerStyle))
	table.SetCell(0, 3, tview.NewTableCell("Length").SetStyle(headerStyle).SetAlign(tview.AlignRight))

	for i, song := range songs {
		row := i + 1
		track := ""
		if song.Track != nil {
			track = fmt.Sprintf("%d", *song.Track)
		}
		table.SetCell(row, 0, tview.NewTableCell(track).
			SetTextColor(tcell.ColorLightGreen).SetAlign(tview.AlignRight))
		table.SetCell(row, 1, tview.NewTableCell(song.Title).SetExpansion(1))
		table.SetCell(row, 2, tview.NewTableCell(song.Artist).
			SetTextColor(tcell.ColorGray).SetMaxWidth(20))
		table.SetCell(row, 3, tview.NewTableCell(FormatDuration(song.Duration)).
			SetTextColor(tcell.ColorGray).SetAlign(tview.AlignRight))
	}

	table.SetSelectedFunc(func(row, column int) {
		if row < 1 || row > len(songs) {
			return
		}
		a.playSong(songs[row-1], songs)
	})

	table.SetInputCapture(func(event *tcell.EventKey) *tcell.EventKey {
		if event.Key() != tcell.KeyRune {
			return event
		}
		row, _ := table.GetSelection()
		if row < 1 || row > len(songs) {
			return event
		}
		id := songs[row-1].ID
		switch event.Rune() {
		case 'f':
			a.dispatch(func() { a.ctrl.Star(id) })
			return nil
		case 'u':
			a.dispatch(func() { a.ctrl.Unstar(id) })
			return nil
		}
		return event
	})

	layout := tview.NewFlex().
		SetDirection(tview.FlexRow).
		AddItem(header, 1, 0, false).
		AddItem(table, 0, 1, true).
		AddItem(a.statusLine(), 1, 0, false)

	a.setMain(layout)
	a.tviewApp.SetFocus(table)
}

// showInvalidState is the terminal rendering for a screen value the switch
// does not know; it should never appear in normal use.
func (a *App) showInvalidState() {
	msg := tview.NewTextView().
		SetDynamicColors(true).
		SetTextAlign(tview.AlignCenter).
		SetText("[red]invalid navigation state, press ESC")
	a.setMain(msg)
}
