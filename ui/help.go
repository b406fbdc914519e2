package ui

import (
	"github.com/gdamore/tcell/v2"
	"github.com/rivo/tview"
)

const helpPageName = "help"

const helpText = `[yellow::b]Keyboard Shortcuts[-:-:-]

[lightgreen]Playback:[-]
  [white]Space[-]       Play/Pause current song
  [white]Enter[-]       Play selected song
  [white]n / N[-]       Next song
  [white]p / P[-]       Previous song
  [white]→ / ←[-]       Next/Previous song (alternative)

[lightgreen]Navigation:[-]
  [white]↑ / ↓[-]       Move selection
  [white]Tab[-]         Switch section
  [white]/[-]           Jump to search
  [white]g h[-]         Go home
  [white]ESC[-]         Back to Home / Exit

[lightgreen]Library:[-]
  [white]f[-]           Star selected song
  [white]u[-]           Unstar selected song

[lightgreen]General:[-]
  [white]?[-]           Toggle this help panel
  [white]L[-]           Log out
  [white]Ctrl+C[-]      Exit program

[yellow]Press ESC or ? to close this help panel[-]
`

// toggleHelp opens the help overlay, or closes it when already open.
func (a *App) toggleHelp() {
	if a.closeHelp() {
		return
	}

	text := tview.NewTextView().
		SetDynamicColors(true).
		SetScrollable(true).
		SetWrap(true).
		SetText(helpText)

	box := tview.NewFlex().
		SetDirection(tview.FlexRow).
		AddItem(text, 0, 1, true)
	box.SetBorder(true).
		SetTitle(" Help (ESC to close) ").
		SetBorderColor(tcell.ColorYellow)

	modal := tview.NewFlex().
		SetDirection(tview.FlexRow).
		AddItem(nil, 0, 1, false).
		AddItem(tview.NewFlex().
			SetDirection(tview.FlexColumn).
			AddItem(nil, 0, 1, false).
			AddItem(box, 60, 0, true).
			AddItem(nil, 0, 1, false), 24, 0, true).
		AddItem(nil, 0, 1, false)

	a.pages.AddPage(helpPageName, modal, true, true)
	a.tviewApp.SetFocus(text)
}

// closeHelp removes the help overlay if present and reports whether it did.
func (a *App) closeHelp() bool {
	if !a.pages.HasPage(helpPageName) {
		return false
	}
	a.pages.RemovePage(helpPageName)
	return true
}
