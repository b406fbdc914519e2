package ui

import (
	"fmt"
	"time"

	"github.com/rivo/tview"
)

// showPlayer renders the now-playing screen: cover art on the left, song
// details and progress on the right.
func (a *App) showPlayer() {
	song, ok := a.ctrl.CurrentSong()
	if !ok {
		a.showInvalidState()
		return
	}

	a.coverView = tview.NewTextView().SetDynamicColors(false)
	a.coverView.SetBorder(true).SetTitle(" Cover ")

	a.statusView = tview.NewTextView().SetDynamicColors(true)
	a.statusView.SetBorder(true).SetTitle(" Now Playing ")

	a.progressView = tview.NewTextView().SetDynamicColors(true)

	status := "[lightgreen]playing"
	if !a.ctrl.IsPlaying() {
		status = "[yellow]paused"
	}
	a.statusView.SetText(FormatSongInfo(song, a.ctrl.CurrentIndex(), status, ""))

	if url := a.ctrl.CoverArtURL(song.CoverArt, a.cfg.UI.CoverArtSize); url != "" {
		cover := a.coverView
		go func() {
			art, err := a.cover.ConvertFromURL(url, 40, 20)
			if err != nil {
				return
			}
			a.tviewApp.QueueUpdateDraw(func() {
				cover.SetText(art)
			})
		}()
	}

	queue := a.ctrl.Queue()
	queueList := a.newSectionList(fmt.Sprintf(" Queue (%d) ", len(queue)))
	for i, item := range queue {
		prefix := "  "
		if i == a.ctrl.CurrentIndex() {
			prefix = "> "
		}
		queueList.AddItem(prefix+songLine(item), "", 0, nil)
	}

	right := tview.NewFlex().
		SetDirection(tview.FlexRow).
		AddItem(a.statusView, 0, 2, true).
		AddItem(queueList, 0, 1, false)

	main := tview.NewFlex().
		SetDirection(tview.FlexColumn).
		AddItem(a.coverView, 44, 0, false).
		AddItem(right, 0, 1, true)

	layout := tview.NewFlex().
		SetDirection(tview.FlexRow).
		AddItem(main, 0, 1, true).
		AddItem(a.progressView, 1, 0, false)

	a.setMain(layout)
	a.tviewApp.SetFocus(a.statusView)
}

// updateProgress refreshes the progress line once a second while a song is
// loaded and the player screen is visible.
func (a *App) updateProgress() {
	ticker := time.NewTicker(1 * time.Second)
	defer ticker.Stop()

	for {
		select {
		case <-a.ctx.Done():
			return
		case <-ticker.C:
			loaded, err := a.plr.IsSongLoaded()
			if err != nil || !loaded {
				continue
			}
			pos, total, err := a.plr.GetProgress()
			if err != nil || total <= 0 {
				continue
			}
			text := fmt.Sprintf("[darkgray]%s/%s %s",
				FormatDuration(int(pos)), FormatDuration(int(total)),
				CreateProgressBar(pos/total, a.cfg.UI.ProgressBarWidth))

			a.tviewApp.QueueUpdateDraw(func() {
				if a.progressView != nil {
					a.progressView.SetText(text)
				}
			})
		}
	}
}
