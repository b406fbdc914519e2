package ui

import (
	"fmt"

	"github.com/gdamore/tcell/v2"
	"github.com/rivo/tview"
)

// showLogin renders the connection form. Saved credentials pre-fill the
// fields; errMsg carries the failure from the previous attempt.
func (a *App) showLogin(errMsg string) {
	form := tview.NewForm().
		AddInputField("Server URL", a.cfg.Server.URL, 40, nil, nil).
		AddInputField("Username", a.cfg.Server.Username, 40, nil, nil).
		AddPasswordField("Password", a.cfg.Server.Password, 40, '*', nil)

	status := tview.NewTextView().
		SetDynamicColors(true).
		SetTextAlign(tview.AlignCenter)
	if errMsg != "" {
		status.SetText(fmt.Sprintf("[red]%s", errMsg))
	}

	form.AddButton("Connect", func() {
		baseURL := form.GetFormItemByLabel("Server URL").(*tview.InputField).GetText()
		username := form.GetFormItemByLabel("Username").(*tview.InputField).GetText()
		password := form.GetFormItemByLabel("Password").(*tview.InputField).GetText()
		status.SetText("[yellow]Connecting...")
		go a.login(baseURL, username, password)
	})
	form.AddButton("Quit", func() {
		a.Stop()
	})
	form.SetButtonsAlign(tview.AlignCenter)
	form.SetBorder(true).SetTitle(" soundtrack ").SetTitleAlign(tview.AlignCenter)
	form.SetFieldBackgroundColor(tcell.ColorDarkSlateGray)

	layout := tview.NewFlex().
		SetDirection(tview.FlexRow).
		AddItem(nil, 0, 1, false).
		AddItem(tview.NewFlex().
			SetDirection(tview.FlexColumn).
			AddItem(nil, 0, 1, false).
			AddItem(form, 60, 0, true).
			AddItem(nil, 0, 1, false), 13, 0, true).
		AddItem(status, 1, 0, false).
		AddItem(nil, 0, 1, false)

	a.setMain(layout)
	a.tviewApp.SetFocus(form)
}
