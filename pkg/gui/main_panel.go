package gui

import (
	"github.com/jesseduffield/gocui"
	"github.com/nymea/tscat/pkg/presentation"
)

// mainContent is the message table of the selected context
func (gui *Gui) mainContent() (string, string, error) {
	item, ok := gui.State.Contexts.selected()
	if !ok {
		return "", gui.Tr.NoContexts, nil
	}

	content, err := presentation.RenderMessages(gui.Tr, gui.State.Doc, item.Name, gui.Config.UserConfig.Browse.TextWidth)
	return item.Name, content, err
}

func (gui *Gui) renderMain() error {
	title, content, err := gui.mainContent()
	if err != nil {
		return err
	}

	gui.Views.Main.Title = title
	if err := gui.Views.Main.SetOrigin(0, 0); err != nil {
		return err
	}
	return gui.setViewContent(gui.Views.Main, content)
}

func (gui *Gui) scrollUpMain(g *gocui.Gui, v *gocui.View) error {
	mainView := gui.Views.Main
	ox, oy := mainView.Origin()
	return mainView.SetOrigin(ox, max(oy-gui.scrollHeight(), 0))
}

func (gui *Gui) scrollDownMain(g *gocui.Gui, v *gocui.View) error {
	mainView := gui.Views.Main
	ox, oy := mainView.Origin()

	_, sizeY := mainView.Size()
	if oy+sizeY >= mainView.ViewLinesHeight() {
		return nil
	}

	return mainView.SetOrigin(ox, oy+gui.scrollHeight())
}

func (gui *Gui) scrollHeight() int {
	return max(gui.Config.UserConfig.Browse.ScrollHeight, 1)
}
