package gui

import (
	"github.com/jesseduffield/gocui"
)

// UNKNOWN_VIEW_ERROR_MSG is what gocui returns when SetView creates a view
const UNKNOWN_VIEW_ERROR_MSG = "unknown view"

type Views struct {
	Contexts *gocui.View
	Main     *gocui.View
	Options  *gocui.View
	Limit    *gocui.View
}

type viewNameMapping struct {
	viewPtr **gocui.View
	name    string
}

func (gui *Gui) orderedViewNameMappings() []viewNameMapping {
	return []viewNameMapping{
		{viewPtr: &gui.Views.Contexts, name: "contexts"},
		{viewPtr: &gui.Views.Main, name: "main"},
		{viewPtr: &gui.Views.Options, name: "options"},
		{viewPtr: &gui.Views.Limit, name: "limit"},
	}
}

func (gui *Gui) createAllViews() error {
	var err error
	for _, mapping := range gui.orderedViewNameMappings() {
		*mapping.viewPtr, err = gui.prepareView(mapping.name)
		if err != nil && err.Error() != UNKNOWN_VIEW_ERROR_MSG {
			return err
		}
		(*mapping.viewPtr).FgColor = gocui.ColorDefault
	}

	gui.Views.Contexts.Highlight = true
	gui.Views.Contexts.Title = gui.Tr.ContextsTitle
	gui.Views.Contexts.SelBgColor = gocui.ColorBlue

	gui.Views.Main.Wrap = false

	gui.Views.Options.Frame = false
	gui.Views.Options.FgColor = gocui.ColorBlue

	gui.Views.Limit.Title = gui.Tr.NotEnoughSpace
	gui.Views.Limit.Wrap = true

	return nil
}

func (gui *Gui) prepareView(viewName string) (*gocui.View, error) {
	// arbitrarily giving the view enough size so that we don't get an error, but
	// it's expected that the view will be given the correct size before being shown
	return gui.g.SetView(viewName, 0, 0, 10, 10, 0)
}
