package gui

import (
	"github.com/jesseduffield/gocui"
)

func (gui *Gui) layout(g *gocui.Gui) error {
	if !gui.State.ViewsSetup {
		if err := gui.createAllViews(); err != nil {
			return err
		}
		if err := gui.renderContextList(); err != nil {
			return err
		}
		if err := gui.renderOptions(); err != nil {
			return err
		}
		if err := gui.renderMain(); err != nil {
			return err
		}

		gui.State.ViewsSetup = true
	}

	g.Highlight = true
	width, height := g.Size()

	viewDimensions := getWindowDimensions(width, height, gui.Config.UserConfig.Browse.SidePanelWidth)
	// we assume that the view has already been created.
	setViewFromDimensions := func(viewName string) error {
		view, err := g.View(viewName)
		if err != nil {
			return err
		}

		dimensionsObj, ok := viewDimensions[viewName]
		if !ok {
			_, err := g.SetView(viewName, 0, 0, width, height, 0)
			view.Visible = false
			return err
		}

		frameOffset := 1
		if view.Frame {
			frameOffset = 0
		}
		_, err = g.SetView(
			viewName,
			dimensionsObj.X0-frameOffset,
			dimensionsObj.Y0-frameOffset,
			dimensionsObj.X1+frameOffset,
			dimensionsObj.Y1+frameOffset,
			0,
		)
		view.Visible = true
		return err
	}

	for _, mapping := range gui.orderedViewNameMappings() {
		if err := setViewFromDimensions(mapping.name); err != nil && err.Error() != UNKNOWN_VIEW_ERROR_MSG {
			return err
		}
	}

	if g.CurrentView() == nil {
		if _, err := g.SetCurrentView(gui.Views.Contexts.Name()); err != nil {
			return err
		}
		gui.focusY(gui.State.Contexts.SelectedLine, len(gui.State.Contexts.Items), gui.Views.Contexts)
	}

	return nil
}
