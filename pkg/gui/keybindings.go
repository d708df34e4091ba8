package gui

import (
	"github.com/jesseduffield/gocui"
)

// Binding maps a key to a handler. An empty ViewName binds the key globally
type Binding struct {
	ViewName string
	Handler  func(*gocui.Gui, *gocui.View) error
	Key      interface{} // gocui.Key or rune
	Modifier gocui.Modifier
}

func (gui *Gui) GetInitialKeybindings() []*Binding {
	bindings := []*Binding{
		{ViewName: "", Key: 'q', Modifier: gocui.ModNone, Handler: gui.quit},
		{ViewName: "", Key: gocui.KeyCtrlC, Modifier: gocui.ModNone, Handler: gui.quit},
		{ViewName: "", Key: gocui.KeyTab, Modifier: gocui.ModNone, Handler: gui.nextView},
		{ViewName: "contexts", Key: gocui.KeyEnter, Modifier: gocui.ModNone, Handler: gui.nextView},
		{ViewName: "main", Key: gocui.KeyEsc, Modifier: gocui.ModNone, Handler: gui.nextView},
	}

	for _, nav := range []struct {
		viewName string
		onUp     func(*gocui.Gui, *gocui.View) error
		onDown   func(*gocui.Gui, *gocui.View) error
	}{
		{viewName: "contexts", onUp: gui.handleContextsPrevLine, onDown: gui.handleContextsNextLine},
		{viewName: "main", onUp: gui.scrollUpMain, onDown: gui.scrollDownMain},
	} {
		bindings = append(bindings, []*Binding{
			{ViewName: nav.viewName, Key: gocui.KeyArrowUp, Modifier: gocui.ModNone, Handler: nav.onUp},
			{ViewName: nav.viewName, Key: 'k', Modifier: gocui.ModNone, Handler: nav.onUp},
			{ViewName: nav.viewName, Key: gocui.MouseWheelUp, Modifier: gocui.ModNone, Handler: nav.onUp},
			{ViewName: nav.viewName, Key: gocui.KeyArrowDown, Modifier: gocui.ModNone, Handler: nav.onDown},
			{ViewName: nav.viewName, Key: 'j', Modifier: gocui.ModNone, Handler: nav.onDown},
			{ViewName: nav.viewName, Key: gocui.MouseWheelDown, Modifier: gocui.ModNone, Handler: nav.onDown},
		}...)
	}

	return bindings
}

func (gui *Gui) keybindings(g *gocui.Gui) error {
	for _, binding := range gui.GetInitialKeybindings() {
		if err := g.SetKeybinding(binding.ViewName, binding.Key, binding.Modifier, binding.Handler); err != nil {
			return err
		}
	}
	return nil
}
