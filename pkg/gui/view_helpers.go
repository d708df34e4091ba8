package gui

import (
	"fmt"
	"sort"
	"strings"

	"github.com/jesseduffield/gocui"
	"github.com/nymea/tscat/pkg/utils"
	"github.com/spkg/bom"
)

func (gui *Gui) nextView(g *gocui.Gui, v *gocui.View) error {
	next := gui.Views.Main
	if v == gui.Views.Main {
		next = gui.Views.Contexts
	}
	_, err := g.SetCurrentView(next.Name())
	return err
}

// focusY scrolls v so that the selected line is visible and puts the cursor on it
func (gui *Gui) focusY(selectedY int, lineCount int, v *gocui.View) {
	if v == nil {
		return
	}
	ox, oy := v.Origin()
	_, height := v.Size()

	ly := max(height-1, 0)
	windowStart := oy
	windowEnd := oy + ly

	if selectedY < windowStart {
		oy = max(oy-(windowStart-selectedY), 0)
	} else if selectedY > windowEnd {
		oy += selectedY - windowEnd
	}

	if windowEnd > lineCount-1 {
		oy = max(oy-(windowEnd-(lineCount-1)), 0)
	}

	_ = v.SetOrigin(ox, oy)
	_ = v.SetCursor(0, selectedY-oy)
}

func cleanString(s string) string {
	output := string(bom.Clean([]byte(s)))
	return utils.NormalizeLinefeeds(output)
}

func (gui *Gui) setViewContent(v *gocui.View, s string) error {
	v.Clear()
	fmt.Fprint(v, cleanString(s))
	return nil
}

func optionsMapToString(optionsMap map[string]string) string {
	optionsArray := make([]string, 0, len(optionsMap))
	for key, description := range optionsMap {
		optionsArray = append(optionsArray, key+": "+description)
	}
	sort.Strings(optionsArray)
	return strings.Join(optionsArray, ", ")
}

func (gui *Gui) renderOptions() error {
	return gui.setViewContent(gui.Views.Options, optionsMapToString(map[string]string{
		"↑ ↓": gui.Tr.NavigateOption,
		"tab": gui.Tr.SwitchPanelOption,
		"q":   gui.Tr.QuitOption,
	}))
}
