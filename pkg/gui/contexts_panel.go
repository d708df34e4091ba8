package gui

import (
	"fmt"

	"github.com/fatih/color"
	"github.com/jesseduffield/gocui"
	"github.com/nymea/tscat/pkg/catalog"
	"github.com/nymea/tscat/pkg/utils"
	"github.com/samber/lo"
)

type contextsPanelState struct {
	Items        []catalog.ContextStats
	SelectedLine int
}

// moveSelection moves the selected line by delta, stopping at either end of
// the list. It reports whether the selection changed.
func (s *contextsPanelState) moveSelection(delta int) bool {
	if len(s.Items) == 0 {
		return false
	}
	next := min(max(s.SelectedLine+delta, 0), len(s.Items)-1)
	if next == s.SelectedLine {
		return false
	}
	s.SelectedLine = next
	return true
}

func (s *contextsPanelState) selected() (catalog.ContextStats, bool) {
	if s.SelectedLine < 0 || s.SelectedLine >= len(s.Items) {
		return catalog.ContextStats{}, false
	}
	return s.Items[s.SelectedLine], true
}

type contextRow struct {
	catalog.ContextStats
}

// GetDisplayStrings returns the name of the context and how much of it is finished
func (r contextRow) GetDisplayStrings(_ bool) []string {
	progress := fmt.Sprintf("%d/%d", r.Finished, r.Active)
	if r.Finished < r.Active {
		progress = utils.ColoredString(progress, color.FgYellow)
	} else {
		progress = utils.ColoredString(progress, color.FgGreen)
	}
	return []string{r.Name, progress}
}

func renderContextList(items []catalog.ContextStats) (string, error) {
	return utils.RenderList(lo.Map(items, func(item catalog.ContextStats, _ int) contextRow {
		return contextRow{ContextStats: item}
	}))
}

func (gui *Gui) renderContextList() error {
	content, err := renderContextList(gui.State.Contexts.Items)
	if err != nil {
		return err
	}
	return gui.setViewContent(gui.Views.Contexts, content)
}

func (gui *Gui) handleContextsNextLine(g *gocui.Gui, v *gocui.View) error {
	return gui.onContextsMoved(v, gui.State.Contexts.moveSelection(1))
}

func (gui *Gui) handleContextsPrevLine(g *gocui.Gui, v *gocui.View) error {
	return gui.onContextsMoved(v, gui.State.Contexts.moveSelection(-1))
}

func (gui *Gui) onContextsMoved(v *gocui.View, changed bool) error {
	if !changed {
		return nil
	}
	gui.focusY(gui.State.Contexts.SelectedLine, len(gui.State.Contexts.Items), v)
	gui.mainRenderer.Trigger()
	return nil
}
