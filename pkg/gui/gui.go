package gui

import (
	"time"

	"github.com/boz/go-throttle"
	"github.com/jesseduffield/gocui"
	"github.com/nymea/tscat/pkg/catalog"
	"github.com/nymea/tscat/pkg/config"
	"github.com/nymea/tscat/pkg/i18n"
	"github.com/nymea/tscat/pkg/ts"
	"github.com/sirupsen/logrus"
)

// OverlappingEdges determines if panel edges overlap
var OverlappingEdges = false

// mainRenderDelay is the shortest time between two renders of the main view
// while the user holds down a navigation key
const mainRenderDelay = 30 * time.Millisecond

// Gui pages through the contexts of a single TS file
type Gui struct {
	g      *gocui.Gui
	Log    *logrus.Entry
	Tr     *i18n.TranslationSet
	Config *config.AppConfig
	Views  Views
	State  *guiState

	mainRenderer throttle.ThrottleDriver
}

type guiState struct {
	Doc        *ts.Document
	Contexts   contextsPanelState
	ViewsSetup bool
}

// NewGui builds a new gui handler for doc
func NewGui(log *logrus.Entry, tr *i18n.TranslationSet, config *config.AppConfig, doc *ts.Document) *Gui {
	return &Gui{
		Log:    log,
		Tr:     tr,
		Config: config,
		State: &guiState{
			Doc: doc,
			Contexts: contextsPanelState{
				Items: catalog.Summarize(doc).Contexts,
			},
		},
	}
}

// Run takes over the terminal until the user quits
func (gui *Gui) Run() error {
	g, err := gocui.NewGui(gocui.NewGuiOpts{
		OutputMode:      gocui.OutputNormal,
		SupportOverlaps: OverlappingEdges,
	})
	if err != nil {
		return err
	}
	defer g.Close()

	g.Mouse = true
	gui.g = g

	gui.mainRenderer = throttle.ThrottleFunc(mainRenderDelay, true, func() {
		gui.g.Update(func(*gocui.Gui) error {
			return gui.renderMain()
		})
	})
	defer gui.mainRenderer.Stop()

	g.SetManager(gocui.ManagerFunc(gui.layout))

	if err := gui.keybindings(g); err != nil {
		return err
	}

	err = g.MainLoop()
	if err == gocui.ErrQuit {
		return nil
	}
	return err
}

func (gui *Gui) quit(g *gocui.Gui, v *gocui.View) error {
	return gocui.ErrQuit
}
