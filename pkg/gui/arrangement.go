package gui

import (
	"github.com/jesseduffield/lazycore/pkg/boxlayout"
	"github.com/nymea/tscat/pkg/config"
)

// In this file we use the boxlayout package to arrange the windows on the screen.

const (
	minimumWidth  = 10
	minimumHeight = 5
)

func getWindowDimensions(width, height int, sidePanelWidth float64) map[string]boxlayout.Dimensions {
	if width < minimumWidth || height < minimumHeight {
		return boxlayout.ArrangeWindows(&boxlayout.Box{Window: "limit"}, 0, 0, width, height)
	}

	sideSectionWeight, mainSectionWeight := getMidSectionWeights(sidePanelWidth)

	root := &boxlayout.Box{
		Direction: boxlayout.ROW,
		Children: []*boxlayout.Box{
			{
				Direction: boxlayout.COLUMN,
				Weight:    1,
				Children: []*boxlayout.Box{
					{
						Window: "contexts",
						Weight: sideSectionWeight,
					},
					{
						Window: "main",
						Weight: mainSectionWeight,
					},
				},
			},
			{
				Window: "options",
				Size:   1,
			},
		},
	}

	return boxlayout.ArrangeWindows(root, 0, 0, width, height)
}

// a ratio of .25 corresponds to a weight of 1 against 3
func getMidSectionWeights(sidePanelWidth float64) (int, int) {
	if sidePanelWidth <= 0 || sidePanelWidth >= 1 {
		sidePanelWidth = config.DefaultSidePanelWidth
	}
	return 1, max(int(1/sidePanelWidth)-1, 1)
}
