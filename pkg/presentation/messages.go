package presentation

import (
	"strings"

	"github.com/fatih/color"
	"github.com/nymea/tscat/pkg/i18n"
	"github.com/nymea/tscat/pkg/ts"
	"github.com/nymea/tscat/pkg/utils"
	"github.com/samber/lo"
)

// MessageRow is one line of `tscat list`
type MessageRow struct {
	Context string
	Message *ts.Message
	Tr      *i18n.TranslationSet
	// Width caps the source and translation columns, 0 means no limit
	Width int
}

// GetDisplayStrings returns the columns of the row
func (r MessageRow) GetDisplayStrings(_ bool) []string {
	return []string{
		r.Context,
		utils.TruncateWithEllipsis(r.Message.Source, r.Width),
		utils.ColoredString(utils.TruncateWithEllipsis(r.Message.Comment, r.Width), color.FgCyan),
		utils.TruncateWithEllipsis(displayTranslation(r.Message), r.Width),
		GetMessageStatus(r.Tr, r.Message),
	}
}

func displayTranslation(message *ts.Message) string {
	if message.Numerus {
		return strings.Join(lo.Map(message.Translation.NumerusForms, func(form string, _ int) string {
			return ts.FirstVariant(form)
		}), " | ")
	}
	return ts.FirstVariant(message.Translation.Text)
}

// GetMessageStatus returns the coloured state of a message
func GetMessageStatus(tr *i18n.TranslationSet, message *ts.Message) string {
	var status string
	var attribute color.Attribute

	switch {
	case message.Translation.Type == ts.TypeObsolete:
		status, attribute = tr.StatusObsolete, color.FgBlue
	case message.Translation.Type == ts.TypeVanished:
		status, attribute = tr.StatusVanished, color.FgMagenta
	case !message.Translated():
		status, attribute = tr.StatusUntranslated, color.FgRed
	case message.Translation.Type == ts.TypeUnfinished:
		status, attribute = tr.StatusUnfinished, color.FgYellow
	default:
		status, attribute = tr.StatusFinished, color.FgGreen
	}

	if message.Numerus {
		status += " (" + tr.StatusNumerus + ")"
	}
	return utils.ColoredString(status, attribute)
}

// RenderMessages renders the messages of doc as a table. With a context name
// only that context is listed.
func RenderMessages(tr *i18n.TranslationSet, doc *ts.Document, contextName string, width int) (string, error) {
	rows := []MessageRow{}
	doc.Each(func(c *ts.Context, m *ts.Message) {
		if contextName != "" && c.Name != contextName {
			return
		}
		rows = append(rows, MessageRow{Context: c.Name, Message: m, Tr: tr, Width: width})
	})

	return utils.RenderList(rows, utils.WithHeader([]string{
		utils.ColoredString(tr.ContextColumn, color.Bold),
		utils.ColoredString(tr.SourceColumn, color.Bold),
		utils.ColoredString(tr.CommentColumn, color.Bold),
		utils.ColoredString(tr.TranslationColumn, color.Bold),
		utils.ColoredString(tr.StatusColumn, color.Bold),
	}))
}
