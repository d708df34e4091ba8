package presentation

import (
	"fmt"
	"reflect"
	"strconv"

	"github.com/fatih/color"
	"github.com/mcuadros/go-lookup"
	"github.com/nymea/tscat/pkg/catalog"
	"github.com/nymea/tscat/pkg/i18n"
	"github.com/nymea/tscat/pkg/ts"
	"github.com/nymea/tscat/pkg/utils"
	"github.com/samber/lo"
)

// RenderDocumentInfo renders the header attributes of a TS file
func RenderDocumentInfo(tr *i18n.TranslationSet, doc *ts.Document) string {
	return utils.FormatMap(2, map[string]string{
		tr.VersionLabel:        doc.Version,
		tr.LanguageLabel:       doc.Language,
		tr.SourceLanguageLabel: lo.Ternary(doc.SourceLanguage == "", "-", doc.SourceLanguage),
		tr.ContextsLabel:       strconv.Itoa(len(doc.Contexts)),
		tr.MessagesLabel:       strconv.Itoa(doc.MessageCount()),
	})
}

// RenderStats renders one row per context followed by the totals
func RenderStats(tr *i18n.TranslationSet, stats catalog.Stats, incompleteOnly bool) (string, error) {
	contexts := stats.Contexts
	if incompleteOnly {
		contexts = stats.Incomplete()
	}

	rows := [][]string{{
		utils.ColoredString(tr.ContextColumn, color.Bold),
		utils.ColoredString(tr.MessagesColumn, color.Bold),
		utils.ColoredString(tr.FinishedColumn, color.Bold),
		utils.ColoredString(tr.UnfinishedColumn, color.Bold),
		utils.ColoredString(tr.UntranslatedColumn, color.Bold),
		utils.ColoredString(tr.CompletionColumn, color.Bold),
	}}
	for _, context := range contexts {
		rows = append(rows, getCountsDisplayStrings(context.Name, context.Counts))
	}
	rows = append(rows, getCountsDisplayStrings(utils.ColoredString(tr.TotalRow, color.Bold), stats.Totals))

	return utils.RenderTable(rows)
}

func getCountsDisplayStrings(name string, counts catalog.Counts) []string {
	return []string{
		name,
		strconv.Itoa(counts.Active),
		strconv.Itoa(counts.Finished),
		strconv.Itoa(counts.Unfinished),
		utils.ColoredString(strconv.Itoa(counts.Untranslated), lo.Ternary(counts.Untranslated > 0, color.FgRed, color.FgWhite)),
		utils.ColoredString(fmt.Sprintf("%.1f%%", counts.Completion()), getCompletionColor(counts.Completion())),
	}
}

func getCompletionColor(completion float64) color.Attribute {
	switch {
	case completion >= 100:
		return color.FgGreen
	case completion >= 50:
		return color.FgYellow
	default:
		return color.FgRed
	}
}

// RenderStatsField renders a single value out of the stats, selected by a
// dotted path such as "Totals.Untranslated" or "Contexts[2].Name".
// Structs and lists are rendered as yaml.
func RenderStatsField(stats catalog.Stats, path string) (string, error) {
	value, err := lookup.LookupString(stats, path)
	if err != nil {
		return "", err
	}

	switch value.Kind() {
	case reflect.Struct, reflect.Slice, reflect.Map, reflect.Array:
		out, err := utils.MarshalIntoYaml(value.Interface())
		if err != nil {
			return "", err
		}
		return utils.ColoredYamlString(string(out)), nil
	default:
		return fmt.Sprintf("%v\n", value.Interface()), nil
	}
}
