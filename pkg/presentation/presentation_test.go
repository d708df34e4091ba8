package presentation

import (
	"io"
	"strings"
	"testing"

	"github.com/jesseduffield/yaml"
	"github.com/nymea/tscat/pkg/catalog"
	"github.com/nymea/tscat/pkg/i18n"
	"github.com/nymea/tscat/pkg/ts"
	"github.com/nymea/tscat/pkg/utils"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestTr() *i18n.TranslationSet {
	log := logrus.New()
	log.Out = io.Discard
	return i18n.NewTranslationSet(log.WithField("test", "test"), "en")
}

func testDocument() *ts.Document {
	doc := ts.NewDocument("de_DE")
	doc.SourceLanguage = "en_US"
	doc.AddContext("MainPage").Messages = []*ts.Message{
		{
			Source:      "Settings",
			Locations:   []ts.Location{{Filename: "../ui/MainPage.qml", Line: "42"}},
			Translation: ts.Translation{Text: "Einstellungen"},
		},
		{
			Source:  "%n item(s)",
			Numerus: true,
			Translation: ts.Translation{
				Type:         ts.TypeUnfinished,
				NumerusForms: []string{"%n Element", "%n Elemente"},
			},
		},
		{Source: "Old", Comment: "menu", Translation: ts.Translation{Type: ts.TypeObsolete, Text: "Alt"}},
	}
	doc.AddContext("Other").Messages = []*ts.Message{
		{Source: "Quit", Translation: ts.Translation{Type: ts.TypeUnfinished}},
	}
	return doc
}

func TestGetMessageStatus(t *testing.T) {
	tr := newTestTr()

	type scenario struct {
		message  *ts.Message
		expected string
	}

	scenarios := []scenario{
		{&ts.Message{Source: "a", Translation: ts.Translation{Text: "b"}}, "finished"},
		{&ts.Message{Source: "a", Translation: ts.Translation{Type: ts.TypeUnfinished, Text: "b"}}, "unfinished"},
		{&ts.Message{Source: "a", Translation: ts.Translation{Type: ts.TypeUnfinished}}, "untranslated"},
		{&ts.Message{Source: "a", Translation: ts.Translation{Type: ts.TypeObsolete, Text: "b"}}, "obsolete"},
		{&ts.Message{Source: "a", Translation: ts.Translation{Type: ts.TypeVanished}}, "vanished"},
		{&ts.Message{Source: "a", Numerus: true, Translation: ts.Translation{NumerusForms: []string{"x", ""}}}, "untranslated (numerus)"},
	}

	for _, s := range scenarios {
		assert.Equal(t, s.expected, utils.Decolorise(GetMessageStatus(tr, s.message)))
	}
}

func TestRenderMessages(t *testing.T) {
	tr := newTestTr()

	output, err := RenderMessages(tr, testDocument(), "Other", 0)
	require.NoError(t, err)
	assert.Equal(t,
		"context source comment translation status\nOther   Quit                       untranslated",
		utils.Decolorise(output),
	)

	output, err = RenderMessages(tr, testDocument(), "", 0)
	require.NoError(t, err)
	lines := utils.SplitLines(utils.Decolorise(output))
	assert.Len(t, lines, 5)
	assert.Contains(t, lines[2], "%n Element | %n Elemente")
	assert.Contains(t, lines[2], "unfinished (numerus)")
	assert.Contains(t, lines[3], "menu")

	output, err = RenderMessages(tr, testDocument(), "", 6)
	require.NoError(t, err)
	assert.Contains(t, utils.Decolorise(output), "Einst…")

	output, err = RenderMessages(tr, testDocument(), "NoSuchContext", 0)
	require.NoError(t, err)
	assert.Equal(t, "", output)
}

func TestRenderStats(t *testing.T) {
	tr := newTestTr()
	stats := catalog.Summarize(testDocument())

	output, err := RenderStats(tr, stats, false)
	require.NoError(t, err)
	lines := utils.SplitLines(utils.Decolorise(output))
	require.Len(t, lines, 4)
	assert.Equal(t, []string{"context", "messages", "finished", "unfinished", "untranslated", "done"}, strings.Fields(lines[0]))
	assert.Equal(t, []string{"MainPage", "2", "1", "1", "0", "50.0%"}, strings.Fields(lines[1]))
	assert.Equal(t, []string{"Other", "1", "0", "0", "1", "0.0%"}, strings.Fields(lines[2]))
	assert.Equal(t, []string{"total", "3", "1", "1", "1", "33.3%"}, strings.Fields(lines[3]))

	output, err = RenderStats(tr, stats, true)
	require.NoError(t, err)
	lines = utils.SplitLines(utils.Decolorise(output))
	require.Len(t, lines, 3)
	assert.Equal(t, "Other", strings.Fields(lines[1])[0])
}

func TestRenderStatsField(t *testing.T) {
	stats := catalog.Summarize(testDocument())

	type scenario struct {
		path     string
		expected string
	}

	scenarios := []scenario{
		{"Totals.Untranslated", "1\n"},
		{"Language", "de_DE\n"},
		{"Contexts[1].Name", "Other\n"},
		{"Contexts[0].Obsolete", "1\n"},
	}

	for _, s := range scenarios {
		output, err := RenderStatsField(stats, s.path)
		assert.NoError(t, err, s.path)
		assert.Equal(t, s.expected, output, s.path)
	}

	output, err := RenderStatsField(stats, "Totals")
	require.NoError(t, err)
	output = utils.Decolorise(output)
	assert.True(t, strings.HasPrefix(output, "Total: 4\n"), output)
	assert.Contains(t, output, "Untranslated: 1\n")

	_, err = RenderStatsField(stats, "Totals.Nope")
	assert.Error(t, err)
}

func TestRenderDocumentInfo(t *testing.T) {
	output := utils.Decolorise(RenderDocumentInfo(newTestTr(), testDocument()))

	assert.Contains(t, output, "  language: de_DE\n")
	assert.Contains(t, output, "  source language: en_US\n")
	assert.Contains(t, output, "  contexts: 2\n")
	assert.Contains(t, output, "  messages: 4\n")
	assert.Contains(t, output, "  version: 2.1\n")
}

func TestRenderExport(t *testing.T) {
	doc := testDocument()

	out, err := RenderExport(doc)
	require.NoError(t, err)

	content := string(out)
	assert.True(t, strings.HasPrefix(content, "version: \"2.1\"\nlanguage: de_DE\n"), content)
	assert.Contains(t, content, "- ../ui/MainPage.qml:42\n")
	assert.Contains(t, content, "type: obsolete\n")

	var decoded ExportDocument
	require.NoError(t, yaml.Unmarshal(out, &decoded))
	assert.Equal(t, NewExportDocument(doc), decoded)
}
