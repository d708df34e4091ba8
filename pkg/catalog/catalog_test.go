package catalog

import (
	"testing"

	"github.com/nymea/tscat/pkg/plural"
	"github.com/nymea/tscat/pkg/ts"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const fixture = "../ts/testdata/nymea-app-en_US.ts"

func germanDocument() *ts.Document {
	doc := ts.NewDocument("de_DE")
	main := doc.AddContext("MainPage")
	main.Messages = []*ts.Message{
		{Source: "Settings", Translation: ts.Translation{Text: "Einstellungen"}},
		{Source: "Open", Comment: "door", Translation: ts.Translation{Text: "Öffnen"}},
		{Source: "Open", Comment: "file", Translation: ts.Translation{Text: "Aufmachen"}},
		{Source: "Close", Translation: ts.Translation{Type: ts.TypeUnfinished, Text: "Schließen"}},
		{Source: "Quit", Translation: ts.Translation{Type: ts.TypeUnfinished}},
		{Source: "Old", Translation: ts.Translation{Type: ts.TypeObsolete, Text: "Alt"}},
		{Source: "Gone", Translation: ts.Translation{Type: ts.TypeVanished, Text: "Weg"}},
		{Source: "Settings", Translation: ts.Translation{Text: "Duplikat"}},
		{
			Source:      "%n system update(s) available",
			Numerus:     true,
			Translation: ts.Translation{NumerusForms: []string{"%n Systemaktualisierung verfügbar", "%n Systemaktualisierungen verfügbar"}},
		},
		{
			Source:      "%n thing(s)",
			Numerus:     true,
			Translation: ts.Translation{NumerusForms: []string{"%n Ding", ""}},
		},
		{
			Source:      "%n box(es)",
			Numerus:     true,
			Translation: ts.Translation{NumerusForms: []string{"", ""}},
		},
	}
	doc.AddContext("WeatherView")
	return doc
}

func TestLookup(t *testing.T) {
	c := New(germanDocument())

	type scenario struct {
		context  string
		source   string
		comment  string
		expected string
		found    bool
	}

	scenarios := []scenario{
		{"MainPage", "Settings", "", "Einstellungen", true},
		{"MainPage", "Open", "door", "Öffnen", true},
		{"MainPage", "Open", "file", "Aufmachen", true},
		{"MainPage", "Open", "", "", false},
		{"MainPage", "Settings", "unknown comment", "Einstellungen", true},
		{"MainPage", "Close", "", "Schließen", true},
		{"MainPage", "Quit", "", "", false},
		{"MainPage", "Old", "", "", false},
		{"MainPage", "Gone", "", "", false},
		{"OtherPage", "Settings", "", "", false},
		{"MainPage", "%n system update(s) available", "", "%n Systemaktualisierung verfügbar", true},
		{"MainPage", "%n box(es)", "", "", false},
	}

	for _, s := range scenarios {
		translation, found := c.Lookup(s.context, s.source, s.comment)
		assert.Equal(t, s.found, found, "%s/%s/%s", s.context, s.source, s.comment)
		assert.Equal(t, s.expected, translation, "%s/%s/%s", s.context, s.source, s.comment)
	}

	assert.Equal(t, 6, c.Len())
	assert.Equal(t, "de_DE", c.Language())
	assert.Equal(t, []string{"MainPage", "WeatherView"}, c.Contexts())
}

func TestTranslateFallsBackToSource(t *testing.T) {
	c := New(germanDocument())

	assert.Equal(t, "Einstellungen", c.Translate("MainPage", "Settings", ""))
	assert.Equal(t, "Quit", c.Translate("MainPage", "Quit", ""))
	assert.Equal(t, "N", c.Translate("WeatherView", "N", ""))
}

func TestLookupFirstLengthVariant(t *testing.T) {
	doc := ts.NewDocument("de_DE")
	doc.AddContext("SettingsPage").Messages = []*ts.Message{
		{Source: "Notifications", Translation: ts.Translation{Text: "Benachrichtigungen\u009cBenachr."}},
		{
			Source:      "%n device(s)",
			Numerus:     true,
			Translation: ts.Translation{NumerusForms: []string{"%n Gerät\u009c%n Ger.", "%n Geräte"}},
		},
	}
	c := New(doc)

	text, found := c.Lookup("SettingsPage", "Notifications", "")
	assert.True(t, found)
	assert.Equal(t, "Benachrichtigungen", text)

	text, found = c.LookupN("SettingsPage", "%n device(s)", "", 1)
	assert.True(t, found)
	assert.Equal(t, "%n Gerät", text)
}

func TestTranslateN(t *testing.T) {
	c := New(germanDocument())
	source := "%n system update(s) available"

	assert.Equal(t, "%n Systemaktualisierungen verfügbar", c.TranslateN("MainPage", source, "", 0))
	assert.Equal(t, "%n Systemaktualisierung verfügbar", c.TranslateN("MainPage", source, "", 1))
	assert.Equal(t, "%n Systemaktualisierungen verfügbar", c.TranslateN("MainPage", source, "", 2))

	assert.Equal(t, "%n Ding", c.TranslateN("MainPage", "%n thing(s)", "", 1))
	assert.Equal(t, "%n thing(s)", c.TranslateN("MainPage", "%n thing(s)", "", 3))
	assert.Equal(t, "%n box(es)", c.TranslateN("MainPage", "%n box(es)", "", 3))

	// plain messages ignore the count
	assert.Equal(t, "Einstellungen", c.TranslateN("MainPage", "Settings", "", 7))
}

func TestTranslateNWithRule(t *testing.T) {
	c := New(germanDocument(), WithRule(plural.MustParse("nplurals=2; plural=n > 1;")))
	source := "%n system update(s) available"

	assert.Equal(t, "%n Systemaktualisierung verfügbar", c.TranslateN("MainPage", source, "", 0))
	assert.Equal(t, "%n Systemaktualisierungen verfügbar", c.TranslateN("MainPage", source, "", 2))
}

func TestFixture(t *testing.T) {
	c, err := Load(fixture)
	require.NoError(t, err)

	assert.Equal(t, "N", c.Translate("WeatherView", "N", ""))
	assert.Equal(t, "About %1:core", c.Translate("AboutNymeaPage", "About %1:core", ""))

	source := "%n system update(s) available"
	assert.Equal(t, "%n system updates available", c.TranslateN("MainPage", source, "", 0))
	assert.Equal(t, "%n system update available", c.TranslateN("MainPage", source, "", 1))
	assert.Equal(t, "%n system updates available", c.TranslateN("MainPage", source, "", 2))
	assert.Equal(t, "%n system updates available", c.TranslateN("MainPage", source, "", 5))

	// obsolete messages are not loaded
	obsolete := "There are %n boxes connected to your cloud"
	assert.Equal(t, obsolete, c.TranslateN("CloudLoginPage", obsolete, "", 1))

	assert.Equal(t, 3, c.Len())
	assert.Len(t, c.Contexts(), 125)
}

func TestLoadMissingFile(t *testing.T) {
	_, err := Load("testdata/does-not-exist.ts")
	assert.Error(t, err)
}

func TestFormat(t *testing.T) {
	type scenario struct {
		input    string
		n        int
		args     []string
		expected string
	}

	scenarios := []scenario{
		{"%n system update available", 1, nil, "1 system update available"},
		{"%Ln updates", 1200, nil, "1200 updates"},
		{"There are %n %1:core systems", 3, []string{"nymea"}, "There are 3 nymea:core systems"},
		{"only if %1 %2 %3", 0, []string{"a", "b", "c"}, "only if a b c"},
		{"%2 before %1", 0, []string{"first", "second"}, "second before first"},
		{"%1 and %1 again", 0, []string{"x"}, "x and x again"},
		{"%L1 localised", 0, []string{"v"}, "v localised"},
		{"100% sure", 0, []string{"x"}, "100% sure"},
		{"%10 then %9", 0, []string{"nine", "ten"}, "ten then nine"},
		{"%0 is not a placeholder", 0, []string{"x"}, "%0 is not a placeholder"},
		{"no placeholders", 4, []string{"x"}, "no placeholders"},
	}

	for _, s := range scenarios {
		assert.Equal(t, s.expected, Format(s.input, s.n, s.args...), s.input)
	}
}
