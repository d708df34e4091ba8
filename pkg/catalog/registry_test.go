package catalog

import (
	"io"
	"os"
	"path/filepath"
	"sync"
	"testing"

	"github.com/nymea/tscat/pkg/plural"
	"github.com/nymea/tscat/pkg/ts"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestLog() *logrus.Entry {
	log := logrus.New()
	log.Out = io.Discard
	return log.WithField("test", "test")
}

func polishDocument() *ts.Document {
	doc := ts.NewDocument("pl_PL")
	main := doc.AddContext("MainPage")
	main.Messages = []*ts.Message{
		{Source: "Settings", Translation: ts.Translation{Text: "Ustawienia"}},
		{
			Source:  "%n system update(s) available",
			Numerus: true,
			Translation: ts.Translation{NumerusForms: []string{
				"%n aktualizacja systemu dostępna",
				"%n aktualizacje systemu dostępne",
				"%n aktualizacji systemu dostępnych",
			}},
		},
	}
	return doc
}

func TestRegistrySetLocale(t *testing.T) {
	registry := NewRegistry(newTestLog(), nil)
	_, err := registry.LoadDocument(germanDocument())
	require.NoError(t, err)
	_, err = registry.LoadDocument(polishDocument())
	require.NoError(t, err)

	assert.Equal(t, []string{"de_DE", "pl_PL"}, registry.Languages())

	// nothing selected yet
	assert.Nil(t, registry.Current())
	assert.Equal(t, "Settings", registry.Translate("MainPage", "Settings", ""))

	type scenario struct {
		locale   string
		ok       bool
		expected string
	}

	scenarios := []scenario{
		{"de_DE", true, "Einstellungen"},
		{"pl-PL", true, "Ustawienia"},
		{"de_AT", true, "Einstellungen"},
		{"de", true, "Einstellungen"},
		{"fr_FR", false, "Settings"},
		{"C", false, "Settings"},
		{"pl", true, "Ustawienia"},
	}

	for _, s := range scenarios {
		assert.Equal(t, s.ok, registry.SetLocale(s.locale), s.locale)
		assert.Equal(t, s.locale, registry.Locale())
		assert.Equal(t, s.expected, registry.Translate("MainPage", "Settings", ""), s.locale)
	}

	source := "%n system update(s) available"
	assert.Equal(t, "%n aktualizacja systemu dostępna", registry.TranslateN("MainPage", source, "", 1))
	assert.Equal(t, "%n aktualizacje systemu dostępne", registry.TranslateN("MainPage", source, "", 3))
	assert.Equal(t, "%n aktualizacji systemu dostępnych", registry.TranslateN("MainPage", source, "", 5))

	registry.SetLocale("es")
	assert.Equal(t, source, registry.TranslateN("MainPage", source, "", 5))
}

func TestRegistryRuleOverrides(t *testing.T) {
	overrides := map[string]plural.Rule{
		"de": plural.MustParse("nplurals=2; plural=n > 1;"),
	}
	registry := NewRegistry(newTestLog(), overrides)

	assert.Equal(t, "n > 1", registry.RuleFor("de_DE").Expr)
	assert.Equal(t, "n > 1", registry.RuleFor("de-CH").Expr)
	assert.Equal(t, plural.English().Expr, registry.RuleFor("en_US").Expr)

	c, err := registry.LoadDocument(germanDocument())
	require.NoError(t, err)
	assert.Equal(t, "%n Systemaktualisierung verfügbar", c.TranslateN("MainPage", "%n system update(s) available", "", 0))
}

func TestRegistryRegisterErrors(t *testing.T) {
	registry := NewRegistry(newTestLog(), nil)

	err := registry.Register(New(ts.NewDocument("")))
	assert.EqualError(t, err, "cannot register a catalog without a language")

	err = registry.Register(New(ts.NewDocument("!!")))
	assert.Error(t, err)
}

func TestRegistryReplacesCurrent(t *testing.T) {
	registry := NewRegistry(newTestLog(), nil)
	_, err := registry.LoadDocument(germanDocument())
	require.NoError(t, err)
	require.True(t, registry.SetLocale("de_DE"))

	replacement := ts.NewDocument("de_DE")
	replacement.AddContext("MainPage").Messages = []*ts.Message{
		{Source: "Settings", Translation: ts.Translation{Text: "Optionen"}},
	}
	_, err = registry.LoadDocument(replacement)
	require.NoError(t, err)

	assert.Equal(t, "Optionen", registry.Translate("MainPage", "Settings", ""))
	assert.Same(t, registry.Get("de-DE"), registry.Current())
}

func TestRegistryLoadDir(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, ts.WriteFile(filepath.Join(dir, "app-de.ts"), germanDocument()))
	require.NoError(t, ts.WriteFile(filepath.Join(dir, "app-pl.ts"), polishDocument()))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "README"), []byte("not a catalog"), 0o644))

	registry := NewRegistry(newTestLog(), nil)
	catalogs, err := registry.LoadDir(dir)
	require.NoError(t, err)
	assert.Len(t, catalogs, 2)
	assert.Equal(t, []string{"de_DE", "pl_PL"}, registry.Languages())

	require.NoError(t, os.WriteFile(filepath.Join(dir, "broken.ts"), []byte("<TS>"), 0o644))
	_, err = registry.LoadDir(dir)
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "broken.ts")
}

func TestRegistryConcurrentUse(t *testing.T) {
	registry := NewRegistry(newTestLog(), nil)
	_, err := registry.LoadDocument(germanDocument())
	require.NoError(t, err)
	_, err = registry.LoadDocument(polishDocument())
	require.NoError(t, err)

	var wg sync.WaitGroup
	for i := 0; i < 8; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			for j := 0; j < 100; j++ {
				if (i+j)%2 == 0 {
					registry.SetLocale("de")
				} else {
					registry.SetLocale("pl")
				}
				translation := registry.Translate("MainPage", "Settings", "")
				assert.Contains(t, []string{"Einstellungen", "Ustawienia"}, translation)
			}
		}(i)
	}
	wg.Wait()
}
