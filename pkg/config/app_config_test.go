package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/jesseduffield/yaml"
)

func newTestAppConfig(t *testing.T) *AppConfig {
	t.Helper()
	t.Setenv("CONFIG_DIR", t.TempDir())

	conf, err := NewAppConfig("name", "version", "commit", "date", "buildSource", false)
	if err != nil {
		t.Fatalf("Unexpected error: %s", err)
	}
	return conf
}

func TestNewAppConfigDefaults(t *testing.T) {
	conf := newTestAppConfig(t)

	actual := conf.UserConfig.CommandTemplates.Release
	expected := "lrelease {{ .File }} -qm {{ .Output }}"
	if actual != expected {
		t.Fatalf("Expected %s but got %s", expected, actual)
	}

	if conf.UserConfig.Language != "auto" {
		t.Fatalf("Expected auto but got %s", conf.UserConfig.Language)
	}

	if _, err := os.Stat(conf.ConfigFilename()); err != nil {
		t.Fatalf("Expected config file to be created: %s", err)
	}
}

func TestUserConfigOverridesDefaults(t *testing.T) {
	dir := t.TempDir()
	t.Setenv("CONFIG_DIR", dir)

	content := "locale: pl_PL\ncommandTemplates:\n  release: lrelease-qt5 {{ .File }}\npluralForms:\n  pt-BR: \"nplurals=2; plural=n > 1;\"\n"
	if err := os.WriteFile(filepath.Join(dir, "config.yml"), []byte(content), 0o644); err != nil {
		t.Fatalf("Unexpected error: %s", err)
	}

	conf, err := NewAppConfig("name", "version", "commit", "date", "buildSource", false)
	if err != nil {
		t.Fatalf("Unexpected error: %s", err)
	}

	if conf.UserConfig.Locale != "pl_PL" {
		t.Fatalf("Expected pl_PL but got %s", conf.UserConfig.Locale)
	}
	if conf.UserConfig.CommandTemplates.Release != "lrelease-qt5 {{ .File }}" {
		t.Fatalf("Unexpected release command %s", conf.UserConfig.CommandTemplates.Release)
	}
	// untouched fields keep their defaults
	if conf.UserConfig.Language != "auto" {
		t.Fatalf("Expected auto but got %s", conf.UserConfig.Language)
	}

	rules, err := conf.UserConfig.PluralRules()
	if err != nil {
		t.Fatalf("Unexpected error: %s", err)
	}
	rule, ok := rules["pt_br"]
	if !ok {
		t.Fatalf("Expected a rule for pt_br, got %v", rules)
	}
	if rule.Forms != 2 || rule.Index(1) != 0 || rule.Index(2) != 1 {
		t.Fatalf("Unexpected rule %s", rule)
	}
}

func TestInvalidPluralFormsAreRejected(t *testing.T) {
	dir := t.TempDir()
	t.Setenv("CONFIG_DIR", dir)

	content := "pluralForms:\n  de: \"plural=n != 1;\"\n"
	if err := os.WriteFile(filepath.Join(dir, "config.yml"), []byte(content), 0o644); err != nil {
		t.Fatalf("Unexpected error: %s", err)
	}

	if _, err := NewAppConfig("name", "version", "commit", "date", "buildSource", false); err == nil {
		t.Fatalf("Expected an error for an invalid pluralForms entry")
	}
}

func TestWritingToConfigFile(t *testing.T) {
	conf := newTestAppConfig(t)

	testFn := func(t *testing.T, ac *AppConfig, newValue string) {
		t.Helper()
		updateFn := func(uc *UserConfig) error {
			uc.Locale = newValue
			return nil
		}

		err := ac.WriteToUserConfig(updateFn)
		if err != nil {
			t.Fatalf("Unexpected error: %s", err)
		}

		file, err := os.OpenFile(ac.ConfigFilename(), os.O_RDONLY, 0o660)
		if err != nil {
			t.Fatalf("Unexpected error: %s", err)
		}

		sampleUC := UserConfig{}
		err = yaml.NewDecoder(file).Decode(&sampleUC)
		if err != nil {
			t.Fatalf("Unexpected error: %s", err)
		}

		err = file.Close()
		if err != nil {
			t.Fatalf("Unexpected error: %s", err)
		}

		if sampleUC.Locale != newValue {
			t.Fatalf("Got %v, Expected %v\n", sampleUC.Locale, newValue)
		}
	}

	// insert value into an empty file
	testFn(t, conf, "de_DE")

	// modifying an existing file that already has 'locale'
	testFn(t, conf, "pl_PL")
}
