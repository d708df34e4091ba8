package config

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/OpenPeeDeeP/xdg"
	yaml "github.com/jesseduffield/yaml"
	"github.com/nymea/tscat/pkg/plural"
)

// AppConfig contains the base configuration fields required for tscat.
type AppConfig struct {
	Debug       bool   `long:"debug" env:"DEBUG" default:"false"`
	Version     string `long:"version" env:"VERSION" default:"unversioned"`
	Commit      string `long:"commit" env:"COMMIT"`
	BuildDate   string `long:"build-date" env:"BUILD_DATE"`
	Name        string `long:"name" env:"NAME" default:"tscat"`
	BuildSource string `long:"build-source" env:"BUILD_SOURCE" default:""`
	UserConfig  *UserConfig
	ConfigDir   string
}

// UserConfig holds all of the user-configurable options. The fields here are all in PascalCase but in your actual config.yml they'll be in camelCase. You can view the default config with `tscat --config` and edit your config file with `tscat edit-config`.
type UserConfig struct {
	// Language is the language tscat prints its own messages in. "auto" picks it up from your environment
	Language string `yaml:"language,omitempty"`

	// Locale is the locale `tscat lookup` resolves against when no --locale flag is given. Empty means the catalog file's own language
	Locale string `yaml:"locale,omitempty"`

	// CatalogDirs are directories whose *.ts files are loaded when `tscat lookup` is given a locale instead of a single file
	CatalogDirs []string `yaml:"catalogDirs,omitempty"`

	// PluralForms overrides the built-in numerus rule of a language. Keys are language codes ("pt_BR" or just "pt"), values are gettext Plural-Forms such as "nplurals=2; plural=n > 1;"
	PluralForms map[string]string `yaml:"pluralForms,omitempty"`

	// CommandTemplates determines what external commands get called
	CommandTemplates CommandTemplatesConfig `yaml:"commandTemplates,omitempty"`

	// OS determines what defaults are set for opening files
	OS OSConfig `yaml:"oS,omitempty"`

	// Output controls how results are printed
	Output OutputConfig `yaml:"output,omitempty"`

	// Browse configures the interactive `tscat browse` view
	Browse BrowseConfig `yaml:"browse,omitempty"`
}

// CommandTemplatesConfig determines what commands actually get called when we run certain commands
type CommandTemplatesConfig struct {
	// Release compiles a TS file into a binary .qm file. It is a go template with access to .File and .Output. Defaults to Qt's lrelease
	Release string `yaml:"release,omitempty"`
}

// OSConfig contains config on the level of the os
type OSConfig struct {
	// OpenCommand is the command for opening a file
	OpenCommand string `yaml:"openCommand,omitempty"`
}

// OutputConfig contains the settings for printed output
type OutputConfig struct {
	// NoColor disables coloured output. NO_COLOR in the environment has the same effect
	NoColor bool `yaml:"noColor,omitempty"`

	// IncompleteOnly makes `tscat stats` list only the contexts that still have untranslated messages
	IncompleteOnly bool `yaml:"incompleteOnly,omitempty"`

	// StatsField is the field `tscat stats` prints when no --field flag is given, e.g. "Totals.Untranslated". Empty prints the whole table
	StatsField string `yaml:"statsField,omitempty"`
}

// DefaultSidePanelWidth is the share of the screen the contexts panel takes up in `tscat browse`
const DefaultSidePanelWidth = 0.3

// BrowseConfig contains the settings of `tscat browse`
type BrowseConfig struct {
	// SidePanelWidth is the share of the screen the contexts panel takes up, between 0 and 1
	SidePanelWidth float64 `yaml:"sidePanelWidth,omitempty"`

	// ScrollHeight is how many lines the messages panel scrolls per keypress
	ScrollHeight int `yaml:"scrollHeight,omitempty"`

	// TextWidth truncates source and translation texts in the messages panel, 0 for no limit
	TextWidth int `yaml:"textWidth,omitempty"`
}

// GetDefaultConfig returns the application default configuration
// NOTE (to contributors, not users): do not default a boolean to true, because false is the boolean zero value and this will be ignored when parsing the user's config
func GetDefaultConfig() UserConfig {
	return UserConfig{
		Language:    "auto",
		CatalogDirs: []string{},
		PluralForms: map[string]string{},
		CommandTemplates: CommandTemplatesConfig{
			Release: "lrelease {{ .File }} -qm {{ .Output }}",
		},
		OS: GetPlatformDefaultConfig(),
		Output: OutputConfig{
			NoColor:        false,
			IncompleteOnly: false,
			StatsField:     "",
		},
		Browse: BrowseConfig{
			SidePanelWidth: DefaultSidePanelWidth,
			ScrollHeight:   2,
			TextWidth:      60,
		},
	}
}

// NewAppConfig makes a new app config
func NewAppConfig(name, version, commit, date string, buildSource string, debuggingFlag bool) (*AppConfig, error) {
	configDir, err := findOrCreateConfigDir(name)
	if err != nil {
		return nil, err
	}

	userConfig, err := loadUserConfigWithDefaults(configDir)
	if err != nil {
		return nil, err
	}

	appConfig := &AppConfig{
		Name:        name,
		Version:     version,
		Commit:      commit,
		BuildDate:   date,
		Debug:       debuggingFlag || os.Getenv("DEBUG") == "TRUE",
		BuildSource: buildSource,
		UserConfig:  userConfig,
		ConfigDir:   configDir,
	}

	return appConfig, nil
}

func findOrCreateConfigDir(projectName string) (string, error) {
	configDir := os.Getenv("CONFIG_DIR")
	if configDir == "" {
		configDir = xdg.New("nymea", projectName).ConfigHome()
	}

	if err := os.MkdirAll(configDir, 0o755); err != nil {
		return "", err
	}

	return configDir, nil
}

func loadUserConfigWithDefaults(configDir string) (*UserConfig, error) {
	config := GetDefaultConfig()

	return loadUserConfig(configDir, &config)
}

func loadUserConfig(configDir string, base *UserConfig) (*UserConfig, error) {
	fileName := filepath.Join(configDir, "config.yml")

	if _, err := os.Stat(fileName); err != nil {
		if os.IsNotExist(err) {
			file, err := os.Create(fileName)
			if err != nil {
				return nil, err
			}
			file.Close()
		} else {
			return nil, err
		}
	}

	content, err := os.ReadFile(fileName)
	if err != nil {
		return nil, err
	}

	if err := yaml.Unmarshal(content, base); err != nil {
		return nil, err
	}

	if err := base.Validate(); err != nil {
		return nil, err
	}

	return base, nil
}

// WriteToUserConfig allows you to set a value on the user config to be saved
// note that if you set a zero-value, it may be ignored e.g. a false or 0 or empty string
// this is because we are using the omitempty yaml directive so that we don't write a heap
// of zero values to the user's config.yml
func (c *AppConfig) WriteToUserConfig(updateConfig func(*UserConfig) error) error {
	userConfig, err := loadUserConfig(c.ConfigDir, &UserConfig{})
	if err != nil {
		return err
	}

	if err := updateConfig(userConfig); err != nil {
		return err
	}

	out, err := yaml.Marshal(userConfig)
	if err != nil {
		return err
	}

	return os.WriteFile(c.ConfigFilename(), out, 0o666)
}

// ConfigFilename returns the filename of the current config file
func (c *AppConfig) ConfigFilename() string {
	return filepath.Join(c.ConfigDir, "config.yml")
}

// Validate validates the user config
func (config *UserConfig) Validate() error {
	_, err := config.PluralRules()
	return err
}

// PluralRules parses the pluralForms overrides, keyed by lower case language
// code with underscores
func (config *UserConfig) PluralRules() (map[string]plural.Rule, error) {
	rules := make(map[string]plural.Rule, len(config.PluralForms))

	languages := make([]string, 0, len(config.PluralForms))
	for language := range config.PluralForms {
		languages = append(languages, language)
	}
	sort.Strings(languages)

	for _, language := range languages {
		rule, err := plural.Parse(config.PluralForms[language])
		if err != nil {
			return nil, fmt.Errorf("invalid pluralForms entry for '%s': %s", language, err)
		}
		rules[strings.ToLower(strings.Replace(language, "-", "_", -1))] = rule
	}

	return rules, nil
}
