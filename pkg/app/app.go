package app

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/cloudfoundry/jibber_jabber"
	"github.com/fatih/color"
	"github.com/go-errors/errors"
	"github.com/nymea/tscat/pkg/catalog"
	"github.com/nymea/tscat/pkg/commands"
	"github.com/nymea/tscat/pkg/config"
	"github.com/nymea/tscat/pkg/gui"
	"github.com/nymea/tscat/pkg/i18n"
	"github.com/nymea/tscat/pkg/log"
	"github.com/nymea/tscat/pkg/presentation"
	"github.com/nymea/tscat/pkg/ts"
	"github.com/nymea/tscat/pkg/utils"
	"github.com/pmezard/go-difflib/difflib"
	"github.com/sirupsen/logrus"
	"golang.org/x/xerrors"
)

// App struct
type App struct {
	closers []io.Closer

	Config    *config.AppConfig
	Log       *logrus.Entry
	OSCommand *commands.OSCommand
	Registry  *catalog.Registry
	Tr        *i18n.TranslationSet
}

// NewApp bootstrap a new application
func NewApp(config *config.AppConfig) (*App, error) {
	app := &App{
		closers: []io.Closer{},
		Config:  config,
	}
	var err error
	app.Log = log.NewLogger(config)
	if closer, ok := app.Log.Logger.Out.(io.Closer); ok && app.Log.Logger.Out != os.Stderr {
		app.closers = append(app.closers, closer)
	}

	app.Tr, err = i18n.NewTranslationSetFromConfig(app.Log, config.UserConfig.Language)
	if err != nil {
		return app, err
	}
	app.OSCommand = commands.NewOSCommand(app.Log, config)

	rules, err := config.UserConfig.PluralRules()
	if err != nil {
		return app, err
	}
	app.Registry = catalog.NewRegistry(app.Log, rules)

	if config.UserConfig.Output.NoColor {
		color.NoColor = true
	}

	return app, nil
}

func (app *App) Close() error {
	return utils.CloseMany(app.closers)
}

func (app *App) loadDocument(path string) (*ts.Document, error) {
	doc, err := ts.ParseFile(path)
	if err != nil {
		return nil, errors.WrapPrefix(err, path, 0)
	}
	log.ForCatalog(app.Log, path, doc.Language).Infof("parsed %d contexts, %d messages", len(doc.Contexts), doc.MessageCount())
	return doc, nil
}

// LookupOptions are the arguments of `tscat lookup`
type LookupOptions struct {
	// File is a TS file to look in. Without one, every catalog in the
	// configured catalogDirs is loaded and Locale picks between them
	File    string
	Locale  string
	Context string
	Source  string
	Comment string
	// Count selects a numerus form when Numerus is set
	Count   int
	Numerus bool
	// Format substitutes %n with Count and %1, %2, ... with Args
	Format bool
	Args   []string
}

// LookupResult is what a lookup found. When Found is false Text is the source string
type LookupResult struct {
	Text     string
	Found    bool
	Language string
}

// Lookup translates a single string the way the application would at run time
func (app *App) Lookup(opts LookupOptions) (LookupResult, error) {
	locale := opts.Locale
	if locale == "" {
		locale = app.Config.UserConfig.Locale
	}

	if opts.File != "" {
		doc, err := app.loadDocument(opts.File)
		if err != nil {
			return LookupResult{}, err
		}
		if _, err := app.Registry.LoadDocument(doc); err != nil {
			return LookupResult{}, err
		}
		if locale == "" {
			locale = doc.Language
		}
	} else {
		for _, dir := range app.Config.UserConfig.CatalogDirs {
			if _, err := app.Registry.LoadDir(dir); err != nil {
				return LookupResult{}, err
			}
		}
		if len(app.Registry.Languages()) == 0 {
			return LookupResult{}, errors.New(app.Tr.NoCatalogs)
		}
		if locale == "" {
			locale = detectLocale(jibber_jabber.DetectIETF)
		}
	}

	result := LookupResult{Text: opts.Source}
	if app.Registry.SetLocale(locale) {
		current := app.Registry.Current()
		result.Language = current.Language()

		var text string
		var found bool
		if opts.Numerus {
			text, found = current.LookupN(opts.Context, opts.Source, opts.Comment, opts.Count)
		} else {
			text, found = current.Lookup(opts.Context, opts.Source, opts.Comment)
		}
		if found {
			result.Text = text
			result.Found = true
		}
	} else {
		app.Log.Warn(fmt.Sprintf(app.Tr.UnknownLocale, locale))
	}

	if opts.Format {
		result.Text = catalog.Format(result.Text, opts.Count, opts.Args...)
	}

	return result, nil
}

// detectLocale returns the locale of the environment, e.g. "de-DE"
func detectLocale(localeDetector func() (string, error)) string {
	if locale, err := localeDetector(); err == nil {
		return locale
	}
	return "C"
}

// List renders the messages of a TS file, optionally only those of one context
func (app *App) List(file, contextName string, width int) (string, error) {
	doc, err := app.loadDocument(file)
	if err != nil {
		return "", err
	}

	return presentation.RenderMessages(app.Tr, doc, contextName, width)
}

// StatsOptions are the arguments of `tscat stats`
type StatsOptions struct {
	File string
	// Field prints one value of the stats, e.g. "Totals.Untranslated"
	Field string
	// Untranslated lists the messages that still need translating
	Untranslated bool
}

// Browse opens an interactive view of the contexts and messages of a TS file
func (app *App) Browse(file string) error {
	doc, err := app.loadDocument(file)
	if err != nil {
		return err
	}

	return gui.NewGui(app.Log, app.Tr, app.Config, doc).Run()
}

// Stats renders the translation progress of a TS file
func (app *App) Stats(opts StatsOptions) (string, error) {
	doc, err := app.loadDocument(opts.File)
	if err != nil {
		return "", err
	}

	if opts.Untranslated {
		return app.renderUntranslated(doc)
	}

	stats := catalog.Summarize(doc)

	field := opts.Field
	if field == "" {
		field = app.Config.UserConfig.Output.StatsField
	}
	if field != "" {
		output, err := presentation.RenderStatsField(stats, field)
		if err != nil {
			return "", errors.New(fmt.Sprintf(app.Tr.InvalidStatsField, field))
		}
		return output, nil
	}

	table, err := presentation.RenderStats(app.Tr, stats, app.Config.UserConfig.Output.IncompleteOnly)
	if err != nil {
		return "", err
	}

	return fmt.Sprintf(
		"%s\n%s\n\n%s\n",
		presentation.RenderDocumentInfo(app.Tr, doc),
		table,
		fmt.Sprintf(app.Tr.MissingTranslations, stats.Totals.Untranslated),
	), nil
}

func (app *App) renderUntranslated(doc *ts.Document) (string, error) {
	missing := catalog.Untranslated(doc)
	if len(missing) == 0 {
		return "", nil
	}

	rows := [][]string{{
		utils.ColoredString(app.Tr.ContextColumn, color.Bold),
		utils.ColoredString(app.Tr.SourceColumn, color.Bold),
		utils.ColoredString(app.Tr.CommentColumn, color.Bold),
	}}
	for _, m := range missing {
		source := m.Source
		if m.Numerus {
			source += " (" + app.Tr.StatusNumerus + ")"
		}
		rows = append(rows, []string{m.Context, utils.TruncateWithEllipsis(source, 0), m.Comment})
	}

	table, err := utils.RenderTable(rows)
	if err != nil {
		return "", err
	}
	return table + "\n", nil
}

// Check compares a TS file with what lupdate would write for the same
// content. It returns a unified diff and a NotCanonical error when they differ.
func (app *App) Check(file string) (string, error) {
	content, err := os.ReadFile(file)
	if err != nil {
		return "", commands.WrapError(err)
	}

	doc, err := ts.Unmarshal(content)
	if err != nil {
		return "", errors.WrapPrefix(err, file, 0)
	}

	canonical, err := ts.Marshal(doc)
	if err != nil {
		return "", err
	}

	if bytes.Equal(content, canonical) {
		return fmt.Sprintf(app.Tr.CheckPassed, file) + "\n", nil
	}

	diff, err := difflib.GetUnifiedDiffString(difflib.UnifiedDiff{
		A:        difflib.SplitLines(utils.NormalizeLinefeeds(string(content))),
		B:        difflib.SplitLines(string(canonical)),
		FromFile: file,
		ToFile:   file + " (lupdate)",
		Context:  1,
	})
	if err != nil {
		return "", err
	}

	return diff, commands.NewComplexError(commands.NotCanonical, fmt.Sprintf(app.Tr.CheckFailed, file))
}

// Format rewrites a TS file in canonical lupdate layout
func (app *App) Format(file string) error {
	doc, err := app.loadDocument(file)
	if err != nil {
		return err
	}

	return commands.WrapError(ts.WriteFile(file, doc))
}

// Export converts a TS file to yaml. Without an output path the yaml is
// returned instead of written.
func (app *App) Export(file, output string) (string, error) {
	doc, err := app.loadDocument(file)
	if err != nil {
		return "", err
	}

	content, err := presentation.RenderExport(doc)
	if err != nil {
		return "", err
	}

	if output == "" {
		return string(content), nil
	}

	if err := os.WriteFile(output, content, 0o644); err != nil {
		return "", commands.WrapError(err)
	}
	return fmt.Sprintf(app.Tr.ExportedTo, file, output) + "\n", nil
}

// Release compiles a TS file into a .qm file with the configured release command
func (app *App) Release(ctx context.Context, file, output string) (string, error) {
	if _, err := app.loadDocument(file); err != nil {
		return "", err
	}

	if output == "" {
		output = commands.DefaultReleaseOutput(file)
	}

	commandOutput, err := app.OSCommand.Release(ctx, file, output)
	if err != nil {
		return commandOutput, err
	}

	return commandOutput + fmt.Sprintf(app.Tr.ReleasedTo, file, output) + "\n", nil
}

// EditConfig opens the config file in the user's editor
func (app *App) EditConfig() error {
	cmd, err := app.OSCommand.EditFile(app.Config.ConfigFilename())
	if err != nil {
		return err
	}

	return app.OSCommand.AttachAndRun(cmd)
}

// OpenConfig opens the config file with the configured open command
func (app *App) OpenConfig() error {
	return app.OSCommand.OpenFile(app.Config.ConfigFilename())
}

type errorMapping struct {
	originalError string
	newError      string
}

// KnownError takes an error and tells us whether it's an error that we know about where we can print a nicely formatted version of it rather than panicking with a stack trace
func (app *App) KnownError(err error) (string, bool) {
	errorMessage := err.Error()

	if ts.IsParseError(err) {
		return app.Tr.NotATSFile + ": " + errorMessage, true
	}

	var complexError commands.ComplexError
	if xerrors.As(err, &complexError) {
		return strings.TrimSpace(complexError.Message), true
	}

	mappings := []errorMapping{
		{
			originalError: "No editor defined in $VISUAL or $EDITOR",
			newError:      app.Tr.NoEditorDefined,
		},
		{
			originalError: "executable file not found",
			newError:      app.Tr.ReleaseToolMissing,
		},
		{
			originalError: app.Tr.NoCatalogs,
			newError:      app.Tr.NoCatalogs,
		},
		{
			originalError: "no such file or directory",
			newError:      errorMessage,
		},
	}

	for _, mapping := range mappings {
		if strings.Contains(errorMessage, mapping.originalError) {
			return mapping.newError, true
		}
	}

	return "", false
}
