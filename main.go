package main

import (
	"bytes"
	"context"
	"fmt"
	"log"
	"os"
	"os/signal"
	"runtime"

	"github.com/go-errors/errors"
	"github.com/integrii/flaggy"
	"github.com/jesseduffield/yaml"
	"github.com/nymea/tscat/pkg/app"
	"github.com/nymea/tscat/pkg/config"
)

var (
	commit      string
	version     = "unversioned"
	date        string
	buildSource = "unknown"

	configFlag    = false
	debuggingFlag = false

	file          string
	contextName   string
	source        string
	comment       string
	locale        string
	count         = -1
	formatFlag    = false
	args          []string
	width         = 60
	field         string
	untranslated  = false
	output        string
	openInDefault = false
)

func main() {
	info := fmt.Sprintf(
		"%s\nDate: %s\nBuildSource: %s\nCommit: %s\nOS: %s\nArch: %s",
		version,
		date,
		buildSource,
		commit,
		runtime.GOOS,
		runtime.GOARCH,
	)

	flaggy.SetName("tscat")
	flaggy.SetDescription("Inspect, check and query Qt Linguist translation catalogs")
	flaggy.DefaultParser.AdditionalHelpPrepend = "https://github.com/nymea/tscat"

	flaggy.Bool(&configFlag, "c", "config", "Print the current default config")
	flaggy.Bool(&debuggingFlag, "d", "debug", "Log to development.log in the config directory")
	flaggy.SetVersion(info)

	lookupCmd := flaggy.NewSubcommand("lookup")
	lookupCmd.Description = "Translate a string the way the application would"
	lookupCmd.AddPositionalValue(&contextName, "context", 1, true, "The context, e.g. MainPage")
	lookupCmd.AddPositionalValue(&source, "source", 2, true, "The source text")
	lookupCmd.String(&file, "f", "file", "TS file to look in. Defaults to the catalogs in catalogDirs")
	lookupCmd.String(&comment, "", "comment", "Disambiguation comment of the message")
	lookupCmd.String(&locale, "l", "locale", "Locale to translate to, e.g. de_DE")
	lookupCmd.Int(&count, "n", "count", "Pick the numerus form for this count")
	lookupCmd.Bool(&formatFlag, "", "format", "Substitute %n and %1, %2, ... in the result")
	lookupCmd.StringSlice(&args, "a", "arg", "Value for %1, %2, ... (repeatable)")
	flaggy.AttachSubcommand(lookupCmd, 1)

	listCmd := flaggy.NewSubcommand("list")
	listCmd.Description = "List the messages of a TS file"
	listCmd.AddPositionalValue(&file, "file", 1, true, "The TS file")
	listCmd.AddPositionalValue(&contextName, "context", 2, false, "Only list this context")
	listCmd.Int(&width, "w", "width", "Truncate texts to this many columns, 0 for no limit")
	flaggy.AttachSubcommand(listCmd, 1)

	browseCmd := flaggy.NewSubcommand("browse")
	browseCmd.Description = "Page through the contexts and messages of a TS file"
	browseCmd.AddPositionalValue(&file, "file", 1, true, "The TS file")
	flaggy.AttachSubcommand(browseCmd, 1)

	statsCmd := flaggy.NewSubcommand("stats")
	statsCmd.Description = "Show the translation progress of a TS file"
	statsCmd.AddPositionalValue(&file, "file", 1, true, "The TS file")
	statsCmd.String(&field, "", "field", "Print only this value, e.g. Totals.Untranslated")
	statsCmd.Bool(&untranslated, "u", "untranslated", "List the messages that still need translating")
	flaggy.AttachSubcommand(statsCmd, 1)

	checkCmd := flaggy.NewSubcommand("check")
	checkCmd.Description = "Check that a TS file is laid out the way lupdate writes it"
	checkCmd.AddPositionalValue(&file, "file", 1, true, "The TS file")
	flaggy.AttachSubcommand(checkCmd, 1)

	formatCmd := flaggy.NewSubcommand("format")
	formatCmd.Description = "Rewrite a TS file the way lupdate writes it"
	formatCmd.AddPositionalValue(&file, "file", 1, true, "The TS file")
	flaggy.AttachSubcommand(formatCmd, 1)

	exportCmd := flaggy.NewSubcommand("export")
	exportCmd.Description = "Convert a TS file to yaml"
	exportCmd.AddPositionalValue(&file, "file", 1, true, "The TS file")
	exportCmd.String(&output, "o", "out", "Write to this file instead of stdout")
	flaggy.AttachSubcommand(exportCmd, 1)

	releaseCmd := flaggy.NewSubcommand("release")
	releaseCmd.Description = "Compile a TS file into a .qm file with commandTemplates.release"
	releaseCmd.AddPositionalValue(&file, "file", 1, true, "The TS file")
	releaseCmd.String(&output, "o", "out", "The .qm file to write. Defaults to the TS file name with a .qm extension")
	flaggy.AttachSubcommand(releaseCmd, 1)

	editConfigCmd := flaggy.NewSubcommand("edit-config")
	editConfigCmd.Description = "Edit the config file"
	editConfigCmd.Bool(&openInDefault, "", "open", "Open with oS.openCommand instead of $EDITOR")
	flaggy.AttachSubcommand(editConfigCmd, 1)

	flaggy.Parse()

	if configFlag {
		var buf bytes.Buffer
		encoder := yaml.NewEncoder(&buf)
		err := encoder.Encode(config.GetDefaultConfig())
		if err != nil {
			log.Fatal(err.Error())
		}
		fmt.Printf("%v\n", buf.String())
		os.Exit(0)
	}

	appConfig, err := config.NewAppConfig("tscat", version, commit, date, buildSource, debuggingFlag)
	if err != nil {
		log.Fatal(err.Error())
	}

	app, err := app.NewApp(appConfig)
	if err == nil {
		ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
		defer stop()

		var result string
		switch {
		case lookupCmd.Used:
			result, err = runLookup(app)
		case listCmd.Used:
			result, err = app.List(file, contextName, width)
			result += "\n"
		case browseCmd.Used:
			err = app.Browse(file)
		case statsCmd.Used:
			result, err = app.Stats(appStatsOptions())
		case checkCmd.Used:
			result, err = app.Check(file)
		case formatCmd.Used:
			err = app.Format(file)
		case exportCmd.Used:
			result, err = app.Export(file, output)
		case releaseCmd.Used:
			result, err = app.Release(ctx, file, output)
		case editConfigCmd.Used:
			if openInDefault {
				err = app.OpenConfig()
			} else {
				err = app.EditConfig()
			}
		default:
			flaggy.ShowHelpAndExit("")
		}
		fmt.Print(result)
		_ = app.Close()
	}

	if err != nil {
		if errMessage, known := app.KnownError(err); known {
			log.Println(errMessage)
			os.Exit(1)
		}

		newErr := errors.Wrap(err, 0)
		stackTrace := newErr.ErrorStack()
		app.Log.Error(stackTrace)

		log.Fatal(fmt.Sprintf("%s\n\n%s", app.Tr.ErrorOccurred, stackTrace))
	}
}

func runLookup(a *app.App) (string, error) {
	n := count
	if n < 0 {
		n = 0
	}

	result, err := a.Lookup(app.LookupOptions{
		File:    file,
		Locale:  locale,
		Context: contextName,
		Source:  source,
		Comment: comment,
		Count:   n,
		Numerus: count >= 0,
		Format:  formatFlag,
		Args:    args,
	})
	if err != nil {
		return "", err
	}
	if !result.Found {
		fmt.Fprintln(os.Stderr, a.Tr.NoTranslation)
	}
	return result.Text + "\n", nil
}

func appStatsOptions() app.StatsOptions {
	return app.StatsOptions{
		File:         file,
		Field:        field,
		Untranslated: untranslated,
	}
}
