package log

import (
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/nymea/tscat/pkg/config"
	"github.com/sirupsen/logrus"
)

// DevelopmentLogFile is written to the config dir in debug mode
const DevelopmentLogFile = "development.log"

// NewLogger returns a new logger. In debug mode everything goes as JSON to
// development.log in the config dir; otherwise warnings, e.g. about a locale
// no catalog matches, are printed to stderr.
func NewLogger(config *config.AppConfig) *logrus.Entry {
	var log *logrus.Logger
	if config.Debug || os.Getenv("DEBUG") == "TRUE" {
		log = newDevelopmentLogger(config)
	} else {
		log = newProductionLogger(os.Stderr)
	}

	fields := logrus.Fields{"tool": config.Name}
	if config.Debug {
		fields["version"] = config.Version
		fields["commit"] = config.Commit
		fields["buildDate"] = config.BuildDate
		fields["configDir"] = config.ConfigDir
	}
	return log.WithFields(fields)
}

// ForCatalog tags log entries with the TS file and the language they concern
func ForCatalog(log *logrus.Entry, path, language string) *logrus.Entry {
	return log.WithFields(logrus.Fields{
		"catalog":  filepath.Base(path),
		"language": language,
	})
}

func getLogLevel() logrus.Level {
	strLevel := os.Getenv("LOG_LEVEL")
	level, err := logrus.ParseLevel(strLevel)
	if err != nil {
		return logrus.DebugLevel
	}
	return level
}

func newDevelopmentLogger(config *config.AppConfig) *logrus.Logger {
	log := logrus.New()
	log.SetLevel(getLogLevel())
	file, err := os.OpenFile(filepath.Join(config.ConfigDir, DevelopmentLogFile), os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o666)
	if err != nil {
		fmt.Println("unable to log to file")
		os.Exit(1)
	}
	log.SetOutput(file)
	log.Formatter = &logrus.JSONFormatter{}
	return log
}

func newProductionLogger(out io.Writer) *logrus.Logger {
	log := logrus.New()
	log.SetOutput(out)
	log.SetLevel(logrus.WarnLevel)
	log.Formatter = &logrus.TextFormatter{
		DisableTimestamp: true,
		DisableQuote:     true,
	}
	return log
}
