package log

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/nymea/tscat/pkg/config"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestConfig(t *testing.T, debug bool) *config.AppConfig {
	userConfig := config.GetDefaultConfig()
	return &config.AppConfig{
		Name:       "tscat",
		Version:    "1.2.3",
		Debug:      debug,
		UserConfig: &userConfig,
		ConfigDir:  t.TempDir(),
	}
}

func TestNewLoggerDebug(t *testing.T) {
	t.Setenv("LOG_LEVEL", "info")
	appConfig := newTestConfig(t, true)

	entry := NewLogger(appConfig)
	ForCatalog(entry, "/translations/nymea-app-de.ts", "de_DE").Info("parsed")
	entry.Debug("not written at info level")
	require.NoError(t, entry.Logger.Out.(*os.File).Close())

	content, err := os.ReadFile(filepath.Join(appConfig.ConfigDir, DevelopmentLogFile))
	require.NoError(t, err)

	lines := bytes.Split(bytes.TrimSpace(content), []byte("\n"))
	require.Len(t, lines, 1)

	var fields map[string]interface{}
	require.NoError(t, json.Unmarshal(lines[0], &fields))
	assert.Equal(t, "parsed", fields["msg"])
	assert.Equal(t, "tscat", fields["tool"])
	assert.Equal(t, "1.2.3", fields["version"])
	assert.Equal(t, "nymea-app-de.ts", fields["catalog"])
	assert.Equal(t, "de_DE", fields["language"])
}

func TestProductionLoggerOnlyWarns(t *testing.T) {
	var buf bytes.Buffer
	entry := newProductionLogger(&buf).WithField("tool", "tscat")

	entry.Info("loaded 12 translations")
	entry.Warn("no catalog matches locale xx")

	assert.Equal(t, "level=warning msg=no catalog matches locale xx tool=tscat\n", buf.String())
	assert.Equal(t, logrus.WarnLevel, entry.Logger.GetLevel())
}
