package i18n

import (
	"fmt"
	"io"
	"reflect"
	"testing"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
)

func newDummyLog() *logrus.Entry {
	log := logrus.New()
	log.Out = io.Discard
	return log.WithField("test", "test")
}

func TestDetectLanguage(t *testing.T) {
	type scenario struct {
		langDetector func() (string, error)
		expected     string
	}

	scenarios := []scenario{
		{
			func() (string, error) {
				return "", fmt.Errorf("an error occurred")
			},
			"C",
		},
		{
			func() (string, error) {
				return "DE", nil
			},
			"de",
		},
	}

	for _, s := range scenarios {
		assert.EqualValues(t, s.expected, detectLanguage(s.langDetector))
	}
}

func TestNewTranslationSetFromConfig(t *testing.T) {
	type scenario struct {
		language     string
		expectError  bool
		statusColumn string
		messages     string
	}

	scenarios := []scenario{
		{"en", false, "status", "messages"},
		{"de", false, "Status", "Meldungen"},
		// polish falls back to english where it has no translation
		{"pl", false, "stan", "messages"},
		{"tlh", true, "status", "messages"},
	}

	for _, s := range scenarios {
		tr, err := NewTranslationSetFromConfig(newDummyLog(), s.language)
		if s.expectError {
			assert.EqualError(t, err, "Language not found: "+s.language)
		} else {
			assert.NoError(t, err)
		}
		assert.Equal(t, s.statusColumn, tr.StatusColumn, s.language)
		assert.Equal(t, s.messages, tr.MessagesColumn, s.language)
	}
}

func TestEnglishSetIsComplete(t *testing.T) {
	set := reflect.ValueOf(englishSet())
	for i := 0; i < set.NumField(); i++ {
		assert.NotEmpty(t, set.Field(i).String(), set.Type().Field(i).Name)
	}
}

func TestGetTranslationSets(t *testing.T) {
	sets := GetTranslationSets()
	assert.Len(t, sets, len(getSupportedLanguages()))
	for _, language := range getSupportedLanguages() {
		assert.Contains(t, sets, language)
	}
}
