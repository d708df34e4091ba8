package presentation

import (
	"github.com/jesseduffield/yaml"
	"github.com/nymea/tscat/pkg/ts"
	"github.com/samber/lo"
)

// ExportDocument is the yaml shape of a TS file written by `tscat export`
type ExportDocument struct {
	Version        string          `yaml:"version,omitempty"`
	Language       string          `yaml:"language,omitempty"`
	SourceLanguage string          `yaml:"sourceLanguage,omitempty"`
	Contexts       []ExportContext `yaml:"contexts"`
}

type ExportContext struct {
	Name     string          `yaml:"name"`
	Comment  string          `yaml:"comment,omitempty"`
	Messages []ExportMessage `yaml:"messages"`
}

type ExportMessage struct {
	ID                string   `yaml:"id,omitempty"`
	Locations         []string `yaml:"locations,omitempty"`
	Source            string   `yaml:"source"`
	Comment           string   `yaml:"comment,omitempty"`
	ExtraComment      string   `yaml:"extraComment,omitempty"`
	TranslatorComment string   `yaml:"translatorComment,omitempty"`
	Type              string   `yaml:"type,omitempty"`
	Translation       string   `yaml:"translation,omitempty"`
	NumerusForms      []string `yaml:"numerusForms,omitempty"`
}

// NewExportDocument converts doc into its export shape
func NewExportDocument(doc *ts.Document) ExportDocument {
	return ExportDocument{
		Version:        doc.Version,
		Language:       doc.Language,
		SourceLanguage: doc.SourceLanguage,
		Contexts: lo.Map(doc.Contexts, func(c *ts.Context, _ int) ExportContext {
			return ExportContext{
				Name:     c.Name,
				Comment:  c.Comment,
				Messages: lo.Map(c.Messages, newExportMessage),
			}
		}),
	}
}

func newExportMessage(m *ts.Message, _ int) ExportMessage {
	var locations []string
	for _, l := range m.Locations {
		locations = append(locations, lo.Ternary(l.Line == "", l.Filename, l.Filename+":"+l.Line))
	}

	return ExportMessage{
		ID:                m.ID,
		Locations:         locations,
		Source:            m.Source,
		Comment:           m.Comment,
		ExtraComment:      m.ExtraComment,
		TranslatorComment: m.TranslatorComment,
		Type:              string(m.Translation.Type),
		Translation:       m.Translation.Text,
		NumerusForms:      m.Translation.NumerusForms,
	}
}

// RenderExport marshals doc as yaml
func RenderExport(doc *ts.Document) ([]byte, error) {
	return yaml.Marshal(NewExportDocument(doc))
}
