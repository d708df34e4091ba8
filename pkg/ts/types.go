// Package ts reads and writes Qt Linguist translation source files (the XML
// "TS" format produced by lupdate). Files written by this package are laid
// out exactly the way lupdate lays them out, so a file can be loaded and
// saved again without producing a diff.
package ts

import "strings"

// TranslationType is the value of the type attribute on a <translation>
// element. A finished translation carries no type at all.
type TranslationType string

const (
	TypeFinished   TranslationType = ""
	TypeUnfinished TranslationType = "unfinished"
	TypeObsolete   TranslationType = "obsolete"
	TypeVanished   TranslationType = "vanished"
)

// DefaultVersion is the TS format version written for new documents
const DefaultVersion = "2.1"

// VariantSeparator joins the length variants of a translation, the
// <lengthvariant> elements of a TS file, into a single string. The first
// variant is the preferred, longest one.
const VariantSeparator = '\u009c'

// Document is one translation catalog: a TS file for a single target language
type Document struct {
	Version        string
	Language       string
	SourceLanguage string
	Contexts       []*Context
}

// Context groups the strings of one UI component, e.g. "MainPage"
type Context struct {
	Name     string
	Comment  string
	Messages []*Message
}

// Location points at the place in the application sources a message was
// extracted from. Line is kept verbatim because lupdate may write relative
// line numbers such as "+3".
type Location struct {
	Filename string
	Line     string
}

// Message is one translatable unit
type Message struct {
	ID                string
	Numerus           bool
	Locations         []Location
	Source            string
	OldSource         string
	Comment           string
	OldComment        string
	ExtraComment      string
	TranslatorComment string
	Translation       Translation
	// UserData is the content of <userdata>, opaque to lupdate
	UserData string
	// Extras holds the <extra-NAME> elements keyed by NAME
	Extras map[string]string
}

// Translation holds the translated text of a message. Numerus messages use
// NumerusForms instead of Text. Text and each form may hold several length
// variants joined by VariantSeparator.
type Translation struct {
	Type         TranslationType
	Text         string
	NumerusForms []string
}

// NewDocument returns an empty document for the given target language
func NewDocument(language string) *Document {
	return &Document{
		Version:  DefaultVersion,
		Language: language,
	}
}

// Context returns the context with the given name, or nil
func (d *Document) Context(name string) *Context {
	for _, c := range d.Contexts {
		if c.Name == name {
			return c
		}
	}
	return nil
}

// AddContext appends a new context, or returns the existing one with that name
func (d *Document) AddContext(name string) *Context {
	if c := d.Context(name); c != nil {
		return c
	}
	c := &Context{Name: name}
	d.Contexts = append(d.Contexts, c)
	return c
}

// Each calls f for every message in document order
func (d *Document) Each(f func(c *Context, m *Message)) {
	for _, c := range d.Contexts {
		for _, m := range c.Messages {
			f(c, m)
		}
	}
}

// MessageCount returns the number of messages in all contexts
func (d *Document) MessageCount() int {
	count := 0
	for _, c := range d.Contexts {
		count += len(c.Messages)
	}
	return count
}

// Find returns the first message in the context matching source and comment
func (c *Context) Find(source, comment string) *Message {
	for _, m := range c.Messages {
		if m.Source == source && m.Comment == comment {
			return m
		}
	}
	return nil
}

// IsActive is false for messages lupdate no longer found in the sources
func (m *Message) IsActive() bool {
	return m.Translation.Type != TypeObsolete && m.Translation.Type != TypeVanished
}

// Translated reports whether the message carries any translated text. For
// numerus messages every form has to be filled in.
func (m *Message) Translated() bool {
	if m.Numerus {
		if len(m.Translation.NumerusForms) == 0 {
			return false
		}
		for _, form := range m.Translation.NumerusForms {
			if form == "" {
				return false
			}
		}
		return true
	}
	return m.Translation.Text != ""
}

// FirstVariant returns the preferred length variant of a translated text
func FirstVariant(text string) string {
	first, _, _ := strings.Cut(text, string(VariantSeparator))
	return first
}
