// Package catalog is the runtime side of a TS file: a read-only lookup table
// answering "what is the translation of this source string in this context".
// Anything not translated falls back to the source string.
package catalog

import (
	"sort"

	"github.com/nymea/tscat/pkg/plural"
	"github.com/nymea/tscat/pkg/ts"
	"github.com/samber/lo"
)

type key struct {
	context string
	source  string
	comment string
}

type entry struct {
	numerus bool
	text    string
	forms   []string
}

// Catalog holds the usable translations of one TS document. It is never
// modified after New returns and is safe for concurrent use.
type Catalog struct {
	language string
	rule     plural.Rule
	entries  map[key]entry
	contexts []string
}

// Option configures a Catalog
type Option func(*Catalog)

// WithRule overrides the plural rule derived from the document language
func WithRule(rule plural.Rule) Option {
	return func(c *Catalog) {
		c.rule = rule
	}
}

// New builds a catalog from doc. Obsolete and vanished messages are left out,
// as are messages without any translated text. Unfinished translations that
// do carry text are used. Of several length variants only the first is kept. When a (context, source, comment) triple occurs
// more than once the first one wins.
func New(doc *ts.Document, options ...Option) *Catalog {
	c := &Catalog{
		language: doc.Language,
		rule:     plural.ForLanguage(doc.Language),
		entries:  map[key]entry{},
	}
	for _, option := range options {
		option(c)
	}

	for _, context := range doc.Contexts {
		for _, message := range context.Messages {
			if !message.IsActive() {
				continue
			}
			e, ok := newEntry(message)
			if !ok {
				continue
			}
			k := key{context: context.Name, source: message.Source, comment: message.Comment}
			if _, exists := c.entries[k]; exists {
				continue
			}
			c.entries[k] = e
		}
	}

	c.contexts = lo.Uniq(lo.Map(doc.Contexts, func(context *ts.Context, _ int) string {
		return context.Name
	}))
	sort.Strings(c.contexts)

	return c
}

// Load reads the TS file at path into a catalog
func Load(path string, options ...Option) (*Catalog, error) {
	doc, err := ts.ParseFile(path)
	if err != nil {
		return nil, err
	}
	return New(doc, options...), nil
}

func newEntry(message *ts.Message) (entry, bool) {
	if message.Numerus {
		filled := lo.Filter(message.Translation.NumerusForms, func(form string, _ int) bool {
			return form != ""
		})
		if len(filled) == 0 {
			return entry{}, false
		}
		forms := lo.Map(message.Translation.NumerusForms, func(form string, _ int) string {
			return ts.FirstVariant(form)
		})
		return entry{numerus: true, forms: forms}, true
	}
	if message.Translation.Text == "" {
		return entry{}, false
	}
	return entry{text: ts.FirstVariant(message.Translation.Text)}, true
}

// Language is the target language of the document the catalog was built from
func (c *Catalog) Language() string {
	return c.language
}

// Rule is the plural rule used to pick numerus forms
func (c *Catalog) Rule() plural.Rule {
	return c.rule
}

// Len returns the number of usable translations
func (c *Catalog) Len() int {
	return len(c.entries)
}

// Contexts returns the context names of the source document, sorted
func (c *Catalog) Contexts() []string {
	return c.contexts
}

func (c *Catalog) find(context, source, comment string) (entry, bool) {
	if e, ok := c.entries[key{context, source, comment}]; ok {
		return e, true
	}
	if comment != "" {
		// a disambiguating comment the catalog does not know about is ignored
		e, ok := c.entries[key{context, source, ""}]
		return e, ok
	}
	return entry{}, false
}

// Lookup returns the translation of source, and whether there was one. For
// numerus messages the first form is returned.
func (c *Catalog) Lookup(context, source, comment string) (string, bool) {
	e, ok := c.find(context, source, comment)
	if !ok {
		return "", false
	}
	if e.numerus {
		if e.forms[0] == "" {
			return "", false
		}
		return e.forms[0], true
	}
	return e.text, true
}

// LookupN returns the numerus form of source that the catalog's plural rule
// selects for count n
func (c *Catalog) LookupN(context, source, comment string, n int) (string, bool) {
	e, ok := c.find(context, source, comment)
	if !ok {
		return "", false
	}
	if !e.numerus {
		return e.text, true
	}
	index := c.rule.Index(n)
	if index >= len(e.forms) || e.forms[index] == "" {
		return "", false
	}
	return e.forms[index], true
}

// Translate returns the translation of source, or source itself
func (c *Catalog) Translate(context, source, comment string) string {
	if translation, ok := c.Lookup(context, source, comment); ok {
		return translation
	}
	return source
}

// TranslateN returns the numerus form for n, or source itself. Placeholders
// such as %n are left in place; see Format.
func (c *Catalog) TranslateN(context, source, comment string, n int) string {
	if translation, ok := c.LookupN(context, source, comment, n); ok {
		return translation
	}
	return source
}
