package catalog

import (
	"fmt"
	"path/filepath"
	"sort"
	"strings"

	"github.com/go-errors/errors"
	"github.com/nymea/tscat/pkg/plural"
	"github.com/nymea/tscat/pkg/ts"
	"github.com/samber/lo"
	"github.com/sasha-s/go-deadlock"
	"github.com/sirupsen/logrus"
	"golang.org/x/text/language"
)

// Registry holds the catalogs of an application, one per language, and the
// catalog of the current locale. Switching the locale swaps the catalog
// used by Translate and TranslateN; with no matching catalog the source
// strings are returned.
type Registry struct {
	Log *logrus.Entry

	mu        deadlock.RWMutex
	catalogs  map[string]*Catalog
	overrides map[string]plural.Rule
	current   *Catalog
	locale    string
}

// NewRegistry returns an empty registry. overrides maps language codes (either
// a full code like "pt_BR" or a base language like "pt") to plural rules that
// replace the built-in ones.
func NewRegistry(log *logrus.Entry, overrides map[string]plural.Rule) *Registry {
	if overrides == nil {
		overrides = map[string]plural.Rule{}
	}
	return &Registry{
		Log:       log,
		catalogs:  map[string]*Catalog{},
		overrides: overrides,
	}
}

func normaliseLanguage(code string) string {
	return strings.ToLower(strings.Replace(code, "-", "_", -1))
}

// RuleFor returns the plural rule the registry applies to a language
func (r *Registry) RuleFor(code string) plural.Rule {
	if rule, ok := r.overrides[normaliseLanguage(code)]; ok {
		return rule
	}
	if tag, err := plural.ParseLanguage(code); err == nil {
		base, _ := tag.Base()
		if rule, ok := r.overrides[base.String()]; ok {
			return rule
		}
	}
	return plural.ForLanguage(code)
}

// Register adds a catalog. A catalog registered again for a language already
// present replaces it.
func (r *Registry) Register(c *Catalog) error {
	if c.Language() == "" {
		return errors.New("cannot register a catalog without a language")
	}
	if _, err := plural.ParseLanguage(c.Language()); err != nil {
		return errors.New(fmt.Sprintf("invalid catalog language %q: %s", c.Language(), err))
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	code := normaliseLanguage(c.Language())
	if _, exists := r.catalogs[code]; exists {
		r.Log.Warn("replacing catalog for language " + c.Language())
	}
	r.catalogs[code] = c
	if r.current != nil && normaliseLanguage(r.current.Language()) == code {
		r.current = c
	}
	return nil
}

// LoadDocument builds a catalog for doc with the registry's plural rules and
// registers it
func (r *Registry) LoadDocument(doc *ts.Document) (*Catalog, error) {
	c := New(doc, WithRule(r.RuleFor(doc.Language)))
	if err := r.Register(c); err != nil {
		return nil, err
	}
	r.Log.Infof("loaded %d translations for %s", c.Len(), c.Language())
	return c, nil
}

// LoadFile parses and registers the TS file at path
func (r *Registry) LoadFile(path string) (*Catalog, error) {
	doc, err := ts.ParseFile(path)
	if err != nil {
		return nil, errors.WrapPrefix(err, path, 0)
	}
	return r.LoadDocument(doc)
}

// LoadDir registers every *.ts file in dir, in file name order
func (r *Registry) LoadDir(dir string) ([]*Catalog, error) {
	paths, err := filepath.Glob(filepath.Join(dir, "*.ts"))
	if err != nil {
		return nil, err
	}
	sort.Strings(paths)

	catalogs := make([]*Catalog, 0, len(paths))
	for _, path := range paths {
		c, err := r.LoadFile(path)
		if err != nil {
			return nil, err
		}
		catalogs = append(catalogs, c)
	}
	return catalogs, nil
}

// Languages returns the languages of all registered catalogs, sorted
func (r *Registry) Languages() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()

	languages := lo.Map(lo.Values(r.catalogs), func(c *Catalog, _ int) string {
		return c.Language()
	})
	sort.Strings(languages)
	return languages
}

// Get returns the catalog registered for exactly this language
func (r *Registry) Get(code string) *Catalog {
	r.mu.RLock()
	defer r.mu.RUnlock()

	return r.catalogs[normaliseLanguage(code)]
}

// SetLocale makes the best matching catalog current. It returns false when no
// registered catalog fits, in which case translations fall back to the source
// strings until the next successful switch.
func (r *Registry) SetLocale(code string) bool {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.locale = code
	r.current = r.match(code)
	if r.current == nil {
		r.Log.Infof("no catalog for locale %s, using source strings", code)
		return false
	}
	r.Log.Infof("locale %s uses catalog %s", code, r.current.Language())
	return true
}

func (r *Registry) match(code string) *Catalog {
	if c, ok := r.catalogs[normaliseLanguage(code)]; ok {
		return c
	}
	if len(r.catalogs) == 0 {
		return nil
	}

	want, err := plural.ParseLanguage(code)
	if err != nil || want == language.Und {
		return nil
	}

	keys := lo.Keys(r.catalogs)
	sort.Strings(keys)
	tags := make([]language.Tag, 0, len(keys))
	candidates := make([]*Catalog, 0, len(keys))
	for _, k := range keys {
		tag, err := plural.ParseLanguage(r.catalogs[k].Language())
		if err != nil {
			continue
		}
		tags = append(tags, tag)
		candidates = append(candidates, r.catalogs[k])
	}
	if len(tags) == 0 {
		return nil
	}

	_, index, confidence := language.NewMatcher(tags).Match(want)
	if confidence == language.No {
		return nil
	}
	return candidates[index]
}

// Locale returns the locale last passed to SetLocale
func (r *Registry) Locale() string {
	r.mu.RLock()
	defer r.mu.RUnlock()

	return r.locale
}

// Current returns the catalog of the current locale, or nil
func (r *Registry) Current() *Catalog {
	r.mu.RLock()
	defer r.mu.RUnlock()

	return r.current
}

// Translate looks source up in the current catalog
func (r *Registry) Translate(context, source, comment string) string {
	if c := r.Current(); c != nil {
		return c.Translate(context, source, comment)
	}
	return source
}

// TranslateN picks the numerus form for n from the current catalog
func (r *Registry) TranslateN(context, source, comment string, n int) string {
	if c := r.Current(); c != nil {
		return c.TranslateN(context, source, comment, n)
	}
	return source
}
