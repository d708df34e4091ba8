package catalog

import (
	"github.com/nymea/tscat/pkg/ts"
	"github.com/samber/lo"
)

// Counts tallies the messages of a context, or of a whole document.
// Finished, Unfinished and Untranslated split the active messages:
// Unfinished only counts messages marked unfinished that do carry text.
type Counts struct {
	Total        int
	Active       int
	Finished     int
	Unfinished   int
	Untranslated int
	Obsolete     int
	Vanished     int
	Numerus      int
}

// Completion is the percentage of active messages that are finished
func (c Counts) Completion() float64 {
	if c.Active == 0 {
		return 100
	}
	return float64(c.Finished) * 100 / float64(c.Active)
}

func (c *Counts) add(message *ts.Message) {
	c.Total++
	if message.Numerus {
		c.Numerus++
	}

	switch message.Translation.Type {
	case ts.TypeObsolete:
		c.Obsolete++
		return
	case ts.TypeVanished:
		c.Vanished++
		return
	}

	// every active message lands in exactly one of these
	c.Active++
	switch {
	case !message.Translated():
		c.Untranslated++
	case message.Translation.Type == ts.TypeUnfinished:
		c.Unfinished++
	default:
		c.Finished++
	}
}

func (c *Counts) merge(other Counts) {
	c.Total += other.Total
	c.Active += other.Active
	c.Finished += other.Finished
	c.Unfinished += other.Unfinished
	c.Untranslated += other.Untranslated
	c.Obsolete += other.Obsolete
	c.Vanished += other.Vanished
	c.Numerus += other.Numerus
}

// ContextStats are the counts of one context
type ContextStats struct {
	Name string
	Counts
}

// Stats summarises the translation state of a document
type Stats struct {
	Language string
	Contexts []ContextStats
	Totals   Counts
}

// Summarize counts the messages of doc per context, in document order
func Summarize(doc *ts.Document) Stats {
	stats := Stats{Language: doc.Language}
	for _, context := range doc.Contexts {
		contextStats := ContextStats{Name: context.Name}
		for _, message := range context.Messages {
			contextStats.add(message)
		}
		stats.Contexts = append(stats.Contexts, contextStats)
		stats.Totals.merge(contextStats.Counts)
	}
	return stats
}

// Incomplete returns the contexts that still have untranslated messages
func (s Stats) Incomplete() []ContextStats {
	return lo.Filter(s.Contexts, func(c ContextStats, _ int) bool {
		return c.Untranslated > 0
	})
}

// Missing identifies an active message that has no translation yet
type Missing struct {
	Context string
	Source  string
	Comment string
	Numerus bool
}

// Untranslated lists the active messages of doc without translated text
func Untranslated(doc *ts.Document) []Missing {
	missing := []Missing{}
	doc.Each(func(c *ts.Context, m *ts.Message) {
		if m.IsActive() && !m.Translated() {
			missing = append(missing, Missing{
				Context: c.Name,
				Source:  m.Source,
				Comment: m.Comment,
				Numerus: m.Numerus,
			})
		}
	})
	return missing
}
