package entities

import (
	"encoding/base64"
	"fmt"

	orderedmap "github.com/wk8/go-ordered-map/v2"
	"github.com/zeebo/xxh3"

	"razertr/internal/domain"
)

// SourceLanguage is the language every catalog key is written in.
const SourceLanguage = "en"

// Status tells whether a translator considers an entry done.
type Status string

const (
	StatusFinished   Status = ""
	StatusUnfinished Status = "unfinished"
	StatusObsolete   Status = "obsolete"
	StatusVanished   Status = "vanished"
)

// Location points back at the code that produced a source string.
// Only translator tooling reads it.
type Location struct {
	File string `json:"file"`
	Line int    `json:"line"`
}

type Entry struct {
	Source      string
	Translation string
	Comment     string
	Status      Status
	Locations   []Location
}

// Usable reports whether the entry may be shown to a user.
func (e *Entry) Usable() bool {
	return e.Status == StatusFinished && e.Translation != ""
}

// Catalog is the translation table of one locale. Entries keep the order in
// which they were added.
type Catalog struct {
	Locale         string // as written in the resource, e.g. "nl_NL"
	SourceLanguage string
	Version        string // resource format version, e.g. TS "2.1"
	Context        string

	entries *orderedmap.OrderedMap[string, *Entry]
}

func NewCatalog(locale string) *Catalog {
	return &Catalog{
		Locale:         locale,
		SourceLanguage: SourceLanguage,
		entries:        orderedmap.New[string, *Entry](),
	}
}

// Add inserts e. Adding the same source twice merges the locations when the
// translations agree and fails with domain.ErrDuplicateKey otherwise.
func (c *Catalog) Add(e Entry) error {
	if e.Source == "" {
		return fmt.Errorf("%w: empty source string in %s", domain.ErrInvalidCatalog, c.Locale)
	}
	if prev, ok := c.entries.Get(e.Source); ok {
		if prev.Translation != e.Translation || prev.Status != e.Status {
			return fmt.Errorf("%w: %q in %s (%q, %q)", domain.ErrDuplicateKey, e.Source, c.Locale, prev.Translation, e.Translation)
		}
		prev.Locations = append(prev.Locations, e.Locations...)
		return nil
	}
	c.entries.Set(e.Source, &e)
	return nil
}

// Entry returns the entry stored for source.
func (c *Catalog) Entry(source string) (Entry, bool) {
	e, ok := c.entries.Get(source)
	if !ok {
		return Entry{}, false
	}
	return *e, true
}

// Translation returns the translation of source when it is finished and
// non-empty.
func (c *Catalog) Translation(source string) (string, bool) {
	e, ok := c.entries.Get(source)
	if !ok || !e.Usable() {
		return "", false
	}
	return e.Translation, true
}

func (c *Catalog) Len() int {
	return c.entries.Len()
}

// Entries returns a copy of the entries in insertion order.
func (c *Catalog) Entries() []Entry {
	out := make([]Entry, 0, c.entries.Len())
	for pair := c.entries.Oldest(); pair != nil; pair = pair.Next() {
		e := *pair.Value
		e.Locations = append([]Location(nil), e.Locations...)
		out = append(out, e)
	}
	return out
}

// Keys returns the source strings in insertion order.
func (c *Catalog) Keys() []string {
	out := make([]string, 0, c.entries.Len())
	for pair := c.entries.Oldest(); pair != nil; pair = pair.Next() {
		out = append(out, pair.Key)
	}
	return out
}

// Checksum identifies the content of the catalog. Locations and comments do
// not take part in it.
func (c *Catalog) Checksum() string {
	h := xxh3.New()
	fmt.Fprintf(h, "%s\x00%s\n", c.Locale, c.SourceLanguage)
	for pair := c.entries.Oldest(); pair != nil; pair = pair.Next() {
		e := pair.Value
		fmt.Fprintf(h, "%s\x00%s\x00%s\n", e.Source, e.Translation, e.Status)
	}
	return "xxh3:" + base64.StdEncoding.EncodeToString(h.Sum(nil))
}
