// Package linguist reads and writes Qt Linguist .ts translation files.
package linguist

import (
	"encoding/xml"
	"fmt"
	"io"
	"strconv"

	"razertr/internal/domain"
	"razertr/internal/domain/entities"
)

const (
	header         = `<?xml version="1.0" encoding="utf-8"?>` + "\n<!DOCTYPE TS>\n"
	defaultVersion = "2.1"
)

type tsFile struct {
	XMLName        xml.Name    `xml:"TS"`
	Version        string      `xml:"version,attr,omitempty"`
	Language       string      `xml:"language,attr,omitempty"`
	SourceLanguage string      `xml:"sourcelanguage,attr,omitempty"`
	Contexts       []tsContext `xml:"context"`
}

type tsContext struct {
	Name     string      `xml:"name"`
	Messages []tsMessage `xml:"message"`
}

type tsMessage struct {
	Locations   []tsLocation  `xml:"location"`
	Source      string        `xml:"source"`
	Comment     string        `xml:"comment,omitempty"`
	Translation tsTranslation `xml:"translation"`
}

type tsLocation struct {
	Filename string `xml:"filename,attr"`
	Line     string `xml:"line,attr,omitempty"`
}

type tsTranslation struct {
	Type string `xml:"type,attr,omitempty"`
	Text string `xml:",chardata"`
}

// Decode parses a .ts document into a catalog. All contexts share one key
// space; a source string translated differently in two places is an error.
func Decode(r io.Reader) (*entities.Catalog, error) {
	var f tsFile
	if err := xml.NewDecoder(r).Decode(&f); err != nil {
		return nil, fmt.Errorf("%w: decode ts: %v", domain.ErrInvalidCatalog, err)
	}
	if f.Language == "" {
		return nil, fmt.Errorf("%w: ts file has no language attribute", domain.ErrInvalidCatalog)
	}

	c := entities.NewCatalog(f.Language)
	c.Version = f.Version
	if f.SourceLanguage != "" {
		c.SourceLanguage = f.SourceLanguage
	}
	for _, ctx := range f.Contexts {
		if c.Context == "" {
			c.Context = ctx.Name
		}
		for _, m := range ctx.Messages {
			e, err := toEntry(m)
			if err != nil {
				return nil, err
			}
			if err := c.Add(e); err != nil {
				return nil, err
			}
		}
	}
	return c, nil
}

func toEntry(m tsMessage) (entities.Entry, error) {
	e := entities.Entry{
		Source:      m.Source,
		Translation: m.Translation.Text,
		Comment:     m.Comment,
	}
	switch m.Translation.Type {
	case "":
		e.Status = entities.StatusFinished
	case "unfinished":
		e.Status = entities.StatusUnfinished
	case "obsolete":
		e.Status = entities.StatusObsolete
	case "vanished":
		e.Status = entities.StatusVanished
	default:
		return e, fmt.Errorf("%w: translation type %q for %q", domain.ErrInvalidCatalog, m.Translation.Type, m.Source)
	}
	for _, l := range m.Locations {
		loc := entities.Location{File: l.Filename}
		if l.Line != "" {
			n, err := strconv.Atoi(l.Line)
			if err != nil {
				return e, fmt.Errorf("%w: location line %q for %q", domain.ErrInvalidCatalog, l.Line, m.Source)
			}
			loc.Line = n
		}
		e.Locations = append(e.Locations, loc)
	}
	return e, nil
}

// Encode writes c as a .ts document with a single context.
func Encode(w io.Writer, c *entities.Catalog) error {
	f := tsFile{
		Version:        c.Version,
		Language:       c.Locale,
		SourceLanguage: c.SourceLanguage,
	}
	if f.Version == "" {
		f.Version = defaultVersion
	}
	ctx := tsContext{Name: c.Context}
	for _, e := range c.Entries() {
		m := tsMessage{
			Source:      e.Source,
			Comment:     e.Comment,
			Translation: tsTranslation{Type: string(e.Status), Text: e.Translation},
		}
		for _, l := range e.Locations {
			loc := tsLocation{Filename: l.File}
			if l.Line > 0 {
				loc.Line = strconv.Itoa(l.Line)
			}
			m.Locations = append(m.Locations, loc)
		}
		ctx.Messages = append(ctx.Messages, m)
	}
	f.Contexts = []tsContext{ctx}

	if _, err := io.WriteString(w, header); err != nil {
		return err
	}
	enc := xml.NewEncoder(w)
	enc.Indent("", "    ")
	if err := enc.Encode(f); err != nil {
		return fmt.Errorf("encode ts: %w", err)
	}
	_, err := io.WriteString(w, "\n")
	return err
}
