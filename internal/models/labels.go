package models

import (
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

var titleCaser = cases.Title(language.English)

// Label turns a hyphenated tag such as "non-academic" into display text.
func Label(tag string) string {
	return strings.Replace(tag, "-", " ", 1)
}

// Title is Label in title case, used for headings ("Book Insights").
func Title(tag string) string {
	return titleCaser.String(strings.ReplaceAll(tag, "-", " "))
}

func (m Mood) Label() string { return Title(string(m)) }
func (m UpdateMood) Label() string { return Title(string(m)) }
func (p Priority) Label() string { return Title(string(p)) }
func (m WritingMood) Label() string { return Title(string(m)) }

// Label title-cases the category, "book-insights" becoming "Book Insights".
func (c WritingCategory) Label() string { return Title(string(c)) }

// Label shows both DSA spellings as the acronym.
func (c Category) Label() string {
	if c == CategoryDSA || c == CategoryDetailDSA {
		return "DSA"
	}
	return Title(string(c))
}
