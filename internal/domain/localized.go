package domain

import (
	"slices"
	"strings"
)

// NotAvailable is returned when neither the requested locale nor English has text.
const NotAvailable = "Not available"

// Text returns the value for loc, else the English value, else NotAvailable.
func (t LocalizedText) Text(loc Locale) string {
	if s := strings.TrimSpace(t[loc]); s != "" {
		return t[loc]
	}
	if s := strings.TrimSpace(t[LocaleEN]); s != "" {
		return t[LocaleEN]
	}
	return NotAvailable
}

// List returns a copy of the list for loc, else of the English list, else an
// empty list.
func (l LocalizedList) List(loc Locale) []string {
	if v := l[loc]; len(v) > 0 {
		return slices.Clone(v)
	}
	if v := l[LocaleEN]; len(v) > 0 {
		return slices.Clone(v)
	}
	return []string{}
}

// Complete reports whether every supported locale has non-blank text.
func (t LocalizedText) Complete() bool {
	for _, loc := range Locales {
		if strings.TrimSpace(t[loc]) == "" {
			return false
		}
	}
	return true
}

func GetName(e Entity, loc Locale) string { return e.Common().Name.Text(loc) }
func GetDescription(e Entity, loc Locale) string { return e.Common().Description.Text(loc) }
func GetAddress(e Entity, loc Locale) string { return e.Common().Address.Text(loc) }
func GetHours(e Entity, loc Locale) string { return e.Common().Hours.Text(loc) }

// GetSpecialties never returns nil.
func GetSpecialties(e Entity, loc Locale) []string {
	return e.Common().Specialties.List(loc)
}
