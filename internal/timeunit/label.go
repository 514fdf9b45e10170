package timeunit

import (
	"strings"

	"golang.org/x/text/feature/plural"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
	"golang.org/x/text/number"
)

// Label returns the localized symbol for value in the unit's default style,
// for example "hour", "hours", "min" or "mins". The result never contains
// the number itself.
func Label(u Unit, value int, tag language.Tag) string {
	return LabelStyle(u, value, tag, StyleDefault)
}

// LabelStyle is Label with an explicit style.
//
// The symbols come from the best matching table, but the plural category
// follows the CLDR cardinal rules of tag itself, so regional rules such as
// pt-PT apply. Tags with no matching table use English symbols and rules.
func LabelStyle(u Unit, value int, tag language.Tag, style Style) string {
	if !u.Valid() {
		return u.String()
	}
	t, ok := match(tag)
	rules := tag
	if !ok {
		rules = t.tag
	}
	set := t.forStyle(style.resolve(u))[u]
	return strings.TrimSpace(set.pick(pluralForm(rules, value)))
}

// pluralForm resolves the CLDR cardinal category for an integer count.
// Integers have no visible fraction digits, so only the i operand is set.
func pluralForm(tag language.Tag, value int) plural.Form {
	n := value
	if n < 0 {
		n = -n
	}
	if n < 0 {
		n = 0
	}
	return plural.Cardinal.MatchPlural(tag, n, 0, 0, 0, 0)
}

// FormatValue formats a wheel value with the locale's digits, zero padded to
// two places.
func FormatValue(value int, tag language.Tag) string {
	p := message.NewPrinter(tag)
	return p.Sprint(number.Decimal(value, number.MinIntegerDigits(2)))
}

// FormatCount formats value followed by its label, e.g. "5 mins" or "5分".
func FormatCount(u Unit, value int, tag language.Tag, style Style) string {
	p := message.NewPrinter(tag)
	num := p.Sprint(number.Decimal(value))
	label := LabelStyle(u, value, tag, style)
	if lookup(tag).compact {
		return num + label
	}
	return num + " " + label
}

// FormatSelection renders a selection such as "1 hour 5 mins 3 secs".
// Zero components are left out unless every component is zero.
func FormatSelection(sel Selection, tag language.Tag, style Style) string {
	sel = sel.Clamp()
	units := All()

	parts := make([]string, 0, len(units))
	for _, u := range units {
		v := sel.Get(u)
		if v == 0 {
			continue
		}
		parts = append(parts, FormatCount(u, v, tag, style))
	}
	if len(parts) == 0 {
		return FormatCount(Seconds, 0, tag, style)
	}

	sep := " "
	if lookup(tag).compact {
		sep = ""
	}
	return strings.Join(parts, sep)
}
