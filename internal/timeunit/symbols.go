package timeunit

import (
	"golang.org/x/text/feature/plural"
	"golang.org/x/text/language"
)

// forms maps CLDR plural categories to a unit symbol.
// A missing category falls back to plural.Other.
type forms map[plural.Form]string

func (f forms) pick(form plural.Form) string {
	if s, ok := f[form]; ok {
		return s
	}
	return f[plural.Other]
}

// invariant is used by languages without plural inflection for the symbol.
func invariant(s string) forms {
	return forms{plural.Other: s}
}

// oneOther covers languages with a singular/plural split.
func oneOther(one, other string) forms {
	return forms{plural.One: one, plural.Other: other}
}

// slavic covers the one/few/many/other split of east and west Slavic languages.
func slavic(one, few, many, other string) forms {
	return forms{plural.One: one, plural.Few: few, plural.Many: many, plural.Other: other}
}

// unitForms holds the forms for hours, minutes and seconds, indexed by Unit.
type unitForms [3]forms

type symbolTable struct {
	tag    language.Tag
	long   unitForms
	short  unitForms
	narrow unitForms
	// compact languages write the count and symbol without a space.
	compact bool
}

func (t *symbolTable) forStyle(s Style) unitForms {
	switch s {
	case StyleLong:
		return t.long
	case StyleNarrow:
		return t.narrow
	default:
		return t.short
	}
}

// symbolTables is ordered by preference; the first entry is the fallback.
var symbolTables = []*symbolTable{
	{
		tag:    language.English,
		long:   unitForms{oneOther("hour", "hours"), oneOther("minute", "minutes"), oneOther("second", "seconds")},
		short:  unitForms{oneOther("hr", "hrs"), oneOther("min", "mins"), oneOther("sec", "secs")},
		narrow: unitForms{invariant("h"), invariant("m"), invariant("s")},
	},
	{
		tag:    language.German,
		long:   unitForms{oneOther("Stunde", "Stunden"), oneOther("Minute", "Minuten"), oneOther("Sekunde", "Sekunden")},
		short:  unitForms{invariant("Std."), invariant("Min."), invariant("Sek.")},
		narrow: unitForms{invariant("Std."), invariant("Min."), invariant("Sek.")},
	},
	{
		tag:    language.French,
		long:   unitForms{oneOther("heure", "heures"), oneOther("minute", "minutes"), oneOther("seconde", "secondes")},
		short:  unitForms{invariant("h"), invariant("min"), invariant("s")},
		narrow: unitForms{invariant("h"), invariant("min"), invariant("s")},
	},
	{
		tag:    language.Spanish,
		long:   unitForms{oneOther("hora", "horas"), oneOther("minuto", "minutos"), oneOther("segundo", "segundos")},
		short:  unitForms{invariant("h"), invariant("min"), invariant("s")},
		narrow: unitForms{invariant("h"), invariant("min"), invariant("s")},
	},
	{
		tag:    language.Italian,
		long:   unitForms{oneOther("ora", "ore"), oneOther("minuto", "minuti"), oneOther("secondo", "secondi")},
		short:  unitForms{invariant("h"), invariant("min"), invariant("s")},
		narrow: unitForms{invariant("h"), invariant("min"), invariant("s")},
	},
	{
		tag:    language.Portuguese,
		long:   unitForms{oneOther("hora", "horas"), oneOther("minuto", "minutos"), oneOther("segundo", "segundos")},
		short:  unitForms{invariant("h"), invariant("min"), invariant("s")},
		narrow: unitForms{invariant("h"), invariant("min"), invariant("s")},
	},
	{
		tag:    language.Dutch,
		long:   unitForms{invariant("uur"), oneOther("minuut", "minuten"), oneOther("seconde", "seconden")},
		short:  unitForms{invariant("uur"), invariant("min"), invariant("sec")},
		narrow: unitForms{invariant("u"), invariant("m"), invariant("s")},
	},
	{
		tag: language.Russian,
		long: unitForms{
			slavic("час", "часа", "часов", "часа"),
			slavic("минута", "минуты", "минут", "минуты"),
			slavic("секунда", "секунды", "секунд", "секунды"),
		},
		short:  unitForms{invariant("ч"), invariant("мин"), invariant("с")},
		narrow: unitForms{invariant("ч"), invariant("мин"), invariant("с")},
	},
	{
		tag: language.Ukrainian,
		long: unitForms{
			slavic("година", "години", "годин", "години"),
			slavic("хвилина", "хвилини", "хвилин", "хвилини"),
			slavic("секунда", "секунди", "секунд", "секунди"),
		},
		short:  unitForms{invariant("год"), invariant("хв"), invariant("с")},
		narrow: unitForms{invariant("год"), invariant("хв"), invariant("с")},
	},
	{
		tag: language.Polish,
		long: unitForms{
			slavic("godzina", "godziny", "godzin", "godziny"),
			slavic("minuta", "minuty", "minut", "minuty"),
			slavic("sekunda", "sekundy", "sekund", "sekundy"),
		},
		short:  unitForms{invariant("godz."), invariant("min"), invariant("sek.")},
		narrow: unitForms{invariant("g"), invariant("min"), invariant("s")},
	},
	{
		tag:     language.Japanese,
		long:    unitForms{invariant("時間"), invariant("分"), invariant("秒")},
		short:   unitForms{invariant("時間"), invariant("分"), invariant("秒")},
		narrow:  unitForms{invariant("時間"), invariant("分"), invariant("秒")},
		compact: true,
	},
	{
		tag:     language.Chinese,
		long:    unitForms{invariant("小时"), invariant("分钟"), invariant("秒钟")},
		short:   unitForms{invariant("小时"), invariant("分钟"), invariant("秒")},
		narrow:  unitForms{invariant("小时"), invariant("分钟"), invariant("秒")},
		compact: true,
	},
	{
		tag:     language.TraditionalChinese,
		long:    unitForms{invariant("小時"), invariant("分鐘"), invariant("秒鐘")},
		short:   unitForms{invariant("小時"), invariant("分鐘"), invariant("秒")},
		narrow:  unitForms{invariant("小時"), invariant("分鐘"), invariant("秒")},
		compact: true,
	},
}

var supportedTags = func() []language.Tag {
	tags := make([]language.Tag, len(symbolTables))
	for i, t := range symbolTables {
		tags[i] = t.tag
	}
	return tags
}()

var tableMatcher = language.NewMatcher(supportedTags)

// SupportedLocales returns the locales with their own symbol tables.
func SupportedLocales() []language.Tag {
	out := make([]language.Tag, len(supportedTags))
	copy(out, supportedTags)
	return out
}

// lookup returns the symbol table that best matches tag, falling back to English.
func lookup(tag language.Tag) *symbolTable {
	t, _ := match(tag)
	return t
}

// match is lookup that also reports whether a table matched tag.
func match(tag language.Tag) (*symbolTable, bool) {
	_, idx, conf := tableMatcher.Match(tag)
	if conf == language.No || idx < 0 || idx >= len(symbolTables) {
		return symbolTables[0], false
	}
	return symbolTables[idx], true
}
