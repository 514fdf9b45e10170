package i18n

import (
	"strings"
	"testing"

	"golang.org/x/text/language"
)

func TestT(t *testing.T) {
	tests := []struct {
		tag  language.Tag
		key  string
		args []any
		want string
	}{
		{language.English, Done, nil, "Done"},
		{language.German, Done, nil, "Fertig"},
		{language.MustParse("de-AT"), SetTime, nil, "Zeit einstellen"},
		{language.MustParse("pt-BR"), Cancel, nil, "Cancelar"},
		{language.Russian, Selected, []any{"00:05:00"}, "Выбрано: 00:05:00"},
		{language.Japanese, Copied, []any{"01:02:03"}, "01:02:03 をコピーしました"},
		{language.English, ResetTo, []any{"00:05:00"}, "Reset to 00:05:00"},
	}

	for _, tc := range tests {
		t.Run(tc.tag.String()+"/"+tc.key, func(t *testing.T) {
			if got := T(tc.tag, tc.key, tc.args...); got != tc.want {
				t.Errorf("T(%s, %q) = %q, want %q", tc.tag, tc.key, got, tc.want)
			}
		})
	}
}

func TestT_FallsBackToEnglish(t *testing.T) {
	if got := T(language.Swahili, Done); got != "Done" {
		t.Errorf("T(sw, Done) = %q, want English fallback", got)
	}
}

func TestTranslationsComplete(t *testing.T) {
	for tag, msgs := range translations {
		for _, key := range Keys() {
			msg, ok := msgs[key]
			if !ok || strings.TrimSpace(msg) == "" {
				t.Errorf("%s: missing translation for %q", tag, key)
				continue
			}
			if strings.Count(msg, "%") != strings.Count(key, "%") {
				t.Errorf("%s: %q changes the format verbs of %q", tag, msg, key)
			}
		}
		if len(msgs) != len(Keys()) {
			t.Errorf("%s: %d translations, want %d", tag, len(msgs), len(Keys()))
		}
	}
}

func TestLanguages(t *testing.T) {
	langs := Languages()
	if len(langs) != len(translations)+1 {
		t.Errorf("Languages() = %d tags, want %d", len(langs), len(translations)+1)
	}
	if langs[0] != language.English {
		t.Errorf("Languages()[0] = %s, want en", langs[0])
	}
}

func TestMatch(t *testing.T) {
	tests := []struct {
		in   string
		want language.Tag
	}{
		{"en-GB", language.English},
		{"de-CH", language.German},
		{"zh-Hans-CN", language.Chinese},
		{"sw", language.English},
	}
	for _, tc := range tests {
		if got := Match(language.MustParse(tc.in)); got != tc.want {
			t.Errorf("Match(%s) = %s, want %s", tc.in, got, tc.want)
		}
	}
}
