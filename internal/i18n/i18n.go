// Package i18n holds the translated UI strings.
package i18n

import (
	"fmt"
	"sync"

	"golang.org/x/text/language"
	"golang.org/x/text/message"
	"golang.org/x/text/message/catalog"
)

// Message keys. The English text doubles as the key.
const (
	Done       = "Done"
	SetTime    = "Set time"
	Cancel     = "Cancel"
	Selected   = "Selected: %s"
	Copied     = "Copied %s"
	CopyFailed = "Copy failed: %v"
	ResetTo    = "Reset to %s"
	NoChange   = "No change"
	PickTime   = "pick time"
	Reset      = "reset"
	Copy       = "copy"
	Quit       = "quit"
)

var translations = map[language.Tag]map[string]string{
	language.German: {
		Done:       "Fertig",
		SetTime:    "Zeit einstellen",
		Cancel:     "Abbrechen",
		Selected:   "Ausgewählt: %s",
		Copied:     "%s kopiert",
		CopyFailed: "Kopieren fehlgeschlagen: %v",
		ResetTo:    "Zurückgesetzt auf %s",
		NoChange:   "Keine Änderung",
		PickTime:   "Zeit wählen",
		Reset:      "zurücksetzen",
		Copy:       "kopieren",
		Quit:       "beenden",
	},
	language.French: {
		Done:       "Terminé",
		SetTime:    "Régler l'heure",
		Cancel:     "Annuler",
		Selected:   "Sélection : %s",
		Copied:     "%s copié",
		CopyFailed: "Échec de la copie : %v",
		ResetTo:    "Réinitialisé à %s",
		NoChange:   "Aucun changement",
		PickTime:   "choisir l'heure",
		Reset:      "réinitialiser",
		Copy:       "copier",
		Quit:       "quitter",
	},
	language.Spanish: {
		Done:       "Listo",
		SetTime:    "Ajustar hora",
		Cancel:     "Cancelar",
		Selected:   "Seleccionado: %s",
		Copied:     "%s copiado",
		CopyFailed: "Error al copiar: %v",
		ResetTo:    "Restablecido a %s",
		NoChange:   "Sin cambios",
		PickTime:   "elegir hora",
		Reset:      "restablecer",
		Copy:       "copiar",
		Quit:       "salir",
	},
	language.Italian: {
		Done:       "Fatto",
		SetTime:    "Imposta ora",
		Cancel:     "Annulla",
		Selected:   "Selezionato: %s",
		Copied:     "%s copiato",
		CopyFailed: "Copia non riuscita: %v",
		ResetTo:    "Ripristinato a %s",
		NoChange:   "Nessuna modifica",
		PickTime:   "scegli ora",
		Reset:      "ripristina",
		Copy:       "copia",
		Quit:       "esci",
	},
	language.Portuguese: {
		Done:       "Concluído",
		SetTime:    "Definir hora",
		Cancel:     "Cancelar",
		Selected:   "Selecionado: %s",
		Copied:     "%s copiado",
		CopyFailed: "Falha ao copiar: %v",
		ResetTo:    "Redefinido para %s",
		NoChange:   "Sem alterações",
		PickTime:   "escolher hora",
		Reset:      "redefinir",
		Copy:       "copiar",
		Quit:       "sair",
	},
	language.Dutch: {
		Done:       "Gereed",
		SetTime:    "Tijd instellen",
		Cancel:     "Annuleren",
		Selected:   "Geselecteerd: %s",
		Copied:     "%s gekopieerd",
		CopyFailed: "Kopiëren mislukt: %v",
		ResetTo:    "Teruggezet naar %s",
		NoChange:   "Geen wijziging",
		PickTime:   "tijd kiezen",
		Reset:      "herstellen",
		Copy:       "kopiëren",
		Quit:       "afsluiten",
	},
	language.Russian: {
		Done:       "Готово",
		SetTime:    "Установить время",
		Cancel:     "Отмена",
		Selected:   "Выбрано: %s",
		Copied:     "Скопировано: %s",
		CopyFailed: "Не удалось скопировать: %v",
		ResetTo:    "Сброшено на %s",
		NoChange:   "Без изменений",
		PickTime:   "выбрать время",
		Reset:      "сбросить",
		Copy:       "копировать",
		Quit:       "выход",
	},
	language.Ukrainian: {
		Done:       "Готово",
		SetTime:    "Встановити час",
		Cancel:     "Скасувати",
		Selected:   "Вибрано: %s",
		Copied:     "Скопійовано: %s",
		CopyFailed: "Не вдалося скопіювати: %v",
		ResetTo:    "Скинуто до %s",
		NoChange:   "Без змін",
		PickTime:   "вибрати час",
		Reset:      "скинути",
		Copy:       "копіювати",
		Quit:       "вихід",
	},
	language.Polish: {
		Done:       "Gotowe",
		SetTime:    "Ustaw czas",
		Cancel:     "Anuluj",
		Selected:   "Wybrano: %s",
		Copied:     "Skopiowano: %s",
		CopyFailed: "Nie udało się skopiować: %v",
		ResetTo:    "Przywrócono %s",
		NoChange:   "Bez zmian",
		PickTime:   "wybierz czas",
		Reset:      "resetuj",
		Copy:       "kopiuj",
		Quit:       "wyjdź",
	},
	language.Japanese: {
		Done:       "完了",
		SetTime:    "時間を設定",
		Cancel:     "キャンセル",
		Selected:   "選択: %s",
		Copied:     "%s をコピーしました",
		CopyFailed: "コピーに失敗しました: %v",
		ResetTo:    "%s にリセットしました",
		NoChange:   "変更なし",
		PickTime:   "時間を選ぶ",
		Reset:      "リセット",
		Copy:       "コピー",
		Quit:       "終了",
	},
	language.Chinese: {
		Done:       "完成",
		SetTime:    "设置时间",
		Cancel:     "取消",
		Selected:   "已选择：%s",
		Copied:     "已复制 %s",
		CopyFailed: "复制失败：%v",
		ResetTo:    "已重置为 %s",
		NoChange:   "未更改",
		PickTime:   "选择时间",
		Reset:      "重置",
		Copy:       "复制",
		Quit:       "退出",
	},
}

// Keys lists every message key.
func Keys() []string {
	return []string{Done, SetTime, Cancel, Selected, Copied, CopyFailed, ResetTo, NoChange, PickTime, Reset, Copy, Quit}
}

var (
	buildOnce sync.Once
	cat       *catalog.Builder
)

// supported lists English first so unmatched tags resolve to it.
var supported = func() []language.Tag {
	tags := []language.Tag{language.English}
	for _, tag := range []language.Tag{
		language.German, language.French, language.Spanish, language.Italian,
		language.Portuguese, language.Dutch, language.Russian, language.Ukrainian,
		language.Polish, language.Japanese, language.Chinese,
	} {
		if _, ok := translations[tag]; ok {
			tags = append(tags, tag)
		}
	}
	return tags
}()

var matcher = language.NewMatcher(supported)

// Catalog returns the shared message catalog. English is the fallback.
func Catalog() catalog.Catalog {
	buildOnce.Do(func() {
		b, err := build()
		if err != nil {
			panic(fmt.Sprintf("i18n: %v", err))
		}
		cat = b
	})
	return cat
}

func build() (*catalog.Builder, error) {
	b := catalog.NewBuilder(catalog.Fallback(language.English))
	for _, key := range Keys() {
		if err := b.SetString(language.English, key, key); err != nil {
			return nil, fmt.Errorf("setting %q for en: %w", key, err)
		}
	}
	for tag, msgs := range translations {
		for key, msg := range msgs {
			if err := b.SetString(tag, key, msg); err != nil {
				return nil, fmt.Errorf("setting %q for %s: %w", key, tag, err)
			}
		}
	}
	return b, nil
}

// Match resolves tag to the closest translated language, or English.
func Match(tag language.Tag) language.Tag {
	_, idx, conf := matcher.Match(tag)
	if conf == language.No {
		return language.English
	}
	return supported[idx]
}

// Printer returns a printer for tag backed by the catalog.
func Printer(tag language.Tag) *message.Printer {
	return message.NewPrinter(Match(tag), message.Catalog(Catalog()))
}

// T translates key for tag and formats args into it.
func T(tag language.Tag, key string, args ...any) string {
	return Printer(tag).Sprintf(key, args...)
}

// Languages returns the languages with translations, English first.
func Languages() []language.Tag {
	return append([]language.Tag(nil), supported...)
}
