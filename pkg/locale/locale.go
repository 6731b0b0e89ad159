// Package locale provides the display strings for user-facing output.
//
// Each locale is a fixed table selected once at startup from the locale
// tag in the settings; there is no dynamic dispatch and no fallback chain
// beyond base-language and English. Message values are plain data, some
// carrying a single fmt verb.
package locale

import "strings"

// Messages is the fixed set of display strings for one locale.
type Messages struct {
	WatchStarted    string // takes the root path
	WatchStopped    string
	NoteStamped     string // takes the note path
	StampSummary    string // takes the number of rewritten notes
	SettingsWritten string // takes the settings path
	SettingsExists  string // takes the settings path
	LabelCreated    string
	LabelModified   string
}

var english = Messages{
	WatchStarted:    "watching %s for changes",
	WatchStopped:    "watcher stopped",
	NoteStamped:     "stamped %s",
	StampSummary:    "%d note(s) updated",
	SettingsWritten: "settings written to %s",
	SettingsExists:  "settings file already exists at %s",
	LabelCreated:    "created",
	LabelModified:   "modified",
}

var tables = map[string]Messages{
	"en": english,
	"pt-br": {
		WatchStarted:    "observando %s por mudanças",
		WatchStopped:    "observador encerrado",
		NoteStamped:     "carimbado %s",
		StampSummary:    "%d nota(s) atualizada(s)",
		SettingsWritten: "configurações gravadas em %s",
		SettingsExists:  "arquivo de configurações já existe em %s",
		LabelCreated:    "criado",
		LabelModified:   "modificado",
	},
	"es": {
		WatchStarted:    "observando cambios en %s",
		WatchStopped:    "observador detenido",
		NoteStamped:     "sellado %s",
		StampSummary:    "%d nota(s) actualizada(s)",
		SettingsWritten: "configuración guardada en %s",
		SettingsExists:  "el archivo de configuración ya existe en %s",
		LabelCreated:    "creado",
		LabelModified:   "modificado",
	},
	"de": {
		WatchStarted:    "beobachte %s auf Änderungen",
		WatchStopped:    "Beobachter beendet",
		NoteStamped:     "%s gestempelt",
		StampSummary:    "%d Notiz(en) aktualisiert",
		SettingsWritten: "Einstellungen nach %s geschrieben",
		SettingsExists:  "Einstellungsdatei existiert bereits unter %s",
		LabelCreated:    "erstellt",
		LabelModified:   "geändert",
	},
	"fr": {
		WatchStarted:    "surveillance de %s",
		WatchStopped:    "surveillance arrêtée",
		NoteStamped:     "%s horodaté",
		StampSummary:    "%d note(s) mise(s) à jour",
		SettingsWritten: "paramètres écrits dans %s",
		SettingsExists:  "le fichier de paramètres existe déjà dans %s",
		LabelCreated:    "créé",
		LabelModified:   "modifié",
	},
	"ja": {
		WatchStarted:    "%s の変更を監視しています",
		WatchStopped:    "監視を停止しました",
		NoteStamped:     "%s を更新しました",
		StampSummary:    "%d 件のノートを更新しました",
		SettingsWritten: "設定を %s に保存しました",
		SettingsExists:  "設定ファイルは既に %s に存在します",
		LabelCreated:    "作成日時",
		LabelModified:   "更新日時",
	},
	"zh-cn": {
		WatchStarted:    "正在监视 %s 的更改",
		WatchStopped:    "监视已停止",
		NoteStamped:     "已更新 %s",
		StampSummary:    "已更新 %d 个笔记",
		SettingsWritten: "设置已写入 %s",
		SettingsExists:  "设置文件已存在于 %s",
		LabelCreated:    "创建时间",
		LabelModified:   "修改时间",
	},
	"ru": {
		WatchStarted:    "отслеживание изменений в %s",
		WatchStopped:    "наблюдатель остановлен",
		NoteStamped:     "обновлено %s",
		StampSummary:    "обновлено заметок: %d",
		SettingsWritten: "настройки записаны в %s",
		SettingsExists:  "файл настроек уже существует: %s",
		LabelCreated:    "создано",
		LabelModified:   "изменено",
	},
}

// For returns the message table for the given locale tag.
// Tags are matched case-insensitively; "pt_BR" and "pt-BR" both resolve to
// pt-br. Unknown region variants fall back to the base language, unknown
// languages fall back to English.
func For(tag string) Messages {
	tag = strings.ToLower(strings.ReplaceAll(tag, "_", "-"))
	if m, ok := tables[tag]; ok {
		return m
	}
	if base, _, found := strings.Cut(tag, "-"); found {
		if m, ok := tables[base]; ok {
			return m
		}
	}
	return english
}

// Tags lists the supported locale tags.
func Tags() []string {
	tags := make([]string, 0, len(tables))
	for tag := range tables {
		tags = append(tags, tag)
	}
	return tags
}
