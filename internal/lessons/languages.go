package lessons

import (
	"slices"
	"strings"
)

// Language describes a supported practice language.
type Language struct {
	Name    string // key used in lessons and config, e.g. "dutch"
	Display string
	// TTSCode is the language code sent to the speech backend.
	TTSCode string
	// Voice is the preferred neural voice for external synthesizers.
	Voice string
}

var languages = []Language{
	{"dutch", "Nederlands", "nl", "nl-NL-ColetteNeural"},
	{"english", "English", "en", "en-US-JennyNeural"},
	{"chinese", "中文", "zh-CN", "zh-CN-XiaoxiaoNeural"},
	{"japanese", "日本語", "ja", "ja-JP-NanamiNeural"},
	{"german", "Deutsch", "de", "de-DE-KatjaNeural"},
	{"french", "Français", "fr", "fr-FR-DeniseNeural"},
	{"spanish", "Español", "es", "es-ES-ElviraNeural"},
}

// LookupLanguage finds a language by name or speech code,
// case-insensitively.
func LookupLanguage(name string) (Language, bool) {
	name = strings.TrimSpace(name)
	i := slices.IndexFunc(languages, func(l Language) bool {
		return strings.EqualFold(l.Name, name) || strings.EqualFold(l.TTSCode, name)
	})
	if i < 0 {
		return Language{}, false
	}
	return languages[i], true
}

// Languages returns every supported language.
func Languages() []Language {
	return slices.Clone(languages)
}

// TTSCode returns the speech code for a language name, defaulting to
// Dutch for unknown names.
func TTSCode(name string) string {
	if l, ok := LookupLanguage(name); ok {
		return l.TTSCode
	}
	return "nl"
}
