package ponsdict

import (
	"sort"
	"strings"
)

// Language is a PONS language code (e.g., "en", "zh-cn").
type Language string

// languageNames maps every supported PONS language code to its English name.
var languageNames = map[Language]string{
	"ar":    "arabic",
	"bg":    "bulgarian",
	"zh-cn": "chinese",
	"cs":    "czech",
	"da":    "danish",
	"nl":    "dutch",
	"en":    "english",
	"fr":    "french",
	"de":    "german",
	"el":    "greek",
	"hu":    "hungarian",
	"it":    "italian",
	"la":    "latin",
	"no":    "norwegian",
	"pl":    "polish",
	"pt":    "portuguese",
	"ru":    "russian",
	"sl":    "slovenian",
	"es":    "spanish",
	"sv":    "swedish",
	"tr":    "turkish",
	"elv":   "elvish",
}

// Name returns the English name of the language, or an empty string
// if the code is not supported.
func (l Language) Name() string {
	return languageNames[l]
}

// Supported returns true if the code is in the PONS language table.
func (l Language) Supported() bool {
	_, ok := languageNames[l]
	return ok
}

// ParseLanguage resolves a language code or English language name
// (case-insensitive) to a supported Language.
// Returns EINVALID if the input matches neither.
func ParseLanguage(s string) (Language, error) {
	s = strings.ToLower(strings.TrimSpace(s))
	if l := Language(s); l.Supported() {
		return l, nil
	}
	for code, name := range languageNames {
		if name == s {
			return code, nil
		}
	}
	return "", Errorf(EINVALID, "language %q is not supported", s)
}

// Languages returns all supported languages sorted by code.
func Languages() []Language {
	langs := make([]Language, 0, len(languageNames))
	for l := range languageNames {
		langs = append(langs, l)
	}
	sort.Slice(langs, func(i, j int) bool { return langs[i] < langs[j] })
	return langs
}

// LanguagePair is the source and target language of a lookup.
type LanguagePair struct {
	Source Language
	Target Language
}

// Validate returns an error if either language is not supported.
func (p LanguagePair) Validate() error {
	if !p.Source.Supported() {
		return Errorf(EINVALID, "source language %q is not supported", p.Source)
	}
	if !p.Target.Supported() {
		return Errorf(EINVALID, "target language %q is not supported", p.Target)
	}
	return nil
}

// Same returns true if source and target are the same language.
func (p LanguagePair) Same() bool {
	return p.Source == p.Target
}

// String returns the pair in PONS path form, e.g. "en-de".
func (p LanguagePair) String() string {
	return string(p.Source) + "-" + string(p.Target)
}
