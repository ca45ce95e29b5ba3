package models

// Setting is one bilingual key-value row rendered into the public site.
type Setting struct {
	Key     string `db:"key" json:"key"`
	ValueEN string `db:"value_en" json:"en"`
	ValueES string `db:"value_es" json:"es"`
}

// LocalizedValue is the wire shape of a setting value.
type LocalizedValue struct {
	EN string `json:"en"`
	ES string `json:"es"`
}

// SettingsMap is the key → {en,es} representation exchanged with clients.
type SettingsMap map[string]LocalizedValue
