package models

import "encoding/json"

// PhraseCategories lists the categories a new phrase may use.
var PhraseCategories = []string{
	"Patrol", "Access", "Incident", "Safety", "Loss Prevention",
	"Parking", "Person", "Training", "Report",
}

// Phrase 双语 (英/西) 操作短语，通过 site/name/address 三个字段关联站点
type Phrase struct {
	Site     string      `json:"site"`
	Name     string      `json:"name"`
	Address  string      `json:"address"`
	Cat      string      `json:"cat"`
	Hotwords HotwordList `json:"hotwords"`
	En       string      `json:"en"`
	Es       string      `json:"es"`

	Extras map[string]json.RawMessage `json:"-"`
}

// PhraseKeys are the JSON keys modelled by Phrase.
var PhraseKeys = map[string]bool{
	"site": true, "name": true, "address": true, "cat": true,
	"hotwords": true, "en": true, "es": true,
}

type phraseFields Phrase

// MarshalJSON writes the known fields followed by Extras.
func (p Phrase) MarshalJSON() ([]byte, error) {
	if p.Hotwords == nil {
		p.Hotwords = HotwordList{}
	}
	return marshalWithExtras(phraseFields(p), p.Extras, PhraseKeys)
}

// UnmarshalJSON reads the known fields and keeps every other key in Extras.
func (p *Phrase) UnmarshalJSON(data []byte) error {
	var fields phraseFields
	if err := json.Unmarshal(data, &fields); err != nil {
		return err
	}
	extras, err := splitExtras(data, PhraseKeys)
	if err != nil {
		return err
	}
	*p = Phrase(fields)
	p.Extras = extras
	return nil
}

// BelongsTo reports whether the phrase's denormalized site fields match s.
func (p Phrase) BelongsTo(s Site) bool {
	return p.Site == s.Site && p.Name == s.Name && p.Address == s.Address
}
