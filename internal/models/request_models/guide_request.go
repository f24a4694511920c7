package request_models

import (
	"strconv"
	"strings"
)

// GenerateGuideRequest is the body of POST /api/generate-guide. The frontend
// sends budget and days as either JSON numbers or numeric strings depending on
// the form state, so both fields use LooseInt.
type GenerateGuideRequest struct {
	City   string   `json:"city"`
	Budget LooseInt `json:"budget"`
	Days   LooseInt `json:"days"`
	Style  string   `json:"style"`
}

// LooseInt accepts a JSON number or a quoted numeric string. Parsing to an
// integer is deferred to the validator so each rule can report its own message.
type LooseInt struct {
	raw string
}

func (l *LooseInt) UnmarshalJSON(data []byte) error {
	s := strings.TrimSpace(string(data))
	if s == "null" {
		return nil
	}
	if len(s) >= 2 && s[0] == '"' && s[len(s)-1] == '"' {
		s = s[1 : len(s)-1]
	}
	l.raw = strings.TrimSpace(s)
	return nil
}

func (l LooseInt) IsSet() bool {
	return l.raw != ""
}

func (l LooseInt) Int() (int, error) {
	return strconv.Atoi(l.raw)
}
