package comparison

import (
	"bytes"
	"encoding/json"
	"fmt"
	"math"
)

// Kind identifies which response shape a payload was resolved to.
type Kind int

const (
	KindEmpty Kind = iota
	KindRanked
	KindFlat
	KindError
)

func (k Kind) String() string {
	switch k {
	case KindRanked:
		return "ranked"
	case KindFlat:
		return "flat"
	case KindError:
		return "error"
	default:
		return "empty"
	}
}

// Payload is an evaluator response resolved to exactly one shape.
// Only the fields belonging to Kind are populated.
type Payload struct {
	Kind          Kind
	Ranked        []json.RawMessage
	Rationale     string
	Flat          []json.RawMessage
	Error         string
	TotalUploaded int
}

type envelope struct {
	Error           json.RawMessage `json:"error"`
	RankedProposals json.RawMessage `json:"ranked_proposals"`
	Rationale       json.RawMessage `json:"rationale"`
	Results         json.RawMessage `json:"results"`
	TotalUploaded   json.RawMessage `json:"total_uploaded"`
}

// ParsePayload resolves a raw evaluator response body. Shapes are tried in
// order: error, ranked proposals, flat results, empty.
func ParsePayload(raw []byte) (Payload, error) {
	trimmed := bytes.TrimSpace(raw)
	if len(trimmed) == 0 || trimmed[0] != '{' {
		return Payload{}, ErrMalformedPayload
	}
	var env envelope
	if err := json.Unmarshal(trimmed, &env); err != nil {
		return Payload{}, fmt.Errorf("%w: %v", ErrMalformedPayload, err)
	}

	if msg, ok := errorMessage(env.Error); ok {
		return Payload{Kind: KindError, Error: msg}, nil
	}

	p := Payload{TotalUploaded: uploadedCount(env.TotalUploaded)}
	if items, ok := asArray(env.RankedProposals); ok {
		p.Kind = KindRanked
		p.Ranked = items
		p.Rationale = asString(env.Rationale)
		return p, nil
	}
	if items, ok := asArray(env.Results); ok {
		p.Kind = KindFlat
		p.Flat = items
		return p, nil
	}
	p.Kind = KindEmpty
	return p, nil
}

// errorMessage reports whether the error field is set to something truthy.
// Non-string values are surfaced as their JSON text.
func errorMessage(raw json.RawMessage) (string, bool) {
	trimmed := bytes.TrimSpace(raw)
	switch {
	case len(trimmed) == 0:
		return "", false
	case trimmed[0] == '"':
		s := asString(trimmed)
		return s, s != ""
	}
	switch string(trimmed) {
	case "null", "false", "0":
		return "", false
	}
	return string(trimmed), true
}

// uploadedCount rounds fractional counts up so that a count above the number
// of results is still a discrepancy after conversion. Huge values saturate.
func uploadedCount(raw json.RawMessage) int {
	n := CoerceScore(raw)
	switch {
	case n <= 0:
		return 0
	case n >= math.MaxInt:
		return math.MaxInt
	}
	return int(math.Ceil(n))
}

func asArray(raw json.RawMessage) ([]json.RawMessage, bool) {
	trimmed := bytes.TrimSpace(raw)
	if len(trimmed) == 0 || trimmed[0] != '[' {
		return nil, false
	}
	var items []json.RawMessage
	if err := json.Unmarshal(trimmed, &items); err != nil {
		return nil, false
	}
	if items == nil {
		items = []json.RawMessage{}
	}
	return items, true
}

func asString(raw json.RawMessage) string {
	var s string
	if err := json.Unmarshal(raw, &s); err != nil {
		return ""
	}
	return s
}

// text renders a name-like field: strings as-is, numbers as their literal.
func text(raw json.RawMessage) string {
	trimmed := bytes.TrimSpace(raw)
	if len(trimmed) == 0 {
		return ""
	}
	switch c := trimmed[0]; {
	case c == '"':
		return asString(trimmed)
	case c == '-' || (c >= '0' && c <= '9'):
		return string(trimmed)
	}
	return ""
}
