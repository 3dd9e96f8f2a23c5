package comparison

import (
	"bytes"
	"encoding/json"
)

// Row is one criterion of a proposal's score table. Score is kept exactly as
// received; evaluators send both numbers and strings.
type Row struct {
	Criterion string          `json:"criterion"`
	Score     json.RawMessage `json:"score"`
}

type rowEntry struct {
	Criterion json.RawMessage `json:"criterion"`
	Score     json.RawMessage `json:"score"`
}

// BuildRows converts per-criterion scores into ordered rows. A list of
// {criterion, score} pairs passes through in order; a mapping is converted in
// document order. Anything else yields no rows.
func BuildRows(raw json.RawMessage) []Row {
	trimmed := bytes.TrimSpace(raw)
	if len(trimmed) == 0 {
		return []Row{}
	}
	switch trimmed[0] {
	case '[':
		return rowsFromPairs(trimmed)
	case '{':
		return rowsFromMapping(trimmed)
	}
	return []Row{}
}

func rowsFromPairs(raw []byte) []Row {
	var items []json.RawMessage
	if err := json.Unmarshal(raw, &items); err != nil {
		return []Row{}
	}
	rows := make([]Row, 0, len(items))
	for _, item := range items {
		trimmed := bytes.TrimSpace(item)
		if len(trimmed) == 0 || trimmed[0] != '{' {
			continue
		}
		var e rowEntry
		if err := json.Unmarshal(trimmed, &e); err != nil {
			continue
		}
		rows = append(rows, Row{Criterion: text(e.Criterion), Score: e.Score})
	}
	return rows
}

// rowsFromMapping walks the object token by token so key order survives.
func rowsFromMapping(raw []byte) []Row {
	dec := json.NewDecoder(bytes.NewReader(raw))
	if tok, err := dec.Token(); err != nil || tok != json.Delim('{') {
		return []Row{}
	}
	rows := []Row{}
	seen := make(map[string]int)
	for dec.More() {
		tok, err := dec.Token()
		if err != nil {
			return rows
		}
		key, ok := tok.(string)
		if !ok {
			return rows
		}
		var value json.RawMessage
		if err := dec.Decode(&value); err != nil {
			return rows
		}
		if i, dup := seen[key]; dup {
			rows[i].Score = value
			continue
		}
		seen[key] = len(rows)
		rows = append(rows, Row{Criterion: key, Score: value})
	}
	return rows
}
