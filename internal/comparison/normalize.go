package comparison

import (
	"bytes"
	"encoding/json"
	"regexp"
)

const (
	UnnamedProposal = "unnamed proposal"
	UnknownProposal = "unknown proposal"
)

// ProposalResult is the canonical unit of comparison output.
type ProposalResult struct {
	Name        string          `json:"name"`
	TotalScore  json.RawMessage `json:"total_score"`
	ScoreRows   []Row           `json:"score_rows"`
	Comment     string          `json:"comment"`
	IsRationale bool            `json:"is_rationale"`
	Degraded    bool            `json:"degraded,omitempty"`
}

// Score is the total score as used for ordering and qualification.
func (p ProposalResult) Score() float64 {
	return CoerceScore(p.TotalScore)
}

var zeroScore = json.RawMessage("0")

var extensionPattern = regexp.MustCompile(`\.[^/.]+$`)

// StripExtension removes a trailing file extension from a display name.
func StripExtension(name string) string {
	return extensionPattern.ReplaceAllString(name, "")
}

// Normalize maps a resolved payload onto canonical results. The second return
// value is the uploaded-file count the payload declared, or 0 when it did not.
func Normalize(p Payload) ([]ProposalResult, int) {
	switch p.Kind {
	case KindRanked:
		results := make([]ProposalResult, 0, len(p.Ranked)+1)
		for _, item := range p.Ranked {
			results = append(results, normalizeRanked(item))
		}
		return AppendRationale(results, p.Rationale), p.TotalUploaded
	case KindFlat:
		results := make([]ProposalResult, 0, len(p.Flat))
		for _, item := range p.Flat {
			results = append(results, normalizeFlat(item))
		}
		return results, p.TotalUploaded
	case KindEmpty:
		return []ProposalResult{}, p.TotalUploaded
	default:
		return []ProposalResult{}, 0
	}
}

type rankedEntry struct {
	Name           json.RawMessage `json:"name"`
	ProposalID     json.RawMessage `json:"proposal_id"`
	TotalScore     json.RawMessage `json:"total_score"`
	Scores         json.RawMessage `json:"scores"`
	OverallComment json.RawMessage `json:"overall_comment"`
}

func normalizeRanked(item json.RawMessage) ProposalResult {
	var e rankedEntry
	trimmed := bytes.TrimSpace(item)
	if len(trimmed) == 0 || trimmed[0] != '{' || json.Unmarshal(trimmed, &e) != nil {
		return ProposalResult{Name: UnnamedProposal, TotalScore: zeroScore, ScoreRows: []Row{}, Degraded: true}
	}
	name := firstText(e.Name, e.ProposalID)
	if name == "" {
		name = UnnamedProposal
	}
	total := e.TotalScore
	if isFalsy(total) {
		total = zeroScore
	}
	return ProposalResult{
		Name:       StripExtension(name),
		TotalScore: total,
		ScoreRows:  BuildRows(e.Scores),
		Comment:    text(e.OverallComment),
	}
}

type flatEntry struct {
	ProposalName   json.RawMessage `json:"proposal_name"`
	Name           json.RawMessage `json:"name"`
	TotalScore     json.RawMessage `json:"total_score"`
	Scores         json.RawMessage `json:"scores"`
	Details        json.RawMessage `json:"details"`
	OverallComment json.RawMessage `json:"overall_comment"`
	Comment        json.RawMessage `json:"comment"`
}

func normalizeFlat(item json.RawMessage) ProposalResult {
	trimmed := bytes.TrimSpace(item)
	if len(trimmed) > 0 && trimmed[0] == '"' {
		s := asString(trimmed)
		if entry, ok := decodeFlat([]byte(s)); ok {
			return entry.result()
		}
		return ProposalResult{Name: UnknownProposal, TotalScore: zeroScore, ScoreRows: []Row{}, Comment: s, Degraded: true}
	}
	if entry, ok := decodeFlat(trimmed); ok {
		return entry.result()
	}
	return ProposalResult{Name: UnnamedProposal, TotalScore: zeroScore, ScoreRows: []Row{}, Degraded: true}
}

func decodeFlat(raw []byte) (flatEntry, bool) {
	var e flatEntry
	trimmed := bytes.TrimSpace(raw)
	if len(trimmed) == 0 || trimmed[0] != '{' {
		return e, false
	}
	if err := json.Unmarshal(trimmed, &e); err != nil {
		return e, false
	}
	return e, true
}

func (e flatEntry) result() ProposalResult {
	name := firstText(e.ProposalName, e.Name)
	if name == "" {
		name = UnnamedProposal
	}
	total := e.TotalScore
	if len(bytes.TrimSpace(total)) == 0 {
		total = zeroScore
	}
	return ProposalResult{
		Name:       StripExtension(name),
		TotalScore: total,
		ScoreRows:  BuildRows(e.Scores),
		Comment:    firstText(e.Details, e.OverallComment, e.Comment),
	}
}

func firstText(fields ...json.RawMessage) string {
	for _, f := range fields {
		if s := text(f); s != "" {
			return s
		}
	}
	return ""
}

// isFalsy matches values an evaluator uses to mean "no score": absent, null,
// false, zero and the empty string.
func isFalsy(raw json.RawMessage) bool {
	switch string(bytes.TrimSpace(raw)) {
	case "", "null", "false", "0", `""`:
		return true
	}
	return false
}
