package comparison

import (
	"bytes"
	"encoding/json"
	"math"
	"sort"
	"strconv"
	"strings"
)

// QualificationThreshold is the total score at or above which a proposal is
// technically qualified.
const QualificationThreshold = 70.0

type Verdict string

const (
	VerdictQualified    Verdict = "qualified"
	VerdictNotQualified Verdict = "not_qualified"
)

// RankedResult is a ProposalResult placed in the final ordering.
type RankedResult struct {
	ProposalResult
	Position  int     `json:"position"`
	Points    float64 `json:"score"`
	ShowScore bool    `json:"show_score"`
	Verdict   Verdict `json:"verdict,omitempty"`
}

// CoerceScore turns a raw total score into the number used for ordering.
// Numbers pass through, numeric strings are parsed, and everything else
// (absent, null, empty, non-numeric, NaN, booleans, objects) is 0.
func CoerceScore(raw json.RawMessage) float64 {
	trimmed := bytes.TrimSpace(raw)
	if len(trimmed) == 0 {
		return 0
	}
	var f float64
	switch c := trimmed[0]; {
	case c == '"':
		s := strings.TrimSpace(asString(trimmed))
		if s == "" {
			return 0
		}
		v, err := strconv.ParseFloat(s, 64)
		if err != nil {
			return 0
		}
		f = v
	case c == '-' || (c >= '0' && c <= '9'):
		if err := json.Unmarshal(trimmed, &f); err != nil {
			return 0
		}
	default:
		return 0
	}
	if math.IsNaN(f) || math.IsInf(f, 0) {
		return 0
	}
	return f
}

// Qualify classifies a total score against QualificationThreshold.
func Qualify(score float64) Verdict {
	if score >= QualificationThreshold {
		return VerdictQualified
	}
	return VerdictNotQualified
}

// Order returns a copy of results sorted by coerced total score, highest
// first. Ties keep their input order.
func Order(results []ProposalResult) []ProposalResult {
	out := make([]ProposalResult, len(results))
	copy(out, results)
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].Score() > out[j].Score()
	})
	return out
}

// Rank orders results and attaches positions and qualification verdicts.
// The rationale entry takes part in ordering but never gets a verdict.
func Rank(results []ProposalResult) []RankedResult {
	ordered := Order(results)
	ranked := make([]RankedResult, len(ordered))
	for i, r := range ordered {
		score := r.Score()
		ranked[i] = RankedResult{
			ProposalResult: r,
			Position:       i + 1,
			Points:         score,
			ShowScore:      score > 0,
		}
		if !r.IsRationale {
			ranked[i].Verdict = Qualify(score)
		}
	}
	return ranked
}
