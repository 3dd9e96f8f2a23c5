package comparison

import "encoding/json"

// RationaleName is the display name of the synthetic rationale entry.
const RationaleName = "Evaluation rationale"

var emptyScore = json.RawMessage(`""`)

// AppendRationale adds the single non-scored rationale entry when the
// evaluator supplied a narrative. Its total score is empty, which ranks as 0.
func AppendRationale(results []ProposalResult, rationale string) []ProposalResult {
	if rationale == "" {
		return results
	}
	return append(results, ProposalResult{
		Name:        RationaleName,
		TotalScore:  emptyScore,
		ScoreRows:   []Row{},
		Comment:     rationale,
		IsRationale: true,
	})
}
