package comparison

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
)

func TestCoerceScore(t *testing.T) {
	tests := []struct {
		in   string
		want float64
	}{
		{`85`, 85},
		{`72.5`, 72.5},
		{`-3`, -3},
		{`"60"`, 60},
		{`" 61.5 "`, 61.5},
		{`""`, 0},
		{`"abc"`, 0},
		{`"NaN"`, 0},
		{`"Infinity"`, 0},
		{`null`, 0},
		{`true`, 0},
		{`{"v":1}`, 0},
		{`[90]`, 0},
		{``, 0},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, CoerceScore(raw(tt.in)), tt.in)
	}
}

func TestQualify(t *testing.T) {
	assert.Equal(t, VerdictQualified, Qualify(70))
	assert.Equal(t, VerdictQualified, Qualify(99.9))
	assert.Equal(t, VerdictNotQualified, Qualify(69.99))
	assert.Equal(t, VerdictNotQualified, Qualify(0))
}

func names(results []ProposalResult) []string {
	out := make([]string, len(results))
	for i, r := range results {
		out[i] = r.Name
	}
	return out
}

func TestOrderIsStableDescending(t *testing.T) {
	in := []ProposalResult{
		{Name: "low", TotalScore: raw("10")},
		{Name: "tie-1", TotalScore: raw("50")},
		{Name: "empty", TotalScore: raw(`""`)},
		{Name: "tie-2", TotalScore: raw(`"50"`)},
		{Name: "top", TotalScore: raw("90")},
		{Name: "zero", TotalScore: raw("0")},
		{Name: "tie-3", TotalScore: raw("50.0")},
	}
	got := Order(in)
	want := []string{"top", "tie-1", "tie-2", "tie-3", "low", "empty", "zero"}
	if diff := cmp.Diff(want, names(got)); diff != "" {
		t.Errorf("order mismatch (-want +got):\n%s", diff)
	}

	// input is left untouched
	assert.Equal(t, "low", in[0].Name)
}

func TestOrderIsIdempotent(t *testing.T) {
	in := []ProposalResult{
		{Name: "a", TotalScore: raw("1")},
		{Name: "b", TotalScore: raw("3")},
		{Name: "c", TotalScore: raw("1")},
		{Name: "d", TotalScore: raw(`"x"`)},
		{Name: "e", TotalScore: raw("3")},
	}
	once := Order(in)
	twice := Order(once)
	if diff := cmp.Diff(once, twice); diff != "" {
		t.Errorf("second ordering changed result (-once +twice):\n%s", diff)
	}
}

func TestRankVerdicts(t *testing.T) {
	in := []ProposalResult{
		{Name: "fail", TotalScore: raw("69.9")},
		{Name: "pass", TotalScore: raw("70")},
		{Name: RationaleName, TotalScore: raw(`""`), IsRationale: true},
	}
	ranked := Rank(in)

	assert.Equal(t, "pass", ranked[0].Name)
	assert.Equal(t, 1, ranked[0].Position)
	assert.Equal(t, VerdictQualified, ranked[0].Verdict)
	assert.True(t, ranked[0].ShowScore)

	assert.Equal(t, "fail", ranked[1].Name)
	assert.Equal(t, VerdictNotQualified, ranked[1].Verdict)

	assert.True(t, ranked[2].IsRationale)
	assert.Equal(t, Verdict(""), ranked[2].Verdict)
	assert.False(t, ranked[2].ShowScore)
	assert.Equal(t, 3, ranked[2].Position)
}

// The rationale entry ranks as a zero score, so it keeps its place among
// other zero-scoring entries instead of being pinned last.
func TestRankRationaleSortsAsZero(t *testing.T) {
	in := []ProposalResult{
		{Name: "zero-before", TotalScore: raw("0")},
		{Name: "scored", TotalScore: raw("40")},
		{Name: RationaleName, TotalScore: raw(`""`), IsRationale: true},
		{Name: "zero-after", TotalScore: raw("0")},
		{Name: "negative", TotalScore: raw("-1")},
	}
	got := make([]string, 0, len(in))
	for _, r := range Rank(in) {
		got = append(got, r.Name)
	}
	want := []string{"scored", "zero-before", RationaleName, "zero-after", "negative"}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("order mismatch (-want +got):\n%s", diff)
	}
}

func TestRankDoesNotMutateRowsOrComments(t *testing.T) {
	rows := []Row{{Criterion: "Price", Score: raw("90")}}
	in := []ProposalResult{{Name: "a", TotalScore: raw(`"80"`), ScoreRows: rows, Comment: "c"}}
	ranked := Rank(in)
	assert.Equal(t, rows, ranked[0].ScoreRows)
	assert.Equal(t, "c", ranked[0].Comment)
	assert.Equal(t, raw(`"80"`), ranked[0].TotalScore)
	assert.Equal(t, 80.0, ranked[0].Points)
}

func TestRankEmpty(t *testing.T) {
	assert.Empty(t, Rank(nil))
	assert.NotNil(t, Rank(nil))
}
