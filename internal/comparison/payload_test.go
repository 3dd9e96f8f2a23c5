package comparison

import (
	"errors"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParsePayloadShapes(t *testing.T) {
	tests := []struct {
		name string
		body string
		want Kind
	}{
		{"ranked", `{"ranked_proposals":[{"name":"A"}]}`, KindRanked},
		{"ranked empty list", `{"ranked_proposals":[],"total_uploaded":3}`, KindRanked},
		{"flat", `{"results":["x"]}`, KindFlat},
		{"ranked wins over flat", `{"ranked_proposals":[],"results":[{}]}`, KindRanked},
		{"ranked not a list falls through", `{"ranked_proposals":{"a":1},"results":[]}`, KindFlat},
		{"ranked null falls through", `{"ranked_proposals":null}`, KindEmpty},
		{"error", `{"error":"backend exploded"}`, KindError},
		{"error wins over results", `{"error":"boom","results":[{}]}`, KindError},
		{"empty error string ignored", `{"error":"","results":[]}`, KindFlat},
		{"null error ignored", `{"error":null}`, KindEmpty},
		{"nothing recognised", `{"status":"ok"}`, KindEmpty},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p, err := ParsePayload([]byte(tt.body))
			require.NoError(t, err)
			assert.Equal(t, tt.want, p.Kind)
		})
	}
}

func TestParsePayloadMalformed(t *testing.T) {
	for _, body := range []string{``, `   `, `null`, `[1,2]`, `"text"`, `42`, `{"results":`, `<html>502</html>`} {
		t.Run(body, func(t *testing.T) {
			_, err := ParsePayload([]byte(body))
			assert.True(t, errors.Is(err, ErrMalformedPayload), "got %v", err)
		})
	}
}

func TestParsePayloadFields(t *testing.T) {
	p, err := ParsePayload([]byte(`{"ranked_proposals":[{},{}],"rationale":"why","total_uploaded":5}`))
	require.NoError(t, err)
	assert.Len(t, p.Ranked, 2)
	assert.Equal(t, "why", p.Rationale)
	assert.Equal(t, 5, p.TotalUploaded)

	p, err = ParsePayload([]byte(`{"error":{"code":500}}`))
	require.NoError(t, err)
	assert.Equal(t, KindError, p.Kind)
	assert.Equal(t, `{"code":500}`, p.Error)
}

func TestParsePayloadUploadedCount(t *testing.T) {
	tests := []struct {
		body string
		want int
	}{
		{`{"total_uploaded":3}`, 3},
		{`{"total_uploaded":"4"}`, 4},
		{`{"total_uploaded":0}`, 0},
		{`{"total_uploaded":-2}`, 0},
		{`{"total_uploaded":"many"}`, 0},
		{`{"total_uploaded":2.5}`, 3},
		{`{"total_uploaded":1e20}`, math.MaxInt},
		{`{}`, 0},
	}
	for _, tt := range tests {
		p, err := ParsePayload([]byte(tt.body))
		require.NoError(t, err)
		assert.Equal(t, tt.want, p.TotalUploaded, tt.body)
	}
}

func TestKindString(t *testing.T) {
	assert.Equal(t, "ranked", KindRanked.String())
	assert.Equal(t, "flat", KindFlat.String())
	assert.Equal(t, "error", KindError.String())
	assert.Equal(t, "empty", KindEmpty.String())
}
