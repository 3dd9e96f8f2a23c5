package comparison

// Outcome is the result of one pipeline run.
type Outcome struct {
	Shape     Kind
	Results   []RankedResult
	Summary   Summary
	Fallbacks int
}

// Run executes the full comparison pipeline over a raw evaluator response.
// It fails only when no canonical result can be built at all: the payload is
// not a JSON object (ErrMalformedPayload) or it carries an error (*BackendError).
func Run(raw []byte) (*Outcome, error) {
	p, err := ParsePayload(raw)
	if err != nil {
		return nil, err
	}
	if p.Kind == KindError {
		return nil, &BackendError{Message: p.Error}
	}

	results, totalUploaded := Normalize(p)
	out := &Outcome{
		Shape:   p.Kind,
		Results: Rank(results),
		Summary: Report(totalUploaded, len(results)),
	}
	for _, r := range results {
		if r.Degraded {
			out.Fallbacks++
		}
	}
	return out, nil
}
