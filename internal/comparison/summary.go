package comparison

import "fmt"

// Summary aggregates one comparison batch for the renderer.
type Summary struct {
	TotalUploaded  int  `json:"total_uploaded"`
	ResultCount    int  `json:"result_count"`
	HasDiscrepancy bool `json:"has_discrepancy"`
	Empty          bool `json:"empty"`
}

// Report compares the declared upload count with the number of results.
// A zero upload count means the payload did not declare one.
func Report(totalUploaded, resultCount int) Summary {
	if totalUploaded <= 0 {
		totalUploaded = resultCount
	}
	return Summary{
		TotalUploaded:  totalUploaded,
		ResultCount:    resultCount,
		HasDiscrepancy: totalUploaded > resultCount,
		Empty:          resultCount == 0,
	}
}

// Warnings returns the user-facing notices for the batch, discrepancy first.
func (s Summary) Warnings() []string {
	var out []string
	if s.HasDiscrepancy {
		out = append(out, fmt.Sprintf("%d of %d uploaded files were evaluated", s.ResultCount, s.TotalUploaded))
	}
	if s.Empty {
		out = append(out, "no results found")
	}
	return out
}
