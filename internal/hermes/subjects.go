package hermes

import (
	"strings"
	"time"
)

const (
	StreamName = "TARSIAH_EVENTS"

	// Events are kept for a week; consumers replay from there.
	streamMaxAge = 7 * 24 * time.Hour

	subjectRoot = "tarsiah"

	domainComparison = "comparison"
	domainTable      = "table"
)

func subject(domain, key, event string) string {
	return strings.Join([]string{subjectRoot, domain, key, event}, ".")
}

// StreamSubjects lists the wildcards captured by the event stream, one per
// event domain.
func StreamSubjects() []string {
	return []string{
		subjectRoot + "." + domainComparison + ".>",
		subjectRoot + "." + domainTable + ".>",
	}
}

func SubjectComparisonCompleted(runID string) string {
	return subject(domainComparison, runID, "completed")
}

// SubjectComparisonPartial is published when fewer proposals were evaluated
// than were uploaded.
func SubjectComparisonPartial(runID string) string {
	return subject(domainComparison, runID, "partial")
}

func SubjectComparisonFailed(runID string) string {
	return subject(domainComparison, runID, "failed")
}

func SubjectTableSaved(name string) string { return subject(domainTable, name, "saved") }

// eventType is the last subject token, e.g. "completed".
func eventType(subj string) string {
	return subj[strings.LastIndex(subj, ".")+1:]
}
