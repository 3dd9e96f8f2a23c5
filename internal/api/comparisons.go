package api

import (
	"errors"
	"io"
	"log/slog"
	"mime/multipart"
	"net/http"
	"time"

	"github.com/google/uuid"

	"github.com/Renmsd/tarsiah/internal/comparison"
	"github.com/Renmsd/tarsiah/internal/evaluator"
	"github.com/Renmsd/tarsiah/internal/hermes"
)

// GenericAnalysisError is shown when the evaluator could not be reached or
// answered with something that is not a comparison payload.
const GenericAnalysisError = "an error occurred during analysis"

const multipartMemory = 32 << 20

type ComparisonsHandler struct {
	evaluator evaluator.Client
	hermes    hermes.Client
	maxUpload int64
	logger    *slog.Logger
}

func NewComparisonsHandler(e evaluator.Client, h hermes.Client, maxUpload int64, logger *slog.Logger) *ComparisonsHandler {
	return &ComparisonsHandler{evaluator: e, hermes: h, maxUpload: maxUpload, logger: logger}
}

type ComparisonResponse struct {
	ID       string                    `json:"id"`
	Shape    string                    `json:"shape"`
	Results  []comparison.RankedResult `json:"results"`
	Summary  comparison.Summary        `json:"summary"`
	Warnings []string                  `json:"warnings"`
}

// Create handles POST /api/v1/comparisons
func (h *ComparisonsHandler) Create(w http.ResponseWriter, r *http.Request) {
	if h.maxUpload > 0 {
		r.Body = http.MaxBytesReader(w, r.Body, h.maxUpload)
	}
	if err := r.ParseMultipartForm(multipartMemory); err != nil {
		writeError(w, http.StatusBadRequest, "invalid multipart upload")
		return
	}
	defer r.MultipartForm.RemoveAll()

	rfpHeaders := nonEmptyFiles(r.MultipartForm.File["rfp_file"])
	if len(rfpHeaders) == 0 {
		writeError(w, http.StatusBadRequest, "rfp_file required")
		return
	}
	proposalHeaders := nonEmptyFiles(r.MultipartForm.File["proposal_files"])
	if len(proposalHeaders) == 0 {
		writeError(w, http.StatusBadRequest, "no valid proposal files uploaded")
		return
	}

	files, closeAll, err := openFiles(append(rfpHeaders[:1:1], proposalHeaders...))
	defer closeAll()
	if err != nil {
		writeError(w, http.StatusBadRequest, "unreadable upload")
		return
	}

	runID := uuid.New().String()
	logger := h.logger.With("run_id", runID)
	logger.Info("comparison requested", "rfp", files[0].Name, "proposals", len(files)-1)

	body, err := h.evaluator.Compare(r.Context(), files[0], files[1:])
	if err != nil {
		logger.Error("evaluator request failed", "error", err)
		h.fail(runID, "upload", outcomeTransportError, err)
		writeError(w, http.StatusBadGateway, GenericAnalysisError)
		return
	}

	h.respond(w, runID, "upload", body, true, logger)
}

// Normalize handles POST /api/v1/comparisons/normalize. The body is an
// evaluator response obtained elsewhere.
func (h *ComparisonsHandler) Normalize(w http.ResponseWriter, r *http.Request) {
	if h.maxUpload > 0 {
		r.Body = http.MaxBytesReader(w, r.Body, h.maxUpload)
	}
	body, err := io.ReadAll(r.Body)
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	runID := uuid.New().String()
	h.respond(w, runID, "payload", body, false, h.logger.With("run_id", runID))
}

// respond runs the pipeline and writes the outcome. upstream marks bodies
// that came from the evaluator, whose failures are gateway errors rather than
// client errors.
func (h *ComparisonsHandler) respond(w http.ResponseWriter, runID, source string, body []byte, upstream bool, logger *slog.Logger) {
	out, err := comparison.Run(body)

	var backendErr *comparison.BackendError
	switch {
	case errors.As(err, &backendErr):
		logger.Warn("evaluator reported an error", "message", backendErr.Message)
		h.fail(runID, source, outcomeBackendError, err)
		status := http.StatusUnprocessableEntity
		if upstream {
			status = http.StatusBadGateway
		}
		writeError(w, status, backendErr.Message)
		return
	case err != nil:
		logger.Warn("evaluator payload unusable", "error", err, "bytes", len(body))
		h.fail(runID, source, outcomeMalformed, err)
		status := http.StatusBadRequest
		if upstream {
			status = http.StatusBadGateway
		}
		writeError(w, status, GenericAnalysisError)
		return
	}

	h.observe(runID, source, out)
	logger.Info("comparison normalized",
		"shape", out.Shape.String(),
		"results", out.Summary.ResultCount,
		"total_uploaded", out.Summary.TotalUploaded,
		"fallbacks", out.Fallbacks,
		"discrepancy", out.Summary.HasDiscrepancy,
	)

	warnings := out.Summary.Warnings()
	if warnings == nil {
		warnings = []string{}
	}
	writeJSON(w, http.StatusOK, ComparisonResponse{
		ID:       runID,
		Shape:    out.Shape.String(),
		Results:  out.Results,
		Summary:  out.Summary,
		Warnings: warnings,
	})
}

func (h *ComparisonsHandler) observe(runID, source string, out *comparison.Outcome) {
	outcome := outcomeOK
	if out.Summary.Empty {
		outcome = outcomeEmpty
	}
	comparisonsTotal.WithLabelValues(source, outcome).Inc()
	comparisonResults.Observe(float64(out.Summary.ResultCount))
	comparisonFallbacksTotal.Add(float64(out.Fallbacks))
	if out.Summary.HasDiscrepancy {
		comparisonDiscrepanciesTotal.Inc()
	}

	evt := hermes.ComparisonCompletedEvent{
		RunID:         runID,
		Shape:         out.Shape.String(),
		ResultCount:   out.Summary.ResultCount,
		TotalUploaded: out.Summary.TotalUploaded,
		Fallbacks:     out.Fallbacks,
		Timestamp:     time.Now().UTC(),
	}
	for _, r := range out.Results {
		if r.Verdict == comparison.VerdictQualified {
			evt.Qualified++
		}
		if evt.TopProposal == "" && !r.IsRationale {
			evt.TopProposal = r.Name
		}
	}
	publish(h.hermes, h.logger, hermes.SubjectComparisonCompleted(runID), evt)
	if out.Summary.HasDiscrepancy {
		publish(h.hermes, h.logger, hermes.SubjectComparisonPartial(runID), hermes.ComparisonPartialEvent{
			RunID:         runID,
			ResultCount:   out.Summary.ResultCount,
			TotalUploaded: out.Summary.TotalUploaded,
		})
	}
}

func (h *ComparisonsHandler) fail(runID, source, outcome string, err error) {
	comparisonsTotal.WithLabelValues(source, outcome).Inc()
	publish(h.hermes, h.logger, hermes.SubjectComparisonFailed(runID), hermes.ComparisonFailedEvent{
		RunID: runID,
		Error: err.Error(),
	})
}

func nonEmptyFiles(headers []*multipart.FileHeader) []*multipart.FileHeader {
	var out []*multipart.FileHeader
	for _, fh := range headers {
		if fh.Filename != "" {
			out = append(out, fh)
		}
	}
	return out
}

// openFiles opens every upload. The returned close func is always safe to call.
func openFiles(headers []*multipart.FileHeader) ([]evaluator.File, func(), error) {
	var opened []multipart.File
	closeAll := func() {
		for _, f := range opened {
			f.Close()
		}
	}
	files := make([]evaluator.File, 0, len(headers))
	for _, fh := range headers {
		f, err := fh.Open()
		if err != nil {
			return nil, closeAll, err
		}
		opened = append(opened, f)
		files = append(files, evaluator.File{Name: fh.Filename, Content: f})
	}
	return files, closeAll, nil
}
