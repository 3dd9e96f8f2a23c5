package api

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/Renmsd/tarsiah/internal/hermes"
	"github.com/Renmsd/tarsiah/internal/store"
	"github.com/Renmsd/tarsiah/internal/tables"
)

type TablesHandler struct {
	store  store.Store
	hermes hermes.Client
	logger *slog.Logger
}

func NewTablesHandler(s store.Store, h hermes.Client, logger *slog.Logger) *TablesHandler {
	return &TablesHandler{store: s, hermes: h, logger: logger}
}

type ParseTableRequest struct {
	Text string `json:"text"`
}

type SaveTableRequest struct {
	Headers []string   `json:"headers"`
	Rows    [][]string `json:"rows"`
}

// Parse handles POST /api/v1/tables/parse
func (h *TablesHandler) Parse(w http.ResponseWriter, r *http.Request) {
	var req ParseTableRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	t, err := tables.Parse(req.Text)
	switch {
	case errors.Is(err, tables.ErrEmptyText):
		writeError(w, http.StatusBadRequest, err.Error())
		return
	case err != nil:
		writeError(w, http.StatusUnprocessableEntity, err.Error())
		return
	}
	writeJSON(w, http.StatusOK, t)
}

// Save handles PUT /api/v1/tables/{name}
func (h *TablesHandler) Save(w http.ResponseWriter, r *http.Request) {
	name := chi.URLParam(r, "name")
	if !tables.IsKnown(name) {
		writeError(w, http.StatusBadRequest, "unknown table: "+name)
		return
	}

	var req SaveTableRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	if len(req.Headers) == 0 {
		writeError(w, http.StatusBadRequest, "headers required")
		return
	}
	if req.Rows == nil {
		req.Rows = [][]string{}
	}

	t := tables.Table{Headers: req.Headers, Rows: req.Rows}
	saved := &store.SavedTable{
		Name:      name,
		Headers:   t.Headers,
		Rows:      t.Rows,
		PlainText: t.PlainText(),
	}
	if err := h.store.SaveTable(r.Context(), saved); err != nil {
		h.logger.Error("save table failed", "table", name, "error", err)
		writeError(w, http.StatusInternalServerError, err.Error())
		return
	}
	tablesSavedTotal.WithLabelValues(name).Inc()

	publish(h.hermes, h.logger, hermes.SubjectTableSaved(name), hermes.TableSavedEvent{
		TableID:   saved.ID.String(),
		TableName: name,
		Rows:      len(saved.Rows),
	})

	writeJSON(w, http.StatusOK, saved)
}

// Get handles GET /api/v1/tables/{name}
func (h *TablesHandler) Get(w http.ResponseWriter, r *http.Request) {
	name := chi.URLParam(r, "name")
	t, err := h.store.GetTable(r.Context(), name)
	if err != nil {
		writeError(w, http.StatusInternalServerError, err.Error())
		return
	}
	if t == nil {
		writeError(w, http.StatusNotFound, "table not found")
		return
	}
	writeJSON(w, http.StatusOK, t)
}

// List handles GET /api/v1/tables
func (h *TablesHandler) List(w http.ResponseWriter, r *http.Request) {
	list, err := h.store.ListTables(r.Context())
	if err != nil {
		writeError(w, http.StatusInternalServerError, err.Error())
		return
	}
	if list == nil {
		list = []*store.SavedTable{}
	}
	writeJSON(w, http.StatusOK, list)
}
