package user

import (
	"encoding/json"
	"errors"
	"net/http"

	"blog-api/internal/handler/http/respond"
	profUC "blog-api/internal/usecase/profile"
)

func writeTimelineError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, profUC.ErrProfileNotFound):
		respond.Error(w, http.StatusNotFound, "profile not found")
	case errors.Is(err, profUC.ErrEntryNotFound):
		respond.Error(w, http.StatusNotFound, "timeline entry not found")
	default:
		respond.SafeError(w, http.StatusInternalServerError, err)
	}
}

type TimelineListHandler struct{ Svc *profUC.Service }

// ServeHTTP handles GET /api/user/timeline. Legacy entries without an
// identifier are repaired and persisted before the response is sent.
func (h TimelineListHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	entries, err := h.Svc.Timeline(r.Context())
	if err != nil {
		writeTimelineError(w, err)
		return
	}
	respond.OK(w, entries)
}

type TimelineCreateHandler struct{ Svc *profUC.Service }

// ServeHTTP handles POST /api/user/timeline; new entries are prepended.
func (h TimelineCreateHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Year        string `json:"year"`
		Title       string `json:"title"`
		Company     string `json:"company"`
		Description string `json:"description"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respond.Error(w, http.StatusBadRequest, "invalid request body")
		return
	}

	entry, err := h.Svc.AddEntry(r.Context(), profUC.EntryInput{
		Year:        req.Year,
		Title:       req.Title,
		Company:     req.Company,
		Description: req.Description,
	})
	if err != nil {
		writeTimelineError(w, err)
		return
	}
	respond.Created(w, entry)
}

type TimelineUpdateHandler struct{ Svc *profUC.Service }

// ServeHTTP handles PUT /api/user/timeline/{entryId} with merge-patch
// semantics.
func (h TimelineUpdateHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Year        *string `json:"year"`
		Title       *string `json:"title"`
		Company     *string `json:"company"`
		Description *string `json:"description"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respond.Error(w, http.StatusBadRequest, "invalid request body")
		return
	}

	entry, err := h.Svc.UpdateEntry(r.Context(), r.PathValue("entryId"), profUC.EntryUpdate{
		Year:        req.Year,
		Title:       req.Title,
		Company:     req.Company,
		Description: req.Description,
	})
	if err != nil {
		writeTimelineError(w, err)
		return
	}
	respond.OK(w, entry)
}

type TimelineDeleteHandler struct{ Svc *profUC.Service }

// ServeHTTP handles DELETE /api/user/timeline/{entryId}.
func (h TimelineDeleteHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	if err := h.Svc.DeleteEntry(r.Context(), r.PathValue("entryId")); err != nil {
		writeTimelineError(w, err)
		return
	}
	respond.OK(w, nil)
}
