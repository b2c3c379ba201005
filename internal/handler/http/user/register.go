// Package user provides HTTP handlers for the profile, its statistics and
// the career timeline.
package user

import (
	"net/http"

	profUC "blog-api/internal/usecase/profile"
)

// Register registers the user profile handlers with the given mux.
func Register(mux *http.ServeMux, svc *profUC.Service) {
	mux.Handle("GET /api/user/profile", ProfileHandler{Svc: svc})
	mux.Handle("GET /api/user/stats", StatsHandler{Svc: svc})

	mux.Handle("GET /api/user/timeline", TimelineListHandler{Svc: svc})
	mux.Handle("POST /api/user/timeline", TimelineCreateHandler{Svc: svc})
	mux.Handle("PUT /api/user/timeline/{entryId}", TimelineUpdateHandler{Svc: svc})
	mux.Handle("DELETE /api/user/timeline/{entryId}", TimelineDeleteHandler{Svc: svc})
}
