// Package interaction provides the HTTP surface of the toggle-count engine.
// The same three handlers serve likes, bookmarks and author follows; only
// the edge service, the path parameter and the response field names differ.
package interaction

import (
	"errors"
	"net/http"

	"blog-api/internal/handler/http/auth"
	"blog-api/internal/handler/http/pathutil"
	"blog-api/internal/handler/http/respond"
	intUC "blog-api/internal/usecase/interaction"
)

// Names configures the per-resource response field names, e.g.
// {"isLiked", "likeCount"} or {"isFollowing", "followCount"}.
type Names struct {
	Member string
	Count  string
}

// Endpoint binds one edge service to its URL shape.
type Endpoint struct {
	Svc       *intUC.Service
	Names     Names
	PathParam string
	NumericID bool // article-object edges carry numeric ids in the path
}

// Register registers the like, bookmark and follow endpoints. Status reads
// accept an optional identity; mutations require one.
func Register(mux *http.ServeMux, likes, bookmarks, follows *intUC.Service) {
	registerEdge(mux, "/api/articles/{id}/like", Endpoint{
		Svc: likes, Names: Names{Member: "isLiked", Count: "likeCount"}, PathParam: "id", NumericID: true,
	})
	registerEdge(mux, "/api/articles/{id}/bookmark", Endpoint{
		Svc: bookmarks, Names: Names{Member: "isBookmarked", Count: "bookmarkCount"}, PathParam: "id", NumericID: true,
	})
	registerEdge(mux, "/api/authors/{authorId}/follow", Endpoint{
		Svc: follows, Names: Names{Member: "isFollowing", Count: "followCount"}, PathParam: "authorId",
	})
}

func registerEdge(mux *http.ServeMux, path string, ep Endpoint) {
	mux.Handle("GET "+path, auth.Optional(StatusHandler{ep}))
	mux.Handle("POST "+path, auth.Require(AddHandler{ep}))
	mux.Handle("DELETE "+path, auth.Require(RemoveHandler{ep}))
}

// objectID extracts and, for numeric edges, validates the object identifier.
func (ep Endpoint) objectID(r *http.Request) (string, error) {
	raw := r.PathValue(ep.PathParam)
	if !ep.NumericID {
		if raw == "" {
			return "", pathutil.ErrInvalidID
		}
		return raw, nil
	}
	if _, err := pathutil.ParseID(raw); err != nil {
		return "", err
	}
	return raw, nil
}

func (ep Endpoint) writeState(w http.ResponseWriter, code int, st intUC.State) {
	respond.JSON(w, code, map[string]any{
		"success":       true,
		ep.Names.Member: st.IsMember,
		ep.Names.Count:  st.Count,
	})
}

func (ep Endpoint) writeError(w http.ResponseWriter, err error) {
	if errors.Is(err, intUC.ErrAuthenticationRequired) {
		respond.Error(w, http.StatusUnauthorized, "authentication required")
		return
	}
	respond.SafeError(w, http.StatusInternalServerError, err)
}

type StatusHandler struct{ Endpoint }

// ServeHTTP reports membership and count. Without an identity the caller is
// never a member, but the count is still the real cardinality.
func (h StatusHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	objectID, err := h.objectID(r)
	if err != nil {
		respond.Error(w, http.StatusNotFound, "not found")
		return
	}

	st, err := h.Svc.Status(r.Context(), objectID, auth.IdentityFromContext(r.Context()))
	if err != nil {
		h.writeError(w, err)
		return
	}
	h.writeState(w, http.StatusOK, st)
}

type AddHandler struct{ Endpoint }

// ServeHTTP toggles the edge on; duplicate adds are no-ops.
func (h AddHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	objectID, err := h.objectID(r)
	if err != nil {
		respond.Error(w, http.StatusNotFound, "not found")
		return
	}

	st, err := h.Svc.Add(r.Context(), objectID, auth.IdentityFromContext(r.Context()))
	if err != nil {
		h.writeError(w, err)
		return
	}
	h.writeState(w, http.StatusOK, st)
}

type RemoveHandler struct{ Endpoint }

// ServeHTTP toggles the edge off; removing an absent edge is a no-op.
func (h RemoveHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	objectID, err := h.objectID(r)
	if err != nil {
		respond.Error(w, http.StatusNotFound, "not found")
		return
	}

	st, err := h.Svc.Remove(r.Context(), objectID, auth.IdentityFromContext(r.Context()))
	if err != nil {
		h.writeError(w, err)
		return
	}
	h.writeState(w, http.StatusOK, st)
}
