package user

import (
	"encoding/json"
	"errors"
	"net/http"

	"blog-api/internal/domain/entity"
	"blog-api/internal/handler/http/respond"
	profUC "blog-api/internal/usecase/profile"
)

// profileDTO represents the JSON structure of the profile. Collections that
// the application never mutates pass through as raw JSON.
type profileDTO struct {
	Name        string                 `json:"name"`
	Title       string                 `json:"title"`
	Bio         string                 `json:"bio"`
	Avatar      string                 `json:"avatar"`
	Skills      json.RawMessage        `json:"skills"`
	Timeline    []entity.TimelineEntry `json:"timeline"`
	Projects    json.RawMessage        `json:"projects"`
	SocialLinks json.RawMessage        `json:"socialLinks"`
	Stats       json.RawMessage        `json:"stats"`
}

type ProfileHandler struct{ Svc *profUC.Service }

// ServeHTTP handles GET /api/user/profile. The timeline in the response has
// already been repaired; every entry carries an identifier.
func (h ProfileHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	profile, err := h.Svc.Profile(r.Context())
	if err != nil {
		if errors.Is(err, profUC.ErrProfileNotFound) {
			respond.Error(w, http.StatusNotFound, "profile not found")
			return
		}
		respond.SafeError(w, http.StatusInternalServerError, err)
		return
	}

	respond.OK(w, profileDTO{
		Name:        profile.Name,
		Title:       profile.Title,
		Bio:         profile.Bio,
		Avatar:      profile.Avatar,
		Skills:      profile.Skills,
		Timeline:    profile.Timeline,
		Projects:    profile.Projects,
		SocialLinks: profile.SocialLinks,
		Stats:       profile.Stats,
	})
}

type StatsHandler struct{ Svc *profUC.Service }

// ServeHTTP handles GET /api/user/stats.
func (h StatsHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	stats, err := h.Svc.Stats(r.Context())
	if err != nil {
		respond.SafeError(w, http.StatusInternalServerError, err)
		return
	}
	respond.OK(w, stats)
}
