package report

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/de-tools/wellness-atlas/pkg/adapters"
	"github.com/de-tools/wellness-atlas/pkg/runtime/html"
	"github.com/de-tools/wellness-atlas/pkg/services/config"
	"github.com/de-tools/wellness-atlas/pkg/services/report"
	"github.com/de-tools/wellness-atlas/pkg/store/artifacts"
	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog"
)

type ProfileLister interface {
	GetProfiles(ctx context.Context) ([]string, error)
}

// ProfileListerFunc adapts a plain function, such as a record store user listing.
type ProfileListerFunc func(ctx context.Context) ([]string, error)

func (f ProfileListerFunc) GetProfiles(ctx context.Context) ([]string, error) {
	return f(ctx)
}

type Handler struct {
	ctrl     report.Controller
	profiles ProfileLister
	location *time.Location
	renderer *html.Renderer
}

func NewHandler(ctrl report.Controller, profiles ProfileLister, location *time.Location) *Handler {
	if location == nil {
		location = time.UTC
	}
	return &Handler{
		ctrl:     ctrl,
		profiles: profiles,
		location: location,
		renderer: html.NewRenderer(),
	}
}

func (h *Handler) ListProfiles(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	logger := zerolog.Ctx(ctx)

	profiles, err := h.profiles.GetProfiles(ctx)
	if err != nil {
		logger.Error().Err(err).Msg("failed to list profiles")
		http.Error(w, "failed to list profiles", http.StatusInternalServerError)
		return
	}
	h.writeJSON(w, r, profiles)
}

func (h *Handler) GetStatistics(w http.ResponseWriter, r *http.Request) {
	req, ok := h.request(w, r)
	if !ok {
		return
	}
	st, err := h.ctrl.Statistics(r.Context(), req)
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	h.writeJSON(w, r, adapters.MapStatisticsDomainToApi(*st))
}

func (h *Handler) GetReport(w http.ResponseWriter, r *http.Request) {
	a, ok := h.generate(w, r)
	if !ok {
		return
	}
	h.writeJSON(w, r, adapters.MapReportDomainToApi(a.Document))
}

func (h *Handler) GetReportHTML(w http.ResponseWriter, r *http.Request) {
	a, ok := h.generate(w, r)
	if !ok {
		return
	}
	body, err := h.renderer.RenderBytes(&a.Document)
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	w.Header().Set("Content-Type", artifacts.FormatHTML.ContentType())
	h.write(w, r, body)
}

func (h *Handler) GetExportCSV(w http.ResponseWriter, r *http.Request) {
	a, ok := h.generate(w, r)
	if !ok {
		return
	}
	name := artifacts.Name(a.Profile.ID, a.GeneratedAt, artifacts.FormatCSV)
	w.Header().Set("Content-Type", artifacts.FormatCSV.ContentType())
	w.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=%q", name))
	h.write(w, r, []byte(a.CSV))
}

func (h *Handler) GetSummary(w http.ResponseWriter, r *http.Request) {
	a, ok := h.generate(w, r)
	if !ok {
		return
	}
	w.Header().Set("Content-Type", artifacts.FormatText.ContentType())
	h.write(w, r, []byte(a.Summary))
}

func (h *Handler) request(w http.ResponseWriter, r *http.Request) (report.Request, bool) {
	req := report.Request{UserID: chi.URLParam(r, "user")}
	if value := r.URL.Query().Get("now"); value != "" {
		now, err := report.ParseDay(value, h.location)
		if err != nil {
			http.Error(w, "invalid 'now' date format. Expected format: YYYY-MM-DD", http.StatusBadRequest)
			return req, false
		}
		req.Now = now
	}
	return req, true
}

func (h *Handler) generate(w http.ResponseWriter, r *http.Request) (*report.Artifacts, bool) {
	req, ok := h.request(w, r)
	if !ok {
		return nil, false
	}
	a, err := h.ctrl.Generate(r.Context(), req)
	if err != nil {
		h.writeError(w, r, err)
		return nil, false
	}
	return a, true
}

func (h *Handler) writeError(w http.ResponseWriter, r *http.Request, err error) {
	switch {
	case errors.Is(err, config.ErrProfileNotFound):
		http.Error(w, err.Error(), http.StatusNotFound)
	case errors.Is(err, report.ErrUserRequired):
		http.Error(w, err.Error(), http.StatusBadRequest)
	default:
		zerolog.Ctx(r.Context()).Error().Err(err).Msg("failed to generate report")
		http.Error(w, "failed to generate report", http.StatusInternalServerError)
	}
}

func (h *Handler) writeJSON(w http.ResponseWriter, r *http.Request, v any) {
	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(v); err != nil {
		zerolog.Ctx(r.Context()).Error().Err(err).Msg("failed to encode response")
	}
}

func (h *Handler) write(w http.ResponseWriter, r *http.Request, body []byte) {
	if _, err := w.Write(body); err != nil {
		zerolog.Ctx(r.Context()).Error().Err(err).Msg("failed to write response")
	}
}
