package vehicles

import (
	"errors"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/autolote/autolote/internal/platform/db"
	"github.com/autolote/autolote/internal/platform/httpx"
	"github.com/autolote/autolote/internal/schema"
)

type Handler struct {
	logger  *slog.Logger
	service *Service
}

func NewHandler(logger *slog.Logger, service *Service) *Handler {
	return &Handler{logger: logger, service: service}
}

func (h *Handler) List(w http.ResponseWriter, r *http.Request) {
	vehicles, err := h.service.List(r.Context())
	if err != nil {
		h.logError("list vehicles failed", err)
		httpx.RespondError(w, err)
		return
	}
	if vehicles == nil {
		vehicles = []Vehicle{}
	}
	httpx.JSON(w, http.StatusOK, vehicles)
}

func (h *Handler) Show(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
	if err != nil {
		w.WriteHeader(http.StatusNotFound)
		return
	}

	vehicle, err := h.service.Get(r.Context(), id)
	if err != nil {
		if !errors.Is(err, httpx.ErrNotFound) {
			h.logError("get vehicle failed", err, "id", id)
		}
		httpx.RespondError(w, err)
		return
	}
	httpx.JSON(w, http.StatusOK, vehicle)
}

func (h *Handler) Create(w http.ResponseWriter, r *http.Request) {
	var raw map[string]any
	if err := httpx.DecodeJSON(r, &raw); err != nil {
		httpx.Problem(w, http.StatusBadRequest, "Bad Request", "request body must be a JSON object")
		return
	}

	if _, err := h.service.Create(r.Context(), raw); err != nil {
		var vErr *schema.Error
		if !errors.As(err, &vErr) {
			h.logError("create vehicle failed", err)
		}
		httpx.RespondError(w, err)
		return
	}
	w.WriteHeader(http.StatusCreated)
}

func (h *Handler) Update(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
	if err != nil {
		w.WriteHeader(http.StatusNotFound)
		return
	}

	var raw map[string]any
	if err := httpx.DecodeJSON(r, &raw); err != nil {
		httpx.Problem(w, http.StatusBadRequest, "Bad Request", "request body must be a JSON object")
		return
	}

	if err := h.service.Update(r.Context(), id, raw); err != nil {
		var vErr *schema.Error
		if !errors.As(err, &vErr) && !errors.Is(err, httpx.ErrNotFound) {
			h.logError("update vehicle failed", err, "id", id)
		}
		httpx.RespondError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (h *Handler) Delete(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
	if err != nil {
		w.WriteHeader(http.StatusNotFound)
		return
	}

	if err := h.service.Delete(r.Context(), id); err != nil {
		if !errors.Is(err, httpx.ErrNotFound) {
			h.logError("delete vehicle failed", err, "id", id)
		}
		httpx.RespondError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (h *Handler) logError(msg string, err error, args ...any) {
	args = append(args, "error", err)
	if code := db.ErrorCode(err); code != "" {
		args = append(args, "sqlstate", code)
	}
	h.logger.Error(msg, args...)
}
