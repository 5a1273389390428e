package handlers

import (
	"bytes"
	"context"
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/google/uuid"
	"github.com/rs/zerolog/log"
	"ulascansenturk/weather-client/internal/service"
	"ulascansenturk/weather-client/internal/session"
	"ulascansenturk/weather-client/internal/view"
)

const SessionCookieName = "weather_session"

type WeatherHandler struct {
	weatherService service.WeatherService
	renderer       *view.Renderer
	sessions       session.Store
	aboutMessage   string
	pageOptions    []view.Option
}

func NewWeatherHandler(
	weatherService service.WeatherService,
	renderer *view.Renderer,
	sessions session.Store,
	aboutMessage string,
	pageOptions ...view.Option,
) *WeatherHandler {
	return &WeatherHandler{
		weatherService: weatherService,
		renderer:       renderer,
		sessions:       sessions,
		aboutMessage:   aboutMessage,
		pageOptions:    pageOptions,
	}
}

// NewRouter mounts the page routes and serves icons from staticDir.
func NewRouter(h *WeatherHandler, staticDir string) http.Handler {
	r := chi.NewRouter()

	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(middleware.Recoverer)

	r.NotFound(func(w http.ResponseWriter, r *http.Request) {
		respondWithError(w, http.StatusNotFound, "not found")
	})
	r.MethodNotAllowed(func(w http.ResponseWriter, r *http.Request) {
		respondWithError(w, http.StatusMethodNotAllowed, "method not allowed")
	})

	r.Get("/", h.GetPage)
	r.Get("/results", h.GetResults)
	r.Post("/search", h.SearchCity)
	r.Post("/locate", h.UseMyLocation)
	r.Post("/back", h.Back)
	r.Post("/info", h.ShowInfo)
	r.Post("/info/close", h.CloseInfo)
	r.Get("/healthz", h.Health)
	r.Handle("/static/*", http.StripPrefix("/static/", http.FileServer(http.Dir(staticDir))))

	return r
}

func (h *WeatherHandler) GetPage(w http.ResponseWriter, r *http.Request) {
	snap := h.page(w, r).Snapshot()
	respondWithHTML(w, func(buf *bytes.Buffer) error {
		return h.renderer.Render(buf, snap)
	})
}

// GetResults renders only the contents of the results container.
func (h *WeatherHandler) GetResults(w http.ResponseWriter, r *http.Request) {
	snap := h.page(w, r).Snapshot()
	respondWithHTML(w, func(buf *bytes.Buffer) error {
		return h.renderer.RenderResults(buf, snap)
	})
}

func (h *WeatherHandler) SearchCity(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		respondWithError(w, http.StatusBadRequest, "invalid form body")
		return
	}

	page := h.page(w, r)
	city := r.PostForm.Get("city")

	err := h.weatherService.SearchCity(context.WithoutCancel(r.Context()), page, city)
	logOutcome(err, "search")

	redirectHome(w, r)
}

func (h *WeatherHandler) UseMyLocation(w http.ResponseWriter, r *http.Request) {
	page := h.page(w, r)

	err := h.weatherService.UseMyLocation(context.WithoutCancel(r.Context()), page, clientIP(r))
	logOutcome(err, "locate")

	redirectHome(w, r)
}

func (h *WeatherHandler) Back(w http.ResponseWriter, r *http.Request) {
	h.page(w, r).Back()
	redirectHome(w, r)
}

func (h *WeatherHandler) ShowInfo(w http.ResponseWriter, r *http.Request) {
	h.page(w, r).ShowNotice(h.aboutMessage)
	redirectHome(w, r)
}

func (h *WeatherHandler) CloseInfo(w http.ResponseWriter, r *http.Request) {
	h.page(w, r).DismissNotice()
	redirectHome(w, r)
}

func (h *WeatherHandler) Health(w http.ResponseWriter, _ *http.Request) {
	respondWithJSON(w, http.StatusOK, HealthResponse{Status: "ok"})
}

// page returns the caller's page, starting a new session when the cookie is
// missing or has expired.
func (h *WeatherHandler) page(w http.ResponseWriter, r *http.Request) *view.Page {
	if cookie, err := r.Cookie(SessionCookieName); err == nil {
		if page, ok := h.sessions.Get(cookie.Value); ok {
			return page
		}
	}

	id := uuid.NewString()
	page := view.NewPage(h.pageOptions...)
	h.sessions.Set(id, page)

	http.SetCookie(w, &http.Cookie{
		Name:     SessionCookieName,
		Value:    id,
		Path:     "/",
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	})

	return page
}

// logOutcome only traces the result; the service already put it on the page.
func logOutcome(err error, action string) {
	switch {
	case err == nil:
	case errors.Is(err, service.ErrStaleResponse):
		log.Debug().Str("action", action).Msg("response arrived after a newer request")
	default:
		log.Debug().Err(err).Str("action", action).Msg("weather request shown as error")
	}
}
