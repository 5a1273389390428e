package service

import (
	"context"
	"errors"

	"github.com/rs/zerolog/log"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
	"ulascansenturk/weather-client/internal/display"
	"ulascansenturk/weather-client/internal/forecast"
	"ulascansenturk/weather-client/internal/providers"
	"ulascansenturk/weather-client/internal/view"
)

const tracerName = "weather-client/service"

// ErrStaleResponse is returned when a newer request already owns the page.
var ErrStaleResponse = errors.New("response discarded: a newer request is pending")

// WeatherService runs one backend call per user action and installs either the
// rendered forecast or an error line into the page. The returned error is the
// one shown to the user, or ErrStaleResponse.
type WeatherService interface {
	SearchCity(ctx context.Context, page *view.Page, city string) error
	UseMyLocation(ctx context.Context, page *view.Page, clientIP string) error
}

type weatherService struct {
	backend providers.WeatherBackend
	builder *display.Builder
	tracer  trace.Tracer
}

func NewWeatherService(backend providers.WeatherBackend, builder *display.Builder) WeatherService {
	return &weatherService{
		backend: backend,
		builder: builder,
		tracer:  otel.Tracer(tracerName),
	}
}

func (s *weatherService) SearchCity(ctx context.Context, page *view.Page, city string) error {
	ctx, span := s.tracer.Start(ctx, "search-city")
	defer span.End()
	span.SetAttributes(attribute.String("city", city))

	token := page.Begin()

	resp, err := s.backend.GetWeatherByCity(ctx, city)
	if err != nil {
		log.Error().Err(err).Str("city", city).Msg("failed to get weather for city")
		return s.fail(span, page, token, err)
	}

	return s.render(span, page, token, resp, city)
}

func (s *weatherService) UseMyLocation(ctx context.Context, page *view.Page, clientIP string) error {
	ctx, span := s.tracer.Start(ctx, "use-my-location")
	defer span.End()
	span.SetAttributes(attribute.String("client.ip", clientIP))

	token := page.Begin()

	resp, err := s.backend.GetWeatherByLocation(ctx, clientIP)
	if err != nil {
		log.Error().Err(err).Str("client_ip", clientIP).Msg("failed to get weather for current location")
		return s.fail(span, page, token, err)
	}

	return s.render(span, page, token, resp, resp.ResolvedCity())
}

func (s *weatherService) render(span trace.Span, page *view.Page, token view.Token, resp *forecast.Response, city string) error {
	weather, err := s.builder.Build(resp, city)
	if err != nil {
		log.Debug().Err(err).Str("city", city).Msg("weather payload cannot be rendered")
		return s.fail(span, page, token, err)
	}

	span.SetAttributes(attribute.Int("forecast.hours", len(weather.Forecast)))

	if !page.ShowResult(token, weather) {
		log.Debug().Str("city", city).Msg("discarded stale weather response")
		return ErrStaleResponse
	}

	return nil
}

func (s *weatherService) fail(span trace.Span, page *view.Page, token view.Token, err error) error {
	span.RecordError(err)
	span.SetStatus(codes.Error, err.Error())

	if !page.ShowError(token, err.Error()) {
		log.Debug().Err(err).Msg("discarded stale weather error")
		return ErrStaleResponse
	}

	return err
}
