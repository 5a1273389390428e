package view_test

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/suite"
	"ulascansenturk/weather-client/internal/display"
	"ulascansenturk/weather-client/internal/view"
)

type RendererTestSuite struct {
	suite.Suite
	renderer *view.Renderer
}

func (s *RendererTestSuite) SetupTest() {
	var err error
	s.renderer, err = view.NewRenderer("")
	s.Require().NoError(err)
}

func (s *RendererTestSuite) render(snap view.Snapshot) string {
	var buf bytes.Buffer
	s.Require().NoError(s.renderer.Render(&buf, snap))
	return buf.String()
}

func (s *RendererTestSuite) TestInputPage() {
	html := s.render(view.NewPage().Snapshot())

	s.Contains(html, `<title>Weather App</title>`)
	s.Contains(html, `id="weather-form"`)
	s.NotContains(html, `display: none`)
	s.Contains(html, `id="get-location-weather"`)
	s.Contains(html, `id="info-button"`)
	s.NotContains(html, `weather-card`)
	s.NotContains(html, `back-button`)
	s.NotContains(html, `<dialog`)
}

func (s *RendererTestSuite) TestResultPage() {
	page := view.NewPage()
	page.ShowResult(page.Begin(), sampleWeather("Paris"))

	html := s.render(page.Snapshot())

	s.Contains(html, `style="display: none;"`)
	s.Contains(html, `Current Weather in Paris: 03:30 PM`)
	s.Contains(html, `Temperature: 21.5°C`)
	s.Contains(html, `Humidity: 40%`)
	s.Contains(html, `Wind Speed: 3.2 m/s`)
	s.Contains(html, `Weather: Clear`)
	s.Contains(html, `<h4>04:00 PM</h4>`)
	s.Contains(html, `src="static/animated/day.svg"`)
	s.Contains(html, `id="back-button"`)
	s.Equal(2, strings.Count(html, `class="weather-card"`))
}

func (s *RendererTestSuite) TestForecastCardCount() {
	weather := sampleWeather("Lima")
	weather.Forecast = make([]display.Hour, 5)

	var buf bytes.Buffer
	s.Require().NoError(s.renderer.RenderResults(&buf, view.Snapshot{State: view.StateResult, Weather: weather}))

	// current conditions plus five hourly cards
	s.Equal(6, strings.Count(buf.String(), `class="weather-card"`))
}

func (s *RendererTestSuite) TestErrorOnly() {
	page := view.NewPage()
	page.ShowError(page.Begin(), display.ErrNoWeatherData.Error())

	var buf bytes.Buffer
	s.Require().NoError(s.renderer.RenderResults(&buf, page.Snapshot()))

	s.Equal("<p>Error: No weather data available for this location.</p>", strings.TrimSpace(buf.String()))
}

func (s *RendererTestSuite) TestBackClearsCards() {
	page := view.NewPage()
	page.ShowResult(page.Begin(), sampleWeather("Paris"))
	page.Back()

	html := s.render(page.Snapshot())

	s.NotContains(html, `weather-card`)
	s.NotContains(html, `display: none`)
}

func (s *RendererTestSuite) TestEscapesCityName() {
	page := view.NewPage()
	page.ShowResult(page.Begin(), sampleWeather(`<script>alert(1)</script>`))

	html := s.render(page.Snapshot())

	s.NotContains(html, `<script>alert(1)</script>`)
	s.Contains(html, `&lt;script&gt;`)
}

func (s *RendererTestSuite) TestNoticeDialog() {
	page := view.NewPage()
	page.ShowNotice("Made by the weather team")

	html := s.render(page.Snapshot())

	s.Contains(html, `<dialog id="info-dialog" open>`)
	s.Contains(html, `Made by the weather team`)
}

func (s *RendererTestSuite) TestCustomTitle() {
	renderer, err := view.NewRenderer("Forecast")
	s.Require().NoError(err)

	var buf bytes.Buffer
	s.Require().NoError(renderer.Render(&buf, view.NewPage().Snapshot()))
	s.Contains(buf.String(), `<title>Forecast</title>`)
}

func TestRendererSuite(t *testing.T) {
	suite.Run(t, new(RendererTestSuite))
}
