package display_test

import (
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/suite"
	"ulascansenturk/weather-client/internal/display"
	"ulascansenturk/weather-client/internal/forecast"
	"ulascansenturk/weather-client/internal/weathercode"
)

type DisplayTestSuite struct {
	suite.Suite
	builder *display.Builder
}

func (s *DisplayTestSuite) SetupTest() {
	s.builder = display.NewBuilder(weathercode.New(weathercode.DefaultFallbackIcon))
}

func hourlySamples(n int) []forecast.Sample {
	start := time.Date(2024, 1, 15, 20, 0, 0, 0, time.UTC)
	samples := make([]forecast.Sample, n)
	for i := range samples {
		samples[i] = forecast.Sample{
			Time: start.Add(time.Duration(i) * time.Hour).Format(time.RFC3339),
			Values: forecast.Values{
				Temperature: float64(i),
				WeatherCode: 1000,
			},
		}
	}
	return samples
}

func newResponse(hourly int) *forecast.Response {
	return &forecast.Response{
		City: "New York",
		Location: forecast.Location{
			Timezone: "America/New_York",
		},
		Timelines: forecast.Timelines{
			Minutely: []forecast.Sample{
				{
					Time: "2024-01-15T20:30:00Z",
					Values: forecast.Values{
						Temperature: 3.14,
						Humidity:    62.5,
						WindSpeed:   4.25,
						WeatherCode: 1101,
					},
				},
			},
			Hourly: hourlySamples(hourly),
		},
	}
}

func (s *DisplayTestSuite) TestBuildCurrentConditions() {
	weather, err := s.builder.Build(newResponse(6), "New York")

	s.Require().NoError(err)
	s.Equal("New York", weather.City)
	s.Equal(display.Conditions{
		Time:        "03:30 PM",
		Icon:        "static/animated/cloudy-day-2.svg",
		Temperature: "3.1",
		Humidity:    "63",
		WindSpeed:   "4.3",
		Description: "Partly Cloudy",
	}, weather.Current)
}

func (s *DisplayTestSuite) TestForecastSkipsCurrentHourAndCapsAtFive() {
	cases := []struct {
		hourly   int
		expected int
	}{
		{0, 0},
		{1, 0},
		{2, 1},
		{5, 4},
		{6, 5},
		{7, 5},
		{24, 5},
	}

	for _, tc := range cases {
		s.Run(fmt.Sprintf("%d hourly entries", tc.hourly), func() {
			weather, err := s.builder.Build(newResponse(tc.hourly), "New York")

			s.Require().NoError(err)
			s.Len(weather.Forecast, tc.expected)
			if tc.expected > 0 {
				// index 0 is 20:00Z; the first card must be 21:00Z, 04:00 PM in New York
				s.Equal("04:00 PM", weather.Forecast[0].Time)
				s.Equal("1.0", weather.Forecast[0].Temperature)
			}
		})
	}
}

func (s *DisplayTestSuite) TestForecastCards() {
	weather, err := s.builder.Build(newResponse(3), "New York")

	s.Require().NoError(err)
	s.Equal([]display.Hour{
		{Time: "04:00 PM", Icon: "static/animated/day.svg", Temperature: "1.0", Description: "Clear"},
		{Time: "05:00 PM", Icon: "static/animated/day.svg", Temperature: "2.0", Description: "Clear"},
	}, weather.Forecast)
}

func (s *DisplayTestSuite) TestMissingLatestSample() {
	resp := newResponse(6)
	resp.Timelines.Minutely = nil

	weather, err := s.builder.Build(resp, "New York")

	s.ErrorIs(err, display.ErrNoWeatherData)
	s.Nil(weather)
}

func (s *DisplayTestSuite) TestEmptyLatestSample() {
	resp := newResponse(6)
	resp.Timelines.Minutely = []forecast.Sample{}

	weather, err := s.builder.Build(resp, "New York")

	s.ErrorIs(err, display.ErrNoWeatherData)
	s.Nil(weather)
}

func (s *DisplayTestSuite) TestNilResponse() {
	weather, err := s.builder.Build(nil, "Nowhere")

	s.ErrorIs(err, display.ErrNoWeatherData)
	s.Nil(weather)
}

func (s *DisplayTestSuite) TestUnknownWeatherCode() {
	resp := newResponse(2)
	resp.Timelines.Minutely[0].Values.WeatherCode = 31337
	resp.Timelines.Hourly[1].Values.WeatherCode = -5

	weather, err := s.builder.Build(resp, "New York")

	s.Require().NoError(err)
	s.Equal(weathercode.DefaultFallbackIcon, weather.Current.Icon)
	s.Equal("Unknown", weather.Current.Description)
	s.Equal(weathercode.DefaultFallbackIcon, weather.Forecast[0].Icon)
	s.Equal("Unknown", weather.Forecast[0].Description)
}

func (s *DisplayTestSuite) TestInvalidTimezone() {
	resp := newResponse(2)
	resp.Location.Timezone = "Mars/Olympus_Mons"

	weather, err := s.builder.Build(resp, "New York")

	s.Error(err)
	s.Contains(err.Error(), "invalid time zone")
	s.Nil(weather)
}

func (s *DisplayTestSuite) TestInvalidHourlyTimestamp() {
	resp := newResponse(3)
	resp.Timelines.Hourly[2].Time = "tomorrow-ish"

	weather, err := s.builder.Build(resp, "New York")

	s.Error(err)
	s.Contains(err.Error(), "invalid timestamp")
	s.Nil(weather)
}

func (s *DisplayTestSuite) TestEmptyTimezoneFormatsInUTC() {
	resp := newResponse(0)
	resp.Location.Timezone = ""

	weather, err := s.builder.Build(resp, "New York")

	s.Require().NoError(err)
	s.Equal("08:30 PM", weather.Current.Time)
}

func (s *DisplayTestSuite) TestCityFallsBackToResolvedCity() {
	resp := newResponse(0)
	resp.Location.City = "Brooklyn"

	weather, err := s.builder.Build(resp, "")

	s.Require().NoError(err)
	s.Equal("Brooklyn", weather.City)

	resp.Location.City = ""
	weather, err = s.builder.Build(resp, "")

	s.Require().NoError(err)
	s.Equal("New York", weather.City)
}

func TestDisplaySuite(t *testing.T) {
	suite.Run(t, new(DisplayTestSuite))
}
