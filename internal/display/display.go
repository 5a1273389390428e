package display

import (
	"errors"
	"fmt"
	"time"
	_ "time/tzdata"

	"ulascansenturk/weather-client/internal/forecast"
	"ulascansenturk/weather-client/internal/weathercode"
)

// ForecastHours is how many hourly entries follow the current conditions.
const ForecastHours = 5

// ClockLayout renders 12-hour time with a two-digit hour, e.g. "03:30 PM".
const ClockLayout = "03:04 PM"

var ErrNoWeatherData = errors.New("No weather data available for this location.")

// Conditions is the current-weather card.
type Conditions struct {
	Time        string
	Icon        string
	Temperature string
	Humidity    string
	WindSpeed   string
	Description string
}

// Hour is one hourly forecast card.
type Hour struct {
	Time        string
	Icon        string
	Temperature string
	Description string
}

// Weather is the display model for one successful response.
type Weather struct {
	City     string
	Current  Conditions
	Forecast []Hour
}

type Builder struct {
	codes weathercode.Table
}

func NewBuilder(codes weathercode.Table) *Builder {
	return &Builder{codes: codes}
}

// Build maps a backend response onto the display model. city is the name shown
// in the heading; when empty the backend's resolved city is used. Any error
// means nothing should be rendered except the error itself.
func (b *Builder) Build(resp *forecast.Response, city string) (*Weather, error) {
	if resp == nil || len(resp.Timelines.Minutely) == 0 {
		return nil, ErrNoWeatherData
	}

	loc, err := time.LoadLocation(resp.Location.Timezone)
	if err != nil {
		return nil, fmt.Errorf("invalid time zone %q: %w", resp.Location.Timezone, err)
	}

	if city == "" {
		city = resp.ResolvedCity()
	}

	latest := resp.Timelines.Minutely[0]
	currentTime, err := FormatLocalTime(latest.Time, loc)
	if err != nil {
		return nil, err
	}

	weather := &Weather{
		City: city,
		Current: Conditions{
			Time:        currentTime,
			Icon:        b.codes.Icon(latest.Values.WeatherCode),
			Temperature: ToFixed(latest.Values.Temperature, 1),
			Humidity:    ToFixed(latest.Values.Humidity, 0),
			WindSpeed:   ToFixed(latest.Values.WindSpeed, 1),
			Description: b.codes.Description(latest.Values.WeatherCode),
		},
	}

	upcoming := UpcomingHours(resp.Timelines.Hourly)
	weather.Forecast = make([]Hour, 0, len(upcoming))
	for _, sample := range upcoming {
		localTime, err := FormatLocalTime(sample.Time, loc)
		if err != nil {
			return nil, err
		}

		weather.Forecast = append(weather.Forecast, Hour{
			Time:        localTime,
			Icon:        b.codes.Icon(sample.Values.WeatherCode),
			Temperature: ToFixed(sample.Values.Temperature, 1),
			Description: b.codes.Description(sample.Values.WeatherCode),
		})
	}

	return weather, nil
}

// UpcomingHours skips the current hour and returns at most ForecastHours
// entries after it.
func UpcomingHours(hourly []forecast.Sample) []forecast.Sample {
	if len(hourly) <= 1 {
		return nil
	}
	end := min(len(hourly), ForecastHours+1)
	return hourly[1:end]
}

// FormatLocalTime parses an ISO-8601 timestamp and renders it in loc with
// ClockLayout.
func FormatLocalTime(ts string, loc *time.Location) (string, error) {
	t, err := time.Parse(time.RFC3339, ts)
	if err != nil {
		return "", fmt.Errorf("invalid timestamp %q: %w", ts, err)
	}
	return t.In(loc).Format(ClockLayout), nil
}
