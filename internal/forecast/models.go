package forecast

// Response is the backend's POST /weather success body.
type Response struct {
	City      string    `json:"city"`
	Location  Location  `json:"location"`
	Timelines Timelines `json:"timelines"`
}

type Location struct {
	City     string `json:"city,omitempty"`
	Timezone string `json:"timezone"`
}

type Timelines struct {
	Minutely []Sample `json:"minutely"`
	Hourly   []Sample `json:"hourly"`
}

type Sample struct {
	Time   string `json:"time"`
	Values Values `json:"values"`
}

type Values struct {
	Temperature float64 `json:"temperature"`
	Humidity    float64 `json:"humidity"`
	WindSpeed   float64 `json:"windSpeed"`
	WeatherCode int     `json:"weatherCode"`
}

// ErrorResponse is the backend's failure body.
type ErrorResponse struct {
	Error string `json:"error"`
}

// ResolvedCity is the city the backend settled on: location.city when present,
// otherwise the top-level city.
func (r *Response) ResolvedCity() string {
	if r.Location.City != "" {
		return r.Location.City
	}
	return r.City
}
