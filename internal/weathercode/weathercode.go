package weathercode

// DefaultFallbackIcon is served for codes without a bundled icon.
const DefaultFallbackIcon = "https://raw.githubusercontent.com/tomorrow-io-api/tomorrow-weather-codes/master/V2/svg/unknown.svg"

const UnknownDescription = "Unknown"

const iconDir = "static/animated/"

var icons = map[int]string{
	1000: iconDir + "day.svg",
	1100: iconDir + "cloudy-day-1.svg",
	1101: iconDir + "cloudy-day-2.svg",
	1102: iconDir + "cloudy-day-3.svg",
	1001: iconDir + "cloudy.svg",
	4000: iconDir + "rainy-1.svg",
	4001: iconDir + "rainy-2.svg",
	4200: iconDir + "rainy-3.svg",
	5000: iconDir + "snowy-1.svg",
	5001: iconDir + "snowy-2.svg",
	5100: iconDir + "snowy-3.svg",
	5101: iconDir + "snowy-6.svg",
	6000: iconDir + "rainy-4.svg",
	6200: iconDir + "rainy-5.svg",
	7000: iconDir + "snowy-4.svg",
	7101: iconDir + "snowy-5.svg",
	7102: iconDir + "snowy-4.svg",
	8000: iconDir + "thunder.svg",
}

var descriptions = map[int]string{
	1000: "Clear",
	1100: "Mostly Clear",
	1101: "Partly Cloudy",
	1102: "Mostly Cloudy",
	1001: "Cloudy",
	4000: "Rain",
	4001: "Light Rain",
	4200: "Heavy Rain",
	5000: "Snow",
	5001: "Flurries",
	5100: "Light Snow",
	5101: "Heavy Snow",
	6000: "Freezing Drizzle",
	6200: "Freezing Rain",
	7000: "Ice Pellets",
	7101: "Heavy Ice Pellets",
	7102: "Light Ice Pellets",
	8000: "Thunderstorm",
}

// Table resolves weather codes to icons and labels. The zero value uses
// DefaultFallbackIcon.
type Table struct {
	fallbackIcon string
}

func New(fallbackIcon string) Table {
	return Table{fallbackIcon: fallbackIcon}
}

func (t Table) Icon(code int) string {
	if icon, ok := icons[code]; ok {
		return icon
	}
	if t.fallbackIcon == "" {
		return DefaultFallbackIcon
	}
	return t.fallbackIcon
}

func (t Table) Description(code int) string {
	return Description(code)
}

// Icon returns the icon path for code, or DefaultFallbackIcon.
func Icon(code int) string {
	return Table{}.Icon(code)
}

// Description returns the label for code, or UnknownDescription.
func Description(code int) string {
	if d, ok := descriptions[code]; ok {
		return d
	}
	return UnknownDescription
}

// Known reports whether code has an entry in the tables.
func Known(code int) bool {
	_, ok := descriptions[code]
	return ok
}
