package weather

import (
	"net/url"
	"strconv"
)

// DefaultBaseURL — endpoint текущей погоды OpenWeatherMap.
const DefaultBaseURL = "http://api.openweathermap.org/data/2.5/weather"

// Endpoint описывает запрос текущей погоды по координатам.
type Endpoint struct {
	BaseURL string
	Lat     float64
	Lon     float64
	APIKey  string
	Units   string // default: metric
	Lang    string // default: pt_br
}

// URL собирает URL запроса.
func (e Endpoint) URL() string {
	base := e.BaseURL
	if base == "" {
		base = DefaultBaseURL
	}

	units := e.Units
	if units == "" {
		units = "metric"
	}

	lang := e.Lang
	if lang == "" {
		lang = "pt_br"
	}

	values := url.Values{}
	values.Set("lat", strconv.FormatFloat(e.Lat, 'f', -1, 64))
	values.Set("lon", strconv.FormatFloat(e.Lon, 'f', -1, 64))
	values.Set("appid", e.APIKey)
	values.Set("units", units)
	values.Set("lang", lang)

	return base + "?" + values.Encode()
}
