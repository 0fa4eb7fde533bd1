package openweather

import "github.com/katiamach/weather-dashboard/internal/model"

// icons maps provider icon codes to dashboard categories.
var icons = map[string]model.IconCategory{
	"01d": model.IconClear,
	"01n": model.IconClear,
	"02d": model.IconClouds,
	"02n": model.IconClouds,
	"03d": model.IconClouds,
	"03n": model.IconClouds,
	"04d": model.IconDrizzle,
	"04n": model.IconDrizzle,
	"09d": model.IconRain,
	"09n": model.IconRain,
	"10d": model.IconRain,
	"10n": model.IconRain,
	"13d": model.IconSnow,
	"13n": model.IconSnow,
}

// IconFor returns the icon category for a provider icon code.
func IconFor(code string) model.IconCategory {
	if icon, ok := icons[code]; ok {
		return icon
	}
	return model.DefaultIcon
}
