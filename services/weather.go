package services

import "stylesnapapi/outfitgen"

// WeatherBandForTemperature maps a reading in celsius to a weather band.
func WeatherBandForTemperature(celsius float64) outfitgen.Weather {
	switch {
	case celsius > 25:
		return outfitgen.WeatherHot
	case celsius >= 15:
		return outfitgen.WeatherWarm
	case celsius >= 5:
		return outfitgen.WeatherCool
	}
	return outfitgen.WeatherCold
}
