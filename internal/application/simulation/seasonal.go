package simulation

import "time"

// Multiplicadores de actividad por categoría y mes. Las combinaciones no
// listadas valen 1.0.
var seasonalPatterns = map[string]map[time.Month]float64{
	"Alimentos": {
		// Más actividad hacia fin de año
		time.January: 1.1, time.February: 1.0, time.March: 1.1, time.April: 1.2,
		time.May: 1.1, time.June: 1.0, time.July: 1.0, time.August: 1.1,
		time.September: 1.2, time.October: 1.3, time.November: 1.4, time.December: 1.5,
	},
	"Ropa": {
		// Picos en marzo (temporada escolar) y diciembre
		time.January: 0.8, time.February: 1.0, time.March: 1.3, time.April: 1.2,
		time.May: 1.1, time.June: 1.0, time.July: 0.9, time.August: 1.1,
		time.September: 1.2, time.October: 1.3, time.November: 1.4, time.December: 1.6,
	},
	"Electrónicos": {
		// Black Friday y Navidad
		time.January: 0.9, time.February: 1.0, time.March: 1.2, time.April: 1.1,
		time.May: 1.0, time.June: 1.1, time.July: 1.0, time.August: 1.1,
		time.September: 1.2, time.October: 1.1, time.November: 1.3, time.December: 1.4,
	},
	"Construcción": {
		// Temporada seca de obras
		time.January: 1.2, time.February: 1.3, time.March: 1.4, time.April: 1.3,
		time.May: 1.2, time.June: 1.1, time.July: 1.0, time.August: 1.1,
		time.September: 1.2, time.October: 1.3, time.November: 1.2, time.December: 0.8,
	},
	"Salud": {
		// Picos en épocas de lluvia
		time.January: 1.1, time.February: 1.0, time.March: 1.1, time.April: 1.2,
		time.May: 1.3, time.June: 1.2, time.July: 1.1, time.August: 1.0,
		time.September: 1.1, time.October: 1.2, time.November: 1.1, time.December: 1.0,
	},
	"Hogar": {
		// Limpieza de enero y diciembre
		time.January: 1.2, time.February: 1.1, time.March: 1.0, time.April: 1.1,
		time.May: 1.0, time.June: 1.1, time.July: 1.2, time.August: 1.1,
		time.September: 1.0, time.October: 1.1, time.November: 1.2, time.December: 1.3,
	},
	"Oficina": {
		// Inicio de año escolar y laboral
		time.January: 1.4, time.February: 1.3, time.March: 1.2, time.April: 1.1,
		time.May: 1.0, time.June: 1.1, time.July: 1.2, time.August: 1.1,
		time.September: 1.0, time.October: 1.1, time.November: 1.0, time.December: 0.8,
	},
}

// Multiplicador de actividad por día de la semana, indexado lunes=0 …
// domingo=6 (menos actividad los fines de semana).
var weeklyPattern = [7]float64{1.2, 1.3, 1.4, 1.3, 1.2, 0.8, 0.5}

// SeasonalMultiplier devuelve el factor estacional de una categoría en un mes;
// 1.0 si la combinación no está configurada.
func SeasonalMultiplier(category string, month time.Month) float64 {
	if byMonth, ok := seasonalPatterns[category]; ok {
		if m, ok := byMonth[month]; ok {
			return m
		}
	}
	return 1.0
}

// WeekdayMultiplier devuelve el factor del día de la semana. time.Weekday usa
// domingo=0; la tabla usa lunes=0, de ahí la rotación.
func WeekdayMultiplier(d time.Weekday) float64 {
	return weeklyPattern[(int(d)+6)%7]
}
