package airquality

import (
	"fmt"
	"io"
	"strings"
)

// Render writes a human-readable air-quality report.
func Render(w io.Writer, r *Report) {
	line := strings.Repeat("=", 70)
	sep := strings.Repeat("-", 70)

	fmt.Fprintln(w)
	fmt.Fprintln(w, line)
	fmt.Fprintln(w, " INFORME DE CALIDAD DEL AIRE - EcoTech Solutions")
	fmt.Fprintln(w, line)

	fmt.Fprintf(w, "\nEstacion: %s\n", r.Station)
	fmt.Fprintf(w, "Fecha/Hora: %s\n", r.ObservedAt)
	if len(r.Coordinates) > 0 {
		fmt.Fprintf(w, "Coordenadas: %v\n", r.Coordinates)
	}

	fmt.Fprintf(w, "\nIndice AQI: %s\n", r.AQI)
	fmt.Fprintf(w, "Clasificacion: %s\n", r.Classification)
	fmt.Fprintf(w, "Nivel de Peligro: %s\n", r.DangerLevel)

	fmt.Fprintln(w, "\nCONTAMINANTES:")
	fmt.Fprintln(w, sep)
	fmt.Fprintf(w, "  PM2.5: %s\n", r.Pollutants.PM25)
	fmt.Fprintf(w, "  PM10: %s\n", r.Pollutants.PM10)
	fmt.Fprintf(w, "  O3 (Ozono): %s\n", r.Pollutants.O3)
	fmt.Fprintf(w, "  NO2: %s\n", r.Pollutants.NO2)
	fmt.Fprintf(w, "  SO2: %s\n", r.Pollutants.SO2)
	fmt.Fprintf(w, "  CO: %s\n", r.Pollutants.CO)

	fmt.Fprintln(w, "\nCONDICIONES METEOROLOGICAS:")
	fmt.Fprintln(w, sep)
	fmt.Fprintf(w, "  Temperatura: %sC\n", r.Temperature)
	fmt.Fprintf(w, "  Humedad: %s%%\n", r.Humidity)
	fmt.Fprintf(w, "  Presion: %s hPa\n", r.Pressure)

	fmt.Fprintln(w, "\nANALISIS PARA ECOTECH:")
	fmt.Fprintln(w, sep)
	for _, rec := range recommendations(r.AQI) {
		fmt.Fprintf(w, "  %s\n", rec)
	}

	fmt.Fprintln(w)
	fmt.Fprintln(w, line)
}

func recommendations(aqi Index) []string {
	if !aqi.Known {
		return []string{"No hay datos suficientes"}
	}
	switch v := int(aqi.Value); {
	case v <= 50:
		return []string{
			"Calidad del aire optima",
			"Buenas condiciones para actividades exteriores",
		}
	case v <= 100:
		return []string{
			"Calidad aceptable, monitorear",
			"Considerar estrategias preventivas",
		}
	case v <= 200:
		return []string{
			"ALERTA: Implementar medidas inmediatas",
			"Limitar actividades contaminantes",
		}
	default:
		return []string{
			"CRITICO: Plan de emergencia",
			"Suspender actividades no esenciales",
		}
	}
}
