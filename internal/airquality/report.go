package airquality

import (
	"encoding/json"
	"fmt"
	"strconv"
)

// Index is an AQI-style reading. The API sometimes reports "-" or a
// quoted number instead of a plain number, so decoding is tolerant and
// unknown values render as "N/A".
type Index struct {
	Value float64
	Known bool
}

func (x *Index) UnmarshalJSON(b []byte) error {
	var n float64
	if err := json.Unmarshal(b, &n); err == nil {
		x.Value = n
		x.Known = true
		return nil
	}

	var s string
	if err := json.Unmarshal(b, &s); err == nil {
		if n, err := strconv.ParseFloat(s, 64); err == nil {
			x.Value = n
			x.Known = true
		}
		return nil
	}

	// null or an unexpected shape: leave unknown
	return nil
}

func (x Index) String() string {
	if !x.Known {
		return "N/A"
	}
	return strconv.FormatFloat(x.Value, 'f', -1, 64)
}

// Pollutants holds the iaqi sub-readings.
type Pollutants struct {
	PM25 Index
	PM10 Index
	O3   Index
	NO2  Index
	SO2  Index
	CO   Index
}

// Report is the mapped air-quality reading for one station.
type Report struct {
	AQI            Index
	Station        string
	Coordinates    []float64
	Classification string
	DangerLevel    string
	Pollutants     Pollutants
	Temperature    Index
	Humidity       Index
	Pressure       Index
	ObservedAt     string
}

func newReport(data *feedData) *Report {
	sub := func(key string) Index {
		if v, ok := data.IAQI[key]; ok {
			return Index{Value: v.V, Known: true}
		}
		return Index{}
	}

	station := data.City.Name
	if station == "" {
		station = "Desconocida"
	}

	return &Report{
		AQI:            data.AQI,
		Station:        station,
		Coordinates:    data.City.Geo,
		Classification: Classify(data.AQI),
		DangerLevel:    DangerLevel(data.AQI),
		Pollutants: Pollutants{
			PM25: sub("pm25"),
			PM10: sub("pm10"),
			O3:   sub("o3"),
			NO2:  sub("no2"),
			SO2:  sub("so2"),
			CO:   sub("co"),
		},
		Temperature: sub("t"),
		Humidity:    sub("h"),
		Pressure:    sub("p"),
		ObservedAt:  data.Time.S,
	}
}

// Classify maps an AQI value to its quality classification.
func Classify(aqi Index) string {
	if !aqi.Known {
		return "Desconocido"
	}
	switch v := int(aqi.Value); {
	case v <= 50:
		return "Bueno"
	case v <= 100:
		return "Moderado"
	case v <= 150:
		return "Danino para grupos sensibles"
	case v <= 200:
		return "Danino"
	case v <= 300:
		return "Muy danino"
	default:
		return "Peligroso"
	}
}

// DangerLevel maps an AQI value to a coarse danger level.
func DangerLevel(aqi Index) string {
	if !aqi.Known {
		return "DESCONOCIDO"
	}
	switch v := int(aqi.Value); {
	case v <= 50:
		return "BAJO"
	case v <= 100:
		return "MEDIO"
	case v <= 200:
		return "ALTO"
	default:
		return "CRITICO"
	}
}

var _ fmt.Stringer = Index{}
