package airquality

import (
	"encoding/json"
	"testing"
)

func TestClassify(t *testing.T) {
	cases := []struct {
		aqi  Index
		want string
	}{
		{Index{Value: 0, Known: true}, "Bueno"},
		{Index{Value: 50, Known: true}, "Bueno"},
		{Index{Value: 51, Known: true}, "Moderado"},
		{Index{Value: 100, Known: true}, "Moderado"},
		{Index{Value: 101, Known: true}, "Danino para grupos sensibles"},
		{Index{Value: 150, Known: true}, "Danino para grupos sensibles"},
		{Index{Value: 151, Known: true}, "Danino"},
		{Index{Value: 200, Known: true}, "Danino"},
		{Index{Value: 201, Known: true}, "Muy danino"},
		{Index{Value: 300, Known: true}, "Muy danino"},
		{Index{Value: 301, Known: true}, "Peligroso"},
		{Index{}, "Desconocido"},
	}
	for _, tc := range cases {
		if got := Classify(tc.aqi); got != tc.want {
			t.Errorf("Classify(%v) = %q, want %q", tc.aqi, got, tc.want)
		}
	}
}

func TestDangerLevel(t *testing.T) {
	cases := []struct {
		aqi  Index
		want string
	}{
		{Index{Value: 50, Known: true}, "BAJO"},
		{Index{Value: 51, Known: true}, "MEDIO"},
		{Index{Value: 100, Known: true}, "MEDIO"},
		{Index{Value: 101, Known: true}, "ALTO"},
		{Index{Value: 200, Known: true}, "ALTO"},
		{Index{Value: 201, Known: true}, "CRITICO"},
		{Index{}, "DESCONOCIDO"},
	}
	for _, tc := range cases {
		if got := DangerLevel(tc.aqi); got != tc.want {
			t.Errorf("DangerLevel(%v) = %q, want %q", tc.aqi, got, tc.want)
		}
	}
}

func TestIndex_UnmarshalJSON(t *testing.T) {
	cases := []struct {
		name string
		in   string
		want Index
	}{
		{"number", `42`, Index{Value: 42, Known: true}},
		{"quoted number", `"42"`, Index{Value: 42, Known: true}},
		{"dash placeholder", `"-"`, Index{}},
		{"null", `null`, Index{}},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			var got Index
			if err := json.Unmarshal([]byte(tc.in), &got); err != nil {
				t.Fatalf("Unmarshal(%s) error = %v", tc.in, err)
			}
			if got != tc.want {
				t.Errorf("Unmarshal(%s) = %+v, want %+v", tc.in, got, tc.want)
			}
		})
	}
}

func TestIndex_String(t *testing.T) {
	if got := (Index{Value: 42, Known: true}).String(); got != "42" {
		t.Errorf("String() = %q, want 42", got)
	}
	if got := (Index{}).String(); got != "N/A" {
		t.Errorf("String() = %q, want N/A", got)
	}
}
