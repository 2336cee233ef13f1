package models

import (
	"bytes"
	"encoding/json"
	"fmt"
	"time"
)

// Sample is one telemetry point as exported by the dive-log cloud:
// [time in s, depth in mm, tank pressure in mbar, temperature in mK].
// Zero pressure or temperature means the computer did not record a value.
type Sample [4]float64

// Time возвращает время от начала погружения в секундах
func (s Sample) Time() float64 { return s[0] }

// Depth возвращает глубину в миллиметрах
func (s Sample) Depth() float64 { return s[1] }

// Pressure возвращает давление в баллоне в миллибарах
func (s Sample) Pressure() float64 { return s[2] }

// Temperature возвращает температуру воды в милликельвинах
func (s Sample) Temperature() float64 { return s[3] }

// UnmarshalJSON requires exactly four numbers. encoding/json would otherwise
// drop extra elements and zero-fill missing ones without reporting it.
func (s *Sample) UnmarshalJSON(data []byte) error {
	var values []float64
	if err := json.Unmarshal(data, &values); err != nil {
		return fmt.Errorf("sample: %w", err)
	}
	if len(values) != len(s) {
		return fmt.Errorf("sample: expected %d values, got %d", len(s), len(values))
	}
	copy(s[:], values)
	return nil
}

// DiveEvent представляет событие погружения (смена газа, всплытие и т.д.)
type DiveEvent struct {
	Name  string `json:"name"`  // gaschange, surface, ...
	Value string `json:"value"` // значение события
	Type  string `json:"type"`  // тип события
	Time  string `json:"time"`  // время события в формате компьютера
}

// DiveComputer описывает компьютер, записавший погружение
type DiveComputer struct {
	Model    string `json:"model"`
	DeviceID string `json:"deviceid"`
	DiveID   string `json:"diveid"`
}

// Temperature содержит температуры воздуха и воды в текстовом виде
type Temperature struct {
	Air   string `json:"air"`
	Water string `json:"water"`
}

// Dive is a single dive record as served by the dive-log cloud. Field names
// follow the cloud export; this is the payload carried by share tokens.
type Dive struct {
	Number           int             `json:"number"`
	SubsurfaceNumber int             `json:"subsurface_number"`
	Date             string          `json:"date"` // YYYY-MM-DD
	Time             string          `json:"time"` // HH:MM:SS
	Location         string          `json:"location"`
	Rating           int             `json:"rating"`
	Visibility       int             `json:"visibility"`
	Current          int             `json:"current"`
	WaveSize         int             `json:"wavesize"`
	Surge            int             `json:"surge"`
	Chill            int             `json:"chill"`
	DiveDuration     string          `json:"dive_duration"` // человекочитаемая длительность
	Temperature      Temperature     `json:"temperature"`
	Buddy            string          `json:"buddy"`
	Divemaster       string          `json:"divemaster"`
	Suit             string          `json:"suit"`
	Tags             []string        `json:"tags"`
	Cylinders        json.RawMessage `json:"Cylinders,omitempty"` // формат не фиксирован, храним как есть
	Weights          json.RawMessage `json:"Weights,omitempty"`
	MaxDepth         int             `json:"maxdepth"` // мм
	Duration         int             `json:"duration"` // секунды
	Samples          []Sample        `json:"samples"`
	Events           []DiveEvent     `json:"events"`
	SAC              string          `json:"sac"` // на самом деле число
	OTU              string          `json:"otu"` // на самом деле число
	CNS              string          `json:"cns"` // на самом деле число
	DiveComputers    DiveComputer    `json:"divecomputers"`
	Notes            string          `json:"notes"`

	// Raw is the record this dive was decoded from, including fields the
	// struct does not declare. When set, MarshalJSON returns it unchanged.
	Raw json.RawMessage `json:"-"`
}

// diveFields has the fields of Dive without its JSON methods.
type diveFields Dive

// UnmarshalJSON decodes the declared fields and keeps a copy of data in Raw.
func (d *Dive) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	if bytes.Equal(data, []byte("null")) {
		return nil
	}

	var fields diveFields
	if err := json.Unmarshal(data, &fields); err != nil {
		return err
	}
	fields.Raw = append(json.RawMessage(nil), data...)
	*d = Dive(fields)
	return nil
}

// MarshalJSON returns Raw when the dive came from JSON, so re-encoding a
// fetched or cached dive neither drops unknown fields nor adds missing ones.
// Changes made to the declared fields after decoding are not reflected.
func (d Dive) MarshalJSON() ([]byte, error) {
	if len(d.Raw) > 0 {
		return d.Raw, nil
	}
	// HTML-символы экранирует вызывающий encoder, если ему это нужно
	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	if err := enc.Encode(diveFields(d)); err != nil {
		return nil, err
	}
	return bytes.TrimSuffix(buf.Bytes(), []byte("\n")), nil
}

// diveTimeLayout is the layout of Date and Time joined with 'T'.
const diveTimeLayout = "2006-01-02T15:04:05"

// StartTime parses Date and Time as a local wall-clock time.
func (d *Dive) StartTime() (time.Time, error) {
	t, err := time.ParseInLocation(diveTimeLayout, d.Date+"T"+d.Time, time.Local)
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid dive date/time %q %q: %w", d.Date, d.Time, err)
	}
	return t, nil
}

// EndTime is StartTime plus Duration.
func (d *Dive) EndTime() (time.Time, error) {
	start, err := d.StartTime()
	if err != nil {
		return time.Time{}, err
	}
	return start.Add(time.Duration(d.Duration) * time.Second), nil
}

// MaxDepthMeters returns MaxDepth converted from millimetres.
func (d *Dive) MaxDepthMeters() float64 {
	return float64(d.MaxDepth) / 1000
}

// Trip группирует погружения одной поездки
type Trip struct {
	Name  string `json:"name"`
	Dives []Dive `json:"dives"`
}
