package models

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSample_UnmarshalJSON(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		want    Sample
		wantErr bool
	}{
		{name: "four values", input: `[60,5000,200000,300000]`, want: Sample{60, 5000, 200000, 300000}},
		{name: "fractional", input: `[0.5,1234.5,0,0]`, want: Sample{0.5, 1234.5, 0, 0}},
		{name: "too few", input: `[60,5000]`, wantErr: true},
		{name: "too many", input: `[1,2,3,4,5]`, wantErr: true},
		{name: "not an array", input: `{"time":1}`, wantErr: true},
		{name: "strings", input: `["a","b","c","d"]`, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var s Sample
			err := json.Unmarshal([]byte(tt.input), &s)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, s)
		})
	}
}

func TestSample_Accessors(t *testing.T) {
	s := Sample{60, 5000, 200000, 300000}
	assert.Equal(t, 60.0, s.Time())
	assert.Equal(t, 5000.0, s.Depth())
	assert.Equal(t, 200000.0, s.Pressure())
	assert.Equal(t, 300000.0, s.Temperature())
}

func TestDive_JSONFieldNames(t *testing.T) {
	raw := `{
		"number": 12,
		"subsurface_number": 112,
		"date": "2024-06-01",
		"time": "09:30:00",
		"location": "Blue Hole",
		"maxdepth": 18500,
		"duration": 2700,
		"temperature": {"air": "24.0 C", "water": "19.0 C"},
		"tags": ["boat", "wall"],
		"Cylinders": [{"type": "12l"}],
		"samples": [[0,0,0,0],[60,5000,200000,293150]],
		"events": [{"name":"gaschange","value":"21","type":"25","time":"0:10"}],
		"divecomputers": {"model": "Perdix", "deviceid": "abc", "diveid": "def"}
	}`

	var d Dive
	require.NoError(t, json.Unmarshal([]byte(raw), &d))

	assert.Equal(t, 12, d.Number)
	assert.Equal(t, 112, d.SubsurfaceNumber)
	assert.Equal(t, "Blue Hole", d.Location)
	assert.Equal(t, 18500, d.MaxDepth)
	assert.Equal(t, "19.0 C", d.Temperature.Water)
	assert.Equal(t, []string{"boat", "wall"}, d.Tags)
	assert.JSONEq(t, `[{"type": "12l"}]`, string(d.Cylinders))
	assert.Nil(t, d.Weights)
	require.Len(t, d.Samples, 2)
	assert.Equal(t, 293150.0, d.Samples[1].Temperature())
	assert.Equal(t, "Perdix", d.DiveComputers.Model)
	assert.InDelta(t, 18.5, d.MaxDepthMeters(), 1e-9)
}

func TestDive_StartAndEndTime(t *testing.T) {
	d := Dive{Date: "2024-06-01", Time: "09:30:00", Duration: 2700}

	start, err := d.StartTime()
	require.NoError(t, err)
	assert.Equal(t, time.Date(2024, 6, 1, 9, 30, 0, 0, time.Local), start)

	end, err := d.EndTime()
	require.NoError(t, err)
	assert.Equal(t, 45*time.Minute, end.Sub(start))
}

func TestDive_StartTime_Invalid(t *testing.T) {
	d := Dive{Date: "yesterday", Time: "morning"}
	_, err := d.StartTime()
	assert.Error(t, err)

	_, err = d.EndTime()
	assert.Error(t, err)
}

func TestDive_MarshalKeepsCloudRecord(t *testing.T) {
	record := `{"number":4,"location":"Reef","coordinates":{"lat":27.9,"lon":34.3},"photos":["a.jpg"],` +
		`"samples":[[0,0,0,0]]}`

	var trips []Trip
	require.NoError(t, json.Unmarshal([]byte(`[{"name":"Red Sea","dives":[`+record+`]}]`), &trips))
	require.Len(t, trips[0].Dives, 1)

	d := trips[0].Dives[0]
	assert.Equal(t, 4, d.Number)
	assert.Equal(t, "Reef", d.Location)

	out, err := json.Marshal(d)
	require.NoError(t, err)
	assert.JSONEq(t, record, string(out))

	var keys map[string]json.RawMessage
	require.NoError(t, json.Unmarshal(out, &keys))
	assert.Len(t, keys, 5, "fields the cloud did not send must not appear")

	// снимок поездок переживает повторную сериализацию
	cached, err := json.Marshal(trips)
	require.NoError(t, err)
	var again []Trip
	require.NoError(t, json.Unmarshal(cached, &again))
	out, err = json.Marshal(&again[0].Dives[0])
	require.NoError(t, err)
	assert.JSONEq(t, record, string(out))
}

func TestDive_MarshalWithoutRecord(t *testing.T) {
	d := Dive{Number: 1, Location: "<Reef> & Co"}

	out, err := d.MarshalJSON()
	require.NoError(t, err)
	assert.Contains(t, string(out), `"location":"<Reef> & Co"`)
	assert.Contains(t, string(out), `"maxdepth":0`)
	assert.NotContains(t, string(out), "Raw")
}

func TestDive_UnmarshalJSON_NullAndErrors(t *testing.T) {
	d := Dive{Number: 9}
	require.NoError(t, json.Unmarshal([]byte(`null`), &d))
	assert.Equal(t, 9, d.Number)

	var bad Dive
	assert.Error(t, json.Unmarshal([]byte(`{"samples":[[1,2]]}`), &bad))
	assert.Nil(t, bad.Raw)
}
