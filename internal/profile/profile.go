// Package profile computes the per-sample series a dive is displayed with:
// depth and vertical speed, water temperature and tank pressure.
package profile

import (
	"fmt"
	"math"

	"github.com/iudanet/divelog/internal/models"
)

// SpeedClass is the safety category of a vertical speed.
type SpeedClass string

const (
	SpeedOK      SpeedClass = "ok"
	SpeedWarning SpeedClass = "warning"
	SpeedError   SpeedClass = "error"
)

// Пороговые значения скоростей в м/мин
const (
	descentOK        = -20.0
	descentError     = -30.0
	shallowDepth     = 6.0
	shallowAscentMax = 6.0
	ascentOK         = 12.0
	ascentError      = 17.0
)

const (
	zeroCelsiusMilliKelvin = 273150
	milli                  = 1000
)

// SpeedDepthPoint is one point of the depth and speed series.
type SpeedDepthPoint struct {
	Minutes float64    `json:"time"`  // время от начала погружения, мин
	Depth   float64    `json:"depth"` // м
	Speed   float64    `json:"speed"` // м/мин, положительная при всплытии
	Class   SpeedClass `json:"class"`
}

// Point is one point of a single-valued series.
type Point struct {
	Minutes float64 `json:"time"`
	Value   float64 `json:"value"`
}

// Profile bundles every series of a dive.
type Profile struct {
	SpeedAndDepth []SpeedDepthPoint `json:"speed_and_depth"`
	Temperatures  []Point           `json:"temperature"`
	TankPressures []Point           `json:"tank_pressure"`
}

// Build computes all series for a dive.
func Build(d *models.Dive) Profile {
	return Profile{
		SpeedAndDepth: SpeedAndDepth(d.Samples),
		Temperatures:  Temperatures(d.Samples),
		TankPressures: TankPressures(d.Samples),
	}
}

// SpeedAndDepth converts samples to minutes and metres and derives the vertical
// speed between consecutive samples. Ascending speeds are positive. The first
// point and points following a zero time interval have speed 0.
func SpeedAndDepth(samples []models.Sample) []SpeedDepthPoint {
	if len(samples) == 0 {
		return nil
	}

	points := make([]SpeedDepthPoint, 0, len(samples))
	points = append(points, SpeedDepthPoint{
		Minutes: samples[0].Time() / 60,
		Depth:   samples[0].Depth() / milli,
	})

	for i := 1; i < len(samples); i++ {
		interval := (samples[i].Time() - samples[i-1].Time()) / 60
		diff := (samples[i].Depth() - samples[i-1].Depth()) / milli

		var speed float64
		if interval != 0 {
			speed = -diff / interval
		}
		// избавляемся от -0 при нулевой разнице глубин
		if speed == 0 {
			speed = 0
		}

		points = append(points, SpeedDepthPoint{
			Minutes: samples[i].Time() / 60,
			Depth:   samples[i].Depth() / milli,
			Speed:   speed,
		})
	}

	for i := range points {
		points[i].Class = ClassifySpeed(points[i].Speed, points[i].Depth)
	}
	return points
}

// ClassifySpeed rates a vertical speed in m/min at the given depth in metres.
// Descents (negative speeds) are rated on speed alone; ascents shallower than
// 6 m must stay at or below 6 m/min.
func ClassifySpeed(speed, depth float64) SpeedClass {
	if speed < 0 {
		switch {
		case speed > descentOK:
			return SpeedOK
		case speed < descentError:
			return SpeedError
		default:
			return SpeedWarning
		}
	}

	switch {
	case depth < shallowDepth && speed > shallowAscentMax:
		return SpeedError
	case speed < ascentOK:
		return SpeedOK
	case speed > ascentError:
		return SpeedError
	default:
		return SpeedWarning
	}
}

// Temperatures returns the water temperature in °C for samples that carry one.
func Temperatures(samples []models.Sample) []Point {
	var out []Point
	for _, s := range samples {
		if s.Temperature() == 0 {
			continue
		}
		out = append(out, Point{
			Minutes: s.Time() / 60,
			Value:   (s.Temperature() - zeroCelsiusMilliKelvin) / milli,
		})
	}
	return out
}

// TankPressures returns the tank pressure in bar for samples that carry one.
func TankPressures(samples []models.Sample) []Point {
	var out []Point
	for _, s := range samples {
		if s.Pressure() == 0 {
			continue
		}
		out = append(out, Point{
			Minutes: s.Time() / 60,
			Value:   s.Pressure() / milli,
		})
	}
	return out
}

// FormatClock renders a time in minutes as mm:ss. Seconds are truncated.
func FormatClock(minutes float64) string {
	if math.IsNaN(minutes) || math.IsInf(minutes, 0) {
		return "--:--"
	}
	sign := ""
	if minutes < 0 {
		sign = "-"
		minutes = -minutes
	}
	whole := math.Floor(minutes)
	seconds := math.Floor((minutes - whole) * 60)
	return fmt.Sprintf("%s%02d:%02d", sign, int64(whole), int64(seconds))
}
