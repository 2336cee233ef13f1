package cli

import (
	"context"
	"fmt"
	"time"

	"github.com/iudanet/divelog/internal/client/data"
	"github.com/iudanet/divelog/internal/l10n"
	"github.com/iudanet/divelog/internal/models"
	"github.com/iudanet/divelog/internal/profile"
)

func (c *Cli) runTrips(ctx context.Context) error {
	trips, err := c.trips(ctx)
	if err != nil {
		return err
	}

	if len(trips) == 0 {
		c.io.Println(c.text("no-trips", nil))
		return nil
	}
	for i, trip := range data.NewestFirst(trips) {
		c.io.Println(c.text("trip-line", l10n.Args{"index": i + 1, "name": trip.Name, "dives": len(trip.Dives)}))
	}
	return nil
}

// runDives печатает погружения всех поездок или одной, по номеру из списка trips
func (c *Cli) runDives(ctx context.Context, args []string) error {
	trips, err := c.trips(ctx)
	if err != nil {
		return err
	}
	trips = data.NewestFirst(trips)

	if len(args) > 0 {
		index, err := numberArg(args, "trip number")
		if err != nil {
			return err
		}
		if index > len(trips) {
			c.io.Println(c.text("trip-not-found", l10n.Args{"index": index}))
			return fmt.Errorf("trip %d: %w", index, ErrNotFound)
		}
		trips = trips[index-1 : index]
	}

	if len(trips) == 0 {
		c.io.Println(c.text("no-trips", nil))
		return nil
	}
	for i, trip := range trips {
		if i > 0 {
			c.io.Println()
		}
		c.io.Println(trip.Name)
		for _, dive := range trip.Dives {
			c.io.Println("  " + c.text("dive-line", l10n.Args{"number": dive.Number, "date": dive.Date, "location": dive.Location}))
		}
	}
	return nil
}

func (c *Cli) runShow(ctx context.Context, args []string) error {
	trip, dive, err := c.findDive(ctx, args)
	if err != nil {
		return err
	}
	c.renderDive(trip.Name, dive)
	return nil
}

func (c *Cli) findDive(ctx context.Context, args []string) (*models.Trip, *models.Dive, error) {
	number, err := numberArg(args, "dive number")
	if err != nil {
		return nil, nil, err
	}

	trips, err := c.trips(ctx)
	if err != nil {
		return nil, nil, err
	}

	trip, dive, ok := data.FindDive(trips, number)
	if !ok {
		c.io.Println(c.text("dive-not-found", l10n.Args{"number": number}))
		return nil, nil, fmt.Errorf("dive %d: %w", number, ErrNotFound)
	}
	return trip, dive, nil
}

// renderDive печатает сведения о погружении и его профиль. Пустое имя поездки
// используется для погружений, открытых по ссылке.
func (c *Cli) renderDive(tripName string, d *models.Dive) {
	if tripName != "" {
		c.io.Println(c.text("dive-title", l10n.Args{"trip": tripName, "number": d.Number, "location": d.Location}))
	} else {
		c.io.Println(c.text("dive-line", l10n.Args{"number": d.Number, "date": d.Date, "location": d.Location}))
	}
	c.io.Println(c.text("dive-date", l10n.Args{"date": d.Date}))

	startTime, endTime := d.Time, "?"
	if start, err := d.StartTime(); err == nil {
		end := start.Add(time.Duration(d.Duration) * time.Second)
		startTime, endTime = start.Format("15:04"), end.Format("15:04")
	}
	duration := d.DiveDuration
	if duration == "" {
		duration = (time.Duration(d.Duration) * time.Second).String()
	}
	c.io.Println(c.text("dive-time", l10n.Args{"startTime": startTime, "endTime": endTime, "duration": duration}))
	c.io.Println(c.text("dive-max-depth", l10n.Args{"depth": d.MaxDepthMeters()}))
	if d.Buddy != "" {
		c.io.Println(c.text("dive-buddy", l10n.Args{"buddy": d.Buddy}))
	}

	c.renderProfile(profile.Build(d))
}

func (c *Cli) renderProfile(p profile.Profile) {
	if len(p.SpeedAndDepth) > 0 {
		c.io.Println()
		c.io.Println(c.text("graph-header", nil))
		for _, pt := range p.SpeedAndDepth {
			c.io.Println(c.text("graph-row", l10n.Args{
				"time":  profile.FormatClock(pt.Minutes),
				"depth": pt.Depth,
				"speed": pt.Speed,
				"class": c.text("speed-"+string(pt.Class), nil),
			}))
		}
	}

	c.renderSeries("graph-temperature-header", p.Temperatures)
	c.renderSeries("graph-tank-pressure-header", p.TankPressures)
}

func (c *Cli) renderSeries(header string, points []profile.Point) {
	if len(points) == 0 {
		return
	}
	c.io.Println()
	c.io.Println(c.text(header, nil))
	for _, pt := range points {
		c.io.Println(c.text("graph-value-row", l10n.Args{"time": profile.FormatClock(pt.Minutes), "value": pt.Value}))
	}
}
