package api

import (
	"github.com/sarchlab/akita/v4/sim"
	"github.com/sarchlab/mvprune/core"
)

// DriverBuilder creates a new instance of Driver.
type DriverBuilder struct {
	engine  sim.Engine
	freq    sim.Freq
	tracker *core.Tracker
}

// WithEngine sets the engine.
func (b DriverBuilder) WithEngine(engine sim.Engine) DriverBuilder {
	b.engine = engine
	return b
}

// WithFreq sets how fast the driver hands out functions.
func (b DriverBuilder) WithFreq(freq sim.Freq) DriverBuilder {
	b.freq = freq
	return b
}

// WithTracker sets the tracker that the driver feeds.
func (b DriverBuilder) WithTracker(tracker *core.Tracker) DriverBuilder {
	b.tracker = tracker
	return b
}

// Build create a driver.
func (b DriverBuilder) Build(name string) Driver {
	if b.engine == nil {
		b.engine = sim.NewSerialEngine()
	}
	if b.freq == 0 {
		b.freq = 1 * sim.GHz
	}
	if b.tracker == nil {
		b.tracker = core.NewBuilder().Build(name + ".Tracker")
	}

	d := &driverImpl{
		engine:  b.engine,
		tracker: b.tracker,
		session: core.NewSession(),
	}

	d.TickingComponent = sim.NewTickingComponent(name, b.engine, b.freq, d)

	return d
}

// AnalyzeUnits runs every function of the units through d and finishes the
// session.
func AnalyzeUnits(d Driver, units ...Unit) ([]string, error) {
	for _, u := range units {
		d.Submit(u.Functions()...)
	}

	if err := d.Run(); err != nil {
		return nil, err
	}

	return d.Finish(), nil
}
