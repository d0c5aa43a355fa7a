// Package api defines the driver that feeds a host's functions to the clone
// tracker, one function per invocation.
package api

import (
	"log/slog"

	"github.com/sarchlab/akita/v4/sim"
	"github.com/sarchlab/mvprune/core"
)

// Driver runs the clone analysis over the functions of a compilation
// session.
type Driver interface {
	// Analyze runs the analysis for one function immediately. It returns the
	// family verdict if this function completed its family.
	Analyze(fn Function) *core.FamilyVerdict

	// Submit queues functions to be analyzed by Run, in the given order.
	Submit(fns ...Function)

	// Run analyzes all the queued functions, one per tick.
	Run() error

	// Verdicts returns the family verdicts reached by Run so far.
	Verdicts() []*core.FamilyVerdict

	// Finish ends the session and returns the base names of the families
	// that never got a second variant.
	Finish() []string

	// Session returns the clone groups of the current session.
	Session() *core.Session

	// Tracker returns the tracker the driver feeds.
	Tracker() *core.Tracker
}

type driverImpl struct {
	*sim.TickingComponent

	engine  sim.Engine
	tracker *core.Tracker
	session *core.Session

	queue    []Function
	verdicts []*core.FamilyVerdict
}

// Tick analyzes the next queued function.
func (d *driverImpl) Tick() (madeProgress bool) {
	if len(d.queue) == 0 {
		return false
	}

	fn := d.queue[0]
	d.queue = d.queue[1:]

	if fv := d.Analyze(fn); fv != nil {
		d.verdicts = append(d.verdicts, fv)
	}

	return true
}

func (d *driverImpl) Analyze(fn Function) *core.FamilyVerdict {
	if fn == nil || fn.External() {
		return nil
	}

	name := fn.Name()
	c, ok := d.tracker.Classify(name, fn.HasCloneMarker())
	if !ok {
		core.Trace("Skipping function", "driver", d.Name(), "function", name)
		return nil
	}

	v := &core.Variant{
		Classification: c,
		Name:           name,
		Stmts:          core.Collect(fn.Blocks()),
	}

	return d.tracker.Add(d.session, v)
}

func (d *driverImpl) Submit(fns ...Function) {
	d.queue = append(d.queue, fns...)
}

// Run runs all the queued functions through the engine.
func (d *driverImpl) Run() error {
	d.TickNow()

	return d.engine.Run()
}

func (d *driverImpl) Finish() []string {
	dropped := d.tracker.Finish(d.session)
	if len(dropped) > 0 {
		slog.Debug("Session finished with unpaired clones",
			"driver", d.Name(), "families", dropped)
	}

	d.session = core.NewSession()

	return dropped
}

func (d *driverImpl) Session() *core.Session {
	return d.session
}

func (d *driverImpl) Tracker() *core.Tracker {
	return d.tracker
}

func (d *driverImpl) Verdicts() []*core.FamilyVerdict {
	return d.verdicts
}
