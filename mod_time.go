package starfield

import (
	"time"
)

// Time advances once per frame. Elapsed is the time since the app started
// and drives the galaxy spin.
type Time struct {
	Start   time.Time
	Now     time.Time
	Dt      time.Duration
	Elapsed time.Duration

	clock func() time.Time
}

// ElapsedSeconds is Elapsed in the unit the shaders take.
func (t *Time) ElapsedSeconds() float32 {
	return float32(t.Elapsed.Seconds())
}

type TimeModule struct {
	// Clock replaces time.Now, mostly for tests.
	Clock func() time.Time
}

func (mod TimeModule) Install(app *App, cmd *Commands) {
	clock := mod.Clock
	if clock == nil {
		clock = time.Now
	}
	now := clock()
	cmd.AddResources(&Time{
		Start: now,
		Now:   now,
		clock: clock,
	})
	app.UseSystem(
		System(timeSystem).
			InStage(Prelude),
	)
}

func timeSystem(t *Time) {
	now := t.clock()

	t.Dt = now.Sub(t.Now)
	t.Now = now
	t.Elapsed = now.Sub(t.Start)
}
