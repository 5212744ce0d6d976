package starfield

import (
	"fmt"
	"reflect"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type MockResource1 struct {
	name string
}
type MockResource2 struct {
	name string
}

type counter struct {
	calls []string
}

func TestApp_addResources(t *testing.T) {
	app := newApp()

	resource1 := &MockResource1{name: "Resource1"}
	app.addResources(resource1)
	assert.Contains(t, app.resources, reflect.TypeOf(resource1).Elem())

	require.PanicsWithValue(t, fmt.Sprintf("%s is already in resources", reflect.TypeOf(resource1)), func() {
		app.addResources(resource1)
	})

	resource2 := &MockResource2{name: "Resource2"}
	app.addResources(resource2)
	assert.Contains(t, app.resources, reflect.TypeOf(resource2).Elem())

	got, ok := Resource[MockResource2](app)
	require.True(t, ok)
	assert.Same(t, resource2, got)
}

func TestApp_addResourcesRejectsValues(t *testing.T) {
	app := newApp()
	assert.Panics(t, func() { app.addResources(MockResource1{}) })
}

func TestApp_StepRunsStagesInOrder(t *testing.T) {
	app := newApp()
	c := &counter{}
	app.addResources(c)

	record := func(name string) func(*counter) {
		return func(c *counter) { c.calls = append(c.calls, name) }
	}
	app.UseSystem(System(record("render")).InStage(Render))
	app.UseSystem(System(record("update")))
	app.UseSystem(System(record("prelude")).InStage(Prelude))
	app.UseSystem(System(record("update2")).InStage(Update))

	app.Step()

	assert.Equal(t, []string{"prelude", "update", "update2", "render"}, c.calls)
	assert.Equal(t, uint64(1), app.Frame())
}

func TestApp_UseStage(t *testing.T) {
	app := newApp()
	c := &counter{}
	app.addResources(c)

	custom := Stage{Name: "Custom"}
	app.UseStage(custom, AfterStage(Update))
	app.UseSystem(System(func(c *counter) { c.calls = append(c.calls, "post") }).InStage(PostUpdate))
	app.UseSystem(System(func(c *counter) { c.calls = append(c.calls, "custom") }).InStage(custom))
	app.UseSystem(System(func(c *counter) { c.calls = append(c.calls, "update") }).InStage(Update))

	app.Step()
	assert.Equal(t, []string{"update", "custom", "post"}, c.calls)

	assert.Panics(t, func() { app.UseStage(Stage{Name: "X"}, BeforeStage(Stage{Name: "missing"})) })
	assert.Panics(t, func() { app.UseSystem(System(func() {}).InStage(Stage{Name: "missing"})) })
}

func TestApp_UnresolvedDependencyPanics(t *testing.T) {
	app := newApp()
	app.UseSystem(System(func(*MockResource1) {}))
	assert.Panics(t, app.Step)
}

func TestApp_CommandsFlushAtStageEnd(t *testing.T) {
	type marker struct{ n int }

	app := newApp()
	seen := -1
	app.UseSystem(System(func(cmd *Commands) {
		cmd.AddEntity(marker{n: 1})
		// Still buffered inside the same stage.
		seen = MakeQuery1[marker](cmd).Count()
	}).InStage(PreUpdate))

	counts := []int{}
	app.UseSystem(System(func(cmd *Commands) {
		counts = append(counts, MakeQuery1[marker](cmd).Count())
	}).InStage(Update))

	app.Step()
	assert.Equal(t, 0, seen)
	assert.Equal(t, []int{1}, counts)

	app.Step()
	assert.Equal(t, []int{1, 2}, counts)
}

func TestApp_RemoveEntity(t *testing.T) {
	type marker struct{ n int }

	app := newApp()
	cmd := app.Commands()
	eid := cmd.AddEntity(marker{n: 7})
	app.FlushCommands()
	require.True(t, app.ecs.hasEntity(eid))

	cmd.RemoveEntity(eid)
	app.FlushCommands()
	assert.False(t, app.ecs.hasEntity(eid))
	assert.Equal(t, 0, MakeQuery1[marker](cmd).Count())
}

func TestApp_RunStopsOnExit(t *testing.T) {
	app := newApp()
	app.UseSystem(System(func(cmd *Commands) {
		if cmd.app.Frame() == 4 {
			cmd.Exit()
		}
	}))

	app.Run()
	assert.Equal(t, uint64(5), app.Frame())
	assert.True(t, app.Exiting())
}

func TestApp_ShutdownRunsExitSystems(t *testing.T) {
	app := newApp()
	released := 0
	app.UseSystem(System(func(cmd *Commands) {
		if cmd.Exiting() {
			released++
		}
	}).InStage(Finale))

	for i := 0; i < 3; i++ {
		app.Step()
	}
	require.Equal(t, 0, released)

	app.Shutdown()
	assert.Equal(t, 1, released)
	assert.Equal(t, uint64(4), app.Frame())

	// Already exiting: no second teardown frame.
	app.Shutdown()
	assert.Equal(t, 1, released)
	assert.Equal(t, uint64(4), app.Frame())
}
