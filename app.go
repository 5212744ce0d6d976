package starfield

import (
	"fmt"
	"reflect"
	"runtime"
)

type systemFn any

// Module wires resources, entities and systems into an App.
type Module interface {
	Install(app *App, cmd *Commands)
}

// App owns the world, the resources and the staged system schedule. One call
// to Step runs every stage once; Run keeps stepping until a system asks to
// exit.
type App struct {
	stages    []Stage
	systems   map[string][]systemFn
	resources map[reflect.Type]any
	ecs       *Ecs

	exitRequested bool
	frame         uint64

	pendingAdditions []pendingAdd
	pendingRemovals  []EntityId
}

type pendingAdd struct {
	eid        EntityId
	components []any
}

func newApp() *App {
	ecs := MakeEcs()
	app := &App{
		stages:    defaultStages(),
		systems:   make(map[string][]systemFn),
		resources: make(map[reflect.Type]any),
		ecs:       &ecs,
	}
	for _, stage := range app.stages {
		app.systems[stage.Name] = make([]systemFn, 0)
	}
	return app
}

func (app *App) Commands() *Commands {
	return &Commands{
		app: app,
	}
}

// Frame is the number of completed Step calls.
func (app *App) Frame() uint64 {
	return app.frame
}

func (app *App) Exiting() bool {
	return app.exitRequested
}

func (app *App) Run() {
	app.FlushCommands()
	app.Logger().Infof("running with %d entities", app.ecs.entityCount())

	for !app.exitRequested {
		app.Step()
	}

	app.Logger().Infof("exit after %d frames", app.frame)
}

// Shutdown requests exit and, unless a system already did, runs one final
// frame so systems that release resources on exit get their turn.
func (app *App) Shutdown() {
	if app.exitRequested {
		return
	}
	app.exitRequested = true
	app.Step()
}

func (app *App) Step() {
	for _, stage := range app.stages {
		for _, system := range app.systems[stage.Name] {
			app.callSystem(system)
		}
		app.FlushCommands()
	}
	app.frame++
}

func (app *App) addResources(resources ...any) *App {
	for _, resource := range resources {
		resourceType := reflect.TypeOf(resource)
		if resourceType == nil || resourceType.Kind() != reflect.Pointer {
			panic(fmt.Sprintf("resource %v must be a pointer", resourceType))
		}
		if _, ok := app.resources[resourceType.Elem()]; ok {
			panic(fmt.Sprintf("%s is already in resources", resourceType))
		}

		app.resources[resourceType.Elem()] = resource
	}
	return app
}

// Resource returns the resource of type T registered on app.
func Resource[T any](app *App) (*T, bool) {
	r, ok := app.resources[reflect.TypeFor[T]()]
	if !ok {
		return nil, false
	}
	return r.(*T), true
}

var typeOfCommands = reflect.TypeOf(Commands{})

func (app *App) callSystem(system systemFn) {
	systemType := reflect.TypeOf(system)
	systemValue := reflect.ValueOf(system)

	args := make([]reflect.Value, systemType.NumIn())

	for i := 0; i < systemType.NumIn(); i++ {
		argType := systemType.In(i)
		if argType.Kind() != reflect.Pointer {
			app.unresolvedDependency(systemType, systemValue, argType)
		}
		underlyingType := argType.Elem()

		if underlyingType == typeOfCommands {
			args[i] = reflect.ValueOf(&Commands{app: app})
		} else if resource, argIsResource := app.resources[underlyingType]; argIsResource {
			args[i] = reflect.ValueOf(resource)
		} else {
			app.unresolvedDependency(systemType, systemValue, argType)
		}
	}
	systemValue.Call(args)
}

func (app *App) unresolvedDependency(systemType reflect.Type, systemValue reflect.Value, argType reflect.Type) {
	msg := fmt.Sprintf("Unable to resolve System dependency.\nSystem: %s\nSystem type: %s\nDependency: %s",
		runtime.FuncForPC(systemValue.Pointer()).Name(),
		fmt.Sprint(systemType),
		fmt.Sprint(argType),
	)
	app.Logger().Errorf("%s", msg)
	panic(msg)
}

func (app *App) FlushCommands() {
	if len(app.pendingAdditions) == 0 && len(app.pendingRemovals) == 0 {
		return
	}

	// Removals first so a same-frame add/remove pair does not resurrect the entity.
	for _, eid := range app.pendingRemovals {
		app.Logger().Debugf("removing entity %v", eid)
		app.ecs.removeEntity(eid)
	}
	app.pendingRemovals = app.pendingRemovals[:0]

	for _, add := range app.pendingAdditions {
		app.ecs.insertEntity(add.eid, add.components...)
	}
	app.pendingAdditions = app.pendingAdditions[:0]
}
