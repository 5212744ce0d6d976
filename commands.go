package starfield

// Commands is the handle systems use to change the world. Entity changes are
// buffered until the end of the current stage.
type Commands struct {
	app *App
}

func (cmd *Commands) AddResources(resources ...any) *Commands {
	cmd.app.addResources(resources...)
	return cmd
}

func (cmd *Commands) AddEntity(components ...any) EntityId {
	eid := cmd.app.ecs.nextEntityId()
	cmd.app.pendingAdditions = append(cmd.app.pendingAdditions, pendingAdd{
		eid:        eid,
		components: components,
	})
	return eid
}

func (cmd *Commands) RemoveEntity(entityId EntityId) {
	cmd.app.pendingRemovals = append(cmd.app.pendingRemovals, entityId)
}

// Exit stops App.Run after the current frame.
func (cmd *Commands) Exit() {
	cmd.app.exitRequested = true
}

func (cmd *Commands) Logger() Logger {
	return cmd.app.Logger()
}

// Exiting reports whether Exit was called this run.
func (cmd *Commands) Exiting() bool {
	return cmd.app.exitRequested
}
