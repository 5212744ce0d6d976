package starfield

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

type MockModule struct {
	installed bool
	order     *[]string
	name      string
}

func (m *MockModule) Install(app *App, commands *Commands) {
	m.installed = true
	if m.order != nil {
		*m.order = append(*m.order, m.name)
	}
}

type spawningModule struct{}

func (spawningModule) Install(app *App, cmd *Commands) {
	cmd.AddEntity(CameraComponent{Active: true})
}

func TestAppBuilder_InstallsModulesInOrder(t *testing.T) {
	var order []string
	m1 := &MockModule{order: &order, name: "first"}
	m2 := &MockModule{order: &order, name: "second"}

	NewAppBuilder().UseModule(m1).UseModule(m2).Build()

	assert.True(t, m1.installed)
	assert.True(t, m2.installed)
	assert.Equal(t, []string{"first", "second"}, order)
}

func TestAppBuilder_BuildFlushesSpawnedEntities(t *testing.T) {
	app := NewAppBuilder().UseModule(spawningModule{}).Build()

	assert.Equal(t, 1, MakeQuery1[CameraComponent](app.Commands()).Count())
}

func TestAppBuilder_DefaultStages(t *testing.T) {
	app := NewAppBuilder().Build()

	var names []string
	for _, s := range app.stages {
		names = append(names, s.Name)
	}
	assert.Equal(t, []string{"Prelude", "PreUpdate", "Update", "PostUpdate", "PreRender", "Render", "PostRender", "Finale"}, names)
}
