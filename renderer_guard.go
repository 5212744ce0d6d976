package starfield

import (
	"fmt"
)

// RendererTag records which renderer owns the surface. A surface can only
// be presented by one renderer per frame.
type RendererTag struct {
	Name string
}

// ensureSingleRenderer claims the surface for name. Installing a second,
// different renderer panics.
func ensureSingleRenderer(app *App, name string) {
	if tag, ok := Resource[RendererTag](app); ok {
		if tag.Name != name {
			app.Logger().Errorf("multiple renderers installed: %s and %s", tag.Name, name)
			panic(fmt.Sprintf("multiple renderers installed: %s and %s", tag.Name, name))
		}
		return
	}
	app.addResources(&RendererTag{Name: name})
}
