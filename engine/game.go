package engine

// Game holds the callbacks the application drives. Only FnUpdate and
// FnRender are required.
type Game struct {
	State        interface{}
	FnInitialize Initialize
	FnUpdate     Update
	FnRender     Render
	FnOnResize   OnResize
	FnShutdown   Shutdown
}

type Initialize func(app *Application) error
type Update func(app *Application, deltaTime float64) error
type Render func(app *Application, deltaTime float64) error
type OnResize func(app *Application, width, height int) error
type Shutdown func(app *Application) error
