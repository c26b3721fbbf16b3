package gamepad

// Handlers binds semantic actions to callbacks. Any nil callback is a
// silent no-op.
type Handlers struct {
	A      func()
	B      func()
	X      func()
	Y      func()
	Select func()
	Start  func()
	Up     func()
	Down   func()
	Left   func()
	Right  func()
}

// Router maps fired edges to handler callbacks. It is pure dispatch:
// the button table is fixed and the router holds no other state.
type Router struct {
	handlers Handlers
}

func NewRouter(handlers Handlers) *Router {
	return &Router{handlers: handlers}
}

// Dispatch invokes at most one callback per fired edge, synchronously,
// in button-index order followed by up/down/left/right.
func (r *Router) Dispatch(edges PadEdges) {
	for _, index := range edges.Buttons {
		call(r.buttonHandler(index))
	}
	if edges.Up {
		call(r.handlers.Up)
	}
	if edges.Down {
		call(r.handlers.Down)
	}
	if edges.Left {
		call(r.handlers.Left)
	}
	if edges.Right {
		call(r.handlers.Right)
	}
}

func (r *Router) buttonHandler(index int) func() {
	switch index {
	case ButtonA:
		return r.handlers.A
	case ButtonB:
		return r.handlers.B
	case ButtonX:
		return r.handlers.X
	case ButtonY:
		return r.handlers.Y
	case ButtonSelect:
		return r.handlers.Select
	case ButtonStart:
		return r.handlers.Start
	default:
		return nil
	}
}

func call(fn func()) {
	if fn != nil {
		fn()
	}
}
