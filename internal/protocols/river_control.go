package protocols

import (
	"github.com/bnema/wlturbo/wl"
)

// Protocol interface names
const (
	ControlInterface         = "zriver_control_v1"
	CommandCallbackInterface = "zriver_command_callback_v1"
)

// ControlVersion is the protocol version these bindings understand.
const ControlVersion = 1

// Control is the zriver_control_v1 global: a sink for riverctl-style
// commands. Arguments accumulate one add_argument at a time and are
// executed and cleared by run_command.
type Control struct {
	wl.BaseProxy
}

// NewControl creates a control proxy ready to be bound.
func NewControl(ctx *wl.Context) *Control {
	c := &Control{}
	c.SetContext(ctx)
	return c
}

// AddArgument appends one token to the pending command.
func (c *Control) AddArgument(argument string) error {
	// Opcode 1: add_argument
	const opcode = 1
	return c.Context().SendRequest(c, opcode, argument)
}

// RunCommand executes the accumulated command on behalf of the seat and
// clears the pending argument list. The returned callback reports the
// command's outcome asynchronously.
func (c *Control) RunCommand(seat *wl.Seat) (*CommandCallback, error) {
	callback := NewCommandCallback(c.Context())
	callback.SetID(c.Context().AllocateID())
	c.Context().Register(callback)

	// Opcode 2: run_command(seat, callback)
	const opcode = 2
	if err := c.Context().SendRequest(c, opcode, seat, callback); err != nil {
		c.Context().Unregister(callback)
		return nil, err
	}
	return callback, nil
}

// Destroy destroys the control object.
func (c *Control) Destroy() error {
	// Opcode 0: destroy
	const opcode = 0
	err := c.Context().SendRequest(c, opcode)
	c.Context().Unregister(c)
	return err
}

// Dispatch handles incoming events. zriver_control_v1 has none.
func (c *Control) Dispatch(_ *wl.Event) {}

// CommandCallback is a zriver_command_callback_v1 object. The compositor
// sends exactly one success or failure event, after which the object is
// defunct.
type CommandCallback struct {
	wl.BaseProxy
	successHandler func(string)
	failureHandler func(string)
}

// NewCommandCallback creates a new command callback proxy.
func NewCommandCallback(ctx *wl.Context) *CommandCallback {
	cb := &CommandCallback{}
	cb.SetContext(ctx)
	return cb
}

// SetSuccessHandler sets the handler for the success event.
func (cb *CommandCallback) SetSuccessHandler(handler func(string)) {
	cb.successHandler = handler
}

// SetFailureHandler sets the handler for the failure event.
func (cb *CommandCallback) SetFailureHandler(handler func(string)) {
	cb.failureHandler = handler
}

// Dispatch handles incoming events.
func (cb *CommandCallback) Dispatch(event *wl.Event) {
	switch event.Opcode {
	case 0: // success
		if cb.successHandler != nil {
			cb.successHandler(event.String())
		}
		cb.Context().Unregister(cb)
	case 1: // failure
		if cb.failureHandler != nil {
			cb.failureHandler(event.String())
		}
		cb.Context().Unregister(cb)
	}
}
