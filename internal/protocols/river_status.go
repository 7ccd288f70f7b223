// Package protocols provides typed proxies for the river Wayland protocols
// (river-status-unstable-v1 and river-control-unstable-v1) on top of wlturbo.
package protocols

import (
	"github.com/bnema/wlturbo/wl"
)

// Protocol interface names
const (
	StatusManagerInterface = "zriver_status_manager_v1"
	OutputStatusInterface  = "zriver_output_status_v1"
	SeatStatusInterface    = "zriver_seat_status_v1"
)

// Highest protocol versions these bindings understand. The registry bind
// uses the lower of these and what the compositor advertises.
const (
	StatusManagerVersion = 4
	SeatStatusVersion    = 1
)

// StatusManager is the zriver_status_manager_v1 global. It is the factory
// for per-output and per-seat status subscriptions.
type StatusManager struct {
	wl.BaseProxy
}

// NewStatusManager creates a status manager proxy ready to be bound.
func NewStatusManager(ctx *wl.Context) *StatusManager {
	m := &StatusManager{}
	m.SetContext(ctx)
	return m
}

// GetOutputStatus asks river to start pushing status events for one output.
func (m *StatusManager) GetOutputStatus(output *wl.Output) (*OutputStatus, error) {
	status := NewOutputStatus(m.Context())
	status.SetID(m.Context().AllocateID())
	m.Context().Register(status)

	// Opcode 1: get_river_output_status(id, output)
	const opcode = 1
	if err := m.Context().SendRequest(m, opcode, status, output); err != nil {
		m.Context().Unregister(status)
		return nil, err
	}
	return status, nil
}

// GetSeatStatus asks river to start pushing status events for one seat.
func (m *StatusManager) GetSeatStatus(seat *wl.Seat) (*SeatStatus, error) {
	status := NewSeatStatus(m.Context())
	status.SetID(m.Context().AllocateID())
	m.Context().Register(status)

	// Opcode 2: get_river_seat_status(id, seat)
	const opcode = 2
	if err := m.Context().SendRequest(m, opcode, status, seat); err != nil {
		m.Context().Unregister(status)
		return nil, err
	}
	return status, nil
}

// Destroy destroys the status manager.
func (m *StatusManager) Destroy() error {
	// Opcode 0: destroy
	const opcode = 0
	err := m.Context().SendRequest(m, opcode)
	m.Context().Unregister(m)
	return err
}

// Dispatch handles incoming events. zriver_status_manager_v1 has none.
func (m *StatusManager) Dispatch(_ *wl.Event) {}

// OutputStatus is a zriver_output_status_v1 object delivering tag state
// for a single output.
type OutputStatus struct {
	wl.BaseProxy
	focusedTagsHandler     func(uint32)
	viewTagsHandler        func([]byte)
	urgentTagsHandler      func(uint32)
	layoutNameHandler      func(string)
	layoutNameClearHandler func()
}

// NewOutputStatus creates a new output status proxy.
func NewOutputStatus(ctx *wl.Context) *OutputStatus {
	s := &OutputStatus{}
	s.SetContext(ctx)
	return s
}

// SetFocusedTagsHandler sets the handler for focused_tags events.
func (s *OutputStatus) SetFocusedTagsHandler(handler func(uint32)) {
	s.focusedTagsHandler = handler
}

// SetViewTagsHandler sets the handler for view_tags events. The handler
// receives the raw array payload: one little-endian uint32 tag bitmap per
// view on the output.
func (s *OutputStatus) SetViewTagsHandler(handler func([]byte)) {
	s.viewTagsHandler = handler
}

// SetUrgentTagsHandler sets the handler for urgent_tags events (since v2).
func (s *OutputStatus) SetUrgentTagsHandler(handler func(uint32)) {
	s.urgentTagsHandler = handler
}

// SetLayoutNameHandler sets the handler for layout_name events (since v4).
func (s *OutputStatus) SetLayoutNameHandler(handler func(string)) {
	s.layoutNameHandler = handler
}

// SetLayoutNameClearHandler sets the handler for layout_name_clear events (since v4).
func (s *OutputStatus) SetLayoutNameClearHandler(handler func()) {
	s.layoutNameClearHandler = handler
}

// Destroy stops the subscription and releases the object.
func (s *OutputStatus) Destroy() error {
	// Opcode 0: destroy
	const opcode = 0
	err := s.Context().SendRequest(s, opcode)
	s.Context().Unregister(s)
	return err
}

// Dispatch handles incoming events.
func (s *OutputStatus) Dispatch(event *wl.Event) {
	switch event.Opcode {
	case 0: // focused_tags
		if s.focusedTagsHandler != nil {
			s.focusedTagsHandler(event.Uint32())
		}
	case 1: // view_tags
		if s.viewTagsHandler != nil {
			s.viewTagsHandler(event.Array())
		}
	case 2: // urgent_tags
		if s.urgentTagsHandler != nil {
			s.urgentTagsHandler(event.Uint32())
		}
	case 3: // layout_name
		if s.layoutNameHandler != nil {
			s.layoutNameHandler(event.String())
		}
	case 4: // layout_name_clear
		if s.layoutNameClearHandler != nil {
			s.layoutNameClearHandler()
		}
	}
}

// SeatStatus is a zriver_seat_status_v1 object delivering focus state for a
// single seat.
type SeatStatus struct {
	wl.BaseProxy
	focusedOutputHandler   func(uint32)
	unfocusedOutputHandler func(uint32)
}

// NewSeatStatus creates a new seat status proxy.
func NewSeatStatus(ctx *wl.Context) *SeatStatus {
	s := &SeatStatus{}
	s.SetContext(ctx)
	return s
}

// SetFocusedOutputHandler sets the handler for focused_output events. The
// handler receives the object ID of the wl_output that gained seat focus.
func (s *SeatStatus) SetFocusedOutputHandler(handler func(uint32)) {
	s.focusedOutputHandler = handler
}

// SetUnfocusedOutputHandler sets the handler for unfocused_output events.
func (s *SeatStatus) SetUnfocusedOutputHandler(handler func(uint32)) {
	s.unfocusedOutputHandler = handler
}

// Destroy stops the subscription and releases the object.
func (s *SeatStatus) Destroy() error {
	// Opcode 0: destroy
	const opcode = 0
	err := s.Context().SendRequest(s, opcode)
	s.Context().Unregister(s)
	return err
}

// Dispatch handles incoming events.
func (s *SeatStatus) Dispatch(event *wl.Event) {
	switch event.Opcode {
	case 0: // focused_output
		if s.focusedOutputHandler != nil {
			s.focusedOutputHandler(event.Uint32())
		}
	case 1: // unfocused_output
		if s.unfocusedOutputHandler != nil {
			s.unfocusedOutputHandler(event.Uint32())
		}
	}
}
