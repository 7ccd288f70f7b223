package river

import (
	"errors"
	"fmt"

	"github.com/bnema/wlturbo/wl"

	"github.com/zanderhavgaard/riverwm-utils/internal/logger"
	"github.com/zanderhavgaard/riverwm-utils/internal/protocols"
)

// Errors for required capabilities the compositor never advertised. These
// indicate an incompatible or misconfigured compositor and are fatal.
var (
	ErrNoStatusManager = errors.New("compositor does not advertise zriver_status_manager_v1")
	ErrNoControl       = errors.New("compositor does not advertise zriver_control_v1")
	ErrNoSeat          = errors.New("compositor did not advertise a wl_seat")
)

// Session owns the compositor connection and all entity state for one run.
// Outputs and the seat are populated during Connect and are read-only to
// everything except the status event handlers afterwards.
type Session struct {
	display  *wl.Display
	context  *wl.Context
	registry *wl.Registry

	statusManager *protocols.StatusManager
	control       *protocols.Control

	outputs []*Output
	seat    *Seat
}

// Connect establishes the session and converges remote state.
//
// Round-trip one flushes the global enumeration so every output, the seat,
// and both capabilities are bound. Round-trip two flushes the status
// subscriptions so every entity has received its first snapshot. Output
// subscriptions are established before the seat's: the seat's
// focused_output event must never name an output whose subscription does
// not exist yet.
func Connect(socket string) (*Session, error) {
	display, err := wl.Connect(socket)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to Wayland display: %w", err)
	}

	s := &Session{
		display: display,
		context: display.Context(),
	}

	registry := display.GetRegistry()
	s.registry = registry
	registry.AddGlobalHandler(s)
	registry.AddGlobalRemoveHandler(s)

	if err := display.Roundtrip(); err != nil {
		s.Close()
		return nil, fmt.Errorf("failed to enumerate globals: %w", err)
	}

	if s.statusManager == nil {
		s.Close()
		return nil, ErrNoStatusManager
	}
	if s.control == nil {
		s.Close()
		return nil, ErrNoControl
	}
	if s.seat == nil {
		s.Close()
		return nil, ErrNoSeat
	}

	// Subscribing all outputs, even ones we may not care about, is faster
	// than first waiting for river to advertise the seat's focused output.
	for _, output := range s.outputs {
		if err := output.subscribe(s.statusManager); err != nil {
			s.Close()
			return nil, fmt.Errorf("failed to subscribe output %d: %w", output.ID(), err)
		}
	}
	if err := s.seat.subscribe(s.statusManager, s.outputByID); err != nil {
		s.Close()
		return nil, fmt.Errorf("failed to subscribe seat: %w", err)
	}

	if err := display.Roundtrip(); err != nil {
		s.Close()
		return nil, fmt.Errorf("failed to converge status state: %w", err)
	}

	return s, nil
}

// HandleRegistryGlobal implements wl.RegistryGlobalHandler. It classifies
// each advertised global by interface name and binds the ones the session
// needs. This is the only place entities are created.
func (s *Session) HandleRegistryGlobal(event wl.RegistryGlobalEvent) {
	logger.Debug("global advertised", "interface", event.Interface, "name", event.Name, "version", event.Version)

	switch event.Interface {
	case protocols.StatusManagerInterface:
		manager := protocols.NewStatusManager(s.context)
		version := min(event.Version, protocols.StatusManagerVersion)
		if err := s.registry.Bind(event.Name, event.Interface, version, manager); err != nil {
			logger.Errorf("failed to bind %s: %v", event.Interface, err)
			return
		}
		s.statusManager = manager

	case protocols.ControlInterface:
		control := protocols.NewControl(s.context)
		version := min(event.Version, protocols.ControlVersion)
		if err := s.registry.Bind(event.Name, event.Interface, version, control); err != nil {
			logger.Errorf("failed to bind %s: %v", event.Interface, err)
			return
		}
		s.control = control

	case "wl_output":
		id, err := s.registry.BindID(event.Name, event.Interface, event.Version)
		if err != nil {
			logger.Errorf("failed to bind wl_output: %v", err)
			return
		}
		proxy := &wl.Output{}
		proxy.SetContext(s.context)
		proxy.SetID(id)
		s.context.Register(proxy)
		s.outputs = append(s.outputs, NewOutput(proxy))

	case "wl_seat":
		// We only care about the first seat.
		if s.seat != nil {
			return
		}
		id, err := s.registry.BindID(event.Name, event.Interface, event.Version)
		if err != nil {
			logger.Errorf("failed to bind wl_seat: %v", err)
			return
		}
		proxy := wl.NewSeat(s.context)
		proxy.SetID(id)
		s.context.Register(proxy)
		s.seat = NewSeat(proxy)
	}
}

// HandleRegistryGlobalRemove implements wl.RegistryGlobalRemoveHandler.
// The output collection is append-only for the session's short lifetime;
// removal is only logged.
func (s *Session) HandleRegistryGlobalRemove(event wl.RegistryGlobalRemoveEvent) {
	logger.Debug("global removed", "name", event.Name)
}

// outputByID resolves a wl_output object ID to its tracked output by
// linear scan. Returns nil when the ID is unknown.
func (s *Session) outputByID(id uint32) *Output {
	for _, output := range s.outputs {
		if output.ID() == id {
			return output
		}
	}
	return nil
}

// Outputs returns the tracked outputs in discovery order.
func (s *Session) Outputs() []*Output {
	return s.outputs
}

// Seat returns the tracked seat.
func (s *Session) Seat() *Seat {
	return s.seat
}

// Runner returns a command runner bound to the session's control
// capability and seat.
func (s *Session) Runner() Runner {
	return &controlRunner{control: s.control, seat: s.seat.proxy}
}

// Roundtrip blocks until the compositor has processed every request sent
// so far and all resulting events have been dispatched.
func (s *Session) Roundtrip() error {
	return s.display.Roundtrip()
}

// Close releases every remote handle and closes the connection. Safe to
// call on a partially constructed session.
func (s *Session) Close() {
	if s.seat != nil {
		s.seat.destroy()
	}
	for _, output := range s.outputs {
		output.destroy()
	}
	if s.statusManager != nil {
		_ = s.statusManager.Destroy()
		s.statusManager = nil
	}
	if s.control != nil {
		_ = s.control.Destroy()
		s.control = nil
	}
	if s.context != nil {
		_ = s.context.Close()
		s.context = nil
	}
}
