package river

import (
	"github.com/bnema/wlturbo/wl"

	"github.com/zanderhavgaard/riverwm-utils/internal/protocols"
)

// Seat tracks one wl_seat. Only the first seat the compositor advertises is
// tracked per session.
type Seat struct {
	proxy  *wl.Seat
	status *protocols.SeatStatus
	lookup func(uint32) *Output

	// FocusedOutput points at the output that currently has seat focus.
	// It is nil until the seat status subscription has converged.
	FocusedOutput *Output
}

// NewSeat wraps a bound wl_seat proxy.
func NewSeat(proxy *wl.Seat) *Seat {
	return &Seat{proxy: proxy}
}

// ID returns the seat's Wayland object ID.
func (s *Seat) ID() uint32 {
	return s.proxy.ID()
}

// subscribe asks the status manager to push focus state for this seat.
// The lookup resolves a wl_output object ID to a tracked output; the
// back-reference is a lookup, never an ownership edge.
func (s *Seat) subscribe(manager *protocols.StatusManager, lookup func(uint32) *Output) error {
	status, err := manager.GetSeatStatus(s.proxy)
	if err != nil {
		return err
	}
	s.status = status
	s.lookup = lookup

	status.SetFocusedOutputHandler(s.handleFocusedOutput)
	return nil
}

func (s *Seat) handleFocusedOutput(outputID uint32) {
	s.FocusedOutput = s.lookup(outputID)
}

// destroy releases the status subscription.
func (s *Seat) destroy() {
	if s.status != nil {
		_ = s.status.Destroy()
		s.status = nil
	}
}
