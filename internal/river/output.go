// Package river implements the one-shot compositor session: global
// discovery, per-output and per-seat status tracking, the tag-cycling
// algorithm, and command dispatch through river's control protocol.
package river

import (
	"github.com/bnema/wlturbo/wl"

	"github.com/zanderhavgaard/riverwm-utils/internal/protocols"
)

// Output tracks the tag state of one wl_output. Fields are overwritten
// wholesale by status events; the last value wins.
type Output struct {
	proxy  *wl.Output
	status *protocols.OutputStatus

	// FocusedTags is the bitmap of tags currently visible on the output.
	FocusedTags uint32

	// ViewTags is the raw view_tags array payload: one little-endian
	// uint32 tag bitmap per view on the output.
	ViewTags []byte

	// UrgentTags is the bitmap of tags with an urgent view (since
	// river-status v2; stays zero on older compositors).
	UrgentTags uint32

	// LayoutName is the name of the output's layout (since river-status
	// v4; empty when unset or cleared).
	LayoutName string
}

// NewOutput wraps a bound wl_output proxy.
func NewOutput(proxy *wl.Output) *Output {
	return &Output{proxy: proxy}
}

// ID returns the output's Wayland object ID.
func (o *Output) ID() uint32 {
	return o.proxy.ID()
}

// subscribe asks the status manager to push tag state for this output.
func (o *Output) subscribe(manager *protocols.StatusManager) error {
	status, err := manager.GetOutputStatus(o.proxy)
	if err != nil {
		return err
	}
	o.status = status

	status.SetFocusedTagsHandler(o.handleFocusedTags)
	status.SetViewTagsHandler(o.handleViewTags)
	status.SetUrgentTagsHandler(o.handleUrgentTags)
	status.SetLayoutNameHandler(o.handleLayoutName)
	status.SetLayoutNameClearHandler(o.handleLayoutNameClear)
	return nil
}

func (o *Output) handleFocusedTags(tags uint32) {
	o.FocusedTags = tags
}

func (o *Output) handleViewTags(raw []byte) {
	o.ViewTags = raw
}

func (o *Output) handleUrgentTags(tags uint32) {
	o.UrgentTags = tags
}

func (o *Output) handleLayoutName(name string) {
	o.LayoutName = name
}

func (o *Output) handleLayoutNameClear() {
	o.LayoutName = ""
}

// destroy releases the status subscription.
func (o *Output) destroy() {
	if o.status != nil {
		_ = o.status.Destroy()
		o.status = nil
	}
}
