package river

import (
	"testing"

	"github.com/bnema/wlturbo/wl"
	"github.com/stretchr/testify/assert"
)

func testOutput(id uint32) *Output {
	proxy := &wl.Output{}
	proxy.SetID(id)
	return NewOutput(proxy)
}

func TestOutputByID(t *testing.T) {
	first := testOutput(10)
	second := testOutput(11)
	session := &Session{outputs: []*Output{first, second}}

	assert.Same(t, first, session.outputByID(10))
	assert.Same(t, second, session.outputByID(11))
	assert.Nil(t, session.outputByID(99))
}

func TestOutputStatusHandlersLastWriteWins(t *testing.T) {
	output := testOutput(1)

	output.handleFocusedTags(0b0001)
	output.handleFocusedTags(0b0100)
	assert.Equal(t, uint32(0b0100), output.FocusedTags)

	output.handleViewTags(viewTagsPayload(0b0001, 0b0010))
	output.handleViewTags(viewTagsPayload(0b1000))
	assert.Equal(t, uint32(0b1000), OccupiedFromViewTags(output.ViewTags))

	output.handleUrgentTags(0b0010)
	assert.Equal(t, uint32(0b0010), output.UrgentTags)

	output.handleLayoutName("rivertile")
	assert.Equal(t, "rivertile", output.LayoutName)
	output.handleLayoutNameClear()
	assert.Equal(t, "", output.LayoutName)
}

func TestSeatFocusedOutputResolvedByIdentity(t *testing.T) {
	first := testOutput(10)
	second := testOutput(11)
	session := &Session{outputs: []*Output{first, second}}

	seat := &Seat{lookup: session.outputByID}
	assert.Nil(t, seat.FocusedOutput)

	seat.handleFocusedOutput(11)
	assert.Same(t, second, seat.FocusedOutput)

	// Focus can move and resolve again; the back-reference follows.
	seat.handleFocusedOutput(10)
	assert.Same(t, first, seat.FocusedOutput)

	// An unknown ID leaves the reference unset rather than stale.
	seat.handleFocusedOutput(42)
	assert.Nil(t, seat.FocusedOutput)
}
