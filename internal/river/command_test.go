package river

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// recordingRunner captures every committed command for inspection.
type recordingRunner struct {
	commands [][]string
	failAt   int // 1-indexed command to fail on; 0 never fails
}

func (r *recordingRunner) Run(args ...string) error {
	r.commands = append(r.commands, args)
	if r.failAt > 0 && len(r.commands) == r.failAt {
		return errors.New("command rejected")
	}
	return nil
}

func TestApplyTagsSingleOutput(t *testing.T) {
	runner := &recordingRunner{}
	err := ApplyTags(runner, 0b0010, 1, Options{NTags: 4})
	require.NoError(t, err)

	assert.Equal(t, [][]string{
		{"set-focused-tags", "2"},
	}, runner.commands)
}

func TestApplyTagsFollowMovesViewFirst(t *testing.T) {
	runner := &recordingRunner{}
	err := ApplyTags(runner, 0b0100, 1, Options{NTags: 4, Follow: true})
	require.NoError(t, err)

	// The view must enter the new tag set before that set becomes
	// focused, so the view stays visible.
	assert.Equal(t, [][]string{
		{"set-view-tags", "4"},
		{"set-focused-tags", "4"},
	}, runner.commands)
}

func TestApplyTagsAllOutputsPropagates(t *testing.T) {
	runner := &recordingRunner{}
	err := ApplyTags(runner, 0b0001, 3, Options{NTags: 4, AllOutputs: true})
	require.NoError(t, err)

	// Three outputs: set the focused one, then walk the ring setting the
	// two others, and stop once focus wraps back to the start.
	assert.Equal(t, [][]string{
		{"set-focused-tags", "1"},
		{"focus-output", "next"},
		{"set-focused-tags", "1"},
		{"focus-output", "next"},
		{"set-focused-tags", "1"},
		{"focus-output", "next"},
	}, runner.commands)
}

func TestApplyTagsAllOutputsWithSingleOutputIsLocal(t *testing.T) {
	runner := &recordingRunner{}
	err := ApplyTags(runner, 0b1000, 1, Options{NTags: 4, AllOutputs: true})
	require.NoError(t, err)

	assert.Equal(t, [][]string{
		{"set-focused-tags", "8"},
	}, runner.commands)
}

func TestApplyTagsLargeBitmapUsesDecimalToken(t *testing.T) {
	runner := &recordingRunner{}
	err := ApplyTags(runner, 1<<31, 1, Options{NTags: 32})
	require.NoError(t, err)

	assert.Equal(t, [][]string{
		{"set-focused-tags", "2147483648"},
	}, runner.commands)
}

func TestApplyTagsStopsOnCommandError(t *testing.T) {
	runner := &recordingRunner{failAt: 2}
	err := ApplyTags(runner, 0b0001, 3, Options{NTags: 4, AllOutputs: true})
	require.Error(t, err)

	assert.Len(t, runner.commands, 2)
}
