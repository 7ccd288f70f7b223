package river

import (
	"strconv"

	"github.com/bnema/wlturbo/wl"

	"github.com/zanderhavgaard/riverwm-utils/internal/logger"
	"github.com/zanderhavgaard/riverwm-utils/internal/protocols"
)

// Runner executes one riverctl-style command per call. The token list is
// committed atomically: either every token of a command is sent followed
// by its run request, or the command is not issued at all.
type Runner interface {
	Run(args ...string) error
}

// controlRunner drives zriver_control_v1 on behalf of one seat. Commands
// are fire-and-forget; outcomes arrive on a callback object and are only
// logged.
type controlRunner struct {
	control *protocols.Control
	seat    *wl.Seat
}

func (r *controlRunner) Run(args ...string) error {
	for _, arg := range args {
		if err := r.control.AddArgument(arg); err != nil {
			return err
		}
	}

	callback, err := r.control.RunCommand(r.seat)
	if err != nil {
		return err
	}
	callback.SetFailureHandler(func(msg string) {
		logger.Warnf("river rejected command %v: %s", args, msg)
	})
	callback.SetSuccessHandler(func(msg string) {
		if msg != "" {
			logger.Debugf("river command %v: %s", args, msg)
		}
	})
	return nil
}

// ApplyTags issues the commands that make newTags the focused tag set.
//
// With Follow the focused view is moved first, so it is already inside the
// new tag set when that set becomes focused. With AllOutputs and more than
// one output, focus is cycled through every remaining output and the same
// tag set applied to each; the loop stops by count once focus has wrapped
// back to the output it started on, which already has its tags set.
func ApplyTags(run Runner, newTags uint32, numOutputs int, opts Options) error {
	value := strconv.FormatUint(uint64(newTags), 10)

	if opts.Follow {
		if err := run.Run("set-view-tags", value); err != nil {
			return err
		}
	}

	if err := run.Run("set-focused-tags", value); err != nil {
		return err
	}

	if numOutputs == 1 || !opts.AllOutputs {
		return nil
	}

	for i := 0; i < numOutputs; i++ {
		if err := run.Run("focus-output", "next"); err != nil {
			return err
		}
		if i+1 == numOutputs {
			// Focus is back on the starting output.
			break
		}
		if err := run.Run("set-focused-tags", value); err != nil {
			return err
		}
	}
	return nil
}
