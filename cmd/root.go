package cmd

import (
	"fmt"
	"os"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/zanderhavgaard/riverwm-utils/internal/config"
	"github.com/zanderhavgaard/riverwm-utils/internal/logger"
	"github.com/zanderhavgaard/riverwm-utils/internal/river"
	"github.com/zanderhavgaard/riverwm-utils/internal/ui"
)

var (
	// Version is set during build
	Version = "0.1.0-dev"

	allOutputs   bool
	follow       bool
	skipOccupied bool
	skipEmpty    bool
	debug        bool

	rootCmd = &cobra.Command{
		Use:   "riverwm-utils [flags] [n-cycle] [n-tags]",
		Short: "Cycle the focused tags of the river Wayland compositor",
		Long: `riverwm-utils changes river's focused tags to either the next or previous
tag set. n-cycle is the signed number of steps to cycle (default 1; a
negative value cycles backward and must come after any flags). n-tags is
the tag number at which cycling wraps back to the first tag, between 1 and
32 inclusive (default 32).`,
		Args:         cobra.MaximumNArgs(2),
		SilenceUsage: true,
		RunE:         runCycle,
	}
)

// Execute runs the root command
func Execute() error {
	rootCmd.SetArgs(normalizeArgs(os.Args[1:]))
	return rootCmd.Execute()
}

// normalizeArgs inserts a "--" terminator in front of the first bare
// negative integer so invocations like `riverwm-utils -1` parse it as the
// positional n-cycle argument instead of an unknown flag. Flags must come
// before a negative n-cycle; an explicit "--" disables the rewrite.
func normalizeArgs(args []string) []string {
	for i, arg := range args {
		if arg == "--" {
			return args
		}
		if len(arg) > 1 && arg[0] == '-' {
			if _, err := strconv.Atoi(arg); err == nil {
				out := make([]string, 0, len(args)+1)
				out = append(out, args[:i]...)
				out = append(out, "--")
				out = append(out, args[i:]...)
				return out
			}
		}
	}
	return args
}

func init() {
	rootCmd.Version = Version
	rootCmd.SetVersionTemplate(`{{with .Name}}{{printf "%s " .}}{{end}}{{printf "version %s\n" .Version}}`)

	rootCmd.Flags().BoolVarP(&allOutputs, "all-outputs", "a", false, "Cycle the tags for all outputs (following the active output)")
	rootCmd.Flags().BoolVarP(&follow, "follow", "f", false, "Move the active window when cycling")
	rootCmd.Flags().BoolVarP(&skipOccupied, "skip-occupied", "o", false, "Skip occupied tags")
	rootCmd.Flags().BoolVarP(&skipEmpty, "skip-empty", "s", false, "Skip empty tags")
	rootCmd.Flags().BoolVarP(&debug, "debug", "d", false, "Enable debugging output")
}

// checkNTags validates the tag-range width argument.
func checkNTags(arg string) (uint, error) {
	n, err := strconv.Atoi(arg)
	if err != nil || n < 1 || n > 32 {
		return 0, fmt.Errorf("invalid max number of tags: %q", arg)
	}
	return uint(n), nil
}

// parseCycleArgs resolves the positional n-cycle and n-tags arguments,
// falling back to 1 and the configured default.
func parseCycleArgs(args []string, defaultNTags int) (int, uint, error) {
	nCycle := 1
	if len(args) > 0 {
		v, err := strconv.Atoi(args[0])
		if err != nil {
			return 0, 0, fmt.Errorf("invalid number of tags to cycle: %q", args[0])
		}
		nCycle = v
	}

	nTags, err := checkNTags(strconv.Itoa(defaultNTags))
	if err != nil {
		return 0, 0, err
	}
	if len(args) > 1 {
		nTags, err = checkNTags(args[1])
		if err != nil {
			return 0, 0, err
		}
	}
	return nCycle, nTags, nil
}

func runCycle(cmd *cobra.Command, args []string) error {
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("failed to load configuration: %w", err)
	}
	if cfg.LogLevel != "" {
		logger.SetLevel(cfg.LogLevel)
	}
	if debug {
		logger.SetLevel("debug")
	}

	nCycle, nTags, err := parseCycleArgs(args, cfg.NTags)
	if err != nil {
		return err
	}

	opts := river.Options{
		NCycle:       nCycle,
		NTags:        nTags,
		AllOutputs:   allOutputs,
		Follow:       follow,
		SkipOccupied: skipOccupied,
		SkipEmpty:    skipEmpty,
	}

	session, err := river.Connect(cfg.WaylandDisplay)
	if err != nil {
		return err
	}
	defer session.Close()

	focused := session.Seat().FocusedOutput
	if focused == nil {
		return fmt.Errorf("seat did not report a focused output")
	}

	occupied := river.OccupiedTags(session.Outputs(), focused, opts)
	newTags, failure := river.NextTags(focused.FocusedTags, occupied, opts)
	if failure != river.CycleOK {
		logger.Warnf("cycle failed: %s", failure)
	}

	if debug {
		for i, output := range session.Outputs() {
			logger.Debug(ui.RenderOutputLine(i, output.FocusedTags, output.LayoutName, output == focused))
		}
		fmt.Fprintln(cmd.OutOrStdout(), ui.RenderCycleSummary(focused.FocusedTags, occupied, newTags, nTags))
	}

	if err := river.ApplyTags(session.Runner(), newTags, len(session.Outputs()), opts); err != nil {
		return err
	}
	return session.Roundtrip()
}
