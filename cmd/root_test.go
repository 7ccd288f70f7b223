package cmd

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCheckNTags(t *testing.T) {
	tests := []struct {
		arg     string
		want    uint
		wantErr bool
	}{
		{arg: "1", want: 1},
		{arg: "9", want: 9},
		{arg: "32", want: 32},
		{arg: "0", wantErr: true},
		{arg: "33", wantErr: true},
		{arg: "-4", wantErr: true},
		{arg: "abc", wantErr: true},
		{arg: "", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.arg, func(t *testing.T) {
			got, err := checkNTags(tt.arg)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestParseCycleArgs(t *testing.T) {
	t.Run("defaults", func(t *testing.T) {
		nCycle, nTags, err := parseCycleArgs(nil, 32)
		require.NoError(t, err)
		assert.Equal(t, 1, nCycle)
		assert.Equal(t, uint(32), nTags)
	})

	t.Run("positional n-cycle", func(t *testing.T) {
		nCycle, nTags, err := parseCycleArgs([]string{"-3"}, 32)
		require.NoError(t, err)
		assert.Equal(t, -3, nCycle)
		assert.Equal(t, uint(32), nTags)
	})

	t.Run("positional n-tags", func(t *testing.T) {
		nCycle, nTags, err := parseCycleArgs([]string{"2", "9"}, 32)
		require.NoError(t, err)
		assert.Equal(t, 2, nCycle)
		assert.Equal(t, uint(9), nTags)
	})

	t.Run("non-numeric n-cycle is rejected", func(t *testing.T) {
		_, _, err := parseCycleArgs([]string{"next"}, 32)
		assert.Error(t, err)
	})

	t.Run("out-of-range n-tags is rejected", func(t *testing.T) {
		_, _, err := parseCycleArgs([]string{"1", "33"}, 32)
		assert.Error(t, err)
	})

	t.Run("out-of-range configured default is rejected", func(t *testing.T) {
		_, _, err := parseCycleArgs(nil, 0)
		assert.Error(t, err)
	})
}

func TestNormalizeArgs(t *testing.T) {
	tests := []struct {
		name string
		args []string
		want []string
	}{
		{
			name: "bare negative cycle gets a terminator",
			args: []string{"-1"},
			want: []string{"--", "-1"},
		},
		{
			name: "flags before the negative cycle stay flags",
			args: []string{"-d", "-2", "9"},
			want: []string{"-d", "--", "-2", "9"},
		},
		{
			name: "explicit terminator is left alone",
			args: []string{"--", "-1"},
			want: []string{"--", "-1"},
		},
		{
			name: "positive arguments are untouched",
			args: []string{"2", "9"},
			want: []string{"2", "9"},
		},
		{
			name: "ordinary flags are untouched",
			args: []string{"--skip-empty", "1"},
			want: []string{"--skip-empty", "1"},
		},
		{
			name: "empty args",
			args: nil,
			want: nil,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, normalizeArgs(tt.args))
		})
	}
}

func TestRootCommandFlags(t *testing.T) {
	for flag, shorthand := range map[string]string{
		"all-outputs":   "a",
		"follow":        "f",
		"skip-occupied": "o",
		"skip-empty":    "s",
		"debug":         "d",
	} {
		f := rootCmd.Flags().Lookup(flag)
		require.NotNilf(t, f, "flag --%s not registered", flag)
		assert.Equal(t, shorthand, f.Shorthand)
		assert.Equal(t, "false", f.DefValue)
	}
}
