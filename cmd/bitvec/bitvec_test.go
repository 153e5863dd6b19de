package main_test

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"testing"

	bitveccmd "github.com/NethermindEth/bitvec/cmd/bitvec"
	"github.com/NethermindEth/bitvec/core/bitvec"
	"github.com/NethermindEth/bitvec/utils"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type spyLogger struct {
	level  utils.LogLevel
	colour bool
	calls  int
}

func (s *spyLogger) newLogger(level utils.LogLevel, colour bool) (utils.SimpleLogger, error) {
	s.level = level
	s.colour = colour
	s.calls++
	return utils.NewNopLogger(), nil
}

func execute(t *testing.T, args ...string) (string, error) {
	t.Helper()

	spy := new(spyLogger)
	b := new(bytes.Buffer)
	cmd := bitveccmd.NewCmd(spy.newLogger)
	cmd.SetOut(b)
	cmd.SetArgs(args)
	err := cmd.ExecuteContext(context.Background())
	return b.String(), err
}

func TestConfig(t *testing.T) {
	t.Run("defaults", func(t *testing.T) {
		out, err := execute(t, "config")
		require.NoError(t, err)
		assert.Equal(t, "log-level: warn\ncolour: true\nsign: unsigned\nlength: 0\n", out)
	})

	t.Run("config precedence", func(t *testing.T) {
		// Only a few combinations are checked since viper implements the precedence.
		cfgFile := filepath.Join(t.TempDir(), "config.yaml")
		require.NoError(t, os.WriteFile(cfgFile, []byte("log-level: DEBUG\nsign: signed\nlength: 16\n"), 0o600))

		tests := map[string]struct {
			args []string
			env  map[string]string
			want string
		}{
			"config file only": {
				args: []string{"--config", cfgFile},
				want: "log-level: debug\ncolour: true\nsign: signed\nlength: 16\n",
			},
			"flags override the config file": {
				args: []string{"--config", cfgFile, "--length", "8", "--sign", "u"},
				want: "log-level: debug\ncolour: true\nsign: unsigned\nlength: 8\n",
			},
			"environment overrides the config file": {
				args: []string{"--config", cfgFile},
				env:  map[string]string{"BITVEC_LOG_LEVEL": "error", "BITVEC_COLOUR": "false"},
				want: "log-level: error\ncolour: false\nsign: signed\nlength: 16\n",
			},
			"flags override the environment": {
				args: []string{"--log-level", "info"},
				env:  map[string]string{"BITVEC_LOG_LEVEL": "error"},
				want: "log-level: info\ncolour: true\nsign: unsigned\nlength: 0\n",
			},
		}

		for name, tc := range tests {
			t.Run(name, func(t *testing.T) {
				for k, v := range tc.env {
					t.Setenv(k, v)
				}
				out, err := execute(t, append(tc.args, "config")...)
				require.NoError(t, err)
				assert.Equal(t, tc.want, out)
			})
		}
	})

	t.Run("invalid values", func(t *testing.T) {
		_, err := execute(t, "--sign", "both", "config")
		require.ErrorContains(t, err, bitvec.ErrInvalidSignMode.Error())

		_, err = execute(t, "--log-level", "loud", "config")
		require.ErrorContains(t, err, utils.ErrUnknownLogLevel.Error())

		_, err = execute(t, "--length", "-1", "config")
		require.Error(t, err)
	})

	t.Run("missing config file", func(t *testing.T) {
		_, err := execute(t, "--config", filepath.Join(t.TempDir(), "missing.yaml"), "config")
		require.Error(t, err)
	})
}

func TestLoggerCreation(t *testing.T) {
	spy := new(spyLogger)
	cmd := bitveccmd.NewCmd(spy.newLogger)
	cmd.SetOut(new(bytes.Buffer))
	cmd.SetArgs([]string{"--log-level", "debug", "--colour=false", "hamming", "0b1", "0b0"})
	require.NoError(t, cmd.ExecuteContext(context.Background()))

	assert.Equal(t, 1, spy.calls)
	assert.Equal(t, utils.DEBUG, spy.level)
	assert.False(t, spy.colour)
}

func TestEval(t *testing.T) {
	tests := map[string]struct {
		args []string
		want []string
	}{
		"add": {
			args: []string{"eval", "add", "0b0110", "0b0011"},
			want: []string{"0b1001", "0x9"},
		},
		"signed sub": {
			args: []string{"--sign", "signed", "eval", "sub", "0b0011", "0b0101"},
			want: []string{"0b1110", "-2"},
		},
		"neg": {
			args: []string{"--sign", "signed", "eval", "neg", "#5"},
			want: []string{"0b1011", "-5"},
		},
		"not": {
			args: []string{"eval", "not", "0b1100"},
			want: []string{"0b0011"},
		},
		"mul": {
			args: []string{"eval", "mul", "#3", "#5"},
			want: []string{"0b01111"},
		},
		"xor with fixed length": {
			args: []string{"--length", "8", "eval", "xor", "0xf0", "0x3c"},
			want: []string{"0b11001100", "0xcc"},
		},
		"left shift": {
			args: []string{"eval", "lsh", "0b1010", "#2"},
			want: []string{"0b1000", "0b10"},
		},
		"arithmetic right shift": {
			args: []string{"--sign", "signed", "eval", "ash", "0b1000", "#1"},
			want: []string{"0b1100"},
		},
	}

	for name, tc := range tests {
		t.Run(name, func(t *testing.T) {
			out, err := execute(t, tc.args...)
			require.NoError(t, err)
			for _, w := range tc.want {
				assert.Contains(t, out, w)
			}
		})
	}

	t.Run("unknown operation", func(t *testing.T) {
		_, err := execute(t, "eval", "pow", "#2", "#3")
		require.ErrorIs(t, err, bitveccmd.ErrUnknownOp)
	})

	t.Run("wrong operand count", func(t *testing.T) {
		_, err := execute(t, "eval", "add", "#2")
		require.Error(t, err)

		_, err = execute(t, "eval", "neg", "#2", "#3")
		require.Error(t, err)
	})

	t.Run("invalid operand", func(t *testing.T) {
		_, err := execute(t, "eval", "add", "#12a", "#3")
		require.ErrorIs(t, err, bitvec.ErrUnsupportedInput)

		_, err = execute(t, "eval", "not", "0bxyz")
		require.ErrorIs(t, err, bitvec.ErrUnsupportedInput)
	})

	t.Run("operand does not fit", func(t *testing.T) {
		_, err := execute(t, "--length", "2", "eval", "not", "#7")
		require.ErrorIs(t, err, bitvec.ErrDoesNotFit)
	})
}

func TestMap(t *testing.T) {
	t.Run("minterms", func(t *testing.T) {
		out, err := execute(t, "map", "--minterms", "1,2", "0b1100", "0b1010")
		require.NoError(t, err)
		assert.Contains(t, out, "0b0110")
	})

	t.Run("table value", func(t *testing.T) {
		out, err := execute(t, "map", "--table", "0b1000", "0b1100", "0b1010")
		require.NoError(t, err)
		assert.Contains(t, out, "0b1000")
	})

	t.Run("both tables", func(t *testing.T) {
		_, err := execute(t, "map", "--minterms", "3", "--table", "0b1000", "0b1100", "0b1010")
		require.Error(t, err)
	})

	t.Run("no table", func(t *testing.T) {
		_, err := execute(t, "map", "0b1100")
		require.Error(t, err)
	})

	t.Run("minterm out of range", func(t *testing.T) {
		_, err := execute(t, "map", "--minterms", "40", "0b1100")
		require.ErrorIs(t, err, bitvec.ErrTableTooLarge)
	})
}

func TestInspect(t *testing.T) {
	out, err := execute(t, "inspect", "0b00101100")
	require.NoError(t, err)
	for _, w := range []string{"leading zeros", "trailing ones", "unsigned", "0x2c", "0b00101100", "44", "255"} {
		assert.Contains(t, out, w)
	}
}

func TestSlice(t *testing.T) {
	tests := map[string]struct {
		args []string
		want string
	}{
		"every other bit": {
			args: []string{"slice", "0b00001101", "_", "_", "2"},
			want: "0b0011",
		},
		"reversed": {
			args: []string{"slice", "--", "0b00001101", "_", "_", "-1"},
			want: "0b10110000",
		},
		"bounded": {
			args: []string{"slice", "0b00001101", "2", "6"},
			want: "0b0011",
		},
		"negative bound": {
			args: []string{"slice", "--", "0b00001101", "-4", "_"},
			want: "0b0000",
		},
	}

	for name, tc := range tests {
		t.Run(name, func(t *testing.T) {
			out, err := execute(t, tc.args...)
			require.NoError(t, err)
			assert.Contains(t, out, tc.want)
		})
	}

	t.Run("zero step", func(t *testing.T) {
		_, err := execute(t, "slice", "0b1101", "_", "_", "0")
		require.ErrorIs(t, err, bitvec.ErrZeroStep)
	})

	t.Run("invalid bound", func(t *testing.T) {
		_, err := execute(t, "slice", "0b1101", "x", "_")
		require.Error(t, err)
	})
}

func TestFind(t *testing.T) {
	tests := map[string]struct {
		args []string
		want string
	}{
		"first":     {args: []string{"find", "0b0110", "0b11"}, want: "1\n"},
		"all":       {args: []string{"find", "--all", "0b1111", "0b11"}, want: "0 1 2\n"},
		"not found": {args: []string{"find", "0b1000", "0b11"}, want: "-1\n"},
	}

	for name, tc := range tests {
		t.Run(name, func(t *testing.T) {
			out, err := execute(t, tc.args...)
			require.NoError(t, err)
			assert.Equal(t, tc.want, out)
		})
	}
}

func TestHamming(t *testing.T) {
	out, err := execute(t, "hamming", "0b1010", "0b0110")
	require.NoError(t, err)
	assert.Equal(t, "2\n", out)
}

func TestChunks(t *testing.T) {
	t.Run("short last chunk", func(t *testing.T) {
		out, err := execute(t, "chunks", "0b110101", "4")
		require.NoError(t, err)
		assert.Contains(t, out, "0b0101")
		assert.Contains(t, out, "0b11 ")
	})

	t.Run("extended last chunk", func(t *testing.T) {
		out, err := execute(t, "--sign", "signed", "chunks", "--extend", "0b110101", "4")
		require.NoError(t, err)
		assert.Contains(t, out, "0b1111")
	})

	t.Run("invalid size", func(t *testing.T) {
		_, err := execute(t, "chunks", "0b110101", "0")
		require.ErrorIs(t, err, bitvec.ErrInvalidChunkSize)
	})
}
