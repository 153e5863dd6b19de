package main

import (
	"strings"

	"github.com/NethermindEth/bitvec/core/bitvec"
	"github.com/NethermindEth/bitvec/utils"
	"github.com/mitchellh/mapstructure"
	"github.com/pkg/errors"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

var Version string

const (
	configF   = "config"
	logLevelF = "log-level"
	colourF   = "colour"
	signF     = "sign"
	lengthF   = "length"

	defaultConfig = ""
	defaultColour = true
	defaultLength = 0

	envPrefix = "BITVEC"

	configFlagUsage   = "The yaml configuration file."
	logLevelFlagUsage = "Options: debug, info, warn, error, fatal."
	colourUsage       = "Uses --colour=false command to disable colourized outputs (ANSI Escape Codes)."
	signUsage         = `Sign mode of text operands. Options: unsigned, signed.
Decimal operands are signed when negative or when this is set to signed.`
	lengthUsage = "Bit length of every operand. 0 infers the length from the operand itself."
)

// Config is the effective configuration of a command, merged from flags, environment
// variables prefixed with BITVEC_ and the optional yaml file, in that order of precedence.
type Config struct {
	LogLevel utils.LogLevel  `yaml:"log-level" mapstructure:"log-level"`
	Colour   bool            `yaml:"colour" mapstructure:"colour"`
	Sign     bitvec.SignMode `yaml:"sign" mapstructure:"sign"`
	Length   int             `yaml:"length" mapstructure:"length"`
}

type NewLoggerFn func(level utils.LogLevel, colour bool) (utils.SimpleLogger, error)

// app carries the state shared by all subcommands once the root has parsed its flags.
type app struct {
	cfg Config
	log utils.SimpleLogger
}

func NewCmd(newLoggerFn NewLoggerFn) *cobra.Command {
	a := &app{log: utils.NewNopLogger()}

	var cfgFile string
	defaultLogLevel := utils.WARN
	defaultSign := bitvec.Unsigned

	bitvecCmd := &cobra.Command{
		Use:           "bitvec",
		Short:         "Arbitrary-width two's-complement bit-vector calculator.",
		Version:       Version,
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	bitvecCmd.PersistentFlags().StringVar(&cfgFile, configF, defaultConfig, configFlagUsage)
	bitvecCmd.PersistentFlags().Var(&defaultLogLevel, logLevelF, logLevelFlagUsage)
	bitvecCmd.PersistentFlags().Bool(colourF, defaultColour, colourUsage)
	bitvecCmd.PersistentFlags().Var(&defaultSign, signF, signUsage)
	bitvecCmd.PersistentFlags().Int(lengthF, defaultLength, lengthUsage)

	bitvecCmd.PersistentPreRunE = func(cmd *cobra.Command, _ []string) error {
		cfg, err := loadConfig(cmd, cfgFile)
		if err != nil {
			return err
		}
		a.cfg = *cfg

		a.log, err = newLoggerFn(cfg.LogLevel, cfg.Colour)
		if err != nil {
			return errors.Wrap(err, "create logger")
		}
		a.log.Debugw("Loaded configuration", "command", cmd.Name(), "sign", cfg.Sign, "length", cfg.Length)
		return nil
	}

	bitvecCmd.AddCommand(
		EvalCmd(a),
		MapCmd(a),
		InspectCmd(a),
		SliceCmd(a),
		FindCmd(a),
		HammingCmd(a),
		ChunksCmd(a),
		ConfigCmd(a),
	)
	return bitvecCmd
}

func loadConfig(cmd *cobra.Command, cfgFile string) (*Config, error) {
	v := viper.New()
	if cfgFile != "" {
		v.SetConfigType("yaml")
		v.SetConfigFile(cfgFile)
		if err := v.ReadInConfig(); err != nil {
			return nil, errors.Wrapf(err, "read config %s", cfgFile)
		}
	}

	v.SetEnvPrefix(envPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	v.AutomaticEnv()

	if err := v.BindPFlags(cmd.Flags()); err != nil {
		return nil, err
	}

	cfg := new(Config)
	if err := v.Unmarshal(cfg, viper.DecodeHook(mapstructure.ComposeDecodeHookFunc(
		mapstructure.TextUnmarshallerHookFunc()))); err != nil {
		return nil, errors.Wrap(err, "decode config")
	}
	if cfg.Length < 0 {
		return nil, errors.Errorf("operand length %d is negative", cfg.Length)
	}
	return cfg, nil
}
