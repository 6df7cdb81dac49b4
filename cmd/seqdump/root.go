package main

import (
	"fmt"
	"strings"

	"github.com/mitchellh/mapstructure"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"
)

var Version string

const (
	configF    = "config"
	generatorF = "generator"
	countF     = "count"
	formatF    = "format"
	tapF       = "tap"
	verboseF   = "verbose"
	segmentsF  = "segments"
	tallyF     = "tally"
	mulF       = "mul"
	addF       = "add"
	wrapMinF   = "wrap-min"
	wrapMaxF   = "wrap-max"

	startF      = "start"
	endF        = "end"
	stepF       = "step"
	exclusiveF  = "exclusive"
	minF        = "min"
	maxF        = "max"
	incF        = "inc"
	decF        = "dec"
	directionF  = "direction"
	seedF       = "seed"
	incrF       = "incr"
	perlinSeedF = "perlin-seed"
	octavesF    = "octaves"
	amplitudeF  = "amplitude"
	frequencyF  = "frequency"
	dutyF       = "duty"
	triangularF = "triangular"
	trendF      = "trend"
	sweepToF    = "sweep-to"
	sweepLenF   = "sweep-len"

	envPrefix = "SEQDUMP"
)

const (
	defaultCount      = 10
	defaultFormat     = "table"
	defaultMul        = 1.0
	defaultEnd        = 10.0
	defaultMax        = 10.0
	defaultCycleStep  = 1.0
	defaultDirection  = "up"
	defaultIncr       = 0.1
	defaultPerlinSeed = 1
	defaultOctaves    = 3
	defaultAmplitude  = 1.0
	defaultFrequency  = 0.125
	defaultDuty       = 0.5
	defaultSweepTo    = 0.25
	defaultSweepLen   = 64
)

const (
	configUsage    = "YAML config file; flags and SEQDUMP_* env vars override it."
	generatorUsage = "Generator to run when no subcommand is given."
	countUsage     = "Number of elements (or segments) to print."
	formatUsage    = "Output format: table, json, yaml, cbor or plain."
	tapUsage       = "Log every generated element with this prefix to stderr."
	verboseUsage   = "Human-readable debug logging."
	segmentsUsage  = "Print (index, value) line segments instead of values."
	tallyUsage     = "Replace values with their running sum."
	mulUsage       = "Multiply every value by this factor."
	addUsage       = "Add this offset to every value after --mul."
	wrapMinUsage   = "Lower bound for wrapping values into [wrap-min, wrap-max)."
	wrapMaxUsage   = "Upper bound for wrapping; equal bounds disable wrapping."
)

// paramFlags registers generator parameter flags by name.
var paramFlags = map[string]func(fs *pflag.FlagSet){
	startF:      func(fs *pflag.FlagSet) { fs.Float64(startF, 0, "First value.") },
	endF:        func(fs *pflag.FlagSet) { fs.Float64(endF, defaultEnd, "Last value (inclusive unless --exclusive).") },
	stepF:       func(fs *pflag.FlagSet) { fs.Float64(stepF, 0, "Step; 0 picks the default.") },
	exclusiveF:  func(fs *pflag.FlagSet) { fs.Bool(exclusiveF, false, "Exclude the end value.") },
	minF:        func(fs *pflag.FlagSet) { fs.Float64(minF, 0, "Lower bound.") },
	maxF:        func(fs *pflag.FlagSet) { fs.Float64(maxF, defaultMax, "Upper bound.") },
	incF:        func(fs *pflag.FlagSet) { fs.Float64(incF, defaultCycleStep, "Step while heading up.") },
	decF:        func(fs *pflag.FlagSet) { fs.Float64(decF, defaultCycleStep, "Step while heading down.") },
	directionF:  func(fs *pflag.FlagSet) { fs.String(directionF, defaultDirection, "Initial heading: up or down.") },
	seedF:       func(fs *pflag.FlagSet) { fs.Float64(seedF, 0, "First noise sample position.") },
	incrF:       func(fs *pflag.FlagSet) { fs.Float64(incrF, defaultIncr, "Noise position increment.") },
	perlinSeedF: func(fs *pflag.FlagSet) { fs.Int64(perlinSeedF, defaultPerlinSeed, "Perlin permutation seed.") },
	octavesF:    func(fs *pflag.FlagSet) { fs.Int(octavesF, defaultOctaves, "Perlin octaves.") },
	amplitudeF:  func(fs *pflag.FlagSet) { fs.Float64(amplitudeF, defaultAmplitude, "Wave amplitude.") },
	frequencyF:  func(fs *pflag.FlagSet) { fs.Float64(frequencyF, defaultFrequency, "Wave frequency in cycles per sample.") },
	dutyF:       func(fs *pflag.FlagSet) { fs.Float64(dutyF, defaultDuty, "Pulse duty cycle in [0,1].") },
	triangularF: func(fs *pflag.FlagSet) { fs.Bool(triangularF, false, "Triangular pulse envelope.") },
	trendF:      func(fs *pflag.FlagSet) { fs.Float64(trendF, 0, "Linear trend added per sample.") },
	sweepToF:    func(fs *pflag.FlagSet) { fs.Float64(sweepToF, defaultSweepTo, "Chirp end frequency.") },
	sweepLenF:   func(fs *pflag.FlagSet) { fs.Int(sweepLenF, defaultSweepLen, "Samples until the chirp reaches --sweep-to.") },
}

// subcommands lists each generator with the parameter flags it reads.
var subcommands = []struct {
	name   string
	short  string
	params []string
}{
	{"range", "Inclusive or exclusive numeric range.", []string{startF, endF, stepF, exclusiveF}},
	{"steps", "Running sum from --start by a constant --step.", []string{startF, stepF}},
	{"cycle", "Oscillate between --min and --max.", []string{startF, minF, maxF, incF, decF, directionF}},
	{"noise", "1-D Perlin noise walk.", []string{seedF, incrF, perlinSeedF, octavesF}},
	{"pulse", "Rectangular or triangular pulse train.", []string{amplitudeF, frequencyF, dutyF, triangularF, trendF}},
	{"chirp", "Linear frequency sweep.", []string{amplitudeF, frequencyF, sweepToF, sweepLenF, trendF}},
}

// NewCmd returns the seqdump root command with one subcommand per generator.
func NewCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:           "seqdump [generator] [flags]",
		Short:         "Print finite prefixes of lvseq generators.",
		Version:       Version,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE:          runE(""),
	}

	pf := rootCmd.PersistentFlags()
	pf.String(configF, "", configUsage)
	pf.IntP(countF, "n", defaultCount, countUsage)
	pf.String(formatF, defaultFormat, formatUsage)
	pf.String(tapF, "", tapUsage)
	pf.BoolP(verboseF, "v", false, verboseUsage)
	pf.Bool(segmentsF, false, segmentsUsage)
	pf.Bool(tallyF, false, tallyUsage)
	pf.Float64(mulF, defaultMul, mulUsage)
	pf.Float64(addF, 0, addUsage)
	pf.Float64(wrapMinF, 0, wrapMinUsage)
	pf.Float64(wrapMaxF, 0, wrapMaxUsage)

	// the bare root command reads everything from the config file or env
	rootCmd.Flags().String(generatorF, "", generatorUsage)

	for _, sc := range subcommands {
		sub := &cobra.Command{
			Use:   sc.name + " [flags]",
			Short: sc.short,
			Args:  cobra.NoArgs,
			RunE:  runE(sc.name),
		}
		for _, name := range sc.params {
			paramFlags[name](sub.Flags())
		}
		rootCmd.AddCommand(sub)
	}

	return rootCmd
}

func runE(generator string) func(cmd *cobra.Command, _ []string) error {
	return func(cmd *cobra.Command, _ []string) error {
		cfg, err := loadConfig(cmd)
		if err != nil {
			return err
		}
		if generator != "" {
			cfg.Generator = generator
		}
		if cfg.Generator == "" {
			return cmd.Help()
		}

		log := newLogger(cmd.ErrOrStderr(), cfg.Verbose)
		defer log.Sync() //nolint:errcheck

		return dump(cmd.OutOrStdout(), cfg, log)
	}
}

// loadConfig layers defaults, config file, environment and flags in viper
// and decodes the result into a validated Config.
func loadConfig(cmd *cobra.Command) (*Config, error) {
	v := viper.New()
	setDefaults(v)

	cfgFile, err := cmd.Flags().GetString(configF)
	if err != nil {
		return nil, err
	}
	if cfgFile != "" {
		v.SetConfigType("yaml")
		v.SetConfigFile(cfgFile)
		if err = v.ReadInConfig(); err != nil {
			return nil, err
		}
	}

	v.SetEnvPrefix(envPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	v.AutomaticEnv()

	if err = v.BindPFlags(cmd.Flags()); err != nil {
		return nil, err
	}

	cfg := new(Config)
	hook := viper.DecodeHook(mapstructure.ComposeDecodeHookFunc(
		mapstructure.TextUnmarshallerHookFunc(),
		mapstructure.StringToTimeDurationHookFunc(),
	))
	if err = v.Unmarshal(cfg, hook); err != nil {
		return nil, fmt.Errorf("decode config: %w", err)
	}
	if err = cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

func setDefaults(v *viper.Viper) {
	v.SetDefault(generatorF, "")
	v.SetDefault(countF, defaultCount)
	v.SetDefault(formatF, defaultFormat)
	v.SetDefault(tapF, "")
	v.SetDefault(verboseF, false)
	v.SetDefault(segmentsF, false)
	v.SetDefault(tallyF, false)
	v.SetDefault(mulF, defaultMul)
	v.SetDefault(addF, 0.0)
	v.SetDefault(wrapMinF, 0.0)
	v.SetDefault(wrapMaxF, 0.0)

	v.SetDefault(startF, 0.0)
	v.SetDefault(endF, defaultEnd)
	v.SetDefault(stepF, 0.0)
	v.SetDefault(exclusiveF, false)
	v.SetDefault(minF, 0.0)
	v.SetDefault(maxF, defaultMax)
	v.SetDefault(incF, defaultCycleStep)
	v.SetDefault(decF, defaultCycleStep)
	v.SetDefault(directionF, defaultDirection)
	v.SetDefault(seedF, 0.0)
	v.SetDefault(incrF, defaultIncr)
	v.SetDefault(perlinSeedF, defaultPerlinSeed)
	v.SetDefault(octavesF, defaultOctaves)
	v.SetDefault(amplitudeF, defaultAmplitude)
	v.SetDefault(frequencyF, defaultFrequency)
	v.SetDefault(dutyF, defaultDuty)
	v.SetDefault(triangularF, false)
	v.SetDefault(trendF, 0.0)
	v.SetDefault(sweepToF, defaultSweepTo)
	v.SetDefault(sweepLenF, defaultSweepLen)
}
