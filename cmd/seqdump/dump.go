package main

import (
	"io"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/katalvlaran/lvseq/combinator"
	"github.com/katalvlaran/lvseq/points"
	"github.com/katalvlaran/lvseq/ranges"
	"github.com/katalvlaran/lvseq/seq"
	"github.com/katalvlaran/lvseq/tap"
)

// newLogger writes JSON at info level, or console output at debug level
// when verbose.
func newLogger(w io.Writer, verbose bool) *zap.Logger {
	level := zapcore.InfoLevel
	enc := zapcore.NewJSONEncoder(zap.NewProductionEncoderConfig())
	if verbose {
		level = zapcore.DebugLevel
		enc = zapcore.NewConsoleEncoder(zap.NewDevelopmentEncoderConfig())
	}

	return zap.New(zapcore.NewCore(enc, zapcore.AddSync(w), level))
}

// pipeline builds the generator and applies the configured transforms in
// order: mul/add, tally, wrap, tap.
func pipeline(cfg *Config, log *zap.Logger) (seq.Seq[float64], error) {
	s, err := newGenerator(cfg.Generator, cfg.Params)
	if err != nil {
		return nil, err
	}
	if cfg.Mul != 1 || cfg.Add != 0 {
		s = combinator.MulAddSeq(s, cfg.Mul, cfg.Add)
	}
	if cfg.Tally {
		s = combinator.Tally(s, 0)
	}
	if cfg.WrapMin != cfg.WrapMax {
		lo, hi := cfg.WrapMin, cfg.WrapMax
		if _, err = combinator.ModRange(lo, lo, hi); err != nil {
			return nil, err
		}
		s = seq.Map(s, func(v float64) float64 { return combinator.MustModRange(v, lo, hi) })
	}
	if cfg.Tap != "" {
		s = tap.Tap(cfg.Tap, s, tap.WithLogger(log), tap.WithLevel(zapcore.InfoLevel))
	}

	return s, nil
}

// dump prints cfg.Count values, or cfg.Count segments joining consecutive
// (index, value) points, in the configured format.
func dump(w io.Writer, cfg *Config, log *zap.Logger) error {
	log.Debug("dumping",
		zap.String("generator", cfg.Generator),
		zap.Int("count", cfg.Count),
		zap.String("format", cfg.Format),
		zap.Bool("segments", cfg.Segments),
	)

	s, err := pipeline(cfg, log)
	if err != nil {
		return err
	}

	if cfg.Segments {
		xs := ranges.RangeFrom(0.0, 1.0)
		segs := seq.Collect(points.JoinXY(xs, seq.Take(s, cfg.Count+1)))

		return writeSegments(w, cfg.Format, segs)
	}

	return writeValues(w, cfg.Format, seq.Collect(ranges.WithIndex(seq.Take(s, cfg.Count))))
}
