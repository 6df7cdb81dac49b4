package tap_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"

	"github.com/katalvlaran/lvseq/seq"
	"github.com/katalvlaran/lvseq/tap"
)

func observed(lvl zapcore.Level) (*zap.Logger, *observer.ObservedLogs) {
	core, logs := observer.New(lvl)
	return zap.New(core), logs
}

// TestTap_OneLinePerElement logs exactly k lines for k elements.
func TestTap_OneLinePerElement(t *testing.T) {
	l, logs := observed(zapcore.DebugLevel)
	s := tap.Tap("x", seq.Of(10, 20, 30), tap.WithLogger(l))

	assert.Equal(t, []int{10, 20, 30}, seq.Collect(s))
	entries := logs.AllUntimed()
	require.Len(t, entries, 3)
	for i, want := range []string{"x 10", "x 20", "x 30"} {
		assert.Equal(t, want, entries[i].Message)
		assert.Equal(t, int64(i), entries[i].ContextMap()["index"])
	}

	// pulls past the end log nothing
	_, ok := s.Next()
	assert.False(t, ok)
	assert.Equal(t, 3, logs.Len())
}

// TestTap_Lazy logs nothing until an element is demanded, and each line is
// written before its element is returned.
func TestTap_Lazy(t *testing.T) {
	l, logs := observed(zapcore.DebugLevel)
	n := 0
	src := seq.Func[int](func() (int, bool) {
		n++
		return n, true
	})

	s := tap.Tap("n", src, tap.WithLogger(l))
	assert.Zero(t, logs.Len(), "construction must not log")

	for i := 1; i <= 4; i++ {
		v, ok := s.Next()
		require.True(t, ok)
		assert.Equal(t, i, v)
		assert.Equal(t, i, logs.Len())
	}
}

// TestTap_PackageLogger falls back to the logger installed with SetLogger.
func TestTap_PackageLogger(t *testing.T) {
	l, logs := observed(zapcore.DebugLevel)
	tap.SetLogger(l)
	t.Cleanup(func() { tap.SetLogger(nil) })

	s := tap.Tap("pkg", seq.Of("a", "b"))
	assert.Equal(t, []string{"a", "b"}, seq.Collect(s))
	assert.Equal(t, 2, logs.FilterMessage("pkg a").Len()+logs.FilterMessage("pkg b").Len())

	tap.SetLogger(nil)
	assert.NotNil(t, tap.Logger())
}

// TestTap_Level skips output below the logger's level without touching the
// element stream.
func TestTap_Level(t *testing.T) {
	l, logs := observed(zapcore.InfoLevel)

	quiet := tap.Tap("q", seq.Of(1, 2), tap.WithLogger(l))
	assert.Equal(t, []int{1, 2}, seq.Collect(quiet))
	assert.Zero(t, logs.Len())

	loud := tap.Tap("l", seq.Of(1, 2), tap.WithLogger(l), tap.WithLevel(zapcore.WarnLevel))
	assert.Equal(t, []int{1, 2}, seq.Collect(loud))
	require.Equal(t, 2, logs.Len())
	assert.Equal(t, zapcore.WarnLevel, logs.All()[0].Level)
}

func TestOptions_Panics(t *testing.T) {
	assert.Panics(t, func() { tap.WithLogger(nil) })
	assert.Panics(t, func() { tap.WithLevel(zapcore.FatalLevel) })
	assert.Panics(t, func() { tap.WithLevel(zapcore.DPanicLevel) })
	assert.Panics(t, func() { tap.WithLevel(zapcore.PanicLevel) })
	assert.NotPanics(t, func() { tap.WithLevel(zapcore.ErrorLevel) })
}
