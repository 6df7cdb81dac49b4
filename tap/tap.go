package tap

import (
	"fmt"

	"go.uber.org/zap"

	"github.com/katalvlaran/lvseq/seq"
)

type tapSeq[T any] struct {
	prefix string
	src    seq.Seq[T]
	cfg    config
	index  int
}

func (t *tapSeq[T]) Next() (T, bool) {
	v, ok := t.src.Next()
	if !ok {
		return v, false
	}
	l := t.cfg.logger
	if l == nil {
		l = Logger()
	}
	if ce := l.Check(t.cfg.level, ""); ce != nil {
		ce.Message = fmt.Sprintf("%s %v", t.prefix, v)
		ce.Write(zap.Int("index", t.index))
	}
	t.index++

	return v, true
}

// Tap returns a sequence with the same elements as s. Pulling an element
// logs "<prefix> <element>" once, before the element is returned.
//
// Disabled levels cost one Check per element; the message is only
// formatted when it will be written.
func Tap[T any](prefix string, s seq.Seq[T], opts ...Option) seq.Seq[T] {
	return &tapSeq[T]{prefix: prefix, src: s, cfg: newConfig(opts...)}
}
