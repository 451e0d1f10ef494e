package status

import (
	"math"
	"sync/atomic"
)

// Float is an atomic float64 stored as bits, zero value reads 0
type Float struct {
	bits atomic.Uint64
}

func (f *Float) Set(v float64) {
	f.bits.Store(math.Float64bits(v))
}

func (f *Float) Get() float64 {
	return math.Float64frombits(f.bits.Load())
}

// Text is an atomic short string, truncated to MaxTextLen bytes
type Text struct {
	ptr atomic.Pointer[string]
}

// MaxTextLen bounds HUD values
const MaxTextLen = 32

func (t *Text) Set(v string) {
	if len(v) > MaxTextLen {
		v = v[:MaxTextLen]
	}
	t.ptr.Store(&v)
}

func (t *Text) Get() string {
	if p := t.ptr.Load(); p != nil {
		return *p
	}
	return ""
}
