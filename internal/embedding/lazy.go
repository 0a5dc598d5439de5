package embedding

import (
	"context"
	"sync"
)

// Lazy defers provider construction until first use and guarantees it
// happens exactly once for the process. Model-backed providers can be
// expensive to initialize; callers share the single instance and there
// is no implicit reinitialization across calls.
type Lazy struct {
	init func() (Provider, error)
	once sync.Once
	p    Provider
	err  error
}

// NewLazy wraps a provider constructor.
func NewLazy(init func() (Provider, error)) *Lazy {
	return &Lazy{init: init}
}

func (l *Lazy) get() (Provider, error) {
	l.once.Do(func() {
		l.p, l.err = l.init()
	})
	return l.p, l.err
}

func (l *Lazy) Name() string {
	p, err := l.get()
	if err != nil {
		return "uninitialized"
	}
	return p.Name()
}

func (l *Lazy) Dim() int {
	p, err := l.get()
	if err != nil {
		return 0
	}
	return p.Dim()
}

func (l *Lazy) Embed(ctx context.Context, text string) ([]float64, error) {
	p, err := l.get()
	if err != nil {
		return nil, err
	}
	return p.Embed(ctx, text)
}
