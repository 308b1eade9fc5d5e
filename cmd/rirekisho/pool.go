package main

import (
	"context"

	"github.com/go-rirekisho/rirekisho"
)

// Generator is the slice of the library surface the CLI drives.
type Generator interface {
	Generate(ctx context.Context, input rirekisho.Input) (*rirekisho.Result, error)
}

// Pool abstracts generator pool operations for testability.
type Pool interface {
	Acquire() (Generator, error)
	Release(Generator)
	Size() int
}

// generatorPool adapts rirekisho.GeneratorPool to the CLI's Pool interface.
type generatorPool struct {
	inner *rirekisho.GeneratorPool
}

func newGeneratorPool(n int, opts ...rirekisho.Option) *generatorPool {
	return &generatorPool{inner: rirekisho.NewGeneratorPool(n, opts...)}
}

func (p *generatorPool) Acquire() (Generator, error) {
	return p.inner.Acquire()
}

func (p *generatorPool) Release(g Generator) {
	if rg, ok := g.(*rirekisho.Generator); ok {
		p.inner.Release(rg)
	}
}

func (p *generatorPool) Size() int {
	return p.inner.Size()
}

func (p *generatorPool) Close() error {
	return p.inner.Close()
}

// Compile-time interface checks.
var (
	_ Generator = (*rirekisho.Generator)(nil)
	_ Pool      = (*generatorPool)(nil)
)
