package rirekisho

// Notes:
// - GeneratorPool: lazy creation, acquire/release cycle, close aggregation
// - ResolvePoolSize: explicit override and GOMAXPROCS-derived bounds

import (
	"runtime"
	"testing"
)

func TestNewGeneratorPool(t *testing.T) {
	t.Parallel()

	p := NewGeneratorPool(3)
	defer p.Close()

	if p.Size() != 3 {
		t.Errorf("Size = %d, want 3", p.Size())
	}
	if p.created != 0 {
		t.Error("generators must be created lazily")
	}
}

func TestNewGeneratorPoolClampsSize(t *testing.T) {
	t.Parallel()

	p := NewGeneratorPool(0)
	defer p.Close()

	if p.Size() != 1 {
		t.Errorf("Size = %d, want 1", p.Size())
	}
}

func TestGeneratorPoolAcquireRelease(t *testing.T) {
	t.Parallel()

	p := NewGeneratorPool(2)
	defer p.Close()

	g1, err := p.Acquire()
	if err != nil {
		t.Fatalf("Acquire: %v", err)
	}
	g2, err := p.Acquire()
	if err != nil {
		t.Fatalf("Acquire: %v", err)
	}
	if g1 == g2 {
		t.Error("expected distinct generators")
	}

	p.Release(g1)

	g3, err := p.Acquire()
	if err != nil {
		t.Fatalf("Acquire after release: %v", err)
	}
	if g3 != g1 {
		t.Error("released generator should be reused")
	}
}

func TestGeneratorPoolAcquireConfigError(t *testing.T) {
	t.Parallel()

	p := NewGeneratorPool(1, WithStyle("no-such-theme"))
	defer p.Close()

	if _, err := p.Acquire(); err == nil {
		t.Error("expected configuration error from Acquire")
	}
	if p.created != 0 {
		t.Error("failed creation must not consume a slot")
	}
}

func TestGeneratorPoolCloseIdempotent(t *testing.T) {
	t.Parallel()

	p := NewGeneratorPool(1)
	if _, err := p.Acquire(); err != nil {
		t.Fatalf("Acquire: %v", err)
	}

	if err := p.Close(); err != nil {
		t.Errorf("first Close: %v", err)
	}
	if err := p.Close(); err != nil {
		t.Errorf("second Close: %v", err)
	}
}

func TestResolvePoolSize(t *testing.T) {
	t.Parallel()

	if got := ResolvePoolSize(5); got != 5 {
		t.Errorf("explicit workers = %d, want 5", got)
	}

	got := ResolvePoolSize(0)
	if got < MinPoolSize || got > MaxPoolSize {
		t.Errorf("auto size %d outside [%d, %d]", got, MinPoolSize, MaxPoolSize)
	}
	if want := runtime.GOMAXPROCS(0) / cpuDivisor; want >= MinPoolSize && want <= MaxPoolSize && got != want {
		t.Errorf("auto size = %d, want %d", got, want)
	}
}
