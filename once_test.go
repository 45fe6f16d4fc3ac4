package syscolor

import (
	"sync"
	"sync/atomic"
	"testing"
)

func TestOnceBoolCaches(t *testing.T) {
	var cache onceBool
	calls := 0
	got := cache.getOrInit(func() bool {
		calls++
		return true
	})
	if !got {
		t.Fatal("expected first result to be returned")
	}
	if calls != 1 {
		t.Fatalf("expected one probe call, got %d", calls)
	}
	got = cache.getOrInit(func() bool {
		calls++
		return false
	})
	if !got {
		t.Fatal("cached value changed after initialization")
	}
	if calls != 1 {
		t.Fatalf("probe ran again after initialization: %d calls", calls)
	}
}

func TestOnceBoolFalseIsTerminal(t *testing.T) {
	var cache onceBool
	if cache.getOrInit(func() bool { return false }) {
		t.Fatal("expected false")
	}
	if cache.getOrInit(func() bool { return true }) {
		t.Fatal("false state is terminal, later probes must not run")
	}
}

func TestOnceBoolConverges(t *testing.T) {
	const callers = 64
	var (
		cache   onceBool
		counter atomic.Uint32
		wg      sync.WaitGroup
	)
	// Each racing probe reports a different answer; every caller must
	// still come away with the one value that won the swap.
	results := make([]bool, callers)
	start := make(chan struct{})
	for i := 0; i < callers; i++ {
		i := i
		wg.Add(1)
		go func() {
			defer wg.Done()
			<-start
			results[i] = cache.getOrInit(func() bool {
				return counter.Add(1)%2 == 0
			})
		}()
	}
	close(start)
	wg.Wait()

	final := cache.getOrInit(func() bool {
		t.Error("probe ran on an initialized cell")
		return false
	})
	for i, got := range results {
		if got != final {
			t.Fatalf("caller %d observed %v, final value is %v", i, got, final)
		}
	}
}
