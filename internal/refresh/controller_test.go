package refresh

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"
)

func TestLoadReplacesSnapshot(t *testing.T) {
	calls := 0
	c := New("test", func(ctx context.Context) ([]string, error) {
		calls++
		if calls == 1 {
			return []string{"a", "b"}, nil
		}
		return []string{"c"}, nil
	})

	if err := c.Load(context.Background()); err != nil {
		t.Fatalf("first load: %v", err)
	}
	items, _, _ := c.Snapshot()
	if len(items) != 2 {
		t.Fatalf("expected 2 items, got %d", len(items))
	}

	if err := c.Load(context.Background()); err != nil {
		t.Fatalf("second load: %v", err)
	}
	items, _, _ = c.Snapshot()
	if len(items) != 1 || items[0] != "c" {
		t.Fatalf("expected full replacement with [c], got %v", items)
	}
}

func TestLoadFailureKeepsPreviousSnapshot(t *testing.T) {
	calls := 0
	fetchErr := errors.New("backend down")
	c := New("test", func(ctx context.Context) ([]int, error) {
		calls++
		if calls == 1 {
			return []int{1, 2, 3}, nil
		}
		return nil, fetchErr
	})

	if err := c.Load(context.Background()); err != nil {
		t.Fatalf("first load: %v", err)
	}
	if err := c.Load(context.Background()); err == nil {
		t.Fatal("expected error from second load")
	}

	items, _, lastErr := c.Snapshot()
	if len(items) != 3 {
		t.Fatalf("expected previous snapshot kept, got %v", items)
	}
	if !errors.Is(lastErr, fetchErr) {
		t.Fatalf("expected recorded error, got %v", lastErr)
	}
	if c.State() != RegionPopulated {
		t.Fatalf("expected populated state with stale data, got %v", c.State())
	}
}

func TestStaleResponseDiscarded(t *testing.T) {
	slowStarted := make(chan struct{})
	slowRelease := make(chan struct{})
	calls := 0
	var mu sync.Mutex

	c := New("test", func(ctx context.Context) ([]string, error) {
		mu.Lock()
		n := calls
		calls++
		mu.Unlock()
		if n == 0 {
			close(slowStarted)
			<-slowRelease
			return []string{"old"}, nil
		}
		return []string{"new"}, nil
	})

	var wg sync.WaitGroup
	wg.Add(1)
	go func() {
		defer wg.Done()
		_ = c.Load(context.Background())
	}()

	<-slowStarted
	if err := c.Load(context.Background()); err != nil {
		t.Fatalf("fast load: %v", err)
	}
	close(slowRelease)
	wg.Wait()

	items, _, _ := c.Snapshot()
	if len(items) != 1 || items[0] != "new" {
		t.Fatalf("stale response overwrote newer snapshot: %v", items)
	}
}

func TestStateTransitions(t *testing.T) {
	fail := true
	c := New("test", func(ctx context.Context) ([]string, error) {
		if fail {
			return nil, errors.New("nope")
		}
		return nil, nil
	})

	if c.State() != RegionLoading {
		t.Fatalf("expected loading before first load, got %v", c.State())
	}

	_ = c.Load(context.Background())
	if c.State() != RegionFailed {
		t.Fatalf("expected failed after failed first load, got %v", c.State())
	}

	fail = false
	if err := c.Load(context.Background()); err != nil {
		t.Fatalf("load: %v", err)
	}
	if c.State() != RegionEmpty {
		t.Fatalf("expected empty for zero records, got %v", c.State())
	}
}

func TestOnUpdateReceivesSnapshot(t *testing.T) {
	got := make(chan []string, 1)
	c := New("test", func(ctx context.Context) ([]string, error) {
		return []string{"x"}, nil
	}, WithOnUpdate(func(items []string) {
		got <- items
	}))

	if err := c.Load(context.Background()); err != nil {
		t.Fatalf("load: %v", err)
	}

	select {
	case items := <-got:
		if len(items) != 1 || items[0] != "x" {
			t.Fatalf("unexpected update payload: %v", items)
		}
	case <-time.After(time.Second):
		t.Fatal("update callback never fired")
	}
}

func TestPollRejectsBadInterval(t *testing.T) {
	c := New("test", func(ctx context.Context) ([]string, error) { return nil, nil })
	if err := c.Poll(0); err == nil {
		t.Fatal("expected error for zero interval")
	}
}

func TestPollStops(t *testing.T) {
	var mu sync.Mutex
	calls := 0
	c := New("test", func(ctx context.Context) ([]string, error) {
		mu.Lock()
		calls++
		mu.Unlock()
		return nil, nil
	})

	if err := c.Poll(10 * time.Millisecond); err != nil {
		t.Fatalf("poll: %v", err)
	}
	time.Sleep(50 * time.Millisecond)
	c.Stop()

	mu.Lock()
	after := calls
	mu.Unlock()
	if after == 0 {
		t.Fatal("poll never fired")
	}

	time.Sleep(50 * time.Millisecond)
	mu.Lock()
	final := calls
	mu.Unlock()
	if final != after {
		t.Fatalf("poll fired after Stop: %d -> %d", after, final)
	}
}
