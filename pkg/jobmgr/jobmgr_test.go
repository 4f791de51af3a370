package jobmgr

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"
)

// collector is a StatusReporter that records messages.
type collector struct {
	mu   sync.Mutex
	msgs []string
}

func (c *collector) report(s string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.msgs = append(c.msgs, s)
}

func (c *collector) has(s string) bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	for _, m := range c.msgs {
		if m == s {
			return true
		}
	}
	return false
}

func TestStartAsyncRejectsDuplicateName(t *testing.T) {
	m := NewManager(nil)
	block := make(chan struct{})
	defer close(block)

	if err := m.StartAsync("loop", func(ctx context.Context) error {
		<-block
		return nil
	}); err != nil {
		t.Fatalf("first start: %v", err)
	}
	if err := m.StartAsync("loop", func(ctx context.Context) error { return nil }); err == nil {
		t.Fatal("duplicate name should be rejected")
	}
	if got := m.Status(); got != "Running jobs: loop" {
		t.Fatalf("Status = %q", got)
	}
}

func TestStopCancelsJobContext(t *testing.T) {
	m := NewManager(nil)
	done := make(chan struct{})

	if err := m.StartAsync("watch", func(ctx context.Context) error {
		<-ctx.Done()
		close(done)
		return nil
	}); err != nil {
		t.Fatal(err)
	}
	if err := m.Stop("watch"); err != nil {
		t.Fatal(err)
	}
	select {
	case <-done:
	case <-time.After(2 * time.Second):
		t.Fatal("job did not observe cancellation")
	}
	if err := m.Stop("watch"); err == nil {
		t.Fatal("stopping a stopped job should error")
	}
}

func TestStopAllEmptiesManager(t *testing.T) {
	m := NewManager(nil)
	var wg sync.WaitGroup
	for _, name := range []string{"a", "b", "c"} {
		wg.Add(1)
		if err := m.StartAsync(name, func(ctx context.Context) error {
			defer wg.Done()
			<-ctx.Done()
			return nil
		}); err != nil {
			t.Fatal(err)
		}
	}
	m.StopAll()
	wg.Wait()
	if got := m.Status(); got != "No jobs are running." {
		t.Fatalf("Status = %q", got)
	}
}

func TestLoopSurvivesErrorsAndPanics(t *testing.T) {
	c := &collector{}
	m := NewManager(c.report)

	var mu sync.Mutex
	n := 0
	err := m.StartLoop("flaky", LoopOptions{Interval: time.Millisecond, Immediate: true}, func(ctx context.Context) error {
		mu.Lock()
		n++
		i := n
		mu.Unlock()
		switch i {
		case 1:
			return errors.New("boom")
		case 2:
			panic("ouch")
		}
		return nil
	})
	if err != nil {
		t.Fatal(err)
	}

	deadline := time.After(2 * time.Second)
	for {
		mu.Lock()
		enough := n >= 3
		mu.Unlock()
		if enough {
			break
		}
		select {
		case <-deadline:
			t.Fatal("loop stopped iterating after failures")
		case <-time.After(5 * time.Millisecond):
		}
	}
	m.StopAll()

	if !c.has("error:flaky:boom") {
		t.Fatal("error iteration not reported")
	}
	if !c.has("panic:flaky:ouch") {
		t.Fatal("panic iteration not reported")
	}
}

func TestLoopRequiresPositiveInterval(t *testing.T) {
	m := NewManager(nil)
	if err := m.StartLoop("bad", LoopOptions{}, func(ctx context.Context) error { return nil }); err == nil {
		t.Fatal("zero interval should be rejected")
	}
}
