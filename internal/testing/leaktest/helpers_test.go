package leaktest

import (
	"strings"
	"sync"
	"testing"
	"time"
)

// recordingTB captures failures instead of failing the outer test
type recordingTB struct {
	testing.TB
	mu     sync.Mutex
	failed []string
}

func (r *recordingTB) Helper() {}

func (r *recordingTB) Errorf(format string, args ...any) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.failed = append(r.failed, format)
}

func TestCheck_GoroutineExits(t *testing.T) {
	rec := &recordingTB{TB: t}
	checker := NewGoroutineChecker(rec)

	done := make(chan struct{})
	go func() {
		time.Sleep(20 * time.Millisecond)
		close(done)
	}()
	<-done

	checker.Check(0)
	if len(rec.failed) != 0 {
		t.Errorf("expected no leak, got %v", rec.failed)
	}
}

func TestCheck_ReportsLeak(t *testing.T) {
	rec := &recordingTB{TB: t}
	checker := NewGoroutineChecker(rec)
	checker.timeout = 50 * time.Millisecond

	stop := make(chan struct{})
	defer close(stop)
	go func() { <-stop }()

	checker.Check(0)
	if len(rec.failed) != 1 || !strings.Contains(rec.failed[0], "goroutine leak") {
		t.Errorf("expected one leak report, got %v", rec.failed)
	}
}

func TestCheck_Tolerance(t *testing.T) {
	rec := &recordingTB{TB: t}
	checker := NewGoroutineChecker(rec)
	checker.timeout = 50 * time.Millisecond

	stop := make(chan struct{})
	defer close(stop)
	go func() { <-stop }()

	checker.Check(1)
	if len(rec.failed) != 0 {
		t.Errorf("expected tolerance to absorb one goroutine, got %v", rec.failed)
	}
}

func TestVerifyNone(t *testing.T) {
	VerifyNone(t)

	var wg sync.WaitGroup
	for i := 0; i < 5; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			time.Sleep(5 * time.Millisecond)
		}()
	}
	wg.Wait()
}
