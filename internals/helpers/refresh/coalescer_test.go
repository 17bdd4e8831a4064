package refresh

import (
	"sync/atomic"
	"testing"
	"time"
)

func TestBurstCollapsesToSingleReload(t *testing.T) {
	var calls int32
	co := NewCoalescer(30*time.Millisecond, func() {
		atomic.AddInt32(&calls, 1)
	})
	defer co.Close()

	for i := 0; i < 20; i++ {
		co.Invalidate()
	}

	time.Sleep(100 * time.Millisecond)
	if got := atomic.LoadInt32(&calls); got != 1 {
		t.Fatalf("rajada de 20 eventos gerou %d reloads, esperava 1", got)
	}
}

func TestSeparateBurstsReloadAgain(t *testing.T) {
	var calls int32
	co := NewCoalescer(10*time.Millisecond, func() {
		atomic.AddInt32(&calls, 1)
	})
	defer co.Close()

	co.Invalidate()
	time.Sleep(50 * time.Millisecond)
	co.Invalidate()
	time.Sleep(50 * time.Millisecond)

	if got := atomic.LoadInt32(&calls); got != 2 {
		t.Fatalf("duas rajadas separadas geraram %d reloads, esperava 2", got)
	}
}

func TestCloseCancelsPendingReload(t *testing.T) {
	var calls int32
	co := NewCoalescer(30*time.Millisecond, func() {
		atomic.AddInt32(&calls, 1)
	})

	co.Invalidate()
	co.Close()
	co.Invalidate() // no-op depois do Close

	time.Sleep(80 * time.Millisecond)
	if got := atomic.LoadInt32(&calls); got != 0 {
		t.Fatalf("reload disparou %d vezes após Close, esperava 0", got)
	}
}
