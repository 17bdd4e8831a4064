// file: internals/helpers/refresh/coalescer.go
//
// Sinal de invalidação com coalescência: rajadas de eventos dentro da
// janela viram UM reload só, em vez de um fetch por evento.
package refresh

import (
	"log"
	"sync"
	"time"
)

type Coalescer struct {
	window time.Duration
	reload func()

	mu      sync.Mutex
	pending bool
	timer   *time.Timer
	closed  bool
}

// NewCoalescer agenda reload() no máximo uma vez por janela.
// window <= 0 usa 50ms.
func NewCoalescer(window time.Duration, reload func()) *Coalescer {
	if window <= 0 {
		window = 50 * time.Millisecond
	}
	return &Coalescer{window: window, reload: reload}
}

// Invalidate marca o estado como sujo. A primeira chamada da rajada arma o
// timer; as seguintes dentro da janela não agendam nada.
func (co *Coalescer) Invalidate() {
	co.mu.Lock()
	defer co.mu.Unlock()
	if co.closed || co.pending {
		return
	}
	co.pending = true
	co.timer = time.AfterFunc(co.window, co.fire)
}

func (co *Coalescer) fire() {
	co.mu.Lock()
	if co.closed {
		co.mu.Unlock()
		return
	}
	co.pending = false
	co.mu.Unlock()

	defer func() {
		if r := recover(); r != nil {
			log.Printf("[ERROR] refresh reload panic: %v", r)
		}
	}()
	co.reload()
}

// Close cancela qualquer reload pendente. Invalidate vira no-op.
func (co *Coalescer) Close() {
	co.mu.Lock()
	defer co.mu.Unlock()
	co.closed = true
	if co.timer != nil {
		co.timer.Stop()
	}
}
