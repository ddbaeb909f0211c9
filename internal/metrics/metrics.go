package metrics

import (
	"sync/atomic"
	"time"
)

type Counter struct {
	value uint64
}

func (c *Counter) Inc() {
	atomic.AddUint64(&c.value, 1)
}

func (c *Counter) Add(n uint64) {
	atomic.AddUint64(&c.value, n)
}

func (c *Counter) Load() uint64 {
	return atomic.LoadUint64(&c.value)
}

type Timer struct {
	start time.Time
}

func StartTimer() *Timer {
	return &Timer{start: time.Now()}
}

func (t *Timer) Duration() time.Duration {
	return time.Since(t.start)
}

// HTTP holds process-level request counters, incremented by the HTTP
// middleware and exposed on the debug endpoint.
type HTTP struct {
	Requests        Counter
	ClientErrors    Counter
	ServerErrors    Counter
	PricingFallback Counter
}

var Default = &HTTP{}

type Snapshot struct {
	Requests        uint64 `json:"requests"`
	ClientErrors    uint64 `json:"client_errors"`
	ServerErrors    uint64 `json:"server_errors"`
	PricingFallback uint64 `json:"pricing_fallback"`
}

func (h *HTTP) Snapshot() Snapshot {
	return Snapshot{
		Requests:        h.Requests.Load(),
		ClientErrors:    h.ClientErrors.Load(),
		ServerErrors:    h.ServerErrors.Load(),
		PricingFallback: h.PricingFallback.Load(),
	}
}
