package middleware

import (
	"net/http"
	"sync"
	"time"

	"menu-app-go/pkg/logger"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
)

const (
	DefaultPerfCapacity      = 1000
	DefaultSlowRequestCutoff = 200 * time.Millisecond
)

type PerfEntry struct {
	Route    string
	Method   string
	Status   int
	Duration time.Duration
	At       time.Time
}

// PerfRecorder keeps the most recent request timings in a fixed-size ring.
type PerfRecorder struct {
	mu       sync.RWMutex
	entries  []PerfEntry
	next     int
	full     bool
	slowOver time.Duration
	log      logger.Logger
	now      func() time.Time
}

func NewPerfRecorder(capacity int, slowOver time.Duration, log logger.Logger) *PerfRecorder {
	if capacity <= 0 {
		capacity = DefaultPerfCapacity
	}
	if slowOver <= 0 {
		slowOver = DefaultSlowRequestCutoff
	}
	return &PerfRecorder{
		entries:  make([]PerfEntry, capacity),
		slowOver: slowOver,
		log:      log,
		now:      time.Now,
	}
}

func (p *PerfRecorder) Middleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := p.now()
		ww := chimw.NewWrapResponseWriter(w, r.ProtoMajor)

		next.ServeHTTP(ww, r)

		route := r.URL.Path
		if rctx := chi.RouteContext(r.Context()); rctx != nil {
			if pattern := rctx.RoutePattern(); pattern != "" {
				route = pattern
			}
		}

		entry := PerfEntry{
			Route:    route,
			Method:   r.Method,
			Status:   ww.Status(),
			Duration: p.now().Sub(start),
			At:       start,
		}
		p.Record(entry)

		if entry.Duration > p.slowOver {
			p.log.Warn("perf: slow request",
				"method", entry.Method,
				"route", entry.Route,
				"status", entry.Status,
				"duration_ms", entry.Duration.Milliseconds(),
				"request_id", chimw.GetReqID(r.Context()),
			)
		}
	})
}

func (p *PerfRecorder) Record(entry PerfEntry) {
	p.mu.Lock()
	p.entries[p.next] = entry
	p.next = (p.next + 1) % len(p.entries)
	if p.next == 0 {
		p.full = true
	}
	p.mu.Unlock()
}

// AverageResponseTime averages the buffered entries recorded for route. The
// second return value is the number of entries that matched.
func (p *PerfRecorder) AverageResponseTime(route string) (time.Duration, int) {
	p.mu.RLock()
	defer p.mu.RUnlock()

	size := p.next
	if p.full {
		size = len(p.entries)
	}

	var (
		total time.Duration
		count int
	)
	for i := 0; i < size; i++ {
		if p.entries[i].Route != route {
			continue
		}
		total += p.entries[i].Duration
		count++
	}
	if count == 0 {
		return 0, 0
	}
	return total / time.Duration(count), count
}

func (p *PerfRecorder) Len() int {
	p.mu.RLock()
	defer p.mu.RUnlock()
	if p.full {
		return len(p.entries)
	}
	return p.next
}
