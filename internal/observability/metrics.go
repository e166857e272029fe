package observability

import (
	"strconv"
	"sync"
	"time"
)

// Metrics keeps in-process counters for requests, errors and gate
// decisions. Counters only, no histograms; Snapshot serves them as JSON.
type Metrics struct {
	mu            sync.Mutex
	requestCount  map[string]int64
	errorCount    map[string]int64
	decisionCount map[string]int64
}

// Snapshot is a point-in-time copy of all counters.
type Snapshot struct {
	Requests  map[string]int64 `json:"requests"`
	Errors    map[string]int64 `json:"errors"`
	Decisions map[string]int64 `json:"checkin_decisions"`
}

// NewMetrics initializes metrics storage.
func NewMetrics() *Metrics {
	return &Metrics{
		requestCount:  make(map[string]int64),
		errorCount:    make(map[string]int64),
		decisionCount: make(map[string]int64),
	}
}

// RecordRequest increments counters for requests.
func (m *Metrics) RecordRequest(path, method string, status int, duration time.Duration) {
	if m == nil {
		return
	}
	key := path + "|" + method + "|" + strconv.Itoa(status)
	m.mu.Lock()
	defer m.mu.Unlock()
	m.requestCount[key]++
}

// RecordError increments error counters.
func (m *Metrics) RecordError(path, method, code string) {
	if m == nil {
		return
	}
	key := path + "|" + method + "|" + code
	m.mu.Lock()
	defer m.mu.Unlock()
	m.errorCount[key]++
}

// RecordCheckinDecision counts validator outcomes per rejection reason;
// accepted scans are keyed "valid".
func (m *Metrics) RecordCheckinDecision(valid bool, reason string) {
	if m == nil {
		return
	}
	key := "valid"
	if !valid {
		key = reason
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	m.decisionCount[key]++
}

// CollectSnapshot copies the current counters.
func (m *Metrics) CollectSnapshot() Snapshot {
	snapshot := Snapshot{
		Requests:  make(map[string]int64),
		Errors:    make(map[string]int64),
		Decisions: make(map[string]int64),
	}
	if m == nil {
		return snapshot
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	for k, v := range m.requestCount {
		snapshot.Requests[k] = v
	}
	for k, v := range m.errorCount {
		snapshot.Errors[k] = v
	}
	for k, v := range m.decisionCount {
		snapshot.Decisions[k] = v
	}
	return snapshot
}
