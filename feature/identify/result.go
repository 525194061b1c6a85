package identify

import (
	"fmt"
	"sync"
)

// Result collects the labels of one or more paths in first-seen order.
// Plain labels are deduplicated by their text; counted labels accumulate a count
// and are rendered as "<n> <name> file(s)". A Result is safe for concurrent use.
type Result struct {
	mu      sync.Mutex
	order   []entry
	labels  map[string]struct{}
	counted map[string]int
}

type entry struct {
	text    string
	counter bool
}

// NewResult creates an empty Result.
func NewResult() *Result {
	return &Result{
		labels:  make(map[string]struct{}),
		counted: make(map[string]int),
	}
}

// Add records a label unless it is already present.
func (r *Result) Add(label string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.labels[label]; ok {
		return
	}
	r.labels[label] = struct{}{}
	r.order = append(r.order, entry{text: label})
}

// Count increments the counter called name.
func (r *Result) Count(name string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.counted[name]; !ok {
		r.order = append(r.order, entry{text: name, counter: true})
	}
	r.counted[name]++
}

// Len returns the number of distinct labels and counters.
func (r *Result) Len() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.order)
}

// Labels renders the collected labels. It never returns nil.
func (r *Result) Labels() []string {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]string, 0, len(r.order))
	for _, e := range r.order {
		if e.counter {
			out = append(out, countLabel(r.counted[e.text], e.text))
			continue
		}
		out = append(out, e.text)
	}
	return out
}

func countLabel(n int, name string) string {
	if n == 1 {
		return fmt.Sprintf("1 %s file", name)
	}
	return fmt.Sprintf("%d %s files", n, name)
}
