// Package crawl — BFS queue with deduplication.
// Normalized URLs enter once; discovery order is preserved so bulk
// exports process pages in the order they were found.
package crawl

// Queue is a breadth-first URL queue that rejects duplicates.
type Queue struct {
	items   []string
	visited map[string]bool
	idx     int // next read position
}

// NewQueue creates an empty Queue.
func NewQueue() *Queue {
	return &Queue{
		visited: make(map[string]bool),
	}
}

// Add enqueues a URL unless it has been seen before.
func (q *Queue) Add(url string) {
	if q.visited[url] {
		return
	}
	q.visited[url] = true
	q.items = append(q.items, url)
}

// HasNext reports whether unprocessed URLs remain.
func (q *Queue) HasNext() bool {
	return q.idx < len(q.items)
}

// Next returns the next unprocessed URL and advances the pointer.
func (q *Queue) Next() string {
	url := q.items[q.idx]
	q.idx++
	return url
}

// Visited returns the number of unique URLs seen so far.
func (q *Queue) Visited() int {
	return len(q.visited)
}

// All returns every discovered URL in discovery order.
func (q *Queue) All() []string {
	return q.items
}
