package loader

import "sync"

// Committer guards the displayed dataset against overlapping reloads. Loads
// are not cancellable mid-flight, so each attempt takes a sequence number
// from Begin; Commit accepts a result only while its sequence is the most
// recently issued one, discarding completions from attempts that a newer
// reload has superseded.
type Committer struct {
	mu      sync.Mutex
	issued  uint64
	current *Result
}

// Begin registers a new load attempt and returns its sequence number.
func (c *Committer) Begin() uint64 {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.issued++
	return c.issued
}

// Commit publishes the result if it belongs to the newest attempt. It
// returns false when the result is stale and was discarded.
func (c *Committer) Commit(res *Result) bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	if res == nil || res.Seq != c.issued {
		return false
	}
	c.current = res
	return true
}

// Current returns the most recently committed result, or nil before the
// first successful load.
func (c *Committer) Current() *Result {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.current
}
