package mainloop

import "sync"

// Coalescer merges bursts of same-key tasks into one run of the latest
// callback, e.g. a terminal reporting ten titles while one frame is drawn.
type Coalescer struct {
	mu        sync.Mutex
	pending   map[string]bool
	callbacks map[string]func()
	post      func(func()) bool
	destroyed bool
}

// NewCoalescer creates a coalescer scheduling through post, usually
// Loop.Post.
func NewCoalescer(post func(func()) bool) *Coalescer {
	if post == nil {
		panic("mainloop.NewCoalescer: post function cannot be nil")
	}

	return &Coalescer{
		pending:   make(map[string]bool),
		callbacks: make(map[string]func()),
		post:      post,
	}
}

// Post records fn as the latest callback for key and schedules a run if
// none is pending.
func (c *Coalescer) Post(key string, fn func()) {
	if fn == nil || key == "" {
		return
	}

	c.mu.Lock()
	if c.destroyed {
		c.mu.Unlock()
		return
	}
	c.callbacks[key] = fn
	if c.pending[key] {
		c.mu.Unlock()
		return
	}
	c.pending[key] = true
	post := c.post
	c.mu.Unlock()

	if !post(func() { c.run(key) }) {
		c.Cancel(key)
	}
}

func (c *Coalescer) run(key string) {
	c.mu.Lock()
	if c.destroyed {
		c.mu.Unlock()
		return
	}
	fn := c.callbacks[key]
	delete(c.pending, key)
	delete(c.callbacks, key)
	c.mu.Unlock()

	if fn != nil {
		fn()
	}
}

// Cancel drops the pending callback for key. A run already scheduled
// becomes a no-op.
func (c *Coalescer) Cancel(key string) {
	c.mu.Lock()
	delete(c.pending, key)
	delete(c.callbacks, key)
	c.mu.Unlock()
}

// Pending reports whether a run for key is scheduled.
func (c *Coalescer) Pending(key string) bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.pending[key]
}

// Destroy drops all pending work; later posts are ignored.
func (c *Coalescer) Destroy() {
	c.mu.Lock()
	c.destroyed = true
	c.pending = map[string]bool{}
	c.callbacks = map[string]func(){}
	c.mu.Unlock()
}
