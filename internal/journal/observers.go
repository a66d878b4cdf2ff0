package journal

// Observer receives replay lifecycle notifications. Every callback is
// optional; they fire synchronously on the replay goroutine.
type Observer struct {
	Start    func()
	Progress func(done, total int)
	Finish   func()
}

// EntryFunc handles one decoded journal entry on the live path.
type EntryFunc func(*Entry)

// Subscribe registers an observer under a name, replacing any previous
// observer registered with the same name.
func (c *Controller) Subscribe(name string, obs Observer) {
	c.obsMu.Lock()
	defer c.obsMu.Unlock()
	c.observers[name] = obs
}

// Unsubscribe removes a named observer.
func (c *Controller) Unsubscribe(name string) {
	c.obsMu.Lock()
	defer c.obsMu.Unlock()
	delete(c.observers, name)
}

// RegisterEventCallbacks attaches fn to each named event. Callbacks
// fire on the live path only, after the entry has been applied to the
// store.
func (c *Controller) RegisterEventCallbacks(events []string, fn EntryFunc) {
	c.obsMu.Lock()
	defer c.obsMu.Unlock()
	for _, event := range events {
		c.eventCallbacks[event] = append(c.eventCallbacks[event], fn)
	}
}

func (c *Controller) fireStart() {
	for _, obs := range c.snapshotObservers() {
		if obs.Start != nil {
			safeCall(func() { obs.Start() })
		}
	}
}

func (c *Controller) fireProgress(done, total int) {
	for _, obs := range c.snapshotObservers() {
		if obs.Progress != nil {
			safeCall(func() { obs.Progress(done, total) })
		}
	}
}

func (c *Controller) fireFinish() {
	for _, obs := range c.snapshotObservers() {
		if obs.Finish != nil {
			safeCall(func() { obs.Finish() })
		}
	}
}

func (c *Controller) fireEventCallbacks(e *Entry) {
	c.obsMu.RLock()
	callbacks := c.eventCallbacks[e.Event]
	c.obsMu.RUnlock()
	for _, fn := range callbacks {
		safeCall(func() { fn(e) })
	}
}

func (c *Controller) snapshotObservers() []Observer {
	c.obsMu.RLock()
	defer c.obsMu.RUnlock()
	observers := make([]Observer, 0, len(c.observers))
	for _, obs := range c.observers {
		observers = append(observers, obs)
	}
	return observers
}

// safeCall keeps a panicking callback from killing the replay.
func safeCall(fn func()) {
	defer func() {
		_ = recover()
	}()
	fn()
}
