package animation

// Callback is invoked once per rendered frame. Return false to remove the
// callback from the animator.
type Callback func() bool

// Animator dispatches frame callbacks for a single screen.
//
// Animator is owned by the UI thread and is not safe for concurrent use;
// register and unregister callbacks only from frame or event handlers.
type Animator struct {
	callbacks map[uint32]Callback
	nextToken uint32
}

// NewAnimator creates an empty animator.
func NewAnimator() *Animator {
	return &Animator{callbacks: make(map[uint32]Callback)}
}

// Register adds a frame callback and returns its token. Token zero is never
// allocated, so callers may use it as a "not registered" sentinel.
func (a *Animator) Register(cb Callback) uint32 {
	for {
		a.nextToken++
		// Skip the sentinel and, after wraparound, any token still in use.
		if a.nextToken == 0 {
			continue
		}
		if _, used := a.callbacks[a.nextToken]; used {
			continue
		}
		break
	}
	a.callbacks[a.nextToken] = cb
	return a.nextToken
}

// Unregister removes the callback with the given token, if registered.
func (a *Animator) Unregister(token uint32) {
	delete(a.callbacks, token)
}

// HasCallbacks returns whether any callbacks are currently registered.
func (a *Animator) HasCallbacks() bool {
	return len(a.callbacks) > 0
}

// Frame invokes every registered callback once. Callbacks that return false
// are removed after the full pass completes, so the registry is never
// mutated mid-traversal. No ordering is guaranteed between independently
// registered callbacks.
func (a *Animator) Frame() {
	if len(a.callbacks) == 0 {
		return
	}

	type entry struct {
		token uint32
		cb    Callback
	}
	pending := make([]entry, 0, len(a.callbacks))
	for token, cb := range a.callbacks {
		pending = append(pending, entry{token, cb})
	}

	var done []uint32
	for _, e := range pending {
		// The callback may have unregistered itself (or been unregistered
		// by an earlier callback) during this pass.
		if _, ok := a.callbacks[e.token]; !ok {
			continue
		}
		if !e.cb() {
			done = append(done, e.token)
		}
	}

	for _, token := range done {
		delete(a.callbacks, token)
	}
}
