package player

import "sync"

type listener struct {
	id int
	fn func(Event)
}

// dispatcher delivers events to listeners on a single goroutine, in the
// order they were emitted. emit never blocks, so it may be called from any
// goroutine including listeners themselves.
type dispatcher struct {
	mu        sync.Mutex
	queue     []Event
	listeners []listener
	nextID    int
	closed    bool

	wake chan struct{}
	done chan struct{}
}

func newDispatcher() *dispatcher {
	d := &dispatcher{
		wake: make(chan struct{}, 1),
		done: make(chan struct{}),
	}
	go d.run()
	return d
}

func (d *dispatcher) subscribe(fn func(Event)) func() {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.nextID++
	id := d.nextID
	d.listeners = append(d.listeners, listener{id: id, fn: fn})

	var once sync.Once
	return func() {
		once.Do(func() { d.remove(id) })
	}
}

func (d *dispatcher) remove(id int) {
	d.mu.Lock()
	defer d.mu.Unlock()
	for i, l := range d.listeners {
		if l.id == id {
			d.listeners = append(d.listeners[:i:i], d.listeners[i+1:]...)
			return
		}
	}
}

func (d *dispatcher) listenerCount() int {
	d.mu.Lock()
	defer d.mu.Unlock()
	return len(d.listeners)
}

func (d *dispatcher) emit(e Event) {
	d.mu.Lock()
	if d.closed {
		d.mu.Unlock()
		return
	}
	d.queue = append(d.queue, e)
	d.mu.Unlock()

	select {
	case d.wake <- struct{}{}:
	default:
	}
}

func (d *dispatcher) run() {
	for {
		select {
		case <-d.wake:
		case <-d.done:
			return
		}
		for {
			e, fns, ok := d.pop()
			if !ok {
				break
			}
			for _, fn := range fns {
				fn(e)
			}
		}
	}
}

// pop returns the next event and the listeners registered at that moment.
func (d *dispatcher) pop() (Event, []func(Event), bool) {
	d.mu.Lock()
	defer d.mu.Unlock()
	if d.closed || len(d.queue) == 0 {
		return Event{}, nil, false
	}
	e := d.queue[0]
	d.queue[0] = Event{}
	d.queue = d.queue[1:]

	fns := make([]func(Event), len(d.listeners))
	for i, l := range d.listeners {
		fns[i] = l.fn
	}
	return e, fns, true
}

func (d *dispatcher) close() {
	d.mu.Lock()
	defer d.mu.Unlock()
	if d.closed {
		return
	}
	d.closed = true
	d.queue = nil
	d.listeners = nil
	close(d.done)
}
