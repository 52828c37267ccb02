package navigation

import "sync"

// Router is the location provider a shell reads from and navigates with.
type Router interface {
	CurrentPath() string
	Navigate(path string)
}

// PathNotifier is implemented by routers that announce location changes.
// The returned function cancels the subscription.
type PathNotifier interface {
	Subscribe(fn func(path string)) (cancel func())
}

// MemoryRouter keeps its location in memory and notifies subscribers
// synchronously from Navigate.
type MemoryRouter struct {
	mu          sync.Mutex
	history     []string
	subscribers map[int]func(string)
	nextID      int
}

func NewMemoryRouter(initial string) *MemoryRouter {
	if initial == "" {
		initial = "/"
	}
	return &MemoryRouter{
		history:     []string{initial},
		subscribers: make(map[int]func(string)),
	}
}

func (r *MemoryRouter) CurrentPath() string {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.history[len(r.history)-1]
}

func (r *MemoryRouter) Navigate(path string) {
	r.mu.Lock()
	r.history = append(r.history, path)
	fns := make([]func(string), 0, len(r.subscribers))
	for _, fn := range r.subscribers {
		fns = append(fns, fn)
	}
	r.mu.Unlock()

	for _, fn := range fns {
		fn(path)
	}
}

func (r *MemoryRouter) Subscribe(fn func(path string)) func() {
	r.mu.Lock()
	defer r.mu.Unlock()
	id := r.nextID
	r.nextID++
	r.subscribers[id] = fn
	return func() {
		r.mu.Lock()
		defer r.mu.Unlock()
		delete(r.subscribers, id)
	}
}

// History returns every location visited, oldest first.
func (r *MemoryRouter) History() []string {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]string, len(r.history))
	copy(out, r.history)
	return out
}

// Subscribers reports the number of live subscriptions.
func (r *MemoryRouter) Subscribers() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.subscribers)
}
