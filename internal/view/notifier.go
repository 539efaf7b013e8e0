package view

import "sync"

// Notifier queues shopper alerts until the next page render shows them.
type Notifier struct {
	mu      sync.Mutex
	pending []string
}

func NewNotifier() *Notifier {
	return &Notifier{}
}

// Alert queues msg. Empty messages are dropped.
func (n *Notifier) Alert(msg string) {
	if msg == "" {
		return
	}
	n.mu.Lock()
	n.pending = append(n.pending, msg)
	n.mu.Unlock()
}

// Drain returns queued alerts in order and empties the queue.
func (n *Notifier) Drain() []string {
	n.mu.Lock()
	defer n.mu.Unlock()
	out := n.pending
	n.pending = nil
	return out
}
