package notification

import (
	"sync"

	"jobboard/pkg/domain"
)

// subscriberBuffer is the per-listener channel capacity. A listener that
// falls this far behind starts losing notifications.
const subscriberBuffer = 16

// Broadcaster fans notifications out to in-process listeners, keyed by the
// employer they are addressed to. Delivery is best-effort: sends never block,
// slow listeners drop messages. Persisted notifications remain the source of
// truth.
type Broadcaster struct {
	mu          sync.Mutex
	subscribers map[domain.EmployerID]map[chan domain.Notification]struct{}
}

// NewBroadcaster creates an empty broadcaster.
func NewBroadcaster() *Broadcaster {
	return &Broadcaster{
		subscribers: map[domain.EmployerID]map[chan domain.Notification]struct{}{},
	}
}

// Subscribe registers a listener for the employer's notifications and
// returns the delivery channel together with an unsubscribe function. The
// channel is closed on unsubscribe.
func (b *Broadcaster) Subscribe(employerID domain.EmployerID) (<-chan domain.Notification, func()) {
	ch := make(chan domain.Notification, subscriberBuffer)

	b.mu.Lock()
	defer b.mu.Unlock()

	if b.subscribers[employerID] == nil {
		b.subscribers[employerID] = map[chan domain.Notification]struct{}{}
	}
	b.subscribers[employerID][ch] = struct{}{}

	var once sync.Once
	unsubscribe := func() {
		once.Do(func() {
			b.mu.Lock()
			defer b.mu.Unlock()

			delete(b.subscribers[employerID], ch)
			if len(b.subscribers[employerID]) == 0 {
				delete(b.subscribers, employerID)
			}
			close(ch)
		})
	}

	return ch, unsubscribe
}

// Publish delivers the notification to every listener subscribed to its
// employer. Listeners whose buffer is full are skipped.
func (b *Broadcaster) Publish(notification domain.Notification) {
	b.mu.Lock()
	defer b.mu.Unlock()

	for ch := range b.subscribers[notification.EmployerID] {
		select {
		case ch <- notification:
		default:
		}
	}
}
