package document

import (
	"sync"

	"github.com/google/uuid"
)

// ChangeKind names the part of the document a change event concerns.
type ChangeKind string

const (
	ChangeAccount      ChangeKind = "account"
	ChangeAccountType  ChangeKind = "account_type"
	ChangeCategory     ChangeKind = "category"
	ChangeBudgetAmount ChangeKind = "budget_amount"
	ChangeTransaction  ChangeKind = "transaction"
	ChangeScheduled    ChangeKind = "scheduled_transaction"
	ChangeBudgetView   ChangeKind = "budget_view"
)

// ChangeAction names what happened to the entity.
type ChangeAction string

const (
	ActionCreated ChangeAction = "created"
	ActionUpdated ChangeAction = "updated"
	ActionDeleted ChangeAction = "deleted"
)

// ChangeEvent identifies a successful mutation: which kind of entity, what
// happened, and its id (uuid.Nil for document-scoped changes). It never
// carries entity payloads.
type ChangeEvent struct {
	Kind   ChangeKind
	Action ChangeAction
	ID     uuid.UUID
}

// notifier fans change events out to subscribers. Delivery is non-blocking:
// a subscriber that stops draining its channel loses events rather than
// stalling mutations.
type notifier struct {
	mu     sync.Mutex
	nextID int
	subs   map[int]chan ChangeEvent
}

func newNotifier() *notifier {
	return &notifier{subs: make(map[int]chan ChangeEvent)}
}

func (n *notifier) subscribe(buffer int) (<-chan ChangeEvent, func()) {
	n.mu.Lock()
	defer n.mu.Unlock()

	id := n.nextID
	n.nextID++
	ch := make(chan ChangeEvent, buffer)
	n.subs[id] = ch

	cancel := func() {
		n.mu.Lock()
		defer n.mu.Unlock()
		if sub, ok := n.subs[id]; ok {
			delete(n.subs, id)
			close(sub)
		}
	}
	return ch, cancel
}

func (n *notifier) publish(e ChangeEvent) {
	n.mu.Lock()
	defer n.mu.Unlock()
	for _, ch := range n.subs {
		select {
		case ch <- e:
		default:
		}
	}
}

// Subscribe registers a change listener. The returned cancel function must
// be called to release the subscription; it closes the channel.
func (d *Document) Subscribe(buffer int) (<-chan ChangeEvent, func()) {
	if buffer <= 0 {
		buffer = 64
	}
	return d.notifier.subscribe(buffer)
}

// notify is called with the document lock held, after the mutation has
// fully committed. Sends never block, so holding the lock is safe.
func (d *Document) notify(kind ChangeKind, action ChangeAction, id uuid.UUID) {
	d.notifier.publish(ChangeEvent{Kind: kind, Action: action, ID: id})
}
