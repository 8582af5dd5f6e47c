package bus

import (
	"sync"

	"github.com/google/uuid"
)

// WindowID identifies one open window on the bus.
type WindowID string

// NewWindowID generates a unique window id.
func NewWindowID() WindowID {
	return WindowID(uuid.NewString())
}

const (
	inboxSize  = 256
	windowSize = 64
)

// Bus routes messages from windows to the engine's single-threaded inbox
// and events from the engine back out to windows. All message handling is
// serialized by the one goroutine started in Start, so no two reward
// applications can interleave.
type Bus struct {
	mu      sync.RWMutex
	windows map[WindowID]chan Event

	inbox chan Message
	done  chan struct{}
	once  sync.Once
}

// New creates a bus with no windows attached.
func New() *Bus {
	return &Bus{
		windows: make(map[WindowID]chan Event),
		inbox:   make(chan Message, inboxSize),
		done:    make(chan struct{}),
	}
}

// Start launches the dispatch goroutine. Every inbox message is passed to
// handler in arrival order.
func (b *Bus) Start(handler func(Message)) {
	go func() {
		for {
			select {
			case msg := <-b.inbox:
				handler(msg)
			case <-b.done:
				return
			}
		}
	}()
}

// Close stops the dispatch goroutine. Idempotent.
func (b *Bus) Close() {
	b.once.Do(func() {
		close(b.done)
	})
}

// Subscribe registers a new window and returns its id plus the channel
// its events arrive on. The caller must Unsubscribe when the window
// closes.
func (b *Bus) Subscribe() (WindowID, <-chan Event) {
	id := NewWindowID()
	ch := make(chan Event, windowSize)

	b.mu.Lock()
	b.windows[id] = ch
	b.mu.Unlock()

	return id, ch
}

// Unsubscribe removes a window and closes its channel so receivers
// unblock. Events already queued on the channel are discarded with it.
// All sends hold the lock, so closing here cannot race a send.
func (b *Bus) Unsubscribe(id WindowID) {
	b.mu.Lock()
	if ch, ok := b.windows[id]; ok {
		delete(b.windows, id)
		close(ch)
	}
	b.mu.Unlock()
}

// Publish queues a message for the engine. Fire-and-forget: if the inbox
// is full the message is dropped and the sender never learns of it.
func (b *Bus) Publish(msg Message) {
	select {
	case b.inbox <- msg:
	default:
	}
}

// SendTo delivers an event to one window. Unknown window ids and full
// window buffers drop the event silently.
func (b *Bus) SendTo(id WindowID, ev Event) {
	b.mu.RLock()
	defer b.mu.RUnlock()
	ch, ok := b.windows[id]
	if !ok {
		return
	}
	select {
	case ch <- ev:
	default:
	}
}

// Broadcast delivers an event to every open window independently. FIFO
// holds per window; nothing is guaranteed across windows.
func (b *Bus) Broadcast(ev Event) {
	b.mu.RLock()
	defer b.mu.RUnlock()
	for _, ch := range b.windows {
		select {
		case ch <- ev:
		default:
		}
	}
}
