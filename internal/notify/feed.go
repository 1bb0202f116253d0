package notify

import (
	"sync"
	"time"

	"github.com/goodnatureofminers/coinmerger-backend/internal/model"
)

// DefaultFeedSize is the number of events a Feed keeps.
const DefaultFeedSize = 100

// Event is one notification as shown to the user.
type Event struct {
	Seq     uint64     `json:"seq"`
	Kind    Kind       `json:"kind"`
	Message string     `json:"message"`
	TxID    model.TxID `json:"txId,omitempty"`
	Link    string     `json:"link,omitempty"`
	Time    time.Time  `json:"time"`
}

// Feed is a bounded in-memory notification log. Sequence numbers start at 1
// and grow by one per event; old events are dropped once the feed is full.
type Feed struct {
	mu     sync.Mutex
	events []Event
	size   int
	seq    uint64
	link   func(model.TxID) string
	now    func() time.Time
}

// NewFeed builds a Feed keeping at most size events. A non-positive size
// means DefaultFeedSize. link renders a transaction reference and may be nil.
func NewFeed(size int, link func(model.TxID) string) *Feed {
	if size <= 0 {
		size = DefaultFeedSize
	}
	return &Feed{size: size, link: link, now: time.Now}
}

func (f *Feed) Submit(id model.TxID) {
	f.push(Event{Kind: KindSubmit, Message: submitMessage, TxID: id})
}

func (f *Feed) Success(id model.TxID) {
	f.push(Event{Kind: KindSuccess, Message: successMessage, TxID: id})
}

func (f *Feed) Error(message string) {
	f.push(Event{Kind: KindError, Message: message})
}

func (f *Feed) push(e Event) {
	f.mu.Lock()
	defer f.mu.Unlock()

	f.seq++
	e.Seq = f.seq
	e.Time = f.now()
	if e.TxID != "" && f.link != nil {
		e.Link = f.link(e.TxID)
	}
	if len(f.events) == f.size {
		copy(f.events, f.events[1:])
		f.events = f.events[:len(f.events)-1]
	}
	f.events = append(f.events, e)
}

// Since returns the retained events with a sequence number above after, oldest
// first.
func (f *Feed) Since(after uint64) []Event {
	f.mu.Lock()
	defer f.mu.Unlock()

	out := make([]Event, 0, len(f.events))
	for _, e := range f.events {
		if e.Seq > after {
			out = append(out, e)
		}
	}
	return out
}

// LastSeq returns the sequence number of the newest event, zero when empty.
func (f *Feed) LastSeq() uint64 {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.seq
}
