package handler

import (
	"sync"

	"github.com/google/uuid"
)

// Notice keys carried in the ?notice= query of the home redirect.
const (
	noticeKeyEmptyCity    = "empty-city"
	noticeKeyAlreadyAdded = "already-added"
	noticeKeyBusy         = "busy"
	noticeKeyNotFound     = "not-found"
)

const maxPendingNotices = 64

var fixedNotices = map[string]string{
	noticeKeyEmptyCity:    "Enter City Name",
	noticeKeyAlreadyAdded: "City already added!",
	noticeKeyBusy:         "Please wait, a city is still loading",
	noticeKeyNotFound:     "City is not on the dashboard",
}

// notices holds messages that are not known in advance, such as provider
// errors, until the redirected page reads them once.
type notices struct {
	mu    sync.Mutex
	msgs  map[string]string
	order []string
}

func newNotices() *notices {
	return &notices{msgs: make(map[string]string)}
}

// put stores msg and returns the key to redirect with. The oldest unread
// message is dropped once maxPendingNotices are pending.
func (n *notices) put(msg string) string {
	n.mu.Lock()
	defer n.mu.Unlock()

	if len(n.order) >= maxPendingNotices {
		delete(n.msgs, n.order[0])
		n.order = n.order[1:]
	}

	key := uuid.NewString()
	n.msgs[key] = msg
	n.order = append(n.order, key)

	return key
}

// take returns the message for key. Stored messages are forgotten after
// the first read; unknown keys yield "".
func (n *notices) take(key string) string {
	if msg, ok := fixedNotices[key]; ok {
		return msg
	}

	n.mu.Lock()
	defer n.mu.Unlock()

	msg, ok := n.msgs[key]
	if !ok {
		return ""
	}

	delete(n.msgs, key)
	for i, k := range n.order {
		if k == key {
			n.order = append(n.order[:i:i], n.order[i+1:]...)
			break
		}
	}

	return msg
}
