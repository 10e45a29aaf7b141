package store

import "github.com/studio-ormeau/folio/pkg/api"

// Inbox tracks contact messages, the currently selected detail, and the
// unread badge count. The read flag only ever moves false → true, and
// only after the server has confirmed the mark-read mutation.
type Inbox struct {
	*List[api.Contact]

	selectedID int // 0 = no selection

	// IDs with a mark-read mutation in flight, so re-selecting an
	// unconfirmed contact doesn't fire a second one.
	pendingRead map[int]bool
}

// NewInbox creates an inbox pipeline with the given page size.
func NewInbox(pageSize int) *Inbox {
	s := New(func(c api.Contact) int { return c.ID })
	return &Inbox{
		List:        NewList(s, pageSize, ContactMatches, ContactFilter),
		pendingRead: map[int]bool{},
	}
}

// Refresh replaces the cache with a freshly fetched list. A selection
// that no longer exists is cleared.
func (i *Inbox) Refresh(contacts []api.Contact) {
	i.Store().Replace(contacts)
	if i.selectedID != 0 {
		if _, ok := i.Store().Get(i.selectedID); !ok {
			i.selectedID = 0
		}
	}
}

// UnreadCount is the number of cached contacts still unread.
func (i *Inbox) UnreadCount() int {
	count := 0
	for _, c := range i.Store().Items() {
		if !c.Read {
			count++
		}
	}
	return count
}

// Select makes the contact the displayed detail and reports whether the
// caller must issue a mark-read mutation (first view of an unread
// message). The local flag is not flipped here; call ConfirmRead once
// the server accepts.
func (i *Inbox) Select(id int) (needsMarkRead bool) {
	contact, ok := i.Store().Get(id)
	if !ok {
		return false
	}
	i.selectedID = id
	if contact.Read || i.pendingRead[id] {
		return false
	}
	i.pendingRead[id] = true
	return true
}

// Selected returns the contact shown in the detail pane.
func (i *Inbox) Selected() (api.Contact, bool) {
	if i.selectedID == 0 {
		return api.Contact{}, false
	}
	return i.Store().Get(i.selectedID)
}

// ConfirmRead applies a server-confirmed mark-read locally. It never
// flips a read contact back.
func (i *Inbox) ConfirmRead(id int) {
	delete(i.pendingRead, id)
	contact, ok := i.Store().Get(id)
	if !ok || contact.Read {
		return
	}
	contact.Read = true
	i.Store().ApplyUpdate(contact)
}

// AbortRead releases a failed mark-read so a later selection retries it.
func (i *Inbox) AbortRead(id int) {
	delete(i.pendingRead, id)
}

// Delete removes a server-deleted contact from the cache, clearing the
// detail pane when it was the one on display.
func (i *Inbox) Delete(id int) {
	i.Store().ApplyRemove(id)
	delete(i.pendingRead, id)
	if i.selectedID == id {
		i.selectedID = 0
	}
}
