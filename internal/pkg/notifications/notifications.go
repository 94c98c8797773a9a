package notifications

// Notification is a single recorded validation failure. Key identifies the
// field or invariant that failed (for example "Order.Customer") and Message
// is the human-readable description.
type Notification struct {
	Key     string
	Message string
}

// New creates a Notification for the given field key and message.
func New(key, message string) Notification {
	return Notification{
		Key:     key,
		Message: message,
	}
}

// String returns "key: message", the form used in logs and error payloads.
func (n Notification) String() string {
	return n.Key + ": " + n.Message
}

// Notifier is the read side of a notification collector. Any type embedding
// Notifiable satisfies it, which is what makes cross-object merging work
// (an order merging its customer's failures, a result merging an order's).
type Notifier interface {
	Notifications() []Notification
	IsValid() bool
}

// Notifiable collects validation failures. It is meant to be embedded into
// entities, commands and results; the zero value is ready to use and valid.
//
// Notifiable is not safe for concurrent mutation. Domain objects are built
// and validated within a single request, so no locking is provided.
type Notifiable struct {
	notifications []Notification
}

// AddNotification records a single validation failure.
func (n *Notifiable) AddNotification(key, message string) {
	n.notifications = append(n.notifications, New(key, message))
}

// AddNotifications records a batch of already-built notifications.
func (n *Notifiable) AddNotifications(items ...Notification) {
	n.notifications = append(n.notifications, items...)
}

// Merge copies every notification from the source collector into this one.
// A nil source is ignored so callers can merge optional children directly.
func (n *Notifiable) Merge(source Notifier) {
	if source == nil {
		return
	}
	n.notifications = append(n.notifications, source.Notifications()...)
}

// Notifications returns the recorded failures in insertion order.
// The returned slice is a copy; mutating it does not affect the collector.
func (n *Notifiable) Notifications() []Notification {
	out := make([]Notification, len(n.notifications))
	copy(out, n.notifications)
	return out
}

// IsValid reports whether no validation failure has been recorded.
func (n *Notifiable) IsValid() bool {
	return len(n.notifications) == 0
}
