// Package notifications provides the accumulated-failure validation model
// used by the store domain. Instead of returning an error on the first
// broken invariant, entities, commands and handler results collect every
// violation as a Notification and expose an overall validity flag.
//
// The package includes:
//   - Notification: a single recorded validation failure (field key + message)
//   - Notifiable: an embeddable collector with merge support
//   - Notifier: the read-side interface used when merging child notifications
//
// The intent is that a domain object is always fully constructed: a broken
// invariant marks it invalid but never prevents construction. Callers decide
// what to do with the collected failures, typically by merging them into a
// command result.
package notifications
