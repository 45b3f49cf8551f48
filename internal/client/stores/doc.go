// Package stores holds the client-side state: session, cart, notification
// and theme. Each store caches its state in memory, serializes its own
// mutations with a mutex, and writes through to the key-value repository
// before a mutation is considered committed. Corrupt persisted blobs are
// logged and degrade to the empty/default state; they never propagate.
package stores
