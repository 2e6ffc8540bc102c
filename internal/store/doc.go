// Package store defines interfaces for data persistence operations.
// These interfaces abstract the underlying data storage mechanism from
// the application's core logic, allowing business rules to remain
// independent of specific database technologies or persistence details.
//
// Each entity of the itinerary domain has its own store interface. Stores
// bound to a single transaction are handed out through a SessionProvider,
// and the list filters and paging types used by every List method live in
// this package as well.
package store
