// Package domain contains the core business entities of the itinerary
// service: agencies, agents, users, itineraries, trips and lodgings, the
// calendar Date value type, per-entity validation and patch types, and the
// validation error taxonomy. It is independent of storage and transport.
package domain
