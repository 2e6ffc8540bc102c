package main

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/phrazzld/itinerary-api/internal/api"
	"github.com/phrazzld/itinerary-api/internal/domain"
	"github.com/phrazzld/itinerary-api/internal/store"
)

// seedDemoData loads a small demo data set through the services: two agencies,
// three users and three itineraries with their trips and lodgings.
// It does nothing when any agency already exists.
func seedDemoData(ctx context.Context, s api.Services, logger *slog.Logger) error {
	_, total, err := s.Agencies.List(ctx, store.AgencyFilter{}, store.Page{Number: 1, Size: 1})
	if err != nil {
		return fmt.Errorf("failed to check for existing data: %w", err)
	}
	if total > 0 {
		logger.Info("Database already contains data, skipping seed", "agencies", total)
		return nil
	}

	agencies := []*domain.Agency{
		{Name: "Worldwide Adventures", Phone: "555-0100", Address: "123 Travel Lane", Logo: "worldwide_adventures.png"},
		{Name: "Luxury Travels", Phone: "555-0200", Address: "456 First Class Blvd", Logo: "luxury_travels.png"},
	}
	for _, a := range agencies {
		if err := s.Agencies.Create(ctx, a); err != nil {
			return fmt.Errorf("failed to seed agency %q: %w", a.Name, err)
		}
	}

	users := []*domain.User{
		{Name: "John Doe", Email: "john@example.com", AgencyID: agencies[0].ID},
		{Name: "Jane Smith", Email: "jane@example.com", AgencyID: agencies[0].ID},
		{Name: "Bob Johnson", Email: "bob@example.com", AgencyID: agencies[1].ID},
	}
	for _, u := range users {
		if err := s.Users.Create(ctx, u); err != nil {
			return fmt.Errorf("failed to seed user %q: %w", u.Email, err)
		}
	}

	start := domain.NewDate(2024, time.June, 1)
	itineraries := []*domain.Itinerary{
		{TourName: "Europe Adventure", DateStart: start, DateEnd: start.AddDays(14), UserID: users[0].ID},
		{TourName: "Asian Discovery", DateStart: start.AddDays(30), DateEnd: start.AddDays(45), UserID: users[1].ID},
		{TourName: "Mediterranean Luxury", DateStart: start.AddDays(60), DateEnd: start.AddDays(75), UserID: users[2].ID},
	}
	for _, it := range itineraries {
		if err := s.Itineraries.Create(ctx, it); err != nil {
			return fmt.Errorf("failed to seed itinerary %q: %w", it.TourName, err)
		}
	}

	trips := []*domain.Trip{
		{
			DateStart: start, DateEnd: start.AddDays(1),
			Transporter: "Eurostar", Mode: domain.TravelModeTrain,
			LocationStart: "London", LocationEnd: "Paris", ItineraryID: itineraries[0].ID,
		},
		{
			DateStart: start.AddDays(5), DateEnd: start.AddDays(5),
			Transporter: "Air France", Mode: domain.TravelModeFlight,
			LocationStart: "Paris", LocationEnd: "Rome", ItineraryID: itineraries[0].ID,
		},
		{
			DateStart: start.AddDays(30), DateEnd: start.AddDays(31),
			Transporter: "Japan Airlines", Mode: domain.TravelModeFlight,
			LocationStart: "Tokyo", LocationEnd: "Seoul", ItineraryID: itineraries[1].ID,
		},
	}
	for _, t := range trips {
		if err := s.Trips.Create(ctx, t); err != nil {
			return fmt.Errorf("failed to seed trip %s-%s: %w", t.LocationStart, t.LocationEnd, err)
		}
	}

	lodgings := []*domain.Lodging{
		{
			DateStart: start.AddDays(1), DateEnd: start.AddDays(5),
			Name: "Paris Hilton", Address: "123 Champs-Élysées", Phone: "33-1-234567",
			RoomCount: 1, ItineraryID: itineraries[0].ID,
		},
		{
			DateStart: start.AddDays(5), DateEnd: start.AddDays(10),
			Name: "Rome Luxury Hotel", Address: "45 Vatican Road", Phone: "39-06-123456",
			RoomCount: 1, ItineraryID: itineraries[0].ID,
		},
		{
			DateStart: start.AddDays(31), DateEnd: start.AddDays(36),
			Name: "Seoul Grand Hotel", Address: "789 Gangnam Blvd", Phone: "82-2-345678",
			RoomCount: 2, ItineraryID: itineraries[1].ID,
		},
	}
	for _, l := range lodgings {
		if err := s.Lodgings.Create(ctx, l); err != nil {
			return fmt.Errorf("failed to seed lodging %q: %w", l.Name, err)
		}
	}

	logger.Info("Database seeded successfully",
		"agencies", len(agencies),
		"users", len(users),
		"itineraries", len(itineraries),
		"trips", len(trips),
		"lodgings", len(lodgings))
	return nil
}
