package service

import (
	"context"
	"errors"
	"log/slog"

	"github.com/phrazzld/itinerary-api/internal/domain"
	"github.com/phrazzld/itinerary-api/internal/platform/logger"
	"github.com/phrazzld/itinerary-api/internal/store"
)

// base carries what every service shares: the session provider and a
// component logger.
type base struct {
	name     string
	sessions store.SessionProvider
	logger   *slog.Logger
}

func newBase(name string, sessions store.SessionProvider, l *slog.Logger) base {
	if sessions == nil {
		panic("sessions cannot be nil")
	}
	if l == nil {
		l = slog.Default()
	}
	return base{
		name:     name,
		sessions: sessions,
		logger:   l.With(slog.String("component", name+"_service")),
	}
}

func (b base) log(ctx context.Context) *slog.Logger {
	return logger.FromContextOrDefault(ctx, b.logger)
}

// fail logs err and returns it in the shape callers expect: validation errors
// unchanged, everything else wrapped in a ServiceError.
func (b base) fail(ctx context.Context, op, msg string, err error) error {
	log := b.log(ctx)
	if isExpected(err) {
		log.Debug(msg, slog.String("operation", op), slog.String("error", err.Error()))
	} else {
		log.Error(msg, slog.String("operation", op), slog.String("error", err.Error()))
	}

	var vErr *domain.ValidationError
	if errors.As(err, &vErr) {
		return err
	}
	return NewServiceError(b.name, op, msg, err)
}
