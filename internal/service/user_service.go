package service

import (
	"context"
	"log/slog"

	"github.com/phrazzld/itinerary-api/internal/domain"
	"github.com/phrazzld/itinerary-api/internal/store"
)

// UserService provides user operations.
type UserService interface {
	List(ctx context.Context, filter store.UserFilter, page store.Page) ([]domain.User, int, error)

	// ListByAgency lists the users of one agency. The agency_id of filter is
	// overridden. Returns store.ErrAgencyNotFound if the agency does not exist.
	ListByAgency(
		ctx context.Context,
		agencyID int64,
		filter store.UserFilter,
		page store.Page,
	) ([]domain.User, int, error)

	Get(ctx context.Context, id int64) (*domain.User, error)

	// Create returns store.ErrEmailExists when the email is taken, and a
	// validation error on agency_id when the agency does not exist.
	Create(ctx context.Context, user *domain.User) error

	Update(ctx context.Context, id int64, patch domain.UserPatch) (*domain.User, error)

	// Delete removes a user and, by cascade, the user's itineraries.
	Delete(ctx context.Context, id int64) error
}

type userService struct {
	base
}

// NewUserService creates a new UserService
func NewUserService(sessions store.SessionProvider, logger *slog.Logger) UserService {
	return &userService{base: newBase("user", sessions, logger)}
}

func (s *userService) List(
	ctx context.Context,
	filter store.UserFilter,
	page store.Page,
) ([]domain.User, int, error) {
	var (
		users []domain.User
		total int
	)
	err := s.sessions.InReadSession(ctx, func(ctx context.Context, st store.Stores) error {
		var err error
		users, total, err = st.Users.List(ctx, filter, page)
		return err
	})
	if err != nil {
		return nil, 0, s.fail(ctx, "list", "failed to list users", err)
	}
	return users, total, nil
}

func (s *userService) ListByAgency(
	ctx context.Context,
	agencyID int64,
	filter store.UserFilter,
	page store.Page,
) ([]domain.User, int, error) {
	filter.AgencyID = &agencyID

	var (
		users []domain.User
		total int
	)
	err := s.sessions.InReadSession(ctx, func(ctx context.Context, st store.Stores) error {
		if _, err := st.Agencies.GetByID(ctx, agencyID); err != nil {
			return err
		}
		var err error
		users, total, err = st.Users.List(ctx, filter, page)
		return err
	})
	if err != nil {
		return nil, 0, s.fail(ctx, "list_by_agency", "failed to list agency users", err)
	}
	return users, total, nil
}

func (s *userService) Get(ctx context.Context, id int64) (*domain.User, error) {
	var user *domain.User
	err := s.sessions.InReadSession(ctx, func(ctx context.Context, st store.Stores) error {
		var err error
		user, err = st.Users.GetByID(ctx, id)
		return err
	})
	if err != nil {
		return nil, s.fail(ctx, "get", "failed to retrieve user", err)
	}
	return user, nil
}

func (s *userService) Create(ctx context.Context, user *domain.User) error {
	if err := user.Validate(); err != nil {
		return s.fail(ctx, "create", "user validation failed", err)
	}
	err := s.sessions.InSession(ctx, func(ctx context.Context, st store.Stores) error {
		return st.Users.Create(ctx, user)
	})
	if err != nil {
		return s.fail(ctx, "create", "failed to create user", err)
	}

	s.log(ctx).Info("user created",
		slog.Int64("user_id", user.ID),
		slog.Int64("agency_id", user.AgencyID))
	return nil
}

func (s *userService) Update(ctx context.Context, id int64, patch domain.UserPatch) (*domain.User, error) {
	var user *domain.User
	err := s.sessions.InSession(ctx, func(ctx context.Context, st store.Stores) error {
		current, err := st.Users.GetByID(ctx, id)
		if err != nil {
			return err
		}
		if err := patch.Apply(current); err != nil {
			return err
		}
		if err := current.Validate(); err != nil {
			return err
		}
		if err := st.Users.Update(ctx, current); err != nil {
			return err
		}
		user = current
		return nil
	})
	if err != nil {
		return nil, s.fail(ctx, "update", "failed to update user", err)
	}

	s.log(ctx).Info("user updated", slog.Int64("user_id", id))
	return user, nil
}

func (s *userService) Delete(ctx context.Context, id int64) error {
	err := s.sessions.InSession(ctx, func(ctx context.Context, st store.Stores) error {
		return st.Users.Delete(ctx, id)
	})
	if err != nil {
		return s.fail(ctx, "delete", "failed to delete user", err)
	}

	s.log(ctx).Info("user deleted", slog.Int64("user_id", id))
	return nil
}
