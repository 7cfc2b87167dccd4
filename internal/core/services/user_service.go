package services

import (
	"context"
	"log/slog"

	"github.com/SscSPs/cuzdan_backend/internal/core/domain"
	portsrepo "github.com/SscSPs/cuzdan_backend/internal/core/ports/repositories"
	portssvc "github.com/SscSPs/cuzdan_backend/internal/core/ports/services"
	"github.com/SscSPs/cuzdan_backend/internal/dto"
)

type userService struct {
	BaseService
	uowFactory portsrepo.UnitOfWorkFactory
}

// NewUserService creates a new user service.
func NewUserService(uowFactory portsrepo.UnitOfWorkFactory) portssvc.UserSvcFacade {
	return &userService{uowFactory: uowFactory}
}

var _ portssvc.UserSvcFacade = (*userService)(nil)

func (s *userService) GetProfile(ctx context.Context, userID string) (*domain.User, error) {
	user, err := s.uowFactory.New().Users().FindUserByID(ctx, userID)
	if err != nil {
		s.logUnexpected(ctx, err, "Failed to get user", slog.String("user_id", userID))
		return nil, err
	}
	return user, nil
}

func (s *userService) UpdateProfile(ctx context.Context, userID string, req dto.UpdateProfileRequest) (*domain.User, error) {
	preferred, err := parseCurrency(req.PreferredCurrency)
	if err != nil {
		return nil, err
	}

	uow := s.uowFactory.New()
	user, err := uow.Users().FindUserByID(ctx, userID)
	if err != nil {
		s.logUnexpected(ctx, err, "Failed to get user", slog.String("user_id", userID))
		return nil, err
	}

	user.UpdateProfile(req.FirstName, req.LastName, req.PhoneNumber, req.DateOfBirth, preferred)
	if err := uow.Users().UpdateUser(ctx, user); err != nil {
		return nil, err
	}
	if err := uow.SaveChanges(ctx); err != nil {
		s.LogError(ctx, err, "Failed to update user", slog.String("user_id", userID))
		return nil, err
	}
	return user, nil
}
