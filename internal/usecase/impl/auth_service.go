// Package impl contains the implementation of the application's business logic.
package impl

import (
	"context"
	"log/slog"

	deliverycontext "runclub/internal/delivery/context"
	"runclub/internal/domain/entity"
	domainerrors "runclub/internal/domain/errors"
	"runclub/internal/domain/repository"
	"runclub/internal/domain/service"
	"runclub/internal/usecase"

	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// authService implements the AuthUsecase interface.
type authService struct {
	userRepo     repository.UserRepository
	hasher       service.PasswordHasher
	tokenService service.TokenService
	logger       *slog.Logger
}

// AuthServiceParams holds dependencies for authService, injected by Fx.
type AuthServiceParams struct {
	fx.In

	UserRepo     repository.UserRepository
	Hasher       service.PasswordHasher
	TokenService service.TokenService
	Logger       *slog.Logger
}

// NewAuthService is the constructor for authService. It receives all dependencies as interfaces.
func NewAuthService(params AuthServiceParams) usecase.AuthUsecase {
	return &authService{
		userRepo:     params.UserRepo,
		hasher:       params.Hasher,
		tokenService: params.TokenService,
		logger:       params.Logger,
	}
}

// log returns a request-scoped logger if available, otherwise falls back to the service's logger.
func (srv *authService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// Signup orchestrates the registration flow: presence check, duplicate
// check, hash, insert. The pre-insert lookup gives the common case a clean
// 409; the store's unique index settles concurrent duplicates.
func (srv *authService) Signup(ctx context.Context, input *usecase.SignupInput) (*usecase.SignupOutput, error) {
	if input.Email == "" || input.Password == "" || input.Nickname == "" {
		return nil, domainerrors.ErrSignupFieldsMissing
	}

	srv.log(ctx).Info("Starting signup", slog.String("email", input.Email))

	_, err := srv.userRepo.FindByEmail(ctx, input.Email)
	if err == nil {
		return nil, domainerrors.ErrDuplicateEmail.WrapMessage("signup failed")
	}
	if !errors.Is(err, repository.ErrUserNotFound) {
		return nil, errors.Wrap(err, "failed to check existing email")
	}

	hashedPassword, err := srv.hasher.Hash(input.Password)
	if err != nil {
		srv.log(ctx).Error("Failed to hash password during signup", slog.String("error", err.Error()))

		return nil, domainerrors.ErrPasswordHashFailed.WrapMessage("failed to hash password")
	}

	newUser := &entity.User{
		Email:               input.Email,
		PasswordHash:        hashedPassword,
		Nickname:            input.Nickname,
		FullName:            input.FullName,
		BirthYear:           input.BirthYear,
		Gender:              input.Gender,
		City:                input.City,
		PreferredDistanceKM: input.PreferredDistanceKM,
		WeeklyGoalRuns:      input.WeeklyGoalRuns,
	}
	if input.RunningLevel != nil {
		// Stored as given; the enum is not enforced here.
		level := entity.RunningLevel(*input.RunningLevel)
		newUser.RunningLevel = &level
	}

	if err := srv.userRepo.Create(ctx, newUser); err != nil {
		return nil, errors.WithStack(err)
	}

	srv.log(ctx).Debug("User signed up", slog.Int64("userID", newUser.ID))

	return &usecase.SignupOutput{User: newUser}, nil
}

// Login orchestrates the authentication flow: lookup, password check,
// token issuance. Unknown email and wrong password both surface as
// ErrInvalidCredentials so responses do not reveal which emails exist.
func (srv *authService) Login(ctx context.Context, input *usecase.LoginInput) (*usecase.LoginOutput, error) {
	if input.Email == "" || input.Password == "" {
		return nil, domainerrors.ErrLoginFieldsMissing
	}

	srv.log(ctx).Debug("Starting login", slog.String("email", input.Email))

	user, err := srv.userRepo.FindByEmail(ctx, input.Email)
	if err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			return nil, domainerrors.ErrInvalidCredentials.WrapMessage("login failed")
		}

		return nil, errors.Wrap(err, "failed to find user by email")
	}

	if !srv.hasher.Check(input.Password, user.PasswordHash) {
		return nil, domainerrors.ErrInvalidCredentials.WrapMessage("login failed")
	}

	token, err := srv.tokenService.Issue(user.ID, user.Email)
	if err != nil {
		srv.log(ctx).Error("Failed to issue token", slog.String("error", err.Error()))

		return nil, domainerrors.ErrTokenIssueFailed.WrapMessage("failed to issue token")
	}

	srv.log(ctx).Debug("User logged in", slog.Int64("userID", user.ID))

	return &usecase.LoginOutput{
		Token: token,
		User:  user.Public(),
	}, nil
}
