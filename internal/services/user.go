package services

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"github.com/creativahub/creativahub-backend/internal/data/repos"
	types "github.com/creativahub/creativahub-backend/internal/domain"
	"github.com/creativahub/creativahub-backend/internal/platform/apierr"
	"github.com/creativahub/creativahub-backend/internal/platform/logger"
)

type CreateUserInput struct {
	Email     string `json:"email"`
	Password  string `json:"password"`
	FullName  string `json:"full_name"`
	Role      string `json:"role"`
	AvatarURL string `json:"avatar_url"`
}

// UpdateUserInput has partial-field semantics: nil fields keep their prior
// values. Role is immutable after creation.
type UpdateUserInput struct {
	ID        uuid.UUID `json:"id"`
	Email     *string   `json:"email"`
	Password  *string   `json:"password"`
	FullName  *string   `json:"full_name"`
	AvatarURL *string   `json:"avatar_url"`
	IsActive  *bool     `json:"is_active"`
}

type UserService interface {
	Create(ctx context.Context, input CreateUserInput) (*types.User, error)
	GetByID(ctx context.Context, userID uuid.UUID) (*types.User, error)
	List(ctx context.Context) ([]*types.User, error)
	Update(ctx context.Context, input UpdateUserInput) (*types.User, error)
}

type userService struct {
	db            *gorm.DB
	log           *logger.Logger
	userRepo      repos.UserRepo
	avatarService AvatarService
}

func NewUserService(db *gorm.DB, log *logger.Logger, userRepo repos.UserRepo, avatarService AvatarService) UserService {
	serviceLog := log.With("service", "UserService")
	return &userService{
		db:            db,
		log:           serviceLog,
		userRepo:      userRepo,
		avatarService: avatarService,
	}
}

func (us *userService) Create(ctx context.Context, input CreateUserInput) (*types.User, error) {
	email := strings.ToLower(strings.TrimSpace(input.Email))
	fullName := strings.TrimSpace(input.FullName)
	if email == "" {
		return nil, apierr.Invalid("email_required", "an email is required")
	}
	if input.Password == "" {
		return nil, apierr.Invalid("password_required", "a password is required")
	}
	if fullName == "" {
		return nil, apierr.Invalid("full_name_required", "a full name is required")
	}
	role, err := types.ParseRole(input.Role)
	if err != nil {
		return nil, apierr.Invalid("invalid_role", "role must be student, teacher or admin")
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(input.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, fmt.Errorf("hash password: %w", err)
	}

	u := &types.User{
		ID:        uuid.New(),
		Email:     email,
		Password:  string(hashed),
		FullName:  fullName,
		Role:      role,
		AvatarURL: strings.TrimSpace(input.AvatarURL),
		IsActive:  true,
	}

	if err := us.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		exists, err := us.userRepo.EmailExists(ctx, tx, email)
		if err != nil {
			return fmt.Errorf("check email: %w", err)
		}
		if exists {
			return apierr.Duplicate("duplicate_email", "email %q is already in use", email)
		}
		if u.AvatarURL == "" && us.avatarService != nil {
			if avatarErr := us.avatarService.CreateUserAvatar(ctx, u); avatarErr != nil {
				us.log.Warn("Avatar generation failed, continuing without one", "error", avatarErr)
			}
		}
		if _, err := us.userRepo.Create(ctx, tx, []*types.User{u}); err != nil {
			// The unique index is the backstop for a concurrent create that
			// slipped past the existence check.
			if errors.Is(err, gorm.ErrDuplicatedKey) {
				return apierr.Duplicate("duplicate_email", "email %q is already in use", email)
			}
			return fmt.Errorf("create user: %w", err)
		}
		return nil
	}); err != nil {
		return nil, err
	}
	return u, nil
}

func (us *userService) GetByID(ctx context.Context, userID uuid.UUID) (*types.User, error) {
	u, err := us.userRepo.GetByID(ctx, nil, userID)
	if err != nil {
		return nil, fmt.Errorf("fetch user: %w", err)
	}
	if u == nil {
		return nil, apierr.NotFound("user_not_found", "user %s does not exist", userID)
	}
	return u, nil
}

func (us *userService) List(ctx context.Context) ([]*types.User, error) {
	return us.userRepo.List(ctx, nil)
}

func (us *userService) Update(ctx context.Context, input UpdateUserInput) (*types.User, error) {
	var out *types.User
	if err := us.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		existing, err := us.userRepo.GetByID(ctx, tx, input.ID)
		if err != nil {
			return fmt.Errorf("fetch user: %w", err)
		}
		if existing == nil {
			return apierr.NotFound("user_not_found", "user %s does not exist", input.ID)
		}

		// updated_at refreshes on every call, even when no field changed.
		fields := map[string]any{"updated_at": time.Now().UTC()}
		if input.Email != nil {
			email := strings.ToLower(strings.TrimSpace(*input.Email))
			if email == "" {
				return apierr.Invalid("email_required", "email cannot be empty")
			}
			if email != existing.Email {
				exists, err := us.userRepo.EmailExists(ctx, tx, email)
				if err != nil {
					return fmt.Errorf("check email: %w", err)
				}
				if exists {
					return apierr.Duplicate("duplicate_email", "email %q is already in use", email)
				}
			}
			fields["email"] = email
		}
		if input.Password != nil {
			if *input.Password == "" {
				return apierr.Invalid("password_required", "password cannot be empty")
			}
			hashed, err := bcrypt.GenerateFromPassword([]byte(*input.Password), bcrypt.DefaultCost)
			if err != nil {
				return fmt.Errorf("hash password: %w", err)
			}
			fields["password"] = string(hashed)
		}
		if input.FullName != nil {
			fullName := strings.TrimSpace(*input.FullName)
			if fullName == "" {
				return apierr.Invalid("full_name_required", "full name cannot be empty")
			}
			fields["full_name"] = fullName
		}
		if input.AvatarURL != nil {
			fields["avatar_url"] = strings.TrimSpace(*input.AvatarURL)
		}
		if input.IsActive != nil {
			fields["is_active"] = *input.IsActive
		}

		if err := us.userRepo.UpdateFields(ctx, tx, input.ID, fields); err != nil {
			if errors.Is(err, gorm.ErrDuplicatedKey) {
				return apierr.Duplicate("duplicate_email", "email is already in use")
			}
			return fmt.Errorf("update user: %w", err)
		}

		reloaded, err := us.userRepo.GetByID(ctx, tx, input.ID)
		if err != nil || reloaded == nil {
			return fmt.Errorf("reload user: %w", err)
		}
		out = reloaded
		return nil
	}); err != nil {
		return nil, err
	}
	return out, nil
}
