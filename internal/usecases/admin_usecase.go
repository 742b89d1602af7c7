package usecases

import (
	"context"
	"errors"
	"net/http"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/volatiletech/null/v8"

	"gdgoc.backend/internal/domain/entities"
	domainerrors "gdgoc.backend/internal/domain/errors"
	"gdgoc.backend/internal/domain/repositories"
	"gdgoc.backend/pkg/crypto"
	"gdgoc.backend/pkg/jwt"
)

const msgDuplicateUsername = "username already exists"

var (
	hashPassword  = crypto.HashPassword
	checkPassword = crypto.CheckPassword
	now           = time.Now
)

// AdminUsecase handles admin accounts and authentication
type AdminUsecase struct {
	adminRepo  repositories.AdminRepository
	jwtService *jwt.JWTService
}

// NewAdminUsecase creates a new admin usecase
func NewAdminUsecase(adminRepo repositories.AdminRepository, jwtService *jwt.JWTService) *AdminUsecase {
	return &AdminUsecase{
		adminRepo:  adminRepo,
		jwtService: jwtService,
	}
}

// Register creates an admin account. Usernames are stored lower-cased.
func (u *AdminUsecase) Register(ctx context.Context, input *entities.CreateAdminInput) (*entities.Admin, error) {
	username := normalizeUsername(input.Username)

	if err := u.ensureUsernameFree(ctx, username, uuid.Nil); err != nil {
		return nil, err
	}

	passwordHash, err := hashPassword(input.Password)
	if err != nil {
		return nil, err
	}

	ts := now()
	admin := &entities.Admin{
		ID:           newID(),
		Name:         trim(input.Name),
		Username:     username,
		PasswordHash: passwordHash,
		CreatedAt:    ts,
		UpdatedAt:    ts,
	}
	if img := trim(input.ProfileImage); img != "" {
		admin.ProfileImage.SetValid(img)
	}

	if err := u.adminRepo.Create(ctx, admin); err != nil {
		return nil, duplicate(err, msgDuplicateUsername)
	}
	return admin, nil
}

// Login checks credentials and issues an access token
func (u *AdminUsecase) Login(ctx context.Context, input *entities.LoginInput) (*entities.AuthResponse, error) {
	admin, err := u.adminRepo.GetByUsername(ctx, normalizeUsername(input.Username))
	if err != nil {
		if errors.Is(err, domainerrors.ErrNotFound) {
			return nil, invalidCredentials()
		}
		return nil, err
	}

	if !checkPassword(input.Password, admin.PasswordHash) {
		return nil, invalidCredentials()
	}

	token, err := u.jwtService.GenerateToken(admin.ID, admin.Username)
	if err != nil {
		return nil, err
	}

	return &entities.AuthResponse{
		Token:     token.AccessToken,
		ExpiresAt: token.ExpiresAt,
		Admin:     admin,
	}, nil
}

// Authenticate validates a bearer token and re-reads the admin it belongs to
func (u *AdminUsecase) Authenticate(ctx context.Context, token string) (*entities.Admin, error) {
	claims, err := u.jwtService.ValidateToken(token)
	if err != nil {
		if errors.Is(err, jwt.ErrExpiredToken) {
			return nil, domainerrors.NewAppError(http.StatusUnauthorized, domainerrors.CodeUnauthorized, "token has expired", domainerrors.ErrTokenExpired)
		}
		return nil, domainerrors.Unauthorized("invalid token")
	}

	admin, err := u.adminRepo.GetByID(ctx, claims.AdminID)
	if err != nil {
		if errors.Is(err, domainerrors.ErrNotFound) {
			return nil, domainerrors.Unauthorized("admin no longer exists")
		}
		return nil, err
	}
	return admin, nil
}

// GetByID gets an admin by ID
func (u *AdminUsecase) GetByID(ctx context.Context, id uuid.UUID) (*entities.Admin, error) {
	admin, err := u.adminRepo.GetByID(ctx, id)
	if err != nil {
		return nil, notFound(err, "admin")
	}
	return admin, nil
}

// List returns every admin, optionally filtered by name or username
func (u *AdminUsecase) List(ctx context.Context, search string) ([]*entities.Admin, error) {
	return u.adminRepo.List(ctx, trim(search))
}

// Update changes the profile fields of an admin
func (u *AdminUsecase) Update(ctx context.Context, id uuid.UUID, input *entities.UpdateAdminInput) (*entities.Admin, error) {
	admin, err := u.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if input.Name != nil {
		admin.Name = trim(*input.Name)
	}
	if input.Username != nil {
		username := normalizeUsername(*input.Username)
		if username != admin.Username {
			if err := u.ensureUsernameFree(ctx, username, admin.ID); err != nil {
				return nil, err
			}
			admin.Username = username
		}
	}
	if input.ProfileImage != nil {
		admin.ProfileImage = null.NewString(trim(*input.ProfileImage), trim(*input.ProfileImage) != "")
	}
	admin.UpdatedAt = now()

	if err := u.adminRepo.Update(ctx, admin); err != nil {
		return nil, notFound(duplicate(err, msgDuplicateUsername), "admin")
	}
	return admin, nil
}

// ChangePassword replaces the password after checking the current one
func (u *AdminUsecase) ChangePassword(ctx context.Context, id uuid.UUID, input *entities.ChangePasswordInput) error {
	admin, err := u.GetByID(ctx, id)
	if err != nil {
		return err
	}

	if !checkPassword(input.CurrentPassword, admin.PasswordHash) {
		return domainerrors.BadRequest("current password is incorrect")
	}
	if input.CurrentPassword == input.NewPassword {
		return domainerrors.BadRequest("new password must differ from the current password")
	}

	passwordHash, err := hashPassword(input.NewPassword)
	if err != nil {
		return err
	}
	return notFound(u.adminRepo.UpdatePassword(ctx, id, passwordHash), "admin")
}

// Delete removes an admin. Admins cannot delete their own account.
func (u *AdminUsecase) Delete(ctx context.Context, actorID, id uuid.UUID) error {
	if actorID == id {
		return domainerrors.BadRequest("you cannot delete your own account")
	}
	return notFound(u.adminRepo.Delete(ctx, id), "admin")
}

func (u *AdminUsecase) ensureUsernameFree(ctx context.Context, username string, self uuid.UUID) error {
	existing, err := u.adminRepo.GetByUsername(ctx, username)
	if err == nil {
		if existing.ID != self {
			return domainerrors.Duplicate(msgDuplicateUsername)
		}
		return nil
	}
	if !errors.Is(err, domainerrors.ErrNotFound) {
		return err
	}
	return nil
}

func invalidCredentials() error {
	return domainerrors.NewAppError(http.StatusUnauthorized, domainerrors.CodeInvalidCredentials, "invalid username or password", domainerrors.ErrInvalidCredentials)
}

func normalizeUsername(s string) string {
	return strings.ToLower(trim(s))
}
