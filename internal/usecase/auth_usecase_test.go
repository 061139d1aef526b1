package usecase

import (
	"context"
	"testing"
	"time"

	"go-vaccination-clinic/config"
	"go-vaccination-clinic/internal/delivery/dto"
	"go-vaccination-clinic/internal/domain/entity"
	"go-vaccination-clinic/internal/repository"
	"go-vaccination-clinic/pkg/jwt"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

// fakeTokenStore keeps token ids in memory, keyed by token id with the
// owning user as value.
type fakeTokenStore struct {
	access  map[string]uuid.UUID
	refresh map[string]uuid.UUID
}

func newFakeTokenStore() *fakeTokenStore {
	return &fakeTokenStore{
		access:  make(map[string]uuid.UUID),
		refresh: make(map[string]uuid.UUID),
	}
}

func (s *fakeTokenStore) SaveTokens(_ context.Context, userID uuid.UUID, accessTokenID, refreshTokenID string) error {
	s.access[accessTokenID] = userID
	s.refresh[refreshTokenID] = userID
	return nil
}

func (s *fakeTokenStore) RevokeTokens(_ context.Context, accessTokenID, refreshTokenID string) error {
	delete(s.access, accessTokenID)
	delete(s.refresh, refreshTokenID)
	return nil
}

func (s *fakeTokenStore) RefreshTokenExists(_ context.Context, userID uuid.UUID, tokenID string) (bool, error) {
	owner, ok := s.refresh[tokenID]
	return ok && owner == userID, nil
}

func (s *fakeTokenStore) DeleteRefreshToken(_ context.Context, _ uuid.UUID, tokenID string) error {
	delete(s.refresh, tokenID)
	return nil
}

func newTestAuthUsecase(db *gorm.DB) *authUsecase {
	jwtService := jwt.NewJWTService(config.JWTConfig{
		Secret:        "test-secret",
		AccessExpiry:  12 * time.Hour,
		RefreshExpiry: 7 * 24 * time.Hour,
	})
	uc := NewAuthUsecase(
		db,
		newTestLogger(),
		repository.NewUserRepository(),
		repository.NewPatientRepository(),
		jwtService,
		newFakeTokenStore(),
	)
	return uc.(*authUsecase)
}

func TestRegister_CreatesUserAndPatientProfile(t *testing.T) {
	db := newTestDB(t)
	uc := newTestAuthUsecase(db)

	resp, err := uc.Register(context.Background(), &dto.RegisterRequest{
		Name:     "Jane Doe",
		Email:    "jane@example.com",
		Password: "password123",
	})
	require.NoError(t, err)
	assert.Equal(t, "Jane Doe", resp.Name)
	assert.Equal(t, entity.RolePatient, resp.Role)

	var patient entity.Patient
	require.NoError(t, db.Where("user_id = ?", resp.ID).First(&patient).Error)
	assert.Equal(t, "Jane Doe", patient.FullName)

	var count int64
	require.NoError(t, db.Model(&entity.Patient{}).Count(&count).Error)
	assert.Equal(t, int64(1), count)
}

func TestRegister_DuplicateEmail(t *testing.T) {
	db := newTestDB(t)
	uc := newTestAuthUsecase(db)

	req := &dto.RegisterRequest{
		Name:     "Jane Doe",
		Email:    "jane@example.com",
		Password: "password123",
	}
	_, err := uc.Register(context.Background(), req)
	require.NoError(t, err)

	_, err = uc.Register(context.Background(), req)
	assert.ErrorIs(t, err, ErrEmailAlreadyExists)
}

func TestRegister_PasswordIsHashed(t *testing.T) {
	db := newTestDB(t)
	uc := newTestAuthUsecase(db)

	resp, err := uc.Register(context.Background(), &dto.RegisterRequest{
		Name:     "Jane Doe",
		Email:    "jane@example.com",
		Password: "password123",
	})
	require.NoError(t, err)

	var user entity.User
	require.NoError(t, db.Where("id = ?", resp.ID).First(&user).Error)
	assert.NotEqual(t, "password123", user.Password)
	assert.NotEmpty(t, user.Password)
}

func TestEnsurePatientProfile_Idempotent(t *testing.T) {
	db := newTestDB(t)
	uc := newTestAuthUsecase(db)
	user := seedUser(t, db, "Jane Doe", "jane@example.com", entity.RolePatient)

	first, err := uc.ensurePatientProfile(db, user)
	require.NoError(t, err)

	second, err := uc.ensurePatientProfile(db, user)
	require.NoError(t, err)
	assert.Equal(t, first.ID, second.ID)

	var count int64
	require.NoError(t, db.Model(&entity.Patient{}).Count(&count).Error)
	assert.Equal(t, int64(1), count)
}

func TestLogin_LazilyCreatesPatientProfile(t *testing.T) {
	db := newTestDB(t)
	uc := newTestAuthUsecase(db)
	// Account created before the patients table existed: no profile row.
	seedUser(t, db, "Jane Doe", "jane@example.com", entity.RolePatient)

	var count int64
	require.NoError(t, db.Model(&entity.Patient{}).Count(&count).Error)
	require.Equal(t, int64(0), count)

	req := &dto.LoginRequest{Email: "jane@example.com", Password: "password123"}
	tokens, err := uc.Login(context.Background(), req)
	require.NoError(t, err)
	assert.NotEmpty(t, tokens.AccessToken)
	assert.NotEmpty(t, tokens.RefreshToken)

	require.NoError(t, db.Model(&entity.Patient{}).Count(&count).Error)
	assert.Equal(t, int64(1), count)

	var patient entity.Patient
	require.NoError(t, db.First(&patient).Error)
	assert.Equal(t, "Jane Doe", patient.FullName)

	// Logging in again reuses the existing profile.
	_, err = uc.Login(context.Background(), req)
	require.NoError(t, err)
	require.NoError(t, db.Model(&entity.Patient{}).Count(&count).Error)
	assert.Equal(t, int64(1), count)
}

func TestLogin_SkipsProfileForStaff(t *testing.T) {
	db := newTestDB(t)
	uc := newTestAuthUsecase(db)
	seedUser(t, db, "Nurse Joy", "joy@example.com", entity.RoleStaff)

	_, err := uc.Login(context.Background(), &dto.LoginRequest{
		Email:    "joy@example.com",
		Password: "password123",
	})
	require.NoError(t, err)

	var count int64
	require.NoError(t, db.Model(&entity.Patient{}).Count(&count).Error)
	assert.Equal(t, int64(0), count)
}

func TestLogin_StoresIssuedTokenIDs(t *testing.T) {
	db := newTestDB(t)
	uc := newTestAuthUsecase(db)
	user := seedUser(t, db, "Jane Doe", "jane@example.com", entity.RolePatient)

	_, err := uc.Login(context.Background(), &dto.LoginRequest{
		Email:    "jane@example.com",
		Password: "password123",
	})
	require.NoError(t, err)

	store := uc.tokenStore.(*fakeTokenStore)
	require.Len(t, store.access, 1)
	require.Len(t, store.refresh, 1)
	for _, owner := range store.access {
		assert.Equal(t, user.ID, owner)
	}
}

func TestRefreshToken_RotatesStoredToken(t *testing.T) {
	db := newTestDB(t)
	uc := newTestAuthUsecase(db)
	seedUser(t, db, "Jane Doe", "jane@example.com", entity.RolePatient)

	tokens, err := uc.Login(context.Background(), &dto.LoginRequest{
		Email:    "jane@example.com",
		Password: "password123",
	})
	require.NoError(t, err)

	store := uc.tokenStore.(*fakeTokenStore)
	oldClaims, err := uc.jwtService.ValidateToken(tokens.RefreshToken)
	require.NoError(t, err)

	refreshed, err := uc.RefreshToken(context.Background(), &dto.RefreshTokenRequest{
		RefreshToken: tokens.RefreshToken,
	})
	require.NoError(t, err)
	assert.NotEmpty(t, refreshed.AccessToken)

	// The old refresh token id is gone; only the rotated one remains.
	_, stillThere := store.refresh[oldClaims.TokenID]
	assert.False(t, stillThere)
	assert.Len(t, store.refresh, 1)

	// Replaying the old refresh token fails.
	_, err = uc.RefreshToken(context.Background(), &dto.RefreshTokenRequest{
		RefreshToken: tokens.RefreshToken,
	})
	assert.ErrorIs(t, err, ErrTokenRevoked)
}

func TestLogin_WrongPassword(t *testing.T) {
	db := newTestDB(t)
	uc := newTestAuthUsecase(db)
	seedUser(t, db, "Jane Doe", "jane@example.com", entity.RolePatient)

	_, err := uc.Login(context.Background(), &dto.LoginRequest{
		Email:    "jane@example.com",
		Password: "wrong-password",
	})
	assert.ErrorIs(t, err, ErrInvalidCredentials)
}

func TestLogin_UnknownEmail(t *testing.T) {
	db := newTestDB(t)
	uc := newTestAuthUsecase(db)

	_, err := uc.Login(context.Background(), &dto.LoginRequest{
		Email:    "nobody@example.com",
		Password: "password123",
	})
	assert.ErrorIs(t, err, ErrInvalidCredentials)
}

func TestGetCurrentUser_NotFound(t *testing.T) {
	db := newTestDB(t)
	uc := newTestAuthUsecase(db)

	_, err := uc.GetCurrentUser(context.Background(), uuid.New())
	assert.ErrorIs(t, err, ErrUserNotFound)
}

func TestGetCurrentUser(t *testing.T) {
	db := newTestDB(t)
	uc := newTestAuthUsecase(db)
	user := seedUser(t, db, "Admin", "admin@example.com", entity.RoleAdmin)

	resp, err := uc.GetCurrentUser(context.Background(), user.ID)
	require.NoError(t, err)
	assert.Equal(t, user.Email, resp.Email)
	assert.Equal(t, entity.RoleAdmin, resp.Role)
}
