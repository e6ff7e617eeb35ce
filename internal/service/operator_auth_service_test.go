package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"solana-lottery/internal/core/ports/mocks"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func TestOperatorAuthService_Login(t *testing.T) {
	ctrl := gomock.NewController(t)
	hashSvc := mocks.NewMockHashService(ctrl)
	tokenSvc := mocks.NewMockTokenService(ctrl)
	svc := NewOperatorAuthService("operator", "$argon2id$stored", hashSvc, tokenSvc, zerolog.Nop())
	exp := time.Now().Add(time.Hour)

	hashSvc.EXPECT().Verify("pw", "$argon2id$stored").Return(true, nil)
	tokenSvc.EXPECT().Generate("operator").Return("jwt", exp, nil)

	token, expiresAt, err := svc.Login(context.Background(), "operator", "pw")
	require.NoError(t, err)
	assert.Equal(t, "jwt", token)
	assert.Equal(t, exp, expiresAt)
}

func TestOperatorAuthService_WrongPassword(t *testing.T) {
	ctrl := gomock.NewController(t)
	hashSvc := mocks.NewMockHashService(ctrl)
	svc := NewOperatorAuthService("operator", "$argon2id$stored", hashSvc, mocks.NewMockTokenService(ctrl), zerolog.Nop())

	hashSvc.EXPECT().Verify("bad", "$argon2id$stored").Return(false, nil)

	_, _, err := svc.Login(context.Background(), "operator", "bad")
	assertAppError(t, err, "AUTH_001")
}

func TestOperatorAuthService_WrongUsername(t *testing.T) {
	ctrl := gomock.NewController(t)
	hashSvc := mocks.NewMockHashService(ctrl)
	svc := NewOperatorAuthService("operator", "$argon2id$stored", hashSvc, mocks.NewMockTokenService(ctrl), zerolog.Nop())

	hashSvc.EXPECT().Verify("pw", "$argon2id$stored").Return(true, nil)

	_, _, err := svc.Login(context.Background(), "admin", "pw")
	assertAppError(t, err, "AUTH_001")
}

func TestOperatorAuthService_NoHashConfigured(t *testing.T) {
	ctrl := gomock.NewController(t)
	svc := NewOperatorAuthService("operator", "", mocks.NewMockHashService(ctrl), mocks.NewMockTokenService(ctrl), zerolog.Nop())

	_, _, err := svc.Login(context.Background(), "operator", "")
	assertAppError(t, err, "AUTH_001")
}

func TestOperatorAuthService_MalformedHash(t *testing.T) {
	ctrl := gomock.NewController(t)
	hashSvc := mocks.NewMockHashService(ctrl)
	svc := NewOperatorAuthService("operator", "garbage", hashSvc, mocks.NewMockTokenService(ctrl), zerolog.Nop())

	hashSvc.EXPECT().Verify("pw", "garbage").Return(false, errors.New("invalid hash format"))

	_, _, err := svc.Login(context.Background(), "operator", "pw")
	assertAppError(t, err, "SYS_001")
}
