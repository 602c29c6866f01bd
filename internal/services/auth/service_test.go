package auth

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/suite"

	"github.com/bosjol/tactical-ops/internal/dependencies/mocks"
	"github.com/bosjol/tactical-ops/internal/model"
	"github.com/bosjol/tactical-ops/internal/storage/memory"
)

type ServiceSuite struct {
	suite.Suite
	storage *memory.Storage
	clock   *mocks.MockClock
	service *Service
	ctx     context.Context
}

func TestServiceSuite(t *testing.T) {
	suite.Run(t, new(ServiceSuite))
}

func (s *ServiceSuite) SetupTest() {
	s.storage = memory.New()
	s.clock = mocks.NewMockClock(time.Date(2026, 3, 14, 9, 0, 0, 0, time.UTC))
	s.service = New(s.storage, s.clock, DefaultConfig())
	s.ctx = context.Background()
}

func (s *ServiceSuite) TestRegisterOperatorHashesPassword() {
	op, err := s.service.RegisterOperator(s.ctx, "marshal", "password123", "Field Marshal")
	s.Require().NoError(err)

	s.NotEmpty(op.PasswordHash)
	s.NotEqual("password123", op.PasswordHash)
}

func (s *ServiceSuite) TestRegisterOperatorDuplicateUsername() {
	_, err := s.service.RegisterOperator(s.ctx, "marshal", "password123", "Field Marshal")
	s.Require().NoError(err)

	_, err = s.service.RegisterOperator(s.ctx, "marshal", "other", "Other")
	s.ErrorIs(err, ErrUsernameExists)
}

func (s *ServiceSuite) TestLoginSucceeds() {
	_, err := s.service.RegisterOperator(s.ctx, "marshal", "password123", "Field Marshal")
	s.Require().NoError(err)

	session, err := s.service.Login(s.ctx, "marshal", "password123")
	s.Require().NoError(err)
	s.NotEmpty(session.Token)
	s.Equal("marshal", session.Username)
}

func (s *ServiceSuite) TestLoginWrongPassword() {
	_, _ = s.service.RegisterOperator(s.ctx, "marshal", "password123", "Field Marshal")

	_, err := s.service.Login(s.ctx, "marshal", "wrong")
	s.ErrorIs(err, model.ErrInvalidCredentials)
}

func (s *ServiceSuite) TestLoginUnknownUsername() {
	_, err := s.service.Login(s.ctx, "nobody", "password123")
	s.ErrorIs(err, model.ErrInvalidCredentials)
}

func (s *ServiceSuite) TestValidateSession() {
	_, _ = s.service.RegisterOperator(s.ctx, "marshal", "password123", "Field Marshal")
	session, _ := s.service.Login(s.ctx, "marshal", "password123")

	validated, err := s.service.ValidateSession(session.Token)
	s.Require().NoError(err)
	s.Equal(session.OperatorID, validated.OperatorID)
}

func (s *ServiceSuite) TestValidateSessionExpired() {
	_, _ = s.service.RegisterOperator(s.ctx, "marshal", "password123", "Field Marshal")
	session, _ := s.service.Login(s.ctx, "marshal", "password123")

	s.clock.Advance(25 * time.Hour)

	_, err := s.service.ValidateSession(session.Token)
	s.ErrorIs(err, ErrInvalidSession)
}

func (s *ServiceSuite) TestInvalidateSession() {
	_, _ = s.service.RegisterOperator(s.ctx, "marshal", "password123", "Field Marshal")
	session, _ := s.service.Login(s.ctx, "marshal", "password123")

	s.service.InvalidateSession(session.Token)

	_, err := s.service.ValidateSession(session.Token)
	s.ErrorIs(err, ErrInvalidSession)
}

func (s *ServiceSuite) TestCleanExpiredSessions() {
	_, _ = s.service.RegisterOperator(s.ctx, "marshal", "password123", "Field Marshal")
	old, _ := s.service.Login(s.ctx, "marshal", "password123")

	s.clock.Advance(25 * time.Hour)
	fresh, _ := s.service.Login(s.ctx, "marshal", "password123")

	s.service.CleanExpiredSessions()

	_, err := s.service.ValidateSession(old.Token)
	s.ErrorIs(err, ErrInvalidSession)
	_, err = s.service.ValidateSession(fresh.Token)
	s.NoError(err)
}
