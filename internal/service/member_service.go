package service

import (
	"context"
	"errors"

	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"bulletin-board-api/internal/domain"
	"bulletin-board-api/internal/dto"
	"bulletin-board-api/internal/metrics"
	"bulletin-board-api/internal/repository"
	"bulletin-board-api/internal/response"
)

// MemberService defines the interface for member business logic
type MemberService interface {
	Register(ctx context.Context, req *dto.RegisterRequest) (*dto.MemberResponse, error)
	Login(ctx context.Context, req *dto.LoginRequest) (*dto.MemberResponse, error)
	VerifyPassword(ctx context.Context, req *dto.VerifyPasswordRequest) (bool, error)
	UpdateUsername(ctx context.Context, req *dto.UpdateUsernameRequest) error
	DeleteMember(ctx context.Context, email string) error
}

// memberServiceImpl is the implementation of MemberService
type memberServiceImpl struct {
	memberRepo repository.MemberRepository
	transactor repository.Transactor
	loginGuard LoginGuard
	bcryptCost int
	metrics    *metrics.Metrics
	logger     *zap.Logger
}

// NewMemberService creates a new instance of MemberService.
// A nil loginGuard disables lockout.
func NewMemberService(
	memberRepo repository.MemberRepository,
	transactor repository.Transactor,
	loginGuard LoginGuard,
	bcryptCost int,
	m *metrics.Metrics,
	logger *zap.Logger,
) MemberService {
	if loginGuard == nil {
		loginGuard = NoopLoginGuard{}
	}
	if bcryptCost < bcrypt.MinCost || bcryptCost > bcrypt.MaxCost {
		bcryptCost = bcrypt.DefaultCost
	}
	return &memberServiceImpl{
		memberRepo: memberRepo,
		transactor: transactor,
		loginGuard: loginGuard,
		bcryptCost: bcryptCost,
		metrics:    m,
		logger:     logger,
	}
}

func errEmailExists() error {
	return response.NewAppError(response.ErrCodeConflict, "Email already exists", "")
}

// Register creates a member with a bcrypt hashed password
func (s *memberServiceImpl) Register(ctx context.Context, req *dto.RegisterRequest) (*dto.MemberResponse, error) {
	exists, err := s.memberRepo.ExistsByEmail(ctx, req.Email)
	if err != nil {
		return nil, response.NewInternalError("Failed to check email", err)
	}
	if exists {
		return nil, errEmailExists()
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), s.bcryptCost)
	if err != nil {
		return nil, response.NewInternalError("Failed to hash password", err)
	}

	member := &domain.Member{
		Email:    req.Email,
		Username: req.Username,
		Password: string(hash),
		Role:     domain.RoleUser,
	}
	if err := s.memberRepo.Create(ctx, member); err != nil {
		// A concurrent registration won the unique index
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, errEmailExists()
		}
		return nil, response.NewInternalError("Failed to create member", err)
	}

	if s.metrics != nil {
		s.metrics.IncrementMemberRegistered()
	}

	s.logger.Info("Member registered", zap.Uint("member_id", member.ID))

	res := dto.NewMemberResponse(member)
	return &res, nil
}

// Login returns the first member with the username whose password matches
func (s *memberServiceImpl) Login(ctx context.Context, req *dto.LoginRequest) (*dto.MemberResponse, error) {
	if err := s.loginGuard.Check(ctx, req.Username); err != nil {
		if errors.Is(err, ErrLoginLocked) {
			return nil, response.NewAppError(response.ErrCodeTooManyRequests, "Too many failed login attempts, try again later", "")
		}
		// Lockout is best-effort; a guard outage must not block logins
		s.logger.Warn("Login guard check failed", zap.Error(err))
	}

	members, err := s.memberRepo.FindByUsername(ctx, req.Username)
	if err != nil {
		return nil, response.NewInternalError("Failed to fetch member", err)
	}

	for _, member := range members {
		if bcrypt.CompareHashAndPassword([]byte(member.Password), []byte(req.Password)) == nil {
			if err := s.loginGuard.Reset(ctx, req.Username); err != nil {
				s.logger.Warn("Failed to reset login guard", zap.Error(err))
			}
			res := dto.NewMemberResponse(member)
			return &res, nil
		}
	}

	if err := s.loginGuard.RecordFailure(ctx, req.Username); err != nil {
		s.logger.Warn("Failed to record login failure", zap.Error(err))
	}
	if s.metrics != nil {
		s.metrics.IncrementLoginFailed()
	}

	return nil, response.NewAppError(response.ErrCodeUnauthorized, "Invalid username or password", "")
}

// VerifyPassword reports whether password matches the member with the email.
// An unknown email is reported as a mismatch.
func (s *memberServiceImpl) VerifyPassword(ctx context.Context, req *dto.VerifyPasswordRequest) (bool, error) {
	member, err := s.memberRepo.FindByEmail(ctx, req.Email)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return false, nil
		}
		return false, response.NewInternalError("Failed to fetch member", err)
	}

	return bcrypt.CompareHashAndPassword([]byte(member.Password), []byte(req.Password)) == nil, nil
}

// UpdateUsername renames the member with the email
func (s *memberServiceImpl) UpdateUsername(ctx context.Context, req *dto.UpdateUsernameRequest) error {
	rows, err := s.memberRepo.UpdateUsernameByEmail(ctx, req.Email, req.Username)
	if err != nil {
		return response.NewInternalError("Failed to update username", err)
	}
	if rows == 0 {
		return response.NewNotFoundError("Member not found", "")
	}
	return nil
}

// DeleteMember removes the member, their comments and their authorship of boards in one transaction
func (s *memberServiceImpl) DeleteMember(ctx context.Context, email string) error {
	var memberID uint
	err := s.transactor.WithinTransaction(ctx, func(repos repository.Repositories) error {
		member, err := repos.Members.FindByEmail(ctx, email)
		if err != nil {
			return err
		}
		memberID = member.ID

		if _, err := repos.Comments.DeleteByUserID(ctx, member.ID); err != nil {
			return err
		}
		if _, err := repos.Boards.DetachMember(ctx, member.ID); err != nil {
			return err
		}
		return repos.Members.Delete(ctx, member.ID)
	})
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return response.NewNotFoundError("Member not found", "")
		}
		return response.NewInternalError("Failed to delete member", err)
	}

	s.logger.Info("Member deleted", zap.Uint("member_id", memberID))
	return nil
}
