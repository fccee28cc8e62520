package services

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/berk/parentportal/internal/app/models"
	"github.com/berk/parentportal/internal/app/models/dto"
	"github.com/berk/parentportal/internal/app/repositories"
	"github.com/berk/parentportal/internal/pkg/apperrors"
	"github.com/berk/parentportal/internal/pkg/logger"
)

// emailSuffix is the fixed domain suffix used for username normalization.
// Accounts were provisioned with and without it interchangeably, so login
// must accept either form.
const emailSuffix = "@gmail.com"

// parentAccountStore is the guardian account surface the auth service needs
type parentAccountStore interface {
	GetByCredentials(ctx context.Context, candidates []string, password string) (*models.Parent, error)
	GetFCMToken(ctx context.Context, parentID int64) (*string, error)
	UpdateFCMToken(ctx context.Context, parentID int64, token string) error
	PasswordMatches(ctx context.Context, parentID int64, password string) (bool, error)
	UpdatePassword(ctx context.Context, parentID int64, newPassword string) error
}

// studentLinkStore resolves the guardian's student linkage chain
type studentLinkStore interface {
	GetLinkedStudentID(ctx context.Context, parentID int64) (int64, error)
	GetCurrentEnrollmentID(ctx context.Context, studentID int64) (int64, error)
	GetProfileName(ctx context.Context, studentID int64) (string, error)
}

// AuthService defines the interface for login and account mutations
type AuthService interface {
	Login(ctx context.Context, req *dto.LoginRequest) (*dto.LoginUser, error)
	UpdateFCMToken(ctx context.Context, parentID int64, token string) (string, error)
	ChangePassword(ctx context.Context, parentID int64, oldPassword, newPassword string) error
}

// authServiceImpl implements the AuthService interface
type authServiceImpl struct {
	parents  parentAccountStore
	students studentLinkStore
}

// NewAuthService creates a new auth service instance
func NewAuthService(parents parentAccountStore, students studentLinkStore) AuthService {
	return &authServiceImpl{
		parents:  parents,
		students: students,
	}
}

// usernameCandidates builds the candidate set for a submitted username: the
// literal input plus either the suffixed or the stripped variant, so that
// "bob" and "bob@gmail.com" both reach the same account. Always exactly two.
func usernameCandidates(username string) []string {
	if strings.HasSuffix(strings.ToLower(username), emailSuffix) {
		return []string{username, username[:len(username)-len(emailSuffix)]}
	}
	return []string{username, username + emailSuffix}
}

// Login resolves a username/password pair into a full caller identity:
// guardian account, linked student, current enrollment record and display
// profile. The steps are strictly sequential; each failure maps to its own
// sentinel. No transaction guards the chain, so a concurrent administrative
// write between steps can produce a torn read.
func (s *authServiceImpl) Login(ctx context.Context, req *dto.LoginRequest) (*dto.LoginUser, error) {
	if req == nil || req.Username == "" || req.Password == "" {
		return nil, apperrors.ErrMissingCredentials
	}

	parent, err := s.parents.GetByCredentials(ctx, usernameCandidates(req.Username), req.Password)
	if err != nil {
		if errors.Is(err, repositories.ErrParentNotFound) {
			return nil, apperrors.ErrInvalidCredentials
		}
		return nil, fmt.Errorf("credential lookup error: %w", err)
	}

	if parent.Inactive() {
		logger.Warn().Int64("parentID", parent.ID).Msg("Login attempt on inactive account")
		return nil, apperrors.ErrAccountInactive
	}

	studentID, err := s.students.GetLinkedStudentID(ctx, parent.ID)
	if err != nil {
		if errors.Is(err, repositories.ErrAssociationNotFound) {
			return nil, apperrors.ErrNoLinkedStudent
		}
		return nil, fmt.Errorf("student association lookup error: %w", err)
	}

	enrollmentID, err := s.students.GetCurrentEnrollmentID(ctx, studentID)
	if err != nil {
		if errors.Is(err, repositories.ErrEnrollmentNotFound) {
			return nil, apperrors.ErrNoActiveEnrollment
		}
		return nil, fmt.Errorf("enrollment lookup error: %w", err)
	}

	// Profile completeness is best-effort: a missing profile leaves the
	// student name null, it does not fail the login.
	var studentName *string
	name, err := s.students.GetProfileName(ctx, studentID)
	if err == nil {
		studentName = &name
	} else if !errors.Is(err, repositories.ErrProfileNotFound) {
		return nil, fmt.Errorf("profile lookup error: %w", err)
	}

	logger.Info().Int64("parentID", parent.ID).Int64("studentID", studentID).Msg("Login resolved")

	return &dto.LoginUser{
		ID:           parent.ID,
		Name:         parent.Name,
		Username:     parent.Username,
		LoginID:      parent.LoginID,
		Status:       parent.Status,
		StudentID:    studentID,
		EARStudentID: enrollmentID,
		StudentName:  studentName,
	}, nil
}

// UpdateFCMToken stores the submitted push token. When the stored token
// already equals the submitted one the write is skipped and the call still
// reports success.
func (s *authServiceImpl) UpdateFCMToken(ctx context.Context, parentID int64, token string) (string, error) {
	current, err := s.parents.GetFCMToken(ctx, parentID)
	if err != nil {
		if errors.Is(err, repositories.ErrParentNotFound) {
			return "", apperrors.ErrParentNotFound
		}
		return "", fmt.Errorf("FCM token lookup error: %w", err)
	}

	if current != nil && *current == token {
		logger.Debug().Int64("parentID", parentID).Msg("FCM token unchanged, skipping update")
		return "Token already up to date", nil
	}

	if err := s.parents.UpdateFCMToken(ctx, parentID, token); err != nil {
		return "", fmt.Errorf("FCM token update error: %w", err)
	}
	return "FCM Token updated successfully", nil
}

// ChangePassword overwrites the stored secret after verifying the old one.
// A mismatched old password leaves the stored value untouched. The new value
// is stored as submitted, with no strength validation or hashing.
func (s *authServiceImpl) ChangePassword(ctx context.Context, parentID int64, oldPassword, newPassword string) error {
	matches, err := s.parents.PasswordMatches(ctx, parentID, oldPassword)
	if err != nil {
		return fmt.Errorf("password verification error: %w", err)
	}
	if !matches {
		return apperrors.ErrIncorrectOldPassword
	}

	if err := s.parents.UpdatePassword(ctx, parentID, newPassword); err != nil {
		return fmt.Errorf("password update error: %w", err)
	}
	return nil
}
