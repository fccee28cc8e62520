package services

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/berk/parentportal/internal/app/models"
	"github.com/berk/parentportal/internal/app/models/dto"
	"github.com/berk/parentportal/internal/app/repositories"
	"github.com/berk/parentportal/internal/pkg/apperrors"
)

// fakeParentStore is an in-memory parentAccountStore recording mutations
type fakeParentStore struct {
	parent       *models.Parent
	lookupErr    error
	fcmToken     *string
	fcmTokenErr  error
	updateCalls  []string
	passwordOK   bool
	passwordErr  error
	newPasswords []string

	candidatesSeen []string
}

func (f *fakeParentStore) GetByCredentials(_ context.Context, candidates []string, _ string) (*models.Parent, error) {
	f.candidatesSeen = candidates
	if f.lookupErr != nil {
		return nil, f.lookupErr
	}
	return f.parent, nil
}

func (f *fakeParentStore) GetFCMToken(_ context.Context, _ int64) (*string, error) {
	return f.fcmToken, f.fcmTokenErr
}

func (f *fakeParentStore) UpdateFCMToken(_ context.Context, _ int64, token string) error {
	f.updateCalls = append(f.updateCalls, token)
	return nil
}

func (f *fakeParentStore) PasswordMatches(_ context.Context, _ int64, _ string) (bool, error) {
	return f.passwordOK, f.passwordErr
}

func (f *fakeParentStore) UpdatePassword(_ context.Context, _ int64, newPassword string) error {
	f.newPasswords = append(f.newPasswords, newPassword)
	return nil
}

// fakeStudentStore is an in-memory studentLinkStore
type fakeStudentStore struct {
	studentID     int64
	studentErr    error
	enrollmentID  int64
	enrollmentErr error
	profileName   string
	profileErr    error
}

func (f *fakeStudentStore) GetLinkedStudentID(_ context.Context, _ int64) (int64, error) {
	return f.studentID, f.studentErr
}

func (f *fakeStudentStore) GetCurrentEnrollmentID(_ context.Context, _ int64) (int64, error) {
	return f.enrollmentID, f.enrollmentErr
}

func (f *fakeStudentStore) GetProfileName(_ context.Context, _ int64) (string, error) {
	return f.profileName, f.profileErr
}

func activeParent() *models.Parent {
	loginID := "P-1001"
	return &models.Parent{
		ID:       42,
		LoginID:  &loginID,
		Username: "bob",
		Password: "secret",
		Name:     "Bob Senior",
		Status:   "1",
	}
}

func TestUsernameCandidates(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  []string
	}{
		{"bare username gains suffix", "bob", []string{"bob", "bob@gmail.com"}},
		{"suffixed username loses suffix", "bob@gmail.com", []string{"bob@gmail.com", "bob"}},
		{"suffix match is case insensitive", "Bob@Gmail.com", []string{"Bob@Gmail.com", "Bob"}},
		{"other domains are not stripped", "bob@school.edu", []string{"bob@school.edu", "bob@school.edu@gmail.com"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := usernameCandidates(tt.input)
			assert.Equal(t, tt.want, got)
			assert.Len(t, got, 2)
		})
	}
}

func TestLogin_MissingCredentials(t *testing.T) {
	svc := NewAuthService(&fakeParentStore{}, &fakeStudentStore{})

	_, err := svc.Login(context.Background(), &dto.LoginRequest{Username: "", Password: "x"})
	assert.ErrorIs(t, err, apperrors.ErrMissingCredentials)

	_, err = svc.Login(context.Background(), &dto.LoginRequest{Username: "bob", Password: ""})
	assert.ErrorIs(t, err, apperrors.ErrMissingCredentials)

	_, err = svc.Login(context.Background(), nil)
	assert.ErrorIs(t, err, apperrors.ErrMissingCredentials)
}

func TestLogin_InvalidCredentials(t *testing.T) {
	parents := &fakeParentStore{lookupErr: repositories.ErrParentNotFound}
	svc := NewAuthService(parents, &fakeStudentStore{})

	_, err := svc.Login(context.Background(), &dto.LoginRequest{Username: "bob", Password: "wrong"})
	assert.ErrorIs(t, err, apperrors.ErrInvalidCredentials)
	assert.Equal(t, []string{"bob", "bob@gmail.com"}, parents.candidatesSeen)
}

func TestLogin_InactiveAccount(t *testing.T) {
	for _, status := range []string{"0", " 0", "0 "} {
		parent := activeParent()
		parent.Status = status
		svc := NewAuthService(&fakeParentStore{parent: parent}, &fakeStudentStore{})

		_, err := svc.Login(context.Background(), &dto.LoginRequest{Username: "bob", Password: "secret"})
		assert.ErrorIs(t, err, apperrors.ErrAccountInactive, "status %q", status)
	}
}

func TestLogin_NoLinkedStudent(t *testing.T) {
	svc := NewAuthService(
		&fakeParentStore{parent: activeParent()},
		&fakeStudentStore{studentErr: repositories.ErrAssociationNotFound},
	)

	_, err := svc.Login(context.Background(), &dto.LoginRequest{Username: "bob", Password: "secret"})
	assert.ErrorIs(t, err, apperrors.ErrNoLinkedStudent)
}

func TestLogin_NoActiveEnrollment(t *testing.T) {
	svc := NewAuthService(
		&fakeParentStore{parent: activeParent()},
		&fakeStudentStore{studentID: 7, enrollmentErr: repositories.ErrEnrollmentNotFound},
	)

	_, err := svc.Login(context.Background(), &dto.LoginRequest{Username: "bob", Password: "secret"})
	assert.ErrorIs(t, err, apperrors.ErrNoActiveEnrollment)
}

func TestLogin_MissingProfileStillSucceeds(t *testing.T) {
	svc := NewAuthService(
		&fakeParentStore{parent: activeParent()},
		&fakeStudentStore{studentID: 7, enrollmentID: 99, profileErr: repositories.ErrProfileNotFound},
	)

	user, err := svc.Login(context.Background(), &dto.LoginRequest{Username: "bob", Password: "secret"})
	require.NoError(t, err)
	assert.Nil(t, user.StudentName)
	assert.Equal(t, int64(7), user.StudentID)
	assert.Equal(t, int64(99), user.EARStudentID)
}

func TestLogin_Success(t *testing.T) {
	svc := NewAuthService(
		&fakeParentStore{parent: activeParent()},
		&fakeStudentStore{studentID: 7, enrollmentID: 99, profileName: "Bob Junior"},
	)

	user, err := svc.Login(context.Background(), &dto.LoginRequest{Username: "bob@gmail.com", Password: "secret"})
	require.NoError(t, err)

	assert.Equal(t, int64(42), user.ID)
	assert.Equal(t, "Bob Senior", user.Name)
	assert.Equal(t, "bob", user.Username)
	assert.Equal(t, int64(7), user.StudentID)
	assert.Equal(t, int64(99), user.EARStudentID)
	require.NotNil(t, user.StudentName)
	assert.Equal(t, "Bob Junior", *user.StudentName)
}

func TestLogin_UnexpectedErrorIsWrapped(t *testing.T) {
	boom := errors.New("connection refused")
	svc := NewAuthService(&fakeParentStore{lookupErr: boom}, &fakeStudentStore{})

	_, err := svc.Login(context.Background(), &dto.LoginRequest{Username: "bob", Password: "secret"})
	require.Error(t, err)
	assert.ErrorIs(t, err, boom)
	assert.NotErrorIs(t, err, apperrors.ErrInvalidCredentials)
}

func TestUpdateFCMToken_SkipsUnchangedToken(t *testing.T) {
	token := "tok-1"
	parents := &fakeParentStore{fcmToken: &token}
	svc := NewAuthService(parents, &fakeStudentStore{})

	message, err := svc.UpdateFCMToken(context.Background(), 42, "tok-1")
	require.NoError(t, err)
	assert.Equal(t, "Token already up to date", message)
	assert.Empty(t, parents.updateCalls)
}

func TestUpdateFCMToken_WritesChangedToken(t *testing.T) {
	old := "tok-1"
	parents := &fakeParentStore{fcmToken: &old}
	svc := NewAuthService(parents, &fakeStudentStore{})

	message, err := svc.UpdateFCMToken(context.Background(), 42, "tok-2")
	require.NoError(t, err)
	assert.Equal(t, "FCM Token updated successfully", message)
	assert.Equal(t, []string{"tok-2"}, parents.updateCalls)
}

func TestUpdateFCMToken_WritesWhenNoStoredToken(t *testing.T) {
	parents := &fakeParentStore{fcmToken: nil}
	svc := NewAuthService(parents, &fakeStudentStore{})

	_, err := svc.UpdateFCMToken(context.Background(), 42, "tok-1")
	require.NoError(t, err)
	assert.Equal(t, []string{"tok-1"}, parents.updateCalls)
}

func TestUpdateFCMToken_UnknownParent(t *testing.T) {
	parents := &fakeParentStore{fcmTokenErr: repositories.ErrParentNotFound}
	svc := NewAuthService(parents, &fakeStudentStore{})

	_, err := svc.UpdateFCMToken(context.Background(), 42, "tok-1")
	assert.ErrorIs(t, err, apperrors.ErrParentNotFound)
}

func TestChangePassword_WrongOldPassword(t *testing.T) {
	parents := &fakeParentStore{passwordOK: false}
	svc := NewAuthService(parents, &fakeStudentStore{})

	err := svc.ChangePassword(context.Background(), 42, "wrong", "next")
	assert.ErrorIs(t, err, apperrors.ErrIncorrectOldPassword)
	assert.Empty(t, parents.newPasswords)
}

func TestChangePassword_Success(t *testing.T) {
	parents := &fakeParentStore{passwordOK: true}
	svc := NewAuthService(parents, &fakeStudentStore{})

	err := svc.ChangePassword(context.Background(), 42, "secret", "next")
	require.NoError(t, err)
	assert.Equal(t, []string{"next"}, parents.newPasswords)
}
