package controllers

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/berk/parentportal/internal/app/models/dto"
	"github.com/berk/parentportal/internal/pkg/apperrors"
)

func init() {
	gin.SetMode(gin.TestMode)
}

// fakeAuthService returns canned results and records whether it was called
type fakeAuthService struct {
	user    *dto.LoginUser
	err     error
	message string
	calls   int
}

func (f *fakeAuthService) Login(_ context.Context, _ *dto.LoginRequest) (*dto.LoginUser, error) {
	f.calls++
	return f.user, f.err
}

func (f *fakeAuthService) UpdateFCMToken(_ context.Context, _ int64, _ string) (string, error) {
	f.calls++
	return f.message, f.err
}

func (f *fakeAuthService) ChangePassword(_ context.Context, _ int64, _, _ string) error {
	f.calls++
	return f.err
}

func authRouter(svc *fakeAuthService) *gin.Engine {
	router := gin.New()
	controller := NewAuthController(svc)
	router.POST("/api/login", controller.Login)
	router.POST("/api/update-fcm", controller.UpdateFCM)
	router.POST("/api/password/change", controller.ChangePassword)
	return router
}

func postJSON(t *testing.T, router *gin.Engine, path string, body any) *httptest.ResponseRecorder {
	t.Helper()
	payload, err := json.Marshal(body)
	require.NoError(t, err)

	req := httptest.NewRequest(http.MethodPost, path, bytes.NewReader(payload))
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	return rec
}

func decodeError(t *testing.T, rec *httptest.ResponseRecorder) dto.ErrorResponse {
	t.Helper()
	var resp dto.ErrorResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	return resp
}

func TestLogin_Success(t *testing.T) {
	name := "Bob Junior"
	svc := &fakeAuthService{user: &dto.LoginUser{
		ID:           42,
		Name:         "Bob Senior",
		Username:     "bob",
		Status:       "1",
		StudentID:    7,
		EARStudentID: 99,
		StudentName:  &name,
	}}
	router := authRouter(svc)

	rec := postJSON(t, router, "/api/login", dto.LoginRequest{Username: "bob", Password: "secret"})

	assert.Equal(t, http.StatusOK, rec.Code)

	var resp dto.LoginResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.True(t, resp.Success)
	assert.Equal(t, int64(42), resp.User.ID)
	assert.Equal(t, int64(99), resp.User.EARStudentID)
}

func TestLogin_MissingFieldsRejectedBeforeService(t *testing.T) {
	svc := &fakeAuthService{}
	router := authRouter(svc)

	rec := postJSON(t, router, "/api/login", gin.H{"username": "bob"})

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, "Username and password are required", decodeError(t, rec).Error)
	assert.Zero(t, svc.calls)
}

func TestLogin_ErrorMapping(t *testing.T) {
	tests := []struct {
		name       string
		err        error
		wantStatus int
		wantError  string
	}{
		{"bad credentials", apperrors.ErrInvalidCredentials, http.StatusUnauthorized, "Username or password incorrect"},
		{"inactive account", apperrors.ErrAccountInactive, http.StatusUnauthorized, "Account is inactive. Please contact support."},
		{"no linked student", apperrors.ErrNoLinkedStudent, http.StatusForbidden, "No associated student found. Please contact the school administration."},
		{"no enrollment", apperrors.ErrNoActiveEnrollment, http.StatusForbidden, "No active academic record found for this student."},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			router := authRouter(&fakeAuthService{err: tt.err})

			rec := postJSON(t, router, "/api/login", dto.LoginRequest{Username: "bob", Password: "secret"})

			assert.Equal(t, tt.wantStatus, rec.Code)
			assert.Equal(t, tt.wantError, decodeError(t, rec).Error)
		})
	}
}

func TestLogin_UnexpectedErrorEchoesDetails(t *testing.T) {
	router := authRouter(&fakeAuthService{err: assert.AnError})

	rec := postJSON(t, router, "/api/login", dto.LoginRequest{Username: "bob", Password: "secret"})

	assert.Equal(t, http.StatusInternalServerError, rec.Code)
	resp := decodeError(t, rec)
	assert.Equal(t, "Internal server error", resp.Error)
	assert.Equal(t, assert.AnError.Error(), resp.Details)
}

func TestUpdateFCM_Success(t *testing.T) {
	svc := &fakeAuthService{message: "FCM Token updated successfully"}
	router := authRouter(svc)

	rec := postJSON(t, router, "/api/update-fcm", dto.UpdateFCMRequest{UserID: 42, Token: "tok-1"})

	assert.Equal(t, http.StatusOK, rec.Code)

	var resp dto.SuccessResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.True(t, resp.Success)
	assert.Equal(t, "FCM Token updated successfully", resp.Message)
}

func TestUpdateFCM_MissingFields(t *testing.T) {
	svc := &fakeAuthService{}
	router := authRouter(svc)

	rec := postJSON(t, router, "/api/update-fcm", gin.H{"userId": 42})

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, "User ID and Token are required", decodeError(t, rec).Error)
	assert.Zero(t, svc.calls)
}

func TestChangePassword_Success(t *testing.T) {
	router := authRouter(&fakeAuthService{})

	rec := postJSON(t, router, "/api/password/change", dto.ChangePasswordRequest{
		UserID:      42,
		OldPassword: "secret",
		NewPassword: "next",
	})

	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestChangePassword_WrongOldPassword(t *testing.T) {
	router := authRouter(&fakeAuthService{err: apperrors.ErrIncorrectOldPassword})

	rec := postJSON(t, router, "/api/password/change", dto.ChangePasswordRequest{
		UserID:      42,
		OldPassword: "wrong",
		NewPassword: "next",
	})

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.Equal(t, "Incorrect old password", decodeError(t, rec).Error)
}

func TestChangePassword_MissingFields(t *testing.T) {
	svc := &fakeAuthService{}
	router := authRouter(svc)

	rec := postJSON(t, router, "/api/password/change", gin.H{"userId": 42, "oldPassword": "secret"})

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, "All fields are required", decodeError(t, rec).Error)
	assert.Zero(t, svc.calls)
}
