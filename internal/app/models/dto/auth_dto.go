package dto

// LoginRequest represents the login credentials submitted by the client
type LoginRequest struct {
	Username string `json:"username" binding:"required"`
	Password string `json:"password" binding:"required"`
}

// LoginUser is the resolved identity returned on a successful login. The
// client keeps these fields and re-sends the raw identifiers on subsequent
// requests; no session token is issued.
type LoginUser struct {
	ID           int64   `json:"id"`
	Name         string  `json:"name"`
	Username     string  `json:"username"`
	LoginID      *string `json:"loginId"`
	Status       string  `json:"status"`
	StudentID    int64   `json:"studentId"`
	EARStudentID int64   `json:"earStudentId"`
	StudentName  *string `json:"studentName"` // Nullable: profile completeness is best-effort
}

// LoginResponse wraps the resolved identity
type LoginResponse struct {
	Success bool      `json:"success"`
	User    LoginUser `json:"user"`
}

// UpdateFCMRequest represents a push-notification token update
type UpdateFCMRequest struct {
	UserID int64  `json:"userId" binding:"required"`
	Token  string `json:"token" binding:"required"`
}

// ChangePasswordRequest represents a password change submission
type ChangePasswordRequest struct {
	UserID      int64  `json:"userId" binding:"required"`
	OldPassword string `json:"oldPassword" binding:"required"`
	NewPassword string `json:"newPassword" binding:"required"`
}

// SubscribeRequest carries the client's push token for registration
type SubscribeRequest struct {
	Token string `json:"token" binding:"required"`
}
