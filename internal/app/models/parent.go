package models

// Parent defines the guardian account model based on the 'parents' table
type Parent struct {
	ID       int64   `json:"id" db:"id"`                 // Unique identifier for the account
	LoginID  *string `json:"loginId,omitempty" db:"login_id"` // External login identifier (nullable)
	Username string  `json:"username" db:"username"`     // Login name
	Password string  `json:"-" db:"password"`            // Stored secret (plaintext, excluded from JSON)
	Name     string  `json:"name" db:"name"`             // Display name
	Status   string  `json:"status" db:"status"`         // Account status flag; "0" means inactive
	FCMToken *string `json:"-" db:"fcm_token"`           // Push-notification token (nullable)
}

// Inactive reports whether the account status flag disables login. The flag
// is stored loosely and may arrive as "0", " 0" or an empty rendering of
// numeric zero.
func (p *Parent) Inactive() bool {
	return IsInactiveStatus(p.Status)
}

// ParentStudent maps a guardian account to a student, based on the
// 'parent_students' association table. When a parent has several rows the
// one with the lowest id is authoritative.
type ParentStudent struct {
	ID        int64 `json:"id" db:"id"`
	ParentID  int64 `json:"parentId" db:"parent_id"`
	StudentID int64 `json:"studentId" db:"student_id"`
}
