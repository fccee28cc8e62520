package dto

import "github.com/berk/parentportal/internal/app/models"

// FeeData groups the four fee result sets returned for an enrollment record
type FeeData struct {
	Main    []models.Fee        `json:"main"`
	Monthly []models.StudentFee `json:"monthly"`
	Details []models.FeeDetail  `json:"details"`
	Extra   []models.ExtraFee   `json:"extra"`
}

// ExamWithDetails is an exam voucher with its per-subject result lines
type ExamWithDetails struct {
	models.ExamVoucher
	Details []models.Exam `json:"details"`
}
