package repositories

import (
	"context"
	"fmt"

	"github.com/Masterminds/squirrel"

	"github.com/berk/parentportal/internal/app/models"
	"github.com/berk/parentportal/internal/db"
)

// FeeRepository handles fee record database operations
type FeeRepository struct {
	db *db.DB
	sb squirrel.StatementBuilderType
}

// NewFeeRepository creates a new FeeRepository
func NewFeeRepository(database *db.DB) *FeeRepository {
	return &FeeRepository{
		db: database,
		sb: squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar),
	}
}

// GetMainFees returns the annual/term fee records for an enrollment record,
// optionally restricted to a single academic year.
func (r *FeeRepository) GetMainFees(ctx context.Context, enrollmentID int64, yearID *int64) ([]models.Fee, error) {
	builder := r.sb.Select("id", "enrollment_id", "year_id", "amount", "paid", "balance", "fee_date").
		From("fees").
		Where(squirrel.Eq{"enrollment_id": enrollmentID}).
		OrderBy("fee_date DESC")
	if yearID != nil {
		builder = builder.Where(squirrel.Eq{"year_id": *yearID})
	}

	sql, args, err := builder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build main fee query: %w", err)
	}

	rows, err := r.db.Query(ctx, sql, args...)
	if err != nil {
		return nil, fmt.Errorf("error fetching main fees: %w", err)
	}
	defer rows.Close()

	fees := []models.Fee{}
	for rows.Next() {
		var f models.Fee
		if err := rows.Scan(&f.ID, &f.EnrollmentID, &f.YearID, &f.Amount, &f.Paid, &f.Balance, &f.FeeDate); err != nil {
			return nil, fmt.Errorf("error scanning fee row: %w", err)
		}
		fees = append(fees, f)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating fee rows: %w", err)
	}

	return fees, nil
}

// GetMonthlyFees returns the monthly fee records for an enrollment record,
// optionally restricted to a single academic year.
func (r *FeeRepository) GetMonthlyFees(ctx context.Context, enrollmentID int64, yearID *int64) ([]models.StudentFee, error) {
	builder := r.sb.Select("id", "enrollment_id", "year_id", "month", "amount", "pay_date").
		From("student_fees").
		Where(squirrel.Eq{"enrollment_id": enrollmentID}).
		OrderBy("pay_date DESC NULLS LAST")
	if yearID != nil {
		builder = builder.Where(squirrel.Eq{"year_id": *yearID})
	}

	sql, args, err := builder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build monthly fee query: %w", err)
	}

	rows, err := r.db.Query(ctx, sql, args...)
	if err != nil {
		return nil, fmt.Errorf("error fetching monthly fees: %w", err)
	}
	defer rows.Close()

	fees := []models.StudentFee{}
	for rows.Next() {
		var f models.StudentFee
		if err := rows.Scan(&f.ID, &f.EnrollmentID, &f.YearID, &f.Month, &f.Amount, &f.PayDate); err != nil {
			return nil, fmt.Errorf("error scanning monthly fee row: %w", err)
		}
		fees = append(fees, f)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating monthly fee rows: %w", err)
	}

	return fees, nil
}

// GetFeeDetails returns the line items for an enrollment record. Unlike the
// other fee sets, details are never filtered by year.
func (r *FeeRepository) GetFeeDetails(ctx context.Context, enrollmentID int64) ([]models.FeeDetail, error) {
	rows, err := r.db.Query(ctx, `
		SELECT id, enrollment_id, description, amount, fee_date
		FROM fee_details
		WHERE enrollment_id = $1
		ORDER BY fee_date DESC`,
		enrollmentID)
	if err != nil {
		return nil, fmt.Errorf("error fetching fee details: %w", err)
	}
	defer rows.Close()

	details := []models.FeeDetail{}
	for rows.Next() {
		var d models.FeeDetail
		if err := rows.Scan(&d.ID, &d.EnrollmentID, &d.Description, &d.Amount, &d.FeeDate); err != nil {
			return nil, fmt.Errorf("error scanning fee detail row: %w", err)
		}
		details = append(details, d)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating fee detail rows: %w", err)
	}

	return details, nil
}

// GetExtraFees returns ad hoc charges for an enrollment record, optionally
// restricted to a single academic year.
func (r *FeeRepository) GetExtraFees(ctx context.Context, enrollmentID int64, yearID *int64) ([]models.ExtraFee, error) {
	builder := r.sb.Select("id", "enrollment_id", "year_id", "description", "amount", "fee_date").
		From("extra_fees").
		Where(squirrel.Eq{"enrollment_id": enrollmentID}).
		OrderBy("fee_date DESC")
	if yearID != nil {
		builder = builder.Where(squirrel.Eq{"year_id": *yearID})
	}

	sql, args, err := builder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build extra fee query: %w", err)
	}

	rows, err := r.db.Query(ctx, sql, args...)
	if err != nil {
		return nil, fmt.Errorf("error fetching extra fees: %w", err)
	}
	defer rows.Close()

	fees := []models.ExtraFee{}
	for rows.Next() {
		var f models.ExtraFee
		if err := rows.Scan(&f.ID, &f.EnrollmentID, &f.YearID, &f.Description, &f.Amount, &f.FeeDate); err != nil {
			return nil, fmt.Errorf("error scanning extra fee row: %w", err)
		}
		fees = append(fees, f)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating extra fee rows: %w", err)
	}

	return fees, nil
}
