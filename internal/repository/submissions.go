package repository

import (
	"context"
	"fmt"
	"strings"

	"github.com/mon-refugee/membership-api/internal/models"
	"gorm.io/gorm"
)

// PageSize is the fixed admin listing page size.
const PageSize = 10

// sortColumns is the allow-list for caller-supplied sort fields. The
// admin UI hands the field name straight from the query string, so
// anything outside this map falls back to id rather than reaching SQL.
var sortColumns = map[string]string{
	"id":        "id",
	"reference": "reference",
	"fullname":  "fullname",
	"email":     "email",
	"phone":     "phone",
	"dob":       "dob",
	"arrival":   "arrival",
	"country":   "country",
}

// groupColumns allow-lists the analytics group fields the same way.
var groupColumns = map[string]string{
	"country":   "country",
	"ethnicity": "ethnicity",
	"religion":  "religion",
	"gender":    "gender",
}

// Query describes one admin listing request. Page is 1-based.
type Query struct {
	Search    string
	SortField string
	SortOrder string
	Page      int
}

// FieldCount is one aggregate bucket, e.g. submissions per country.
type FieldCount struct {
	Value string `gorm:"column:value"`
	Count int64  `gorm:"column:count"`
}

// Submissions is the append-only store for intake records. There are
// no update or delete operations.
type Submissions struct {
	db *gorm.DB
}

func NewSubmissions(db *gorm.DB) *Submissions {
	return &Submissions{db: db}
}

// Insert appends one submission with its serialized family records and
// returns the assigned id. Field formats are the caller's problem; the
// store accepts whatever validation let through, including duplicate
// references.
func (r *Submissions) Insert(ctx context.Context, sub *models.Submission, family []models.FamilyMember) (uint, error) {
	if err := sub.SetFamily(family); err != nil {
		return 0, fmt.Errorf("serialize family records: %w", err)
	}
	if err := r.db.WithContext(ctx).Create(sub).Error; err != nil {
		return 0, fmt.Errorf("insert submission: %w", err)
	}
	return sub.ID, nil
}

// List returns one page of submissions matching the search substring
// (against fullname or reference) plus the total match count for
// pagination.
func (r *Submissions) List(ctx context.Context, q Query) ([]models.Submission, int64, error) {
	column, ok := sortColumns[q.SortField]
	if !ok {
		column = "id"
	}
	order := "ASC"
	if strings.EqualFold(q.SortOrder, "desc") {
		order = "DESC"
	}
	page := q.Page
	if page < 1 {
		page = 1
	}

	pattern := "%" + q.Search + "%"
	matching := func() *gorm.DB {
		return r.db.WithContext(ctx).Model(&models.Submission{}).
			Where("fullname LIKE ? OR reference LIKE ?", pattern, pattern)
	}

	var total int64
	if err := matching().Count(&total).Error; err != nil {
		return nil, 0, fmt.Errorf("count submissions: %w", err)
	}

	var rows []models.Submission
	err := matching().
		Order(column + " " + order).
		Limit(PageSize).
		Offset((page - 1) * PageSize).
		Find(&rows).Error
	if err != nil {
		return nil, 0, fmt.Errorf("list submissions: %w", err)
	}
	return rows, total, nil
}

// CountByField groups all submissions by one categorical column. An
// unrecognized field is an error rather than a fallback; the analytics
// page only ever asks for known columns.
func (r *Submissions) CountByField(ctx context.Context, field string) ([]FieldCount, error) {
	column, ok := groupColumns[field]
	if !ok {
		return nil, fmt.Errorf("unknown aggregate field %q", field)
	}

	var counts []FieldCount
	err := r.db.WithContext(ctx).Model(&models.Submission{}).
		Select(column + " AS value, COUNT(*) AS count").
		Group(column).
		Find(&counts).Error
	if err != nil {
		return nil, fmt.Errorf("aggregate submissions by %s: %w", column, err)
	}
	return counts, nil
}

// All returns every submission in insertion order, for export and
// backup.
func (r *Submissions) All(ctx context.Context) ([]models.Submission, error) {
	var rows []models.Submission
	if err := r.db.WithContext(ctx).Order("id ASC").Find(&rows).Error; err != nil {
		return nil, fmt.Errorf("load submissions: %w", err)
	}
	return rows, nil
}
