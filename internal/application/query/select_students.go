package query

import (
	"context"
	"fmt"
	"math"

	"github.com/alem-hub/student-roster/internal/domain/shared"
	"github.com/alem-hub/student-roster/internal/domain/student"
	"github.com/alem-hub/student-roster/pkg/logger"
)

// ══════════════════════════════════════════════════════════════════════════════
// SELECT STUDENTS QUERY
// Finds students whose average grade is at least the threshold.
// ══════════════════════════════════════════════════════════════════════════════

// SelectStudentsQuery contains the filter parameters.
type SelectStudentsQuery struct {
	// Threshold is the minimum average grade. nil means the handler default.
	Threshold *float64
}

// Validate validates the query.
func (q SelectStudentsQuery) Validate() error {
	if q.Threshold != nil && (math.IsNaN(*q.Threshold) || math.IsInf(*q.Threshold, 0)) {
		return shared.NewDomainError("roster", "Select", shared.ErrInvalidInput, "threshold must be a finite number")
	}
	return nil
}

// SelectStudentsResult contains the matching students.
type SelectStudentsResult struct {
	Students  []student.Student
	Threshold float64
	Table     string
}

// SelectStudentsHandler handles the SelectStudentsQuery.
type SelectStudentsHandler struct {
	roster           *student.Roster
	defaultThreshold float64
}

// NewSelectStudentsHandler creates a new SelectStudentsHandler.
func NewSelectStudentsHandler(roster *student.Roster, defaultThreshold float64) *SelectStudentsHandler {
	return &SelectStudentsHandler{
		roster:           roster,
		defaultThreshold: defaultThreshold,
	}
}

// Handle executes the query.
func (h *SelectStudentsHandler) Handle(ctx context.Context, q SelectStudentsQuery) (*SelectStudentsResult, error) {
	if err := q.Validate(); err != nil {
		return nil, fmt.Errorf("select_students: validation failed: %w", err)
	}

	threshold := h.defaultThreshold
	if q.Threshold != nil {
		threshold = *q.Threshold
	}

	selected, err := h.roster.Select(threshold)
	if err != nil {
		return nil, fmt.Errorf("select_students: %w", err)
	}

	logger.FromContext(ctx).Debug("students selected",
		logger.Threshold(threshold),
		logger.Bool("default_threshold", q.Threshold == nil),
		logger.Count(len(selected)),
	)

	return &SelectStudentsResult{
		Students:  selected,
		Threshold: threshold,
		Table:     student.RenderTable(selected),
	}, nil
}
