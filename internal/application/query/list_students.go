// Package query contains read operations (CQRS - Queries).
package query

import (
	"context"

	"github.com/alem-hub/student-roster/internal/domain/student"
)

// ══════════════════════════════════════════════════════════════════════════════
// LIST STUDENTS QUERY
// ══════════════════════════════════════════════════════════════════════════════

// ListStudentsQuery has no parameters: the whole roster is listed.
type ListStudentsQuery struct{}

// ListStudentsResult contains the roster snapshot and its table.
type ListStudentsResult struct {
	Students []student.Student
	Table    string
}

// ListStudentsHandler handles the ListStudentsQuery.
type ListStudentsHandler struct {
	roster *student.Roster
}

// NewListStudentsHandler creates a new ListStudentsHandler.
func NewListStudentsHandler(roster *student.Roster) *ListStudentsHandler {
	return &ListStudentsHandler{roster: roster}
}

// Handle executes the query.
func (h *ListStudentsHandler) Handle(_ context.Context, _ ListStudentsQuery) (*ListStudentsResult, error) {
	students := h.roster.Students()
	return &ListStudentsResult{
		Students: students,
		Table:    student.RenderTable(students),
	}, nil
}
