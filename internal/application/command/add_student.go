// Package command contains write operations (CQRS - Commands).
package command

import (
	"context"
	"fmt"
	"strings"

	"github.com/alem-hub/student-roster/internal/domain/shared"
	"github.com/alem-hub/student-roster/internal/domain/student"
	"github.com/alem-hub/student-roster/pkg/logger"
)

// ══════════════════════════════════════════════════════════════════════════════
// ADD STUDENT COMMAND
// Adds a record to the roster. The roster re-sorts itself by name.
// ══════════════════════════════════════════════════════════════════════════════

// AddStudentCommand contains the data of the new record.
type AddStudentCommand struct {
	// Name is the student's surname and initials.
	Name string

	// Group is the group number.
	Group int

	// Grade is a whitespace-separated list of grades; it is not checked here.
	Grade string
}

// Validate validates the command.
func (c AddStudentCommand) Validate() error {
	if strings.TrimSpace(c.Name) == "" {
		return shared.NewDomainError("roster", "Add", shared.ErrInvalidInput, "name is required")
	}
	return nil
}

// AddStudentResult contains the result of adding a student.
type AddStudentResult struct {
	// Student is the stored record.
	Student student.Student

	// Total is the roster size after the insertion.
	Total int
}

// AddStudentHandler handles the AddStudentCommand.
type AddStudentHandler struct {
	roster *student.Roster
}

// NewAddStudentHandler creates a new AddStudentHandler.
func NewAddStudentHandler(roster *student.Roster) *AddStudentHandler {
	return &AddStudentHandler{roster: roster}
}

// Handle executes the add student command.
func (h *AddStudentHandler) Handle(ctx context.Context, cmd AddStudentCommand) (*AddStudentResult, error) {
	if err := cmd.Validate(); err != nil {
		return nil, fmt.Errorf("add_student: validation failed: %w", err)
	}

	h.roster.Add(cmd.Name, cmd.Group, cmd.Grade)

	logger.FromContext(ctx).Debug("student added",
		logger.StudentName(cmd.Name),
		logger.Int("group", cmd.Group),
		logger.Count(h.roster.Len()),
	)

	return &AddStudentResult{
		Student: student.NewStudent(cmd.Name, cmd.Group, cmd.Grade),
		Total:   h.roster.Len(),
	}, nil
}
