package command

import (
	"context"
	"fmt"
	"strings"

	"github.com/alem-hub/student-roster/internal/domain/shared"
	"github.com/alem-hub/student-roster/internal/domain/student"
)

// ══════════════════════════════════════════════════════════════════════════════
// SAVE ROSTER COMMAND
// Writes the current roster to a file. The roster itself is not modified.
// ══════════════════════════════════════════════════════════════════════════════

// SaveRosterCommand names the destination file.
type SaveRosterCommand struct {
	Path string
}

// Validate validates the command.
func (c SaveRosterCommand) Validate() error {
	if strings.TrimSpace(c.Path) == "" {
		return shared.NewDomainError("roster", "Save", shared.ErrInvalidInput, "file name is required")
	}
	return nil
}

// SaveRosterResult contains the result of saving.
type SaveRosterResult struct {
	Path  string
	Saved int
}

// SaveRosterHandler handles the SaveRosterCommand.
type SaveRosterHandler struct {
	roster *student.Roster
	store  student.Store
}

// NewSaveRosterHandler creates a new SaveRosterHandler.
func NewSaveRosterHandler(roster *student.Roster, store student.Store) *SaveRosterHandler {
	return &SaveRosterHandler{
		roster: roster,
		store:  store,
	}
}

// Handle executes the save roster command.
func (h *SaveRosterHandler) Handle(ctx context.Context, cmd SaveRosterCommand) (*SaveRosterResult, error) {
	if err := cmd.Validate(); err != nil {
		return nil, fmt.Errorf("save_roster: validation failed: %w", err)
	}

	if err := h.roster.Save(ctx, h.store, cmd.Path); err != nil {
		return nil, fmt.Errorf("save_roster: %w", err)
	}

	return &SaveRosterResult{
		Path:  cmd.Path,
		Saved: h.roster.Len(),
	}, nil
}
