package command

import (
	"context"
	"fmt"
	"strings"

	"github.com/alem-hub/student-roster/internal/domain/shared"
	"github.com/alem-hub/student-roster/internal/domain/student"
)

// ══════════════════════════════════════════════════════════════════════════════
// LOAD ROSTER COMMAND
// Replaces the whole roster with the contents of a file.
// On any failure the in-memory roster stays as it was.
// ══════════════════════════════════════════════════════════════════════════════

// LoadRosterCommand names the file to load.
type LoadRosterCommand struct {
	Path string
}

// Validate validates the command.
func (c LoadRosterCommand) Validate() error {
	if strings.TrimSpace(c.Path) == "" {
		return shared.NewDomainError("roster", "Load", shared.ErrInvalidInput, "file name is required")
	}
	return nil
}

// LoadRosterResult contains the result of loading.
type LoadRosterResult struct {
	Path string

	// Loaded is the number of students now in the roster.
	Loaded int
}

// LoadRosterHandler handles the LoadRosterCommand.
type LoadRosterHandler struct {
	roster *student.Roster
	store  student.Store
}

// NewLoadRosterHandler creates a new LoadRosterHandler.
func NewLoadRosterHandler(roster *student.Roster, store student.Store) *LoadRosterHandler {
	return &LoadRosterHandler{
		roster: roster,
		store:  store,
	}
}

// Handle executes the load roster command.
func (h *LoadRosterHandler) Handle(ctx context.Context, cmd LoadRosterCommand) (*LoadRosterResult, error) {
	if err := cmd.Validate(); err != nil {
		return nil, fmt.Errorf("load_roster: validation failed: %w", err)
	}

	if err := h.roster.Load(ctx, h.store, cmd.Path); err != nil {
		return nil, fmt.Errorf("load_roster: %w", err)
	}

	return &LoadRosterResult{
		Path:   cmd.Path,
		Loaded: h.roster.Len(),
	}, nil
}
