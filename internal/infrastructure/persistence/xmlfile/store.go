package xmlfile

import (
	"bytes"
	"context"
	"fmt"
	"os"
	"time"

	"github.com/alem-hub/student-roster/internal/domain/shared"
	"github.com/alem-hub/student-roster/internal/domain/student"
	"github.com/alem-hub/student-roster/pkg/logger"
)

// ══════════════════════════════════════════════════════════════════════════════
// FILE STORE
// ══════════════════════════════════════════════════════════════════════════════

// Store implements student.Store on top of XML files.
type Store struct {
	log *logger.Logger
}

// NewStore creates a new Store.
func NewStore(log *logger.Logger) *Store {
	if log == nil {
		log = logger.Nop()
	}
	return &Store{log: log.With(logger.Component("xmlfile"))}
}

var _ student.Store = (*Store)(nil)

// Load reads the roster from path. The file is closed on every exit path.
func (s *Store) Load(ctx context.Context, path string) ([]student.Student, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	start := time.Now()

	f, err := os.Open(path)
	if err != nil {
		return nil, shared.WrapError("xmlfile", "Load", shared.ErrIO,
			fmt.Sprintf("cannot open %q", path), err)
	}
	defer f.Close()

	decoded, err := Decode(f)
	if err != nil {
		s.log.Debug("roster load failed", logger.Operation("load"), logger.Path(path), logger.Err(err))
		return nil, err
	}

	if decoded.Skipped > 0 {
		s.log.Warn("incomplete student elements skipped",
			logger.Operation("load"),
			logger.Path(path),
			logger.Int("skipped", decoded.Skipped),
		)
	}

	s.log.Info("roster loaded",
		logger.Operation("load"),
		logger.Path(path),
		logger.Count(len(decoded.Students)),
		logger.Latency(time.Since(start)),
	)

	return decoded.Students, nil
}

// Save writes the roster to path. The document is built in memory first and
// written with a single call.
func (s *Store) Save(ctx context.Context, path string, students []student.Student) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	start := time.Now()

	var buf bytes.Buffer
	if err := Encode(&buf, students); err != nil {
		return shared.WrapError("xmlfile", "Save", shared.ErrIO, "cannot encode roster", err)
	}

	if err := os.WriteFile(path, buf.Bytes(), 0o644); err != nil {
		return shared.WrapError("xmlfile", "Save", shared.ErrIO,
			fmt.Sprintf("cannot write %q", path), err)
	}

	s.log.Info("roster saved",
		logger.Operation("save"),
		logger.Path(path),
		logger.Count(len(students)),
		logger.Latency(time.Since(start)),
	)

	return nil
}
