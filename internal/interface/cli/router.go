// Package cli implements the interactive command loop of the roster tool.
package cli

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"strings"
	"unicode"

	"github.com/google/uuid"

	"github.com/alem-hub/student-roster/pkg/logger"
)

// Prompt is printed before every command.
const Prompt = ">>> "

// MaxLineSize is the longest input line the session accepts.
const MaxLineSize = 1 << 20

// errExit is returned by the exit handler to stop the loop.
var errExit = errors.New("exit")

// ══════════════════════════════════════════════════════════════════════════════
// SESSION
// ══════════════════════════════════════════════════════════════════════════════

// Session is one interactive conversation: where input comes from and where
// output and errors go.
type Session struct {
	ID string

	in     *bufio.Scanner
	out    io.Writer
	errOut io.Writer
}

// NewSession creates a session with a fresh UUID.
func NewSession(in io.Reader, out, errOut io.Writer) *Session {
	scanner := bufio.NewScanner(in)
	scanner.Buffer(make([]byte, 0, 64*1024), MaxLineSize)

	return &Session{
		ID:     uuid.New().String(),
		in:     scanner,
		out:    out,
		errOut: errOut,
	}
}

// Ask prints a question and reads one line. ok is false on end of input or
// when reading fails; Err tells the two apart.
func (s *Session) Ask(question string) (string, bool) {
	fmt.Fprint(s.out, question)
	if !s.in.Scan() {
		return "", false
	}
	return s.in.Text(), true
}

// Err returns the input failure that stopped Ask, or nil on end of input.
func (s *Session) Err() error {
	return s.in.Err()
}

// Println writes a line to the output stream.
func (s *Session) Println(a ...any) {
	fmt.Fprintln(s.out, a...)
}

// Errorln writes a line to the error stream.
func (s *Session) Errorln(a ...any) {
	fmt.Fprintln(s.errOut, a...)
}

// ══════════════════════════════════════════════════════════════════════════════
// ROUTER
// ══════════════════════════════════════════════════════════════════════════════

// HandlerFunc handles one command. args is the text after the command word,
// trimmed, with its original case.
type HandlerFunc func(ctx context.Context, s *Session, args string) error

// Router dispatches command lines to registered handlers.
type Router struct {
	log      *logger.Logger
	handlers map[string]HandlerFunc
}

// NewRouter creates an empty router.
func NewRouter(log *logger.Logger) *Router {
	if log == nil {
		log = logger.Nop()
	}
	return &Router{
		log:      log.With(logger.Component("cli")),
		handlers: make(map[string]HandlerFunc),
	}
}

// Register binds a command word (lower case) to a handler.
func (r *Router) Register(command string, h HandlerFunc) {
	r.handlers[strings.ToLower(command)] = h
}

// Run reads commands until "exit" or end of input. Handler errors are
// printed to the error stream and the loop continues.
func (r *Router) Run(ctx context.Context, s *Session) error {
	log := r.log.With(logger.SessionID(s.ID))
	ctx = logger.WithContext(ctx, log)
	log.Info("session started")

	for {
		if err := ctx.Err(); err != nil {
			return err
		}

		line, ok := s.Ask(Prompt)
		if !ok {
			return r.endOfInput(log, s)
		}

		err := r.Dispatch(ctx, s, line)
		if errors.Is(err, errExit) {
			if s.Err() != nil {
				return r.endOfInput(log, s)
			}
			log.Info("session ended", logger.String("reason", "exit"))
			return nil
		}
		if err != nil {
			log.Warn("command failed", logger.Err(err))
			s.Errorln(describe(err))
		}
	}
}

// endOfInput finishes the session when no more lines can be read.
func (r *Router) endOfInput(log *logger.Logger, s *Session) error {
	if err := s.Err(); err != nil {
		log.Error("session aborted", logger.Err(err))
		s.Errorln(fmt.Sprintf("Ошибка чтения ввода: %v", err))
		return fmt.Errorf("failed to read input: %w", err)
	}
	log.Info("session ended", logger.String("reason", "eof"))
	return nil
}

// Dispatch runs a single command line.
func (r *Router) Dispatch(ctx context.Context, s *Session, line string) error {
	command, args := splitCommand(line)
	if command == "" {
		return nil
	}

	h, ok := r.handlers[command]
	if !ok {
		s.Errorln(fmt.Sprintf("Неизвестная команда %s", command))
		return nil
	}

	logger.FromContext(ctx).Debug("dispatching command", logger.Command(command))
	return h(ctx, s, args)
}

// splitCommand separates the command word from its arguments. Only the
// command word is lower-cased: file names keep their case.
func splitCommand(line string) (string, string) {
	line = strings.TrimSpace(line)
	if line == "" {
		return "", ""
	}

	command, args := line, ""
	if i := strings.IndexFunc(line, unicode.IsSpace); i >= 0 {
		command, args = line[:i], line[i:]
	}

	return strings.ToLower(command), strings.TrimSpace(args)
}
