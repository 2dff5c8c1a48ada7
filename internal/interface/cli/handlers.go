package cli

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/alem-hub/student-roster/internal/application/command"
	"github.com/alem-hub/student-roster/internal/application/query"
	"github.com/alem-hub/student-roster/internal/domain/shared"
)

// ══════════════════════════════════════════════════════════════════════════════
// COMMAND HANDLERS
// Thin adapters: parse the line, call the use case, print the result.
// ══════════════════════════════════════════════════════════════════════════════

// Handlers bundles the use cases the command loop needs.
type Handlers struct {
	Add    *command.AddStudentHandler
	Load   *command.LoadRosterHandler
	Save   *command.SaveRosterHandler
	List   *query.ListStudentsHandler
	Select *query.SelectStudentsHandler
}

// Register binds every command of the tool to r.
func (h *Handlers) Register(r *Router) {
	r.Register("add", h.add)
	r.Register("list", h.list)
	r.Register("select", h.selectStudents)
	r.Register("load", h.load)
	r.Register("save", h.save)
	r.Register("help", help)
	r.Register("exit", exit)
}

func (h *Handlers) add(ctx context.Context, s *Session, _ string) error {
	name, ok := s.Ask("Фамилия и инициалы? ")
	if !ok {
		return errExit
	}
	groupText, ok := s.Ask("Группа? ")
	if !ok {
		return errExit
	}
	grade, ok := s.Ask("Оценки ")
	if !ok {
		return errExit
	}

	group, err := strconv.Atoi(strings.TrimSpace(groupText))
	if err != nil {
		return shared.WrapError("cli", "Add", shared.ErrInvalidInput,
			fmt.Sprintf("group %q is not an integer", groupText), err)
	}

	_, err = h.Add.Handle(ctx, command.AddStudentCommand{
		Name:  strings.TrimSpace(name),
		Group: group,
		Grade: grade,
	})
	return err
}

func (h *Handlers) list(ctx context.Context, s *Session, _ string) error {
	res, err := h.List.Handle(ctx, query.ListStudentsQuery{})
	if err != nil {
		return err
	}
	s.Println(res.Table)
	return nil
}

func (h *Handlers) selectStudents(ctx context.Context, s *Session, args string) error {
	var q query.SelectStudentsQuery
	if args != "" {
		threshold, err := strconv.ParseFloat(args, 64)
		if err != nil {
			return shared.WrapError("cli", "Select", shared.ErrInvalidInput,
				fmt.Sprintf("threshold %q is not a number", args), err)
		}
		q.Threshold = &threshold
	}

	res, err := h.Select.Handle(ctx, q)
	if err != nil {
		return err
	}

	if len(res.Students) == 0 {
		s.Println(fmt.Sprintf("Студенты со средним баллом >= %g не найдены.", res.Threshold))
		return nil
	}

	s.Println(res.Table)
	s.Println(fmt.Sprintf("Найдено студентов со средним баллом >= %g: %d", res.Threshold, len(res.Students)))
	return nil
}

func (h *Handlers) load(ctx context.Context, _ *Session, args string) error {
	_, err := h.Load.Handle(ctx, command.LoadRosterCommand{Path: args})
	return err
}

func (h *Handlers) save(ctx context.Context, _ *Session, args string) error {
	_, err := h.Save.Handle(ctx, command.SaveRosterCommand{Path: args})
	return err
}

func exit(context.Context, *Session, string) error {
	return errExit
}

// describe turns an error into the line shown to the user.
func describe(err error) string {
	var prefix string
	switch {
	case shared.IsParse(err):
		prefix = "Ошибка разбора"
	case shared.IsFormat(err):
		prefix = "Ошибка формата"
	case shared.IsIO(err):
		prefix = "Ошибка ввода-вывода"
	case shared.IsInvalidInput(err):
		prefix = "Неверный ввод"
	default:
		prefix = "Ошибка"
	}

	var de *shared.DomainError
	if errors.As(err, &de) {
		return fmt.Sprintf("%s: %s", prefix, de.Error())
	}
	return fmt.Sprintf("%s: %v", prefix, err)
}
