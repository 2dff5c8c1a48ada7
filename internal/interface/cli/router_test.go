package cli

import (
	"bufio"
	"bytes"
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/alem-hub/student-roster/internal/application/command"
	"github.com/alem-hub/student-roster/internal/application/query"
	"github.com/alem-hub/student-roster/internal/domain/student"
	"github.com/alem-hub/student-roster/internal/infrastructure/persistence/xmlfile"
)

type harness struct {
	roster *student.Roster
	router *Router
	out    bytes.Buffer
	errOut bytes.Buffer
}

func newHarness() *harness {
	roster := student.NewRoster()
	store := xmlfile.NewStore(nil)

	h := &harness{roster: roster, router: NewRouter(nil)}
	handlers := &Handlers{
		Add:    command.NewAddStudentHandler(roster),
		Load:   command.NewLoadRosterHandler(roster, store),
		Save:   command.NewSaveRosterHandler(roster, store),
		List:   query.NewListStudentsHandler(roster),
		Select: query.NewSelectStudentsHandler(roster, student.DefaultThreshold),
	}
	handlers.Register(h.router)
	return h
}

func (h *harness) run(t *testing.T, lines ...string) {
	t.Helper()
	in := strings.NewReader(strings.Join(lines, "\n") + "\n")
	require.NoError(t, h.router.Run(context.Background(), NewSession(in, &h.out, &h.errOut)))
}

func TestSplitCommand(t *testing.T) {
	tests := []struct {
		line, cmd, args string
	}{
		{"list", "list", ""},
		{"  LIST  ", "list", ""},
		{"load Students.XML", "load", "Students.XML"},
		{"save\tmy file.xml ", "save", "my file.xml"},
		{"select 4.5", "select", "4.5"},
		{"", "", ""},
	}

	for _, tt := range tests {
		cmd, args := splitCommand(tt.line)
		assert.Equal(t, tt.cmd, cmd, tt.line)
		assert.Equal(t, tt.args, args, tt.line)
	}
}

func TestRouter_ScriptedSession(t *testing.T) {
	path := filepath.Join(t.TempDir(), "Group.xml")
	h := newHarness()

	h.run(t,
		"add", "Petrov B.", "102", "4 4",
		"ADD", "Ivanov A.", "101", "5 4 3",
		"add", "Sidorov C.", "103", "3 3",
		"list",
		"select",
		"select 4.5",
		"select abc",
		"add", "Broken", "notanumber", "5",
		"save "+path,
		"load "+filepath.Join(filepath.Dir(path), "missing.xml"),
		"frobnicate",
		"",
		"help",
		"exit",
		"list",
	)

	out := h.out.String()
	errOut := h.errOut.String()

	// list: full table with three rows, sorted by name.
	assert.Contains(t, out, "|    1 | Ivanov A.                      | 101                  |           5 4 3 |")
	assert.Contains(t, out, "|    2 | Petrov B.                      | 102                  |             4 4 |")
	assert.Contains(t, out, "|    3 | Sidorov C.                     | 103                  |             3 3 |")

	// select: every student examined, default threshold 4.
	assert.Contains(t, out, "Найдено студентов со средним баллом >= 4: 2")
	assert.Contains(t, out, "Студенты со средним баллом >= 4.5 не найдены.")

	assert.Contains(t, out, "Список команд:")

	assert.Contains(t, errOut, `Неверный ввод: cli.Select: threshold "abc" is not a number`)
	assert.Contains(t, errOut, `Неверный ввод: cli.Add: group "notanumber" is not an integer`)
	assert.Contains(t, errOut, "Ошибка ввода-вывода")
	assert.Contains(t, errOut, "Неизвестная команда frobnicate")

	// Failed add and failed load left the roster alone.
	assert.Equal(t, 3, h.roster.Len())

	// The save command wrote the file under its original (mixed-case) name.
	raw, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(raw), "<name>Sidorov C.</name>")

	// Nothing after exit was executed: one prompt per command line up to exit.
	assert.Equal(t, 14, strings.Count(out, Prompt))
}

func TestRouter_LoadReplacesRoster(t *testing.T) {
	path := filepath.Join(t.TempDir(), "students.xml")
	require.NoError(t, os.WriteFile(path, []byte(`<?xml version='1.0' encoding='utf-8'?>
<students>
  <Student><name>Loaded L.</name><group>7</group><grade>5 5</grade></Student>
</students>`), 0o644))

	h := newHarness()
	h.run(t,
		"add", "Before B.", "1", "3",
		"load "+path,
		"list",
	)

	assert.Empty(t, h.errOut.String())
	assert.Contains(t, h.out.String(), "Loaded L.")
	require.Equal(t, 1, h.roster.Len())
	assert.Equal(t, "Loaded L.", h.roster.Students()[0].Name)
}

func TestRouter_LoadMalformedReportsParseError(t *testing.T) {
	path := filepath.Join(t.TempDir(), "broken.xml")
	require.NoError(t, os.WriteFile(path, []byte(`<students><Student>`), 0o644))

	h := newHarness()
	h.run(t,
		"add", "Kept K.", "1", "5",
		"load "+path,
	)

	assert.Contains(t, h.errOut.String(), "Ошибка разбора")
	assert.Equal(t, 1, h.roster.Len())
}

func TestRouter_SelectParseErrorIsReported(t *testing.T) {
	h := newHarness()
	h.run(t,
		"add", "Bad B.", "1", "five",
		"select",
	)

	assert.Contains(t, h.errOut.String(), "Ошибка разбора")
	assert.Equal(t, 1, h.roster.Len())
}

func TestRouter_EndOfInputInsideAdd(t *testing.T) {
	h := newHarness()
	in := strings.NewReader("add\nHalf H.\n")

	err := h.router.Run(context.Background(), NewSession(in, &h.out, &h.errOut))
	require.NoError(t, err)
	assert.Zero(t, h.roster.Len())
}

func TestRouter_MissingFileName(t *testing.T) {
	h := newHarness()
	h.run(t, "save", "load   ")

	assert.Equal(t, 2, strings.Count(h.errOut.String(), "file name is required"))
}

func TestRouter_CancelledContext(t *testing.T) {
	h := newHarness()
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	err := h.router.Run(ctx, NewSession(strings.NewReader("list\n"), &h.out, &h.errOut))
	assert.ErrorIs(t, err, context.Canceled)
	assert.Empty(t, h.out.String())
}

func TestRouter_LongLineIsAccepted(t *testing.T) {
	name := strings.Repeat("x", 70000)
	h := newHarness()
	h.run(t, "add", name, "1", "5")

	assert.Empty(t, h.errOut.String())
	require.Equal(t, 1, h.roster.Len())
	assert.Equal(t, name, h.roster.Students()[0].Name)
}

func TestRouter_OversizedLineAbortsSession(t *testing.T) {
	tests := []struct {
		name  string
		input string
	}{
		{"inside add", "add\n" + strings.Repeat("x", MaxLineSize+1) + "\n1\n5\nlist\n"},
		{"as a command", strings.Repeat("x", MaxLineSize+1) + "\nlist\n"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h := newHarness()

			err := h.router.Run(context.Background(), NewSession(strings.NewReader(tt.input), &h.out, &h.errOut))
			require.Error(t, err)
			assert.ErrorIs(t, err, bufio.ErrTooLong)
			assert.Contains(t, h.errOut.String(), "Ошибка чтения ввода")
			assert.Zero(t, h.roster.Len())
		})
	}
}
