package student

import (
	"fmt"
	"strings"
	"unicode/utf8"
)

// Ширины колонок таблицы: No, Ф.И.О., Группа, Успеваемость.
const (
	colNoWidth    = 4
	colNameWidth  = 30
	colGroupWidth = 20
	colGradeWidth = 15
)

var tableBorder = fmt.Sprintf("+-%s-+-%s-+-%s-+-%s-+",
	strings.Repeat("-", colNoWidth),
	strings.Repeat("-", colNameWidth),
	strings.Repeat("-", colGroupWidth),
	strings.Repeat("-", colGradeWidth),
)

var tableHeader = fmt.Sprintf("| %s | %s | %s | %s |",
	center("No", colNoWidth),
	center("Ф.И.О.", colNameWidth),
	center("Группа", colGroupWidth),
	center("Успеваемость", colGradeWidth),
)

// Render возвращает список в виде таблицы.
func (r *Roster) Render() string {
	return RenderTable(r.students)
}

// String реализует fmt.Stringer.
func (r *Roster) String() string {
	return r.Render()
}

// RenderTable рисует таблицу для произвольной последовательности студентов:
// рамка, заголовок, рамка, строки, рамка. Строки склеиваются через "\n",
// без завершающего перевода строки. Ширина считается в символах,
// длинные значения не обрезаются.
func RenderTable(students []Student) string {
	lines := make([]string, 0, len(students)+4)
	lines = append(lines, tableBorder, tableHeader, tableBorder)

	for i, s := range students {
		lines = append(lines, fmt.Sprintf("| %*d | %-*s | %-*d | %*s |",
			colNoWidth, i+1,
			colNameWidth, s.Name,
			colGroupWidth, s.Group,
			colGradeWidth, s.Grade,
		))
	}

	lines = append(lines, tableBorder)
	return strings.Join(lines, "\n")
}

// center выравнивает s по центру поля width; нечётный остаток уходит вправо.
func center(s string, width int) string {
	pad := width - utf8.RuneCountInString(s)
	if pad <= 0 {
		return s
	}
	left := pad / 2
	return strings.Repeat(" ", left) + s + strings.Repeat(" ", pad-left)
}
