package student

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/alem-hub/student-roster/internal/domain/shared"
)

// ══════════════════════════════════════════════════════════════════════════════
// MAIN ENTITY: STUDENT
// ══════════════════════════════════════════════════════════════════════════════

// Student - запись о студенте. Значение неизменяемое: копируется свободно,
// общего изменяемого состояния нет.
type Student struct {
	// Name - фамилия и инициалы.
	Name string

	// Group - номер учебной группы.
	Group int

	// Grade - оценки через пробел, например "4 5 3". Может быть пустой.
	Grade string
}

// NewStudent создаёт запись о студенте. Оценки не проверяются:
// некорректная строка обнаружится только при подсчёте среднего балла.
func NewStudent(name string, group int, grade string) Student {
	return Student{
		Name:  name,
		Group: group,
		Grade: grade,
	}
}

// Grades разбирает строку оценок на целые числа.
// Разделитель - любые пробельные символы.
func (s Student) Grades() ([]int, error) {
	tokens := strings.Fields(s.Grade)
	grades := make([]int, 0, len(tokens))

	for _, token := range tokens {
		g, err := strconv.Atoi(token)
		if err != nil {
			return nil, shared.WrapError("student", "Grades", shared.ErrParse,
				fmt.Sprintf("grade %q of %q is not an integer", token, s.Name), err)
		}
		grades = append(grades, g)
	}

	return grades, nil
}

// Average возвращает средний балл. Без оценок средний балл равен 0.
func (s Student) Average() (float64, error) {
	grades, err := s.Grades()
	if err != nil {
		return 0, err
	}

	sum := 0
	for _, g := range grades {
		sum += g
	}

	return float64(sum) / float64(max(len(grades), 1)), nil
}
