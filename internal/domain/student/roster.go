package student

import (
	"context"
	"sort"
)

// DefaultThreshold - минимальный средний балл для отбора по умолчанию.
const DefaultThreshold = 4.0

// ══════════════════════════════════════════════════════════════════════════════
// AGGREGATE: ROSTER
// ══════════════════════════════════════════════════════════════════════════════

// Roster - упорядоченный список студентов.
//
// Инвариант: после каждого добавления и каждой замены список отсортирован
// по имени по возрастанию. Дубликаты имён допустимы.
//
// Roster не предназначен для конкурентного использования.
type Roster struct {
	students []Student
}

// NewRoster создаёт пустой список.
func NewRoster() *Roster {
	return &Roster{}
}

// Add добавляет студента и пересортировывает список. Ошибок не бывает.
func (r *Roster) Add(name string, group int, grade string) {
	r.students = append(r.students, NewStudent(name, group, grade))
	r.sort()
}

// Students возвращает копию текущего списка.
func (r *Roster) Students() []Student {
	out := make([]Student, len(r.students))
	copy(out, r.students)
	return out
}

// Len возвращает количество студентов.
func (r *Roster) Len() int {
	return len(r.students)
}

// Replace целиком заменяет список (прежнее содержимое отбрасывается).
func (r *Roster) Replace(students []Student) {
	r.students = make([]Student, len(students))
	copy(r.students, students)
	r.sort()
}

// Select возвращает студентов со средним баллом не ниже threshold,
// сохраняя порядок списка. Если у кого-то оценка не является целым числом,
// возвращается ошибка ErrParse и никакого частичного результата.
func (r *Roster) Select(threshold float64) ([]Student, error) {
	result := make([]Student, 0, len(r.students))

	for _, s := range r.students {
		avg, err := s.Average()
		if err != nil {
			return nil, err
		}
		if avg >= threshold {
			result = append(result, s)
		}
	}

	return result, nil
}

// Load загружает список из хранилища. При ошибке текущий список не меняется.
func (r *Roster) Load(ctx context.Context, store Store, path string) error {
	students, err := store.Load(ctx, path)
	if err != nil {
		return err
	}
	r.Replace(students)
	return nil
}

// Save сохраняет текущий список в хранилище. Список не меняется.
func (r *Roster) Save(ctx context.Context, store Store, path string) error {
	return store.Save(ctx, path, r.Students())
}

func (r *Roster) sort() {
	sort.SliceStable(r.students, func(i, j int) bool {
		return r.students[i].Name < r.students[j].Name
	})
}
