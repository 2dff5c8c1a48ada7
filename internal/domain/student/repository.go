package student

import "context"

// ══════════════════════════════════════════════════════════════════════════════
// REPOSITORY INTERFACES
// Контракт хранилища списка. Реализация находится в infrastructure/persistence.
// ══════════════════════════════════════════════════════════════════════════════

// Store загружает и сохраняет список студентов целиком.
type Store interface {
	// Load читает список из path.
	// Ошибки: ErrIO (файл недоступен), ErrParse (битый XML),
	// ErrFormat (номер группы не является целым числом).
	Load(ctx context.Context, path string) ([]Student, error)

	// Save записывает список в path.
	// Ошибки: ErrIO (файл нельзя открыть на запись).
	Save(ctx context.Context, path string, students []Student) error
}
