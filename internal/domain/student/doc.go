// Package student содержит доменную модель списка студентов.
//
// Пакет определяет:
//
//   - Student: неизменяемая запись (имя, номер группы, строка оценок)
//   - Roster: упорядоченный по имени список студентов
//   - Store: интерфейс хранилища, реализуемый в infrastructure
//
// # Инварианты
//
// После каждого Add и Replace список отсортирован по имени. Уникальности
// нет: одинаковые имена остаются разными записями. Load заменяет список
// только при полном успехе, Save список не меняет.
//
// # Пример использования
//
//	roster := NewRoster()
//	roster.Add("Ivanov I.I.", 101, "4 5 3")
//	roster.Add("Abramov A.A.", 102, "5 5")
//
//	fmt.Println(roster) // таблица
//
//	best, err := roster.Select(DefaultThreshold)
//	if err != nil {
//	    return err // ErrParse: в оценках не число
//	}
//	fmt.Println(RenderTable(best))
package student
