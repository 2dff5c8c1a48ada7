package cli

import (
	"context"
	"strings"
)

var helpText = strings.Join([]string{
	"Список команд:",
	"",
	"add - добавить студента;",
	"list - вывести список студентов;",
	"select [порог] - запросить студентов со средним баллом не ниже порога;",
	"load <имя_файла> - загрузить данные из файла;",
	"save <имя_файла> - сохранить данные в файл;",
	"help - отобразить справку;",
	"exit - завершить работу с программой.",
}, "\n")

func help(_ context.Context, s *Session, _ string) error {
	s.Println(helpText)
	return nil
}
