package normalization

import "strings"

// Колонки контактной таблицы. Первые три — идентификационные поля ФИО,
// пятая — телефон; остальные колонки конвейер не интерпретирует.
const (
	ColLastName   = 0
	ColFirstName  = 1
	ColMiddleName = 2
	ColPhone      = 5
)

// MinColumns минимальная ширина строки, при которой нормализация возможна.
const MinColumns = 6

// nameFieldCount количество полей ФИО после нормализации.
const nameFieldCount = 3

// FormatFullName собирает ФИО из произвольно разбитых по колонкам данных.
// Колонки склеиваются через пробел и разбиваются заново по пробельным
// символам, поэтому пустые колонки и нерегулярные пробелы не оставляют дыр.
// Результат всегда содержит ровно три элемента: фамилия, имя, отчество.
// Недостающие позиции заполняются пустой строкой, токены сверх третьего
// отбрасываются. Содержимое токенов не проверяется и не меняется.
func FormatFullName(parts []string) []string {
	tokens := strings.Fields(strings.Join(parts, " "))
	fullName := make([]string, nameFieldCount)
	for i := 0; i < nameFieldCount && i < len(tokens); i++ {
		fullName[i] = tokens[i]
	}
	return fullName
}
