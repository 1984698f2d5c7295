package normalization

import (
	"fmt"
	"regexp"
)

// phonePattern распознает российские номера в разных написаниях:
// необязательный префикс +7 или 8, группы цифр 3-3-2-2 с произвольными
// разделителями (пробелы, дефисы, скобки) и необязательный добавочный
// номер вида "доб.XXXX". Маркер добавочного — строго строчными буквами
// и с точкой.
var phonePattern = regexp.MustCompile(
	`(\+7|8)?[\s-]*[( ]?(\d{3})[ \-)]?[\s-]*(\d{3})[\s-]*(\d{2})[\s-]*(\d{2})(\s*\(?доб\.\s*(\d{4})\)?)?`,
)

// Индексы групп phonePattern.
const (
	phoneGroupCountryCode = 1
	phoneGroupAreaCode    = 2
	phoneGroupExchange    = 3
	phoneGroupFirstPair   = 4
	phoneGroupSecondPair  = 5
	phoneGroupExtension   = 7
)

// PhoneMatch структурированный результат распознавания номера в строке.
// Группы цифр хранятся как есть, без числовой валидации.
type PhoneMatch struct {
	HasCountryCode bool   // присутствовал ли во входе префикс +7 или 8
	AreaCode       string // три цифры кода
	Exchange       string // первые три цифры номера
	FirstPair      string // следующие две цифры
	SecondPair     string // последние две цифры
	Extension      string // четыре цифры добавочного, пустая строка при отсутствии

	start, end int // границы совпадения в исходной строке
}

// ParsePhone ищет первое вхождение телефонного шаблона в строке.
// Возвращает false, если шаблон не найден: строка без номера или с
// недостаточным количеством цифр не считается ошибкой.
func ParsePhone(s string) (PhoneMatch, bool) {
	idx := phonePattern.FindStringSubmatchIndex(s)
	if idx == nil {
		return PhoneMatch{}, false
	}
	group := func(n int) string {
		if idx[2*n] < 0 {
			return ""
		}
		return s[idx[2*n]:idx[2*n+1]]
	}
	return PhoneMatch{
		HasCountryCode: group(phoneGroupCountryCode) != "",
		AreaCode:       group(phoneGroupAreaCode),
		Exchange:       group(phoneGroupExchange),
		FirstPair:      group(phoneGroupFirstPair),
		SecondPair:     group(phoneGroupSecondPair),
		Extension:      group(phoneGroupExtension),
		start:          idx[0],
		end:            idx[1],
	}, true
}

// Canonical возвращает номер в каноническом виде +7(XXX)XXX-XX-XX,
// при наличии добавочного — с суффиксом " доб.XXXX". Код страны в выводе
// всегда +7, независимо от того, был ли во входе префикс 8.
func (m PhoneMatch) Canonical() string {
	canonical := fmt.Sprintf("+7(%s)%s-%s-%s", m.AreaCode, m.Exchange, m.FirstPair, m.SecondPair)
	if m.Extension != "" {
		canonical += " доб." + m.Extension
	}
	return canonical
}

// FormatPhone переписывает первое найденное вхождение номера в канонический
// вид, сохраняя окружающий текст без изменений. Строка без совпадения
// возвращается как есть. Повторное применение результата не меняет.
func FormatPhone(s string) string {
	m, ok := ParsePhone(s)
	if !ok {
		return s
	}
	return s[:m.start] + m.Canonical() + s[m.end:]
}
