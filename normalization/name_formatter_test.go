package normalization

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFormatFullName(t *testing.T) {
	tests := []struct {
		name  string
		parts []string
		want  []string
	}{
		{
			name:  "все поля в одной колонке",
			parts: []string{"Усольцев Олег Валентинович", "", ""},
			want:  []string{"Усольцев", "Олег", "Валентинович"},
		},
		{
			name:  "поля разбиты по колонкам",
			parts: []string{"Богданов", "Вадим", "Николаевич"},
			want:  []string{"Богданов", "Вадим", "Николаевич"},
		},
		{
			name:  "фамилия и имя в первой колонке",
			parts: []string{"Шорохов Андрей", "", ""},
			want:  []string{"Шорохов", "Андрей", ""},
		},
		{
			// Пустая внутренняя колонка не оставляет дыры: токены
			// перетекают влево после склейки и повторного разбиения.
			name:  "пустая колонка между фамилией и отчеством",
			parts: []string{"Ivanov", "", "Petrovich"},
			want:  []string{"Ivanov", "Petrovich", ""},
		},
		{
			name:  "нерегулярные пробелы",
			parts: []string{"  Кошкин   Лев ", " Борисович  ", ""},
			want:  []string{"Кошкин", "Лев", "Борисович"},
		},
		{
			name:  "пустой вход",
			parts: []string{"", "", ""},
			want:  []string{"", "", ""},
		},
		{
			name:  "нет колонок вообще",
			parts: nil,
			want:  []string{"", "", ""},
		},
		{
			// Токены сверх третьего молча отбрасываются.
			name:  "лишние токены",
			parts: []string{"Петров Петр Петрович мл.", "", ""},
			want:  []string{"Петров", "Петр", "Петрович"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := FormatFullName(tt.parts)
			assert.Len(t, got, 3)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestFormatFullNameAlwaysThreeFields(t *testing.T) {
	inputs := [][]string{
		nil,
		{},
		{""},
		{"A"},
		{"A B C D E F"},
		{"", "", "", "", ""},
	}
	for _, parts := range inputs {
		assert.Len(t, FormatFullName(parts), 3)
	}
}
