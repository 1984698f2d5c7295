package normalization

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFormatPhone(t *testing.T) {
	tests := []struct {
		name  string
		phone string
		want  string
	}{
		{
			name:  "восьмерка с пробелами",
			phone: "8 916 123 45 67",
			want:  "+7(916)123-45-67",
		},
		{
			name:  "уже канонический",
			phone: "+7(916)123-45-67",
			want:  "+7(916)123-45-67",
		},
		{
			name:  "канонический с добавочным",
			phone: "+7(916)123-45-67 доб.1234",
			want:  "+7(916)123-45-67 доб.1234",
		},
		{
			name:  "слитные цифры с восьмеркой",
			phone: "89161234567",
			want:  "+7(916)123-45-67",
		},
		{
			name:  "скобки и дефисы",
			phone: "8(916)123-45-67",
			want:  "+7(916)123-45-67",
		},
		{
			name:  "плюс семь с пробелами и дефисами",
			phone: "+7 916 123-45-67",
			want:  "+7(916)123-45-67",
		},
		{
			name:  "добавочный в скобках",
			phone: "8 (495) 123 45 67 (доб. 4321)",
			want:  "+7(495)123-45-67 доб.4321",
		},
		{
			name:  "окружающий текст сохраняется",
			phone: "тел. 8 916 123 45 67 рабочий",
			want:  "тел. +7(916)123-45-67 рабочий",
		},
		{
			// Маркер добавочного чувствителен к регистру: "ДОБ." не
			// распознается и остается в хвосте без изменений.
			name:  "добавочный в верхнем регистре не распознается",
			phone: "8 916 123 45 67 ДОБ.1234",
			want:  "+7(916)123-45-67 ДОБ.1234",
		},
		{
			name:  "без цифр",
			phone: "нет телефона",
			want:  "нет телефона",
		},
		{
			name:  "слишком мало цифр",
			phone: "123-45",
			want:  "123-45",
		},
		{
			name:  "пустая строка",
			phone: "",
			want:  "",
		},
		{
			// Десять цифр без кода страны — достаточно для шаблона.
			name:  "десять цифр без префикса",
			phone: "9161234567",
			want:  "+7(916)123-45-67",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, FormatPhone(tt.phone))
		})
	}
}

func TestFormatPhoneIdempotent(t *testing.T) {
	inputs := []string{
		"8 916 123 45 67",
		"+7(916)123-45-67 доб.1234",
		"89161234567",
		"тел. 8 916 123 45 67",
		"нет телефона",
		"",
	}
	for _, phone := range inputs {
		once := FormatPhone(phone)
		assert.Equal(t, once, FormatPhone(once), "повторное форматирование изменило %q", phone)
	}
}

func TestParsePhone(t *testing.T) {
	t.Run("полный разбор с добавочным", func(t *testing.T) {
		m, ok := ParsePhone("8 (916) 123-45-67 доб.0042")
		require.True(t, ok)
		assert.True(t, m.HasCountryCode)
		assert.Equal(t, "916", m.AreaCode)
		assert.Equal(t, "123", m.Exchange)
		assert.Equal(t, "45", m.FirstPair)
		assert.Equal(t, "67", m.SecondPair)
		assert.Equal(t, "0042", m.Extension)
		assert.Equal(t, "+7(916)123-45-67 доб.0042", m.Canonical())
	})

	t.Run("без кода страны", func(t *testing.T) {
		m, ok := ParsePhone("9161234567")
		require.True(t, ok)
		assert.False(t, m.HasCountryCode)
		assert.Empty(t, m.Extension)
		assert.Equal(t, "+7(916)123-45-67", m.Canonical())
	})

	t.Run("нет совпадения", func(t *testing.T) {
		_, ok := ParsePhone("офис на Тверской")
		assert.False(t, ok)
	})
}
