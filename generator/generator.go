package generator

import (
	"fmt"

	"github.com/brianvoe/gofakeit/v6"
)

// Config параметры генерации сырой телефонной книги.
type Config struct {
	Rows          int     // количество исходных записей
	DuplicateRate float64 // доля записей, получающих искаженный дубликат (0..1)
	Seed          int64   // зерно генератора, 0 — недетерминированно
}

// DefaultConfig возвращает параметры генерации по умолчанию.
func DefaultConfig() Config {
	return Config{
		Rows:          50,
		DuplicateRate: 0.3,
	}
}

var (
	lastNames = []string{
		"Иванов", "Петров", "Сидоров", "Кузнецов", "Смирнов", "Попов",
		"Васильев", "Соколов", "Михайлов", "Федоров", "Морозов", "Волков",
		"Богданов", "Усольцев", "Шорохов", "Кошкин",
	}
	firstNames = []string{
		"Иван", "Петр", "Олег", "Вадим", "Андрей", "Лев", "Семен",
		"Николай", "Алексей", "Дмитрий", "Сергей", "Михаил",
	}
	middleNames = []string{
		"Иванович", "Петрович", "Олегович", "Валентинович", "Николаевич",
		"Борисович", "Сергеевич", "Алексеевич", "Дмитриевич", "Михайлович",
	}
)

// phoneShapes варианты написания одного и того же номера в сырых данных.
var phoneShapes = []func(area, exchange, p1, p2 string) string{
	func(a, e, p1, p2 string) string { return fmt.Sprintf("8 %s %s %s %s", a, e, p1, p2) },
	func(a, e, p1, p2 string) string { return fmt.Sprintf("+7 (%s) %s-%s-%s", a, e, p1, p2) },
	func(a, e, p1, p2 string) string { return fmt.Sprintf("8(%s)%s-%s-%s", a, e, p1, p2) },
	func(a, e, p1, p2 string) string { return fmt.Sprintf("8%s%s%s%s", a, e, p1, p2) },
	func(a, e, p1, p2 string) string { return fmt.Sprintf("+7 %s %s %s %s", a, e, p1, p2) },
}

// Generate возвращает сырую контактную таблицу со случайными искажениями:
// ФИО произвольно разбито по первым трем колонкам, телефоны в разных
// написаниях, часть записей продублирована с неполными данными (без
// отчества, с другим номером или без него).
func Generate(cfg Config) [][]string {
	if cfg.Rows <= 0 {
		cfg.Rows = DefaultConfig().Rows
	}
	gofakeit.Seed(cfg.Seed)

	table := make([][]string, 0, cfg.Rows*2)
	for i := 0; i < cfg.Rows; i++ {
		last := lastNames[gofakeit.Number(0, len(lastNames)-1)]
		first := firstNames[gofakeit.Number(0, len(firstNames)-1)]
		middle := middleNames[gofakeit.Number(0, len(middleNames)-1)]
		organization := gofakeit.Company()
		position := gofakeit.JobTitle()
		email := gofakeit.Email()
		phone := randomPhone()

		table = append(table, rawRow(last, first, middle, organization, position, phone, email))

		if gofakeit.Float64Range(0, 1) < cfg.DuplicateRate {
			table = append(table, duplicateRow(last, first, middle))
		}
	}
	return table
}

// rawRow собирает строку, случайно разбивая ФИО по трем колонкам.
func rawRow(last, first, middle, organization, position, phone, email string) []string {
	var nameCols [3]string
	switch gofakeit.Number(0, 2) {
	case 0:
		nameCols = [3]string{last + " " + first + " " + middle, "", ""}
	case 1:
		nameCols = [3]string{last + " " + first, middle, ""}
	default:
		nameCols = [3]string{last, first, middle}
	}
	return []string{nameCols[0], nameCols[1], nameCols[2], organization, position, phone, email}
}

// duplicateRow порождает неполный дубликат: без отчества, иногда с другим
// номером, без организации и почты.
func duplicateRow(last, first, middle string) []string {
	phone := ""
	if gofakeit.Bool() {
		phone = randomPhone()
	}
	middleName := ""
	if gofakeit.Bool() {
		middleName = middle
	}
	return []string{last, first, middleName, "", "", phone, ""}
}

// randomPhone возвращает номер в одном из типовых сырых написаний,
// иногда с добавочным.
func randomPhone() string {
	area := gofakeit.Numerify("9##")
	exchange := gofakeit.Numerify("###")
	p1 := gofakeit.Numerify("##")
	p2 := gofakeit.Numerify("##")

	shape := phoneShapes[gofakeit.Number(0, len(phoneShapes)-1)]
	phone := shape(area, exchange, p1, p2)
	if gofakeit.Number(0, 9) == 0 {
		phone += " доб." + gofakeit.Numerify("####")
	}
	return phone
}
