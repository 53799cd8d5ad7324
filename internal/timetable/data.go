package timetable

// Статическая сетка на семестр. Две параллельные недели: числитель и знаменатель.
// Данные создаются один раз при старте процесса и дальше не изменяются.

// Numerator возвращает расписание недели-числителя.
func Numerator() Variant {
	return Variant{
		"понедельник": {DayName: "понедельник", Lessons: []Lesson{
			{Name: "практика иу5", Room: "903", Start: "10:10", End: "11:40", Kind: "семинар"},
			{Name: "практика иу5", Room: "903", Start: "11:50", End: "13:55", Kind: "семинар"},
			{Name: "основы программирования", Room: "301х", Start: "14:05", End: "15:35", Kind: "лекция"},
			{Name: "основы программирования", Room: "301х", Start: "14:05", End: "15:35", Kind: "лекция"},
		}},
		"вторник": {DayName: "вторник", Lessons: []Lesson{
			{Name: "математический анализ", Room: "301х", Start: "10:10", End: "11:40", Kind: "лекция"},
			{Name: "основы программирования", Room: "524к", Start: "12:25", End: "13:55", Kind: "лабораторная работа"},
			{Name: "история России", Room: "618к", Start: "14:05", End: "15:35", Kind: "семинар"},
			{Name: "информатика", Room: "639к", Start: "15:55", End: "17:25", Kind: "семинар"},
		}},
		"среда": {DayName: "среда", Lessons: []Lesson{
			{Name: "начертательная геометрия", Room: "1113л, 1111л", Start: "8:30", End: "10:00", Kind: "семинар"},
			{Name: "начертательная геометрия", Room: "216л", Start: "10:10", End: "11:40", Kind: "лекция"},
			{Name: "социология", Room: "216л", Start: "11:50", End: "13:55", Kind: "лекция"},
			{Name: "физическая культура", Room: "СК", Start: "14:30", End: "16:00", Kind: "семинар"},
		}},
		"четверг": {DayName: "четверг", Lessons: []Lesson{
			{Name: "иностранный язык", Room: "211х, 305х", Start: "10:10", End: "11:40", Kind: "семинар"},
			{Name: "аналитическая геометрия", Room: "114х", Start: "11:50", End: "13:55", Kind: "семинар"},
			{Name: "аналитическая геометрия", Room: "301х", Start: "14:05", End: "15:35", Kind: "лекция"},
		}},
		"пятница": {DayName: "пятница", Lessons: []Lesson{
			{Name: "физкультура", Room: "СК", Start: "13:55", End: "15:30", Kind: "семинар"},
			{Name: "информатика", Room: "601к", Start: "15:55", End: "17:25", Kind: "лабораторная работа"},
			{Name: "основы программирования", Room: "540к", Start: "17:35", End: "19:05", Kind: "семинар"},
		}},
		"суббота": {DayName: "суббота", Lessons: []Lesson{
			{Name: "математический анализ", Room: "536к", Start: "8:30", End: "10:00", Kind: "семинар"},
			{Name: "социология", Room: "537к", Start: "10:10", End: "11:40", Kind: "семинар"},
			{Name: "математический анализ", Room: "532к", Start: "12:25", End: "13:55", Kind: "семинар"},
		}},
	}
}

// Denominator возвращает расписание недели-знаменателя.
func Denominator() Variant {
	return Variant{
		"понедельник": {DayName: "понедельник", Lessons: []Lesson{
			{Name: "основы программирования", Room: "301х", Start: "14:05", End: "15:35", Kind: "лекция"},
			{Name: "информатика", Room: "301х", Start: "14:05", End: "15:35", Kind: "лекция"},
		}},
		"вторник": {DayName: "вторник", Lessons: []Lesson{
			{Name: "математический анализ", Room: "301х", Start: "10:10", End: "11:40", Kind: "лекция"},
			{Name: "основы программирования", Room: "524к", Start: "12:25", End: "13:55", Kind: "лабораторная работа"},
			{Name: "история России", Room: "618к", Start: "14:05", End: "15:35", Kind: "семинар"},
		}},
		"среда": {DayName: "среда", Lessons: []Lesson{
			{Name: "начертательная геометрия", Room: "1113л, 1111л", Start: "8:30", End: "10:00", Kind: "семинар"},
			{Name: "начертательная геометрия", Room: "216л", Start: "10:10", End: "11:40", Kind: "лекция"},
			{Name: "история России", Room: "216л", Start: "11:50", End: "13:55", Kind: "лекция"},
			{Name: "физическая культура", Room: "СК", Start: "14:30", End: "16:00", Kind: "семинар"},
		}},
		"четверг": {DayName: "четверг", Lessons: []Lesson{
			{Name: "иностранный язык", Room: "211х, 305х", Start: "10:10", End: "11:40", Kind: "семинар"},
			{Name: "аналитическая геометрия", Room: "114х", Start: "11:50", End: "13:55", Kind: "семинар"},
			{Name: "аналитическая геометрия", Room: "301х", Start: "14:05", End: "15:35", Kind: "лекция"},
		}},
		"пятница": {DayName: "пятница", Lessons: []Lesson{
			{Name: "физкультура", Room: "СК", Start: "13:55", End: "15:30", Kind: "семинар"},
			{Name: "информатика", Room: "601к", Start: "15:55", End: "17:25", Kind: "лабораторная работа"},
			{Name: "основы программирования", Room: "540к", Start: "17:35", End: "19:05", Kind: "семинар"},
		}},
		"суббота": {DayName: "суббота", Lessons: []Lesson{
			{Name: "математический анализ", Room: "536к", Start: "8:30", End: "10:00", Kind: "семинар"},
			{Name: "социология", Room: "537к", Start: "10:10", End: "11:40", Kind: "семинар"},
			{Name: "математический анализ", Room: "532к", Start: "12:25", End: "13:55", Kind: "консультация"},
		}},
	}
}
