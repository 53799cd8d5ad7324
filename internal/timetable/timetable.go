package timetable

// Lesson — одно занятие в сетке расписания. Значения времени хранятся строками
// "ЧЧ:ММ" (без секунд), аудитория может содержать несколько помещений через запятую.
type Lesson struct {
	Name  string
	Room  string
	Start string
	End   string
	Kind  string // лекция / семинар / лабораторная работа / консультация
}

// DaySchedule — занятия одного дня в хронологическом порядке.
// Порядок задаётся при объявлении данных и не пересортировывается.
type DaySchedule struct {
	DayName string
	Lessons []Lesson
}

// Variant — один из двух вариантов двухнедельной сетки: числитель или знаменатель.
// Ключ — русское название дня недели в нижнем регистре.
type Variant map[string]DaySchedule

// Weekdays — названия дней недели в порядке Пн..Вс (индекс 0 = понедельник).
// Воскресенье присутствует для полноты, занятий на него не задаётся.
var Weekdays = [7]string{
	"понедельник",
	"вторник",
	"среда",
	"четверг",
	"пятница",
	"суббота",
	"воскресенье",
}

// WeekdayTitles — заголовки дней для вывода пользователю.
var WeekdayTitles = map[string]string{
	"понедельник": "📅 Понедельник",
	"вторник":     "📅 Вторник",
	"среда":       "📅 Среда",
	"четверг":     "📅 Четверг",
	"пятница":     "📅 Пятница",
	"суббота":     "📅 Суббота",
	"воскресенье": "📅 Воскресенье",
}
