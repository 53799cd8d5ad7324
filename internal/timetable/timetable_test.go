package timetable

import "testing"

func TestVariants_CoverSixWorkingDays(t *testing.T) {
	for name, variant := range map[string]Variant{
		"числитель":   Numerator(),
		"знаменатель": Denominator(),
	} {
		if len(variant) != 6 {
			t.Errorf("%s: ожидалось 6 учебных дней, получено %d", name, len(variant))
		}
		if _, ok := variant["воскресенье"]; ok {
			t.Errorf("%s: на воскресенье занятий быть не должно", name)
		}
		for _, dayName := range Weekdays[:6] {
			day, ok := variant[dayName]
			if !ok {
				t.Errorf("%s: нет дня %q", name, dayName)
				continue
			}
			if day.DayName != dayName {
				t.Errorf("%s: имя дня %q не совпадает с ключом %q", name, day.DayName, dayName)
			}
			if len(day.Lessons) == 0 {
				t.Errorf("%s: день %q без занятий", name, dayName)
			}
			for _, lesson := range day.Lessons {
				if lesson.Name == "" || lesson.Start == "" || lesson.End == "" {
					t.Errorf("%s: неполное занятие в %q: %+v", name, dayName, lesson)
				}
			}
		}
	}
}

func TestWeekdayTitles_CoverAllDays(t *testing.T) {
	for _, day := range Weekdays {
		if _, ok := WeekdayTitles[day]; !ok {
			t.Errorf("нет заголовка для дня %q", day)
		}
	}
}
