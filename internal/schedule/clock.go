package schedule

import (
	"fmt"
	"strconv"
	"strings"
)

// MinuteOfDay разбирает время вида "ЧЧ:ММ" в минуты от полуночи.
// Ведущий ноль в часах не обязателен: "8:30" и "08:30" равнозначны.
func MinuteOfDay(clock string) (int, error) {
	parts := strings.SplitN(clock, ":", 2)
	if len(parts) != 2 {
		return 0, fmt.Errorf("некорректное время %q", clock)
	}
	h, err := strconv.Atoi(parts[0])
	if err != nil {
		return 0, fmt.Errorf("некорректное время %q: %w", clock, err)
	}
	m, err := strconv.Atoi(parts[1])
	if err != nil {
		return 0, fmt.Errorf("некорректное время %q: %w", clock, err)
	}
	if h < 0 || h > 23 || m < 0 || m > 59 {
		return 0, fmt.Errorf("время %q вне диапазона", clock)
	}
	return h*60 + m, nil
}
