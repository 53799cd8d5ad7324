package models

// ControlEvent — контрольное мероприятие (контрольная, домашняя работа и т.п.),
// привязанное к дате и названию предмета. Накладывается на расписание при выводе.
type ControlEvent struct {
	ID        int64   `db:"id"`
	Date      string  `db:"date"` // формат ГГГГ-ММ-ДД
	Subject   string  `db:"subject_name"`
	Kind      string  `db:"event_type"`
	CreatedBy *string `db:"created_by"` // username админа, может отсутствовать
}
