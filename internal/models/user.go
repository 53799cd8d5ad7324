package models

// User — известный получатель рассылок. Обновляется при каждом обращении к боту
// (INSERT OR REPLACE по telegram id).
type User struct {
	ID        int64   `db:"user_id"` // telegram id
	Username  *string `db:"username"`
	FirstName string  `db:"first_name"`
	LastName  *string `db:"last_name"`
}
