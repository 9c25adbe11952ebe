package models

// Counter is the database row shape for a named sequential-id counter.
// Values only ever move forward; deleting an entity never releases its id.
type Counter struct {
	Name  string `db:"name"`
	Value int64  `db:"value"`
}
