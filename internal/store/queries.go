package store

const (
	guestsTable = "guests"

	queryServerVersion = `SELECT version()`
)

var guestColumns = []string{
	"CAST(id AS VARCHAR) AS id",
	"name",
	"hash",
}
