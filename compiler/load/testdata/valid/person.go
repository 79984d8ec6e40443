package valid

import "time"

// Base holds columns shared by all records.
type Base struct {
	ID        int64 `sql:",id"`
	CreatedAt time.Time
}

// Person is a record with an identifier.
//
//sqlcrud:derive table=persons
type Person struct {
	ID   int32 `sql:",id"`
	Name string
}

type (
	// Article embeds Base.
	//
	//sqlcrud:derive
	Article struct {
		Base
		Title   string  `sql:"headline"`
		Body    *string `db:"content"`
		Draft   bool    `sql:"-"`
		version int
	}

	// Event has no identifier.
	//
	//sqlcrud:derive
	Event struct {
		Kind    string
		Payload []byte
	}

	// Ignored is not annotated.
	Ignored struct {
		Name string
	}
)

// Notes carries a similar but different directive.
//
//sqlcrud:derived
type Notes struct {
	Text string
}
