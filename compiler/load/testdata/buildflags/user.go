package buildflags

// User is always built.
//
//sqlcrud:derive
type User struct {
	ID   int `sql:",id"`
	Name string
}
