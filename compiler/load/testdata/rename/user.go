package rename

//sqlcrud:derive table=users
type User struct {
	ID   int64 `sql:",id"`
	Name string
}
