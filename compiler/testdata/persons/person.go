package persons

//sqlcrud:derive table=persons
type Person struct {
	ID   int32 `sql:",id"`
	Name string
}

//sqlcrud:derive
type Note struct {
	Body string
}
