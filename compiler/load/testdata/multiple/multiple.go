package multiple

// Pair marks two identifiers.
//
//sqlcrud:derive
type Pair struct {
	A int `sql:",id"`
	B int `sql:",id"`
}
