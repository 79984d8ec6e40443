package stale

// Account lost its identifier after the last generation run.
//
//sqlcrud:derive
type Account struct {
	Email string
}
