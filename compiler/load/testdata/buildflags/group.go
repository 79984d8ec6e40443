//go:build custom

package buildflags

// Group is only built with the custom tag.
//
//sqlcrud:derive
type Group struct {
	ID int `sql:",id"`
}
