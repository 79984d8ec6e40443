package generic

//sqlcrud:derive
type Page[T any] struct {
	Items []T
	Total int
}
