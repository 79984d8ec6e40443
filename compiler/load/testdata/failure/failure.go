package failure

// Names is not a struct.
//
//sqlcrud:derive
type Names []string
