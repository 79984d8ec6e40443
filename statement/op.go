package statement

import (
	"fmt"

	"github.com/syssam/sqlcrud/schema"
)

// Op identifies one of the four statement operations.
type Op int

const (
	Create Op = iota
	Update
	Delete
	GetByID
)

// Ops lists all operations in method order.
var Ops = []Op{Create, Update, Delete, GetByID}

// String returns the operation name.
func (o Op) String() string {
	switch o {
	case Create:
		return "create"
	case Update:
		return "update"
	case Delete:
		return "delete"
	case GetByID:
		return "get_by_id"
	default:
		return fmt.Sprintf("Op(%d)", int(o))
	}
}

// Method returns the Go method name of the operation.
func (o Op) Method() string {
	switch o {
	case Create:
		return "CreateSQL"
	case Update:
		return "UpdateSQL"
	case Delete:
		return "DeleteSQL"
	case GetByID:
		return "GetByIDSQL"
	default:
		return ""
	}
}

// Verb returns the SQL verb of the operation.
func (o Op) Verb() string {
	switch o {
	case Create:
		return "INSERT"
	case Update:
		return "UPDATE"
	case Delete:
		return "DELETE"
	case GetByID:
		return "SELECT"
	default:
		return ""
	}
}

// NeedsID reports if the operation requires an identifier field.
func (o Op) NeedsID() bool {
	return o == Delete || o == GetByID
}

// Template returns the template of the operation for s.
func (o Op) Template(s *schema.Schema) (Template, error) {
	switch o {
	case Create:
		return CreateTemplate(s)
	case Update:
		return UpdateTemplate(s)
	case Delete:
		return DeleteTemplate(s)
	case GetByID:
		return GetByIDTemplate(s)
	default:
		return nil, fmt.Errorf("sqlcrud: unknown statement operation %d", int(o))
	}
}

// OpsFor returns the operations available for s: all four when s has an
// identifier, Create and Update otherwise.
func OpsFor(s *schema.Schema) []Op {
	if s.HasID() {
		return Ops
	}
	return Ops[:2]
}
