package schema

import (
	"fmt"
	"regexp"
	"unicode/utf8"

	"github.com/syssam/sqlcrud"
)

// validColumnRe matches plain SQL identifiers. Letters and digits are not
// restricted to ASCII, so every exported Go field name has a valid column.
var validColumnRe = regexp.MustCompile(`^[\p{L}_][\p{L}\p{N}_]*$`)

// ValidColumn reports if name can be written unquoted as a column name.
func ValidColumn(name string) bool {
	return utf8.RuneCountInString(name) <= 128 && validColumnRe.MatchString(name)
}

// Validate checks that the schema has at least one field, at most one
// identifier, and unique, well-formed column names.
func (s *Schema) Validate() error {
	if len(s.Fields) == 0 {
		return fmt.Errorf("%w: %s", sqlcrud.ErrNoFields, s.Label())
	}
	seen := make(map[string]bool, len(s.Fields))
	for _, f := range s.Fields {
		if f == nil {
			return fmt.Errorf("sqlcrud: %s has a nil field", s.Label())
		}
		if !ValidColumn(f.Name) {
			return sqlcrud.NewFieldError(s.Label(), f.Name, sqlcrud.ErrInvalidColumn)
		}
		if seen[f.Name] {
			return sqlcrud.NewFieldError(s.Label(), f.Name, sqlcrud.ErrDuplicateField)
		}
		seen[f.Name] = true
	}
	if ids := s.IDs(); len(ids) > 1 {
		return sqlcrud.NewIDError(s.Label(), len(ids))
	}
	return nil
}
