package schema

import (
	"fmt"
	"reflect"
	"sync"

	"github.com/syssam/sqlcrud"
)

// cache holds the schemas resolved by FromType.
var cache sync.Map // map[cacheKey]*Schema

type cacheKey struct {
	typ reflect.Type
	tag string
}

type options struct {
	tag string
}

// Option configures struct reflection.
type Option func(*options)

// WithTag sets the struct tag key to read instead of DefaultTag.
func WithTag(key string) Option {
	return func(o *options) {
		if key != "" {
			o.tag = key
		}
	}
}

// Of returns the schema of the dynamic type of v. v may be a struct value or
// a pointer to one.
func Of(v any, opts ...Option) (*Schema, error) {
	if v == nil {
		return nil, fmt.Errorf("%w: <nil>", sqlcrud.ErrNotStruct)
	}
	return FromType(reflect.TypeOf(v), opts...)
}

// FromType returns the schema of the struct type t. Results are cached per
// type and tag key; the returned schema is a copy owned by the caller.
func FromType(t reflect.Type, opts ...Option) (*Schema, error) {
	o := options{tag: DefaultTag}
	for _, opt := range opts {
		opt(&o)
	}
	for t.Kind() == reflect.Pointer {
		t = t.Elem()
	}
	key := cacheKey{typ: t, tag: o.tag}
	if s, ok := cache.Load(key); ok {
		return s.(*Schema).Clone(), nil
	}
	if t.Kind() != reflect.Struct {
		return nil, fmt.Errorf("%w: %s", sqlcrud.ErrNotStruct, t)
	}
	s := &Schema{Name: t.Name()}
	if err := s.addFields(t, o.tag); err != nil {
		return nil, err
	}
	if err := s.Validate(); err != nil {
		return nil, err
	}
	actual, _ := cache.LoadOrStore(key, s)
	return actual.(*Schema).Clone(), nil
}

// addFields appends the columns of t in declaration order.
func (s *Schema) addFields(t reflect.Type, key string) error {
	for i := range t.NumField() {
		sf := t.Field(i)
		if sf.Anonymous && Flatten(sf.Tag, key) {
			switch ft := sf.Type; ft.Kind() {
			case reflect.Pointer:
				return sqlcrud.NewFieldError(s.Label(), sf.Name, fmt.Errorf("%w: pointer embedding of %s", sqlcrud.ErrNotStruct, ft))
			case reflect.Struct:
				if err := s.addFields(ft, key); err != nil {
					return err
				}
				continue
			}
		}
		if !sf.IsExported() {
			continue
		}
		tag := FieldTag(sf.Name, sf.Tag, key)
		if tag.Skip {
			continue
		}
		s.Fields = append(s.Fields, &Field{
			Name:   tag.Column,
			GoName: sf.Name,
			Type:   sf.Type.String(),
			ID:     tag.ID,
		})
	}
	return nil
}
