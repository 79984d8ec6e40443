// Package gen generates SQL statement methods for Go record types.
//
// # Architecture
//
// The code generation pipeline follows this flow:
//
//	//sqlcrud:derive struct (or schema descriptor)
//	        ↓
//	   schema.Schema
//	        ↓
//	   Graph of Types (validated, statement templates built)
//	        ↓
//	   MinimalDialect (compiler/gen/sql)
//	        ↓
//	   {type}_sqlcrud.go + sqlcrud_assert.go
//
// # Key Types
//
//   - Graph: Holds all Type definitions with validation
//   - Type: A record type with its fields and statement templates
//   - Config: Global configuration for code generation
//   - JenniferGenerator: Writes the files in parallel
//
// # Interface Hierarchy
//
//	MinimalDialect
//	├── Name() string
//	├── EntityGenerator
//	│   └── GenStatements
//	└── GraphGenerator
//	    └── GenAssert
//
// # Error Handling
//
// The package uses structured error types:
//
//   - SchemaError: Schema definition errors
//   - ConfigError: Configuration errors
//   - GenerationError: Code generation errors
//   - ValidationError: Name collisions in the generated code
//
// Example error handling:
//
//	if err := graph.Gen(); err != nil {
//		switch {
//		case errors.Is(err, sqlcrud.ErrMissingID):
//			// a type needs an identifier field
//		case gen.IsGenerationError(err):
//			// a file could not be written
//		}
//	}
package gen
