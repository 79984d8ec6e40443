package dialect

import (
	"fmt"
	"slices"
	"sync"

	"golang.org/x/text/cases"
)

// Dialect names.
const (
	Postgres  = "postgres"
	SQLServer = "sqlserver"
	SQLite    = "sqlite"
	Oracle    = "oracle"
	MySQL     = "mysql"
)

var (
	mu       sync.RWMutex
	prefixes = map[string]string{}
	names    = map[string]string{} // folded name to registered name
)

func init() {
	Register(Postgres, "$")
	Register(SQLServer, "@P")
	Register(SQLite, "?")
	Register(Oracle, ":")
}

// Register makes a placeholder prefix available under name. Names are
// matched case-insensitively. Registering an existing name replaces its
// prefix.
func Register(name, prefix string) {
	if name == "" {
		panic("dialect: Register with empty name")
	}
	if prefix == "" {
		panic("dialect: Register with empty prefix for " + name)
	}
	mu.Lock()
	defer mu.Unlock()
	key := foldName(name)
	if old, ok := names[key]; ok {
		delete(prefixes, old)
	}
	names[key] = name
	prefixes[name] = prefix
}

// Prefix returns the placeholder prefix registered under name.
func Prefix(name string) (string, error) {
	mu.RLock()
	defer mu.RUnlock()
	if n, ok := names[foldName(name)]; ok {
		return prefixes[n], nil
	}
	if foldName(name) == foldName(MySQL) {
		return "", fmt.Errorf("dialect: %s has no numbered placeholders", MySQL)
	}
	return "", fmt.Errorf("dialect: unknown dialect %q", name)
}

// Names returns the registered dialect names, sorted.
func Names() []string {
	mu.RLock()
	defer mu.RUnlock()
	list := make([]string, 0, len(prefixes))
	for n := range prefixes {
		list = append(list, n)
	}
	slices.Sort(list)
	return list
}

// foldName returns the case-folded form of a dialect name. A Caser is
// stateful, so one is created per call.
func foldName(name string) string {
	return cases.Fold().String(name)
}
