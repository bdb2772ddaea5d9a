package dialect

import (
	"sort"
	"strings"

	"github.com/pkg/errors"
)

var builtins = map[string]Dialect{
	ANSIName:       ANSI{},
	GenericName:    Generic{},
	MsSQLName:      MsSQL{},
	MySQLName:      MySQL{},
	PostgreSQLName: PostgreSQL{},
	SnowflakeName:  Snowflake{},
	SQLiteName:     SQLite{},
}

var aliases = map[string]string{
	"postgres":    PostgreSQLName,
	"mssqlserver": MsSQLName,
	"tsql":        MsSQLName,
	"mariadb":     MySQLName,
}

// Lookup returns the built-in dialect registered under name. Matching is case
// insensitive and accepts a few common aliases (postgres, tsql, mariadb).
//
// Example:
//
//	d, err := dialect.Lookup("Snowflake")
//	if err != nil {
//		log.Fatal(err)
//	}
//	fmt.Println(d.Name()) // snowflake
func Lookup(name string) (Dialect, error) {
	key := strings.ToLower(strings.TrimSpace(name))
	if canonical, ok := aliases[key]; ok {
		key = canonical
	}

	d, ok := builtins[key]
	if !ok {
		return nil, errors.Errorf("unknown dialect %q (available: %s)", name, strings.Join(Names(), ", "))
	}

	return d, nil
}

// Names returns the names of all built-in dialects in sorted order.
func Names() []string {
	names := make([]string, 0, len(builtins))
	for name := range builtins {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
