package dialect

// Names of the built-in dialects.
const (
	ANSIName       = "ansi"
	GenericName    = "generic"
	MsSQLName      = "mssql"
	MySQLName      = "mysql"
	PostgreSQLName = "postgresql"
	SnowflakeName  = "snowflake"
	SQLiteName     = "sqlite"
)

var (
	_ Dialect = ANSI{}
	_ Dialect = Generic{}
	_ Dialect = MsSQL{}
	_ Dialect = MySQL{}
	_ Dialect = PostgreSQL{}
	_ Dialect = Snowflake{}
	_ Dialect = SQLite{}
)

type (
	// ANSI is the strict ANSI SQL dialect.
	ANSI struct{}

	// Generic accepts the union of the common identifier conventions and is
	// the default when no dialect is configured.
	Generic struct{}

	// MsSQL is Microsoft SQL Server (T-SQL).
	MsSQL struct{}

	// MySQL is MySQL and MariaDB.
	MySQL struct{}

	// PostgreSQL is PostgreSQL.
	PostgreSQL struct{}

	// Snowflake is the Snowflake data warehouse dialect.
	Snowflake struct{}

	// SQLite is SQLite.
	SQLite struct{}
)

func (ANSI) IsIdentifierStart(ch rune) bool { return isASCIILetter(ch) }

func (ANSI) IsIdentifierPart(ch rune) bool {
	return isASCIILetter(ch) || isASCIIDigit(ch) || ch == '_'
}

func (ANSI) IsDelimitedIdentifierStart(ch rune) bool { return isDoubleQuote(ch) }
func (ANSI) Name() string                             { return ANSIName }
func (d ANSI) IsDialect(names ...string) bool         { return isOneOf(d.Name(), names) }

func (Generic) IsIdentifierStart(ch rune) bool {
	return isASCIILetter(ch) || ch == '_' || ch == '#' || ch == '@'
}

func (Generic) IsIdentifierPart(ch rune) bool {
	return isASCIILetter(ch) || isASCIIDigit(ch) || ch == '@' || ch == '$' || ch == '#' || ch == '_'
}

func (Generic) IsDelimitedIdentifierStart(ch rune) bool { return isDoubleQuote(ch) }
func (Generic) Name() string                             { return GenericName }
func (d Generic) IsDialect(names ...string) bool         { return isOneOf(d.Name(), names) }

// IsIdentifierStart admits `@` for variables and `#` for temporary tables.
func (MsSQL) IsIdentifierStart(ch rune) bool {
	return isASCIILetter(ch) || ch == '_' || ch == '#' || ch == '@'
}

func (MsSQL) IsIdentifierPart(ch rune) bool {
	return isASCIILetter(ch) || isASCIIDigit(ch) || ch == '@' || ch == '$' || ch == '#' || ch == '_'
}

func (MsSQL) IsDelimitedIdentifierStart(ch rune) bool { return ch == '"' || ch == '[' }
func (MsSQL) Name() string                             { return MsSQLName }
func (d MsSQL) IsDialect(names ...string) bool         { return isOneOf(d.Name(), names) }

// IsIdentifierStart follows MySQL's unquoted identifier rules, which permit
// any character in the BMP above U+007F.
func (MySQL) IsIdentifierStart(ch rune) bool {
	return isASCIILetter(ch) || ch == '_' || ch == '$' || ('\u0080' <= ch && ch <= '\uffff')
}

func (d MySQL) IsIdentifierPart(ch rune) bool {
	return d.IsIdentifierStart(ch) || isASCIIDigit(ch)
}

func (MySQL) IsDelimitedIdentifierStart(ch rune) bool { return ch == '`' }
func (MySQL) Name() string                             { return MySQLName }
func (d MySQL) IsDialect(names ...string) bool         { return isOneOf(d.Name(), names) }

func (PostgreSQL) IsIdentifierStart(ch rune) bool { return isASCIILetter(ch) || ch == '_' }

func (PostgreSQL) IsIdentifierPart(ch rune) bool {
	return isASCIILetter(ch) || isASCIIDigit(ch) || ch == '$' || ch == '_'
}

func (PostgreSQL) IsDelimitedIdentifierStart(ch rune) bool { return isDoubleQuote(ch) }
func (PostgreSQL) Name() string                             { return PostgreSQLName }
func (d PostgreSQL) IsDialect(names ...string) bool         { return isOneOf(d.Name(), names) }

func (Snowflake) IsIdentifierStart(ch rune) bool { return isASCIILetter(ch) || ch == '_' }

func (Snowflake) IsIdentifierPart(ch rune) bool {
	return isASCIILetter(ch) || isASCIIDigit(ch) || ch == '$' || ch == '_'
}

func (Snowflake) IsDelimitedIdentifierStart(ch rune) bool { return isDoubleQuote(ch) }
func (Snowflake) Name() string                             { return SnowflakeName }
func (d Snowflake) IsDialect(names ...string) bool         { return isOneOf(d.Name(), names) }

func (SQLite) IsIdentifierStart(ch rune) bool {
	return isASCIILetter(ch) || ch == '_' || ch == '$' || ('\u007f' <= ch && ch <= '\uffff')
}

func (d SQLite) IsIdentifierPart(ch rune) bool {
	return d.IsIdentifierStart(ch) || isASCIIDigit(ch)
}

// IsDelimitedIdentifierStart accepts all three quoting styles; SQLite keeps
// the MySQL and MS SQL forms for compatibility.
func (SQLite) IsDelimitedIdentifierStart(ch rune) bool {
	return ch == '`' || ch == '"' || ch == '['
}

func (SQLite) Name() string                     { return SQLiteName }
func (d SQLite) IsDialect(names ...string) bool { return isOneOf(d.Name(), names) }
