package consts

import "os"

const (
	// ModeFile is the file mode used when the fmt command rewrites files
	ModeFile = os.FileMode(0o644)

	// ConfigFile is the project configuration file looked up in the working directory
	ConfigFile = "sqlfront.yaml"

	// DefaultDialect is used when neither a flag nor the config names a dialect
	DefaultDialect = "generic"

	// DefaultRecursionLimit bounds parenthesis nesting in the parser
	DefaultRecursionLimit = 50

	// DefaultIndentSize is the number of spaces per indentation level in formatted output
	DefaultIndentSize = 2
)
