/*
Package config manages configuration parsing and validation for fixbrackets.

	            +-------------+
	            |   Config    |
	            | (Settings)  |
	            +------+------+
	                   |
	    +--------+-----+-----+--------+
	    |        |           |        |
	+---+--+ +---+--+   +----+-+ +----+-+
	| YAML | | TOML |   | HCL  | | JSON |
	+------+ +------+   +------+ +------+

🎯 Purpose:
- Loads the optional config file (extra replacements, ignore globs, backup)
- Validates configuration values
- Discovers config files in the working directory and XDG config home

🔄 Flow:
1. Discover (or Load, when --config is given) finds the file
2. The parser registry picks a format by file extension
3. Validate rejects empty replacements and bad ignore patterns
4. The CLI hands the validated config to the operation

📝 Design Philosophy:
The tool must behave identically with and without a config file on disk,
so every field is optional and a missing file is not an error. Parsers are
strict: unknown fields fail the load rather than being silently dropped.

🔍 Example:

	cfg, err := config.Discover(ctx, ".")
	if err != nil {
		return err
	}
	if cfg == nil {
		// No config anywhere: built-in rules only
	}
*/
package config
