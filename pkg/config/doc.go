/*
Package config loads rule set files so rewrite rules can ship without a
rebuild.

	            +---------------+
	            | RuleSetConfig |
	            +-------+-------+
	                    |
	      +-------------+-------------+
	      |             |             |
	+-----+----+  +-----+----+  +-----+----+
	|   YAML   |  |   HCL    |  |   JSON   |
	|  Parser  |  |  Parser  |  |  Parser  |
	+----------+  +----------+  +----------+

🎯 Purpose:
- Picks a parser from the file extension
- Rejects unknown fields instead of silently ignoring them
- Checks rule ids and fills in the entry file default
- Hands rules to text.CompileAll as RuleSpec values

🔄 Flow:
1. Load finds a registered Parser for the file name
2. The parser decodes the raw bytes
3. Validate checks ids and defaults
4. Specs converts rules for compilation

Regex and selector errors, and rules without a guard, are not config errors.
They surface per rule from the compiler so the remaining rules of a file
still run.
*/
package config
