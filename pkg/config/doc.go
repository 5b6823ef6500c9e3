/*
Package config loads replacement rule sets from disk.

A rule set is an ordered list of literal replacements. The parser is
picked by file extension:

	.hcl         HCL, one replace block per rule
	.yaml, .yml  YAML, a top level rules list
	.json        JSON, a top level rules array

Unknown fields are rejected in every format.

🔍 Example:

	replace {
	  from  = "Release|${platform.win32}"
	  to    = "Release|${platform.x64}"
	  files = "*.vcxproj"
	}
*/
package config
