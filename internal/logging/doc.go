// Package logging maps the user-facing verbosity setting onto a zerolog
// logger. Diagnostics (search attempts, command lines, exit codes) are logged
// at debug level so they only appear at verbose and above.
package logging
