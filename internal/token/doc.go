// Package token defines the token taxonomy produced by the CMake lexer.
//
// CMake's surface grammar is small: a script is a sequence of command
// invocations `name(args...)` where arguments are quoted strings, bracket
// arguments, or unquoted runs. Comments and whitespace are preserved as
// trivia so the pragma resolver can inspect them without re-lexing.
package token
