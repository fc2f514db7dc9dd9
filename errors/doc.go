/*
Package errors implements the error model shared by all bridge packages.

Reuse the root errors declared in this package whenever possible and declare
package errors only when nothing here fits. Custom root errors are declared
with Register(code, description); the code is what a host receives as the
ABCI result code, so it must be unique.

Create errors with ErrXyz.New("...") or Wrap(err, "...") at the point of
failure so that a stack trace is attached. Only the innermost wrap records
the stack.

Once you have an error, fmt verbs give more context
	%s is just the error message
	%+v is the message followed by the full stack trace
	%v appends a compressed [dir/file:line] where the error was created
*/
package errors
