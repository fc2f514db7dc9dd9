/*
Package app is the in-process host of the vault.

It plays the part of the execution environment: it decodes transactions,
runs them through a stack of decorators and a router, persists state in a
versioned key/value store and dispatches the records signaled by handlers
once their state change is written.

Invocations are serialized. Each one runs inside a savepoint and is written
only if its handler succeeds, so a failing or panicking invocation leaves no
trace.
*/
package app
