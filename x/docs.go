/*
Package x contains the extensions of the vault.

Extensions implement Handlers, Decorators and Initializers that the app
package combines into the vault. This package itself holds the
authentication helpers shared by all of them: the Authenticator interface
and the caller identity established by the host.
*/
package x
