/*
Package access implements the administration of the vault.

There are two roles. The owner is set once when the vault is initialized and
is the only identity allowed to run the admin operations: add and remove
validators, change the signature threshold, pause and unpause. Validators
are the identities whose signatures count towards a release quorum.

Removing a validator clears its active flag. The record is kept so that the
history of the set can be queried.

While the vault is paused, value moving operations fail with ErrPaused.
*/
package access
