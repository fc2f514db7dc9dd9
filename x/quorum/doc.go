/*
Package quorum authenticates release proofs.

A proof is a claim that an amount was burned or locked on a counterpart
chain, together with a list of validator signatures over the claim digest.
The digest is a fixed layout, length prefixed encoding of the claim hashed
with SHA-512 (see SignBytes).

Verification runs every signature through a pipeline of filters: parse,
authenticate, resolve and deduplicate. A signature rejected by a filter is
not an error. It is recorded in the Report together with the reason and
simply does not count. The quorum is reached when the number of distinct
active validators that signed is at least the required threshold.
*/
package quorum
