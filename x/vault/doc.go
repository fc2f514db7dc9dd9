/*
Package vault escrows the native asset for the bridge.

Lock moves the value attached to the transaction into the vault account and
assigns it the next lock nonce. The relayer observes the AssetLocked record
and mints on the counterpart chain.

Release pays out escrowed funds when presented with a proof that the
counterpart chain burned or locked the same amount. A release is accepted
once per proof nonce and only if enough distinct active validators signed
the claim (see package quorum). Checks run before anything is written:

	paused, nonce processed, signature count, quorum, escrow balance

Then the nonce is consumed, the escrow is debited and the amount is moved to
the recipient. The host commits all of it or nothing.
*/
package vault
