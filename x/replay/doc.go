/*
Package replay keeps the registry of consumed proof nonces.

A nonce can be consumed once. The record of a consumed nonce is kept forever
together with the claim it paid out, so that the registry can tell who
received the funds of any given nonce.
*/
package replay
