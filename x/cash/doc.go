/*
Package cash keeps balances of the native asset for the in-process host.

It is the host side of the asset transfer: the vault debits escrow through
the Controller, and the AttachedValueDecorator moves the value attached to
an invocation from the caller into a designated account before the handler
runs.
*/
package cash
