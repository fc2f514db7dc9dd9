/*

Package bridge defines interfaces used throughout the vault, such as: storage, messages, handlers, events etc.
It also contains helpers to work with identities, context and queries.
Look into this package to get an brief overview of design decisions made around interfaces and extension
building blocks.

*/

package bridge
