/*
Package orm provides an easy to use db wrapper

Break state space into prefixed sections called Buckets.
* Each bucket contains only one type of model.
* Models are protobuf encoded and validated before every write.
* Easy queries for one and iteration over all.

Singleton values live in Vars, a set of named entries sharing a prefix, and
monotonic counters are kept by a Sequence.
*/
package orm
