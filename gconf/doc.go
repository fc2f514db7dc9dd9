/*
Package gconf implements a configuration store intended to be used as a
per package, in-database configuration.

Each package keeps a single configuration object, stored under the "_c:<pkg>"
key. Configuration is validated before it is written, so handlers can rely on
a loaded configuration being correct. It is usually created from the genesis
file with InitConfig.
*/
package gconf
