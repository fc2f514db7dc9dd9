/*
Package utils contains the decorators and observers shared by every
entry point: savepoints, panic recovery, logging and metrics.
*/
package utils
