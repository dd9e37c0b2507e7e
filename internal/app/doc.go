// Package app wires the store for the CLI.
//
// It loads Config from a YAML file and the environment, then builds the
// codec, cipher, filesystem and logger a Store needs via Open.
package app
