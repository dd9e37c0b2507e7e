// Package commands defines the cactus CLI.
//
// Commands
//
//   - set      Store a value under a key
//   - get      Print the value stored under a key
//   - exists   Report whether a key is present
//   - keys     List keys in sorted order
//   - count    Print the number of entries
//   - delete   Remove a key
//   - query    Filter a stored list of objects by field
//   - clear    Remove every entry (the emptied store is saved)
//   - destroy  Delete the store file from disk
//
// # Implementation
//
// The root command resolves configuration (YAML file, CACTUS_* environment,
// then flags) and builds the logger before any subcommand runs. Each
// subcommand opens the store, works in memory and closes it; commands that
// change data rely on auto-save at close, read-only ones never write.
package commands
