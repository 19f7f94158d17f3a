// Package cli implements the interactive photo vault front end.
//
// The REPL (see runREPL) dispatches commands to App methods. App keeps the
// interactive state only: the bound account, the open viewer cursor, and the
// input reader. All vault semantics live in the services package; handlers
// prompt, call the service, and print.
//
// Folders are addressed by name at the prompt and photos by their listed
// position; both are translated to internal ids before a service call.
package cli
