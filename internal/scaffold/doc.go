// Package scaffold creates a project from the template repository. It owns
// the fixed pipeline that runs once a Config is resolved: clone the template,
// look up the author, customize the tree, commit it and install dependencies.
//
// Every external command goes through a process.Runner, and every failure is
// reported as a typed error so callers can tell a missing git binary from a
// broken clone without reading messages.
package scaffold
