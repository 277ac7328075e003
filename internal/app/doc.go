// Package app contains the core application logic. It defines the App
// struct, its configuration, and the lifecycle of one invocation: load the
// command document, compile it, match the forwarded arguments, resolve the
// invoked command and dispatch its script. It is decoupled from the
// process entrypoint so it can be driven from tests.
package app
