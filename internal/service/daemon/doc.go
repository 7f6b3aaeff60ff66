// Package daemon runs the pomodorod process: it owns the session manager,
// persists snapshots, serves the gRPC API and logs session events.
package daemon
