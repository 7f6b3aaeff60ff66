// Package state implements persistence for the session snapshot.
//
// The FileRepository stores and loads the snapshot as JSON on disk and
// exposes a Repository interface that the daemon service depends on. The
// snapshot lets a restarted daemon pick up a running pause or phase.
package state
