// Package session implements the gRPC transport for the pomodoro service.
//
// It adapts session types to protobuf messages and exposes a server that
// calls into a provided business-service interface.
package session
