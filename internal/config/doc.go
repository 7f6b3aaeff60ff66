// Package config defines settings used by the daemon and control binaries and
// provides helpers to load, validate and save them in YAML format.
//
// The Config type holds the daemon gRPC address, the snapshot file path,
// the phase timer durations and the work-end reflection prompts.
package config
