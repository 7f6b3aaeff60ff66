// Package ctl implements the pomodoroctl operations: one-shot session
// commands against the daemon and a polling watch mode that keeps printing
// the countdown.
package ctl
