// Package buildinfo reports metadata about the running process: its version,
// a date-shaped build number derived from that version, and the directories
// it was started from.
//
// The version can be stamped at link time:
//
//	go build -ldflags "-X toolkit/core/buildinfo.version=1.4.812.1500"
package buildinfo
