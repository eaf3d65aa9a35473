// Package report turns engine progress into something people read.
//
// Logger is a genetic.Reporter that writes structured zap entries, Multi
// fans progress out to several reporters, and WriteSummary prints the
// final route in the plain-text form the command line uses.
package report
