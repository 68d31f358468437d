// Package cli wires together the Cobra command tree for the costclip binary.
//
// The root command runs the clipboard transform; convert runs it over
// stdin or a file; config and version are housekeeping. Handlers load
// configuration, build the logger, invoke the rewrite package and set a
// deterministic exit code.
package cli
