// Package clipboard provides the text source and sink the transform runs
// between.
//
// [System] talks to the operating system clipboard through
// github.com/atotto/clipboard. [Memory] is a single-slot stand-in used by
// tests, and [Stream] adapts an io.Reader/io.Writer pair so the convert
// command can run the same flow over stdin.
package clipboard
