// Package output formats transform results for display or machine consumption.
//
// Three formats are supported:
//   - text: the formatted macro call alone (default)
//   - explain: every stage of the transform, then the macro call
//   - json: the full result as a JSON object
//
// Use [GetWriter] to obtain a [Writer] for a given format string, then call
// [Writer.Write] with an [io.Writer] and a [rewrite.Result]. [WriteResult]
// handles destination selection.
package output
