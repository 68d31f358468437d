// Package rewrite turns a `with(...)` requirement list into a `cost!(...)`
// macro call.
//
// A transform runs in three steps:
//
//  1. [Extract] finds the first `with(<body>));` in the input and deletes
//     every occurrence of the strip literal ("Items") from the body.
//  2. [Rewrite] scans the body rune by rune. A `.` uppercases the rune that
//     follows it and is dropped; commas alternate between `:` (odd) and `,`
//     (even), so `a.b,1,c.d,2` becomes `aB:1,cD:2`.
//  3. [Format] wraps the result as `<macro>!(<body>)`.
//
// [Rewriter.Transform] runs all three and returns a [Result] holding every
// stage. Nothing in this package performs I/O.
package rewrite
