// Package redact makes clipboard text safe to put in a log.
//
// The clipboard may hold anything the user copied last, including
// credentials. [Preview] masks common secret shapes (API keys, bearer
// tokens, JWTs, private key headers, provider tokens, password
// assignments) and truncates the result so a failed run can show what it
// read without copying the whole clipboard into a log file.
package redact
