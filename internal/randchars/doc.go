// Package randchars draws random strings from an arbitrary alphabet with a
// uniform per-position distribution. It reads entropy from crypto/rand in
// buffered batches and rejects values that would introduce modulo bias.
package randchars
