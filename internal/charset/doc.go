// Package charset resolves the alphabet used for code generation from a
// named base set, a letter case option and optional omit/add character lists.
package charset
