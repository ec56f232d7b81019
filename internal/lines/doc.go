// Package lines implements LineVector, a Partitioning specialised to the
// line domain: partition i is line i, and the boundary starts[i] is the
// byte offset of the first character of line i.
package lines
