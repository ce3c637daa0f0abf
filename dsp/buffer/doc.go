// Package buffer pools the float64 working blocks that chunked processing
// widens samples into.
package buffer
