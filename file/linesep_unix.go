//go:build !windows

package file

var lineSep = []byte("\n")
