//go:build windows

package file

var lineSep = []byte("\r\n")
