// Package dir provides single-call directory operations with step-level
// error reporting, the directory counterpart to package file.
//
//	paths, err := dir.Children("./data").Get()
//	res := dir.Create("./out/cache", dir.WithIgnoreExisting())
//	res := dir.Remove("/tmp/scratch")
//
// Failures carry domain "dir" and the step name ("stat", "readdir",
// "mkdir", "remove") with the native os error untouched underneath.
package dir
