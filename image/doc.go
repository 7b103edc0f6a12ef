// Package image provides single-call image decoding and encoding with
// step-level error reporting.
//
//	img, err := image.Load("./photo.jpg").Get()
//	res := image.Save("./thumb.png", img)
//
// Load decodes whatever the registered stdlib codecs recognize (png, jpeg,
// gif). Save chooses the codec by the target's extension. Failures carry
// domain "image" and the step name ("open", "decode", "create", "encode",
// "flush", "close") with the codec's native error untouched underneath.
package image
