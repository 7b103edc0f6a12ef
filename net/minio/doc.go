// Package minio provides single-call object downloads from MinIO and other
// S3-compatible endpoints, with the same error shape as package net.
//
//	client, _ := minio.New("play.min.io", &minio.Options{...})
//	res := latinminio.Download(ctx, client, "bucket", "key", "./local.bin")
//
// Failures carry domain "minio" and the step name; minio's native
// ErrorResponse is preserved untouched as the cause.
package minio
