// Package s3 provides single-call object downloads from AWS S3 via
// aws-sdk-go-v2, with the same error shape as package net.
//
//	client, _ := s3.NewClient(ctx)
//	res := s3.Download(ctx, client, "bucket", "key", "./local.bin")
//
// Downloads go through the SDK's transfer manager, which fetches large
// objects in concurrent ranged parts. Failures carry domain "s3" and the
// step name; the SDK's native error (smithy.APIError underneath) is
// preserved untouched as the cause.
package s3
