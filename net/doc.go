// Package net provides single-call HTTP downloads with step-level error
// reporting.
//
//	res := net.Download(ctx, "https://example.com/a.tar.gz", "./a.tar.gz")
//	body, err := net.Fetch(ctx, "https://example.com/api").Get()
//
// A download sequences request, do, status, create, copy, flush, close with
// fail-fast semantics; the response body and the local file handle are both
// released on every path. Non-2xx responses fail at step "status" with a
// [*StatusError] cause.
//
// Context cancellation surfaces as the failure of whichever step observed
// it, after cleanup has run.
//
// Object-storage backends live in the subpackages net/minio (S3-compatible
// endpoints via minio-go) and net/s3 (AWS via aws-sdk-go-v2).
package net
