package net

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"os"

	"golang.org/x/sync/errgroup"
	"golang.org/x/time/rate"

	"github.com/TyOverby/latin"
)

// Domain tags every failure raised by this package.
const Domain = "net"

// Step names reported in failures, in the order a download runs them.
const (
	StepRequest = "request"
	StepDo      = "do"
	StepStatus  = "status"
	StepCreate  = "create"
	StepCopy    = "copy"
	StepFlush   = "flush"
	StepRead    = "read"
	StepClose   = "close"
)

// StatusError is the native cause of a "status" failure: the server
// answered, but outside the 2xx range.
type StatusError struct {
	Code   int
	Status string
}

func (e *StatusError) Error() string {
	return fmt.Sprintf("unexpected status: %s", e.Status)
}

// Download fetches url and writes the response body to the file at to,
// creating or truncating it.
//
// The sequence is request, do, status, create, copy, flush, close; the first
// failing step is the one reported, and both the response body and the file
// handle are released on every path. Cancelling ctx aborts the transfer and
// surfaces as the failure of the step that observed it.
func Download(ctx context.Context, url, to string, opts ...Option) latin.Result[latin.Unit] {
	o := applyOptions(opts)
	failure := download(ctx, o, url, to)
	o.logger.LogOp(ctx, "download", url, failure)
	if failure != nil {
		return latin.Fail[latin.Unit](failure)
	}
	return latin.OkUnit()
}

// Fetch returns the response body of url. The sequence is request, do,
// status, read, close.
func Fetch(ctx context.Context, url string, opts ...Option) latin.Result[[]byte] {
	o := applyOptions(opts)
	var data []byte
	failure := func() *latin.OpError {
		resp, failure := respond(ctx, o, url)
		if failure != nil {
			return failure
		}
		b, err := io.ReadAll(o.body(ctx, resp.Body))
		if err != nil {
			_ = resp.Body.Close()
			return latin.E(Domain, StepRead, url, err)
		}
		data = b
		if err := resp.Body.Close(); err != nil {
			return latin.E(Domain, StepClose, url, err)
		}
		return nil
	}()
	o.logger.LogOp(ctx, "fetch", url, failure)
	if failure != nil {
		return latin.Fail[[]byte](failure)
	}
	return latin.Ok(data)
}

// DownloadAll downloads every url in targets (url -> local path)
// concurrently, bounded by WithConcurrency. Each download keeps the
// per-invocation fail-fast and cleanup contract; the first failure observed
// is returned and cancels the remaining transfers. All goroutines have
// finished by the time DownloadAll returns.
func DownloadAll(ctx context.Context, targets map[string]string, opts ...Option) latin.Result[latin.Unit] {
	o := applyOptions(opts)
	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(o.concurrency)
	for url, to := range targets {
		g.Go(func() error {
			if failure := download(ctx, o, url, to); failure != nil {
				return failure
			}
			return nil
		})
	}
	err := g.Wait()
	var failure *latin.OpError
	if err != nil && !errors.As(err, &failure) {
		failure = latin.E(Domain, StepDo, "", err)
	}
	o.logger.LogOp(ctx, "download_all", fmt.Sprintf("%d targets", len(targets)), failure)
	if failure != nil {
		return latin.Fail[latin.Unit](failure)
	}
	return latin.OkUnit()
}

// respond runs the request, do and status steps and hands back an open
// response. On failure the body, if any, is already closed.
func respond(ctx context.Context, o *options, url string) (*http.Response, *latin.OpError) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, latin.E(Domain, StepRequest, url, err)
	}
	for key, values := range o.header {
		for _, v := range values {
			req.Header.Add(key, v)
		}
	}
	resp, err := o.client.Do(req)
	if err != nil {
		return nil, latin.E(Domain, StepDo, url, err)
	}
	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		_ = resp.Body.Close()
		return nil, latin.E(Domain, StepStatus, url, &StatusError{
			Code:   resp.StatusCode,
			Status: resp.Status,
		})
	}
	return resp, nil
}

func download(ctx context.Context, o *options, url, to string) *latin.OpError {
	resp, failure := respond(ctx, o, url)
	if failure != nil {
		return failure
	}
	f, err := o.fsys.OpenFile(to, os.O_WRONLY|os.O_CREATE|os.O_TRUNC, o.perm)
	if err != nil {
		failure = latin.E(Domain, StepCreate, to, err)
	} else {
		if _, err := io.Copy(f, o.body(ctx, resp.Body)); err != nil {
			failure = latin.E(Domain, StepCopy, url, err)
		}
		if failure == nil {
			if err := f.Sync(); err != nil {
				failure = latin.E(Domain, StepFlush, to, err)
			}
		}
		if err := f.Close(); err != nil && failure == nil {
			failure = latin.E(Domain, StepClose, to, err)
		}
	}
	if err := resp.Body.Close(); err != nil && failure == nil {
		failure = latin.E(Domain, StepClose, url, err)
	}
	return failure
}

// body wraps the response body with the rate limiter, if configured.
func (o *options) body(ctx context.Context, r io.Reader) io.Reader {
	if o.limiter == nil {
		return r
	}
	return &limitedReader{r: r, limiter: o.limiter, ctx: ctx}
}

type limitedReader struct {
	r       io.Reader
	limiter *rate.Limiter
	ctx     context.Context
}

func (lr *limitedReader) Read(p []byte) (int, error) {
	if burst := lr.limiter.Burst(); len(p) > burst {
		p = p[:burst]
	}
	n, err := lr.r.Read(p)
	if n > 0 {
		if werr := lr.limiter.WaitN(lr.ctx, n); werr != nil {
			return n, werr
		}
	}
	return n, err
}
