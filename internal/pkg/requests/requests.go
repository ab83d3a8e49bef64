package requests

import (
	"bytes"
	"context"
	"time"

	"github.com/valyala/fasthttp"
)

const userAgent = "Mozilla/5.0 (Macintosh; Intel Mac OS X 10_15_7) AppleWebKit/537.36 (KHTML, like Gecko) Chrome/115.0.0.0 Safari/537.36"

var defaultClient = &fasthttp.Client{}

// Options tweak a single request. A zero Timeout leaves the call unbounded
// unless ctx carries a deadline.
type Options struct {
	Headers map[string]string
	Timeout time.Duration
}

// SimpleGetCli issues a GET on cli. Non-200 responses are returned with their
// status and body and a nil error; callers decide what a bad status means.
func SimpleGetCli(ctx context.Context, cli *fasthttp.Client, url string, opts Options) (int, []byte, error) {
	req := fasthttp.AcquireRequest()
	defer fasthttp.ReleaseRequest(req)
	req.SetRequestURI(url)
	req.Header.SetMethod(fasthttp.MethodGet)
	req.Header.Set("Accept", "application/json")
	req.Header.Set("Accept-Encoding", "gzip")
	req.Header.Set("Accept-Language", "en-US,en;q=0.9")
	req.Header.Set("Cache-Control", "no-cache")
	req.Header.SetUserAgent(userAgent)

	return do(ctx, cli, req, opts)
}

// SimpleGet is SimpleGetCli on the shared default client.
func SimpleGet(ctx context.Context, url string, opts Options) (int, []byte, error) {
	return SimpleGetCli(ctx, defaultClient, url, opts)
}

// PostJSON sends body as application/json.
func PostJSON(ctx context.Context, cli *fasthttp.Client, url string, body []byte, opts Options) (int, []byte, error) {
	req := fasthttp.AcquireRequest()
	defer fasthttp.ReleaseRequest(req)
	req.SetRequestURI(url)
	req.Header.SetMethod(fasthttp.MethodPost)
	req.Header.SetContentType("application/json")
	req.SetBody(body)

	return do(ctx, cli, req, opts)
}

func do(ctx context.Context, cli *fasthttp.Client, req *fasthttp.Request, opts Options) (int, []byte, error) {
	if err := ctx.Err(); err != nil {
		return -1, nil, err
	}
	if cli == nil {
		cli = defaultClient
	}
	for key, value := range opts.Headers {
		req.Header.Set(key, value)
	}

	resp := fasthttp.AcquireResponse()
	defer fasthttp.ReleaseResponse(resp)

	var err error
	if deadline, ok := ctx.Deadline(); ok {
		err = cli.DoDeadline(req, resp, deadline)
	} else if opts.Timeout > 0 {
		err = cli.DoTimeout(req, resp, opts.Timeout)
	} else {
		err = cli.Do(req, resp)
	}
	if err != nil {
		return -1, nil, err
	}

	var body []byte
	if bytes.EqualFold(resp.Header.Peek(fasthttp.HeaderContentEncoding), []byte("gzip")) {
		body, err = resp.BodyGunzip()
		if err != nil {
			return resp.StatusCode(), nil, err
		}
	} else {
		body = resp.Body()
	}
	// resp is released on return; hand back our own copy.
	return resp.StatusCode(), append([]byte(nil), body...), nil
}
