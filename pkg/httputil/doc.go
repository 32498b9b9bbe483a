// Package httputil provides HTTP helpers shared by word-generation clients.
//
// # Retry
//
// [Retry] re-runs an operation when it fails with a [RetryableError]. Wrap
// transient failures (network errors, 5xx responses, 429 rate limits) so they
// are retried; every other error is returned immediately:
//
//	err := httputil.RetryWithBackoff(ctx, func() error {
//	    resp, err := client.Do(req)
//	    if err != nil {
//	        return &httputil.RetryableError{Err: err}
//	    }
//	    ...
//	})
//
// The delay doubles after each attempt. A RetryableError may carry a
// server-provided After duration (for example from a Retry-After header),
// which replaces the computed delay for that attempt.
//
// # Clients
//
// [NewClient] returns an [http.Client] with the default request timeout.
package httputil
