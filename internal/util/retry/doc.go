// Package retry provides exponential backoff retry logic for transient failures.
//
// [WithExponentialBackoff] retries an operation with a configurable attempt
// budget, initial delay, and backoff multiplier. It is used for droplet
// lookups against the provider API, which can trail a create or destroy by
// a short eventual-consistency window. Errors wrapped with [Fatal] stop the
// retry loop.
package retry
