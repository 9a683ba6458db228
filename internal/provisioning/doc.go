// Package provisioning implements the droplet lifecycle: resolving
// user-supplied image/size/region selectors to provider identifiers,
// creating the droplet, waiting for a public address, synchronizing DNS
// records, handing off to the SSH bootstrap, and the reverse teardown path.
//
// The engine is sequential per request. The only suspension point is the
// address poll loop, bounded by a configurable interval and timeout.
package provisioning
