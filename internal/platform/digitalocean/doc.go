// Package digitalocean is a minimal DigitalOcean API client covering the
// resources nereid needs: droplets, images, sizes, regions, SSH keys,
// domains with their records, and floating IPs.
//
// The client speaks the v2 REST API directly. It deliberately does not
// retry; callers own their retry policy.
package digitalocean
