package provisioning

import "strings"

// SplitFQDN decomposes a machine name into DNS hostname and domain. The
// rightmost two labels form the domain and everything before them is the
// hostname: "web1.us.example.com" yields ("web1.us", "example.com").
//
// A name with fewer than three labels has no inferable domain; the whole
// name is returned as the hostname with an empty domain.
func SplitFQDN(name string) (hostname, domain string) {
	labels := strings.Split(name, ".")
	if len(labels) <= 2 {
		return labels[0], ""
	}
	return strings.Join(labels[:len(labels)-2], "."), strings.Join(labels[len(labels)-2:], ".")
}
