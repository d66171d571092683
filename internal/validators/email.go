package validators

import (
	"context"
	"net"
	"strings"
	"time"
)

const lookupTimeout = 3 * time.Second

var (
	lookupMX = net.DefaultResolver.LookupMX
	lookupIP = net.DefaultResolver.LookupIPAddr
)

// EmailDomain extracts the part after the last '@', or "" when there is none.
func EmailDomain(email string) string {
	at := strings.LastIndex(email, "@")
	if at <= 0 || at == len(email)-1 {
		return ""
	}
	return email[at+1:]
}

// IsEmailDomainValid reports whether the email's domain has an MX or an A/AAAA record.
func IsEmailDomainValid(ctx context.Context, email string) bool {
	domain := EmailDomain(email)
	if domain == "" {
		return false
	}

	ctx, cancel := context.WithTimeout(ctx, lookupTimeout)
	defer cancel()

	if mx, err := lookupMX(ctx, domain); err == nil && len(mx) > 0 {
		return true
	}

	if ips, err := lookupIP(ctx, domain); err == nil && len(ips) > 0 {
		return true
	}

	return false
}
