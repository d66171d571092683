package validators

import (
	"context"
	"errors"
	"net"
	"testing"

	"github.com/stretchr/testify/require"
)

func stubLookups(t *testing.T, mx []*net.MX, ips []net.IPAddr) {
	t.Helper()
	origMX, origIP := lookupMX, lookupIP
	t.Cleanup(func() {
		lookupMX, lookupIP = origMX, origIP
	})

	lookupMX = func(context.Context, string) ([]*net.MX, error) {
		if mx == nil {
			return nil, errors.New("no such host")
		}
		return mx, nil
	}
	lookupIP = func(context.Context, string) ([]net.IPAddr, error) {
		if ips == nil {
			return nil, errors.New("no such host")
		}
		return ips, nil
	}
}

func TestEmailDomain(t *testing.T) {
	require.Equal(t, "x.com", EmailDomain("a@x.com"))
	require.Equal(t, "x.com", EmailDomain("a@b@x.com"))
	require.Empty(t, EmailDomain("a@"))
	require.Empty(t, EmailDomain("@x.com"))
	require.Empty(t, EmailDomain("plain"))
}

func TestIsEmailDomainValid(t *testing.T) {
	ctx := context.Background()

	stubLookups(t, []*net.MX{{Host: "mx.x.com."}}, nil)
	require.True(t, IsEmailDomainValid(ctx, "a@x.com"))

	stubLookups(t, nil, []net.IPAddr{{IP: net.IPv4(127, 0, 0, 1)}})
	require.True(t, IsEmailDomainValid(ctx, "a@x.com"))

	stubLookups(t, nil, nil)
	require.False(t, IsEmailDomainValid(ctx, "a@x.com"))
	require.False(t, IsEmailDomainValid(ctx, "broken"))
}
