package utils

import (
	"net/http/httptest"
	"testing"
)

func TestIPMatcher(t *testing.T) {
	m := NewIPMatcher([]string{"10.0.0.0/8", " 192.168.1.7 ", "2001:db8::/32", "not-an-ip", ""})

	tests := []struct {
		ip   string
		want bool
	}{
		{ip: "10.20.30.40", want: true},
		{ip: "192.168.1.7", want: true},
		{ip: "192.168.1.8", want: false},
		{ip: "::ffff:10.0.0.1", want: true},
		{ip: "2001:db8::1", want: true},
		{ip: "2001:db9::1", want: false},
		{ip: "garbage", want: false},
	}
	for _, tt := range tests {
		if got := m.Allow(tt.ip); got != tt.want {
			t.Errorf("Allow(%q) = %v, want %v", tt.ip, got, tt.want)
		}
	}
	if m.IsEmpty() {
		t.Error("matcher should not be empty")
	}
	if !NewIPMatcher([]string{"nope"}).IsEmpty() {
		t.Error("matcher with only invalid entries should be empty")
	}
}

func TestClientIP(t *testing.T) {
	tests := []struct {
		name       string
		remote     string
		headers    map[string]string
		trustProxy bool
		want       string
	}{
		{name: "remote addr", remote: "1.2.3.4:5678", want: "1.2.3.4"},
		{name: "ipv6 remote", remote: "[2001:db8::1]:443", want: "2001:db8::1"},
		{name: "untrusted headers", remote: "1.2.3.4:1", headers: map[string]string{"X-Forwarded-For": "9.9.9.9"}, want: "1.2.3.4"},
		{name: "cloudflare first", remote: "1.2.3.4:1", trustProxy: true,
			headers: map[string]string{"CF-Connecting-IP": "8.8.8.8", "X-Forwarded-For": "9.9.9.9"}, want: "8.8.8.8"},
		{name: "left-most forwarded", remote: "1.2.3.4:1", trustProxy: true,
			headers: map[string]string{"X-Forwarded-For": " 9.9.9.9 , 10.0.0.1"}, want: "9.9.9.9"},
		{name: "real ip", remote: "1.2.3.4:1", trustProxy: true,
			headers: map[string]string{"X-Real-IP": "7.7.7.7"}, want: "7.7.7.7"},
		{name: "trusted without headers", remote: "1.2.3.4:1", trustProxy: true, want: "1.2.3.4"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := httptest.NewRequest("GET", "/", nil)
			r.RemoteAddr = tt.remote
			for k, v := range tt.headers {
				r.Header.Set(k, v)
			}
			if got := ClientIP(r, tt.trustProxy); got != tt.want {
				t.Errorf("ClientIP = %q, want %q", got, tt.want)
			}
		})
	}
}
