package customersvc

import (
	"net/url"
	"strings"
	"testing"
)

func TestTenantFromState(t *testing.T) {
	cases := []struct {
		state string
		want  string
	}{
		{"abc-shop:550e8400-e29b-41d4-a716-446655440000", "abc-shop"},
		{"abc-shop:", "abc-shop"},
		{"khong-co-nonce", ""},
		{"", ""},
		{":nonce", ""},
	}
	for _, tc := range cases {
		if got := TenantFromState(tc.state); got != tc.want {
			t.Errorf("TenantFromState(%q) = %q, muốn %q", tc.state, got, tc.want)
		}
	}
}

func TestAuthorizeURL(t *testing.T) {
	client := &LineClient{
		channelID:   "1234567890",
		redirectURI: "https://api.aoowarranty.com/api/v1/line/callback",
	}
	raw := client.AuthorizeURL("abc-shop")

	u, err := url.Parse(raw)
	if err != nil {
		t.Fatalf("AuthorizeURL trả về URL không parse được: %v", err)
	}
	if u.Host != "access.line.me" {
		t.Errorf("Host = %q, muốn access.line.me", u.Host)
	}
	q := u.Query()
	if q.Get("response_type") != "code" {
		t.Errorf("response_type = %q, muốn code", q.Get("response_type"))
	}
	if q.Get("client_id") != "1234567890" {
		t.Errorf("client_id = %q, muốn 1234567890", q.Get("client_id"))
	}
	if q.Get("redirect_uri") != client.redirectURI {
		t.Errorf("redirect_uri = %q, muốn %q", q.Get("redirect_uri"), client.redirectURI)
	}
	if !strings.Contains(q.Get("scope"), "profile") || !strings.Contains(q.Get("scope"), "openid") {
		t.Errorf("scope = %q phải gồm profile và openid", q.Get("scope"))
	}

	// State phải mang tenant để callback resolve lại được
	if TenantFromState(q.Get("state")) != "abc-shop" {
		t.Errorf("state = %q phải mang tenant abc-shop", q.Get("state"))
	}
}
