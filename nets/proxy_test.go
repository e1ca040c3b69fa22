package nets

import (
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/reusee/dscope"
	"github.com/reusee/terse/configs"
	"github.com/reusee/terse/modes"
)

func TestProxyAddrInDevelopment(t *testing.T) {
	t.Setenv("ALL_PROXY", "socks5://127.0.0.1:1080")
	dscope.New(
		modes.ForTest(t),
		new(Module),
		dscope.Provide(configs.NewLoader(nil, "")),
	).Call(func(
		addr ProxyAddr,
		getProxyURL GetProxyURL,
	) {
		if addr != "" {
			t.Fatalf("got %v", addr)
		}
		u, err := getProxyURL()
		if err != nil {
			t.Fatal(err)
		}
		if u != nil {
			t.Fatalf("got %v", u)
		}
	})
}

func TestProxyDialer(t *testing.T) {
	dscope.New(
		modes.ForTest(t),
		new(Module),
		dscope.Provide(configs.NewLoader(nil, "")),
	).Fork(
		func() ProxyAddr {
			return "socks://127.0.0.1:1080"
		},
	).Call(func(
		getProxyURL GetProxyURL,
		getProxyDialer GetProxyDialer,
	) {
		u, err := getProxyURL()
		if err != nil {
			t.Fatal(err)
		}
		if u.Scheme != "socks5" {
			t.Fatalf("got %v", u)
		}
		dialer, err := getProxyDialer()
		if err != nil {
			t.Fatal(err)
		}
		if dialer == nil {
			t.Fatal()
		}
	})
}

func TestHTTPClientDirect(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		io.WriteString(w, "ok")
	}))
	defer server.Close()

	dscope.New(
		modes.ForTest(t),
		new(Module),
		dscope.Provide(configs.NewLoader(nil, "")),
	).Fork(
		// an unreachable proxy; local addresses must bypass it
		func() ProxyAddr {
			return "socks5://127.0.0.1:1"
		},
	).Call(func(
		client HTTPClient,
	) {
		resp, err := client.Get(server.URL)
		if err != nil {
			t.Fatal(err)
		}
		defer resp.Body.Close()
		body, err := io.ReadAll(resp.Body)
		if err != nil {
			t.Fatal(err)
		}
		if string(body) != "ok" {
			t.Fatalf("got %q", body)
		}
	})
}
