package httpapi

import (
	"net/http"
	"net/http/httptest"
	"testing"
)

func TestShouldCreateHTTPAPISpan(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want bool
	}{
		{name: "handler span", in: "httpapi.Handler.GetEntityStats", want: true},
		{name: "middleware span", in: "httpapi.RequestLogging", want: false},
		{name: "helper span", in: "httpapi.writeError", want: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := shouldCreateHTTPAPISpan(tt.in)
			if got != tt.want {
				t.Fatalf("shouldCreateHTTPAPISpan(%q)=%v want=%v", tt.in, got, tt.want)
			}
		})
	}
}

func TestRouteAttributes(t *testing.T) {
	r := httptest.NewRequest(http.MethodGet, "/v1/stats/player/Faker", nil)
	r.SetPathValue("kind", "player")
	r.SetPathValue("name", " Faker ")

	attrs := routeAttributes(r)
	if len(attrs) != 2 {
		t.Fatalf("expected kind and name attributes, got %v", attrs)
	}
	if attrs[0].Key != "lolstats.route.kind" || attrs[0].Value.AsString() != "player" {
		t.Fatalf("unexpected kind attribute: %v", attrs[0])
	}
	if attrs[1].Key != "lolstats.route.name" || attrs[1].Value.AsString() != "Faker" {
		t.Fatalf("unexpected name attribute: %v", attrs[1])
	}

	if got := routeAttributes(httptest.NewRequest(http.MethodGet, "/healthz", nil)); len(got) != 0 {
		t.Fatalf("expected no attributes for an unparameterized route, got %v", got)
	}
}
