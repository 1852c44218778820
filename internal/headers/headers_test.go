package headers

import (
	"net/http"
	"testing"
)

// This check is important because, otherwise, index expressions
// involving a http.Header and one of those names would yield
// unexpected results.
func TestThatAllRelevantHeaderNamesAreInCanonicalFormat(t *testing.T) {
	headerNames := []string{
		Origin,
		ACRH,
		ACAO,
		ACAC,
		ACAM,
		ACAH,
		ACMA,
		ACEH,
		Vary,
	}
	for _, name := range headerNames {
		if http.CanonicalHeaderKey(name) != name {
			t.Errorf("header name %q is not in canonical format", name)
		}
	}
}

func TestIsValid(t *testing.T) {
	cases := []struct {
		name string
		want bool
	}{
		{name: "", want: false},
		{name: "authorization", want: true},
		{name: "X-Request-Id", want: true},
		{name: "()", want: false},
		{name: "not a header name", want: false},
	}
	for _, tc := range cases {
		f := func(t *testing.T) {
			got := IsValid(tc.name)
			if got != tc.want {
				const tmpl = "%q: got %t; want %t"
				t.Errorf(tmpl, tc.name, got, tc.want)
			}
		}
		t.Run(tc.name, f)
	}
}

func TestFirst(t *testing.T) {
	cases := []struct {
		desc string
		h    http.Header
		key  string
		want string
		ok   bool
	}{
		{
			desc: "nil http.Header",
			h:    nil,
			key:  "Foo",
			want: "",
			ok:   false,
		}, {
			desc: "single value",
			h: http.Header{
				"Origin": []string{"https://a.test"},
			},
			key:  "Origin",
			want: "https://a.test",
			ok:   true,
		}, {
			desc: "multiple values",
			h: http.Header{
				"Origin": []string{"https://a.test", "https://b.test"},
			},
			key:  "Origin",
			want: "https://a.test",
			ok:   true,
		},
	}
	for _, tc := range cases {
		f := func(t *testing.T) {
			v, s, ok := First(tc.h, tc.key)
			if ok != tc.ok || v != tc.want || len(s) > 1 || len(s) == 1 && s[0] != v {
				const tmpl = "got %s, %q, %t; want %s, %q, %t"
				t.Errorf(tmpl, v, s, ok, tc.want, []string{tc.want}, tc.ok)
			}
		}
		t.Run(tc.desc, f)
	}
}

func TestJoin(t *testing.T) {
	cases := []struct {
		desc  string
		elems []string
		want  string
	}{
		{desc: "nil", elems: nil, want: ""},
		{desc: "single", elems: []string{"GET"}, want: "GET"},
		{desc: "multiple", elems: []string{"GET", "PUT", "DELETE"}, want: "GET,PUT,DELETE"},
	}
	for _, tc := range cases {
		f := func(t *testing.T) {
			if got := Join(tc.elems); got != tc.want {
				t.Errorf("got %q; want %q", got, tc.want)
			}
		}
		t.Run(tc.desc, f)
	}
}
