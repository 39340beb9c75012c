package header_test

import (
	"fmt"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"

	"github.com/ghettovoice/httphdr/header"
	"github.com/ghettovoice/httphdr/mime"
)

func TestCanonicName(t *testing.T) {
	t.Parallel()

	cases := []struct {
		in   string
		want header.Name
	}{
		{"content-length", "Content-Length"},
		{"CONTENT-TYPE", "Content-Type"},
		{"user-AGENT", "User-Agent"},
		{" host ", "Host"},
		{"x-custom-header", "X-Custom-Header"},
		{"etag", "ETag"},
		{"www-authenticate", "WWW-Authenticate"},
		{"content-md5", "Content-MD5"},
		{"", ""},
	}

	for _, c := range cases {
		t.Run(c.in, func(t *testing.T) {
			t.Parallel()

			if got := header.CanonicName(c.in); got != c.want {
				t.Errorf("header.CanonicName(%q) = %q, want %q", c.in, got, c.want)
			}
		})
	}
}

func TestName_Equal(t *testing.T) {
	t.Parallel()

	name := header.Name("Content-Length")
	cases := []struct {
		name string
		val  any
		want bool
	}{
		{"nil", nil, false},
		{"nil ptr", (*header.Name)(nil), false},
		{"same", header.Name("Content-Length"), true},
		{"lower", header.Name("content-length"), true},
		{"ptr", &name, true},
		{"string", "CONTENT-LENGTH", true},
		{"other", header.Name("Content-Type"), false},
		{"int", 42, false},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			t.Parallel()

			if got := name.Equal(c.val); got != c.want {
				t.Errorf("name.Equal(%v) = %v, want %v", c.val, got, c.want)
			}
		})
	}
}

func TestName_IsValid(t *testing.T) {
	t.Parallel()

	cases := []struct {
		name header.Name
		want bool
	}{
		{"", false},
		{"Content-Length", true},
		{"X-Foo_Bar.1", true},
		{"Bad Name", false},
		{"Bad:Name", false},
	}

	for _, c := range cases {
		t.Run(string(c.name), func(t *testing.T) {
			t.Parallel()

			if got := c.name.IsValid(); got != c.want {
				t.Errorf("name.IsValid() = %v, want %v", got, c.want)
			}
		})
	}
}

func TestHeader_Render(t *testing.T) {
	t.Parallel()

	cases := []struct {
		name string
		hdr  header.Header
		opts *header.RenderOptions
		want string
	}{
		{"accept", header.NewAccept("text/html, */*;q=0.1"), nil, "Accept: text/html, */*;q=0.1"},
		{"content-encoding", header.NewContentEncoding(header.EncodingGzip), nil, "Content-Encoding: gzip"},
		{"content-length", header.ContentLength(1234), nil, "Content-Length: 1234"},
		{
			"content-type",
			header.NewContentType(mime.New(mime.TypeApplication, mime.SubtypeJSON)),
			nil,
			"Content-Type: application/json",
		},
		{"host", header.NewHostPort("example.com", 8080), nil, "Host: example.com:8080"},
		{"server", header.NewServer("Apache/2.4", "(Unix)"), nil, "Server: Apache/2.4 (Unix)"},
		{"user-agent", header.UserAgent("curl/8.5.0"), nil, "User-Agent: curl/8.5.0"},
		{"any", header.NewAny("x-request-id", "abc"), nil, "X-Request-Id: abc"},
		{"lowercase", header.ContentLength(1), &header.RenderOptions{Lowercase: true}, "content-length: 1"},
		{"lowercase any", header.NewAny("X-Foo", "bar"), &header.RenderOptions{Lowercase: true}, "x-foo: bar"},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			t.Parallel()

			if got := c.hdr.Render(c.opts); got != c.want {
				t.Errorf("hdr.Render(opts) = %q, want %q", got, c.want)
			}
		})
	}
}

func TestHeader_Format(t *testing.T) {
	t.Parallel()

	hdr := header.ContentLength(1234)
	cases := []struct {
		format string
		want   string
	}{
		{"%s", "1234"},
		{"%+s", "Content-Length: 1234"},
		{"%q", `"1234"`},
		{"%+q", `"Content-Length: 1234"`},
		{"%v", "1234"},
		{"%d", "1234"},
	}

	for _, c := range cases {
		t.Run(c.format, func(t *testing.T) {
			t.Parallel()

			if got := fmt.Sprintf(c.format, hdr); got != c.want {
				t.Errorf("fmt.Sprintf(%q, hdr) = %q, want %q", c.format, got, c.want)
			}
		})
	}
}

func TestToJSON(t *testing.T) {
	t.Parallel()

	cases := []struct {
		name    string
		hdr     header.Header
		want    string
		wantErr error
	}{
		{"nil", nil, "null", nil},
		{"content-length", header.ContentLength(10), `{"name":"Content-Length","value":"10"}`, nil},
		{"host", header.NewHost("example.com"), `{"name":"Host","value":"example.com"}`, nil},
		{"any", header.NewAny("x-foo", "bar"), `{"name":"X-Foo","value":"bar"}`, nil},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			t.Parallel()

			got, err := header.ToJSON(c.hdr)
			if diff := cmp.Diff(err, c.wantErr, cmpopts.EquateErrors()); diff != "" {
				t.Errorf("header.ToJSON(hdr) error = %v, want %v\ndiff (-got +want):\n%v", err, c.wantErr, diff)
			}
			if string(got) != c.want {
				t.Errorf("header.ToJSON(hdr) = %s, want %s", got, c.want)
			}
		})
	}
}

func TestFromJSON(t *testing.T) {
	t.Parallel()

	cases := []struct {
		name    string
		data    string
		want    header.Header
		wantErr error
	}{
		{"content-length", `{"name":"content-length","value":"10"}`, header.ContentLength(10), nil},
		{"server", `{"name":"Server","value":"nginx  1.25"}`, header.NewServer("nginx", "1.25"), nil},
		{"any", `{"name":"X-Foo","value":"bar"}`, header.NewAny("X-Foo", "bar"), nil},
		{"malformed", `{"name":"Content-Length","value":"12a4"}`, nil, header.ErrMalformedInput},
		{"bad name", `{"name":"Bad Name","value":"x"}`, nil, header.ErrMalformedInput},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			t.Parallel()

			got, err := header.FromJSON(c.data)
			if diff := cmp.Diff(err, c.wantErr, cmpopts.EquateErrors()); diff != "" {
				t.Errorf("header.FromJSON(data) error = %v, want %v\ndiff (-got +want):\n%v", err, c.wantErr, diff)
			}
			if diff := cmp.Diff(got, c.want); diff != "" {
				t.Errorf("header.FromJSON(data) = %+v, want %+v\ndiff (-got +want):\n%v", got, c.want, diff)
			}
		})
	}
}

func TestFromJSON_Invalid(t *testing.T) {
	t.Parallel()

	if _, err := header.FromJSON("null"); err == nil {
		t.Error("header.FromJSON(\"null\") error = nil, want error")
	}
	if _, err := header.FromJSON([]byte("{")); err == nil {
		t.Error("header.FromJSON(\"{\") error = nil, want error")
	}
}
