package header_test

import (
	"encoding/json"
	"testing"

	"github.com/ghettovoice/httphdr/header"
)

func TestParseEncoding(t *testing.T) {
	t.Parallel()

	cases := []struct {
		in   string
		want header.Encoding
	}{
		{"gzip", header.EncodingGzip},
		{"GZIP", header.EncodingGzip},
		{"x-gzip", header.EncodingGzip},
		{"compress", header.EncodingCompress},
		{"X-Compress", header.EncodingCompress},
		{"deflate", header.EncodingDeflate},
		{"identity", header.EncodingIdentity},
		{" Identity ", header.EncodingIdentity},
		{"br", header.EncodingUnknown},
		{"bogus-token", header.EncodingUnknown},
		{"", header.EncodingUnknown},
	}

	for _, c := range cases {
		t.Run(c.in, func(t *testing.T) {
			t.Parallel()

			if got := header.ParseEncoding(c.in); got != c.want {
				t.Errorf("header.ParseEncoding(%q) = %v, want %v", c.in, got, c.want)
			}
		})
	}
}

func TestEncoding_String(t *testing.T) {
	t.Parallel()

	cases := []struct {
		enc  header.Encoding
		want string
	}{
		{header.EncodingIdentity, "identity"},
		{header.EncodingGzip, "gzip"},
		{header.EncodingCompress, "compress"},
		{header.EncodingDeflate, "deflate"},
		{header.EncodingUnknown, "unknown"},
		{header.Encoding(200), "unknown"},
	}

	for _, c := range cases {
		t.Run(c.want, func(t *testing.T) {
			t.Parallel()

			if got := c.enc.String(); got != c.want {
				t.Errorf("enc.String() = %q, want %q", got, c.want)
			}
		})
	}
}

func TestParseContentEncoding(t *testing.T) {
	t.Parallel()

	cases := []struct {
		name      string
		in        string
		want      header.Encoding
		wantValid bool
	}{
		{"gzip", "gzip", header.EncodingGzip, true},
		{"unknown", "bogus-token", header.EncodingUnknown, false},
		{"list", "gzip, br", header.EncodingUnknown, false},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			t.Parallel()

			got, err := header.ParseContentEncoding(c.in)
			if err != nil {
				t.Fatalf("header.ParseContentEncoding(%q) error = %v, want nil", c.in, err)
			}
			if got.Encoding() != c.want {
				t.Errorf("hdr.Encoding() = %v, want %v", got.Encoding(), c.want)
			}
			if got.IsValid() != c.wantValid {
				t.Errorf("hdr.IsValid() = %v, want %v", got.IsValid(), c.wantValid)
			}
		})
	}
}

func TestContentEncoding_Zero(t *testing.T) {
	t.Parallel()

	var hdr header.ContentEncoding
	if hdr.Encoding() != header.EncodingIdentity {
		t.Errorf("hdr.Encoding() = %v, want %v", hdr.Encoding(), header.EncodingIdentity)
	}
	if got, want := hdr.Render(nil), "Content-Encoding: identity"; got != want {
		t.Errorf("hdr.Render(nil) = %q, want %q", got, want)
	}
}

func TestContentEncoding_Equal(t *testing.T) {
	t.Parallel()

	hdr := header.NewContentEncoding(header.EncodingDeflate)
	cases := []struct {
		name string
		val  any
		want bool
	}{
		{"nil", nil, false},
		{"nil ptr", (*header.ContentEncoding)(nil), false},
		{"same", header.NewContentEncoding(header.EncodingDeflate), true},
		{"ptr", &hdr, true},
		{"other", header.NewContentEncoding(header.EncodingGzip), false},
		{"encoding", header.EncodingDeflate, false},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			t.Parallel()

			if got := hdr.Equal(c.val); got != c.want {
				t.Errorf("hdr.Equal(val) = %v, want %v", got, c.want)
			}
		})
	}
}

func TestEncoding_Text(t *testing.T) {
	t.Parallel()

	type doc struct {
		Enc header.Encoding `json:"enc"`
	}

	data, err := json.Marshal(doc{header.EncodingGzip})
	if err != nil {
		t.Fatalf("json.Marshal(doc) error = %v, want nil", err)
	}
	if want := `{"enc":"gzip"}`; string(data) != want {
		t.Errorf("json.Marshal(doc) = %s, want %s", data, want)
	}

	var got doc
	if err := json.Unmarshal([]byte(`{"enc":"X-Compress"}`), &got); err != nil {
		t.Fatalf("json.Unmarshal(data) error = %v, want nil", err)
	}
	if got.Enc != header.EncodingCompress {
		t.Errorf("json.Unmarshal(data) enc = %v, want %v", got.Enc, header.EncodingCompress)
	}
}
