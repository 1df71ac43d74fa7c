// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package textutil

import "testing"

func TestSanitize(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
	}{
		{
			name: "html tags",
			in:   `<div class="row">Hello <br> world! <p>This is a test.</p></div>`,
			want: "Hello world! This is a test.",
		},
		{
			name: "newlines and carriage returns",
			in:   "Line 1\r\nLine 2\nLine 3",
			want: "Line 1 Line 2 Line 3",
		},
		{
			name: "entities",
			in:   "Me &amp; You &quot;Test&quot;",
			want: `Me & You "Test"`,
		},
		{
			name: "whitespace runs",
			in:   "  Too    many    spaces   ",
			want: "Too many spaces",
		},
		{
			name: "empty",
			in:   "",
			want: "",
		},
		{
			name: "tags only",
			in:   "<p></p><br>",
			want: "",
		},
		{
			// Tags are stripped before entities decode, so an escaped
			// tag stays in the text.
			name: "escaped tag survives",
			in:   "use the &lt;table&gt; element",
			want: "use the <table> element",
		},
		{
			name: "unclosed angle bracket",
			in:   "a < b and b > a",
			want: "a a",
		},
		{
			name: "non-ascii preserved",
			in:   "Größe  der\nStadt",
			want: "Größe der Stadt",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Sanitize(tt.in)
			if got != tt.want {
				t.Errorf("Sanitize(%q) = %q, want %q", tt.in, got, tt.want)
			}
			// Output is already plain text, so a second pass is a no-op.
			if again := Sanitize(got); again != got {
				t.Errorf("Sanitize not idempotent: %q -> %q", got, again)
			}
		})
	}
}
