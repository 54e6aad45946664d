package mdpdf

import "testing"

func TestSplitFrontMatter(t *testing.T) {
	tests := []struct {
		name      string
		content   string
		wantTitle string
		wantBody  string
	}{
		{
			name:      "title extracted and block stripped",
			content:   "---\ntitle: A Study of Things\n---\n# Introduction\n",
			wantTitle: "A Study of Things",
			wantBody:  "# Introduction\n",
		},
		{
			name:      "extra metadata fields tolerated",
			content:   "---\ntitle: Paper\nauthor: Zhang San\nkeywords: [a, b]\n---\nbody\n",
			wantTitle: "Paper",
			wantBody:  "body\n",
		},
		{
			name:      "crlf fences",
			content:   "---\r\ntitle: Paper\r\n---\r\nbody\r\n",
			wantTitle: "Paper",
			wantBody:  "body\r\n",
		},
		{
			name:      "no front matter",
			content:   "# Introduction\n",
			wantTitle: "",
			wantBody:  "# Introduction\n",
		},
		{
			name:      "fence not at start",
			content:   "\n---\ntitle: Paper\n---\nbody\n",
			wantTitle: "",
			wantBody:  "\n---\ntitle: Paper\n---\nbody\n",
		},
		{
			name:      "unterminated block left untouched",
			content:   "---\ntitle: Paper\nbody without closing fence\n",
			wantTitle: "",
			wantBody:  "---\ntitle: Paper\nbody without closing fence\n",
		},
		{
			name:      "thematic break is not a closing fence",
			content:   "---\ntitle: Paper\n---extra\n",
			wantTitle: "",
			wantBody:  "---\ntitle: Paper\n---extra\n",
		},
		{
			name:      "malformed yaml left untouched",
			content:   "---\ntitle: [unclosed\n---\nbody\n",
			wantTitle: "",
			wantBody:  "---\ntitle: [unclosed\n---\nbody\n",
		},
		{
			name:      "empty block stripped",
			content:   "---\n---\n# Introduction\n",
			wantTitle: "",
			wantBody:  "# Introduction\n",
		},
		{
			name:      "whitespace-only block stripped",
			content:   "---\n  \n---\nbody\n",
			wantTitle: "",
			wantBody:  "body\n",
		},
		{
			name:      "closing fence at end of content",
			content:   "---\ntitle: Paper\n---",
			wantTitle: "Paper",
			wantBody:  "",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			meta, body := splitFrontMatter(tt.content)
			if meta.Title != tt.wantTitle {
				t.Errorf("Title = %q, want %q", meta.Title, tt.wantTitle)
			}
			if body != tt.wantBody {
				t.Errorf("body = %q, want %q", body, tt.wantBody)
			}
		})
	}
}
