package mdpdf

import (
	"strings"

	"github.com/LeafYeeXYZ/MarkdownPDF/internal/yamlutil"
)

// frontMatter holds the metadata fields recognized in a manuscript's
// leading YAML block.
type frontMatter struct {
	Title string `yaml:"title"`
}

const frontMatterFence = "---"

// splitFrontMatter separates a leading YAML front-matter block from the
// Markdown body. Content without a well-formed block is returned
// unchanged with zero metadata: front matter is advisory, never fatal.
func splitFrontMatter(content string) (frontMatter, string) {
	var meta frontMatter

	rest, ok := strings.CutPrefix(content, frontMatterFence+"\n")
	if !ok {
		rest, ok = strings.CutPrefix(content, frontMatterFence+"\r\n")
		if !ok {
			return meta, content
		}
	}

	// Prefixing a newline lets the scan also catch a closing fence on the
	// very first line (an empty block).
	search := "\n" + rest
	end := strings.Index(search, "\n"+frontMatterFence)
	if end == -1 {
		return meta, content
	}
	block := strings.TrimSuffix(search[1:end+1], "\n")
	block = strings.TrimSuffix(block, "\r")
	after := search[end+len("\n"+frontMatterFence):]

	// The closing fence must terminate its line.
	var body string
	if nl := strings.IndexByte(after, '\n'); nl != -1 {
		if strings.TrimSpace(after[:nl]) != "" {
			return meta, content
		}
		body = after[nl+1:]
	} else {
		if strings.TrimSpace(after) != "" {
			return meta, content
		}
		body = ""
	}

	// An empty block is valid front matter with no metadata.
	if strings.TrimSpace(block) != "" {
		if err := yamlutil.Unmarshal([]byte(block), &meta); err != nil {
			return frontMatter{}, content
		}
	}
	return meta, body
}
