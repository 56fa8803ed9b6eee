package gate

import (
	"strings"

	"github.com/google/uuid"
	"github.com/valyala/fasttemplate"
)

// HeaderComment is the first line of the emitted file, identifying the
// generator.
const HeaderComment = "# Authentication gate configuration auto-generated by inspircd-auth-gate"

const blockNamePrefix = "auth-gate-"

// Block header/footer templates. Available variables: {{name}}, {{parent}},
// {{reason}}.
const (
	allowOpenTmpl  = `<connect name="{{name}}"`
	allowCloseTmpl = "    registered=\"true\"\n    requireaccount=\"yes\"\n    parent=\"{{parent}}\">"
	denyOpen       = "<connect"
	denyCloseTmpl  = "    registered=\"true\"\n    reason=\"{{reason}}\">"
)

// NewBlockName returns a fresh allow-block name. InspIRCd rejects connect
// class name collisions, so every run gets its own random suffix.
func NewBlockName() string {
	return blockNamePrefix + uuid.NewString()
}

func renderTemplatePart(template string, vars map[string]interface{}) string {
	if !strings.Contains(template, "{{") {
		return template
	}

	t := fasttemplate.New(template, "{{", "}}")
	return t.ExecuteString(vars)
}

// RenderAllow renders the connect block granting authenticated connections
// from the listed addresses. Entries are emitted one per line, in input
// order, indented by four spaces.
func RenderAllow(name, parent string, entries []string) string {
	lines := make([]string, 0, len(entries)+2)
	lines = append(lines, renderTemplatePart(allowOpenTmpl, map[string]interface{}{
		"name": name,
	}))
	for _, entry := range entries {
		lines = append(lines, `    allow="`+entry+`"`)
	}
	lines = append(lines, renderTemplatePart(allowCloseTmpl, map[string]interface{}{
		"parent": parent,
	}))

	return strings.Join(lines, "\n")
}

// RenderDeny renders the connect block rejecting unauthenticated connections
// from the listed addresses with the given reason. The reason is inserted
// verbatim; a literal quote character in it will break the markup.
func RenderDeny(message string, entries []string) string {
	lines := make([]string, 0, len(entries)+2)
	lines = append(lines, denyOpen)
	for _, entry := range entries {
		lines = append(lines, `    deny="`+entry+`"`)
	}
	lines = append(lines, renderTemplatePart(denyCloseTmpl, map[string]interface{}{
		"reason": message,
	}))

	return strings.Join(lines, "\n")
}

// RenderDocument assembles the emitted file: header comment, allow block,
// deny block, trailing newline.
func RenderDocument(allowBlock, denyBlock string) string {
	return HeaderComment + "\n" + allowBlock + "\n" + denyBlock + "\n"
}
