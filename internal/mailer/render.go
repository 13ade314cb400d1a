package mailer

import (
	"html"
	"regexp"
	"strings"

	"github.com/microcosm-cc/bluemonday"
)

type rule struct {
	re   *regexp.Regexp
	repl string
}

// Applied in order; later rules see the output of earlier ones. Line rules
// stop at '\r' and keep it after the closing tag so CRLF input renders like LF.
var rules = []rule{
	{regexp.MustCompile(`(?m)^# ([^\r\n]+)(\r?)$`), `<h2 style="color: #1f2937; font-size: 24px; margin: 0 0 20px 0; font-weight: 600;">${1}</h2>${2}`},
	{regexp.MustCompile(`(?m)^## ([^\r\n]+)(\r?)$`), `<h3 style="color: #4b5563; font-size: 18px; margin: 20px 0 12px 0; font-weight: 600;">${1}</h3>${2}`},
	{regexp.MustCompile(`(?m)^\d+\.\s\*\*([^\r\n]+?)\*\*\s*-\s*([^\r\n]+)(\r?)$`), `<div style="margin: 10px 0;"><strong style="color: #667eea;">${1}</strong> - ${2}</div>${3}`},
	{regexp.MustCompile(`\*\*([^\r\n]+?)\*\*`), `<strong style="color: #374151;">${1}</strong>`},
	{regexp.MustCompile("`([^`\r\n]+)`"), `<code style="background-color: #f3f4f6; padding: 2px 6px; border-radius: 4px; font-size: 14px;">${1}</code>`},
	{regexp.MustCompile(`(?m)^-\s([^\r\n]+)(\r?)$`), `<li style="margin: 6px 0; color: #4b5563;">${1}</li>${2}`},
}

// listSpan covers everything from the first list item to the last one.
var listSpan = regexp.MustCompile(`(?s)<li[^>]*>.*</li>`)

const listOpen = `<ul style="margin: 10px 0; padding-left: 20px;">`

// RenderHTML converts summary markdown to an HTML fragment with a fixed set of
// substitutions. Anything the rules do not match is left as-is.
func RenderHTML(markdown string) string {
	out := markdown
	for _, r := range rules {
		out = r.re.ReplaceAllString(out, r.repl)
	}

	if loc := listSpan.FindStringIndex(out); loc != nil {
		out = out[:loc[0]] + listOpen + out[loc[0]:loc[1]] + "</ul>" + out[loc[1]:]
	}

	out = strings.ReplaceAll(out, "\n\n", "<br><br>")
	out = strings.ReplaceAll(out, "\n", "<br>")
	return out
}

var (
	textPolicy = bluemonday.StrictPolicy()
	lineBreaks = strings.NewReplacer(
		"<br>", "\n",
		"<li", "- <li",
	)
	blankRuns = regexp.MustCompile(`\n{3,}`)
)

// PlainText derives the text/plain alternative from rendered HTML.
func PlainText(renderedHTML string) string {
	text := textPolicy.Sanitize(lineBreaks.Replace(renderedHTML))
	text = html.UnescapeString(text)
	text = blankRuns.ReplaceAllString(text, "\n\n")
	return strings.TrimSpace(text)
}
