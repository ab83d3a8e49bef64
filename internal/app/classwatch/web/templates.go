package web

import (
	"html/template"
	"strings"
)

const indexTemplate = `<!DOCTYPE html>
<html lang="en">
<head>
<meta charset="utf-8">
<title>Class Seat Alerts</title>
<style>
body { font-family: sans-serif; max-width: 48rem; margin: 2rem auto; }
li { padding: .25rem 0; }
.open { color: #15803d; font-weight: bold; }
.error { color: #b91c1c; }
</style>
</head>
<body>
<h1>Class Seat Alerts</h1>
<p>{{ .TermName }} ({{ .Term }})</p>
{{ if .Statuses }}
<ul>
{{ range .Statuses }}<li class="{{ statusClass . }}">{{ . }}</li>
{{ end }}</ul>
{{ else }}
<p>No whitelisted sections found.</p>
{{ end }}
</body>
</html>`

var indexPage = template.Must(template.New("index").Funcs(template.FuncMap{
	"statusClass": statusClass,
}).Parse(indexTemplate))

func statusClass(line string) string {
	switch {
	case strings.HasPrefix(line, "OPEN SEAT"):
		return "open"
	case strings.HasPrefix(line, "Error fetching data"):
		return "error"
	}
	return ""
}
