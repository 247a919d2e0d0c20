// templates.go
package main

import (
	"fmt"
	"html/template"
)

var templateFuncs = template.FuncMap{
	"add": func(a, b int) int { return a + b },
	"containsField": func(fields []string, name string) bool {
		for _, f := range fields {
			if f == name {
				return true
			}
		}
		return false
	},
	"formatSize": func(size int64) string {
		const unit = 1024
		if size < unit {
			return fmt.Sprintf("%d B", size)
		}
		div, exp := int64(unit), 0
		for n := size / unit; n >= unit; n /= unit {
			div *= unit
			exp++
		}
		return fmt.Sprintf("%.1f %cB", float64(size)/float64(div), "KMGTPE"[exp])
	},
	"formatNumber": func(f float64) string {
		return fmt.Sprintf("%.4g", f)
	},
}

const tmplBase = `
{{define "base"}}<!DOCTYPE html>
<html lang="en">
<head>
<meta charset="UTF-8">
<meta name="viewport" content="width=device-width,initial-scale=1">
<title>csvplot</title>
<style>
*{box-sizing:border-box;margin:0;padding:0}
body{font-family:-apple-system,'Segoe UI',sans-serif;background:#f6f8fa;color:#24292f;font-size:14px;line-height:1.5}
a{color:#0969da;text-decoration:none}
a:hover{text-decoration:underline}
nav{background:#fff;border-bottom:1px solid #d0d7de;padding:10px 20px;display:flex;gap:16px;align-items:center}
nav .brand{font-weight:700;font-size:16px;margin-right:8px}
main{padding:20px;max-width:1100px;margin:0 auto}
h1{font-size:18px;margin-bottom:14px}
.card{background:#fff;border:1px solid #d0d7de;border-radius:6px;padding:16px;margin-bottom:16px}
.error{background:#ffebe9;border:1px solid #ff818266;border-radius:6px;color:#cf222e;padding:10px 14px;margin-bottom:16px}
table{width:100%;border-collapse:collapse;font-size:13px}
th{text-align:left;padding:6px 10px;border-bottom:1px solid #d0d7de;color:#57606a;font-weight:600}
td{padding:6px 10px;border-bottom:1px solid #eaeef2;vertical-align:middle}
select{padding:3px 6px;border:1px solid #d0d7de;border-radius:4px}
.btn{display:inline-block;background:#2da44e;color:#fff;border:0;border-radius:6px;padding:8px 18px;font-size:14px;cursor:pointer}
.btn:hover{background:#2c974b}
.btn-link{background:#fff;color:#24292f;border:1px solid #d0d7de}
.dim{color:#57606a;font-size:12px}
.chart-frame{width:100%;height:78vh;border:1px solid #d0d7de;border-radius:6px;background:#fff}
.full-frame{position:fixed;inset:0;width:100%;height:100%;border:0;background:#fff}
.exit-full{position:fixed;top:10px;right:16px;z-index:10;background:#24292f;color:#fff;padding:6px 14px;border-radius:6px}
.exit-full:hover{text-decoration:none;background:#57606a}
</style>
</head>
<body>
{{template "content" .}}
</body>
</html>{{end}}`

const tmplUpload = `
{{define "content"}}
<nav><span class="brand">csvplot</span></nav>
<main>
<h1>Upload a data file</h1>
{{if .Error}}<div class="error">{{.Error}}</div>{{end}}
<div class="card">
<form action="/upload" method="POST" enctype="multipart/form-data">
<p>Pick a .csv, .xlsx or .xls file. The first row is read as field names.</p>
<p style="margin:12px 0"><input type="file" name="file" accept=".csv,.xlsx,.xls" required></p>
<button class="btn" type="submit">Upload</button>
</form>
</div>
</main>
{{end}}`

const tmplFields = `
{{define "content"}}
<nav>
<span class="brand">csvplot</span>
<a href="/">New upload</a>
{{if .HasSeries}}<a href="/chart">Back to chart</a>{{end}}
</nav>
<main>
<h1>{{.FileName}} <span class="dim">({{formatSize .FileSize}}, {{.RowCount}} rows)</span></h1>
{{if .Error}}<div class="error">{{.Error}}</div>{{end}}
<form action="/generate" method="POST">
<div class="card">
<table>
<tr>
<th>X</th><th>Y</th><th>Field</th><th>Scale</th>
<th>Numeric cells</th><th>Min</th><th>Max</th><th>Mean</th><th>Max |value|</th>
</tr>
{{range .Summaries}}
<tr>
<td><input type="radio" name="xfield" value="{{.Name}}"{{if eq $.Selection.XField .Name}} checked{{end}}></td>
<td><input type="checkbox" name="yfields" value="{{.Name}}"{{if containsField $.Selection.YFields .Name}} checked{{end}}></td>
<td>{{.Name}}</td>
<td>
<select name="scale_{{.Name}}">
{{$cur := index $.Selection.Scales .Name}}
{{range $.Factors}}<option value="{{.}}"{{if eq . $cur}} selected{{end}}>{{.}}</option>{{end}}
</select>
</td>
<td>{{.Count}}</td>
<td>{{if .Count}}{{formatNumber .Min}}{{else}}&mdash;{{end}}</td>
<td>{{if .Count}}{{formatNumber .Max}}{{else}}&mdash;{{end}}</td>
<td>{{if .Count}}{{formatNumber .Mean}}{{else}}&mdash;{{end}}</td>
<td>{{if .Count}}{{formatNumber .MaxAbs}}{{else}}&mdash;{{end}}</td>
</tr>
{{end}}
</table>
</div>
<div class="card">
<label>X axis scale:
<select name="xscale">
{{range .Factors}}<option value="{{.}}"{{if eq . $.Selection.XScale}} selected{{end}}>{{.}}</option>{{end}}
</select>
</label>
<button class="btn" type="submit" style="margin-left:16px">Generate</button>
</div>
</form>
</main>
{{end}}`

const tmplChart = `
{{define "content"}}
<nav>
<span class="brand">csvplot</span>
<a href="/fields">Select fields again</a>
<a href="/chart/full">Full screen</a>
<a href="/export.png">Download PNG</a>
</nav>
<main>
<iframe class="chart-frame" src="/chart/embed" title="{{.FileName}}"></iframe>
</main>
{{end}}`

const tmplFullScreen = `
{{define "content"}}
<a class="exit-full" href="/chart/exit">Exit full screen</a>
<iframe class="full-frame" src="/chart/embed" title="{{.FileName}}"></iframe>
{{end}}`

func mustPage(name, content string) *template.Template {
	t := template.Must(template.New(name).Funcs(templateFuncs).Parse(tmplBase))
	return template.Must(t.Parse(content))
}

var (
	uploadTemplate     = mustPage("upload", tmplUpload)
	fieldsTemplate     = mustPage("fields", tmplFields)
	chartTemplate      = mustPage("chart", tmplChart)
	fullScreenTemplate = mustPage("fullscreen", tmplFullScreen)
)
