package rendering

// cleanSource is the minimal whitespace-led layout: muted uppercase section
// labels, no rules, dot-separated contact line.
const cleanSource = `<!DOCTYPE html>
<html>
<head>
<meta charset="utf-8">
<title>{{.Title}}</title>
<style>
  html, body { margin: 0; padding: 0; }
  .page {
    width: {{.PageWidth}};
    min-height: {{.PageMinH}};
    box-sizing: border-box;
    margin: 0 auto;
    padding: 48px 52px;
    background: #fff;
    font-family: {{.FontStack}};
    font-size: {{.BaseSize}};
    color: #1a1a1a;
  }
  .header { margin-bottom: 24px; }
  .header h1 { font-size: 1.5em; font-weight: 400; color: #1a1a1a; margin: 0 0 6px 0; letter-spacing: 0.02em; }
  .contact { font-size: 0.8em; color: #666; display: flex; flex-wrap: wrap; gap: 4px 10px; }
  .contact .dot { color: #ccc; }
  .sec { margin-bottom: 20px; }
  .sec h2 {
    font-size: 0.85em;
    font-weight: 600;
    text-transform: uppercase;
    color: #999;
    letter-spacing: 0.08em;
    margin: 0 0 8px 0;
  }
  .entry { margin-bottom: 12px; }
  .entry-title { font-size: 0.9em; font-weight: 600; }
  .entry-meta { font-size: 0.8em; color: #666; margin-top: 1px; }
  .desc { font-size: 0.85em; margin-top: 4px; color: #444; line-height: 1.55; }
  .desc .pre { white-space: pre-line; }
  .li { display: flex; gap: 8px; margin-bottom: 2px; }
  .summary { font-size: 0.85em; color: #444; white-space: pre-line; line-height: 1.6; }
  .skills { font-size: 0.85em; color: #444; line-height: 1.6; }
  .proj-skills { font-size: 0.78em; color: #999; margin-top: 3px; }
  .link { font-size: 0.8em; color: {{.Accent}}; text-decoration: none; border-bottom: 1px solid {{.Accent}}; }
  .ref { margin-bottom: 10px; font-size: 0.85em; }
  .ref-name { font-weight: 600; }
  .ref-line { color: #666; }
</style>
</head>
<body>
<div id="resume-preview" class="page">
  <div class="header">
    <h1>{{if .Contact.FullName}}{{.Contact.FullName}}{{else}}Tu Nombre{{end}}</h1>
    <div class="contact">{{range $i, $item := .Contact.Items}}{{if $i}}<span class="dot">·</span>{{end}}<span>{{$item.Value}}</span>{{end}}</div>
  </div>
  {{range .Sections}}
  <div class="sec">
    <h2>{{.Title}}</h2>
    {{if eq .Kind "summary"}}
      <div class="summary">{{inline .SummaryText}}</div>
    {{else if eq .Kind "skills"}}
      <div class="skills">{{range $i, $s := .Skills}}{{if $i}} · {{end}}{{$s}}{{end}}</div>
    {{else if eq .Kind "projects"}}
      {{range .Entries}}
      <div class="entry">
        <div class="entry-title">{{.Title}}{{if .URLText}} <a class="link" href="{{.URLHref}}" target="_blank" rel="noopener noreferrer">{{.URLText}}</a>{{end}}</div>
        {{if not .Description.Empty}}<div class="desc">{{inline .Description.Raw}}</div>{{end}}
        {{if .Skills}}<div class="proj-skills">{{range $i, $s := .Skills}}{{if $i}} · {{end}}{{$s}}{{end}}</div>{{end}}
      </div>
      {{end}}
    {{else if eq .Kind "references"}}
      {{range .Entries}}
      <div class="ref">
        {{if .Title}}<div class="ref-name">{{.Title}}</div>{{end}}
        {{if .Organization}}<div class="ref-line">{{.Organization}}</div>{{end}}
        {{if .Phone}}<div class="ref-line">Phone: {{.Phone}}</div>{{end}}
        {{if .Email}}<div class="ref-line">Email: {{.Email}}</div>{{end}}
      </div>
      {{end}}
    {{else}}
      {{range .Entries}}
      <div class="entry">
        <div class="entry-title">{{.Title}}{{if .URLText}} <a class="link" href="{{.URLHref}}" target="_blank" rel="noopener noreferrer">{{.URLText}}</a>{{end}}</div>
        {{if or .OrgLine .DateRange}}
        <div class="entry-meta">{{.OrgLine}}{{if and .OrgLine .DateRange}} · {{end}}{{.DateRange}}</div>
        {{end}}
        {{if not .Description.Empty}}
        <div class="desc">
          {{if .Description.Mixed}}
            {{range .Description.Blocks}}
              {{if .Bullet}}<div class="li"><span>–</span><span>{{.HTML}}</span></div>{{else}}<div>{{.HTML}}</div>{{end}}
            {{end}}
          {{else}}
            <div class="pre">{{.Description.HTML}}</div>
          {{end}}
        </div>
        {{end}}
      </div>
      {{end}}
    {{end}}
  </div>
  {{end}}
</div>
</body>
</html>
`
