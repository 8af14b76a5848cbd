package rendering

// classicSource is the single-column layout with a centered header and
// accent-colored section rules. Descriptions render preformatted.
const classicSource = `<!DOCTYPE html>
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
    padding: 40px 48px;
    background: #fff;
    font-family: {{.FontStack}};
    font-size: {{.BaseSize}};
    color: #333;
  }
  .header { text-align: center; margin-bottom: 20px; }
  .header h1 {
    font-size: 1.6em;
    font-weight: 700;
    color: {{.Accent}};
    margin: 0 0 6px 0;
    letter-spacing: -0.01em;
  }
  .contact {
    font-size: 0.8em;
    color: #555;
    display: flex;
    justify-content: center;
    flex-wrap: wrap;
    gap: 4px 12px;
  }
  .sec { margin-bottom: 16px; }
  .sec h2 {
    font-size: 0.95em;
    font-weight: 700;
    text-transform: uppercase;
    color: {{.Accent}};
    letter-spacing: 0.05em;
    margin: 0 0 8px 0;
    padding-bottom: 4px;
    border-bottom: 1.5px solid {{.Accent}};
  }
  .entry { margin-bottom: 10px; }
  .entry-head { display: flex; justify-content: space-between; align-items: baseline; }
  .entry-title { font-size: 0.9em; font-weight: 700; }
  .entry-org { font-size: 0.85em; color: #444; }
  .entry-dates { font-size: 0.8em; color: #666; white-space: nowrap; margin-left: 12px; }
  .entry-loc { font-size: 0.8em; color: #666; }
  .desc { font-size: 0.85em; margin-top: 4px; white-space: pre-line; color: #333; }
  .summary { font-size: 0.85em; color: #333; white-space: pre-line; }
  .tags { display: flex; flex-wrap: wrap; gap: 6px; font-size: 0.85em; }
  .tag { padding: 2px 8px; background: #f3f4f6; border-radius: 4px; color: #374151; }
  .proj-head { display: flex; align-items: baseline; gap: 8px; }
  .proj-link { font-size: 0.8em; color: {{.Accent}}; text-decoration: underline; }
  .proj-tags { display: flex; flex-wrap: wrap; gap: 4px; margin-top: 4px; }
  .proj-tag { padding: 1px 7px; background: #f3f4f6; border-radius: 4px; font-size: 0.78em; color: #374151; }
  .ref { margin-bottom: 10px; font-size: 0.85em; }
  .ref-name { font-weight: 600; }
  .ref-line { color: #555; }
</style>
</head>
<body>
<div id="resume-preview" class="page">
  <div class="header">
    <h1>{{if .Contact.FullName}}{{.Contact.FullName}}{{else}}Tu Nombre{{end}}</h1>
    <div class="contact">{{range .Contact.Items}}<span>{{.Value}}</span>{{end}}</div>
  </div>
  {{range .Sections}}
  <div class="sec">
    <h2>{{.Title}}</h2>
    {{if eq .Kind "summary"}}
      <div class="summary">{{inline .SummaryText}}</div>
    {{else if eq .Kind "skills"}}
      <div class="tags">{{range .Skills}}<span class="tag">{{.}}</span>{{end}}</div>
    {{else if eq .Kind "projects"}}
      {{range .Entries}}
      <div class="entry">
        <div class="proj-head">
          <span class="entry-title">{{.Title}}</span>
          {{if .URLText}}<a class="proj-link" href="{{.URLHref}}" target="_blank" rel="noopener noreferrer">{{.URLText}}</a>{{end}}
        </div>
        {{if not .Description.Empty}}<div class="desc">{{inline .Description.Raw}}</div>{{end}}
        {{if .Skills}}<div class="proj-tags">{{range .Skills}}<span class="proj-tag">{{.}}</span>{{end}}</div>{{end}}
      </div>
      {{end}}
    {{else if eq .Kind "references"}}
      {{range .Entries}}
      <div class="ref">
        {{if .Title}}<div class="ref-name">{{.Title}}</div>{{end}}
        {{if .Organization}}<div class="ref-line">{{.Organization}}</div>{{end}}
        {{if .Phone}}<div class="ref-line"><strong>Phone:</strong> {{.Phone}}</div>{{end}}
        {{if .Email}}<div class="ref-line"><strong>Email:</strong> {{.Email}}</div>{{end}}
      </div>
      {{end}}
    {{else}}
      {{range .Entries}}
      <div class="entry">
        <div class="entry-head">
          <div>
            <span class="entry-title">{{.Title}}</span>
            {{if .Organization}}<span class="entry-org"> | {{.Organization}}</span>{{end}}
          </div>
          <div class="entry-dates">{{.DateRange}}</div>
        </div>
        {{if .Location}}<div class="entry-loc">{{.Location}}</div>{{end}}
        {{if not .Description.Empty}}<div class="desc">{{inline .Description.Raw}}</div>{{end}}
      </div>
      {{end}}
    {{end}}
  </div>
  {{end}}
</div>
</body>
</html>
`
