package rendering

// modernSource is the single-column layout with a left-aligned header over a
// heavy accent rule. Bullet lines in descriptions render as list items.
const modernSource = `<!DOCTYPE html>
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
    padding: 36px 44px;
    background: #fff;
    font-family: {{.FontStack}};
    font-size: {{.BaseSize}};
    color: #1a1a1a;
  }
  .header { margin-bottom: 24px; padding-bottom: 16px; border-bottom: 2px solid {{.Accent}}; }
  .header h1 { font-size: 1.8em; font-weight: 700; color: #1a1a1a; margin: 0 0 8px 0; }
  .contact { font-size: 0.8em; color: #555; display: flex; flex-wrap: wrap; gap: 4px 16px; }
  .contact .sep { color: {{.Accent}}; font-weight: 600; margin-right: 4px; }
  .sec { margin-bottom: 18px; }
  .sec h2 {
    font-size: 0.95em;
    font-weight: 700;
    color: #1a1a1a;
    margin: 0 0 8px 0;
    display: flex;
    align-items: center;
    gap: 8px;
  }
  .sec h2::before { content: ""; display: inline-block; width: 18px; height: 3px; background: {{.Accent}}; }
  .entry { margin-bottom: 12px; }
  .entry-head { display: flex; justify-content: space-between; align-items: baseline; }
  .entry-title { font-size: 0.92em; font-weight: 600; }
  .entry-org { font-size: 0.85em; color: {{.Accent}}; font-weight: 600; }
  .entry-dates { font-size: 0.78em; color: #777; white-space: nowrap; margin-left: 12px; }
  .entry-loc { font-size: 0.78em; color: #777; }
  .desc { font-size: 0.85em; margin-top: 4px; color: #333; line-height: 1.5; }
  .desc .pre { white-space: pre-line; }
  .li { display: flex; gap: 8px; margin-bottom: 2px; }
  .li .dot { color: {{.Accent}}; flex-shrink: 0; }
  .summary { font-size: 0.85em; color: #333; white-space: pre-line; line-height: 1.55; }
  .tags { display: flex; flex-wrap: wrap; gap: 6px; font-size: 0.82em; }
  .tag { padding: 2px 10px; border: 1px solid {{.Accent}}; border-radius: 12px; color: {{.Accent}}; }
  .proj-link { font-size: 0.78em; color: {{.Accent}}; text-decoration: underline; }
  .ref { margin-bottom: 10px; font-size: 0.85em; }
  .ref-name { font-weight: 600; }
  .ref-line { color: #555; }
</style>
</head>
<body>
<div id="resume-preview" class="page">
  <div class="header">
    <h1>{{if .Contact.FullName}}{{.Contact.FullName}}{{else}}Tu Nombre{{end}}</h1>
    <div class="contact">{{range .Contact.Items}}<span><span class="sep">|</span>{{.Value}}</span>{{end}}</div>
  </div>
  {{range .Sections}}
  <div class="sec">
    <h2>{{.Title}}</h2>
    {{if eq .Kind "summary"}}
      <div class="summary">{{inline .SummaryText}}</div>
    {{else if eq .Kind "skills"}}
      <div class="tags">{{range .Skills}}<span class="tag">{{.}}</span>{{end}}</div>
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
            {{if .Organization}}<span class="entry-org"> · {{.Organization}}</span>{{end}}
            {{if .URLText}}<a class="proj-link" href="{{.URLHref}}" target="_blank" rel="noopener noreferrer">{{.URLText}}</a>{{end}}
          </div>
          <div class="entry-dates">{{.DateRange}}</div>
        </div>
        {{if .Location}}<div class="entry-loc">{{.Location}}</div>{{end}}
        {{if not .Description.Empty}}
        <div class="desc">
          {{if .Description.Mixed}}
            {{range .Description.Blocks}}
              {{if .Bullet}}<div class="li"><span class="dot">•</span><span>{{.HTML}}</span></div>{{else}}<div>{{.HTML}}</div>{{end}}
            {{end}}
          {{else}}
            <div class="pre">{{.Description.HTML}}</div>
          {{end}}
        </div>
        {{end}}
        {{if .Skills}}<div class="tags" style="margin-top: 4px;">{{range .Skills}}<span class="tag">{{.}}</span>{{end}}</div>{{end}}
      </div>
      {{end}}
    {{end}}
  </div>
  {{end}}
</div>
</body>
</html>
`
