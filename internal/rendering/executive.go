package rendering

// executiveSource is the two-column layout. Sections are partitioned by
// resolved column before the per-type dispatch is applied within each
// column; the right rail carries the contact block. Education entries show
// their title as a single bullet when no description exists, and as a bold
// lead-in line otherwise.
const executiveSource = `<!DOCTYPE html>
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
    padding: 44px 48px;
    background: #fff;
    font-family: {{.FontStack}};
    font-size: {{.BaseSize}};
    color: #2d2d2d;
    display: grid;
    grid-template-columns: 1fr 72mm;
    column-gap: 10mm;
  }
  .name { font-size: 2.4em; font-weight: 700; line-height: 1.08; color: #2d2d2d; margin: 0 0 8px 0; letter-spacing: 0.01em; text-transform: uppercase; }
  .headline { font-size: 0.78em; font-weight: 300; text-transform: uppercase; letter-spacing: 0.22em; color: #777; margin-top: 4px; }
  .sec { margin-bottom: 24px; }
  .sec h2 {
    font-size: 0.78em;
    font-weight: 700;
    text-transform: uppercase;
    letter-spacing: 0.22em;
    color: #3d3d3d;
    margin: 0 0 10px 0;
    padding-bottom: 8px;
    border-bottom: 1px solid #d4d4d4;
  }
  .entry { margin-bottom: 16px; display: flex; gap: 8px; }
  .marker { display: inline-block; width: 8px; height: 8px; background: {{.Accent}}; border-radius: 1px; margin-top: 4px; flex-shrink: 0; }
  .entry-body { flex: 1; }
  .entry-dates { font-size: 0.8em; font-weight: 600; letter-spacing: 0.04em; color: #3d3d3d; text-transform: uppercase; }
  .entry-org { font-size: 0.76em; font-weight: 400; letter-spacing: 0.01em; color: #666; margin-top: 1px; }
  .entry-title { font-size: 0.84em; font-weight: 600; letter-spacing: 0.01em; color: #2d2d2d; margin-top: 5px; }
  .desc { margin-top: 6px; font-size: 0.78em; font-weight: 400; letter-spacing: 0.005em; color: #444; line-height: 1.6; }
  .desc .pre { white-space: pre-line; }
  .li { display: flex; gap: 8px; margin-bottom: 3px; }
  .li span:first-child { flex-shrink: 0; }
  .summary { font-size: 0.8em; font-weight: 400; color: #444; line-height: 1.65; text-align: justify; }
  .contact-item { display: flex; align-items: center; gap: 8px; font-size: 0.76em; color: #444; margin-bottom: 8px; }
  .contact-item .icon { color: #888; width: 14px; text-align: center; }
  .contact-item a { color: {{.Accent}}; text-decoration: underline; }
  .edu { margin-bottom: 12px; }
  .edu-dates { font-size: 0.78em; font-weight: 600; letter-spacing: 0.04em; color: #3d3d3d; }
  .edu-org { font-size: 0.76em; font-weight: 700; letter-spacing: 0.02em; text-transform: uppercase; color: #555; margin-top: 1px; }
  .edu-title { font-weight: 600; margin-bottom: 2px; }
  .edu-body { margin-top: 4px; font-size: 0.76em; color: #444; line-height: 1.55; }
  .edu-body .pre { white-space: pre-line; }
  .edu ul { margin: 4px 0 0 0; padding-left: 16px; list-style-type: disc; font-size: 0.76em; color: #444; line-height: 1.55; }
  .skill-list { margin: 0; padding-left: 16px; list-style-type: disc; font-size: 0.76em; color: #444; line-height: 1.75; }
  .proj-link { font-size: 0.76em; color: {{.Accent}}; text-decoration: underline; display: block; margin-top: 1px; }
  .proj-tags { display: flex; flex-wrap: wrap; gap: 4px; margin-top: 6px; }
  .proj-tag { padding: 1px 7px; font-size: 0.72em; color: #555; background: #f0f0f0; border-radius: 2px; }
  .ref { margin-bottom: 12px; }
  .ref-name { font-size: 0.8em; font-weight: 600; color: #3d3d3d; }
  .ref-org { font-size: 0.76em; color: #555; margin-top: 1px; }
  .ref-line { font-size: 0.76em; color: #444; margin-top: 2px; }
</style>
</head>
<body>
<div id="resume-preview" class="page">
  <div class="col-left">
    <div class="sec">
      <h1 class="name">{{if .Contact.FullName}}{{.Contact.FullName}}{{else}}Tu Nombre{{end}}</h1>
      {{if .Headline}}<div class="headline">{{.Headline}}</div>{{end}}
    </div>
    {{range .Left}}{{template "execSection" .}}{{end}}
  </div>
  <div class="col-right">
    <div class="sec">
      {{range .Contact.Items}}
      <div class="contact-item">
        <span class="icon">{{if eq .Label "phone"}}&#9742;{{else if eq .Label "email"}}&#9993;{{else if eq .Label "location"}}&#9675;{{else if eq .Label "linkedin"}}in{{else}}&#9678;{{end}}</span>
        {{if .Href}}<a href="{{.Href}}" target="_blank" rel="noopener noreferrer">{{.Value}}</a>{{else}}<span>{{.Value}}</span>{{end}}
      </div>
      {{end}}
    </div>
    {{range .Right}}{{template "execSection" .}}{{end}}
  </div>
</div>
</body>
</html>

{{define "execSection"}}
<div class="sec">
  <h2>{{.Title}}</h2>
  {{if eq .Kind "summary"}}
    {{if .SummaryText}}<div class="summary">{{inline .SummaryText}}</div>{{end}}
  {{else if eq .Kind "skills"}}
    {{if .Skills}}<ul class="skill-list">{{range .Skills}}<li>{{.}}</li>{{end}}</ul>{{end}}
  {{else if eq .Kind "references"}}
    {{range .Entries}}
    <div class="ref">
      {{if .Title}}<div class="ref-name">{{.Title}}</div>{{end}}
      {{if .Organization}}<div class="ref-org">{{.Organization}}</div>{{end}}
      {{if .Phone}}<div class="ref-line"><strong>Phone:</strong> {{.Phone}}</div>{{end}}
      {{if .Email}}<div class="ref-line"><strong>Email:</strong> {{.Email}}</div>{{end}}
    </div>
    {{end}}
  {{else if eq .Kind "education"}}
    {{range .Entries}}
    <div class="edu">
      {{if .DateRange}}<div class="edu-dates">{{.DateRange}}</div>{{end}}
      {{if .Organization}}<div class="edu-org">{{.Organization}}</div>{{end}}
      {{if .Description.Empty}}
        {{if .Title}}<ul><li>{{.Title}}</li></ul>{{end}}
      {{else}}
      <div class="edu-body">
        {{if .Title}}<div class="edu-title">{{.Title}}</div>{{end}}
        {{if .Description.Mixed}}
          {{range .Description.Blocks}}
            {{if .Bullet}}<div class="li"><span>&#8226;</span><span>{{.HTML}}</span></div>{{else}}<div>{{.HTML}}</div>{{end}}
          {{end}}
        {{else}}
          <div class="pre">{{.Description.HTML}}</div>
        {{end}}
      </div>
      {{end}}
    </div>
    {{end}}
  {{else if eq .Kind "projects"}}
    {{range .Entries}}
    <div class="entry">
      <span class="marker"></span>
      <div class="entry-body">
        {{if .Title}}<div class="entry-title" style="margin-top: 0;">{{.Title}}</div>{{end}}
        {{if .URLText}}<a class="proj-link" href="{{.URLHref}}" target="_blank" rel="noopener noreferrer">{{.URLText}}</a>{{end}}
        {{if not .Description.Empty}}
        <div class="desc">
          {{if .Description.Mixed}}
            {{range .Description.Blocks}}
              {{if .Bullet}}<div class="li"><span>&#8226;</span><span>{{.HTML}}</span></div>{{else}}<div>{{.HTML}}</div>{{end}}
            {{end}}
          {{else}}
            <div class="pre">{{.Description.HTML}}</div>
          {{end}}
        </div>
        {{end}}
        {{if .Skills}}<div class="proj-tags">{{range .Skills}}<span class="proj-tag">{{.}}</span>{{end}}</div>{{end}}
      </div>
    </div>
    {{end}}
  {{else}}
    {{range .Entries}}
    <div class="entry">
      <span class="marker"></span>
      <div class="entry-body">
        {{if .DateRange}}<div class="entry-dates">{{.DateRange}}</div>{{end}}
        {{if .OrgLine}}<div class="entry-org">{{.OrgLine}}</div>{{end}}
        {{if .Title}}<div class="entry-title">{{.Title}}</div>{{end}}
        {{if not .Description.Empty}}
        <div class="desc">
          {{if .Description.Mixed}}
            {{range .Description.Blocks}}
              {{if .Bullet}}<div class="li"><span>&#8226;</span><span>{{.HTML}}</span></div>{{else}}<div>{{.HTML}}</div>{{end}}
            {{end}}
          {{else}}
            <div class="pre">{{.Description.HTML}}</div>
          {{end}}
        </div>
        {{end}}
      </div>
    </div>
    {{end}}
  {{end}}
</div>
{{end}}
`
