package web

import (
	"html/template"
	"strings"

	"github.com/tasknest/tasknest/task"
)

func newTemplates() *template.Template {
	funcs := template.FuncMap{
		"statusClass": func(status task.Status) string {
			return "status-" + strings.ToLower(string(status))
		},
	}
	return template.Must(template.New("page").Funcs(funcs).Parse(pageTemplate))
}

const pageTemplate = `<!doctype html>
<html lang="en">
<head>
  <meta charset="utf-8">
  <meta name="viewport" content="width=device-width, initial-scale=1">
  <title>Tasknest</title>
  <style>
    :root {
      color-scheme: light;
    }
    body {
      margin: 0;
      font-family: "Avenir Next", "Segoe UI", sans-serif;
      color: #22303c;
      background: linear-gradient(160deg, #eef3f1 0%, #f8faf9 45%, #edf1f4 100%);
    }
    header {
      padding: 14px 24px;
      border-bottom: 1px solid #c9d4d0;
      background: rgba(255, 255, 255, 0.8);
    }
    header h1 {
      margin: 0 0 10px 0;
      font-size: 20px;
      letter-spacing: 0.03em;
    }
    .tabs {
      display: flex;
      gap: 10px;
    }
    .tab {
      padding: 7px 14px;
      border-radius: 999px;
      text-decoration: none;
      color: #53625e;
      border: 1px solid transparent;
    }
    .tab.active {
      color: #12211c;
      border-color: #b9c9c2;
      background: #e7efeb;
      font-weight: 600;
    }
    main {
      display: flex;
      gap: 18px;
      padding: 18px 24px 28px;
    }
    .pane {
      background: #ffffff;
      border: 1px solid #c9d4d0;
      border-radius: 12px;
      box-shadow: 0 6px 20px rgba(30, 50, 45, 0.08);
    }
    .list-pane {
      width: 42%;
      min-width: 280px;
      padding: 16px;
      display: flex;
      flex-direction: column;
      gap: 12px;
    }
    .detail-pane {
      flex: 1;
      padding: 18px 22px 22px;
    }
    .list-actions {
      display: flex;
      justify-content: space-between;
      align-items: center;
      gap: 12px;
    }
    .button-link {
      display: inline-block;
      padding: 6px 12px;
      border-radius: 8px;
      border: 1px solid #b0c2bb;
      background: #eaf2ee;
      text-decoration: none;
      color: #22303c;
      font-size: 14px;
    }
    .item-list {
      list-style: none;
      padding: 0;
      margin: 0;
      display: flex;
      flex-direction: column;
      gap: 6px;
      overflow-y: auto;
    }
    .list-item a {
      display: block;
      padding: 8px 12px;
      border-radius: 9px;
      border: 1px solid transparent;
      text-decoration: none;
      color: inherit;
    }
    .list-item.active a {
      border-color: #a8bcb4;
      background: #eef4f1;
    }
    .item-title {
      font-weight: 600;
      display: block;
    }
    .item-meta {
      color: #6a7a75;
      font-size: 12px;
    }
    .summary {
      display: flex;
      flex-wrap: wrap;
      gap: 10px;
      padding-top: 10px;
      border-top: 1px solid #dbe4e0;
      font-size: 13px;
      color: #53625e;
    }
    .summary-item.total {
      font-weight: 600;
      color: #22303c;
    }
    .field {
      display: flex;
      flex-direction: column;
      gap: 6px;
      margin-bottom: 12px;
    }
    select,
    textarea {
      width: 100%;
      padding: 8px 10px;
      border-radius: 8px;
      border: 1px solid #b0c2bb;
      font-family: inherit;
      font-size: 14px;
      background: #fcfdfc;
      box-sizing: border-box;
    }
    textarea {
      min-height: 110px;
      resize: vertical;
    }
    .actions {
      display: flex;
      flex-wrap: wrap;
      gap: 10px;
      margin-top: 14px;
    }
    button {
      padding: 8px 14px;
      border-radius: 8px;
      border: 1px solid #9fb4ac;
      background: #dfeae4;
      font-family: inherit;
      cursor: pointer;
    }
    .readonly {
      display: grid;
      grid-template-columns: 110px 1fr;
      gap: 6px 12px;
      font-size: 14px;
      margin: 14px 0 10px;
    }
    .readonly dt {
      font-weight: 600;
      color: #46554f;
    }
    .readonly dd {
      margin: 0;
    }
    .description {
      white-space: pre-wrap;
      margin: 10px 0 4px;
    }
    .error {
      padding: 10px 12px;
      border-radius: 8px;
      background: #f6dcd8;
      border: 1px solid #d9a49c;
      margin-bottom: 12px;
      color: #5e1f16;
    }
    .muted {
      color: #6a7a75;
    }
    .badge {
      display: inline-block;
      padding: 2px 10px;
      border-radius: 999px;
      font-size: 12px;
      font-weight: 600;
      background: #e6ece9;
    }
    .status-active {
      color: #1d6b3a;
    }
    .status-completed {
      color: #1f4e8a;
    }
    .status-abandoned {
      color: #96352b;
    }
    .status-clear {
      color: #75706a;
    }
    @media (max-width: 900px) {
      main {
        flex-direction: column;
      }
      .list-pane {
        width: auto;
      }
    }
  </style>
</head>
<body>
  <header>
    <h1>Tasknest</h1>
    <nav class="tabs">
      {{range .Views}}
        <a class="tab {{if .Selected}}active{{end}}" href="/web/tasks?view={{.Name}}">{{.Label}}</a>
      {{end}}
    </nav>
  </header>
  <main>
    <section class="pane list-pane">
      <div class="list-actions">
        <strong>Tasks</strong>
        <a class="button-link" href="/web/tasks?view={{.View}}&amp;create=1">Create</a>
      </div>
      <ul class="item-list">
        {{range .Tasks}}
          <li class="list-item {{if eq .ID $.SelectedTaskID}}active{{end}}">
            <a href="/web/tasks?view={{$.View}}&amp;id={{.ID}}" style="padding-left: {{.PaddingLeft}}px">
              <span class="item-title">{{.Description}}</span>
              <span class="item-meta">#{{.ID}} · <span class="{{statusClass .Status}}">{{.Status}}</span></span>
            </a>
          </li>
        {{else}}
          <li class="muted">No tasks in this view.</li>
        {{end}}
      </ul>
      {{if .Summary}}
        <div class="summary">
          {{range .Summary}}<span class="summary-item">{{.Status}}: {{.Count}}</span>{{end}}
          <span class="summary-item total">Total: {{.Total}}</span>
        </div>
      {{end}}
    </section>
    <section class="pane detail-pane">
      {{if .TaskError}}<div class="error">{{.TaskError}}</div>{{end}}
      {{if .Create}}
        <h2>Create Task</h2>
        <form method="post" action="/web/tasks/create?view={{.View}}">
          <div class="field">
            <label for="task-description">Description</label>
            <textarea id="task-description" name="description" required>{{.TaskForm.Description}}</textarea>
          </div>
          <div class="field">
            <label for="task-parent">Parent</label>
            <select id="task-parent" name="parent_id">
              {{range .ParentOptions}}
                <option value="{{.Value}}" {{if eq .Value $.TaskForm.ParentID}}selected{{end}}>{{.Label}}</option>
              {{end}}
            </select>
          </div>
          <div class="actions">
            <button type="submit">Create task</button>
          </div>
        </form>
      {{else if .SelectedTask}}
        <h2>Task #{{.SelectedTask.ID}}</h2>
        <p class="description">{{.SelectedTask.Description}}</p>
        <dl class="readonly">
          <dt>Status</dt><dd><span class="badge {{statusClass .SelectedTask.Status}}">{{.SelectedTask.Status}}</span></dd>
          <dt>Depth</dt><dd>{{.SelectedTask.Depth}}</dd>
        </dl>
        <form method="post" action="/web/tasks/update?view={{.View}}&amp;id={{.SelectedTask.ID}}">
          <div class="field">
            <label for="task-status">Status</label>
            <select id="task-status" name="status">
              {{range .StatusOptions}}
                <option value="{{.Value}}" {{if eq .Value $.TaskForm.Status}}selected{{end}}>{{.Label}}</option>
              {{end}}
            </select>
          </div>
          <div class="actions">
            <button type="submit">Save status</button>
          </div>
        </form>
      {{else}}
        <p class="muted">No task selected.</p>
      {{end}}
    </section>
  </main>
</body>
</html>
`
