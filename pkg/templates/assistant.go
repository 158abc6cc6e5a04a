package templates

import "html/template"

// DefaultAssistantModel is shown when a record leaves Model empty.
const DefaultAssistantModel = "GPT-4"

type assistantMessageVars struct {
	FromUser     bool
	Text         template.HTML
	Code         string
	CodeLanguage string
	Timestamp    string
}

type assistantVars struct {
	Model       string
	IsStreaming bool
	Messages    []assistantMessageVars
}

var assistantTemplate = template.Must(template.New("assistant").Parse(`{{define "assistant-avatar"}}<div class="assistant-avatar" style="width: 30px; height: 30px; border-radius: 50%; background: #10A37F; display: flex; align-items: center; justify-content: center; color: white; font-weight: bold; font-size: 14px;">{{.}}</div>{{end -}}
<div class="template-chatgpt" data-theme="dark" style="font-family: -apple-system, BlinkMacSystemFont, 'Segoe UI', Roboto, sans-serif; background: #343541; min-height: 100%; color: white;">
  <div class="as-header" style="background: #202123; padding: 16px; border-bottom: 1px solid #4A4B53; display: flex; align-items: center; justify-content: space-between;">
    <div style="display: flex; align-items: center; gap: 12px;">
      <div style="width: 32px; height: 32px; background: #10A37F; border-radius: 6px; display: flex; align-items: center; justify-content: center; color: white; font-weight: bold;">C</div>
      <div>
        <div style="font-weight: 600; font-size: 16px;">ChatGPT</div>
        <div class="model" style="font-size: 12px; color: #8E8EA0;">{{.Model}}</div>
      </div>
    </div>
    <div style="display: flex; gap: 16px; color: #8E8EA0;">
      <span style="font-size: 18px;">📝</span>
      <span style="font-size: 18px;">⚙️</span>
      <span style="font-size: 18px;">⋮</span>
    </div>
  </div>
  <div class="as-messages" style="padding: 24px; background: #343541; min-height: 400px;">
    {{- range .Messages}}
    <div class="as-message {{if .FromUser}}from-user{{else}}from-assistant{{end}}" style="display: flex; gap: 16px; margin: 24px 0; align-items: flex-start;">
      {{if .FromUser}}{{template "assistant-avatar" "U"}}{{else}}{{template "assistant-avatar" "C"}}{{end}}
      <div style="flex: 1; max-width: 800px;">
        <div class="as-content" style="font-size: 14px; line-height: 1.6; color: {{if .FromUser}}white{{else}}#ECECF1{{end}};">
          {{- if .CodeLanguage}}
          <div class="code-block" style="background: #1E1E1E; border-radius: 8px; padding: 12px; margin: 8px 0; font-family: 'Monaco', 'Menlo', 'Ubuntu Mono', monospace; font-size: 13px; line-height: 1.4; overflow-x: auto;">
            <div class="code-language" style="color: #CCCCCC; margin-bottom: 8px; font-size: 11px; text-transform: uppercase; letter-spacing: 0.5px;">{{.CodeLanguage}}</div>
            <pre style="margin: 0; color: #E6E6E6;">{{.Code}}</pre>
          </div>
          {{- else}}
          {{.Text}}
          {{- end}}
        </div>
        <div class="as-timestamp" style="font-size: 11px; color: #8E8EA0; margin-top: 8px; opacity: 0.7;">{{.Timestamp}}</div>
      </div>
    </div>
    {{- end}}
    {{- if .IsStreaming}}
    <div class="streaming-indicator" style="display: flex; gap: 16px; margin: 24px 0; align-items: flex-start;">
      {{template "assistant-avatar" "C"}}
      <div style="flex: 1; max-width: 800px;">
        <div style="display: flex; align-items: center; gap: 8px; color: #ECECF1;">
          <div style="width: 4px; height: 4px; background: #10A37F; border-radius: 50%; animation: pulse 1.5s infinite;"></div>
          <div style="width: 4px; height: 4px; background: #10A37F; border-radius: 50%; animation: pulse 1.5s infinite 0.2s;"></div>
          <div style="width: 4px; height: 4px; background: #10A37F; border-radius: 50%; animation: pulse 1.5s infinite 0.4s;"></div>
        </div>
      </div>
    </div>
    {{- end}}
  </div>
  <div class="as-input" style="background: #343541; padding: 24px; border-top: 1px solid #4A4B53;">
    <div style="background: #40414F; border: 1px solid #565869; border-radius: 12px; padding: 12px 16px; display: flex; align-items: center; gap: 12px;">
      <span style="font-size: 18px; color: #8E8EA0;">📎</span>
      <textarea placeholder="Message ChatGPT..." style="border: none; outline: none; background: transparent; color: white; flex: 1; font-size: 14px; resize: none; min-height: 20px; font-family: inherit;" readonly></textarea>
      <span style="font-size: 18px; color: #10A37F;">📤</span>
    </div>
    <div style="font-size: 11px; color: #8E8EA0; text-align: center; margin-top: 8px;">ChatGPT can make mistakes. Consider checking important information.</div>
  </div>
  <style>
    @keyframes pulse {
      0%, 100% { opacity: 1; }
      50% { opacity: 0.3; }
    }
  </style>
</div>
`))

func renderAssistant(rec AssistantRecord) (string, error) {
	vars := assistantVars{
		Model:       orDefault(rec.Model, DefaultAssistantModel),
		IsStreaming: rec.IsStreaming,
		Messages:    make([]assistantMessageVars, 0, len(rec.Messages)),
	}
	for _, m := range rec.Messages {
		mv := assistantMessageVars{
			FromUser:     m.FromUser,
			CodeLanguage: m.CodeLanguage,
			Timestamp:    m.Timestamp,
		}
		// Code is shown verbatim and escaped, never interpreted.
		if m.CodeLanguage != "" {
			mv.Code = m.Text
		} else {
			mv.Text = richText(m.Text)
		}
		vars.Messages = append(vars.Messages, mv)
	}
	return execute(assistantTemplate, vars)
}
