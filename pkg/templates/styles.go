package templates

// Stylesheet styles the class based variants (post, banner, chat, popup).
// The chat-style variants carry inline styles and ignore it.
const Stylesheet = `
:root, [data-theme="light"] {
  --bg-primary: #ffffff;
  --bg-secondary: #f7f9f9;
  --text-primary: #0f1419;
  --text-secondary: #536471;
  --border: #eff3f4;
  --accent: #1d9bf0;
  --tag-bg: #e8f5fd;
  --tag-text: #1d9bf0;
  --danger: #f4212e;
}
[data-theme="dark"] {
  --bg-primary: #000000;
  --bg-secondary: #16181c;
  --text-primary: #e7e9ea;
  --text-secondary: #71767b;
  --border: #2f3336;
  --accent: #1d9bf0;
  --tag-bg: #0a2a40;
  --tag-text: #8ecdf8;
  --danger: #f4212e;
}
* { box-sizing: border-box; }
body {
  margin: 0;
  font-family: -apple-system, BlinkMacSystemFont, "Segoe UI", Roboto, Helvetica, Arial, sans-serif;
}
.template-xpost, .template-banner, .template-chat, .template-popup {
  background: var(--bg-primary);
  color: var(--text-primary);
  padding: 24px;
  width: 100%;
  min-height: 100%;
}
.header { display: flex; align-items: center; gap: 12px; }
.avatar {
  width: 48px;
  height: 48px;
  border-radius: 50%;
  object-fit: cover;
  flex-shrink: 0;
}
.avatar-fallback {
  display: flex;
  align-items: center;
  justify-content: center;
  background: var(--accent);
  color: #ffffff;
  font-weight: 700;
  font-size: 20px;
}
.avatar-img + .avatar-fallback { display: none; }
.user-info { flex: 1; min-width: 0; }
.name { font-weight: 700; font-size: 17px; }
.handle { color: var(--text-secondary); font-size: 15px; }
.verified-badge {
  width: 20px;
  height: 20px;
  border-radius: 50%;
  background: var(--accent);
  color: #ffffff;
  font-size: 12px;
  display: flex;
  align-items: center;
  justify-content: center;
}
.tag {
  display: inline-block;
  margin: 12px 0 4px;
  padding: 2px 10px;
  border-radius: 999px;
  background: var(--tag-bg);
  color: var(--tag-text);
  font-weight: 700;
  font-size: 14px;
}
.content { font-size: 23px; line-height: 1.35; margin: 12px 0; white-space: pre-wrap; }
.footer { border-top: 1px solid var(--border); padding-top: 12px; }
.time { color: var(--text-secondary); font-size: 15px; }
.stats { display: flex; gap: 24px; margin-top: 12px; color: var(--text-secondary); font-size: 15px; }
.stat { display: flex; align-items: center; gap: 6px; }
.template-banner { border-left: 8px solid var(--danger); }
.template-banner .headline { font-size: 28px; font-weight: 800; margin: 8px 0; }
.template-banner .text { font-size: 20px; line-height: 1.4; }
.template-banner .time { margin-top: 12px; }
.template-chat .sender { font-weight: 700; font-size: 16px; }
.template-chat .message {
  margin-top: 12px;
  padding: 12px 16px;
  border-radius: 18px;
  background: var(--bg-secondary);
  font-size: 17px;
  line-height: 1.4;
}
.template-chat .time { margin-top: 6px; font-size: 12px; }
.template-popup {
  border: 1px solid var(--border);
  border-radius: 14px;
  box-shadow: 0 12px 40px rgba(0, 0, 0, 0.2);
}
.template-popup .title { font-size: 20px; font-weight: 700; margin-bottom: 8px; }
.template-popup .body { font-size: 16px; line-height: 1.45; margin: 8px 0 20px; }
.template-popup .buttons { display: flex; gap: 10px; justify-content: flex-end; }
.btn {
  border: 1px solid var(--border);
  border-radius: 8px;
  padding: 8px 18px;
  font-size: 15px;
  background: var(--bg-secondary);
  color: var(--text-primary);
}
.btn.primary { background: var(--accent); border-color: var(--accent); color: #ffffff; }
`
