package templates

import (
	"fmt"
	"html"
	"strings"
)

// RenderAlertEmail generates the html body of an operational alert. The alert
// text is escaped and its newlines become <br> tags.
func RenderAlertEmail(subject, alert string) string {
	body := strings.ReplaceAll(html.EscapeString(alert), "\n", "<br>")
	safeSubject := html.EscapeString(subject)

	return fmt.Sprintf(`<!DOCTYPE html>
<html>
<head>
  <meta http-equiv="Content-Type" content="text/html; charset=utf-8">
  <title>%s</title>
  <style type="text/css">
    body { font-family: Menlo, Consolas, monospace; margin: 0; padding: 0; background-color: #f4f4f5; }
    .container { max-width: 640px; margin: 0 auto; background-color: #fff; }
    .header { background-color: #b91c1c; padding: 20px 24px; }
    .header h1 { color: #fff; margin: 0; font-size: 18px; }
    .alert { padding: 24px; color: #111827; font-size: 14px; line-height: 1.5; }
  </style>
</head>
<body>
  <div class="container">
    <div class="header">
      <h1>%s</h1>
    </div>
    <div class="alert">
      <p>%s</p>
    </div>
  </div>
</body>
</html>`, safeSubject, safeSubject, body)
}
