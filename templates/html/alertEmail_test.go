package templates

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRenderAlertEmail(t *testing.T) {
	out := RenderAlertEmail("biit-api <alert>", "Internal Server Error: <boom>\nsecond line")

	assert.Contains(t, out, "<title>biit-api &lt;alert&gt;</title>")
	assert.Contains(t, out, "<p>Internal Server Error: &lt;boom&gt;<br>second line</p>")
	assert.False(t, strings.Contains(out, "<boom>"))
}
