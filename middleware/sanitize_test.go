package middleware

import (
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSanitizeValue(t *testing.T) {
	cases := []struct {
		in   string
		want string
	}{
		{`hello <script>alert(1)</script> world`, `hello  world`},
		{`<SCRIPT src="x.js"></SCRIPT>text`, `text`},
		{`<script>unclosed`, `unclosed`},
		{`click javascript:alert(1)`, `click alert(1)`},
		{`<img src=x onerror="alert(1)">`, `<img src=x >`},
		{`<a onclick='do()'>x</a>`, `<a >x</a>`},
		{`plain description`, `plain description`},
	}
	for _, tc := range cases {
		assert.Equal(t, tc.want, SanitizeValue(tc.in), "input %q", tc.in)
	}
}

func TestSanitizeInput_RewritesFormForDownstream(t *testing.T) {
	gin.SetMode(gin.TestMode)
	r := gin.New()

	var seen string
	r.POST("/hotels", SanitizeInput(), func(c *gin.Context) {
		seen = c.PostForm("description")
		c.Status(http.StatusOK)
	})

	form := url.Values{"description": {`nice view <script>steal()</script> indeed`}}
	req := httptest.NewRequest(http.MethodPost, "/hotels", strings.NewReader(form.Encode()))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "nice view  indeed", seen)
	assert.NotContains(t, seen, "script")
}

func TestSanitizeInput_RunsBeforeValidation(t *testing.T) {
	gin.SetMode(gin.TestMode)
	r := gin.New()

	var seen string
	r.POST("/hotels", SanitizeInput(), ValidateHotelPayload(), func(c *gin.Context) {
		seen = c.PostForm("name")
		c.Status(http.StatusOK)
	})

	form := validForm()
	form.Set("name", `Taj <script>x</script>Palace`)
	req := httptest.NewRequest(http.MethodPost, "/hotels", strings.NewReader(form.Encode()))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "Taj Palace", seen)
}
