package middleware

import (
	"regexp"

	"github.com/gin-gonic/gin"
)

// Patterns stripped from every string form value before validation or
// any handler sees the body.
var (
	scriptBlockRe = regexp.MustCompile(`(?is)<script\b[^>]*>.*?</script\s*>`)
	scriptTagRe   = regexp.MustCompile(`(?i)</?script\b[^>]*>`)
	jsURIRe       = regexp.MustCompile(`(?i)javascript\s*:`)
	eventAttrRe   = regexp.MustCompile(`(?i)\bon\w+\s*=\s*("[^"]*"|'[^']*'|[^\s>]+)`)
)

// SanitizeValue strips script tags, javascript: URIs and inline event
// handlers from one form value.
func SanitizeValue(v string) string {
	v = scriptBlockRe.ReplaceAllString(v, "")
	v = scriptTagRe.ReplaceAllString(v, "")
	v = jsURIRe.ReplaceAllString(v, "")
	v = eventAttrRe.ReplaceAllString(v, "")
	return v
}

// SanitizeInput rewrites every string field of the form body in place.
// Runs before validation so no downstream reader ever sees raw input.
func SanitizeInput() gin.HandlerFunc {
	return func(c *gin.Context) {
		// Parse whichever body shape the request carries; gin reuses
		// the parsed form afterwards, so in-place edits stick.
		if err := c.Request.ParseMultipartForm(32 << 20); err != nil {
			_ = c.Request.ParseForm()
		}

		for key, vals := range c.Request.PostForm {
			for i := range vals {
				vals[i] = SanitizeValue(vals[i])
			}
			c.Request.PostForm[key] = vals
		}
		if c.Request.MultipartForm != nil {
			for key, vals := range c.Request.MultipartForm.Value {
				for i := range vals {
					vals[i] = SanitizeValue(vals[i])
				}
				c.Request.MultipartForm.Value[key] = vals
			}
		}

		c.Next()
	}
}
