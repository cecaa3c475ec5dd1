package handlers

import (
	"context"
	"net/http"
	"sort"

	"github.com/gin-gonic/gin"

	"storefront/internal/shop"
)

const confirmField = "confirm"

// formConfirmer answers confirmations from the posted confirm field. With
// no answer yet it records the prompt so the handler can ask.
type formConfirmer struct {
	c       *gin.Context
	pending *shop.Prompt
}

func (f *formConfirmer) Confirm(_ context.Context, prompt shop.Prompt) bool {
	switch f.c.PostForm(confirmField) {
	case "yes":
		return true
	case "no":
		return false
	}
	f.pending = &prompt
	return false
}

type hiddenField struct {
	Name  string
	Value string
}

// renderConfirm shows a page that re-posts the current form with
// confirm=yes, or returns to back.
func renderConfirm(c *gin.Context, prompt shop.Prompt, back string) {
	_ = c.Request.ParseForm()

	var fields []hiddenField
	for name, values := range c.Request.PostForm {
		if name == confirmField {
			continue
		}
		for _, v := range values {
			fields = append(fields, hiddenField{Name: name, Value: v})
		}
	}

	sort.Slice(fields, func(i, j int) bool { return fields[i].Name < fields[j].Name })

	c.HTML(http.StatusOK, "confirm.html", gin.H{
		"Prompt": prompt,
		"Action": c.Request.URL.Path,
		"Fields": fields,
		"Back":   back,
	})
}
