package handler

import (
	"fmt"
	"html/template"
	"log/slog"
	"net/http"
	"regexp"
	"strconv"
)

// emailRe is deliberately loose: one @ with something on both sides and a dot
// in the domain. The hosted auth service does the real verification.
var emailRe = regexp.MustCompile(`^[^@\s]+@[^@\s]+\.[^@\s]+$`)

func validEmail(s string) bool {
	return emailRe.MatchString(s)
}

func parseIDParam(r *http.Request) (int64, error) {
	return strconv.ParseInt(r.PathValue("id"), 10, 64)
}

func render(logger *slog.Logger, tmpl *template.Template, w http.ResponseWriter, name string, data any) {
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	if err := tmpl.ExecuteTemplate(w, name, data); err != nil {
		logger.Error("render template", "template", name, "error", err)
		http.Error(w, "template error", http.StatusInternalServerError)
	}
}

func renderPartial(logger *slog.Logger, tmpl *template.Template, w http.ResponseWriter, name string, data any) {
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	if err := tmpl.ExecuteTemplate(w, name, data); err != nil {
		logger.Error("render partial", "template", name, "error", err)
		fmt.Fprintf(w, `<div class="alert alert-error">Template error</div>`)
	}
}

// formError renders the inline form-level error partial used by every view.
// HX-Retarget steers the fragment into the page's error slot instead of the
// request's normal swap target.
func formError(logger *slog.Logger, tmpl *template.Template, w http.ResponseWriter, msg string) {
	w.Header().Set("HX-Retarget", "#form-error")
	w.Header().Set("HX-Reswap", "innerHTML")
	renderPartial(logger, tmpl, w, "form-error", map[string]string{"Error": msg})
}
