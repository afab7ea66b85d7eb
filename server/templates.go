package server

import (
	"fmt"
	"html/template"
	"strings"
	"time"
	"unicode/utf8"
)

func firstRune(s string) string {
	r, _ := utf8.DecodeRuneInString(s)
	return string(r)
}

var templateFuncs = template.FuncMap{
	"formatDate": func(t time.Time) string {
		return t.Format("Mon, Jan 2 2006")
	},
	"formatTime": func(t time.Time) string {
		return t.Format("15:04")
	},
	"formatDateTime": func(t time.Time) string {
		return t.Format("Jan 2 2006, 15:04 MST")
	},
	"percent": func(current int, target int) int {
		if target <= 0 {
			return 0
		}
		p := current * 100 / target
		if p > 100 {
			p = 100
		}
		return p
	},
	"join": func(parts []string, sep string) string {
		return strings.Join(parts, sep)
	},
	"initials": func(name string) string {
		fields := strings.Fields(name)
		if len(fields) == 0 {
			return "?"
		}
		initials := firstRune(fields[0])
		if len(fields) > 1 {
			initials += firstRune(fields[len(fields)-1])
		}
		return strings.ToUpper(initials)
	},
	"plural": func(count int, singular string) string {
		if count == 1 {
			return fmt.Sprintf("%d %s", count, singular)
		}
		return fmt.Sprintf("%d %ss", count, singular)
	},
}
