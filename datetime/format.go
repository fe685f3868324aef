package datetime

import (
	"fmt"
	"strconv"
	"strings"
	"time"
)

// DefaultLayout is the FormatDate template used when none is given.
const DefaultLayout = "YYYY-MM-DD"

var layoutTokens = []struct {
	token  string
	render func(time.Time) string
}{
	{"YYYY", func(t time.Time) string { return strconv.Itoa(t.Year()) }},
	{"MM", func(t time.Time) string { return pad2(int(t.Month())) }},
	{"DD", func(t time.Time) string { return pad2(t.Day()) }},
	{"HH", func(t time.Time) string { return pad2(t.Hour()) }},
	{"mm", func(t time.Time) string { return pad2(t.Minute()) }},
	{"ss", func(t time.Time) string { return pad2(t.Second()) }},
}

// FormatDate renders input with a template made of the tokens YYYY, MM, DD,
// HH (24-hour), mm and ss; any other text is copied. Every occurrence of a
// token is replaced. An empty layout selects DefaultLayout.
//
//	FormatDate("2024-03-05T14:07:09", "DD/MM/YYYY HH:mm") // "05/03/2024 14:07"
//
// Unparseable input yields InvalidDate.
func FormatDate(input any, layout string) string {
	t, ok := Parse(input)
	if !ok {
		return InvalidDate
	}
	if layout == "" {
		layout = DefaultLayout
	}

	var b strings.Builder
	b.Grow(len(layout) + 8)
scan:
	for i := 0; i < len(layout); {
		for _, lt := range layoutTokens {
			if strings.HasPrefix(layout[i:], lt.token) {
				b.WriteString(lt.render(t))
				i += len(lt.token)
				continue scan
			}
		}
		b.WriteByte(layout[i])
		i++
	}
	return b.String()
}

func pad2(n int) string {
	return fmt.Sprintf("%02d", n)
}
