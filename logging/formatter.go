package logging

import (
	"fmt"
	"maps"
	"path/filepath"
	"slices"
	"strings"

	"github.com/grovetools/navcoord/tui/theme"
	"github.com/sirupsen/logrus"
)

const timestampLayout = "2006-01-02 15:04:05"

// TextFormatter renders
//
//	2006-01-02 15:04:05 [INFO] [component] [file.go:12 pkg.Func] message k=v
//
// with the timestamp, component and caller parts optional. Fields are
// sorted by key.
type TextFormatter struct {
	Config FormatConfig
}

func (f *TextFormatter) Format(entry *logrus.Entry) ([]byte, error) {
	parts := make([]string, 0, 5+len(entry.Data))

	if !f.Config.DisableTimestamp {
		parts = append(parts, entry.Time.Format(timestampLayout))
	}
	parts = append(parts, "["+levelTag(entry.Level)+"]")

	if component, ok := entry.Data["component"]; ok && !f.Config.DisableComponent {
		parts = append(parts, "["+theme.DefaultTheme.Accent.Render(fmt.Sprint(component))+"]")
	}
	if entry.HasCaller() {
		parts = append(parts, fmt.Sprintf("[%s:%d %s]",
			filepath.Base(entry.Caller.File), entry.Caller.Line, filepath.Base(entry.Caller.Function)))
	}

	parts = append(parts, entry.Message)
	for _, k := range slices.Sorted(maps.Keys(entry.Data)) {
		if k != "component" {
			parts = append(parts, fmt.Sprintf("%s=%v", k, entry.Data[k]))
		}
	}
	return []byte(strings.Join(parts, " ") + "\n"), nil
}

func levelTag(level logrus.Level) string {
	if level == logrus.WarnLevel {
		return "WARN"
	}
	return strings.ToUpper(level.String())
}
