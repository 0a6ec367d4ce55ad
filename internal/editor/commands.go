package editor

import (
	"strings"
	"time"
)

// Slash commands recognized by InsertNewline.
const (
	cmdTask  = "/task"
	cmdToday = "/today"
	cmdNow   = "/now"
)

func isTaskCommand(line string) bool {
	return strings.TrimSpace(line) == cmdTask
}

// expandCommand returns the text that replaces a command line.
func expandCommand(line string, now time.Time) (string, bool) {
	switch strings.TrimSpace(line) {
	case cmdToday:
		return now.Format("2006-01-02"), true
	case cmdNow:
		return now.Format("2006-01-02 15:04"), true
	}
	return "", false
}
