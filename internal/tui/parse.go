package tui

import (
	"strconv"
	"strings"
)

type menuChoice int

const (
	menuAdd menuChoice = iota + 1
	menuView
	menuEdit
	menuDelete
	menuExit
)

// parseMenuChoice accepts the digits 1 to 5, surrounding spaces allowed.
func parseMenuChoice(s string) (menuChoice, bool) {
	n, err := strconv.Atoi(strings.TrimSpace(s))
	if err != nil || n < int(menuAdd) || n > int(menuExit) {
		return 0, false
	}
	return menuChoice(n), true
}

// parseID accepts a positive decimal record id.
func parseID(s string) (int64, bool) {
	s = strings.TrimSpace(s)
	if s == "" || strings.HasPrefix(s, "+") {
		return 0, false
	}

	id, err := strconv.ParseInt(s, 10, 64)
	if err != nil || id <= 0 {
		return 0, false
	}
	return id, true
}
