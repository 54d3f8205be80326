package cmd

import (
	"github.com/fatih/color"
)

var (
	colorSuccess = color.New(color.FgGreen).SprintFunc()
	colorInfo    = color.New(color.FgCyan).SprintFunc()
	colorError   = color.New(color.FgRed).SprintFunc()
	colorBanner  = color.New(color.FgRed).SprintFunc()
)

func formatStatusWithColor(ok bool, status string) string {
	if ok {
		return colorSuccess(status)
	}
	return colorError(status)
}
