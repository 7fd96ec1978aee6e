package except

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/fatih/color"
)

const bannerRule = "====================================="

// WriteBanner writes msg framed as an error banner.
func WriteBanner(w io.Writer, msg string) {
	title := color.New(color.FgRed, color.Bold)
	fmt.Fprintln(w, bannerRule)
	title.Fprintln(w, "                ERROR                ")
	fmt.Fprintln(w, strings.Repeat("-", len(bannerRule)))
	fmt.Fprintln(w, strings.TrimRight(msg, "\n"))
	fmt.Fprintln(w, bannerRule)
}

// Die prints msg to stderr and exits with status 1.
func Die(msg string) {
	WriteBanner(color.Error, msg)
	os.Exit(1)
}
