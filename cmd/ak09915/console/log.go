package console

import (
	"fmt"
	"os"
)

const (
	PictoCompass = "🧭"
	PictoMagnet  = "🧲"
	PictoCheck   = "✅"
	PictoStop    = "🚫"
	PictoPin     = "📌"
)

// Trace enables debug output from low-level bus exchanges.
var Trace bool

func Warnf(msg string, args ...interface{}) {
	_, _ = fmt.Fprintf(os.Stderr, "%s: %s\n", Yellow("WARN"), fmt.Sprintf(msg, args...))
}

func Debug(msg string) {
	if Trace {
		_, _ = fmt.Fprintf(os.Stdout, "%s %s\n", White("[DEBUG]"), msg)
	}
}

func PInfof(picto, msg string, args ...interface{}) {
	_, _ = fmt.Fprintf(os.Stdout, "%s %s\n", picto, fmt.Sprintf(msg, args...))
}

func Printf(msg string, args ...interface{}) {
	_, _ = fmt.Fprintf(os.Stdout, msg, args...)
}
