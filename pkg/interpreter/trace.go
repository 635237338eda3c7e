package interpreter

import (
	"fmt"
	"os"
	"sync"
	"time"
)

// Verbose gates the evaluator trace. The CLI -trace flag and the REPL
// :trace command flip it.
var Verbose bool

var traceMut sync.Mutex

// ts is the timestamp prefix on trace lines.
func ts() string {
	return time.Now().Format("2006-01-02 15:04:05.999 -0700 MST")
}

// tracef prints one timestamped trace line to stderr when Verbose is on.
func tracef(format string, a ...interface{}) {
	if !Verbose {
		return
	}
	traceMut.Lock()
	fmt.Fprintf(os.Stderr, "%s "+format+"\n", append([]interface{}{ts()}, a...)...)
	traceMut.Unlock()
}
