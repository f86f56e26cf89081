package display

import (
	"fmt"
	"os"

	"github.com/backmassage/fontnamer/internal/term"
)

// PrintBanner prints the ASCII art banner; uses Magenta if colors are enabled.
func PrintBanner() {
	if term.Magenta != "" {
		fmt.Fprint(os.Stdout, term.Magenta)
	}
	fmt.Fprint(os.Stdout, ""+
		"  __            _                                   \n"+
		" / _| ___  _ __| |_ _ __   __ _ _ __ ___   ___ _ __ \n"+
		"| |_ / _ \\| '_ \\ __| '_ \\ / _` | '_ ` _ \\ / _ \\ '__|\n"+
		"|  _| (_) | | | | |_| | | | (_| | | | | | |  __/ |  \n"+
		"|_|  \\___/|_| |_|\\__|_| |_|\\__,_|_| |_| |_|\\___|_|  \n")
	if term.Magenta != "" {
		fmt.Fprintln(os.Stdout, term.NC)
	}
}
