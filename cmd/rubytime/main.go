// Command rubytime round-trips a timestamp string through a strptime
// format and back through strftime, for manual spot-checking of the
// library's directive handling.
package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/go-rubytime/rubytime"
)

func main() {
	parseFormat := flag.String("parse", "%Y-%m-%dT%H:%M:%S%z", "strptime format used to parse -input")
	printFormat := flag.String("print", "%Y-%m-%dT%H:%M:%S%:z", "strftime format used to render the result")
	input := flag.String("input", "", "timestamp string to parse")
	flag.Parse()

	if *input == "" {
		fmt.Fprintln(os.Stderr, "usage: rubytime -input <timestamp> [-parse FORMAT] [-print FORMAT]")
		os.Exit(2)
	}

	f := rubytime.Compile(*parseFormat)
	t, err := rubytime.Parse(f, *input, rubytime.ResolverOptions{})
	if err != nil {
		fmt.Fprintf(os.Stderr, "parse error: %v\n", err)
		os.Exit(1)
	}

	out := rubytime.Compile(*printFormat)
	fmt.Println(rubytime.FormatTemporal(out, t))
}
