//go:build unix

// Keys puts the terminal into the same mode as the shell and prints the keys
// it decodes, one per line, until Ctrl-D is pressed. With -raw, the bytes are
// printed without decoding escape sequences.
package main

import (
	"flag"
	"log"
	"os"

	"src.autocli.sh/pkg/cli/term"
	"src.autocli.sh/pkg/ui"
)

var raw = flag.Bool("raw", false, "print raw bytes instead of decoded keys")

func main() {
	flag.Parse()
	restore, err := term.Setup(os.Stdin, os.Stdout)
	if err != nil {
		log.Fatal(err)
	}
	defer restore()

	reader, err := term.NewReader(os.Stdin)
	if err != nil {
		log.Println(err)
		return
	}
	defer reader.Close()

	log.Println("ready")
	for {
		var k ui.Key
		if *raw {
			k, err = reader.ReadRawKey()
		} else {
			k, err = reader.ReadKey()
		}
		if err != nil {
			log.Println("error:", err)
			if term.IsReadErrorRecoverable(err) {
				continue
			}
			return
		}
		log.Printf("key: %v (%#v)", k, k)
		if k == ui.K('D', ui.Ctrl) || (*raw && k == ui.K(0x04)) {
			return
		}
	}
}
