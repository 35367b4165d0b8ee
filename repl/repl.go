// Package repl SPDX-License-Identifier: Apache-2.0
package repl

import (
	"bufio"
	"fmt"
	"io"

	"github.com/Neugomonyy/jasy/internal/tokenizer"
)

const PROMPT = ">> "

// Start reads lines from in and prints the token stream of each one.
// Every line is tokenized as an independent script.
func Start(in io.Reader, out io.Writer) {
	scanner := bufio.NewScanner(in)

	for {
		fmt.Fprint(out, PROMPT)
		scanned := scanner.Scan()
		if !scanned {
			return
		}

		line := scanner.Text()
		tokens, err := tokenizer.ScanAll(line, "repl")

		for _, tok := range tokens {
			if tok.Type == tokenizer.End {
				break
			}
			fmt.Fprintf(out, "%-12s %s\n", tok.Type.String(), line[tok.Start:tok.End])
		}
		if err != nil {
			fmt.Fprintln(out, err)
		}
	}
}
