// SPDX-License-Identifier: Apache-2.0
package main

import (
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/fatih/color"

	"github.com/Neugomonyy/jasy/internal/errors"
	"github.com/Neugomonyy/jasy/internal/tokenizer"
)

func main() {
	if len(os.Args) < 2 {
		fmt.Println("Usage: jasy <file.js>")
		os.Exit(1)
	}

	startTime := time.Now()
	path := os.Args[1]

	content, err := os.ReadFile(path)
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to read file: %v\n", err)
		os.Exit(1)
	}

	source := string(content)
	tokens, scanErr := tokenizer.ScanAll(source, path)

	dim := color.New(color.Faint).SprintFunc()
	for _, tok := range tokens {
		if tok.Type == tokenizer.End {
			break
		}
		for _, comment := range tok.Comments {
			fmt.Println(dim(comment))
		}
		fmt.Println(formatToken(source, tok))
	}

	duration := time.Since(startTime)
	formattedDuration := formatDuration(duration)

	if scanErr != nil {
		reporter := errors.NewErrorReporter(path, source)
		if serr, ok := scanErr.(*tokenizer.ScanError); ok {
			fmt.Print(reporter.Format(toDiagnostic(source, serr)))
		} else {
			fmt.Fprintln(os.Stderr, scanErr)
		}
		color.Red("Tokenizing failed after %s", formattedDuration)
		os.Exit(1)
	}

	color.Green("Successfully tokenized %s (%d tokens) in %s", path, len(tokens)-1, formattedDuration)
}

// formatToken renders one token as "line:col [start..end) type text",
// where text is the raw source slice the token covers.
func formatToken(source string, tok tokenizer.Token) string {
	col := tokenizer.Column(source, tok.Start)
	text := source[tok.Start:tok.End]
	if tok.Type == tokenizer.Newline {
		text = "\\n"
	}
	return fmt.Sprintf("%4d:%-4d [%d..%d) %-12s %s", tok.Line, col, tok.Start, tok.End, tok.Type.String(), text)
}

// toDiagnostic marks the whole offending line since lexical errors
// report a line without a column.
func toDiagnostic(source string, serr *tokenizer.ScanError) errors.Diagnostic {
	length := 1
	lines := strings.Split(source, "\n")
	if serr.Line >= 1 && serr.Line <= len(lines) {
		if l := len(lines[serr.Line-1]); l > length {
			length = l
		}
	}

	return errors.Diagnostic{
		Level:   errors.Error,
		Code:    serr.Code,
		Message: serr.Message,
		Line:    serr.Line,
		Column:  1,
		Length:  length,
	}
}

func formatDuration(d time.Duration) string {
	switch {
	case d >= time.Minute:
		return fmt.Sprintf("%.2fmin", d.Minutes())
	case d >= time.Second:
		return fmt.Sprintf("%.2fs", d.Seconds())
	case d >= time.Millisecond:
		return fmt.Sprintf("%.1fms", float64(d.Nanoseconds())/1000000.0)
	case d >= time.Microsecond:
		return fmt.Sprintf("%.1fμs", float64(d.Nanoseconds())/1000.0)
	default:
		return fmt.Sprintf("%dns", d.Nanoseconds())
	}
}
