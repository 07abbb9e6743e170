package cli

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"golang.org/x/term"
)

// poemEnd on a line of its own finishes a poem. Blank lines cannot be used
// for that since they separate stanzas.
const poemEnd = "."

// readPassword is a test seam for term.ReadPassword.
var readPassword = term.ReadPassword

// readLine prints prompt and returns the next input line, trimmed. A final
// line without a newline is still returned; EOF with nothing read is an
// error.
//
//	Enter title
//	> _
func readLine(reader *bufio.Reader, prompt string, w io.Writer) (string, error) {
	if _, err := fmt.Fprint(w, prompt+"\n> "); err != nil {
		return "", err
	}
	line, err := reader.ReadString('\n')
	if err != nil {
		if errors.Is(err, io.EOF) && len(line) > 0 {
			return strings.TrimSpace(line), nil
		}
		return "", err
	}
	return strings.TrimSpace(line), nil
}

// readLineOr is readLine where an empty answer keeps current. The current
// value is shown in brackets.
func readLineOr(reader *bufio.Reader, prompt, current string, w io.Writer) (string, error) {
	answer, err := readLine(reader, fmt.Sprintf("%s [%s]", prompt, current), w)
	if err != nil {
		return "", err
	}
	if answer == "" {
		return current, nil
	}
	return answer, nil
}

// readPasswordPrompt asks for a password without echo.
func readPasswordPrompt(w io.Writer) ([]byte, error) {
	if _, err := fmt.Fprint(w, "Enter password: "); err != nil {
		return nil, err
	}
	pw, err := readPassword(int(os.Stdin.Fd()))
	fmt.Fprintln(w)
	if err != nil {
		return nil, err
	}
	return pw, nil
}

// wipe zeroes b so a password does not outlive its use.
func wipe(b []byte) {
	for i := range b {
		b[i] = 0
	}
}

// readPoem reads a poem body line by line until a line holding only "."
// or EOF. Blank lines inside the poem are stanza breaks: runs of them are
// folded into one, and blank lines around the poem are dropped. Trailing
// spaces are cut from every line, indentation is kept.
func readPoem(reader *bufio.Reader, prompt string, w io.Writer) (string, error) {
	if _, err := fmt.Fprintf(w, "%s\n(blank line starts a new stanza, %q on its own line finishes)\n", prompt, poemEnd); err != nil {
		return "", err
	}

	var lines []string
	blank := false
	for {
		line, err := reader.ReadString('\n')
		line = strings.TrimRight(line, " \t\r\n")
		if strings.TrimSpace(line) == poemEnd {
			break
		}

		switch {
		case strings.TrimSpace(line) == "":
			blank = len(lines) > 0
		default:
			if blank {
				lines = append(lines, "")
				blank = false
			}
			lines = append(lines, line)
		}

		if err != nil {
			if errors.Is(err, io.EOF) {
				break
			}
			return "", err
		}
	}

	return strings.Join(lines, "\n"), nil
}
