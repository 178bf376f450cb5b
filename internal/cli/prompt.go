package cli

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"
)

var (
	errStdinUnavailable  = errors.New("stdin unavailable")
	errPasswordsMismatch = errors.New("passwords do not match")
)

// readPasswordNoEcho reads one line from a terminal with echo switched off.
// It fails when stdin is not a terminal.
func readPasswordNoEcho(stdin *os.File) (string, error) {
	if stdin == nil {
		return "", errStdinUnavailable
	}
	restore, err := disableEcho(stdin)
	if err != nil {
		return "", err
	}
	defer restore()
	return readLine(stdin)
}

func readLine(reader io.Reader) (string, error) {
	line, err := bufio.NewReader(reader).ReadString('\n')
	if err != nil && !errors.Is(err, io.EOF) {
		return "", err
	}
	return strings.TrimRight(line, "\r\n"), nil
}

// promptNewPassword asks twice and returns the password when both entries
// match.
func promptNewPassword(stdin *os.File, stdout io.Writer) (string, error) {
	fmt.Fprint(stdout, "New password: ")
	first, err := readPasswordNoEcho(stdin)
	fmt.Fprintln(stdout)
	if err != nil {
		return "", err
	}

	fmt.Fprint(stdout, "Confirm password: ")
	second, err := readPasswordNoEcho(stdin)
	fmt.Fprintln(stdout)
	if err != nil {
		return "", err
	}

	if first != second {
		return "", errPasswordsMismatch
	}
	return first, nil
}
