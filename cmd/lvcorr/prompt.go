// SPDX-License-Identifier: MIT

package main

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"
)

// prompter asks for missing run parameters on an interactive terminal.
type prompter struct {
	in  *bufio.Scanner
	out io.Writer
}

func newPrompter(in io.Reader, out io.Writer) *prompter {
	return &prompter{in: bufio.NewScanner(in), out: out}
}

// readLine prints question and returns the next input line. End of input
// reads as an empty line.
func (p *prompter) readLine(question string) (string, error) {
	fmt.Fprint(p.out, question)
	if p.in.Scan() {
		return strings.TrimRight(p.in.Text(), "\r"), nil
	}

	return "", p.in.Err()
}

// filename asks until an existing file is named. A blank answer returns ""
// and means the user chose to exit.
func (p *prompter) filename() (string, error) {
	for {
		name, err := p.readLine("Please provide the measurement's filename: ")
		if err != nil || strings.TrimSpace(name) == "" {
			return "", err
		}

		_, err = os.Stat(name)
		if err == nil {
			return name, nil
		}
		if !errors.Is(err, os.ErrNotExist) {
			return "", err
		}
		fmt.Fprintf(p.out, "The file %s does not exist!\n", name)
	}
}

// columnName asks for the column in the given position ("first", "second").
func (p *prompter) columnName(position string) (string, error) {
	return p.readLine(fmt.Sprintf("Please provide the %s column name: ", position))
}
