// SPDX-FileCopyrightText: 2026 Tobias Böhm <code@aibor.de>
//
// SPDX-License-Identifier: GPL-3.0-or-later

package cmd

import (
	"bufio"
	"fmt"
	"io"
	"strings"
)

// confirm asks the given question and reads the answer. An empty answer is
// yes. It returns false if the input is closed before a valid answer.
func confirm(question string, in io.Reader, out io.Writer) (bool, error) {
	scanner := bufio.NewScanner(in)

	for {
		fmt.Fprintf(out, "%s [Y/n] ", question)

		if !scanner.Scan() {
			fmt.Fprintln(out)

			err := scanner.Err()
			if err != nil {
				return false, fmt.Errorf("read answer: %w", err)
			}

			return false, nil
		}

		switch strings.ToLower(strings.TrimSpace(scanner.Text())) {
		case "", "y", "yes":
			return true, nil
		case "n", "no":
			return false, nil
		}
	}
}
