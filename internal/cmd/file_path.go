// SPDX-FileCopyrightText: 2026 Tobias Böhm <code@aibor.de>
//
// SPDX-License-Identifier: GPL-3.0-or-later

package cmd

import (
	"fmt"

	"github.com/aibor/vmlaunch/internal/sys"
)

// FilePath is a [flag.Value] for file system paths. Paths are made absolute.
type FilePath string

func (f *FilePath) String() string {
	return string(*f)
}

func (f *FilePath) Set(s string) error {
	path, err := sys.AbsolutePath(s)
	if err != nil {
		return fmt.Errorf("file path: %w", err)
	}

	*f = FilePath(path)

	return nil
}
