// SPDX-FileCopyrightText: 2026 Tobias Böhm <code@aibor.de>
//
// SPDX-License-Identifier: GPL-3.0-or-later

package launch

import (
	"fmt"

	"github.com/spf13/afero"
)

func checkRegularFile(fsys afero.Fs, path string) error {
	info, err := fsys.Stat(path)
	if err != nil {
		return err //nolint:wrapcheck
	}

	if !info.Mode().IsRegular() {
		return fmt.Errorf("%w: %s", ErrNotRegularFile, info.Mode().Type())
	}

	return nil
}
