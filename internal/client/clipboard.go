// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package client

import "github.com/atotto/clipboard"

type systemClipboard struct{}

// SystemClipboard returns the desktop clipboard. Writing fails on systems
// without a clipboard utility (xclip, xsel, wl-copy, pbcopy).
func SystemClipboard() Clipboard {
	return systemClipboard{}
}

func (systemClipboard) WriteAll(text string) error {
	return clipboard.WriteAll(text)
}
