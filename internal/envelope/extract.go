// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package envelope

// ExtractField returns the value of the named field in a recovered payload
// text. Unparsable text and absent fields both report false.
func ExtractField(text, name string) (string, bool) {
	if text == "" || name == "" {
		return "", false
	}
	p, err := ParsePayload(text)
	if err != nil {
		return "", false
	}
	return p.Get(name)
}
