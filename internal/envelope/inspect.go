// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package envelope

// Stage names the pipeline step an [Inspection] stopped at.
type Stage string

const (
	StagePrecheck Stage = "precheck"
	StageBase64   Stage = "base64"
	StageText     Stage = "text"
	StageValidate Stage = "validate"
	StageDone     Stage = "done"
)

// Inspection records the intermediate values of a decode. Fields after the
// failing stage are left empty.
type Inspection struct {
	Envelope  string
	Decoded   []byte
	Unshifted []byte
	Unmasked  []byte
	Text      string
	Payload   Payload
	Stage     Stage
	Err       error
}

// Inspect decodes envelope step by step and reports every intermediate value.
// It never returns a partially validated payload: Payload is set only when
// Stage is [StageDone].
func (c *Codec) Inspect(envelope string) Inspection {
	in := Inspection{Envelope: envelope, Stage: StagePrecheck}
	if envelope == "" {
		in.Err = ErrEmptyInput
		return in
	}
	if in.Err = checkBase64(envelope); in.Err != nil {
		return in
	}

	in.Stage = StageBase64
	if in.Decoded, in.Err = DecodeBase64(envelope); in.Err != nil {
		return in
	}
	in.Unshifted = Unshift(in.Decoded, c.shift)
	in.Unmasked = Mask(in.Unshifted, c.key)

	in.Stage = StageText
	if in.Text, in.Err = payloadText(in.Unmasked); in.Err != nil {
		return in
	}

	in.Stage = StageValidate
	p, err := c.validator.Validate(in.Text)
	if err != nil {
		in.Err = err
		return in
	}
	in.Payload = p
	in.Stage = StageDone
	return in
}
