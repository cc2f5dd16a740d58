// SPDX-License-Identifier: MPL-2.0

package runtime

import (
	"bytes"
	"io"
)

// capturedOutput holds the buffers a run always captures into. When
// streaming, writes are duplicated to the configured writers.
type capturedOutput struct {
	stdout bytes.Buffer
	stderr bytes.Buffer
}

// writers returns the stdout and stderr targets for a run.
func (c *capturedOutput) writers(o *runOptions) (stdout, stderr io.Writer) {
	stdout, stderr = &c.stdout, &c.stderr
	if o.hide {
		return stdout, stderr
	}
	if o.stdout != nil {
		stdout = io.MultiWriter(&c.stdout, o.stdout)
	}
	if o.stderr != nil {
		stderr = io.MultiWriter(&c.stderr, o.stderr)
	}
	return stdout, stderr
}

func (c *capturedOutput) fill(r *Result) *Result {
	r.Stdout = c.stdout.String()
	r.Stderr = c.stderr.String()
	return r
}
