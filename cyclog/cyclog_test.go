// Copyright ©2024 The Gonum Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package cyclog

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestLevelFiltering(t *testing.T) {
	var buf bytes.Buffer
	l := New(&buf, LevelWarn)

	l.Debugf("hidden %d", 1)
	l.Infof("also hidden")
	l.Warnf("visible warning")
	l.Errorf("visible error")

	out := buf.String()
	assert.False(t, strings.Contains(out, "hidden"))
	assert.True(t, strings.Contains(out, "visible warning"))
	assert.True(t, strings.Contains(out, "visible error"))
}

func TestSetLevel(t *testing.T) {
	var buf bytes.Buffer
	l := New(&buf, LevelError)
	l.Infof("not yet")
	assert.Equal(t, 0, buf.Len())

	l.SetLevel(LevelInfo)
	l.Infof("now visible")
	assert.True(t, strings.Contains(buf.String(), "now visible"))
}
