package logsvc

import (
	"bytes"
	"errors"
	"log"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/absedu/campus/core/user"
	"github.com/absedu/campus/tests"
)

func TestRollbarLogger_mirrorsToStd(t *testing.T) {
	var buf bytes.Buffer
	logger := NewRollbarLogger(log.New(&buf, "", 0), testutil.Config(t))
	logger.Enable(false)

	usr := user.User{Number: "9000000001", Name: "Sam", Password: "secret", Role: "Faculty"}
	logger.Warn("fetching lectures", errors.New("boom"), map[string]interface{}{"range": "Lectures!A:M"}, usr)
	logger.Info("ready")

	out := buf.String()
	assert.Contains(t, out, "WARN: fetching lectures\n")
	assert.Contains(t, out, "boom\n")
	assert.Contains(t, out, "Lectures!A:M")
	assert.Contains(t, out, "user: 9000000001 (faculty)\n")
	assert.Contains(t, out, "INFO: ready\n")
	assert.NotContains(t, out, "secret")
}
