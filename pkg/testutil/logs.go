package testutil

import (
	"bufio"
	"bytes"
	"encoding/json"
	"testing"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

// LogBuffer collects JSON log lines written through the global logger
type LogBuffer struct {
	buf bytes.Buffer
}

// CaptureLogs redirects the global zerolog logger into a buffer for the
// duration of the test.
func CaptureLogs(t *testing.T) *LogBuffer {
	t.Helper()

	lb := &LogBuffer{}
	savedLogger := log.Logger
	savedLevel := zerolog.GlobalLevel()

	log.Logger = zerolog.New(&lb.buf)
	zerolog.SetGlobalLevel(zerolog.TraceLevel)

	t.Cleanup(func() {
		log.Logger = savedLogger
		zerolog.SetGlobalLevel(savedLevel)
	})
	return lb
}

// Entries returns every captured log line decoded as a map
func (lb *LogBuffer) Entries() []map[string]interface{} {
	var entries []map[string]interface{}
	scanner := bufio.NewScanner(bytes.NewReader(lb.buf.Bytes()))
	for scanner.Scan() {
		var entry map[string]interface{}
		if err := json.Unmarshal(scanner.Bytes(), &entry); err == nil {
			entries = append(entries, entry)
		}
	}
	return entries
}

// Count returns how many lines were logged at level
func (lb *LogBuffer) Count(level zerolog.Level) int {
	n := 0
	for _, e := range lb.Entries() {
		if e[zerolog.LevelFieldName] == level.String() {
			n++
		}
	}
	return n
}

// Messages returns the messages logged at level, in order
func (lb *LogBuffer) Messages(level zerolog.Level) []string {
	var msgs []string
	for _, e := range lb.Entries() {
		if e[zerolog.LevelFieldName] == level.String() {
			msg, _ := e[zerolog.MessageFieldName].(string)
			msgs = append(msgs, msg)
		}
	}
	return msgs
}

// String returns the raw captured output
func (lb *LogBuffer) String() string {
	return lb.buf.String()
}
