package tui

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/MKhiriev/go-pass-console/internal/config"
	"github.com/MKhiriev/go-pass-console/internal/logger"
	"github.com/MKhiriev/go-pass-console/internal/mock"
	"github.com/MKhiriev/go-pass-console/internal/service"
)

type reportedMessage struct {
	level string
	text  string
}

// recordingReporter keeps every message for later assertions.
type recordingReporter struct {
	messages []reportedMessage
}

func (r *recordingReporter) Info(msg string)    { r.add("info", msg) }
func (r *recordingReporter) Success(msg string) { r.add("success", msg) }
func (r *recordingReporter) Warn(msg string)    { r.add("warn", msg) }
func (r *recordingReporter) Error(msg string)   { r.add("error", msg) }

func (r *recordingReporter) add(level, msg string) {
	r.messages = append(r.messages, reportedMessage{level: level, text: msg})
}

// has reports whether a message of level containing substr was reported.
func (r *recordingReporter) has(level, substr string) bool {
	for _, m := range r.messages {
		if m.level == level && strings.Contains(m.text, substr) {
			return true
		}
	}
	return false
}

func (r *recordingReporter) count(level string) int {
	n := 0
	for _, m := range r.messages {
		if m.level == level {
			n++
		}
	}
	return n
}

type fakeClipboard struct {
	text string
	err  error
}

func (c *fakeClipboard) WriteAll(text string) error {
	if c.err != nil {
		return c.err
	}
	c.text = text
	return nil
}

type testUI struct {
	ui       *TUI
	records  *mock.MockRecordService
	reporter *recordingReporter
	clip     *fakeClipboard
	out      *bytes.Buffer
}

// newTestUI wires a TUI whose answers come from input, one per line.
func newTestUI(t *testing.T, input string) testUI {
	t.Helper()

	ctrl := gomock.NewController(t)
	records := mock.NewMockRecordService(ctrl)

	return newTestUIWithService(t, records, records, input)
}

func newTestUIWithService(t *testing.T, svc service.RecordService, records *mock.MockRecordService, input string) testUI {
	t.Helper()

	out := &bytes.Buffer{}
	rep := &recordingReporter{}
	clip := &fakeClipboard{}

	ui, err := New(
		&service.ClientServices{RecordService: svc},
		config.ClientUI{NoColor: true},
		logger.Nop(),
		WithPrompter(NewConsolePrompter(strings.NewReader(input), out, true)),
		WithReporter(rep),
		WithClipboard(clip),
		WithOutput(out),
	)
	require.NoError(t, err)

	return testUI{ui: ui, records: records, reporter: rep, clip: clip, out: out}
}

// answers joins input lines, each terminated by a newline.
func answers(lines ...string) string {
	return strings.Join(lines, "\n") + "\n"
}
