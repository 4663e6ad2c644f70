package output

import (
	"encoding/json"
	"fmt"

	"github.com/tonimelisma/dealcloud-activity/pkg/dealcloud"
)

// DefaultSyslogTag identifies the program in forwarded syslog messages.
const DefaultSyslogTag = "dealcloud-activity"

// SyslogOptions selects the syslog daemon. An empty Network and Address use
// the local daemon.
type SyslogOptions struct {
	Network string
	Address string
	Tag     string
}

// syslogWriter is the subset of *syslog.Writer the sink uses.
type syslogWriter interface {
	Info(m string) error
	Close() error
}

// SyslogSink forwards every row as one JSON message at info priority.
type SyslogSink struct {
	w syslogWriter
}

func newSyslogSink(w syslogWriter) *SyslogSink {
	return &SyslogSink{w: w}
}

func (s *SyslogSink) Write(rows []dealcloud.ActivityRow) error {
	for i, row := range rows {
		line, err := json.Marshal(row)
		if err != nil {
			return fmt.Errorf("encoding row %d: %w", i, err)
		}
		if err := s.w.Info(string(line)); err != nil {
			return fmt.Errorf("forwarding row %d to syslog: %w", i, err)
		}
	}
	return nil
}

func (s *SyslogSink) Close() error {
	return s.w.Close()
}
