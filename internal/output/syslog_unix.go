//go:build !windows && !plan9

package output

import (
	"fmt"
	"log/syslog"
)

// DialSyslog connects to the syslog daemon described by opts.
func DialSyslog(opts SyslogOptions) (*SyslogSink, error) {
	tag := opts.Tag
	if tag == "" {
		tag = DefaultSyslogTag
	}
	w, err := syslog.Dial(opts.Network, opts.Address, syslog.LOG_INFO|syslog.LOG_USER, tag)
	if err != nil {
		return nil, fmt.Errorf("connecting to syslog: %w", err)
	}
	return newSyslogSink(w), nil
}
