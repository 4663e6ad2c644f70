//go:build windows || plan9

package output

import "errors"

// DialSyslog is not available on this platform.
func DialSyslog(opts SyslogOptions) (*SyslogSink, error) {
	return nil, errors.New("syslog output is not supported on this platform")
}
