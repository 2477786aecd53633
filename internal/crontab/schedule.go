package crontab

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/robfig/cron/v3"
)

// ErrInvalidSchedule is returned for schedules the standard cron parser rejects
var ErrInvalidSchedule = errors.New("invalid cron schedule")

// ValidateSchedule checks a five-field cron expression or @descriptor
func ValidateSchedule(spec string) error {
	_, err := parseSchedule(spec)
	return err
}

// NextRun returns the first activation of spec strictly after from
func NextRun(spec string, from time.Time) (time.Time, error) {
	sched, err := parseSchedule(spec)
	if err != nil {
		return time.Time{}, err
	}
	return sched.Next(from), nil
}

func parseSchedule(spec string) (cron.Schedule, error) {
	if spec == "" {
		return nil, fmt.Errorf("%w: empty", ErrInvalidSchedule)
	}
	// Accepted by the parser but not by the system cron daemon
	if strings.HasPrefix(spec, "@every") || strings.HasPrefix(spec, "TZ=") || strings.HasPrefix(spec, "CRON_TZ=") {
		return nil, fmt.Errorf("%w %q: not supported by crontab", ErrInvalidSchedule, spec)
	}
	sched, err := cron.ParseStandard(spec)
	if err != nil {
		return nil, fmt.Errorf("%w %q: %v", ErrInvalidSchedule, spec, err)
	}
	return sched, nil
}
