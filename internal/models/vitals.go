package models

import "time"

// VitalSigns is one set of readings shown on the dashboard cards. Until a
// real device integration exists these are placeholder values, optionally
// jittered by the simulated stream.
type VitalSigns struct {
	HeartRateBPM int       `json:"heart_rate_bpm"`
	Steps        int       `json:"steps"`
	SpO2Percent  int       `json:"spo2_percent"`
	RecordedAt   time.Time `json:"recorded_at"`
}
