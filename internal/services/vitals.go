package services

import (
	"math/rand"
	"time"

	"github.com/KeertanaGupta/Keertana-Mediprior/internal/models"
)

// Placeholder vital-sign readings for the dashboard cards. Real values
// would come from a wearable integration that does not exist yet.
const (
	placeholderHeartRate = 72
	placeholderSteps     = 4201
	placeholderSpO2      = 98
)

// CurrentVitals returns the fixed dashboard readings.
func CurrentVitals() models.VitalSigns {
	return models.VitalSigns{
		HeartRateBPM: placeholderHeartRate,
		Steps:        placeholderSteps,
		SpO2Percent:  placeholderSpO2,
		RecordedAt:   time.Now().UTC(),
	}
}

// SimulatedVitals returns the placeholder readings with a little jitter, so
// the websocket stream looks alive while a device is "connected".
func SimulatedVitals() models.VitalSigns {
	v := CurrentVitals()
	v.HeartRateBPM += rand.Intn(11) - 5
	v.Steps += rand.Intn(40)
	v.SpO2Percent += rand.Intn(3) - 1
	if v.SpO2Percent > 100 {
		v.SpO2Percent = 100
	}
	return v
}
