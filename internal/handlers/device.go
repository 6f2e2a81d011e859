package handlers

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/KeertanaGupta/Keertana-Mediprior/internal/apperrors"
	"github.com/KeertanaGupta/Keertana-Mediprior/internal/services"
)

var deviceSync *services.DeviceSync

// InitDeviceSync wires the simulated smartwatch integration.
func InitDeviceSync(ds *services.DeviceSync) {
	deviceSync = ds
}

type ConnectDeviceRequest struct {
	Device string `json:"device"`
}

type ConnectDeviceResponse struct {
	Success    bool                       `json:"success"`
	Message    string                     `json:"message"`
	Connection *services.DeviceConnection `json:"connection,omitempty"`
}

// ConnectDevice runs the simulated smartwatch pairing flow.
func ConnectDevice(w http.ResponseWriter, r *http.Request) {
	if _, ok := requireAuth(r); !ok {
		writeError(w, apperrors.ErrUnauthenticated)
		return
	}

	var req ConnectDeviceRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, apperrors.NewValidation("body", "invalid request body"))
		return
	}
	if req.Device == "" {
		writeError(w, apperrors.NewValidation("device", "a device is required"))
		return
	}

	conn, err := deviceSync.Connect(r.Context(), req.Device)
	if errors.Is(err, services.ErrUnknownDevice) {
		writeError(w, apperrors.NewValidation("device", "is not a supported device"))
		return
	}
	if err != nil {
		// Caller went away during the simulated pairing delay.
		writeJSON(w, http.StatusRequestTimeout, ConnectDeviceResponse{
			Success: false,
			Message: "Connection cancelled",
		})
		return
	}

	writeJSON(w, http.StatusOK, ConnectDeviceResponse{
		Success:    true,
		Message:    "Device connected successfully",
		Connection: conn,
	})
}
