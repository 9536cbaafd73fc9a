package mosquitto

import (
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"math"
)

var ErrBadReading = errors.New("bad bearing reading")

// BearingMsg одно измерение пеленга на ориентир
type BearingMsg struct {
	Landmark   string  `json:"landmark"`
	BearingDeg float64 `json:"bearing_deg"`
}

// SweepMsg пачка измерений за один оборот сенсора
type SweepMsg struct {
	BearingMsg
	Readings []BearingMsg `json:"readings"`
}

// BearingSetter куда складываются пеленги
type BearingSetter interface {
	Set(landmarkID string, bearing float64)
}

type MqqtMsgHandler struct {
	storage BearingSetter
	log     *slog.Logger
}

func NewHandler(storage BearingSetter, log *slog.Logger) *MqqtMsgHandler {
	return &MqqtMsgHandler{storage: storage, log: log}
}

func (h *MqqtMsgHandler) HandleMsg(msg []byte) error {
	var sweep SweepMsg
	if err := json.Unmarshal(msg, &sweep); err != nil {
		h.log.Error("failed to parse MQTT message", "err", err)
		return err
	}

	readings := sweep.Readings
	if sweep.Landmark != "" {
		readings = append(readings, sweep.BearingMsg)
	}
	if len(readings) == 0 {
		return fmt.Errorf("%w: message has no readings", ErrBadReading)
	}

	// сначала проверяем всё, чтобы не записать половину оборота
	for _, r := range readings {
		if r.Landmark == "" {
			return fmt.Errorf("%w: missing landmark id", ErrBadReading)
		}
		if math.IsNaN(r.BearingDeg) || math.IsInf(r.BearingDeg, 0) {
			return fmt.Errorf("%w: landmark %s bearing is not finite", ErrBadReading, r.Landmark)
		}
	}

	for _, r := range readings {
		h.storage.Set(r.Landmark, r.BearingDeg)
		h.log.Info("stored bearing",
			"landmark", r.Landmark,
			"bearing", r.BearingDeg,
		)
	}

	return nil
}
