package handlers

import (
	"context"
	"encoding/json"
	"io"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"
	"github.com/urmzd/kodakam/pkg/device"
)

const heartbeatInterval = 30 * time.Second

// SweepEvents handles GET /cameras/:address/sweep/events (SSE stream)
// @Summary      Stream a sweep
// @Description  Runs a sweep and streams one result event per completed command, then a done event
// @Tags         cameras
// @Produce      text/event-stream
// @Param        address  path      string  true  "Camera host or host:port"
// @Success      200      {string}  string  "SSE event stream"
// @Failure      400      {object}  types.ErrorResponse  "Invalid address"
// @Router       /cameras/{address}/sweep/events [get]
func (h *CamerasHandler) SweepEvents(c *gin.Context) {
	address := c.Param("address")
	if _, err := h.controller.BaseURL(address); err != nil {
		writeError(c, err)
		return
	}

	c.Header("Content-Type", "text/event-stream")
	c.Header("Cache-Control", "no-cache")
	c.Header("Connection", "keep-alive")
	c.Header("X-Accel-Buffering", "no")

	ctx, cancel := context.WithCancel(c.Request.Context())
	defer cancel()

	events := make(chan device.SweepResult)
	type outcome struct {
		results []device.SweepResult
		err     error
	}
	done := make(chan outcome, 1)

	go func() {
		results, err := h.controller.Sweep(ctx, address, func(r device.SweepResult) {
			select {
			case events <- r:
			case <-ctx.Done():
			}
		})
		done <- outcome{results, err}
	}()

	sendSSEEvent(c.Writer, "connected", map[string]any{
		"address":   address,
		"timestamp": time.Now(),
	})
	c.Writer.Flush()

	clientGone := c.Request.Context().Done()

	ticker := time.NewTicker(heartbeatInterval)
	defer ticker.Stop()

	for {
		select {
		case <-clientGone:
			log.Debug().Str("address", address).Msg("Sweep stream client gone")
			return

		case r := <-events:
			sendSSEEvent(c.Writer, device.SweepEventResult, device.SweepEvent{
				Type:      device.SweepEventResult,
				Address:   address,
				Result:    &r,
				Timestamp: time.Now(),
			})
			c.Writer.Flush()

		case out := <-done:
			if out.err != nil {
				sendSSEEvent(c.Writer, "error", map[string]any{
					"address":   address,
					"error":     out.err.Error(),
					"timestamp": time.Now(),
				})
			} else {
				sendSSEEvent(c.Writer, device.SweepEventDone, device.SweepEvent{
					Type:      device.SweepEventDone,
					Address:   address,
					Timestamp: time.Now(),
				})
			}
			c.Writer.Flush()
			return

		case <-ticker.C:
			sendSSEEvent(c.Writer, "heartbeat", map[string]any{
				"timestamp": time.Now(),
			})
			c.Writer.Flush()
		}
	}
}

// sendSSEEvent writes an SSE event to the response
func sendSSEEvent(w io.Writer, eventType string, data any) {
	jsonData, _ := json.Marshal(data)
	_, _ = io.WriteString(w, "event: "+eventType+"\n")
	_, _ = io.WriteString(w, "data: "+string(jsonData)+"\n\n")
}
