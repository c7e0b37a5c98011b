// Package media probes the GStreamer installation backing video
// playback. Decoding itself is out of scope here; the probe only tells
// the shell what the platform can do so missing pieces surface in the
// log instead of as a black rectangle.
package media

import (
	"context"
	"sync"

	"github.com/theater-ui/theater/internal/logging"
	"github.com/tinyzimmer/go-gst/gst"
)

// ProbeResult describes the GStreamer capabilities found on the host.
type ProbeResult struct {
	Version          string
	HasPlaybin       bool
	HasGTKSink       bool
	HasVAAPIDecode   bool
	HWAccelAvailable bool
}

var initOnce sync.Once

// Probe inspects the local GStreamer registry. Safe to call more than
// once; gst initialization happens a single time.
func Probe(ctx context.Context) *ProbeResult {
	log := logging.FromContext(ctx)

	initOnce.Do(func() {
		gst.Init(nil)
	})

	result := &ProbeResult{
		Version:        gst.VersionString(),
		HasPlaybin:     hasElement("playbin"),
		HasGTKSink:     hasElement("gtk4paintablesink"),
		HasVAAPIDecode: hasElement("vaapih264dec") || hasElement("vaapidecodebin"),
	}
	result.HWAccelAvailable = result.HasVAAPIDecode

	log.Info().
		Str("gstreamer", result.Version).
		Bool("playbin", result.HasPlaybin).
		Bool("gtk_sink", result.HasGTKSink).
		Bool("hw_accel", result.HWAccelAvailable).
		Msg("media probe complete")

	if !result.HasPlaybin {
		log.Warn().Msg("gstreamer playback plugins missing, video widget will not render")
	}
	if !result.HWAccelAvailable {
		log.Warn().Msg("no VA-API decoder found, falling back to software decode")
	}

	return result
}

// hasElement checks the registry by instantiating the element and
// immediately dropping it.
func hasElement(name string) bool {
	elem, err := gst.NewElement(name)
	if err != nil || elem == nil {
		return false
	}
	_ = elem.SetState(gst.StateNull)
	return true
}
