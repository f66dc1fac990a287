// Package ui holds the scene's overlay: the debug panel and the link button.
package ui

import (
	"fmt"
	"runtime"
)

// FrameStats tracks frame timing and memory for the debug panel.
type FrameStats struct {
	fps           float64
	frameTime     float64 // ms
	fpsUpdateTime float64 // seconds since last FPS update
	frameAccum    int

	memStats      runtime.MemStats
	memUpdateTime float64
	memRead       bool
}

// Update records one frame. deltaMs is the frame time in milliseconds.
func (s *FrameStats) Update(deltaMs float64) {
	s.frameTime = deltaMs
	s.frameAccum++
	s.fpsUpdateTime += deltaMs / 1000.0

	// FPS refreshes every half second
	if s.fpsUpdateTime >= 0.5 {
		s.fps = float64(s.frameAccum) / s.fpsUpdateTime
		s.frameAccum = 0
		s.fpsUpdateTime = 0
	}

	s.memUpdateTime += deltaMs / 1000.0
	if !s.memRead || s.memUpdateTime >= 2.0 {
		runtime.ReadMemStats(&s.memStats)
		s.memUpdateTime = 0
		s.memRead = true
	}
}

// FPS returns the last measured frame rate.
func (s *FrameStats) FPS() float64 {
	return s.fps
}

// FrameTime returns the last frame time in milliseconds.
func (s *FrameStats) FrameTime() float64 {
	return s.frameTime
}

// HeapAlloc returns the live heap size at the last sample.
func (s *FrameStats) HeapAlloc() uint64 {
	return s.memStats.HeapAlloc
}

// formatBytes formats byte count to human readable string.
func formatBytes(bytes uint64) string {
	const (
		KB = 1024
		MB = KB * 1024
		GB = MB * 1024
	)

	switch {
	case bytes >= GB:
		return fmt.Sprintf("%.2f GB", float64(bytes)/GB)
	case bytes >= MB:
		return fmt.Sprintf("%.2f MB", float64(bytes)/MB)
	case bytes >= KB:
		return fmt.Sprintf("%.2f KB", float64(bytes)/KB)
	default:
		return fmt.Sprintf("%d B", bytes)
	}
}
