package services

import (
	"bufio"
	"io"
	"log"
	"sync"

	"go.bug.st/serial"
)

// SensorListener owns the single latest line read from the gym's proximity
// sensor. Older readings are lost the instant a newer one arrives; there is
// no history beyond what handlers choose to persist as SensorEvents.
type SensorListener struct {
	mu     sync.RWMutex
	latest string
	paused bool

	hub *SensorHub
}

func NewSensorListener(hub *SensorHub) *SensorListener {
	return &SensorListener{hub: hub}
}

// Start opens the serial port and consumes readings in the background. With
// an empty port name the listener stays idle and the endpoints still serve
// whatever value was captured (none).
func (l *SensorListener) Start(portName string) error {
	if portName == "" {
		log.Println("SENSOR_PORT not set, sensor listener idle")
		return nil
	}

	port, err := serial.Open(portName, &serial.Mode{BaudRate: 115200})
	if err != nil {
		return err
	}

	go l.consume(port)
	return nil
}

// consume replaces the latest value with each newline-delimited reading.
// While paused, incoming lines are dropped.
func (l *SensorListener) consume(r io.Reader) {
	scanner := bufio.NewScanner(r)
	for scanner.Scan() {
		line := scanner.Text()
		if l.Paused() {
			continue
		}

		l.mu.Lock()
		l.latest = line
		l.mu.Unlock()

		if l.hub != nil {
			l.hub.Broadcast(line)
		}
	}
	if err := scanner.Err(); err != nil {
		log.Printf("sensor read stream ended: %v", err)
	}
}

// Latest returns the most recent captured reading.
func (l *SensorListener) Latest() string {
	l.mu.RLock()
	defer l.mu.RUnlock()
	return l.latest
}

func (l *SensorListener) Pause() {
	l.mu.Lock()
	l.paused = true
	l.mu.Unlock()
}

func (l *SensorListener) Resume() {
	l.mu.Lock()
	l.paused = false
	l.mu.Unlock()
}

func (l *SensorListener) Paused() bool {
	l.mu.RLock()
	defer l.mu.RUnlock()
	return l.paused
}
