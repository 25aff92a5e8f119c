package controllers

import (
	"errors"
	"io"
	"net/http"
	"time"

	"github.com/Brandon0902/HumanSport/models"
	"github.com/Brandon0902/HumanSport/services"

	"github.com/gin-gonic/gin"
	"github.com/gorilla/websocket"
)

var upgrader = websocket.Upgrader{
	ReadBufferSize:  1024,
	WriteBufferSize: 1024,
	CheckOrigin: func(r *http.Request) bool {
		return true
	},
}

// SensorController serves the live proximity-sensor surface: latest value,
// stream control, snapshot persistence and the websocket feed.
type SensorController struct {
	Listener *services.SensorListener
	Hub      *services.SensorHub
}

func NewSensorController(listener *services.SensorListener, hub *services.SensorHub) *SensorController {
	return &SensorController{Listener: listener, Hub: hub}
}

func (sc *SensorController) Latest(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"valorDistancia": sc.Listener.Latest()})
}

func (sc *SensorController) Resume(c *gin.Context) {
	sc.Listener.Resume()
	c.JSON(http.StatusOK, gin.H{"valorDistancia": sc.Listener.Latest()})
}

func (sc *SensorController) Pause(c *gin.Context) {
	sc.Listener.Pause()
	c.JSON(http.StatusOK, gin.H{"msg": "paused"})
}

type SnapshotInput struct {
	Name string `json:"name"`
	Hora string `json:"hora"`
}

// Snapshot persists the latest captured reading as a SensorEvent. The body
// is optional; without one the reading is stamped with the current time.
func (sc *SensorController) Snapshot(c *gin.Context) {
	var input SnapshotInput
	if err := c.ShouldBindJSON(&input); err != nil && !errors.Is(err, io.EOF) {
		c.JSON(http.StatusBadRequest, gin.H{"message": err.Error()})
		return
	}

	if input.Hora == "" {
		input.Hora = time.Now().Format("15:04:05")
	}

	event := models.SensorEvent{
		Name:    input.Name,
		Hora:    input.Hora,
		Lectura: sc.Listener.Latest(),
	}

	if err := services.CreateSensorEvent(&event); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"message": "failed to store reading", "error": err.Error()})
		return
	}

	c.JSON(http.StatusCreated, event)
}

// Stream upgrades to a websocket and forwards every new reading until the
// client goes away.
func (sc *SensorController) Stream(c *gin.Context) {
	conn, err := upgrader.Upgrade(c.Writer, c.Request, nil)
	if err != nil {
		return
	}
	sc.Hub.Register(conn)

	// The read loop only exists to detect disconnects.
	go func() {
		defer sc.Hub.Unregister(conn)
		for {
			if _, _, err := conn.ReadMessage(); err != nil {
				return
			}
		}
	}()
}

type SensorEventInput struct {
	Name    string `json:"name"`
	Hora    string `json:"hora" binding:"required"`
	Lectura string `json:"lectura" binding:"required"`
}

func CreateSensorEvent(c *gin.Context) {
	var input SensorEventInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": err.Error()})
		return
	}

	event := models.SensorEvent{
		Name:    input.Name,
		Hora:    input.Hora,
		Lectura: input.Lectura,
	}

	if err := services.CreateSensorEvent(&event); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"message": "failed to create sensor event", "error": err.Error()})
		return
	}

	c.JSON(http.StatusCreated, event)
}

func GetSensorEvent(c *gin.Context) {
	id, ok := parseIDParam(c)
	if !ok {
		return
	}

	event, err := services.FindSensorEventByID(id)
	if err != nil {
		respondLookupError(c, err, "sensor event not found")
		return
	}
	c.JSON(http.StatusOK, event)
}

func UpdateSensorEvent(c *gin.Context) {
	id, ok := parseIDParam(c)
	if !ok {
		return
	}

	var input services.SensorEventUpdateInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": err.Error()})
		return
	}

	event, err := services.UpdateSensorEvent(id, input)
	if err != nil {
		respondLookupError(c, err, "sensor event not found")
		return
	}

	c.JSON(http.StatusOK, event)
}

func DeleteSensorEvent(c *gin.Context) {
	id, ok := parseIDParam(c)
	if !ok {
		return
	}

	if _, err := services.DeleteSensorEvent(id); err != nil {
		respondLookupError(c, err, "sensor event not found")
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "sensor event deleted"})
}
