package main

import (
	"log"
	"os"

	"github.com/Brandon0902/HumanSport/config"
	"github.com/Brandon0902/HumanSport/controllers"
	"github.com/Brandon0902/HumanSport/middlewares"
	"github.com/Brandon0902/HumanSport/routes"
	"github.com/Brandon0902/HumanSport/services"
	"github.com/Brandon0902/HumanSport/utils"
)

func main() {
	config.InitDB()
	utils.InitS3()
	middlewares.InitCache()

	hub := services.NewSensorHub()
	listener := services.NewSensorListener(hub)
	if err := listener.Start(os.Getenv("SENSOR_PORT")); err != nil {
		log.Printf("sensor port unavailable: %v", err)
	}

	sensor := controllers.NewSensorController(listener, hub)

	r := routes.SetupRouter(sensor)
	r.Run(":8080")
}
