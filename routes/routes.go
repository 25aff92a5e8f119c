package routes

import (
	"time"

	"github.com/Brandon0902/HumanSport/controllers"
	"github.com/Brandon0902/HumanSport/middlewares"
	"github.com/Brandon0902/HumanSport/models"

	"github.com/gin-gonic/gin"
)

// SetupRouter wires every route with its declared role set. The auth gate
// runs on everything but registration, login and the public catalog.
func SetupRouter(sensor *controllers.SensorController) *gin.Engine {
	r := gin.Default()

	staffOnly := middlewares.RequireRole(models.RoleAdmin, models.RoleRecepcionist)
	adminOnly := middlewares.RequireRole(models.RoleAdmin)

	users := r.Group("/users")
	{
		users.POST("", controllers.Register)
		users.POST("/login", controllers.Login)

		authed := users.Group("")
		authed.Use(middlewares.AuthMiddleware())
		{
			authed.GET("", controllers.ListUsers)
			authed.GET("/:id/memberships", controllers.GetUserMemberships)
			authed.PUT("/pass", adminOnly, controllers.ChangePassword)
			authed.PATCH("/update/email", adminOnly, controllers.UpdateUserByEmail)
			authed.DELETE("/delete/:email", adminOnly, controllers.DeleteUser)
		}
	}

	instructors := r.Group("/instructors")
	instructors.Use(middlewares.AuthMiddleware(), staffOnly)
	{
		instructors.GET("", controllers.ListInstructors)
		instructors.GET("/:id", controllers.GetInstructor)
		instructors.POST("", controllers.CreateInstructor)
		instructors.PATCH("/:id", controllers.UpdateInstructor)
		instructors.DELETE("/:id", controllers.DeleteInstructor)
	}

	courses := r.Group("/courses")
	courses.Use(middlewares.AuthMiddleware())
	{
		courses.GET("", middlewares.CacheResponse(time.Minute), controllers.ListCourses)
		courses.GET("/:id", controllers.GetCourse)
		courses.POST("", staffOnly, controllers.CreateCourse)
		courses.PATCH("/update/:id", staffOnly, controllers.UpdateCourse)
		courses.PUT("/:id", staffOnly, controllers.ReplaceCourse)
		courses.DELETE("/delete/:id", staffOnly, controllers.DeleteCourse)
	}

	memberships := r.Group("/memberships")
	{
		// Catalog listing stays public: it doubles as the pricing page.
		memberships.GET("", middlewares.CacheResponse(time.Minute), controllers.ListMemberships)

		admin := memberships.Group("")
		admin.Use(middlewares.AuthMiddleware(), adminOnly)
		{
			admin.POST("", controllers.CreateMembership)
			admin.PATCH("/update/:id", controllers.UpdateMembership)
			admin.DELETE("/delete/:id", controllers.DeleteMembership)
		}
	}

	bookings := r.Group("/bookings")
	bookings.Use(middlewares.AuthMiddleware())
	{
		bookings.GET("", controllers.ListBookings)
		bookings.GET("/:id", controllers.GetBooking)
		bookings.POST("", controllers.CreateBooking)
		bookings.PATCH("/update/:id", controllers.UpdateBooking)
		bookings.DELETE("/delete/:id", staffOnly, controllers.DeleteBooking)
	}

	payments := r.Group("/payments")
	payments.Use(middlewares.AuthMiddleware())
	{
		payments.GET("", controllers.ListPayments)
		payments.GET("/:id", controllers.GetPayment)
		payments.POST("", controllers.CreatePayment)
	}

	sensorRoutes := r.Group("/sensor")
	{
		sensorRoutes.GET("", sensor.Latest)
		sensorRoutes.GET("/reanudar", sensor.Resume)
		sensorRoutes.GET("/detener", sensor.Pause)
		sensorRoutes.POST("", sensor.Snapshot)
		sensorRoutes.GET("/ws", sensor.Stream)

		sensorRoutes.POST("/events", controllers.CreateSensorEvent)
		sensorRoutes.GET("/events/:id", controllers.GetSensorEvent)
		sensorRoutes.PUT("/events/:id", controllers.UpdateSensorEvent)
		sensorRoutes.DELETE("/events/:id", controllers.DeleteSensorEvent)
	}

	return r
}
