package main

import (
	"context"
	"log"
	"os"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"go.uber.org/fx"

	"fitlog/cmd/fx/account_fx"
	"fitlog/cmd/fx/activity_type_fx"
	"fitlog/cmd/fx/controllers_fx"
	"fitlog/cmd/fx/db_fx"
	"fitlog/cmd/fx/goal_fx"
	"fitlog/cmd/fx/mail_fx"
	"fitlog/cmd/fx/memcache_fx"
	"fitlog/cmd/fx/settings_fx"
	"fitlog/cmd/fx/stats_fx"
	"fitlog/cmd/fx/voice_fx"
	"fitlog/cmd/fx/workout_fx"
	"fitlog/internal/api/controllers"
	mem "fitlog/pkg/memcache"
	"fitlog/pkg/middleware"
)

func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, using environment variables")
	}

	app := fx.New(
		db_fx.Module,
		memcache_fx.Module,
		mail_fx.Module,
		account_fx.Module,
		workout_fx.Module,
		settings_fx.Module,
		activity_type_fx.Module,
		goal_fx.Module,
		stats_fx.Module,
		voice_fx.Module,
		controllers_fx.Module,

		fx.Provide(ProvideRouter),
		fx.Invoke(StartServer),
	)

	app.Run()
}

func StartServer(lc fx.Lifecycle, engine *gin.Engine) {
	lc.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			go func() {
				port := os.Getenv("PORT")
				if port == "" {
					port = "8080"
				}
				log.Printf("Starting HTTP server on :%s", port)
				if err := engine.Run(":" + port); err != nil {
					log.Fatalf("Failed to start server: %v", err)
				}
			}()
			return nil
		},
		OnStop: func(ctx context.Context) error {
			log.Println("Stopping HTTP server")
			return nil
		},
	})
}

func ProvideRouter(
	sessions mem.SessionStore,
	accountController *controllers.AccountController,
	workoutController *controllers.WorkoutController,
	statsController *controllers.StatsController,
	settingsController *controllers.SettingsController,
	activityTypeController *controllers.ActivityTypeController,
	goalController *controllers.GoalController,
	voiceController *controllers.VoiceController) *gin.Engine {

	r := gin.Default()
	r.Use(middleware.TraceIDMiddleware())
	r.Use(middleware.CORSMiddleware())

	RegisterRoutes(r, sessions,
		accountController, workoutController, statsController,
		settingsController, activityTypeController, goalController,
		voiceController)

	return r
}

func RegisterRoutes(r *gin.Engine,
	sessions mem.SessionStore,
	accountController *controllers.AccountController,
	workoutController *controllers.WorkoutController,
	statsController *controllers.StatsController,
	settingsController *controllers.SettingsController,
	activityTypeController *controllers.ActivityTypeController,
	goalController *controllers.GoalController,
	voiceController *controllers.VoiceController) {

	accounts := r.Group("/accounts")
	accounts.POST("/register", accountController.Register)
	accounts.POST("/login", accountController.Login)
	accounts.POST("/forgot-password", accountController.ForgotPassword)
	accounts.POST("/reset-password", accountController.ResetPassword)

	auth := r.Group("/")
	auth.Use(middleware.JWTAuthMiddleware(sessions))

	auth.POST("/accounts/logout", accountController.Logout)

	auth.POST("/workouts", workoutController.Create)
	auth.GET("/workouts", workoutController.List)
	auth.GET("/workouts/week", workoutController.Week)
	auth.GET("/workouts/:id", workoutController.Get)
	auth.PUT("/workouts/:id", workoutController.Update)
	auth.DELETE("/workouts/:id", workoutController.Delete)
	auth.GET("/workouts/:id/similar", workoutController.Similar)

	auth.GET("/stats/summary", statsController.Summary)

	auth.GET("/settings", settingsController.Get)
	auth.PUT("/settings", settingsController.Update)

	auth.GET("/activity-types", activityTypeController.List)
	auth.POST("/activity-types", activityTypeController.Create)
	auth.DELETE("/activity-types/:id", activityTypeController.Delete)

	auth.POST("/events", goalController.CreateEvent)
	auth.GET("/events", goalController.ListEvents)
	auth.GET("/events/token/:token", goalController.EventByToken)

	auth.POST("/goals", goalController.CreateGoal)
	auth.GET("/goals", goalController.ListGoals)
	auth.GET("/goals/shared", goalController.SharedWithMe)
	auth.GET("/goals/:id", goalController.GetGoal)
	auth.POST("/goals/:id/share", goalController.ShareGoal)

	auth.POST("/voice/upload", voiceController.Upload)
	auth.POST("/voice/process", voiceController.Process)
	auth.POST("/voice/reanalyze", voiceController.Reanalyze)
	auth.PUT("/voice/analysis", voiceController.UpdateAnalysis)
}
