package routes

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"utsav/config"
	"utsav/controllers"
	"utsav/middlewares"
	"utsav/models"
	"utsav/services"
	"utsav/utils"
)

// SetupRouter wires every endpoint onto a gin engine. dir is the shared
// directory service client.
func SetupRouter(cfg config.Config, dir services.Directory) *gin.Engine {
	tokens := utils.NewTokenManager(cfg.JWTSecret, cfg.TokenTTL)

	scoreService := services.NewScoreService(dir, services.SubmitPolicy(cfg.SubmitPolicy))
	leaderboardService := services.NewLeaderboardService(dir)

	auth := controllers.NewAuthController(dir, tokens)
	users := controllers.NewUserController(dir)
	teams := controllers.NewTeamController(dir)
	judges := controllers.NewJudgeController(dir)
	rounds := controllers.NewRoundController(dir)
	scores := controllers.NewScoreController(scoreService)
	leaderboard := controllers.NewLeaderboardController(leaderboardService)

	r := gin.Default()
	r.Use(middlewares.RequestID())

	r.GET("/", func(c *gin.Context) {
		c.String(http.StatusOK, "Hello from the Utsav Server!")
	})
	r.POST("/register", auth.Register)
	r.POST("/login", auth.Login)

	api := r.Group("/api")
	api.Use(middlewares.JWTAuth(tokens))
	{
		api.GET("/me", auth.Me)

		adminOnly := middlewares.RequireRole(models.RoleAdmin)

		teamRoutes := api.Group("/teams")
		{
			teamRoutes.GET("", teams.List)
			teamRoutes.GET("/:id", teams.Get)
			teamRoutes.POST("", adminOnly, teams.Create)
			teamRoutes.PUT("/:id", adminOnly, teams.Update)
			teamRoutes.DELETE("/:id", adminOnly, teams.Delete)
		}

		judgeRoutes := api.Group("/judges")
		{
			judgeRoutes.GET("", judges.List)
			judgeRoutes.GET("/:id", judges.Get)
			judgeRoutes.POST("", adminOnly, judges.Create)
			judgeRoutes.PUT("/:id", adminOnly, judges.Update)
			judgeRoutes.DELETE("/:id", adminOnly, judges.Delete)
		}

		userRoutes := api.Group("/users")
		{
			userRoutes.GET("", users.List)
			userRoutes.GET("/:id", users.Get)
			userRoutes.POST("", adminOnly, users.Create)
			userRoutes.PUT("/:id", adminOnly, users.Update)
			userRoutes.DELETE("/:id", adminOnly, users.Delete)
		}

		roundRoutes := api.Group("/rounds")
		{
			roundRoutes.GET("", rounds.List)
			roundRoutes.POST("", adminOnly, rounds.Create)
			roundRoutes.PUT("/:id", adminOnly, rounds.Update)
			roundRoutes.DELETE("/:id", adminOnly, rounds.Delete)
		}

		// Only judges submit or correct scores; admins pass the gate too.
		judgesOnly := middlewares.RequireRole(models.RoleJudge)

		scoreRoutes := api.Group("/scores")
		{
			scoreRoutes.POST("", judgesOnly, scores.Submit)
			scoreRoutes.PUT("/:id", judgesOnly, scores.Amend)
			scoreRoutes.GET("/round/:roundId", scores.ListByRound)
		}

		api.GET("/leaderboard", leaderboard.Get)
	}

	return r
}
