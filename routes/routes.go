package routes

import (
	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"gorm.io/gorm"

	"github.com/Githubuser289/Calories-BE/config"
	"github.com/Githubuser289/Calories-BE/controllers"
	_ "github.com/Githubuser289/Calories-BE/docs"
	"github.com/Githubuser289/Calories-BE/middlewares"
	"github.com/Githubuser289/Calories-BE/services"
	"github.com/Githubuser289/Calories-BE/utils"
)

func SetupRouter(cfg *config.Config, db *gorm.DB, log *logrus.Logger) *gin.Engine {
	tokens := utils.NewTokenMaker(cfg.JWTSecret, cfg.TokenTTL)

	authSvc := services.NewAuthService(db, tokens)
	productSvc := services.NewProductService(db)
	profileSvc := services.NewProfileService(db)
	intakeSvc := services.NewIntakeService(productSvc, profileSvc)
	ledgerSvc := services.NewLedgerService(db)

	userCtl := controllers.NewUserController(authSvc)
	productCtl := controllers.NewProductController(productSvc)
	intakeCtl := controllers.NewIntakeController(intakeSvc)
	dayCtl := controllers.NewDayController(ledgerSvc)

	r := gin.New()
	r.Use(middlewares.RequestLogger(log), gin.Recovery(), cors.Default())

	requireAuth := middlewares.AuthMiddleware(tokens, authSvc)

	api := r.Group("/api")
	{
		api.GET("/products", productCtl.List)

		api.GET("/intake", intakeCtl.Preview)
		api.POST("/intake", intakeCtl.Preview)

		users := api.Group("/users")
		{
			users.POST("/signup", userCtl.Signup)
			users.POST("/login", userCtl.Login)
			users.GET("/logout", requireAuth, userCtl.Logout)
			users.GET("/current", requireAuth, userCtl.Current)
		}

		day := api.Group("/day")
		day.Use(requireAuth)
		{
			day.GET("", intakeCtl.Commit)
			day.GET("/:date", dayCtl.GetDay)
			day.POST("/:date", dayCtl.AddProduct)
			day.DELETE("/:date", dayCtl.RemoveProduct)
		}
	}

	r.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	return r
}
