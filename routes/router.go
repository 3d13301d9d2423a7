package routes

import (
	"github.com/gin-gonic/gin"
	"github.com/openprocure/portal-go/handlers"
	"github.com/openprocure/portal-go/mailer"
	"github.com/openprocure/portal-go/middleware"
	"github.com/openprocure/portal-go/repositories"
	"github.com/openprocure/portal-go/services"
)

func RegisterRoutes(r *gin.Engine) {

	// init
	repos := repositories.New()
	svc := services.New(repos, mailer.NewSMTPSender())
	h := handlers.New(svc)
	auth := middleware.NewAuth(repos)

	api := r.Group("/api")

	api.POST("/auth/register", h.Auth.Register)
	api.POST("/auth/login", h.Auth.Login)

	authed := api.Group("/")
	authed.Use(middleware.JWTAuthMiddleware())
	{
		authed.GET("/auth/me", h.Auth.Me)

		admin := authed.Group("/admin", auth.Admin())
		{
			admin.GET("/users", h.Admin.ListUsers)
			admin.POST("/users", h.Admin.CreateUser)
			admin.GET("/users/:id", h.Admin.GetUser)
			admin.PUT("/users/:id/activate", h.Admin.ActivateUser)
			admin.PUT("/users/:id/deactivate", h.Admin.DeactivateUser)
			admin.DELETE("/users/:id", h.Admin.DeleteUser)

			admin.GET("/suppliers", h.Admin.ListSuppliers)
			admin.PUT("/suppliers/:id/approve", h.Admin.ApproveSupplier)
			admin.PUT("/suppliers/:id/reject", h.Admin.RejectSupplier)
			admin.PUT("/suppliers/:id/reopen", h.Admin.ReopenSupplier)
		}

		supplier := authed.Group("/supplier", auth.Supplier())
		{
			supplier.GET("/profile", h.Supplier.GetProfile)
			supplier.PUT("/profile", h.Supplier.UpdateProfile)
			supplier.GET("/questionnaires", h.Supplier.ListActiveQuestionnaires)
			supplier.GET("/responses", h.Supplier.ListResponses)
		}

		entity := authed.Group("/procuring-entity", auth.ProcuringEntity())
		{
			entity.GET("/profile", h.Entity.GetProfile)
			entity.PUT("/profile", h.Entity.UpdateProfile)
			entity.GET("/suppliers/search", h.Entity.SearchSuppliers)
		}

		questionnaires := authed.Group("/questionnaires")
		{
			questionnaires.POST("", auth.ProcuringEntity(), h.Questionnaire.Create)
			questionnaires.GET("", auth.ProcuringEntity(), h.Questionnaire.List)
			questionnaires.GET("/:id", auth.ProcuringEntity(), h.Questionnaire.Get)
			questionnaires.PUT("/:id", auth.ProcuringEntity(), h.Questionnaire.Update)
			questionnaires.DELETE("/:id", auth.ProcuringEntity(), h.Questionnaire.Delete)
			questionnaires.GET("/:id/responses", auth.ProcuringEntity(), h.Questionnaire.ListResponses)

			questionnaires.PUT("/:id/response", auth.Supplier(), h.Questionnaire.SaveResponse)
			questionnaires.GET("/:id/response", auth.Supplier(), h.Questionnaire.GetOwnResponse)
		}

		documents := authed.Group("/documents")
		{
			documents.POST("", h.Document.Upload)
			documents.GET("", h.Document.List)
			documents.GET("/:id", h.Document.Download)
			documents.DELETE("/:id", h.Document.Delete)
		}

		announcements := authed.Group("/announcements")
		{
			announcements.GET("", h.Announcement.List)
			announcements.POST("", auth.Admin(), h.Announcement.Create)
			announcements.PUT("/:id", auth.Admin(), h.Announcement.Update)
			announcements.DELETE("/:id", auth.Admin(), h.Announcement.Delete)
		}

		cpv := authed.Group("/cpv")
		{
			cpv.GET("", h.Taxonomy.ListCPV)
			cpv.POST("", auth.Admin(), h.Taxonomy.CreateCPV)
			cpv.DELETE("/:id", auth.Admin(), h.Taxonomy.DeleteCPV)
		}

		nuts := authed.Group("/nuts")
		{
			nuts.GET("", h.Taxonomy.ListNUTS)
			nuts.POST("", auth.Admin(), h.Taxonomy.CreateNUTS)
			nuts.DELETE("/:id", auth.Admin(), h.Taxonomy.DeleteNUTS)
		}
	}
}
